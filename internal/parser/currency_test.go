package parser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanCurrency_Formats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "800.00", want: "800.00"},
		{name: "thousands separator", input: "1,201.00", want: "1201.00"},
		{name: "dollar sign", input: "$406.19", want: "406.19"},
		{name: "negative with dollar sign", input: "-$2,832.50", want: "-2832.50"},
		{name: "negative plain", input: "-9,337.50", want: "-9337.50"},
		{name: "surrounding whitespace", input: "  25,000.00  ", want: "25000.00"},
		{name: "zero", input: "0", want: "0"},
		{name: "no decimal places", input: "$4,000", want: "4000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanCurrency(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"expected %s, got %s", tt.want, got)
		})
	}
}

func TestCleanCurrency_Invalid(t *testing.T) {
	inputs := []string{"invalid", "N/A", "(500.00)", "12.34.56", "--5"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := CleanCurrency(input)
			require.Error(t, err)

			var cerr CurrencyError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, input, cerr.Value)
		})
	}
}

func TestCleanCurrency_ErrorMessage(t *testing.T) {
	_, err := CleanCurrency("invalid")
	require.Error(t, err)
	assert.Equal(t, `cannot parse currency value: "invalid"`, err.Error())
}
