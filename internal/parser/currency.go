package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var currencySymbols = regexp.MustCompile(`[$,]`)

// CleanCurrency strips dollar signs, thousands separators, and surrounding
// whitespace, then parses the remainder as a signed decimal. Parenthesized
// negatives are not recognized.
func CleanCurrency(text string) (decimal.Decimal, error) {
	cleaned := currencySymbols.ReplaceAllString(strings.TrimSpace(text), "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, CurrencyError{Value: text}
	}
	return d, nil
}
