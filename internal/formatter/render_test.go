package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/qbparse/internal/parser"
	"github.com/ledgerline/qbparse/internal/testutil"
)

func findLine(t *testing.T, output, prefix string) string {
	t.Helper()
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(strings.TrimLeft(line, " "), prefix) {
			return line
		}
	}
	t.Fatalf("no line starting with %q in output:\n%s", prefix, output)
	return ""
}

func TestRender_BalanceSheet(t *testing.T) {
	bs, err := parser.NewBalanceSheetParser(parser.BalanceSheetConfig()).Parse(testutil.BalanceSheetRows())
	require.NoError(t, err)

	out := Render(bs.Statement, DefaultFormat())
	lines := strings.Split(out, "\n")

	require.NotEmpty(t, lines)
	assert.Equal(t, "Assets", lines[0])

	checking := findLine(t, out, "Checking")
	assert.True(t, strings.HasPrefix(checking, "      Checking"), "leaf nested three levels deep: %q", checking)
	assert.True(t, strings.HasSuffix(checking, "$1,201.00"), "line: %q", checking)

	savings := findLine(t, out, "Savings")
	assert.True(t, strings.HasSuffix(savings, "$800.00"), "line: %q", savings)
	assert.Equal(t, len(checking), len(savings), "amounts are right-aligned to the same column")

	total := findLine(t, out, "Total for Bank Accounts")
	assert.True(t, strings.HasSuffix(total, "$2,001.00"), "line: %q", total)
	assert.True(t, strings.HasPrefix(total, "    Total for"), "total stays at its parent's depth: %q", total)

	negative := findLine(t, out, "Opening Balance Equity")
	assert.True(t, strings.HasSuffix(negative, "-$9,337.50"), "line: %q", negative)
}

func TestRender_ProfitLossColumns(t *testing.T) {
	pl, err := parser.NewProfitLossParser(parser.ProfitLossConfig()).Parse(testutil.ProfitLossRows())
	require.NoError(t, err)

	out := Render(pl.Statement, DefaultFormat())
	lines := strings.Split(out, "\n")

	require.NotEmpty(t, lines)
	header := lines[0]
	first := strings.Index(header, "Nov 1 - Nov 30 2025")
	second := strings.Index(header, "Nov 1 - Nov 30 2024 (PY)")
	require.GreaterOrEqual(t, first, 0, "header: %q", header)
	require.Greater(t, second, first, "period labels keep header order: %q", header)

	design := findLine(t, out, "Design income")
	assert.Greater(t, strings.Index(design, "$500.00"), strings.Index(design, "$637.50"), "line: %q", design)

	net := findLine(t, out, "Net Income")
	assert.Contains(t, net, "-$438.18")
}

func TestRender_CashFlow(t *testing.T) {
	cf, err := parser.NewCashFlowParser(parser.CashFlowConfig()).Parse(testutil.CashFlowRows())
	require.NoError(t, err)

	out := Render(cf.Statement, DefaultFormat())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// An empty section renders as a bare heading.
	assert.Contains(t, lines, "INVESTING ACTIVITIES")

	// Calculated rows come last, in file order.
	last := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(last, "CASH AT END OF PERIOD"), "line: %q", last)
	assert.True(t, strings.HasSuffix(last, "$4,063.52"), "line: %q", last)

	netIncome := findLine(t, out, "Net Income")
	assert.True(t, strings.HasSuffix(netIncome, "$1,481.28"), "line: %q", netIncome)
}

func TestRender_CustomNumberFormat(t *testing.T) {
	bs, err := parser.NewBalanceSheetParser(parser.BalanceSheetConfig()).Parse(testutil.BalanceSheetRows())
	require.NoError(t, err)

	out := Render(bs.Statement, ParseNumberFormat("1.234,56 €"))

	checking := findLine(t, out, "Checking")
	assert.True(t, strings.HasSuffix(checking, "€1.201,00"), "line: %q", checking)
}
