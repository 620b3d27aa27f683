package parser

import "regexp"

var (
	footerCashBasis = regexp.MustCompile(`(?i)Cash Basis.*GMT`)
	footerTimestamp = regexp.MustCompile(`(?i)GMT`)
)

// Config carries everything variant-specific: the marker vocabularies,
// the footer pattern, and the structural minimums checked before
// classification starts. The parse pipeline itself is shared.
type Config struct {
	Name           string
	SectionMarkers map[string]bool
	CalculatedRows map[string]bool
	Footer         *regexp.Regexp

	// SkipRows counts the leading metadata rows of an export: report
	// title, company name, and date range.
	SkipRows    int
	MinRows     int
	MinColumns  int
	MultiPeriod bool

	// RequiredSections holds alternative groups: at least one name per
	// group must be present after the build. A missing group is reported
	// under the group's first name.
	RequiredSections [][]string
}

func BalanceSheetConfig() Config {
	return Config{
		Name:           "balance sheet",
		SectionMarkers: nameSet("Assets", "Liabilities and Equity", "Liabilities", "Equity"),
		CalculatedRows: map[string]bool{},
		Footer:         footerCashBasis,
		SkipRows:       3,
		MinRows:        5,
		MinColumns:     2,
		RequiredSections: [][]string{
			{"Assets"},
			{"Liabilities", "Liabilities and Equity"},
			{"Equity"},
		},
	}
}

func ProfitLossConfig() Config {
	return Config{
		Name:           "profit and loss",
		SectionMarkers: nameSet("Income", "Cost of Goods Sold", "Expenses", "Other Expenses"),
		CalculatedRows: nameSet("Gross Profit", "Net Operating Income", "Net Other Income", "Net Income"),
		Footer:         footerCashBasis,
		SkipRows:       3,
		MinRows:        6,
		MultiPeriod:    true,
		RequiredSections: [][]string{
			{"Income"},
			{"Expenses"},
		},
	}
}

func CashFlowConfig() Config {
	return Config{
		Name:           "cash flow",
		SectionMarkers: nameSet("OPERATING ACTIVITIES", "INVESTING ACTIVITIES", "FINANCING ACTIVITIES"),
		CalculatedRows: nameSet(
			"Net cash provided by operating activities",
			"Net cash provided by investing activities",
			"Net cash provided by financing activities",
			"NET CASH INCREASE FOR PERIOD",
			"Cash at beginning of period",
			"CASH AT END OF PERIOD",
		),
		Footer:     footerTimestamp,
		SkipRows:   3,
		MinRows:    5,
		MinColumns: 2,
		RequiredSections: [][]string{
			{"OPERATING ACTIVITIES"},
			{"INVESTING ACTIVITIES"},
			{"FINANCING ACTIVITIES"},
		},
	}
}

func nameSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
