package testutil

import (
	"encoding/csv"
	"fmt"
	"os"
)

var monthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// BalanceSheetRows returns a full QuickBooks-style balance sheet export,
// metadata and footer included. The figures balance: total assets equal
// total liabilities and equity at 23,436.29.
func BalanceSheetRows() [][]string {
	return [][]string{
		{"Balance Sheet", ""},
		{"Craig's Design and Landscaping Services", ""},
		{"As of November 30, 2025", ""},
		{"", ""},
		{"Full name", "Total"},
		{"Assets", ""},
		{"Current Assets", ""},
		{"Bank Accounts", ""},
		{"Checking", "1,201.00"},
		{"Savings", "800.00"},
		{"Total for Bank Accounts", "$2,001.00"},
		{"Accounts Receivable", ""},
		{"Accounts Receivable (A/R)", "5,281.52"},
		{"Total for Accounts Receivable", "$5,281.52"},
		{"Other Current Assets", ""},
		{"Inventory Asset", "596.25"},
		{"Undeposited Funds", "2,062.52"},
		{"Total for Other Current Assets", "$2,658.77"},
		{"Total for Current Assets", "$9,941.29"},
		{"Fixed Assets", ""},
		{"Truck", ""},
		{"Original Cost", "13,495.00"},
		{"Total for Truck", "$13,495.00"},
		{"Total for Fixed Assets", "$13,495.00"},
		{"Total for Assets", "$23,436.29"},
		{"Liabilities and Equity", ""},
		{"Liabilities", ""},
		{"Current Liabilities", ""},
		{"Accounts Payable", ""},
		{"Accounts Payable (A/P)", "1,602.67"},
		{"Total for Accounts Payable", "$1,602.67"},
		{"Credit Cards", ""},
		{"Mastercard", "157.72"},
		{"Total for Credit Cards", "$157.72"},
		{"Other Current Liabilities", ""},
		{"Board of Equalization Payable", "370.94"},
		{"Loan Payable", "4,000.00"},
		{"Total for Other Current Liabilities", "$4,370.94"},
		{"Total for Current Liabilities", "$6,131.33"},
		{"Long-Term Liabilities", ""},
		{"Notes Payable", "25,000.00"},
		{"Total for Long-Term Liabilities", "$25,000.00"},
		{"Total for Liabilities", "$31,131.33"},
		{"Equity", ""},
		{"Opening Balance Equity", "-9,337.50"},
		{"Retained Earnings", "1,642.46"},
		{"Total for Equity", "-$7,695.04"},
		{"Total for Liabilities and Equity", "$23,436.29"},
		{"", ""},
		{"Cash Basis Monday, January 19, 2026 04:29 PM GMTZ", ""},
	}
}

// ProfitLossRows returns a two-period profit and loss export with a
// current and a prior-year comparison column.
func ProfitLossRows() [][]string {
	return [][]string{
		{"Profit and Loss", "", ""},
		{"Craig's Design and Landscaping Services", "", ""},
		{"November 1-30, 2025", "", ""},
		{"", "", ""},
		{"Distribution account", "Total", ""},
		{"", "Nov 1 - Nov 30 2025", "Nov 1 - Nov 30 2024 (PY)"},
		{"Income", "", ""},
		{"Design income", "637.50", "500.00"},
		{"Landscaping Services", "", ""},
		{"Job Materials", "", ""},
		{"Fountains and Garden Lighting", "406.80", "300.00"},
		{"Plants and Soil", "1,766.98", "1,500.00"},
		{"Total for Job Materials", "$2,173.78", "$1,800.00"},
		{"Total for Landscaping Services", "$2,173.78", "$1,800.00"},
		{"Total for Income", "$2,811.28", "$2,300.00"},
		{"Cost of Goods Sold", "", ""},
		{"Cost of Goods Sold", "228.75", "200.00"},
		{"Total for Cost of Goods Sold", "$228.75", "$200.00"},
		{"Gross Profit", "$2,582.53", "$2,100.00"},
		{"Expenses", "", ""},
		{"Advertising", "74.86", "50.00"},
		{"Automobile", "", ""},
		{"Fuel", "167.85", "150.00"},
		{"Total for Automobile", "$167.85", "$150.00"},
		{"Equipment Rental", "112.00", "100.00"},
		{"Total for Expenses", "$354.71", "$300.00"},
		{"Net Operating Income", "$2,227.82", "$1,800.00"},
		{"Other Expenses", "", ""},
		{"Miscellaneous", "2,666.00", "2,000.00"},
		{"Total for Other Expenses", "$2,666.00", "$2,000.00"},
		{"Net Other Income", "-$2,666.00", "-$2,000.00"},
		{"Net Income", "-$438.18", "-$200.00"},
		{"Cash Basis Monday, January 19, 2026 04:28 PM GMTZ", "", ""},
	}
}

// ProfitLossSinglePeriodRows returns a one-column profit and loss export.
func ProfitLossSinglePeriodRows() [][]string {
	return [][]string{
		{"Profit and Loss", ""},
		{"Craig's Design and Landscaping Services", ""},
		{"November 1-30, 2025", ""},
		{"", ""},
		{"Distribution account", "Total"},
		{"", "Nov 1 - Nov 30, 2025"},
		{"Income", ""},
		{"Design income", "637.50"},
		{"Landscaping Services", ""},
		{"Job Materials", ""},
		{"Fountains and Garden Lighting", "406.80"},
		{"Plants and Soil", "1,766.98"},
		{"Total for Job Materials", "$2,173.78"},
		{"Total for Landscaping Services", "$2,173.78"},
		{"Total for Income", "$2,811.28"},
		{"Cost of Goods Sold", ""},
		{"Cost of Goods Sold", "228.75"},
		{"Total for Cost of Goods Sold", "$228.75"},
		{"Gross Profit", "$2,582.53"},
		{"Expenses", ""},
		{"Advertising", "74.86"},
		{"Equipment Rental", "112.00"},
		{"Total for Expenses", "$186.86"},
		{"Net Operating Income", "$2,395.67"},
		{"Net Income", "$2,395.67"},
		{"Cash Basis Monday, January 19, 2026 04:28 PM GMTZ", ""},
	}
}

// ProfitLossMissingCOGSRows returns a profit and loss export for a
// service business with no Cost of Goods Sold section.
func ProfitLossMissingCOGSRows() [][]string {
	return [][]string{
		{"Profit and Loss", "", ""},
		{"Craig's Design and Landscaping Services", "", ""},
		{"November 1-30, 2025", "", ""},
		{"", "", ""},
		{"Distribution account", "Total", ""},
		{"", "Nov 1 - Nov 30 2025", "Nov 1 - Nov 30 2024 (PY)"},
		{"Income", "", ""},
		{"Design income", "637.50", "500.00"},
		{"Total for Income", "$637.50", "$500.00"},
		{"Gross Profit", "$637.50", "$500.00"},
		{"Expenses", "", ""},
		{"Advertising", "74.86", "50.00"},
		{"Equipment Rental", "112.00", "100.00"},
		{"Total for Expenses", "$186.86", "$150.00"},
		{"Net Operating Income", "$450.64", "$350.00"},
		{"Net Income", "$450.64", "$350.00"},
		{"Cash Basis Monday, January 19, 2026 04:28 PM GMTZ", "", ""},
	}
}

// CashFlowRows returns a statement of cash flows export with an empty
// investing section and trailing blank rows before the footer.
func CashFlowRows() [][]string {
	return [][]string{
		{"Statement of Cash Flows", ""},
		{"Craig's Design and Landscaping Services", ""},
		{"November 1-30, 2025", ""},
		{"", ""},
		{"Full name", "Total"},
		{"OPERATING ACTIVITIES", ""},
		{"Net Income", "1,481.28"},
		{"Adjustments to reconcile Net Income to Net Cash provided by operations:", ""},
		{"Accounts Payable (A/P)", "-369.72"},
		{"Accounts Receivable (A/R)", "-2,853.02"},
		{"Board of Equalization Payable", "324.54"},
		{"Inventory Asset", "-596.25"},
		{"Loan Payable", "4,000.00"},
		{"Mastercard", "-99.36"},
		{"Total for Adjustments to reconcile Net Income to Net Cash provided by operations:", "$406.19"},
		{"Net cash provided by operating activities", "$1,887.47"},
		{"INVESTING ACTIVITIES", ""},
		{"FINANCING ACTIVITIES", ""},
		{"Notes Payable", "25,000.00"},
		{"Opening Balance Equity", "-27,832.50"},
		{"Net cash provided by financing activities", "-$2,832.50"},
		{"NET CASH INCREASE FOR PERIOD", "-$945.03"},
		{"Cash at beginning of period", "$5,008.55"},
		{"CASH AT END OF PERIOD", "$4,063.52"},
		{"", ""},
		{"", ""},
		{"", ""},
		{" Monday, January 19, 2026 04:29 PM GMTZ", ""},
	}
}

// HistoricalRows generates a monthly profit and loss export with the
// given number of period columns. Amounts are deterministic so tests can
// assert exact values.
func HistoricalRows(months int) [][]string {
	width := months + 1

	pad := func(cells ...string) []string {
		row := make([]string, width)
		copy(row, cells)
		return row
	}

	rows := [][]string{
		pad("Profit and Loss"),
		pad("Craig's Design and Landscaping Services"),
		pad("January - December 2025"),
		pad(),
		pad("Distribution account", "Total"),
	}

	periodRow := make([]string, width)
	for i := 0; i < months; i++ {
		periodRow[i+1] = fmt.Sprintf("%s %d", monthLabels[i%12], 2025+i/12)
	}
	rows = append(rows, periodRow)

	account := func(name string, base int) []string {
		row := make([]string, width)
		row[0] = name
		for i := 0; i < months; i++ {
			cents := base*100 + i*725
			row[i+1] = fmt.Sprintf("%d.%02d", cents/100, cents%100)
		}
		return row
	}

	rows = append(rows,
		pad("Income"),
		account("Design income", 620),
		account("Landscaping Services", 810),
		pad("Expenses"),
		account("Advertising", 74),
		account("Equipment Rental", 112),
		account("Utilities", 86),
		pad("Cash Basis Monday, January 19, 2026 04:28 PM GMTZ"),
	)
	return rows
}

// WriteCSV writes rows to path in CSV form.
func WriteCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
