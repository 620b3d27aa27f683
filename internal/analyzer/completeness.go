package analyzer

import (
	"fmt"

	"github.com/ledgerline/qbparse/internal/statement"
)

// CheckCompleteness reports how far a historical export falls short of a
// full year: fewer periods than expected, accounts sparse against the
// discovered period count, and an empty or missing Income or Expenses
// section. Warnings only; short exports still parse.
func CheckCompleteness(st *statement.ProfitLoss, expectedPeriods int) []Diagnostic {
	var diags []Diagnostic

	periods := st.Periods()
	if len(periods) < expectedPeriods {
		diags = append(diags, Diagnostic{
			Severity: SeverityWarning,
			Code:     "FEW_PERIODS",
			Message:  fmt.Sprintf("insufficient historical periods: found %d months, expected %d", len(periods), expectedPeriods),
		})
	}

	st.Walk(func(n statement.Node[statement.PeriodValues]) bool {
		leaf, ok := n.(*statement.Leaf[statement.PeriodValues])
		if !ok {
			return true
		}
		if len(leaf.Value) < len(periods) {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Code:     "SPARSE_ACCOUNT",
				Message:  fmt.Sprintf("account '%s' has values for %d of %d periods", leaf.Name, len(leaf.Value), len(periods)),
			})
		}
		return true
	})

	for _, name := range []string{"Income", "Expenses"} {
		sec, ok := st.Section(name)
		if !ok || len(sec.Nodes) == 0 {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Code:     "EMPTY_SECTION",
				Message:  fmt.Sprintf("%s section is empty or missing", name),
			})
		}
	}

	return diags
}
