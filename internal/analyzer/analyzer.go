package analyzer

import (
	"fmt"

	"github.com/ledgerline/qbparse/internal/statement"
)

// Analyze runs every statement-level check: unassociated totals and
// roll-up verification. Everything here is a warning; by the time an
// analyzer sees a statement, parsing has already succeeded.
func Analyze[V statement.Value](st *statement.Statement[V]) []Diagnostic {
	diags := CheckUnmatchedTotals(st)
	return append(diags, CheckRollups(st)...)
}

// CheckUnmatchedTotals surfaces Total rows the builder dropped because
// no open parent matched their stripped name.
func CheckUnmatchedTotals[V statement.Value](st *statement.Statement[V]) []Diagnostic {
	var diags []Diagnostic
	for _, row := range st.UnmatchedTotals() {
		diags = append(diags, Diagnostic{
			Severity: SeverityWarning,
			Code:     "UNMATCHED_TOTAL",
			Message:  fmt.Sprintf("total row '%s' does not match any open parent", row.Name),
		})
	}
	return diags
}
