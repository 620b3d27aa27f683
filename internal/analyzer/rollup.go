package analyzer

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/qbparse/internal/statement"
)

// CheckRollups recomputes every reported parent total from its children
// and reports mismatches. A nested parent contributes its reported
// total when it has one, its recomputed sum otherwise.
func CheckRollups[V statement.Value](st *statement.Statement[V]) []Diagnostic {
	var diags []Diagnostic
	for _, sec := range st.Sections() {
		for _, node := range sec.Nodes {
			diags = append(diags, checkNodeRollups[V](node)...)
		}
	}
	return diags
}

func checkNodeRollups[V statement.Value](node statement.Node[V]) []Diagnostic {
	parent, ok := node.(*statement.Parent[V])
	if !ok {
		return nil
	}
	var diags []Diagnostic
	for _, child := range parent.Children {
		diags = append(diags, checkNodeRollups[V](child)...)
	}
	if parent.HasTotal {
		if detail, ok := compareValues(parent.Total, sumChildren(parent)); !ok {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Code:     "ROLLUP_MISMATCH",
				Message:  fmt.Sprintf("account '%s': %s", parent.Name, detail),
			})
		}
	}
	return diags
}

func sumChildren[V statement.Value](parent *statement.Parent[V]) V {
	var sum V
	for _, child := range parent.Children {
		switch n := child.(type) {
		case *statement.Leaf[V]:
			sum = addValues(sum, n.Value)
		case *statement.Parent[V]:
			if n.HasTotal {
				sum = addValues(sum, n.Total)
			} else {
				sum = addValues(sum, sumChildren(n))
			}
		}
	}
	return sum
}

func addValues[V statement.Value](acc, v V) V {
	switch a := any(&acc).(type) {
	case *decimal.Decimal:
		*a = a.Add(any(v).(decimal.Decimal))
	case *statement.PeriodValues:
		for _, pv := range any(v).(statement.PeriodValues) {
			if cur, ok := a.Get(pv.Period); ok {
				a.Set(pv.Period, cur.Add(pv.Amount))
			} else {
				a.Set(pv.Period, pv.Amount)
			}
		}
	}
	return acc
}

// compareValues reports the first difference between a reported total
// and a recomputed one. Period comparison ignores label order.
func compareValues[V statement.Value](reported, computed V) (string, bool) {
	switch r := any(reported).(type) {
	case decimal.Decimal:
		c := any(computed).(decimal.Decimal)
		if r.Equal(c) {
			return "", true
		}
		return fmt.Sprintf("reported total %s, computed %s", r, c), false
	case statement.PeriodValues:
		c := any(computed).(statement.PeriodValues)
		for _, pv := range r {
			got, ok := c.Get(pv.Period)
			if !ok {
				return fmt.Sprintf("no child values for %s, reported total %s", pv.Period, pv.Amount), false
			}
			if !got.Equal(pv.Amount) {
				return fmt.Sprintf("%s: reported total %s, computed %s", pv.Period, pv.Amount, got), false
			}
		}
		for _, pv := range c {
			if _, ok := r.Get(pv.Period); !ok {
				return fmt.Sprintf("children carry %s but the reported total does not", pv.Period), false
			}
		}
		return "", true
	}
	return "", true
}
