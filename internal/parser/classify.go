package parser

import (
	"strings"

	"github.com/ledgerline/qbparse/internal/statement"
)

const totalPrefix = "Total for "

// Classify assigns a row kind from the account name and value presence
// alone. Order matters: calculated names win over everything else, and a
// section marker carrying a value is data, not a section heading.
func Classify(name string, hasValue bool, cfg Config) statement.RowKind {
	switch {
	case cfg.CalculatedRows[name]:
		return statement.KindCalculated
	case strings.HasPrefix(name, totalPrefix):
		return statement.KindTotal
	case cfg.SectionMarkers[name] && !hasValue:
		return statement.KindSection
	case !hasValue:
		return statement.KindParent
	default:
		return statement.KindChild
	}
}
