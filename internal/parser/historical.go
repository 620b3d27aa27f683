package parser

import (
	"strings"

	"go.uber.org/zap"

	"github.com/ledgerline/qbparse/internal/analyzer"
	"github.com/ledgerline/qbparse/internal/statement"
)

// DefaultExpectedPeriods is the month count a full historical export
// carries.
const DefaultExpectedPeriods = 12

// HistoricalParser runs the profit and loss parse over a trailing
// twelve-month export. Completeness problems are warnings, never parse
// failures: short exports are common in the wild and still usable.
type HistoricalParser struct {
	inner           *ProfitLossParser
	expectedPeriods int
	log             *zap.Logger
}

func NewHistoricalParser(cfg Config, expectedPeriods int, log *zap.Logger) *HistoricalParser {
	if expectedPeriods <= 0 {
		expectedPeriods = DefaultExpectedPeriods
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &HistoricalParser{
		inner:           NewProfitLossParser(cfg),
		expectedPeriods: expectedPeriods,
		log:             log,
	}
}

func (p *HistoricalParser) Parse(rows [][]string) (*statement.ProfitLoss, []analyzer.Diagnostic, error) {
	pl, err := p.inner.Parse(rows)
	if err != nil {
		return nil, nil, err
	}
	diags := analyzer.CheckCompleteness(pl, p.expectedPeriods)
	for _, d := range diags {
		p.log.Warn("historical completeness",
			zap.String("code", d.Code),
			zap.String("detail", d.Message),
		)
	}
	return pl, diags, nil
}

// AccountMapping is the result of matching a current-period account list
// against the accounts of a historical statement. Matched names keep the
// current-period spelling.
type AccountMapping struct {
	Matched             []string
	MissingInHistorical []string
	ExtraInHistorical   []string
}

// MapAccounts matches case-insensitively on exact names. Fuzzy matching
// stays out of scope.
func MapAccounts(st *statement.ProfitLoss, current []string) AccountMapping {
	historical := make(map[string]bool)
	var order []string
	for _, name := range st.AccountNames() {
		key := strings.ToLower(name)
		if !historical[key] {
			order = append(order, name)
		}
		historical[key] = true
	}

	seen := make(map[string]bool, len(current))
	var m AccountMapping
	for _, name := range current {
		key := strings.ToLower(name)
		seen[key] = true
		if historical[key] {
			m.Matched = append(m.Matched, name)
		} else {
			m.MissingInHistorical = append(m.MissingInHistorical, name)
		}
	}
	for _, name := range order {
		if !seen[strings.ToLower(name)] {
			m.ExtraInHistorical = append(m.ExtraInHistorical, name)
		}
	}
	return m
}
