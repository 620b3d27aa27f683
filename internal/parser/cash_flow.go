package parser

import "github.com/ledgerline/qbparse/internal/statement"

// CashFlowParser parses the single-value cash flow export. All three
// activity sections are required even when empty; the summary cash rows
// land on the calculated list, not in the hierarchy.
type CashFlowParser struct {
	cfg Config
}

func NewCashFlowParser(cfg Config) *CashFlowParser {
	return &CashFlowParser{cfg: cfg}
}

func (p *CashFlowParser) Parse(rows [][]string) (*statement.CashFlow, error) {
	st, err := parse(rows, p.cfg, singleExtractor)
	if err != nil {
		return nil, err
	}
	return &statement.CashFlow{Statement: st}, nil
}
