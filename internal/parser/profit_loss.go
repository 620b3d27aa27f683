package parser

import "github.com/ledgerline/qbparse/internal/statement"

// ProfitLossParser parses the multi-period profit and loss export. Each
// data row carries one amount per period column discovered in the
// period header.
type ProfitLossParser struct {
	cfg Config
}

func NewProfitLossParser(cfg Config) *ProfitLossParser {
	return &ProfitLossParser{cfg: cfg}
}

func (p *ProfitLossParser) Parse(rows [][]string) (*statement.ProfitLoss, error) {
	st, err := parse(rows, p.cfg, periodExtractor)
	if err != nil {
		return nil, err
	}
	return &statement.ProfitLoss{Statement: st}, nil
}
