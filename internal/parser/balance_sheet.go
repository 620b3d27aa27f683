package parser

import "github.com/ledgerline/qbparse/internal/statement"

// BalanceSheetParser parses the single-value balance sheet export.
// Configs normally come from BalanceSheetConfig, optionally adjusted by
// the settings file.
type BalanceSheetParser struct {
	cfg Config
}

func NewBalanceSheetParser(cfg Config) *BalanceSheetParser {
	return &BalanceSheetParser{cfg: cfg}
}

func (p *BalanceSheetParser) Parse(rows [][]string) (*statement.BalanceSheet, error) {
	st, err := parse(rows, p.cfg, singleExtractor)
	if err != nil {
		return nil, err
	}
	return &statement.BalanceSheet{Statement: st}, nil
}
