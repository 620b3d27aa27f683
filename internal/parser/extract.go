package parser

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/qbparse/internal/statement"
)

type periodColumn struct {
	col   int
	label string
}

// parsePeriodHeader collects every non-blank cell after the account-name
// column, keeping left-to-right order.
func parsePeriodHeader(row []string) []periodColumn {
	var cols []periodColumn
	for i := 1; i < len(row); i++ {
		label := strings.TrimSpace(row[i])
		if label == "" {
			continue
		}
		cols = append(cols, periodColumn{col: i, label: label})
	}
	return cols
}

type extractFunc[V statement.Value] func(cells []string) (V, bool, error)

// singleExtractor reads the lone value column. A non-empty cell that
// fails currency cleaning fails the parse.
func singleExtractor(_ []periodColumn) extractFunc[decimal.Decimal] {
	return func(cells []string) (decimal.Decimal, bool, error) {
		if len(cells) < 2 {
			return decimal.Decimal{}, false, nil
		}
		raw := strings.TrimSpace(cells[1])
		if raw == "" {
			return decimal.Decimal{}, false, nil
		}
		d, err := CleanCurrency(raw)
		if err != nil {
			return decimal.Decimal{}, false, err
		}
		return d, true, nil
	}
}

// periodExtractor reads every mapped period column, skipping blank and
// unparseable cells. Sparse rows stay sparse; nothing is zero-filled.
func periodExtractor(periods []periodColumn) extractFunc[statement.PeriodValues] {
	return func(cells []string) (statement.PeriodValues, bool, error) {
		var values statement.PeriodValues
		for _, pc := range periods {
			if pc.col >= len(cells) {
				continue
			}
			raw := strings.TrimSpace(cells[pc.col])
			if raw == "" {
				continue
			}
			d, err := CleanCurrency(raw)
			if err != nil {
				continue
			}
			values.Set(pc.label, d)
		}
		return values, len(values) > 0, nil
	}
}
