package parser

import (
	"fmt"
	"strings"

	"github.com/ledgerline/qbparse/internal/statement"
)

// parse is the shared pipeline behind every statement variant:
// structural preprocessing, footer truncation, row classification with
// value extraction, the single-pass hierarchy build, and required-
// section validation. State lives in a fresh builder per call.
func parse[V statement.Value](raw [][]string, cfg Config, newExtract func([]periodColumn) extractFunc[V]) (*statement.Statement[V], error) {
	if len(raw) < cfg.MinRows {
		return nil, tooShortError(cfg.Name, cfg.MinRows, len(raw))
	}
	body := raw[cfg.SkipRows:]

	// Exports pad the preamble with fully blank rows, so the column
	// header is located rather than addressed by position. It is
	// consumed, never parsed as data.
	headerIdx := nextContentRow(body, 0)
	if headerIdx == len(body) {
		return nil, noDataError(cfg.Name)
	}
	dataStart := headerIdx + 1

	var periods []periodColumn
	if cfg.MultiPeriod {
		// Period labels live on their own row below the column header.
		periodIdx := nextContentRow(body, dataStart)
		if periodIdx == len(body) {
			return nil, missingPeriodHeaderError(cfg.Name)
		}
		periods = parsePeriodHeader(body[periodIdx])
		if len(periods) == 0 {
			return nil, noPeriodColumnsError(cfg.Name)
		}
		dataStart = periodIdx + 1
	} else if len(body[headerIdx]) < cfg.MinColumns {
		return nil, tooFewColumnsError(cfg.Name, cfg.MinColumns, len(body[headerIdx]))
	}
	data := body[dataStart:]

	extract := newExtract(periods)
	rowOffset := cfg.SkipRows + dataStart

	var (
		b    builder[V]
		rows []statement.Row[V]
	)
	for i, cells := range data {
		if len(cells) == 0 {
			continue
		}
		name := strings.TrimSpace(cells[0])
		if name == "" {
			continue
		}
		if cfg.Footer != nil && cfg.Footer.MatchString(name) {
			break
		}
		value, has, err := extract(cells)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowOffset+i+1, err)
		}
		row := statement.Row[V]{
			Name:     name,
			Kind:     Classify(name, has, cfg),
			Value:    value,
			HasValue: has,
		}
		rows = append(rows, row)
		b.add(row)
	}
	if len(rows) == 0 {
		return nil, noDataError(cfg.Name)
	}

	st := statement.New(b.sections, b.calc, rows, b.unmatched)
	if err := validateSections(st, cfg); err != nil {
		return nil, err
	}
	return st, nil
}

// nextContentRow returns the index of the first row at or after start
// with at least one non-blank cell, or len(rows) when none remains.
func nextContentRow(rows [][]string, start int) int {
	for i := start; i < len(rows); i++ {
		for _, cell := range rows[i] {
			if strings.TrimSpace(cell) != "" {
				return i
			}
		}
	}
	return len(rows)
}

func validateSections[V statement.Value](st *statement.Statement[V], cfg Config) error {
	for _, group := range cfg.RequiredSections {
		found := false
		for _, name := range group {
			if _, ok := st.Section(name); ok {
				found = true
				break
			}
		}
		if !found {
			return missingSectionError(cfg.Name, group[0])
		}
	}
	return nil
}
