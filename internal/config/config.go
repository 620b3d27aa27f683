// Package config resolves run-time settings from an optional config
// file layered over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/viper"

	"github.com/ledgerline/qbparse/internal/parser"
)

const defaultExpectedPeriods = 12

// Settings holds the merged configuration for a run.
type Settings struct {
	v *viper.Viper
}

// Load reads configuration from path. An empty path searches the
// current directory for a qbparse config file and falls back to
// defaults when none exists; an explicitly named file must be readable.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("historical.expected_periods", defaultExpectedPeriods)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
		}
		return &Settings{v: v}, nil
	}

	v.SetConfigName("qbparse")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("cannot read config file: %w", err)
		}
	}
	return &Settings{v: v}, nil
}

// ExpectedPeriods returns the number of months a historical export is
// expected to cover.
func (s *Settings) ExpectedPeriods() int {
	if n := s.v.GetInt("historical.expected_periods"); n > 0 {
		return n
	}
	return defaultExpectedPeriods
}

// NumberFormat returns the sample amount configured for rendering, such
// as "$1,234.56", or an empty string when none is set.
func (s *Settings) NumberFormat() string {
	return s.v.GetString("render.number_format")
}

// Statement overlays file-level overrides for one statement variant
// onto base. Keys live under statement.<name> with spaces replaced by
// underscores, so the balance sheet reads statement.balance_sheet.*.
// Absent keys keep the base value.
func (s *Settings) Statement(base parser.Config) (parser.Config, error) {
	cfg := base
	prefix := "statement." + strings.ReplaceAll(base.Name, " ", "_") + "."

	if key := prefix + "footer_pattern"; s.v.IsSet(key) {
		re, err := regexp.Compile(s.v.GetString(key))
		if err != nil {
			return parser.Config{}, fmt.Errorf("invalid %s: %w", key, err)
		}
		cfg.Footer = re
	}
	if key := prefix + "skip_rows"; s.v.IsSet(key) {
		if n := s.v.GetInt(key); n >= 0 {
			cfg.SkipRows = n
		}
	}
	if key := prefix + "min_rows"; s.v.IsSet(key) {
		if n := s.v.GetInt(key); n > 0 {
			cfg.MinRows = n
		}
	}
	if key := prefix + "min_columns"; s.v.IsSet(key) {
		if n := s.v.GetInt(key); n > 0 {
			cfg.MinColumns = n
		}
	}
	if key := prefix + "section_markers"; s.v.IsSet(key) {
		if names := s.v.GetStringSlice(key); len(names) > 0 {
			cfg.SectionMarkers = toSet(names)
		}
	}
	if key := prefix + "calculated_rows"; s.v.IsSet(key) {
		cfg.CalculatedRows = toSet(s.v.GetStringSlice(key))
	}
	return cfg, nil
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
