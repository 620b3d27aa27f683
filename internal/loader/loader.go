package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

type Loader struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log}
}

// Load reads a statement export into raw rows, one row per line of the
// original file, padded to a uniform width. Nothing is dropped here;
// metadata and footer handling belong to the parser.
func (l *Loader) Load(path string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, LoadError{
			Kind:    ErrorFileNotFound,
			Path:    path,
			Message: fmt.Sprintf("cannot read file: %v", err),
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	var read func(string) ([][]string, error)
	switch ext {
	case ".csv":
		read = readCSV
	case ".xls":
		read = readXLS
	case ".xlsx":
		read = readXLSX
	default:
		return nil, LoadError{
			Kind:    ErrorUnsupportedFormat,
			Path:    path,
			Message: fmt.Sprintf("unsupported file format: %s", ext),
		}
	}

	rows, err := read(path)
	if err != nil {
		return nil, LoadError{
			Kind:    ErrorCorruptedFile,
			Path:    path,
			Message: fmt.Sprintf("cannot parse %s file: %v", ext, err),
		}
	}
	if len(rows) == 0 {
		return nil, LoadError{
			Kind:    ErrorEmptyFile,
			Path:    path,
			Message: "file contains no rows",
		}
	}

	rows = padRows(rows)
	l.log.Debug("loaded statement file",
		zap.String("path", path),
		zap.Int("rows", len(rows)),
		zap.Int("columns", len(rows[0])),
	)
	return rows, nil
}

// padRows right-pads short rows to the widest row's length so downstream
// column indexing never runs out of bounds on ragged exports.
func padRows(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range rows {
		if len(row) == width {
			continue
		}
		padded := make([]string, width)
		copy(padded, row)
		rows[i] = padded
	}
	return rows
}
