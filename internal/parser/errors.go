package parser

import "fmt"

type ErrorKind int

const (
	ErrorTooShort ErrorKind = iota
	ErrorTooFewColumns
	ErrorMissingPeriodHeader
	ErrorNoData
	ErrorMissingSection
)

// StructuralError is fatal: the export is missing structure the statement
// requires, and no partial result is returned.
type StructuralError struct {
	Kind      ErrorKind
	Statement string
	Message   string
}

func (e StructuralError) Error() string {
	return e.Message
}

func tooShortError(statement string, want, got int) StructuralError {
	return StructuralError{
		Kind:      ErrorTooShort,
		Statement: statement,
		Message:   fmt.Sprintf("file too short: expected at least %d rows, got %d", want, got),
	}
}

func tooFewColumnsError(statement string, want, got int) StructuralError {
	return StructuralError{
		Kind:      ErrorTooFewColumns,
		Statement: statement,
		Message:   fmt.Sprintf("header row too narrow: expected at least %d columns, got %d", want, got),
	}
}

func missingPeriodHeaderError(statement string) StructuralError {
	return StructuralError{
		Kind:      ErrorMissingPeriodHeader,
		Statement: statement,
		Message:   "missing period header row",
	}
}

func noPeriodColumnsError(statement string) StructuralError {
	return StructuralError{
		Kind:      ErrorMissingPeriodHeader,
		Statement: statement,
		Message:   "no period columns found in period header row",
	}
}

func noDataError(statement string) StructuralError {
	return StructuralError{
		Kind:      ErrorNoData,
		Statement: statement,
		Message:   "no data rows found after skipping metadata and footer",
	}
}

func missingSectionError(statement, section string) StructuralError {
	return StructuralError{
		Kind:      ErrorMissingSection,
		Statement: statement,
		Message:   fmt.Sprintf("missing required section: %s", section),
	}
}

// CurrencyError reports a value cell that survives cleaning but still does
// not parse as a signed decimal. Figures are never coerced to zero.
type CurrencyError struct {
	Value string
}

func (e CurrencyError) Error() string {
	return fmt.Sprintf("cannot parse currency value: %q", e.Value)
}
