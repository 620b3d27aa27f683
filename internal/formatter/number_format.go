package formatter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// NumberFormat describes how amounts are written: the currency symbol,
// the decimal mark, the grouping separator, and the number of decimal
// places. The zero value prints bare integers.
type NumberFormat struct {
	Symbol        string
	DecimalMark   rune
	ThousandsSep  string
	DecimalPlaces int
	HasDecimal    bool
}

// DefaultFormat matches the QuickBooks export style: $1,234.56 with the
// sign before the symbol.
func DefaultFormat() NumberFormat {
	return NumberFormat{
		Symbol:        "$",
		DecimalMark:   '.',
		ThousandsSep:  ",",
		DecimalPlaces: 2,
		HasDecimal:    true,
	}
}

// ParseNumberFormat infers a format from a sample amount such as
// "$1,234.56" or "1.234,56". A sample with a single separator reads it
// as the decimal mark.
func ParseNumberFormat(sample string) NumberFormat {
	nf := NumberFormat{
		DecimalMark: '.',
		Symbol:      extractSymbol(sample),
	}

	numberPart := extractNumberPart(sample)
	if numberPart == "" {
		return nf
	}

	lastDot := strings.LastIndex(numberPart, ".")
	lastComma := strings.LastIndex(numberPart, ",")

	switch {
	case lastDot > lastComma:
		nf.DecimalMark = '.'
		nf.HasDecimal = true
		nf.DecimalPlaces = len(numberPart) - lastDot - 1
		if lastComma >= 0 {
			nf.ThousandsSep = ","
		} else if strings.Contains(numberPart[:lastDot], " ") {
			nf.ThousandsSep = " "
		}
	case lastComma > lastDot:
		nf.DecimalMark = ','
		nf.HasDecimal = true
		nf.DecimalPlaces = len(numberPart) - lastComma - 1
		if lastDot >= 0 {
			nf.ThousandsSep = "."
		} else if strings.Contains(numberPart[:lastComma], " ") {
			nf.ThousandsSep = " "
		}
	default:
		if strings.Contains(numberPart, " ") {
			nf.ThousandsSep = " "
		}
	}

	return nf
}

// extractSymbol returns the first run of currency-symbol runes in the
// sample, so both "$1,234.56" and "1.234,56 €" yield their symbol.
func extractSymbol(sample string) string {
	var sb strings.Builder
	for _, r := range sample {
		if unicode.Is(unicode.Sc, r) {
			sb.WriteRune(r)
			continue
		}
		if sb.Len() > 0 {
			break
		}
	}
	return sb.String()
}

func extractNumberPart(sample string) string {
	var start, end int
	inNumber := false
	lastDigitPos := -1

	for i, r := range sample {
		isNumberChar := unicode.IsDigit(r) || r == '.' || r == ',' || r == ' '
		if isNumberChar {
			if !inNumber {
				start = i
				inNumber = true
			}
			if unicode.IsDigit(r) {
				lastDigitPos = i
			}
			end = i + utf8.RuneLen(r)
		} else if inNumber {
			break
		}
	}

	if !inNumber || lastDigitPos < 0 {
		return ""
	}

	return strings.TrimSpace(sample[start:end])
}

// FormatAmount renders qty with the currency symbol, keeping the sign
// in front of the symbol the way exports print it: -$2,832.50.
func FormatAmount(qty decimal.Decimal, format NumberFormat) string {
	if format.Symbol == "" {
		return FormatNumber(qty, format)
	}
	if qty.IsNegative() {
		return "-" + format.Symbol + FormatNumber(qty.Neg(), format)
	}
	return format.Symbol + FormatNumber(qty, format)
}

// FormatNumber renders qty without a symbol, applying grouping and the
// decimal mark.
func FormatNumber(qty decimal.Decimal, format NumberFormat) string {
	var str string
	if format.HasDecimal {
		str = qty.StringFixed(int32(format.DecimalPlaces))
	} else {
		str = qty.Round(0).String()
	}

	parts := strings.Split(str, ".")
	intPart := parts[0]
	decPart := ""
	if len(parts) > 1 {
		decPart = parts[1]
	}

	negative := false
	if strings.HasPrefix(intPart, "-") {
		negative = true
		intPart = intPart[1:]
	}

	if format.ThousandsSep != "" && len(intPart) > 3 {
		var groups []string
		for len(intPart) > 3 {
			groups = append([]string{intPart[len(intPart)-3:]}, groups...)
			intPart = intPart[:len(intPart)-3]
		}
		if len(intPart) > 0 {
			groups = append([]string{intPart}, groups...)
		}
		intPart = strings.Join(groups, format.ThousandsSep)
	}

	var result strings.Builder
	if negative {
		result.WriteString("-")
	}
	result.WriteString(intPart)

	if format.HasDecimal && format.DecimalPlaces > 0 {
		result.WriteRune(format.DecimalMark)
		result.WriteString(decPart)
	}

	return result.String()
}
