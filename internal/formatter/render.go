// Package formatter renders parsed statements as aligned plain text.
package formatter

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/qbparse/internal/statement"
)

const indentStep = "  "
const minGap = 2

type renderLine struct {
	text  string
	cells []string
}

// Render writes the section hierarchy, parent totals, and calculated
// summary rows as an indented report. Amounts are right-aligned in one
// column per period; single-value statements use a single column.
func Render[V statement.Value](st *statement.Statement[V], format NumberFormat) string {
	labels := st.Periods()
	lines := collectLines(st, labels, format)

	columns := len(labels)
	if columns == 0 {
		columns = 1
	}
	colWidths := make([]int, columns)
	for i, label := range labels {
		colWidths[i] = utf8.RuneCountInString(label)
	}

	nameWidth := 0
	for _, line := range lines {
		nameWidth = max(nameWidth, utf8.RuneCountInString(line.text))
		for i, cell := range line.cells {
			colWidths[i] = max(colWidths[i], utf8.RuneCountInString(cell))
		}
	}

	var sb strings.Builder
	if len(labels) > 0 {
		writeLine(&sb, renderLine{cells: labels}, nameWidth, colWidths)
	}
	for _, line := range lines {
		writeLine(&sb, line, nameWidth, colWidths)
	}
	return sb.String()
}

func collectLines[V statement.Value](st *statement.Statement[V], labels []string, format NumberFormat) []renderLine {
	var lines []renderLine
	for _, sec := range st.Sections() {
		lines = append(lines, renderLine{text: sec.Name})
		lines = appendNodes(lines, sec.Nodes, 1, labels, format)
	}
	for _, calc := range st.CalculatedRows() {
		lines = append(lines, renderLine{
			text:  calc.Name,
			cells: amountCells(calc.Value, labels, format),
		})
	}
	return lines
}

func appendNodes[V statement.Value](lines []renderLine, nodes []statement.Node[V], depth int, labels []string, format NumberFormat) []renderLine {
	prefix := strings.Repeat(indentStep, depth)
	for _, n := range nodes {
		switch node := n.(type) {
		case *statement.Leaf[V]:
			lines = append(lines, renderLine{
				text:  prefix + node.Name,
				cells: amountCells(node.Value, labels, format),
			})
		case *statement.Parent[V]:
			lines = append(lines, renderLine{text: prefix + node.Name})
			lines = appendNodes(lines, node.Children, depth+1, labels, format)
			if node.HasTotal {
				lines = append(lines, renderLine{
					text:  prefix + "Total for " + node.Name,
					cells: amountCells(node.Total, labels, format),
				})
			}
		}
	}
	return lines
}

// amountCells renders one cell per period column, leaving cells blank
// for periods the row has no value for.
func amountCells[V statement.Value](value V, labels []string, format NumberFormat) []string {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return []string{FormatAmount(v, format)}
	case statement.PeriodValues:
		cells := make([]string, len(labels))
		for i, label := range labels {
			if amount, ok := v.Get(label); ok {
				cells[i] = FormatAmount(amount, format)
			}
		}
		return cells
	}
	return nil
}

func writeLine(sb *strings.Builder, line renderLine, nameWidth int, colWidths []int) {
	var row strings.Builder
	row.WriteString(line.text)
	pad := nameWidth - utf8.RuneCountInString(line.text)
	for i, cell := range line.cells {
		row.WriteString(strings.Repeat(" ", pad+minGap+colWidths[i]-utf8.RuneCountInString(cell)))
		row.WriteString(cell)
		pad = 0
	}
	sb.WriteString(strings.TrimRight(row.String(), " "))
	sb.WriteString("\n")
}
