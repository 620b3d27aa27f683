package parser

import (
	"strings"

	"github.com/ledgerline/qbparse/internal/statement"
)

// builder holds the parse state for one pass: the open section, the open
// parent, and the stack of enclosing parents. One builder per parse call.
type builder[V statement.Value] struct {
	sections  []*statement.Section[V]
	current   *statement.Section[V]
	parent    *statement.Parent[V]
	stack     []*statement.Parent[V]
	calc      []statement.Calculated[V]
	unmatched []statement.Row[V]
}

func (b *builder[V]) add(row statement.Row[V]) {
	switch row.Kind {
	case statement.KindSection:
		sec := &statement.Section[V]{Name: row.Name}
		b.sections = append(b.sections, sec)
		b.current = sec
		b.parent = nil
		b.stack = b.stack[:0]

	case statement.KindParent:
		node := &statement.Parent[V]{Name: row.Name}
		switch {
		case b.parent != nil:
			b.stack = append(b.stack, b.parent)
			b.parent.Children = append(b.parent.Children, node)
		case b.current != nil:
			b.current.Nodes = append(b.current.Nodes, node)
		}
		b.parent = node

	case statement.KindChild:
		leaf := &statement.Leaf[V]{Name: row.Name, Value: row.Value}
		switch {
		case b.parent != nil:
			b.parent.Children = append(b.parent.Children, leaf)
		case b.current != nil:
			b.current.Nodes = append(b.current.Nodes, leaf)
		}

	case statement.KindTotal:
		target := strings.TrimPrefix(row.Name, totalPrefix)
		if b.parent == nil || b.parent.Name != target {
			// Out-of-order or malformed Total: dropped, but kept on the
			// diagnostic list so callers can surface it.
			b.unmatched = append(b.unmatched, row)
			return
		}
		b.parent.Total = row.Value
		b.parent.HasTotal = row.HasValue
		if n := len(b.stack); n > 0 {
			b.parent = b.stack[n-1]
			b.stack = b.stack[:n-1]
		} else {
			b.parent = nil
		}

	case statement.KindCalculated:
		b.calc = append(b.calc, statement.Calculated[V]{Name: row.Name, Value: row.Value})
	}
}
