package statement

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// The wire form is shared by both value shapes: single amounts travel in
// "value"/"total", per-period amounts in "values"/"totals". Decoding into
// the wrong statement shape fails instead of guessing.

type statementDoc struct {
	Sections   []sectionDoc `json:"sections"`
	Calculated []calcDoc    `json:"calculated_rows"`
	Rows       []rowDoc     `json:"rows,omitempty"`
	Unmatched  []rowDoc     `json:"unmatched_totals,omitempty"`
}

type sectionDoc struct {
	Name     string    `json:"name"`
	Accounts []nodeDoc `json:"accounts"`
}

type nodeDoc struct {
	Name     string           `json:"name"`
	Parent   bool             `json:"parent,omitempty"`
	Value    *decimal.Decimal `json:"value,omitempty"`
	Values   PeriodValues     `json:"values,omitempty"`
	Children []nodeDoc        `json:"children,omitempty"`
	Total    *decimal.Decimal `json:"total,omitempty"`
	Totals   PeriodValues     `json:"totals,omitempty"`
}

type calcDoc struct {
	Name   string           `json:"name"`
	Value  *decimal.Decimal `json:"value,omitempty"`
	Values PeriodValues     `json:"values,omitempty"`
}

type rowDoc struct {
	Name   string           `json:"name"`
	Kind   RowKind          `json:"kind"`
	Value  *decimal.Decimal `json:"value,omitempty"`
	Values PeriodValues     `json:"values,omitempty"`
}

func (s *Statement[V]) MarshalJSON() ([]byte, error) {
	doc := statementDoc{
		Sections:   make([]sectionDoc, 0, len(s.order)),
		Calculated: make([]calcDoc, 0, len(s.calc)),
		Rows:       encodeRows(s.rows),
		Unmatched:  encodeRows(s.unmatched),
	}
	for _, name := range s.order {
		sec := s.sections[name]
		doc.Sections = append(doc.Sections, sectionDoc{
			Name:     sec.Name,
			Accounts: encodeNodes(sec.Nodes),
		})
	}
	for _, c := range s.calc {
		value, values := splitValue(c.Value)
		doc.Calculated = append(doc.Calculated, calcDoc{Name: c.Name, Value: value, Values: values})
	}
	return json.Marshal(doc)
}

func (s *Statement[V]) UnmarshalJSON(data []byte) error {
	var doc statementDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	sections := make([]*Section[V], 0, len(doc.Sections))
	for _, sd := range doc.Sections {
		nodes, err := decodeNodes[V](sd.Accounts)
		if err != nil {
			return fmt.Errorf("section %q: %w", sd.Name, err)
		}
		sections = append(sections, &Section[V]{Name: sd.Name, Nodes: nodes})
	}
	calc := make([]Calculated[V], 0, len(doc.Calculated))
	for _, cd := range doc.Calculated {
		value, err := joinValue[V](cd.Value, cd.Values)
		if err != nil {
			return fmt.Errorf("calculated row %q: %w", cd.Name, err)
		}
		calc = append(calc, Calculated[V]{Name: cd.Name, Value: value})
	}
	rows, err := decodeRows[V](doc.Rows)
	if err != nil {
		return err
	}
	unmatched, err := decodeRows[V](doc.Unmatched)
	if err != nil {
		return err
	}
	*s = *New(sections, calc, rows, unmatched)
	return nil
}

func encodeNodes[V Value](nodes []Node[V]) []nodeDoc {
	if len(nodes) == 0 {
		return nil
	}
	docs := make([]nodeDoc, 0, len(nodes))
	for _, n := range nodes {
		docs = append(docs, encodeNode[V](n))
	}
	return docs
}

func encodeNode[V Value](n Node[V]) nodeDoc {
	switch node := n.(type) {
	case *Leaf[V]:
		value, values := splitValue(node.Value)
		return nodeDoc{Name: node.Name, Value: value, Values: values}
	case *Parent[V]:
		doc := nodeDoc{Name: node.Name, Parent: true, Children: encodeNodes(node.Children)}
		if node.HasTotal {
			doc.Total, doc.Totals = splitValue(node.Total)
		}
		return doc
	}
	return nodeDoc{}
}

func decodeNodes[V Value](docs []nodeDoc) ([]Node[V], error) {
	if len(docs) == 0 {
		return nil, nil
	}
	nodes := make([]Node[V], 0, len(docs))
	for _, doc := range docs {
		n, err := decodeNode[V](doc)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func decodeNode[V Value](doc nodeDoc) (Node[V], error) {
	if doc.Parent || len(doc.Children) > 0 {
		children, err := decodeNodes[V](doc.Children)
		if err != nil {
			return nil, err
		}
		p := &Parent[V]{Name: doc.Name, Children: children}
		if doc.Total != nil || len(doc.Totals) > 0 {
			total, err := joinValue[V](doc.Total, doc.Totals)
			if err != nil {
				return nil, fmt.Errorf("account %q: %w", doc.Name, err)
			}
			p.Total = total
			p.HasTotal = true
		}
		return p, nil
	}
	value, err := joinValue[V](doc.Value, doc.Values)
	if err != nil {
		return nil, fmt.Errorf("account %q: %w", doc.Name, err)
	}
	return &Leaf[V]{Name: doc.Name, Value: value}, nil
}

func encodeRows[V Value](rows []Row[V]) []rowDoc {
	if len(rows) == 0 {
		return nil
	}
	docs := make([]rowDoc, 0, len(rows))
	for _, r := range rows {
		doc := rowDoc{Name: r.Name, Kind: r.Kind}
		if r.HasValue {
			doc.Value, doc.Values = splitValue(r.Value)
		}
		docs = append(docs, doc)
	}
	return docs
}

func decodeRows[V Value](docs []rowDoc) ([]Row[V], error) {
	if len(docs) == 0 {
		return nil, nil
	}
	rows := make([]Row[V], 0, len(docs))
	for _, doc := range docs {
		row := Row[V]{Name: doc.Name, Kind: doc.Kind}
		if doc.Value != nil || len(doc.Values) > 0 {
			value, err := joinValue[V](doc.Value, doc.Values)
			if err != nil {
				return nil, fmt.Errorf("row %q: %w", doc.Name, err)
			}
			row.Value = value
			row.HasValue = true
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// splitValue routes a value to the wire field matching its shape.
func splitValue[V Value](v V) (*decimal.Decimal, PeriodValues) {
	switch val := any(v).(type) {
	case decimal.Decimal:
		d := val
		return &d, nil
	case PeriodValues:
		return nil, val
	}
	return nil, nil
}

// joinValue reads back whichever wire field the shape V expects.
func joinValue[V Value](value *decimal.Decimal, values PeriodValues) (V, error) {
	var v V
	switch p := any(&v).(type) {
	case *decimal.Decimal:
		if len(values) > 0 {
			return v, errors.New("unexpected period values for a single-value statement")
		}
		if value != nil {
			*p = *value
		}
	case *PeriodValues:
		if value != nil {
			return v, errors.New("unexpected single value for a multi-period statement")
		}
		*p = values
	}
	return v, nil
}
