package statement

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type RowKind int

const (
	KindSection RowKind = iota
	KindTotal
	KindParent
	KindChild
	KindCalculated
)

func (k RowKind) String() string {
	switch k {
	case KindSection:
		return "section"
	case KindTotal:
		return "total"
	case KindParent:
		return "parent"
	case KindChild:
		return "child"
	case KindCalculated:
		return "calculated"
	default:
		return fmt.Sprintf("RowKind(%d)", int(k))
	}
}

func (k RowKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *RowKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "section":
		*k = KindSection
	case "total":
		*k = KindTotal
	case "parent":
		*k = KindParent
	case "child":
		*k = KindChild
	case "calculated":
		*k = KindCalculated
	default:
		return fmt.Errorf("unknown row kind: %s", text)
	}
	return nil
}

// Value is the shape of a row's figures: a single amount for balance
// sheet and cash flow statements, per-period amounts for profit and loss.
type Value interface {
	decimal.Decimal | PeriodValues
}

type PeriodValue struct {
	Period string          `json:"period"`
	Amount decimal.Decimal `json:"amount"`
}

// PeriodValues keeps the header-row order of periods. Setting an
// existing label overwrites in place.
type PeriodValues []PeriodValue

func (pv PeriodValues) Get(period string) (decimal.Decimal, bool) {
	for _, v := range pv {
		if v.Period == period {
			return v.Amount, true
		}
	}
	return decimal.Decimal{}, false
}

func (pv *PeriodValues) Set(period string, amount decimal.Decimal) {
	for i, v := range *pv {
		if v.Period == period {
			(*pv)[i].Amount = amount
			return
		}
	}
	*pv = append(*pv, PeriodValue{Period: period, Amount: amount})
}

func (pv PeriodValues) Labels() []string {
	labels := make([]string, len(pv))
	for i, v := range pv {
		labels[i] = v.Period
	}
	return labels
}

type Row[V Value] struct {
	Name     string
	Kind     RowKind
	Value    V
	HasValue bool
}

type Node[V Value] interface {
	node()
}

type Leaf[V Value] struct {
	Name  string
	Value V
}

func (*Leaf[V]) node() {}

type Parent[V Value] struct {
	Name     string
	Children []Node[V]
	Total    V
	HasTotal bool
}

func (*Parent[V]) node() {}

type Section[V Value] struct {
	Name  string
	Nodes []Node[V]
}

type Calculated[V Value] struct {
	Name  string
	Value V
}
