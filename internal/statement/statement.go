package statement

// Statement is the parsed result for one statement export: the section
// hierarchy, the calculated summary rows, and the classified backing
// table. Built once by a parser; read-only afterwards.
type Statement[V Value] struct {
	sections  map[string]*Section[V]
	order     []string
	calc      []Calculated[V]
	rows      []Row[V]
	unmatched []Row[V]
}

func New[V Value](sections []*Section[V], calc []Calculated[V], rows []Row[V], unmatched []Row[V]) *Statement[V] {
	st := &Statement[V]{
		sections:  make(map[string]*Section[V], len(sections)),
		calc:      calc,
		rows:      rows,
		unmatched: unmatched,
	}
	for _, sec := range sections {
		if _, ok := st.sections[sec.Name]; !ok {
			st.order = append(st.order, sec.Name)
		}
		st.sections[sec.Name] = sec
	}
	return st
}

func (s *Statement[V]) Section(name string) (*Section[V], bool) {
	sec, ok := s.sections[name]
	return sec, ok
}

func (s *Statement[V]) SectionNames() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

func (s *Statement[V]) Sections() []*Section[V] {
	out := make([]*Section[V], 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.sections[name])
	}
	return out
}

func (s *Statement[V]) CalculatedRows() []Calculated[V] {
	return s.calc
}

func (s *Statement[V]) CalculatedRow(name string) (Calculated[V], bool) {
	for _, c := range s.calc {
		if c.Name == name {
			return c, true
		}
	}
	return Calculated[V]{}, false
}

func (s *Statement[V]) Rows() []Row[V] {
	return s.rows
}

func (s *Statement[V]) UnmatchedTotals() []Row[V] {
	return s.unmatched
}

// Walk visits every node depth-first in section order. Returning false
// from fn stops the walk.
func (s *Statement[V]) Walk(fn func(Node[V]) bool) {
	for _, name := range s.order {
		if !walkNodes(s.sections[name].Nodes, fn) {
			return
		}
	}
}

func walkNodes[V Value](nodes []Node[V], fn func(Node[V]) bool) bool {
	for _, n := range nodes {
		if !fn(n) {
			return false
		}
		if p, ok := n.(*Parent[V]); ok {
			if !walkNodes(p.Children, fn) {
				return false
			}
		}
	}
	return true
}

// Periods returns the period labels in header order, taken from the
// first leaf carrying per-period values, falling back to the first
// calculated row. Single-value statements yield nil.
func (s *Statement[V]) Periods() []string {
	var labels []string
	s.Walk(func(n Node[V]) bool {
		leaf, ok := n.(*Leaf[V])
		if !ok {
			return true
		}
		if pv, ok := any(leaf.Value).(PeriodValues); ok && len(pv) > 0 {
			labels = pv.Labels()
			return false
		}
		return true
	})
	if labels != nil {
		return labels
	}
	if len(s.calc) > 0 {
		if pv, ok := any(s.calc[0].Value).(PeriodValues); ok {
			return pv.Labels()
		}
	}
	return nil
}

func (s *Statement[V]) AccountByName(name string) (Node[V], bool) {
	var found Node[V]
	s.Walk(func(n Node[V]) bool {
		switch v := n.(type) {
		case *Leaf[V]:
			if v.Name == name {
				found = v
				return false
			}
		case *Parent[V]:
			if v.Name == name {
				found = v
				return false
			}
		}
		return true
	})
	return found, found != nil
}

func (s *Statement[V]) AccountNames() []string {
	var names []string
	s.Walk(func(n Node[V]) bool {
		switch v := n.(type) {
		case *Leaf[V]:
			names = append(names, v.Name)
		case *Parent[V]:
			names = append(names, v.Name)
		}
		return true
	})
	return names
}
