package statement

type ProfitLoss struct {
	*Statement[PeriodValues]
}

func (p *ProfitLoss) Income() *Section[PeriodValues] {
	return p.sectionOrEmpty("Income")
}

func (p *ProfitLoss) Expenses() *Section[PeriodValues] {
	return p.sectionOrEmpty("Expenses")
}

// COGS is optional; service businesses export without it. The second
// return is false when the section is absent or has no accounts.
func (p *ProfitLoss) COGS() (*Section[PeriodValues], bool) {
	return p.optionalSection("Cost of Goods Sold")
}

func (p *ProfitLoss) OtherExpenses() (*Section[PeriodValues], bool) {
	return p.optionalSection("Other Expenses")
}

func (p *ProfitLoss) sectionOrEmpty(name string) *Section[PeriodValues] {
	if sec, ok := p.Statement.Section(name); ok {
		return sec
	}
	return &Section[PeriodValues]{Name: name}
}

func (p *ProfitLoss) optionalSection(name string) (*Section[PeriodValues], bool) {
	sec, ok := p.Statement.Section(name)
	if !ok || len(sec.Nodes) == 0 {
		return nil, false
	}
	return sec, true
}

func (p *ProfitLoss) UnmarshalJSON(data []byte) error {
	st := &Statement[PeriodValues]{}
	if err := st.UnmarshalJSON(data); err != nil {
		return err
	}
	p.Statement = st
	return nil
}
