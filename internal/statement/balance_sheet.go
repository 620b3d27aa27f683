package statement

import "github.com/shopspring/decimal"

type BalanceSheet struct {
	*Statement[decimal.Decimal]
}

func (b *BalanceSheet) Assets() *Section[decimal.Decimal] {
	return b.sectionOrEmpty("Assets")
}

// Liabilities falls back to the combined "Liabilities and Equity"
// section when the export does not break liabilities out on their own.
func (b *BalanceSheet) Liabilities() *Section[decimal.Decimal] {
	if sec, ok := b.Statement.Section("Liabilities"); ok && len(sec.Nodes) > 0 {
		return sec
	}
	if sec, ok := b.Statement.Section("Liabilities and Equity"); ok {
		return sec
	}
	return &Section[decimal.Decimal]{Name: "Liabilities"}
}

func (b *BalanceSheet) Equity() *Section[decimal.Decimal] {
	if sec, ok := b.Statement.Section("Equity"); ok && len(sec.Nodes) > 0 {
		return sec
	}
	if sec, ok := b.Statement.Section("Liabilities and Equity"); ok {
		return sec
	}
	return &Section[decimal.Decimal]{Name: "Equity"}
}

func (b *BalanceSheet) sectionOrEmpty(name string) *Section[decimal.Decimal] {
	if sec, ok := b.Statement.Section(name); ok {
		return sec
	}
	return &Section[decimal.Decimal]{Name: name}
}

func (b *BalanceSheet) UnmarshalJSON(data []byte) error {
	st := &Statement[decimal.Decimal]{}
	if err := st.UnmarshalJSON(data); err != nil {
		return err
	}
	b.Statement = st
	return nil
}
