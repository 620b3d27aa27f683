package statement

import "github.com/shopspring/decimal"

type CashFlow struct {
	*Statement[decimal.Decimal]
}

func (c *CashFlow) Operating() *Section[decimal.Decimal] {
	return c.sectionOrEmpty("OPERATING ACTIVITIES")
}

func (c *CashFlow) Investing() *Section[decimal.Decimal] {
	return c.sectionOrEmpty("INVESTING ACTIVITIES")
}

func (c *CashFlow) Financing() *Section[decimal.Decimal] {
	return c.sectionOrEmpty("FINANCING ACTIVITIES")
}

// BeginningCash reads the "Cash at beginning of period" calculated row.
func (c *CashFlow) BeginningCash() (decimal.Decimal, bool) {
	if row, ok := c.CalculatedRow("Cash at beginning of period"); ok {
		return row.Value, true
	}
	return decimal.Decimal{}, false
}

// EndingCash reads the "CASH AT END OF PERIOD" calculated row.
func (c *CashFlow) EndingCash() (decimal.Decimal, bool) {
	if row, ok := c.CalculatedRow("CASH AT END OF PERIOD"); ok {
		return row.Value, true
	}
	return decimal.Decimal{}, false
}

func (c *CashFlow) NetIncrease() (decimal.Decimal, bool) {
	if row, ok := c.CalculatedRow("NET CASH INCREASE FOR PERIOD"); ok {
		return row.Value, true
	}
	return decimal.Decimal{}, false
}

func (c *CashFlow) sectionOrEmpty(name string) *Section[decimal.Decimal] {
	if sec, ok := c.Statement.Section(name); ok {
		return sec
	}
	return &Section[decimal.Decimal]{Name: name}
}

func (c *CashFlow) UnmarshalJSON(data []byte) error {
	st := &Statement[decimal.Decimal]{}
	if err := st.UnmarshalJSON(data); err != nil {
		return err
	}
	c.Statement = st
	return nil
}
