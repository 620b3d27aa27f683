package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func balanceFixture() *Statement[decimal.Decimal] {
	return New(
		[]*Section[decimal.Decimal]{
			{
				Name: "Assets",
				Nodes: []Node[decimal.Decimal]{
					&Leaf[decimal.Decimal]{Name: "Checking", Value: dec("1200.50")},
					&Parent[decimal.Decimal]{
						Name: "Fixed Assets",
						Children: []Node[decimal.Decimal]{
							&Leaf[decimal.Decimal]{Name: "Truck", Value: dec("30000")},
						},
						Total:    dec("30000"),
						HasTotal: true,
					},
				},
			},
			{
				Name: "Equity",
				Nodes: []Node[decimal.Decimal]{
					&Leaf[decimal.Decimal]{Name: "Retained Earnings", Value: dec("5000")},
				},
			},
		},
		[]Calculated[decimal.Decimal]{},
		nil,
		nil,
	)
}

func periodsFixture() *Statement[PeriodValues] {
	return New(
		[]*Section[PeriodValues]{
			{
				Name: "Income",
				Nodes: []Node[PeriodValues]{
					&Leaf[PeriodValues]{Name: "Sales", Value: PeriodValues{
						{Period: "Jan 2023", Amount: dec("100")},
						{Period: "Feb 2023", Amount: dec("200")},
					}},
				},
			},
		},
		[]Calculated[PeriodValues]{
			{Name: "Net Income", Value: PeriodValues{
				{Period: "Jan 2023", Amount: dec("40")},
				{Period: "Feb 2023", Amount: dec("90")},
			}},
		},
		nil,
		nil,
	)
}

func TestStatement_SectionOrder(t *testing.T) {
	st := balanceFixture()

	assert.Equal(t, []string{"Assets", "Equity"}, st.SectionNames())

	secs := st.Sections()
	require.Len(t, secs, 2)
	assert.Equal(t, "Assets", secs[0].Name)
	assert.Equal(t, "Equity", secs[1].Name)
}

func TestStatement_DuplicateSectionReplaces(t *testing.T) {
	st := New(
		[]*Section[decimal.Decimal]{
			{Name: "Assets", Nodes: []Node[decimal.Decimal]{
				&Leaf[decimal.Decimal]{Name: "Old", Value: dec("1")},
			}},
			{Name: "Equity"},
			{Name: "Assets", Nodes: []Node[decimal.Decimal]{
				&Leaf[decimal.Decimal]{Name: "New", Value: dec("2")},
			}},
		},
		nil, nil, nil,
	)

	assert.Equal(t, []string{"Assets", "Equity"}, st.SectionNames())

	sec, ok := st.Section("Assets")
	require.True(t, ok)
	require.Len(t, sec.Nodes, 1)
	assert.Equal(t, "New", sec.Nodes[0].(*Leaf[decimal.Decimal]).Name)
}

func TestStatement_SectionLookup(t *testing.T) {
	st := balanceFixture()

	sec, ok := st.Section("Assets")
	require.True(t, ok)
	assert.Equal(t, "Assets", sec.Name)

	_, ok = st.Section("Liabilities")
	assert.False(t, ok)
}

func TestStatement_CalculatedRow(t *testing.T) {
	st := periodsFixture()

	row, ok := st.CalculatedRow("Net Income")
	require.True(t, ok)
	got, ok := row.Value.Get("Feb 2023")
	require.True(t, ok)
	assert.True(t, got.Equal(dec("90")))

	_, ok = st.CalculatedRow("Gross Profit")
	assert.False(t, ok)
}

func TestStatement_Walk_DepthFirst(t *testing.T) {
	st := balanceFixture()

	var names []string
	st.Walk(func(n Node[decimal.Decimal]) bool {
		switch v := n.(type) {
		case *Leaf[decimal.Decimal]:
			names = append(names, v.Name)
		case *Parent[decimal.Decimal]:
			names = append(names, v.Name)
		}
		return true
	})

	assert.Equal(t, []string{"Checking", "Fixed Assets", "Truck", "Retained Earnings"}, names)
}

func TestStatement_Walk_Stops(t *testing.T) {
	st := balanceFixture()

	var names []string
	st.Walk(func(n Node[decimal.Decimal]) bool {
		if p, ok := n.(*Parent[decimal.Decimal]); ok {
			names = append(names, p.Name)
			return false
		}
		if l, ok := n.(*Leaf[decimal.Decimal]); ok {
			names = append(names, l.Name)
		}
		return true
	})

	assert.Equal(t, []string{"Checking", "Fixed Assets"}, names)
}

func TestStatement_Periods_FromLeaf(t *testing.T) {
	st := periodsFixture()

	assert.Equal(t, []string{"Jan 2023", "Feb 2023"}, st.Periods())
}

func TestStatement_Periods_CalculatedFallback(t *testing.T) {
	st := New(
		[]*Section[PeriodValues]{{Name: "Income"}},
		[]Calculated[PeriodValues]{
			{Name: "Net Income", Value: PeriodValues{
				{Period: "Mar 2023", Amount: dec("10")},
			}},
		},
		nil, nil,
	)

	assert.Equal(t, []string{"Mar 2023"}, st.Periods())
}

func TestStatement_Periods_SingleValueNil(t *testing.T) {
	st := balanceFixture()

	assert.Nil(t, st.Periods())
}

func TestStatement_AccountByName(t *testing.T) {
	st := balanceFixture()

	node, ok := st.AccountByName("Truck")
	require.True(t, ok)
	leaf, ok := node.(*Leaf[decimal.Decimal])
	require.True(t, ok)
	assert.True(t, leaf.Value.Equal(dec("30000")))

	node, ok = st.AccountByName("Fixed Assets")
	require.True(t, ok)
	_, ok = node.(*Parent[decimal.Decimal])
	assert.True(t, ok)

	_, ok = st.AccountByName("Trailer")
	assert.False(t, ok)
}

func TestStatement_AccountNames(t *testing.T) {
	st := balanceFixture()

	assert.Equal(t, []string{"Checking", "Fixed Assets", "Truck", "Retained Earnings"}, st.AccountNames())
}

func TestBalanceSheet_Accessors(t *testing.T) {
	bs := &BalanceSheet{Statement: New(
		[]*Section[decimal.Decimal]{
			{Name: "Assets", Nodes: []Node[decimal.Decimal]{
				&Leaf[decimal.Decimal]{Name: "Checking", Value: dec("100")},
			}},
			{Name: "Liabilities", Nodes: []Node[decimal.Decimal]{
				&Leaf[decimal.Decimal]{Name: "Loan", Value: dec("40")},
			}},
			{Name: "Equity", Nodes: []Node[decimal.Decimal]{
				&Leaf[decimal.Decimal]{Name: "Opening Balance", Value: dec("60")},
			}},
		},
		nil, nil, nil,
	)}

	assert.Equal(t, "Assets", bs.Assets().Name)
	require.Len(t, bs.Liabilities().Nodes, 1)
	assert.Equal(t, "Loan", bs.Liabilities().Nodes[0].(*Leaf[decimal.Decimal]).Name)
	require.Len(t, bs.Equity().Nodes, 1)
}

func TestBalanceSheet_CombinedFallback(t *testing.T) {
	combined := &Section[decimal.Decimal]{
		Name: "Liabilities and Equity",
		Nodes: []Node[decimal.Decimal]{
			&Leaf[decimal.Decimal]{Name: "Loan", Value: dec("40")},
			&Leaf[decimal.Decimal]{Name: "Opening Balance", Value: dec("60")},
		},
	}
	bs := &BalanceSheet{Statement: New(
		[]*Section[decimal.Decimal]{
			{Name: "Assets"},
			combined,
		},
		nil, nil, nil,
	)}

	assert.Equal(t, combined, bs.Liabilities())
	assert.Equal(t, combined, bs.Equity())
}

func TestBalanceSheet_MissingSectionsEmpty(t *testing.T) {
	bs := &BalanceSheet{Statement: New[decimal.Decimal](nil, nil, nil, nil)}

	require.NotNil(t, bs.Assets())
	assert.Empty(t, bs.Assets().Nodes)
	require.NotNil(t, bs.Liabilities())
	assert.Empty(t, bs.Liabilities().Nodes)
}

func TestProfitLoss_OptionalSections(t *testing.T) {
	pl := &ProfitLoss{Statement: New(
		[]*Section[PeriodValues]{
			{Name: "Income", Nodes: []Node[PeriodValues]{
				&Leaf[PeriodValues]{Name: "Sales", Value: PeriodValues{{Period: "Jan 2023", Amount: dec("1")}}},
			}},
			{Name: "Cost of Goods Sold"},
			{Name: "Expenses"},
		},
		nil, nil, nil,
	)}

	assert.Equal(t, "Income", pl.Income().Name)
	assert.Empty(t, pl.Expenses().Nodes)

	_, ok := pl.COGS()
	assert.False(t, ok, "empty section should read as absent")

	_, ok = pl.OtherExpenses()
	assert.False(t, ok)
}

func TestProfitLoss_COGSPresent(t *testing.T) {
	pl := &ProfitLoss{Statement: New(
		[]*Section[PeriodValues]{
			{Name: "Cost of Goods Sold", Nodes: []Node[PeriodValues]{
				&Leaf[PeriodValues]{Name: "Materials", Value: PeriodValues{{Period: "Jan 2023", Amount: dec("5")}}},
			}},
		},
		nil, nil, nil,
	)}

	sec, ok := pl.COGS()
	require.True(t, ok)
	assert.Len(t, sec.Nodes, 1)
}

func TestCashFlow_CashRows(t *testing.T) {
	cf := &CashFlow{Statement: New(
		[]*Section[decimal.Decimal]{{Name: "OPERATING ACTIVITIES"}},
		[]Calculated[decimal.Decimal]{
			{Name: "NET CASH INCREASE FOR PERIOD", Value: dec("300")},
			{Name: "Cash at beginning of period", Value: dec("1000")},
			{Name: "CASH AT END OF PERIOD", Value: dec("1300")},
		},
		nil, nil,
	)}

	begin, ok := cf.BeginningCash()
	require.True(t, ok)
	assert.True(t, begin.Equal(dec("1000")))

	end, ok := cf.EndingCash()
	require.True(t, ok)
	assert.True(t, end.Equal(dec("1300")))

	increase, ok := cf.NetIncrease()
	require.True(t, ok)
	assert.True(t, increase.Equal(dec("300")))
}

func TestCashFlow_CashRowsAbsent(t *testing.T) {
	cf := &CashFlow{Statement: New[decimal.Decimal](nil, nil, nil, nil)}

	_, ok := cf.BeginningCash()
	assert.False(t, ok)
	_, ok = cf.EndingCash()
	assert.False(t, ok)

	assert.Empty(t, cf.Operating().Nodes)
	assert.Empty(t, cf.Investing().Nodes)
	assert.Empty(t, cf.Financing().Nodes)
}
