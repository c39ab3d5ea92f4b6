package calculator

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestIncomeTax(t *testing.T) {
	res, err := Compute(TypeIncomeTax, Inputs{"income": 50000.0, "dependents": 2.0}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{50000, 10000, 1000, 9000}, res.Values)

	res, err = IncomeTax(Inputs{"income": 10000.0, "dependents": 10.0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Values[3], "net tax is clamped at zero")
	assert.Equal(t, 5000.0, res.Values[2])
}

func TestCorporateTax(t *testing.T) {
	res, err := CorporateTax(Inputs{"revenue": 100000.0, "expenses": 60000.0})
	require.NoError(t, err)
	assert.Equal(t, []float64{100000, 60000, 40000, 8000}, res.Values)

	res, err = CorporateTax(Inputs{"revenue": 1000.0, "expenses": 2000.0})
	require.NoError(t, err)
	assert.Equal(t, -1000.0, res.Values[2], "profit is not clamped")
	assert.Equal(t, 0.0, res.Values[3])
}

func TestVAT(t *testing.T) {
	res, err := VAT(Inputs{"amountHT": 1000.0, "rate": 0.2})
	require.NoError(t, err)
	assert.Equal(t, []float64{1000, 200}, res.Values)
	assert.InDelta(t, 1200, res.Params["ttc"], 1e-9)
}

func TestLoan(t *testing.T) {
	in := Inputs{"amount": 10000.0, "rate": 5.0, "months": 12.0}

	t.Run("client payment", func(t *testing.T) {
		res, err := Loan(in, ptr(856.07))
		require.NoError(t, err)
		assert.InDelta(t, 10272.84, res.Params["total_paid"], 1e-6)
		assert.InDelta(t, 272.84, res.Values[1], 1e-6)
		assert.Equal(t, 10000.0, res.Values[0])
		assert.Equal(t, 856.07, res.Params["monthly_payment"])
	})

	t.Run("derived payment", func(t *testing.T) {
		res, err := Loan(in, nil)
		require.NoError(t, err)
		assert.Equal(t, 856.07, res.Params["monthly_payment"])
		assert.InDelta(t, 272.84, res.Values[1], 1e-6)
	})
}

func TestMonthlyPayment(t *testing.T) {
	p, err := MonthlyPayment(1200, 0, 12)
	require.NoError(t, err)
	assert.Equal(t, 100.0, p)

	_, err = MonthlyPayment(1200, 5, 0)
	assert.ErrorIs(t, err, ErrComputation)
}

func TestInvestment(t *testing.T) {
	res, err := Investment(Inputs{"initial": 1000.0, "rate": 6.0, "years": 2.0, "monthly": 100.0})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, res.Years)
	require.Len(t, res.Values, 2)
	assert.InDelta(t, 2295.2340491544887, res.Values[0], 1e-9)
	assert.InDelta(t, 3670.3553003132206, res.Values[1], 1e-9)

	res, err = Investment(Inputs{"initial": 1000.0, "rate": 6.0, "years": 0.0, "monthly": 100.0})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Years)
	assert.Equal(t, []float64{1000}, res.Values)

	_, err = Investment(Inputs{"initial": 1000.0, "rate": 6.0, "years": 1.5, "monthly": 100.0})
	assert.ErrorIs(t, err, ErrComputation)
}

func TestInvestmentHorizonBounds(t *testing.T) {
	in := func(years float64) Inputs {
		return Inputs{"initial": 1000.0, "rate": 6.0, "years": years, "monthly": 100.0}
	}

	res, err := Investment(in(MaxInvestmentYears))
	require.NoError(t, err)
	assert.Len(t, res.Years, MaxInvestmentYears)
	assert.Equal(t, MaxInvestmentYears, res.Years[len(res.Years)-1])

	for _, years := range []float64{MaxInvestmentYears + 1, 1e9, 1e18, 1e300, -1e300} {
		_, err := Investment(in(years))
		assert.ErrorIs(t, err, ErrComputation, "years=%g", years)
	}

	res, err = Investment(in(-5))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Years)
	assert.Equal(t, []float64{1000}, res.Values)
}

func TestInputsIntRange(t *testing.T) {
	in := Inputs{"max": float64(math.MaxInt32), "over": float64(math.MaxInt32) + 1, "under": float64(math.MinInt32) - 1}

	v, err := in.Int("max")
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, v)

	_, err = in.Int("over")
	assert.ErrorIs(t, err, ErrComputation)

	_, err = in.Int("under")
	assert.ErrorIs(t, err, ErrComputation)
}

func TestBudget(t *testing.T) {
	res, err := Budget(Inputs{"income": 3000.0, "expenses": 1000.0})
	require.NoError(t, err)
	assert.Equal(t, []float64{1000, 2000}, res.Values)
	assert.Equal(t, 3000.0, res.Params["income"])

	res, err = Budget(Inputs{"income": 1000.0, "expenses": 3000.0})
	require.NoError(t, err)
	assert.Equal(t, []float64{3000, 0}, res.Values)
}

func TestComputeInputErrors(t *testing.T) {
	tests := map[string]struct {
		typ Type
		in  Inputs
	}{
		"missing field": {TypeIncomeTax, Inputs{"income": 50000.0}},
		"string field":  {TypeBudget, Inputs{"income": "3000", "expenses": 10.0}},
		"null field":    {TypeVAT, Inputs{"amountHT": nil, "rate": 0.2}},
		"no inputs":     {TypeLoan, nil},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Compute(tc.typ, tc.in, nil)
			assert.ErrorIs(t, err, ErrComputation)
		})
	}

	_, err := Compute(Type("xyz"), Inputs{}, nil)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestInputsNumberAcceptsDecodedJSON(t *testing.T) {
	var in Inputs
	require.NoError(t, json.Unmarshal([]byte(`{"a":1.5,"b":2}`), &in))

	a, err := in.Number("a")
	require.NoError(t, err)
	assert.Equal(t, 1.5, a)

	b, err := in.Int("b")
	require.NoError(t, err)
	assert.Equal(t, 2, b)

	n, err := Inputs{"c": json.Number("3.25"), "d": 4}.Number("c")
	require.NoError(t, err)
	assert.Equal(t, 3.25, n)
}

func TestTypeValid(t *testing.T) {
	for _, typ := range []Type{TypeIncomeTax, TypeCorporateTax, TypeVAT, TypeLoan, TypeInvestment, TypeBudget} {
		assert.True(t, typ.Valid(), typ)
	}
	for _, typ := range []Type{"", "IR", "mortgage"} {
		assert.False(t, typ.Valid(), typ)
	}
}
