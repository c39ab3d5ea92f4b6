package calculator

import (
	"testing"

	"fincalc-graph/internal/chart"
	"fincalc-graph/internal/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChartKinds(t *testing.T) {
	loc := i18n.NewResolver(true).Resolve("en")

	tests := []struct {
		typ  Type
		in   Inputs
		kind chart.Kind
	}{
		{TypeIncomeTax, Inputs{"income": 50000.0, "dependents": 2.0}, chart.Bar},
		{TypeCorporateTax, Inputs{"revenue": 100000.0, "expenses": 60000.0}, chart.Bar},
		{TypeVAT, Inputs{"amountHT": 1000.0, "rate": 0.2}, chart.Pie},
		{TypeLoan, Inputs{"amount": 10000.0, "rate": 5.0, "months": 12.0}, chart.Pie},
		{TypeInvestment, Inputs{"initial": 1000.0, "rate": 6.0, "years": 2.0, "monthly": 100.0}, chart.Line},
		{TypeBudget, Inputs{"income": 3000.0, "expenses": 1000.0}, chart.Pie},
	}

	for _, tc := range tests {
		t.Run(string(tc.typ), func(t *testing.T) {
			res, err := Compute(tc.typ, tc.in, nil)
			require.NoError(t, err)

			spec, err := BuildChart(res, loc)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, spec.Kind)
			assert.NoError(t, spec.Validate())
			assert.False(t, spec.RTL)
		})
	}
}

func TestBuildChartText(t *testing.T) {
	en := i18n.NewResolver(true).Resolve("en")

	res, err := VAT(Inputs{"amountHT": 1000.0, "rate": 0.2})
	require.NoError(t, err)
	spec, err := BuildChart(res, en)
	require.NoError(t, err)
	assert.Equal(t, "VAT Breakdown (TTC: 1200.00 MAD)", spec.Title)
	assert.Equal(t, []string{"Amount HT", "TVA"}, spec.Labels)
	assert.Equal(t, []string{"#4CAF50", "#2196F3"}, spec.Colors)

	res, err = Loan(Inputs{"amount": 10000.0, "rate": 5.0, "months": 12.0}, ptr(856.07))
	require.NoError(t, err)
	spec, err = BuildChart(res, i18n.NewResolver(true).Resolve("fr"))
	require.NoError(t, err)
	assert.Equal(t, "Décomposition des coûts du prêt (Mensuel: 856.07 MAD)", spec.Title)
	assert.Equal(t, []string{"Principal", "Intérêts totaux"}, spec.Labels)
}

func TestBuildChartInvestmentAxes(t *testing.T) {
	res, err := Investment(Inputs{"initial": 1000.0, "rate": 6.0, "years": 3.0, "monthly": 0.0})
	require.NoError(t, err)

	spec, err := BuildChart(res, i18n.NewResolver(true).Resolve("en"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, spec.X)
	assert.Equal(t, "Years", spec.XLabel)
	assert.Equal(t, "Value (MAD)", spec.YLabel)
	assert.Empty(t, spec.Labels)
}

func TestBuildChartArabicIsRTL(t *testing.T) {
	shaped := i18n.NewResolver(true).Resolve("ar")
	plain := i18n.NewResolver(false).Resolve("ar")

	res, err := Budget(Inputs{"income": 3000.0, "expenses": 1000.0})
	require.NoError(t, err)

	spec, err := BuildChart(res, shaped)
	require.NoError(t, err)
	assert.True(t, spec.RTL)

	raw, err := BuildChart(res, plain)
	require.NoError(t, err)
	assert.Equal(t, []string{"المصاريف", "المتبقي"}, raw.Labels)
	assert.NotEqual(t, raw.Labels, spec.Labels, "shaping rewrites the labels")
}

func TestBuildChartZeroBudgetFailsValidation(t *testing.T) {
	res, err := Budget(Inputs{"income": 0.0, "expenses": 0.0})
	require.NoError(t, err)

	spec, err := BuildChart(res, i18n.NewResolver(true).Resolve("en"))
	require.NoError(t, err)
	assert.ErrorIs(t, spec.Validate(), chart.ErrInvalidSpec)
}
