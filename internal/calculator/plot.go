package calculator

import (
	"fmt"

	"fincalc-graph/internal/chart"
	"fincalc-graph/internal/i18n"
)

// palettes assigns colours to categories by position.
var palettes = map[Type][]string{
	TypeIncomeTax:    {"#4CAF50", "#2196F3", "#FFC107", "#F44336"},
	TypeCorporateTax: {"#4CAF50", "#F44336", "#2196F3", "#FFC107"},
	TypeVAT:          {"#4CAF50", "#2196F3"},
	TypeLoan:         {"#4CAF50", "#F44336"},
	TypeBudget:       {"#F44336", "#4CAF50"},
}

// BuildChart lays out res as a chart with the strings of loc.
func BuildChart(res Result, loc i18n.Localizer) (chart.Spec, error) {
	title, err := loc.Title(string(res.Type), res.Params)
	if err != nil {
		return chart.Spec{}, fmt.Errorf("%w: %v", ErrComputation, err)
	}

	spec := chart.Spec{
		Title:  title,
		Values: res.Values,
		Colors: palettes[res.Type],
		RTL:    loc.RTL(),
	}

	switch res.Type {
	case TypeInvestment:
		spec.Kind = chart.Line
		spec.X = make([]float64, len(res.Years))
		for i, y := range res.Years {
			spec.X[i] = float64(y)
		}
		spec.XLabel = loc.InvestXLabel()
		spec.YLabel = loc.InvestYLabel()
		return spec, nil

	case TypeIncomeTax, TypeCorporateTax:
		spec.Kind = chart.Bar
		spec.YLabel = loc.YLabel()

	case TypeVAT, TypeLoan, TypeBudget:
		spec.Kind = chart.Pie

	default:
		return chart.Spec{}, fmt.Errorf("%w: no chart layout for %q", ErrInvalidRequest, res.Type)
	}

	spec.Labels, err = loc.Labels(string(res.Type))
	if err != nil {
		return chart.Spec{}, fmt.Errorf("%w: %v", ErrComputation, err)
	}
	return spec, nil
}
