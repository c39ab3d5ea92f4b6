package chart

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/golang/freetype/truetype"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	defaultWidth  = 800
	defaultHeight = 600

	titleFontSize = 16
	axisFontSize  = 12
	valueFontSize = 10

	lineColor = "#2196F3"
)

// GoChart renders Specs to PNG with go-chart.
type GoChart struct {
	width  int
	height int
	font   *truetype.Font
}

// Option configures a GoChart.
type Option func(*GoChart)

// WithFont sets the font used for every text element. Needed for scripts
// the built-in font does not cover, such as Arabic.
func WithFont(f *truetype.Font) Option {
	return func(g *GoChart) { g.font = f }
}

// WithSize overrides the canvas size in pixels.
func WithSize(width, height int) Option {
	return func(g *GoChart) {
		g.width = width
		g.height = height
	}
}

func NewGoChart(opts ...Option) *GoChart {
	g := &GoChart{width: defaultWidth, height: defaultHeight}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Render draws spec and returns the PNG bytes.
func (g *GoChart) Render(ctx context.Context, spec Spec) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	var err error
	switch spec.Kind {
	case Bar:
		err = g.barChart(spec).Render(gochart.PNG, &buf)
	case Pie:
		err = g.pieChart(spec).Render(gochart.PNG, &buf)
	case Line:
		err = g.lineChart(spec).Render(gochart.PNG, &buf)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s chart: %w", spec.Kind, err)
	}
	return buf.Bytes(), nil
}

func (g *GoChart) titleStyle() gochart.Style {
	return gochart.Style{FontSize: titleFontSize, Font: g.font}
}

func (g *GoChart) barChart(spec Spec) gochart.Chart {
	colors := palette(spec.Colors, len(spec.Values))

	ticks := make([]gochart.Tick, 0, len(spec.Labels)+2)
	ticks = append(ticks, gochart.Tick{Value: -0.5})
	for i, label := range spec.Labels {
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: label})
	}
	ticks = append(ticks, gochart.Tick{Value: float64(len(spec.Labels)) - 0.5})

	lo, hi := valueBounds(spec.Values, true)
	xrange := &gochart.ContinuousRange{
		Min:        -0.5,
		Max:        float64(len(spec.Labels)) - 0.5,
		Descending: spec.RTL,
	}

	return gochart.Chart{
		Title:      spec.Title,
		TitleStyle: g.titleStyle(),
		Width:      g.width,
		Height:     g.height,
		Font:       g.font,
		Background: gochart.Style{Padding: gochart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		XAxis: gochart.XAxis{
			Range:     xrange,
			Ticks:     ticks,
			TickStyle: gochart.Style{TextRotationDegrees: 45},
		},
		YAxis: gochart.YAxis{
			Name:      spec.YLabel,
			NameStyle: gochart.Style{FontSize: axisFontSize},
			Range:     &gochart.ContinuousRange{Min: lo, Max: hi},
		},
		Series: []gochart.Series{
			barSeries{values: spec.Values, colors: colors, font: g.font},
		},
	}
}

func (g *GoChart) pieChart(spec Spec) gochart.PieChart {
	colors := palette(spec.Colors, len(spec.Values))

	var total float64
	for _, v := range spec.Values {
		total += v
	}

	values := make([]gochart.Value, len(spec.Values))
	for i, v := range spec.Values {
		values[i] = gochart.Value{
			Value: v,
			Label: fmt.Sprintf("%s %.1f%%", spec.Labels[i], v/total*100),
			Style: gochart.Style{
				FillColor:   colors[i],
				StrokeColor: drawing.ColorWhite,
				FontSize:    axisFontSize,
			},
		}
	}

	return gochart.PieChart{
		Title:      spec.Title,
		TitleStyle: g.titleStyle(),
		Width:      g.width,
		Height:     g.height,
		Font:       g.font,
		Background: gochart.Style{Padding: gochart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		Values:     values,
	}
}

func (g *GoChart) lineChart(spec Spec) gochart.Chart {
	color := hexColor(lineColor)

	minX, maxX := spec.X[0], spec.X[0]
	for _, x := range spec.X {
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
	}
	ticks := make([]gochart.Tick, 0, len(spec.X)+2)
	ticks = append(ticks, gochart.Tick{Value: minX - 0.5})
	for _, x := range spec.X {
		ticks = append(ticks, gochart.Tick{Value: x, Label: fmt.Sprintf("%g", x)})
	}
	ticks = append(ticks, gochart.Tick{Value: maxX + 0.5})

	annotations := make([]gochart.Value2, len(spec.Values))
	for i, v := range spec.Values {
		annotations[i] = gochart.Value2{
			XValue: spec.X[i],
			YValue: v,
			Label:  fmt.Sprintf("%.2f", v),
		}
	}

	lo, hi := valueBounds(spec.Values, false)
	xrange := &gochart.ContinuousRange{
		Min:        minX - 0.5,
		Max:        maxX + 0.5,
		Descending: spec.RTL,
	}
	grid := gochart.Style{StrokeColor: drawing.ColorFromHex("e0e0e0"), StrokeWidth: 1}

	return gochart.Chart{
		Title:      spec.Title,
		TitleStyle: g.titleStyle(),
		Width:      g.width,
		Height:     g.height,
		Font:       g.font,
		Background: gochart.Style{Padding: gochart.Box{Top: 50, Left: 20, Right: 40, Bottom: 20}},
		XAxis: gochart.XAxis{
			Name:           spec.XLabel,
			NameStyle:      gochart.Style{FontSize: axisFontSize},
			Range:          xrange,
			Ticks:          ticks,
			GridMajorStyle: grid,
		},
		YAxis: gochart.YAxis{
			Name:           spec.YLabel,
			NameStyle:      gochart.Style{FontSize: axisFontSize},
			Range:          &gochart.ContinuousRange{Min: lo, Max: hi},
			GridMajorStyle: grid,
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Style: gochart.Style{
					StrokeColor: color,
					StrokeWidth: 2,
					DotColor:    color,
					DotWidth:    5,
				},
				XValues: spec.X,
				YValues: spec.Values,
			},
			gochart.AnnotationSeries{
				Style:       gochart.Style{FontSize: valueFontSize},
				Annotations: annotations,
			},
		},
	}
}

// valueBounds returns a y range covering values with headroom for the
// annotations drawn above them. Bar charts always include zero.
func valueBounds(values []float64, withZero bool) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if withZero {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, 0)
	}

	span := hi - lo
	if span == 0 {
		span = math.Max(math.Abs(hi), 1)
		if !withZero {
			lo -= span * 0.1
		}
	}
	hi += span * 0.15
	if lo < 0 && withZero {
		lo -= span * 0.05
	}
	return lo, hi
}

func palette(hex []string, n int) []drawing.Color {
	out := make([]drawing.Color, n)
	for i := range out {
		if i < len(hex) {
			out[i] = hexColor(hex[i])
		} else {
			out[i] = gochart.GetDefaultColor(i)
		}
	}
	return out
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
