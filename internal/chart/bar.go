package chart

import (
	"fmt"
	"math"

	"github.com/golang/freetype/truetype"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// barFill is the share of each category slot covered by its bar.
const barFill = 0.6

// barSeries draws one bar per category at x = 0..n-1 with its value printed
// above it. go-chart's BarChart has no value labels, so the bars are drawn
// as a regular series on a continuous chart.
type barSeries struct {
	values []float64
	colors []drawing.Color
	font   *truetype.Font
}

var _ gochart.Series = barSeries{}

func (b barSeries) GetName() string             { return "bars" }
func (b barSeries) GetYAxis() gochart.YAxisType { return gochart.YAxisPrimary }
func (b barSeries) GetStyle() gochart.Style     { return gochart.Style{} }

func (b barSeries) Validate() error {
	if len(b.values) == 0 {
		return fmt.Errorf("bar series: no values")
	}
	if len(b.colors) < len(b.values) {
		return fmt.Errorf("bar series: %d colors for %d values", len(b.colors), len(b.values))
	}
	return nil
}

func (b barSeries) Render(r gochart.Renderer, canvasBox gochart.Box, xrange, yrange gochart.Range, defaults gochart.Style) {
	slot := math.Abs(float64(xrange.Translate(1) - xrange.Translate(0)))
	half := int(slot * barFill / 2)
	if half < 1 {
		half = 1
	}
	zero := canvasBox.Bottom - yrange.Translate(0)

	label := gochart.Style{
		Font:      b.font,
		FontSize:  valueFontSize,
		FontColor: drawing.ColorBlack,
	}.InheritFrom(defaults)

	for i, v := range b.values {
		x := canvasBox.Left + xrange.Translate(float64(i))
		y := canvasBox.Bottom - yrange.Translate(v)

		top, bottom := y, zero
		if v < 0 {
			top, bottom = zero, y
		}
		gochart.Draw.Box(r, gochart.Box{Top: top, Left: x - half, Right: x + half, Bottom: bottom}, gochart.Style{
			FillColor:   b.colors[i],
			StrokeColor: b.colors[i],
			StrokeWidth: 1,
		})

		text := fmt.Sprintf("%.2f", v)
		label.GetTextOptions().WriteToRenderer(r)
		tb := r.MeasureText(text)
		gochart.Draw.Text(r, text, x-tb.Width()/2, top-4, label)
	}
}
