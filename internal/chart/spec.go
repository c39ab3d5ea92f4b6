// Package chart renders calculator results into PNG images.
package chart

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Kind selects the chart layout.
type Kind string

const (
	Bar  Kind = "bar"
	Pie  Kind = "pie"
	Line Kind = "line"
)

// Spec describes one chart. Labels, Title and axis names are expected to be
// display-ready (already localized and, for RTL languages, shaped).
type Spec struct {
	Kind   Kind
	Title  string
	Labels []string  // bar and pie categories
	Values []float64 // one per label, or one per X for line charts
	X      []float64 // line charts only
	XLabel string
	YLabel string
	Colors []string // hex, assigned positionally
	RTL    bool     // mirror the x axis
}

// Renderer turns a Spec into an encoded image.
type Renderer interface {
	Render(ctx context.Context, spec Spec) ([]byte, error)
}

var ErrInvalidSpec = errors.New("invalid chart spec")

// Validate checks the shape of the data against the chart kind.
func (s Spec) Validate() error {
	if len(s.Values) == 0 {
		return fmt.Errorf("%w: no values", ErrInvalidSpec)
	}
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: value %d is not finite", ErrInvalidSpec, i)
		}
	}

	switch s.Kind {
	case Bar:
		if len(s.Labels) != len(s.Values) {
			return fmt.Errorf("%w: %d labels for %d values", ErrInvalidSpec, len(s.Labels), len(s.Values))
		}
	case Pie:
		if len(s.Labels) != len(s.Values) {
			return fmt.Errorf("%w: %d labels for %d values", ErrInvalidSpec, len(s.Labels), len(s.Values))
		}
		var total float64
		for i, v := range s.Values {
			if v < 0 {
				return fmt.Errorf("%w: pie slice %d is negative (%g)", ErrInvalidSpec, i, v)
			}
			total += v
		}
		if total == 0 {
			return fmt.Errorf("%w: pie slices sum to zero", ErrInvalidSpec)
		}
	case Line:
		if len(s.X) != len(s.Values) {
			return fmt.Errorf("%w: %d x values for %d y values", ErrInvalidSpec, len(s.X), len(s.Values))
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidSpec, s.Kind)
	}
	return nil
}
