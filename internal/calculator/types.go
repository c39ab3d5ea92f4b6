package calculator

import (
	"encoding/json"
	"fmt"
	"math"
)

// Type identifies one of the financial calculators.
type Type string

const (
	TypeIncomeTax    Type = "ir"
	TypeCorporateTax Type = "is"
	TypeVAT          Type = "tva"
	TypeLoan         Type = "loan"
	TypeInvestment   Type = "invest"
	TypeBudget       Type = "budget"
)

// Valid reports whether t names a known calculator.
func (t Type) Valid() bool {
	switch t {
	case TypeIncomeTax, TypeCorporateTax, TypeVAT, TypeLoan, TypeInvestment, TypeBudget:
		return true
	}
	return false
}

// GraphRequest is the JSON body for POST /api/graph.
type GraphRequest struct {
	Type   Type     `json:"type"`
	Inputs Inputs   `json:"inputs"`
	Result *float64 `json:"result,omitempty"` // monthly payment, loan only
	Lang   string   `json:"lang,omitempty"`
}

// GraphResponse is the JSON body returned on success.
type GraphResponse struct {
	Image string `json:"image"`
}

// Inputs holds the fields of a calculator request. Values are decoded
// loosely so that a non-numeric field is a computation failure rather than a
// malformed body.
type Inputs map[string]any

// Number returns the named input or an ErrComputation when it is missing or
// not a number.
func (in Inputs) Number(name string) (float64, error) {
	raw, ok := in[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing input %q", ErrComputation, name)
	}

	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case int:
		v = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: input %q: %v", ErrComputation, name, err)
		}
		v = f
	default:
		return 0, fmt.Errorf("%w: input %q is not a number (%T)", ErrComputation, name, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: input %q is not finite", ErrComputation, name)
	}
	return v, nil
}

// Int returns the named input, which must be a whole number within the
// int32 range.
func (in Inputs) Int(name string) (int, error) {
	v, err := in.Number(name)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: input %q must be a whole number, got %g", ErrComputation, name, v)
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: input %q out of range, got %g", ErrComputation, name, v)
	}
	return int(v), nil
}

// Result is the outcome of one calculator run.
//
// Category calculators fill Values in display order. The investment
// calculator fills Years and Values pairwise. Params carries the numbers that
// title templates substitute, keyed by placeholder name.
type Result struct {
	Type   Type
	Values []float64
	Years  []int
	Params map[string]float64
}
