package basis

import (
	"errors"
	"fmt"
)

// ErrPiecewiseShape reports a polynomial/breakpoint count mismatch or
// breakpoints out of order.
var ErrPiecewiseShape = errors.New("invalid piecewise shape")

// PiecewiseLinear is a first-degree polynomial defined piece by piece over
// intervals split by ascending breakpoints. With k breakpoints there are
// k+1 polynomials: polynomial i covers x < breakpoint i, the last one
// covers everything at or beyond the final breakpoint.
type PiecewiseLinear struct {
	polynomials []FirstDegree
	breakpoints []float64
}

// NewPiecewiseLinear builds a piecewise polynomial from its pieces. The
// breakpoints must be strictly increasing and one shorter than the
// polynomial list.
func NewPiecewiseLinear(polynomials []FirstDegree, breakpoints []float64) (PiecewiseLinear, error) {
	if len(polynomials) != len(breakpoints)+1 {
		return PiecewiseLinear{}, fmt.Errorf("%w: %d polynomials for %d breakpoints",
			ErrPiecewiseShape, len(polynomials), len(breakpoints))
	}
	for i := 1; i < len(breakpoints); i++ {
		if breakpoints[i] <= breakpoints[i-1] {
			return PiecewiseLinear{}, fmt.Errorf("%w: breakpoints not ascending at index %d",
				ErrPiecewiseShape, i)
		}
	}
	return PiecewiseLinear{polynomials: polynomials, breakpoints: breakpoints}, nil
}

// Evaluate selects the first polynomial whose breakpoint exceeds x, or the
// last polynomial when none does.
func (p PiecewiseLinear) Evaluate(x float64) float64 {
	for i, breakpoint := range p.breakpoints {
		if x < breakpoint {
			return p.polynomials[i].Evaluate(x)
		}
	}
	return p.polynomials[len(p.breakpoints)].Evaluate(x)
}

// Differentiate differentiates every piece, yielding a step function over
// the same breakpoints.
func (p PiecewiseLinear) Differentiate() PiecewiseLinear {
	diff := make([]FirstDegree, len(p.polynomials))
	for i, poly := range p.polynomials {
		diff[i] = poly.Differentiate()
	}
	return PiecewiseLinear{polynomials: diff, breakpoints: p.breakpoints}
}

// Pieces returns the number of polynomial pieces.
func (p PiecewiseLinear) Pieces() int { return len(p.polynomials) }

// Breakpoints returns the interval breakpoints backing the function. The
// returned slice must not be mutated.
func (p PiecewiseLinear) Breakpoints() []float64 { return p.breakpoints }
