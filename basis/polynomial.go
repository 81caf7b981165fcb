package basis

import (
	"errors"
	"fmt"
)

// ErrDegenerateInterval reports an affine map requested over an interval
// whose endpoints coincide or are reversed.
var ErrDegenerateInterval = errors.New("degenerate interval")

// FirstDegree is the polynomial c*x + d. Values are plain data, copied by
// value and never mutated after construction.
type FirstDegree struct {
	Coefficient float64
	Independent float64
}

// NewFirstDegree builds the polynomial coefficient*x + independent.
func NewFirstDegree(coefficient, independent float64) FirstDegree {
	return FirstDegree{Coefficient: coefficient, Independent: independent}
}

// Evaluate returns c*x + d.
func (p FirstDegree) Evaluate(x float64) float64 {
	return p.Coefficient*x + p.Independent
}

// Differentiate returns the derivative as a degree-1 polynomial with zero
// coefficient, so the result can be evaluated like any other FirstDegree.
func (p FirstDegree) Differentiate() FirstDegree {
	return FirstDegree{Coefficient: 0, Independent: p.Coefficient}
}

// Compose returns p(g(x)) as a new FirstDegree.
func (p FirstDegree) Compose(g FirstDegree) FirstDegree {
	return FirstDegree{
		Coefficient: p.Coefficient * g.Coefficient,
		Independent: p.Coefficient*g.Independent + p.Independent,
	}
}

// SecondDegree is the polynomial a*x^2 + b*x + c.
type SecondDegree struct {
	Quadratic   float64
	Linear      float64
	Independent float64
}

// NewSecondDegree builds the polynomial quadratic*x^2 + linear*x + independent.
func NewSecondDegree(quadratic, linear, independent float64) SecondDegree {
	return SecondDegree{Quadratic: quadratic, Linear: linear, Independent: independent}
}

// Evaluate returns a*x^2 + b*x + c.
func (p SecondDegree) Evaluate(x float64) float64 {
	return p.Quadratic*x*x + p.Linear*x + p.Independent
}

// Differentiate returns 2a*x + b.
func (p SecondDegree) Differentiate() FirstDegree {
	return FirstDegree{Coefficient: 2 * p.Quadratic, Independent: p.Linear}
}

// Compose returns p(g(x)) for an affine g, which stays inside the
// second-degree family.
func (p SecondDegree) Compose(g FirstDegree) SecondDegree {
	return SecondDegree{
		Quadratic:   p.Quadratic * g.Coefficient * g.Coefficient,
		Linear:      2*p.Quadratic*g.Coefficient*g.Independent + p.Linear*g.Coefficient,
		Independent: p.Quadratic*g.Independent*g.Independent + p.Linear*g.Independent + p.Independent,
	}
}

// Phi1 is the ascending canonical hat ramp x on [0,1].
func Phi1() FirstDegree { return FirstDegree{Coefficient: 1, Independent: 0} }

// Phi2 is the descending canonical hat ramp 1-x on [0,1].
func Phi2() FirstDegree { return FirstDegree{Coefficient: -1, Independent: 1} }

// Zero is the identically zero polynomial.
func Zero() FirstDegree { return FirstDegree{} }

// TransformationTo01 returns the affine map sending [beg,end] onto [0,1].
func TransformationTo01(beg, end float64) (FirstDegree, error) {
	if end <= beg {
		return FirstDegree{}, fmt.Errorf("%w: [%g, %g]", ErrDegenerateInterval, beg, end)
	}
	h := end - beg
	return FirstDegree{Coefficient: 1 / h, Independent: -beg / h}, nil
}

// TransformationFromM1P1 returns the affine map sending [-1,1] onto
// [beg,end]. Its constant derivative is the Jacobian of the change of
// variable used in quadrature.
func TransformationFromM1P1(beg, end float64) (FirstDegree, error) {
	if end <= beg {
		return FirstDegree{}, fmt.Errorf("%w: [%g, %g]", ErrDegenerateInterval, beg, end)
	}
	return FirstDegree{Coefficient: (end - beg) / 2, Independent: (end + beg) / 2}, nil
}
