package solver

import (
	"math"

	"github.com/Arthur-phys/dzahui/basis"
	"github.com/Arthur-phys/dzahui/quadrature"
)

// integrateInterval approximates the integral of f over [a,b] with the
// given Gauss-Legendre rule, mapping each node from [-1,1] through the
// affine change of variable and scaling by its constant Jacobian.
func integrateInterval(rule []quadrature.Pair, a, b float64, f func(x float64) float64) (float64, error) {
	t, err := basis.TransformationFromM1P1(a, b)
	if err != nil {
		return 0, err
	}
	jacobian := t.Differentiate()

	var sum float64
	for _, p := range rule {
		x := math.Cos(p.Theta)
		sum += f(t.Evaluate(x)) * jacobian.Evaluate(x) * p.Weight
	}
	return sum, nil
}
