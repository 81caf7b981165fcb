// Package quadrature provides Gauss-Legendre node/weight pairs on [-1,1].
//
// Nodes are the eigenvalues of the symmetric tridiagonal Jacobi matrix for
// the Legendre weight (Golub-Welsch); weights come from the first component
// of the corresponding eigenvectors. Abscissas are reported through their
// arccos so callers evaluate cos(Theta) to recover the node.
package quadrature

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrInvalidDegree reports a quadrature degree below 2.
var ErrInvalidDegree = errors.New("quadrature degree must be at least 2")

// Pair is one quadrature point: the abscissa on [-1,1] is cos(Theta).
type Pair struct {
	Theta  float64
	Weight float64
}

// Rule returns the degree-point Gauss-Legendre rule on [-1,1]. A degree-n
// rule integrates polynomials up to degree 2n-1 exactly. The rule is a pure
// function of the degree; assembly computes it once per pass and reuses it
// for every sub-interval.
func Rule(degree int) ([]Pair, error) {
	if degree < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDegree, degree)
	}

	// Off-diagonal recurrence terms for the Legendre (alpha=beta=0) Jacobi
	// matrix: d1[k-1] = k / sqrt(4k^2 - 1).
	d0 := make([]float64, degree)
	d1 := make([]float64, degree-1)
	for i := range d1 {
		k := float64(i + 1)
		d1[i] = k / math.Sqrt(4*k*k-1)
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(newSymTriDiagonal(d0, d1), true); !ok {
		return nil, fmt.Errorf("gauss-legendre eigen decomposition failed for degree %d", degree)
	}
	nodes := eig.Values(nil)

	vectors := mat.NewDense(degree, degree, nil)
	eig.VectorsTo(vectors)

	// Total Legendre weight on [-1,1] is 2.
	pairs := make([]Pair, degree)
	for i := range pairs {
		v := vectors.At(0, i)
		pairs[i] = Pair{Theta: math.Acos(nodes[i]), Weight: 2 * v * v}
	}
	return pairs, nil
}

// QuadPair returns the i-th pair of the degree-point rule, 1-based.
func QuadPair(degree, i int) (Pair, error) {
	pairs, err := Rule(degree)
	if err != nil {
		return Pair{}, err
	}
	if i < 1 || i > degree {
		return Pair{}, fmt.Errorf("quadrature index %d out of range [1, %d]", i, degree)
	}
	return pairs[i-1], nil
}

func newSymTriDiagonal(d0, d1 []float64) *mat.SymDense {
	n := len(d0)
	tri := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		tri.SetSym(i, i, d0[i])
		if i < n-1 {
			tri.SetSym(i, i+1, d1[i])
		}
	}
	return tri
}
