package solver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SolveByThomas solves A*x = b for an effectively tridiagonal square A in
// O(n) by forward elimination and back substitution.
//
// The returned slice has length len(b)+2: the solution occupies indices
// 1..len(b) and the two slots around it are left zero. The caller owns
// writing known Dirichlet values into those slots (or into the ends of the
// interior block) afterward; this function only solves the system it is
// given.
func SolveByThomas(a mat.Matrix, b *mat.VecDense) ([]float64, error) {
	r, c := a.Dims()
	n := b.Len()
	if r != c || r != n {
		return nil, fmt.Errorf("%w: %dx%d matrix against vector of length %d",
			ErrDimensionMismatch, r, c, n)
	}

	out := make([]float64, n+2)
	x := out[1 : n+1]

	switch n {
	case 1:
		if a.At(0, 0) == 0 {
			return nil, fmt.Errorf("%w: zero 1x1 pivot", ErrSingularSystem)
		}
		x[0] = b.AtVec(0) / a.At(0, 0)
		return out, nil
	case 2:
		det := a.At(0, 0)*a.At(1, 1) - a.At(0, 1)*a.At(1, 0)
		if det == 0 {
			return nil, fmt.Errorf("%w: zero 2x2 determinant", ErrSingularSystem)
		}
		x[0] = (b.AtVec(0)*a.At(1, 1) - b.AtVec(1)*a.At(0, 1)) / det
		x[1] = (b.AtVec(1)*a.At(0, 0) - b.AtVec(0)*a.At(1, 0)) / det
		return out, nil
	}

	cs := make([]float64, n-1)
	ds := make([]float64, n)
	if a.At(0, 0) == 0 {
		return nil, fmt.Errorf("%w: zero pivot at row 0", ErrSingularSystem)
	}
	cs[0] = a.At(0, 1) / a.At(0, 0)
	ds[0] = b.AtVec(0) / a.At(0, 0)

	for i := 1; i < n; i++ {
		denom := a.At(i, i) - a.At(i, i-1)*cs[i-1]
		if denom == 0 {
			return nil, fmt.Errorf("%w: zero pivot at row %d", ErrSingularSystem, i)
		}
		if i < n-1 {
			cs[i] = a.At(i, i+1) / denom
		}
		ds[i] = (b.AtVec(i) - a.At(i, i-1)*ds[i-1]) / denom
	}

	x[n-1] = ds[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = ds[i] - cs[i]*x[i+1]
	}
	return out, nil
}
