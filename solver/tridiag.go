package solver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// TridiagMulVec returns scale*(A*v) touching only the tridiagonal band of
// A, so off-band garbage can never leak into the product.
func TridiagMulVec(a mat.Matrix, v *mat.VecDense, scale float64) (*mat.VecDense, error) {
	r, c := a.Dims()
	n := v.Len()
	if r != c || r != n {
		return nil, fmt.Errorf("%w: %dx%d matrix against vector of length %d",
			ErrDimensionMismatch, r, c, n)
	}

	out := mat.NewVecDense(n, nil)
	if n == 1 {
		out.SetVec(0, scale*a.At(0, 0)*v.AtVec(0))
		return out, nil
	}

	out.SetVec(0, scale*(a.At(0, 0)*v.AtVec(0)+a.At(0, 1)*v.AtVec(1)))
	for i := 1; i < n-1; i++ {
		out.SetVec(i, scale*(a.At(i, i-1)*v.AtVec(i-1)+a.At(i, i)*v.AtVec(i)+a.At(i, i+1)*v.AtVec(i+1)))
	}
	out.SetVec(n-1, scale*(a.At(n-1, n-2)*v.AtVec(n-2)+a.At(n-1, n-1)*v.AtVec(n-1)))
	return out, nil
}

// AddVec returns u + v as a fresh vector.
func AddVec(u, v *mat.VecDense) (*mat.VecDense, error) {
	if u.Len() != v.Len() {
		return nil, fmt.Errorf("%w: vectors of length %d and %d",
			ErrDimensionMismatch, u.Len(), v.Len())
	}
	data := make([]float64, u.Len())
	copy(data, u.RawVector().Data)
	floats.Add(data, v.RawVector().Data)
	return mat.NewVecDense(len(data), data), nil
}

// checkFinite walks the tridiagonal band of a and all of b, rejecting any
// NaN or Inf before it can reach the solver or persisted state.
func checkFinite(a mat.Matrix, b *mat.VecDense) error {
	n, _ := a.Dims()
	for i := 0; i < n; i++ {
		lo, hi := max(0, i-1), min(n-1, i+1)
		for j := lo; j <= hi; j++ {
			if v := a.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: matrix entry (%d,%d) = %g", ErrNotFinite, i, j, v)
			}
		}
	}
	for i := 0; i < b.Len(); i++ {
		if v := b.AtVec(i); math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: load entry %d = %g", ErrNotFinite, i, v)
		}
	}
	return nil
}
