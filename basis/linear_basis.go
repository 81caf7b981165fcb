package basis

import (
	"errors"
	"fmt"
)

var (
	// ErrMeshTooSmall reports a mesh with fewer than three nodes.
	ErrMeshTooSmall = errors.New("mesh needs at least 3 nodes")
	// ErrMeshNotOrdered reports mesh nodes that are not strictly increasing.
	ErrMeshNotOrdered = errors.New("mesh nodes must be strictly increasing")
)

// LinearBasis is the complete set of piecewise-linear hat functions over a
// mesh: function i is 1 at node i, 0 at every other node and linear in
// between. Every function keeps the same 4-piece / 3-breakpoint layout,
// with virtual neighbors one unit past each mesh edge for the two boundary
// hats, so no special-case representation is needed anywhere downstream.
type LinearBasis struct {
	Functions []PiecewiseLinear
}

// ValidateMesh checks the mesh preconditions shared by the basis builder
// and the solvers: at least three nodes, strictly increasing.
func ValidateMesh(mesh []float64) error {
	if len(mesh) < 3 {
		return fmt.Errorf("%w: got %d", ErrMeshTooSmall, len(mesh))
	}
	for i := 1; i < len(mesh); i++ {
		if mesh[i] <= mesh[i-1] {
			return fmt.Errorf("%w: node %d (%g) after node %d (%g)",
				ErrMeshNotOrdered, i, mesh[i], i-1, mesh[i-1])
		}
	}
	return nil
}

// NewLinearBasis builds one hat function per mesh node by composing the
// canonical ramps on [0,1] with the affine map onto each sub-interval.
func NewLinearBasis(mesh []float64) (*LinearBasis, error) {
	if err := ValidateMesh(mesh); err != nil {
		return nil, err
	}

	n := len(mesh)
	functions := make([]PiecewiseLinear, 0, n)

	// Left boundary hat: only the descending ramp on [mesh[0], mesh[1]].
	t, err := TransformationTo01(mesh[0], mesh[1])
	if err != nil {
		return nil, err
	}
	first, err := NewPiecewiseLinear(
		[]FirstDegree{Zero(), Zero(), Phi2().Compose(t), Zero()},
		[]float64{mesh[0] - 1, mesh[0], mesh[1]},
	)
	if err != nil {
		return nil, err
	}
	functions = append(functions, first)

	for i := 1; i < n-1; i++ {
		prev, cur, next := mesh[i-1], mesh[i], mesh[i+1]

		tl, err := TransformationTo01(prev, cur)
		if err != nil {
			return nil, err
		}
		tr, err := TransformationTo01(cur, next)
		if err != nil {
			return nil, err
		}
		hat, err := NewPiecewiseLinear(
			[]FirstDegree{Zero(), Phi1().Compose(tl), Phi2().Compose(tr), Zero()},
			[]float64{prev, cur, next},
		)
		if err != nil {
			return nil, err
		}
		functions = append(functions, hat)
	}

	// Right boundary hat: only the ascending ramp on [mesh[n-2], mesh[n-1]].
	// The outer breakpoint sits one unit past the mesh edge so the ramp
	// piece is still selected at the boundary node itself.
	t, err = TransformationTo01(mesh[n-2], mesh[n-1])
	if err != nil {
		return nil, err
	}
	last, err := NewPiecewiseLinear(
		[]FirstDegree{Zero(), Zero(), Phi1().Compose(t), Zero()},
		[]float64{mesh[n-2] - 1, mesh[n-2], mesh[n-1] + 1},
	)
	if err != nil {
		return nil, err
	}
	functions = append(functions, last)

	return &LinearBasis{Functions: functions}, nil
}

// Len returns the number of basis functions, equal to the mesh length.
func (b *LinearBasis) Len() int { return len(b.Functions) }
