// Package solver assembles and solves the discrete linear systems arising
// from the weak form of 1D convection-diffusion and Stokes pressure
// equations over a piecewise-linear hat basis.
package solver

import "errors"

var (
	// ErrDimensionMismatch reports vectors or matrices whose sizes do not
	// agree, including initial conditions that do not match the mesh
	// interior count.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrSingularSystem reports a zero pivot during forward elimination.
	ErrSingularSystem = errors.New("singular tridiagonal system")
	// ErrNotFinite reports a NaN or Inf produced by assembly.
	ErrNotFinite = errors.New("assembly produced a non-finite value")
)

// DiffEquationSolver is the one contract shared by every equation solver.
//
// Solve returns the full solution in mesh-node order, boundary values
// included. precision is the Gauss-Legendre degree used for every integral
// of the pass. Steady solvers ignore dt; the time-dependent solver uses it
// as the implicit step and advances its internal state, so calling Solve
// repeatedly walks the solution forward in time.
type DiffEquationSolver interface {
	Solve(precision int, dt float64) ([]float64, error)
}
