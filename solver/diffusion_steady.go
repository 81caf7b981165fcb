package solver

import (
	"github.com/Arthur-phys/dzahui/basis"
	"github.com/Arthur-phys/dzahui/quadrature"
	"gonum.org/v1/gonum/mat"
)

// SteadyDiffusionParams configures the steady convection-diffusion
// equation -mu*u'' + b*u' = 0 with Dirichlet values at both ends.
type SteadyDiffusionParams struct {
	Mu                 float64
	B                  float64
	BoundaryConditions [2]float64
}

// SteadyDiffusion solves the steady convection-diffusion equation over a
// fixed mesh. The hat basis is built once at construction; the linear
// system is reassembled on every Solve call.
type SteadyDiffusion struct {
	params SteadyDiffusionParams
	mesh   []float64
	basis  *basis.LinearBasis
}

var _ DiffEquationSolver = (*SteadyDiffusion)(nil)

// NewSteadyDiffusion validates the mesh and builds the basis.
func NewSteadyDiffusion(params SteadyDiffusionParams, mesh []float64) (*SteadyDiffusion, error) {
	b, err := basis.NewLinearBasis(mesh)
	if err != nil {
		return nil, err
	}
	return &SteadyDiffusion{params: params, mesh: mesh, basis: b}, nil
}

// Assemble integrates the weak form mu*phi_j'*phi_i' + b*phi_j'*phi_i over
// the two intervals adjoining each interior node, producing the n x n
// tridiagonal stiffness matrix and load vector. The two boundary rows are
// forced to identity with the Dirichlet values on the right-hand side, so
// the boundary condition holds exactly.
func (s *SteadyDiffusion) Assemble(precision int) (*mat.Dense, *mat.VecDense, error) {
	rule, err := quadrature.Rule(precision)
	if err != nil {
		return nil, nil, err
	}

	n := len(s.mesh)
	a := mat.NewDense(n, n, nil)
	load := mat.NewVecDense(n, nil)

	mu, b := s.params.Mu, s.params.B
	for i := 1; i < n-1; i++ {
		phi := s.basis.Functions[i]
		dPhi := phi.Differentiate()
		dPrev := s.basis.Functions[i-1].Differentiate()
		dNext := s.basis.Functions[i+1].Differentiate()

		prev, err := integrateInterval(rule, s.mesh[i-1], s.mesh[i], func(x float64) float64 {
			return mu*dPhi.Evaluate(x)*dPrev.Evaluate(x) + b*dPrev.Evaluate(x)*phi.Evaluate(x)
		})
		if err != nil {
			return nil, nil, err
		}
		diag, err := integrateInterval(rule, s.mesh[i-1], s.mesh[i+1], func(x float64) float64 {
			d := dPhi.Evaluate(x)
			return mu*d*d + b*d*phi.Evaluate(x)
		})
		if err != nil {
			return nil, nil, err
		}
		next, err := integrateInterval(rule, s.mesh[i], s.mesh[i+1], func(x float64) float64 {
			return mu*dPhi.Evaluate(x)*dNext.Evaluate(x) + b*dNext.Evaluate(x)*phi.Evaluate(x)
		})
		if err != nil {
			return nil, nil, err
		}

		a.Set(i, i-1, prev)
		a.Set(i, i, diag)
		a.Set(i, i+1, next)
	}

	a.Set(0, 0, 1)
	a.Set(n-1, n-1, 1)
	load.SetVec(0, s.params.BoundaryConditions[0])
	load.SetVec(n-1, s.params.BoundaryConditions[1])

	if err := checkFinite(a, load); err != nil {
		return nil, nil, err
	}
	return a, load, nil
}

// Solve assembles and solves the steady system. dt is ignored.
func (s *SteadyDiffusion) Solve(precision int, _ float64) ([]float64, error) {
	a, load, err := s.Assemble(precision)
	if err != nil {
		return nil, err
	}
	res, err := SolveByThomas(a, load)
	if err != nil {
		return nil, err
	}

	solution := res[1 : len(s.mesh)+1]
	solution[0] = s.params.BoundaryConditions[0]
	solution[len(solution)-1] = s.params.BoundaryConditions[1]
	return solution, nil
}
