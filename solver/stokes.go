package solver

import (
	"github.com/Arthur-phys/dzahui/basis"
	"github.com/Arthur-phys/dzahui/quadrature"
	"gonum.org/v1/gonum/mat"
)

// StokesPressureParams configures the 1D Stokes pressure equation
// (1/rho)*p_x = f. Force is the forcing term f(x); when nil it defaults to
// the identity. HydrostaticPressure is the Dirichlet value at the outlet
// (right boundary); the left end carries the natural condition expressed
// by the weak form itself.
type StokesPressureParams struct {
	Rho                 float64
	HydrostaticPressure float64
	Force               func(x float64) float64
}

// StokesPressure solves for the 1D pressure profile of a Stokes flow with
// constant density.
type StokesPressure struct {
	params StokesPressureParams
	mesh   []float64
	basis  *basis.LinearBasis
}

var _ DiffEquationSolver = (*StokesPressure)(nil)

// NewStokesPressure validates the mesh and builds the basis.
func NewStokesPressure(params StokesPressureParams, mesh []float64) (*StokesPressure, error) {
	b, err := basis.NewLinearBasis(mesh)
	if err != nil {
		return nil, err
	}
	if params.Force == nil {
		params.Force = func(x float64) float64 { return x }
	}
	return &StokesPressure{params: params, mesh: mesh, basis: b}, nil
}

// Assemble integrates the form phi_j'*phi_i per interior node plus the
// source rho*f(x) against each hat into the load vector. Row 0 is
// assembled like an interior row over the first interval (natural
// condition); the last row is forced to identity with the hydrostatic
// pressure on the right-hand side.
func (s *StokesPressure) Assemble(precision int) (*mat.Dense, *mat.VecDense, error) {
	rule, err := quadrature.Rule(precision)
	if err != nil {
		return nil, nil, err
	}

	n := len(s.mesh)
	a := mat.NewDense(n, n, nil)
	load := mat.NewVecDense(n, nil)

	rho, force := s.params.Rho, s.params.Force
	for i := 1; i < n-1; i++ {
		phi := s.basis.Functions[i]
		dPhi := phi.Differentiate()
		dPrev := s.basis.Functions[i-1].Differentiate()
		dNext := s.basis.Functions[i+1].Differentiate()

		prev, err := integrateInterval(rule, s.mesh[i-1], s.mesh[i], func(x float64) float64 {
			return phi.Evaluate(x) * dPrev.Evaluate(x)
		})
		if err != nil {
			return nil, nil, err
		}
		diag, err := integrateInterval(rule, s.mesh[i-1], s.mesh[i+1], func(x float64) float64 {
			return phi.Evaluate(x) * dPhi.Evaluate(x)
		})
		if err != nil {
			return nil, nil, err
		}
		next, err := integrateInterval(rule, s.mesh[i], s.mesh[i+1], func(x float64) float64 {
			return phi.Evaluate(x) * dNext.Evaluate(x)
		})
		if err != nil {
			return nil, nil, err
		}
		source, err := integrateInterval(rule, s.mesh[i-1], s.mesh[i+1], func(x float64) float64 {
			return rho * force(x) * phi.Evaluate(x)
		})
		if err != nil {
			return nil, nil, err
		}

		a.Set(i, i-1, prev)
		a.Set(i, i, diag)
		a.Set(i, i+1, next)
		load.SetVec(i, source)
	}

	// Natural condition at the inlet: assemble row 0 over [mesh[0], mesh[1]]
	// with the same form instead of injecting a Dirichlet value.
	phi0 := s.basis.Functions[0]
	dPhi0 := phi0.Differentiate()
	dPhi1 := s.basis.Functions[1].Differentiate()

	diag0, err := integrateInterval(rule, s.mesh[0], s.mesh[1], func(x float64) float64 {
		return phi0.Evaluate(x) * dPhi0.Evaluate(x)
	})
	if err != nil {
		return nil, nil, err
	}
	next0, err := integrateInterval(rule, s.mesh[0], s.mesh[1], func(x float64) float64 {
		return phi0.Evaluate(x) * dPhi1.Evaluate(x)
	})
	if err != nil {
		return nil, nil, err
	}
	source0, err := integrateInterval(rule, s.mesh[0], s.mesh[1], func(x float64) float64 {
		return rho * force(x) * phi0.Evaluate(x)
	})
	if err != nil {
		return nil, nil, err
	}

	a.Set(0, 0, diag0)
	a.Set(0, 1, next0)
	load.SetVec(0, source0)
	a.Set(n-1, n-1, 1)
	load.SetVec(n-1, s.params.HydrostaticPressure)

	if err := checkFinite(a, load); err != nil {
		return nil, nil, err
	}
	return a, load, nil
}

// Solve assembles and solves the pressure system. dt is ignored.
func (s *StokesPressure) Solve(precision int, _ float64) ([]float64, error) {
	a, load, err := s.Assemble(precision)
	if err != nil {
		return nil, err
	}
	res, err := SolveByThomas(a, load)
	if err != nil {
		return nil, err
	}

	solution := res[1 : len(s.mesh)+1]
	solution[len(solution)-1] = s.params.HydrostaticPressure
	return solution, nil
}
