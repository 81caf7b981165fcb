package solver

import (
	"fmt"

	"github.com/Arthur-phys/dzahui/basis"
	"github.com/Arthur-phys/dzahui/quadrature"
	"gonum.org/v1/gonum/mat"
)

// TransientDiffusionParams configures the time-dependent equation
// u_t - mu*u_xx + b*u_x = 0. InitialConditions covers the mesh interior
// (length n-2); nil means starting from zero everywhere inside.
type TransientDiffusionParams struct {
	Mu                 float64
	B                  float64
	BoundaryConditions [2]float64
	InitialConditions  []float64
}

// TransientDiffusion advances the time-dependent diffusion equation one
// implicit step per Solve call. The interior state vector is the only
// value that persists between calls; the boundary values are constants for
// the whole run and are reattached to every returned solution.
type TransientDiffusion struct {
	params TransientDiffusionParams
	mesh   []float64
	basis  *basis.LinearBasis
	state  *mat.VecDense
}

var _ DiffEquationSolver = (*TransientDiffusion)(nil)

// NewTransientDiffusion validates the mesh and the initial-condition
// length against the interior node count.
func NewTransientDiffusion(params TransientDiffusionParams, mesh []float64) (*TransientDiffusion, error) {
	b, err := basis.NewLinearBasis(mesh)
	if err != nil {
		return nil, err
	}

	interior := len(mesh) - 2
	state := mat.NewVecDense(interior, nil)
	if params.InitialConditions != nil {
		if len(params.InitialConditions) != interior {
			return nil, fmt.Errorf("%w: %d initial conditions for %d interior nodes",
				ErrDimensionMismatch, len(params.InitialConditions), interior)
		}
		for i, v := range params.InitialConditions {
			state.SetVec(i, v)
		}
	}

	return &TransientDiffusion{params: params, mesh: mesh, basis: b, state: state}, nil
}

// State returns a copy of the current interior state.
func (s *TransientDiffusion) State() []float64 {
	out := make([]float64, s.state.Len())
	copy(out, s.state.RawVector().Data)
	return out
}

// transientSystem is one assembly pass: the interior mass matrix (the
// implicit left-hand side), the interior stiffness matrix
// S = -mu*K - b*C combining the derivative and mixed forms (applied to the
// previous state on the right-hand side), and the two scalars coupling the
// first and last interior rows to the fixed boundary values.
type transientSystem struct {
	mass      *mat.Dense
	stiffness *mat.Dense
	coupleL   float64
	coupleR   float64
}

func (s *TransientDiffusion) assemble(precision int) (*transientSystem, error) {
	rule, err := quadrature.Rule(precision)
	if err != nil {
		return nil, err
	}

	n := len(s.mesh)
	m := n - 2
	sys := &transientSystem{
		mass:      mat.NewDense(m, m, nil),
		stiffness: mat.NewDense(m, m, nil),
	}

	mu, b := s.params.Mu, s.params.B
	for k := 0; k < m; k++ {
		i := k + 1
		phi := s.basis.Functions[i]
		dPhi := phi.Differentiate()
		dPrev := s.basis.Functions[i-1].Differentiate()
		dNext := s.basis.Functions[i+1].Differentiate()
		phiPrev := s.basis.Functions[i-1]
		phiNext := s.basis.Functions[i+1]

		var massPrev, massDiag, massNext float64
		var stiffPrev, stiffDiag, stiffNext float64

		massPrev, err = integrateInterval(rule, s.mesh[i-1], s.mesh[i], func(x float64) float64 {
			return phi.Evaluate(x) * phiPrev.Evaluate(x)
		})
		if err != nil {
			return nil, err
		}
		massDiag, err = integrateInterval(rule, s.mesh[i-1], s.mesh[i+1], func(x float64) float64 {
			v := phi.Evaluate(x)
			return v * v
		})
		if err != nil {
			return nil, err
		}
		massNext, err = integrateInterval(rule, s.mesh[i], s.mesh[i+1], func(x float64) float64 {
			return phi.Evaluate(x) * phiNext.Evaluate(x)
		})
		if err != nil {
			return nil, err
		}

		// S_ij = -mu*<phi_j', phi_i'> - b*<phi_j', phi_i>.
		stiffPrev, err = integrateInterval(rule, s.mesh[i-1], s.mesh[i], func(x float64) float64 {
			return -mu*dPhi.Evaluate(x)*dPrev.Evaluate(x) - b*dPrev.Evaluate(x)*phi.Evaluate(x)
		})
		if err != nil {
			return nil, err
		}
		stiffDiag, err = integrateInterval(rule, s.mesh[i-1], s.mesh[i+1], func(x float64) float64 {
			d := dPhi.Evaluate(x)
			return -mu*d*d - b*d*phi.Evaluate(x)
		})
		if err != nil {
			return nil, err
		}
		stiffNext, err = integrateInterval(rule, s.mesh[i], s.mesh[i+1], func(x float64) float64 {
			return -mu*dPhi.Evaluate(x)*dNext.Evaluate(x) - b*dNext.Evaluate(x)*phi.Evaluate(x)
		})
		if err != nil {
			return nil, err
		}

		sys.mass.Set(k, k, massDiag)
		sys.stiffness.Set(k, k, stiffDiag)
		if k > 0 {
			sys.mass.Set(k, k-1, massPrev)
			sys.stiffness.Set(k, k-1, stiffPrev)
		} else {
			// Row couples to the left boundary node: the mass coupling
			// cancels between both sides of the update, only the
			// stiffness part survives as a known constant.
			sys.coupleL = stiffPrev
		}
		if k < m-1 {
			sys.mass.Set(k, k+1, massNext)
			sys.stiffness.Set(k, k+1, stiffNext)
		} else {
			sys.coupleR = stiffNext
		}
	}

	return sys, nil
}

// Solve performs one implicit step M*u_new = (M + dt*S)*u_old + boundary
// terms, then replaces the internal state with the new interior values. A
// failed step leaves the previous state untouched.
func (s *TransientDiffusion) Solve(precision int, dt float64) ([]float64, error) {
	sys, err := s.assemble(precision)
	if err != nil {
		return nil, err
	}

	m := len(s.mesh) - 2
	rhsMass, err := TridiagMulVec(sys.mass, s.state, 1)
	if err != nil {
		return nil, err
	}
	rhsStiff, err := TridiagMulVec(sys.stiffness, s.state, dt)
	if err != nil {
		return nil, err
	}
	rhs, err := AddVec(rhsMass, rhsStiff)
	if err != nil {
		return nil, err
	}
	rhs.SetVec(0, rhs.AtVec(0)+dt*sys.coupleL*s.params.BoundaryConditions[0])
	rhs.SetVec(m-1, rhs.AtVec(m-1)+dt*sys.coupleR*s.params.BoundaryConditions[1])

	if err := checkFinite(sys.mass, rhs); err != nil {
		return nil, err
	}

	res, err := SolveByThomas(sys.mass, rhs)
	if err != nil {
		return nil, err
	}
	res[0] = s.params.BoundaryConditions[0]
	res[m+1] = s.params.BoundaryConditions[1]

	copy(s.state.RawVector().Data, res[1:m+1])
	return res, nil
}
