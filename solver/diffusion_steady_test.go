package solver

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrecision = 150

func TestSteadyDiffusionMeshValidation(t *testing.T) {
	params := SteadyDiffusionParams{Mu: 1, B: 1}
	_, err := NewSteadyDiffusion(params, []float64{0, 1})
	assert.Error(t, err)
	_, err = NewSteadyDiffusion(params, []float64{0, 1, 0.5})
	assert.Error(t, err)
}

func TestSteadyDiffusionMatrixThreeNodes(t *testing.T) {
	params := SteadyDiffusionParams{Mu: 1, B: 1, BoundaryConditions: [2]float64{0, 1}}
	s, err := NewSteadyDiffusion(params, []float64{0, 0.5, 1})
	require.NoError(t, err)

	a, load, err := s.Assemble(testPrecision)
	require.NoError(t, err)

	assert.Equal(t, 1.0, a.At(0, 0))
	assert.Equal(t, 1.0, a.At(2, 2))
	assert.InDelta(t, 4.0, a.At(1, 1), 0.1)
	assert.InDelta(t, -2.5, a.At(1, 0), 0.1)
	assert.InDelta(t, -1.5, a.At(1, 2), 0.1)
	assert.Equal(t, 0.0, load.AtVec(0))
	assert.Equal(t, 1.0, load.AtVec(2))
}

func TestSteadyDiffusionSolveThreeNodes(t *testing.T) {
	params := SteadyDiffusionParams{Mu: 1, B: 1, BoundaryConditions: [2]float64{0, 1}}
	s, err := NewSteadyDiffusion(params, []float64{0, 0.5, 1})
	require.NoError(t, err)

	res, err := s.Solve(testPrecision, 0)
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, 0.0, res[0])
	assert.Equal(t, 1.0, res[2])
	assert.GreaterOrEqual(t, res[1], 0.2)
	assert.LessOrEqual(t, res[1], 0.4)
}

func TestSteadyDiffusionSolveFourNodes(t *testing.T) {
	params := SteadyDiffusionParams{Mu: 1, B: 1, BoundaryConditions: [2]float64{0, 1}}
	s, err := NewSteadyDiffusion(params, []float64{0, 0.33, 0.66, 1})
	require.NoError(t, err)

	res, err := s.Solve(testPrecision, 0)
	require.NoError(t, err)
	require.Len(t, res, 4)

	// Boundary values are exact, interior strictly increasing.
	assert.Equal(t, 0.0, res[0])
	assert.Equal(t, 1.0, res[3])
	for i := 1; i < len(res); i++ {
		assert.Greater(t, res[i], res[i-1], "solution not increasing at %d", i)
	}
}

func TestSteadyDiffusionSolutionLength(t *testing.T) {
	meshes := [][]float64{
		{0, 0.5, 1},
		{0, 0.25, 0.5, 0.75, 1},
		{-1, -0.3, 0.12, 0.4, 0.55, 0.9, 2},
	}
	params := SteadyDiffusionParams{Mu: 1, B: 1, BoundaryConditions: [2]float64{-2, 3}}
	for _, mesh := range meshes {
		t.Run(fmt.Sprintf("n=%d", len(mesh)), func(t *testing.T) {
			s, err := NewSteadyDiffusion(params, mesh)
			require.NoError(t, err)

			res, err := s.Solve(testPrecision, 0)
			require.NoError(t, err)
			require.Len(t, res, len(mesh))
			assert.Equal(t, params.BoundaryConditions[0], res[0])
			assert.Equal(t, params.BoundaryConditions[1], res[len(mesh)-1])
		})
	}
}

func TestSteadyDiffusionFiveNodesAgainstReference(t *testing.T) {
	params := SteadyDiffusionParams{Mu: 1, B: 1, BoundaryConditions: [2]float64{0, 1}}
	s, err := NewSteadyDiffusion(params, []float64{0, 0.25, 0.5, 0.75, 1})
	require.NoError(t, err)

	a, _, err := s.Assemble(testPrecision)
	require.NoError(t, err)
	for i := 1; i <= 3; i++ {
		assert.InDelta(t, 8.0, a.At(i, i), 0.1, "row %d", i)
		assert.InDelta(t, -4.5, a.At(i, i-1), 0.1, "row %d", i)
		assert.InDelta(t, -3.5, a.At(i, i+1), 0.1, "row %d", i)
	}

	res, err := s.Solve(testPrecision, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.16, res[1], 0.01)
	assert.InDelta(t, 0.37, res[2], 0.01)
	assert.InDelta(t, 0.64, res[3], 0.015)
}

func TestSteadyDiffusionInvalidPrecision(t *testing.T) {
	params := SteadyDiffusionParams{Mu: 1, B: 1, BoundaryConditions: [2]float64{0, 1}}
	s, err := NewSteadyDiffusion(params, []float64{0, 0.5, 1})
	require.NoError(t, err)

	_, err = s.Solve(1, 0)
	assert.Error(t, err)
}
