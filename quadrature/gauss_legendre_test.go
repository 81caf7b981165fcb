package quadrature

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate/quad"
)

func TestRuleRejectsLowDegree(t *testing.T) {
	for _, degree := range []int{-1, 0, 1} {
		_, err := Rule(degree)
		assert.ErrorIs(t, err, ErrInvalidDegree, "degree %d", degree)
	}
}

func TestRuleDegreeTwo(t *testing.T) {
	pairs, err := Rule(2)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	// The two-point rule has nodes at ±1/sqrt(3) with unit weights.
	node := 1 / math.Sqrt(3)
	xs := []float64{math.Cos(pairs[0].Theta), math.Cos(pairs[1].Theta)}
	assert.InDelta(t, -node, math.Min(xs[0], xs[1]), 1e-14)
	assert.InDelta(t, node, math.Max(xs[0], xs[1]), 1e-14)
	assert.InDelta(t, 1.0, pairs[0].Weight, 1e-14)
	assert.InDelta(t, 1.0, pairs[1].Weight, 1e-14)
}

func TestRuleWeightsAndSymmetry(t *testing.T) {
	for _, degree := range []int{2, 5, 16, 150} {
		t.Run(fmt.Sprintf("degree=%d", degree), func(t *testing.T) {
			pairs, err := Rule(degree)
			require.NoError(t, err)
			require.Len(t, pairs, degree)

			var total float64
			for _, p := range pairs {
				x := math.Cos(p.Theta)
				assert.GreaterOrEqual(t, x, -1.0)
				assert.LessOrEqual(t, x, 1.0)
				assert.Greater(t, p.Weight, 0.0)
				total += p.Weight
			}
			assert.InDelta(t, 2.0, total, 1e-12)
		})
	}
}

func TestRuleExactForPolynomials(t *testing.T) {
	// A degree-n rule integrates monomials up to degree 2n-1 exactly.
	pairs, err := Rule(5)
	require.NoError(t, err)

	for k := 0; k <= 9; k++ {
		var got float64
		for _, p := range pairs {
			got += math.Pow(math.Cos(p.Theta), float64(k)) * p.Weight
		}
		want := 0.0
		if k%2 == 0 {
			want = 2 / float64(k+1)
		}
		assert.InDelta(t, want, got, 1e-13, "x^%d", k)
	}
}

func TestRuleMatchesGonumFixed(t *testing.T) {
	pairs, err := Rule(40)
	require.NoError(t, err)

	f := math.Exp
	var got float64
	for _, p := range pairs {
		got += f(math.Cos(p.Theta)) * p.Weight
	}
	want := quad.Fixed(f, -1, 1, 40, quad.Legendre{}, 0)
	assert.InDelta(t, want, got, 1e-12)
}

func TestQuadPair(t *testing.T) {
	p, err := QuadPair(3, 2)
	require.NoError(t, err)
	// Middle node of the 3-point rule: x = 0, weight 8/9.
	assert.InDelta(t, 0.0, math.Cos(p.Theta), 1e-14)
	assert.InDelta(t, 8.0/9.0, p.Weight, 1e-14)

	_, err = QuadPair(3, 0)
	assert.Error(t, err)
	_, err = QuadPair(3, 4)
	assert.Error(t, err)
}
