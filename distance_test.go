package hnsw

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEuclideanDistance(t *testing.T) {
	d := EuclideanDistance(Vector{0, 0, 0}, Vector{3, 4, 0})
	require.InDelta(t, 5.0, d, 1e-5)

	require.Zero(t, EuclideanDistance(Vector{1, 2, 3}, Vector{1, 2, 3}))
}

func TestCosineDistance(t *testing.T) {
	d := CosineDistance(Vector{1, 0}, Vector{1, 0})
	require.InDelta(t, 0, d, 1e-5)

	d = CosineDistance(Vector{1, 0}, Vector{0, 1})
	require.InDelta(t, 1, d, 1e-5)

	d = CosineDistance(Vector{1, 0}, Vector{-1, 0})
	require.InDelta(t, 2, d, 1e-5)
}

func TestCosineDistance_ZeroVector(t *testing.T) {
	require.Zero(t, CosineDistance(Vector{0, 0}, Vector{1, 1}))
}

func TestEuclideanDistance_MatchesNaiveComputation(t *testing.T) {
	a := Vector{1, 2, 3, 4}
	b := Vector{4, 3, 2, 1}

	var sum float64
	for i := range a {
		diff := float64(a[i] - b[i])
		sum += diff * diff
	}
	want := float32(math.Sqrt(sum))

	require.InDelta(t, want, EuclideanDistance(a, b), 1e-4)
}
