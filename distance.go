package hnsw

import (
	"github.com/chewxy/math32"
	"github.com/viterin/vek/vek32"
)

// DistanceFunc computes the distance between two vectors of equal length.
// It must be deterministic and symmetric: Distance(a, b) == Distance(b, a)
// within one search call. The core does not require the triangle
// inequality to hold.
type DistanceFunc func(a, b Vector) float32

// CosineDistance computes 1 minus the cosine similarity of a and b, using
// vek32's SIMD dot product and norm. Cosine similarity is undefined when
// either vector is zero; CosineDistance returns 0 in that case rather than
// propagating NaN.
func CosineDistance(a, b Vector) float32 {
	normA := vek32.Norm(a)
	normB := vek32.Norm(b)
	if normA == 0 || normB == 0 {
		return 0
	}

	sim := vek32.Dot(a, b) / (normA * normB)
	return 1 - sim
}

// EuclideanDistance computes the L2 distance between a and b.
func EuclideanDistance(a, b Vector) float32 {
	diff := vek32.Sub(a, b)
	return math32.Sqrt(vek32.Dot(diff, diff))
}
