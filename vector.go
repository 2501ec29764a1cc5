package hnsw

// Vector is a fixed-length embedding. float32 is used for compatibility
// with common embedding sources (e.g. OpenAI-style APIs) and with the
// SIMD-friendly vek32/math32 distance implementations in distance.go.
type Vector []float32

// VectorId is a stable identifier assigned by the vector store in
// insertion order. Ids are never reused while the index holds its
// vectors; Clear empties the store, and numbering restarts at 0.
type VectorId int

// clone returns an independent copy of v so the store's internal slice
// never aliases caller-owned memory.
func (v Vector) clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}
