package hnsw

import "math/rand"

// Sampler is a source of uniform samples in [0, 1). It is supplied as a
// collaborator so level sampling can be made deterministic in tests
// without the core seeding from process state itself.
type Sampler interface {
	Float64() float64
}

// randSampler adapts *rand.Rand to Sampler.
type randSampler struct {
	rng *rand.Rand
}

func (s randSampler) Float64() float64 {
	return s.rng.Float64()
}

// NewSampler wraps a *rand.Rand as a Sampler. Passing the same seed across
// runs yields identical level sequences and, given identical insertion
// order, byte-identical graphs.
func NewSampler(rng *rand.Rand) Sampler {
	return randSampler{rng: rng}
}
