package hnsw

// Analyzer provides read-only diagnostics over an Index's hierarchy. It
// holds no state of its own and never mutates the index.
type Analyzer struct {
	Index *Index
}

// Height returns the number of layers currently in the hierarchy
// (L_current + 1), or 0 for an empty index.
func (a *Analyzer) Height() int {
	return len(a.Index.layers)
}

// Topography returns the number of nodes present in each layer, from the
// base layer upward. Topography()[0] always equals Index.Len().
func (a *Analyzer) Topography() []int {
	topography := make([]int, len(a.Index.layers))
	for i, l := range a.Index.layers {
		topography[i] = l.size()
	}
	return topography
}

// Connectivity returns the average out-degree of each non-empty layer,
// from the base layer upward.
func (a *Analyzer) Connectivity() []float64 {
	connectivity := make([]float64, 0, len(a.Index.layers))
	for _, l := range a.Index.layers {
		if l.size() == 0 {
			continue
		}
		var sum int
		for _, id := range l.members() {
			sum += len(l.neighborsOf(id))
		}
		connectivity = append(connectivity, float64(sum)/float64(l.size()))
	}
	return connectivity
}
