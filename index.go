package hnsw

import "slices"

// Index is a Hierarchical Navigable Small World graph: a layered,
// single-threaded ANN index over fixed-dimension float32 vectors. The
// zero value is not usable; construct one with New.
type Index struct {
	config Config
	store  *store
	layers []*layer

	entryPoint VectorId
	lCurrent   int // -1 is the sentinel for an empty hierarchy

	visited *visitedSet
}

// New constructs an Index for vectors of dimension dim. Unset optional
// Config fields (MMax, MMax0, ML) take their documented defaults;
// Distance and Sampler have no default and must be set. It returns
// ErrInvalidConfig if the (defaulted) config is invalid.
func New(dim int, config Config) (*Index, error) {
	config = config.withDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}

	return &Index{
		config:   config,
		store:    newStore(dim),
		lCurrent: -1,
		visited:  newVisitedSet(),
	}, nil
}

// Len returns the number of vectors held by the index.
func (idx *Index) Len() int {
	return idx.store.len()
}

// Clear drops the entire hierarchy and vector store, releasing their
// backing capacity. The entry point becomes undefined.
func (idx *Index) Clear() {
	idx.store.clear()
	idx.layers = nil
	idx.entryPoint = 0
	idx.lCurrent = -1
	idx.visited = newVisitedSet()
}

// Insert adds v to the index and returns its assigned, stable id.
//
// Insert is not transactional: if an error occurs partway (e.g. an
// allocator failure surfacing from the host), v may be left in the
// vector store without being fully connected into every layer. This is
// a deliberate trade-off in favor of a simple, allocation-light insert
// path over rollback machinery for a class of error the core cannot
// itself provoke.
func (idx *Index) Insert(v Vector) (VectorId, error) {
	id, err := idx.store.push(v)
	if err != nil {
		return 0, err
	}

	newLevel := idx.config.sampleLevel()

	if idx.lCurrent < 0 {
		for l := 0; l <= newLevel; l++ {
			idx.layers = append(idx.layers, newLayer())
			idx.layers[l].insertNode(id)
		}
		idx.entryPoint = id
		idx.lCurrent = newLevel
		return id, nil
	}

	ep := idx.entryPoint
	for l := idx.lCurrent; l > newLevel; l-- {
		ep = greedyDescend(ep, v, idx.layers[l], idx.store, idx.config.Distance)
	}

	top := idx.lCurrent
	if newLevel < top {
		top = newLevel
	}

	for l := top; l >= 0; l-- {
		w := boundedBeamSearch(
			[]VectorId{ep}, v, idx.layers[l], idx.store,
			idx.config.Distance, idx.config.EfConstruction, idx.visited,
		)

		degreeCap := idx.config.MMax
		if l == 0 {
			degreeCap = idx.config.MMax0
		}

		selected := selectNeighbors(w, idx.config.M)

		idx.layers[l].insertNode(id)
		idx.layers[l].setNeighbors(id, selected)

		for _, n := range selected {
			idx.layers[l].addNeighbor(n, id)
			if len(idx.layers[l].neighborsOf(n)) > degreeCap {
				idx.pruneNeighbors(l, n, degreeCap)
			}
		}

		if len(w) > 0 {
			ep = w[0].Id
		}
	}

	if newLevel > idx.lCurrent {
		for l := idx.lCurrent + 1; l <= newLevel; l++ {
			idx.layers = append(idx.layers, newLayer())
			idx.layers[l].insertNode(id)
		}
		idx.lCurrent = newLevel
		idx.entryPoint = id
	}

	return id, nil
}

// InsertBatch inserts every vector in vectors in order, semantically
// equivalent to calling Insert repeatedly. It stops and returns the ids
// assigned so far on the first error.
func (idx *Index) InsertBatch(vectors []Vector) ([]VectorId, error) {
	ids := make([]VectorId, 0, len(vectors))
	for _, v := range vectors {
		id, err := idx.Insert(v)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Search returns up to k vectors closest to q, ascending by distance,
// using EfConstruction (or k, if larger) as the search-time beam width.
func (idx *Index) Search(q Vector, k int) ([]SearchResult, error) {
	ef := idx.config.EfConstruction
	if k > ef {
		ef = k
	}
	return idx.SearchWithEf(q, k, ef)
}

// SearchWithEf is Search with an explicit ef_search, letting a caller
// trade recall for latency independent of EfConstruction.
func (idx *Index) SearchWithEf(q Vector, k, ef int) ([]SearchResult, error) {
	if idx.lCurrent < 0 {
		return nil, ErrEmptyIndex
	}

	ep := idx.entryPoint
	for l := idx.lCurrent; l >= 1; l-- {
		ep = greedyDescend(ep, q, idx.layers[l], idx.store, idx.config.Distance)
	}

	results := boundedBeamSearch(
		[]VectorId{ep}, q, idx.layers[0], idx.store,
		idx.config.Distance, ef, idx.visited,
	)

	if k < 0 {
		k = 0
	}
	if k < len(results) {
		results = results[:k]
	}
	return results, nil
}

// selectNeighbors implements the "simple" neighbor-selection heuristic:
// the closest m elements of the candidate set w, which boundedBeamSearch
// already returns in ascending order. The HNSW paper's "advanced",
// diversity-preserving heuristic is an equally valid alternative; this
// index uses the simple one.
func selectNeighbors(w []SearchResult, m int) []VectorId {
	if len(w) > m {
		w = w[:m]
	}
	ids := make([]VectorId, len(w))
	for i, r := range w {
		ids[i] = r.Id
	}
	return ids
}

// pruneNeighbors recomputes n's neighbor list at layer l as the closest
// degreeCap elements of its current (over-full) list, and drops the
// reverse edge for every neighbor that didn't make the cut, preserving
// bidirectionality.
func (idx *Index) pruneNeighbors(l int, n VectorId, degreeCap int) {
	current := idx.layers[l].neighborsOf(n)
	nv := idx.store.get(n)

	scored := make([]candidate, len(current))
	for i, c := range current {
		scored[i] = candidate{id: c, dist: idx.config.Distance(idx.store.get(c), nv)}
	}
	slices.SortFunc(scored, func(a, b candidate) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	if len(scored) > degreeCap {
		scored = scored[:degreeCap]
	}

	keep := make(map[VectorId]bool, len(scored))
	kept := make([]VectorId, len(scored))
	for i, c := range scored {
		kept[i] = c.id
		keep[c.id] = true
	}
	idx.layers[l].setNeighbors(n, kept)

	for _, c := range current {
		if !keep[c] {
			idx.removeNeighbor(l, c, n)
		}
	}
}

// removeNeighbor drops target from id's neighbor list at layer l, if
// present.
func (idx *Index) removeNeighbor(l int, id, target VectorId) {
	current := idx.layers[l].neighborsOf(id)
	out := make([]VectorId, 0, len(current))
	for _, c := range current {
		if c != target {
			out = append(out, c)
		}
	}
	idx.layers[l].setNeighbors(id, out)
}
