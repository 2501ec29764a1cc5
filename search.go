package hnsw

import "github.com/latticeann/hnsw/heap"

// candidate pairs a node with its distance to the active query, ordered
// first by distance and, on ties, by ascending id — a stable total order
// so that beam search output is reproducible run to run.
type candidate struct {
	id   VectorId
	dist float32
}

func (c candidate) Less(o candidate) bool {
	if c.dist != o.dist {
		return c.dist < o.dist
	}
	return c.id < o.id
}

// visitedSet is a reusable, epoch-tagged membership set. reset is O(1)
// amortized: it only bumps a counter, so searches never pay for a fresh
// allocation or a full clear.
type visitedSet struct {
	epoch  uint64
	stamps []uint64
}

func newVisitedSet() *visitedSet {
	return &visitedSet{}
}

// reset prepares the set for a new search over n ids.
func (v *visitedSet) reset(n int) {
	if n > len(v.stamps) {
		grown := make([]uint64, n)
		copy(grown, v.stamps)
		v.stamps = grown
	}
	v.epoch++
}

// visit marks id as visited in the current epoch, returning true the
// first time it's called for id since the last reset.
func (v *visitedSet) visit(id VectorId) bool {
	if v.stamps[id] == v.epoch {
		return false
	}
	v.stamps[id] = v.epoch
	return true
}

// greedyDescend walks from start to the neighbor (possibly start itself)
// with the smallest distance to q, stopping when no neighbor improves on
// the current best. It is used to traverse the upper layers, where a
// single best path — not a frontier — is wanted.
func greedyDescend(start VectorId, q Vector, l *layer, s *store, dist DistanceFunc) VectorId {
	current := start
	currentDist := dist(s.get(current), q)

	for {
		improved := false
		for _, n := range l.neighborsOf(current) {
			d := dist(s.get(n), q)
			if candidate{id: n, dist: d}.Less(candidate{id: current, dist: currentDist}) {
				current, currentDist = n, d
				improved = true
			}
		}
		if !improved {
			return current
		}
	}
}

// boundedBeamSearch explores l outward from entries, maintaining a
// candidate frontier and a result set bounded to ef entries, and returns
// the result set drained in ascending distance order. visited is reset
// at the start of the call and reused across calls by the caller.
func boundedBeamSearch(
	entries []VectorId,
	q Vector,
	l *layer,
	s *store,
	dist DistanceFunc,
	ef int,
	visited *visitedSet,
) []SearchResult {
	visited.reset(s.len())

	var candidates, result heap.Heap[candidate]

	for _, id := range entries {
		if !visited.visit(id) {
			continue
		}
		c := candidate{id: id, dist: dist(s.get(id), q)}
		candidates.Push(c)
		result.Push(c)
	}

	for candidates.Len() > 0 {
		c := candidates.Pop()

		if result.Len() >= ef && c.dist > result.Max().dist {
			break
		}

		for _, n := range l.neighborsOf(c.id) {
			if !visited.visit(n) {
				continue
			}

			nd := dist(s.get(n), q)
			if result.Len() < ef || nd < result.Max().dist {
				nc := candidate{id: n, dist: nd}
				candidates.Push(nc)
				result.Push(nc)
				if result.Len() > ef {
					result.PopLast()
				}
			}
		}
	}

	out := make([]SearchResult, 0, result.Len())
	for result.Len() > 0 {
		c := result.Pop()
		out = append(out, SearchResult{Id: c.id, Vector: s.get(c.id), Distance: c.dist})
	}
	return out
}
