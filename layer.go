package hnsw

import (
	"slices"

	"golang.org/x/exp/maps"
)

// layer is one level of the hierarchy: a mapping from VectorId to its
// ordered neighbor list at this level. Presence as a key means the node
// is a member of this layer.
type layer struct {
	neighbors map[VectorId][]VectorId
}

func newLayer() *layer {
	return &layer{neighbors: make(map[VectorId][]VectorId)}
}

// insertNode registers id with an empty neighbor list. Re-inserting an
// already-present id is a caller error; the controller must not do it.
func (l *layer) insertNode(id VectorId) {
	l.neighbors[id] = nil
}

// setNeighbors replaces id's neighbor list. The caller is responsible for
// enforcing the degree cap before calling this.
func (l *layer) setNeighbors(id VectorId, ids []VectorId) {
	l.neighbors[id] = ids
}

// neighborsOf borrows the current neighbor list of id.
func (l *layer) neighborsOf(id VectorId) []VectorId {
	return l.neighbors[id]
}

func (l *layer) contains(id VectorId) bool {
	_, ok := l.neighbors[id]
	return ok
}

func (l *layer) size() int {
	return len(l.neighbors)
}

// members returns every id present in this layer, in ascending order.
// Iteration is sorted rather than map-random so that two walks over an
// identical layer see its members in the same order.
func (l *layer) members() []VectorId {
	ids := maps.Keys(l.neighbors)
	slices.Sort(ids)
	return ids
}

// addNeighbor appends n to id's neighbor list. The caller is responsible
// for ensuring id doesn't already have n as a neighbor and for pruning
// afterward if the degree cap is exceeded.
func (l *layer) addNeighbor(id, n VectorId) {
	l.neighbors[id] = append(l.neighbors[id], n)
}
