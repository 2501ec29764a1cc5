// Package heap implements a min-max heap: a single backing array that
// supports retrieving and removing both the minimum and the maximum
// element, each in O(log n) (O(1) for peeking). The HNSW search kernel
// uses one Heap as the candidate frontier (ordered by Pop/Min, the
// closest unexpanded node) and another as the bounded result set
// (ordered by PopLast/Max, the farthest kept node, evicted first when
// the set overflows).
package heap

// Lesser is implemented by elements orderable for heap purposes.
type Lesser[T any] interface {
	Less(T) bool
}

// Heap is a min-max heap over T. The zero value is an empty heap.
type Heap[T Lesser[T]] struct {
	items []T
}

// Init replaces the heap's contents with items and establishes the
// min-max heap property in O(n).
func (h *Heap[T]) Init(items []T) {
	h.items = items
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.trickleDown(i)
	}
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// Slice returns the heap's backing array in heap order (not sorted).
func (h *Heap[T]) Slice() []T {
	return h.items
}

// Push adds v to the heap.
func (h *Heap[T]) Push(v T) {
	h.items = append(h.items, v)
	h.bubbleUp(len(h.items) - 1)
}

// Pop removes and returns the minimum element.
func (h *Heap[T]) Pop() T {
	return h.removeAt(0)
}

// PopLast removes and returns the maximum element.
func (h *Heap[T]) PopLast() T {
	return h.removeAt(h.maxIndex())
}

// Min returns the minimum element without removing it.
func (h *Heap[T]) Min() T {
	return h.items[0]
}

// Max returns the maximum element without removing it.
func (h *Heap[T]) Max() T {
	return h.items[h.maxIndex()]
}

func (h *Heap[T]) maxIndex() int {
	switch len(h.items) {
	case 1:
		return 0
	case 2:
		return 1
	default:
		if h.items[1].Less(h.items[2]) {
			return 2
		}
		return 1
	}
}

func (h *Heap[T]) removeAt(i int) T {
	v := h.items[i]
	last := len(h.items) - 1
	h.items[i] = h.items[last]
	var zero T
	h.items[last] = zero
	h.items = h.items[:last]
	if i < len(h.items) {
		h.trickleDown(i)
		h.bubbleUp(i)
	}
	return v
}

func isMinLevel(i int) bool {
	// level(i) = floor(log2(i+1)); level parity determines min/max level.
	level := 0
	for n := i + 1; n > 1; n >>= 1 {
		level++
	}
	return level%2 == 0
}

func parent(i int) int {
	return (i - 1) / 2
}

func hasParent(i int) bool {
	return i > 0
}

func grandparent(i int) int {
	return parent(parent(i))
}

func hasGrandparent(i int) bool {
	return hasParent(i) && hasParent(parent(i))
}

func (h *Heap[T]) bubbleUp(i int) {
	if isMinLevel(i) {
		if hasParent(i) && h.items[parent(i)].Less(h.items[i]) {
			h.swap(i, parent(i))
			h.bubbleUpMax(parent(i))
		} else {
			h.bubbleUpMin(i)
		}
	} else {
		if hasParent(i) && h.items[i].Less(h.items[parent(i)]) {
			h.swap(i, parent(i))
			h.bubbleUpMin(parent(i))
		} else {
			h.bubbleUpMax(i)
		}
	}
}

func (h *Heap[T]) bubbleUpMin(i int) {
	for hasGrandparent(i) && h.items[i].Less(h.items[grandparent(i)]) {
		g := grandparent(i)
		h.swap(i, g)
		i = g
	}
}

func (h *Heap[T]) bubbleUpMax(i int) {
	for hasGrandparent(i) && h.items[grandparent(i)].Less(h.items[i]) {
		g := grandparent(i)
		h.swap(i, g)
		i = g
	}
}

func (h *Heap[T]) trickleDown(i int) {
	if isMinLevel(i) {
		h.trickleDownMin(i)
	} else {
		h.trickleDownMax(i)
	}
}

// childrenAndGrandchildren returns the indices of i's up-to-2 children and
// up-to-4 grandchildren that are in bounds.
func (h *Heap[T]) childrenAndGrandchildren(i int) []int {
	n := len(h.items)
	candidates := []int{2*i + 1, 2*i + 2, 4*i + 3, 4*i + 4, 4*i + 5, 4*i + 6}
	out := candidates[:0]
	for _, c := range candidates {
		if c < n {
			out = append(out, c)
		}
	}
	return out
}

func isGrandchild(i, m int) bool {
	return m >= 4*i+3
}

func (h *Heap[T]) trickleDownMin(i int) {
	descendants := h.childrenAndGrandchildren(i)
	if len(descendants) == 0 {
		return
	}

	m := descendants[0]
	for _, d := range descendants[1:] {
		if h.items[d].Less(h.items[m]) {
			m = d
		}
	}

	if !isGrandchild(i, m) {
		if h.items[m].Less(h.items[i]) {
			h.swap(i, m)
		}
		return
	}

	if h.items[m].Less(h.items[i]) {
		h.swap(i, m)
		if h.items[parent(m)].Less(h.items[m]) {
			h.swap(m, parent(m))
		}
		h.trickleDownMin(m)
	}
}

func (h *Heap[T]) trickleDownMax(i int) {
	descendants := h.childrenAndGrandchildren(i)
	if len(descendants) == 0 {
		return
	}

	m := descendants[0]
	for _, d := range descendants[1:] {
		if h.items[m].Less(h.items[d]) {
			m = d
		}
	}

	if !isGrandchild(i, m) {
		if h.items[i].Less(h.items[m]) {
			h.swap(i, m)
		}
		return
	}

	if h.items[i].Less(h.items[m]) {
		h.swap(i, m)
		if h.items[m].Less(h.items[parent(m)]) {
			h.swap(m, parent(m))
		}
		h.trickleDownMax(m)
	}
}

func (h *Heap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}
