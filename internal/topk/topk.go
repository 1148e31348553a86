// Package topk provides a fixed-capacity top-K selector.
package topk

// Selector retains the K largest items seen across a stream of offers,
// according to a caller-supplied strict order. It is backed by a min-heap
// whose root is the smallest retained item, so each offer costs at most
// one O(log K) restructuring. The heap is implemented directly on the
// slice to avoid the interface boxing of container/heap.
//
// The less function must define a total order; callers that rank by a
// non-unique key (a count, a length) should break ties on a stable
// secondary key so the retained set and output order are deterministic.
type Selector[T any] struct {
	capacity int
	less     func(a, b T) bool
	items    []T
}

// New returns an empty Selector that retains at most capacity items.
func New[T any](capacity int, less func(a, b T) bool) *Selector[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Selector[T]{
		capacity: capacity,
		less:     less,
		items:    make([]T, 0, capacity),
	}
}

// Len returns the number of retained items.
func (s *Selector[T]) Len() int {
	return len(s.items)
}

// Offer considers an item for retention. Below capacity it is inserted
// unconditionally; at capacity it replaces the current minimum only when
// strictly greater, otherwise it is discarded.
func (s *Selector[T]) Offer(item T) {
	if s.capacity == 0 {
		return
	}
	if len(s.items) < s.capacity {
		s.items = append(s.items, item)
		s.up(len(s.items) - 1)
		return
	}
	if !s.less(s.items[0], item) {
		return
	}
	s.items[0] = item
	s.down(0)
}

// Descending consumes the selector and returns the retained items ordered
// from largest to smallest.
func (s *Selector[T]) Descending() []T {
	out := make([]T, len(s.items))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = s.pop()
	}
	return out
}

func (s *Selector[T]) pop() T {
	n := len(s.items) - 1
	s.items[0], s.items[n] = s.items[n], s.items[0]
	item := s.items[n]
	s.items = s.items[:n]
	s.down(0)
	return item
}

func (s *Selector[T]) up(j int) {
	for j > 0 {
		i := (j - 1) / 2
		if !s.less(s.items[j], s.items[i]) {
			break
		}
		s.items[i], s.items[j] = s.items[j], s.items[i]
		j = i
	}
}

func (s *Selector[T]) down(i int) {
	n := len(s.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		j := left
		if right := left + 1; right < n && s.less(s.items[right], s.items[left]) {
			j = right
		}
		if !s.less(s.items[j], s.items[i]) {
			break
		}
		s.items[i], s.items[j] = s.items[j], s.items[i]
		i = j
	}
}
