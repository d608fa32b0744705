package topk

import "container/heap"

type entry[T any] struct {
	key  T
	line string
}

// selection keeps the k best entries seen so far. The heap root is the
// worst of the kept set, so a streaming pass evicts in O(log k) and
// never holds more than k lines.
type selection[T any] struct {
	k     int
	worse func(a, b T) bool
	items []entry[T]
}

func (s *selection[T]) Len() int           { return len(s.items) }
func (s *selection[T]) Less(i, j int) bool { return s.worse(s.items[i].key, s.items[j].key) }
func (s *selection[T]) Swap(i, j int)      { s.items[i], s.items[j] = s.items[j], s.items[i] }

func (s *selection[T]) Push(x any) { s.items = append(s.items, x.(entry[T])) }

func (s *selection[T]) Pop() any {
	last := len(s.items) - 1
	e := s.items[last]
	s.items = s.items[:last]
	return e
}

// offer considers e for the kept set. An incumbent entry wins ties.
func (s *selection[T]) offer(e entry[T]) {
	if len(s.items) < s.k {
		heap.Push(s, e)
		return
	}
	if !s.worse(s.items[0].key, e.key) {
		return
	}
	s.items[0] = e
	heap.Fix(s, 0)
}

// drain consumes the selection and returns its entries best-first.
func (s *selection[T]) drain() []entry[T] {
	out := make([]entry[T], len(s.items))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(s).(entry[T])
	}
	return out
}
