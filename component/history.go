package component

// History is a fixed-capacity ring buffer that keeps the most recent values.
type History[T any] struct {
	items []T
	start int
	count int
}

func NewHistory[T any](capacity int) *History[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &History[T]{items: make([]T, capacity)}
}

// Push appends v, evicting the oldest value when full.
func (h *History[T]) Push(v T) {
	if h == nil || len(h.items) == 0 {
		return
	}
	if h.count < len(h.items) {
		h.items[(h.start+h.count)%len(h.items)] = v
		h.count++
		return
	}
	h.items[h.start] = v
	h.start = (h.start + 1) % len(h.items)
}

func (h *History[T]) Len() int {
	if h == nil {
		return 0
	}
	return h.count
}

func (h *History[T]) Cap() int {
	if h == nil {
		return 0
	}
	return len(h.items)
}

// Last returns the most recent value.
func (h *History[T]) Last() (T, bool) {
	var zero T
	if h == nil || h.count == 0 {
		return zero, false
	}
	return h.items[(h.start+h.count-1)%len(h.items)], true
}

// Values returns a copy ordered oldest first.
func (h *History[T]) Values() []T {
	if h == nil || h.count == 0 {
		return nil
	}
	out := make([]T, 0, h.count)
	for i := 0; i < h.count; i++ {
		out = append(out, h.items[(h.start+i)%len(h.items)])
	}
	return out
}

func (h *History[T]) Clear() {
	if h == nil {
		return
	}
	clear(h.items)
	h.start = 0
	h.count = 0
}
