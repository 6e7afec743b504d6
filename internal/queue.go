package internal

// Queue is a FIFO of pending words (or anything else).
type Queue[T any] struct {
	elements []T
}

func (q *Queue[T]) Push(elements ...T) {
	q.elements = append(q.elements, elements...)
}

func (q *Queue[T]) Len() int {
	return len(q.elements)
}

func (q *Queue[T]) Empty() bool {
	return len(q.elements) == 0
}

// Pop removes the oldest element. It panics on an empty queue.
func (q *Queue[T]) Pop() T {
	element := q.elements[0]
	q.elements = q.elements[1:]
	return element
}

// Drain pops every element in order.
func (q *Queue[T]) Drain(fn func(T)) {
	for !q.Empty() {
		fn(q.Pop())
	}
}
