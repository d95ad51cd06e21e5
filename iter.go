package vector

import "iter"

// All yields each index and element in [0, Len()).
// The vector must not be modified during iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.data[i]) {
				return
			}
		}
	}
}

// Values yields each element in [0, Len()).
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf.data[i]) {
				return
			}
		}
	}
}

// Backward yields index and element from the last element to the first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf.data[i]) {
				return
			}
		}
	}
}
