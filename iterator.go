package ringdeque

import "iter"

// Iterator is a random-access position in a Deque: a reference to the Deque
// and a logical index, where index Len() is the past-the-end position.
// Iterators are plain values; moving one returns a new Iterator.
//
// Any push, pop, resize or clear invalidates every Iterator of the Deque.
// This is not checked.
type Iterator[T any] struct {
	d *Deque[T]
	i int
}

// Begin returns an Iterator at the front of the Deque.
func (d *Deque[T]) Begin() Iterator[T] { return Iterator[T]{d: d} }

// End returns the past-the-end Iterator of the Deque.
func (d *Deque[T]) End() Iterator[T] { return Iterator[T]{d: d, i: d.Len()} }

// IteratorAt returns an Iterator at logical index i. i is not checked.
func (d *Deque[T]) IteratorAt(i int) Iterator[T] { return Iterator[T]{d: d, i: i} }

// Index returns the logical index of the Iterator.
func (it Iterator[T]) Index() int { return it.i }

// Valid reports whether the Iterator points at an element, i.e. it is neither
// past-the-end nor before the front.
func (it Iterator[T]) Valid() bool { return it.i >= 0 && it.i < it.d.Len() }

func (it Iterator[T]) Next() Iterator[T]       { return it.Add(1) }
func (it Iterator[T]) Prev() Iterator[T]       { return it.Add(-1) }
func (it Iterator[T]) Add(n int) Iterator[T]   { return Iterator[T]{d: it.d, i: it.i + n} }
func (it Iterator[T]) Sub(n int) Iterator[T]   { return Iterator[T]{d: it.d, i: it.i - n} }
func (it Iterator[T]) Diff(o Iterator[T]) int  { return it.i - o.i }
func (it Iterator[T]) Less(o Iterator[T]) bool { return it.i < o.i }

func (it Iterator[T]) LessEqual(o Iterator[T]) bool    { return it.i <= o.i }
func (it Iterator[T]) Greater(o Iterator[T]) bool      { return it.i > o.i }
func (it Iterator[T]) GreaterEqual(o Iterator[T]) bool { return it.i >= o.i }

// Equal reports whether both Iterators refer to the same Deque and index.
func (it Iterator[T]) Equal(o Iterator[T]) bool { return it.d == o.d && it.i == o.i }

// Get returns the element at the Iterator, or ErrIndexOutOfRange.
func (it Iterator[T]) Get() (T, error) { return it.d.At(it.i) }

// Set overwrites the element at the Iterator, or returns ErrIndexOutOfRange.
func (it Iterator[T]) Set(t T) error { return it.d.Set(it.i, t) }

// Ptr returns a pointer to the element at the Iterator, or
// ErrIndexOutOfRange.
func (it Iterator[T]) Ptr() (*T, error) { return it.d.Ptr(it.i) }

// Distance returns the number of increments from first to last.
func Distance[T any](first, last Iterator[T]) int {
	return last.Diff(first)
}

// Fill assigns t to every element in [first, last). It stops at the first
// position that is out of range and returns ErrIndexOutOfRange.
func Fill[T any](first, last Iterator[T], t T) error {
	for it := first; it.Less(last); it = it.Next() {
		if err := it.Set(t); err != nil {
			return err
		}
	}
	return nil
}

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// All returns an iterator over index-value pairs in order. It has the same
// semantics as slices.All. If you don't need indexes, use Iter instead.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range d.Len() {
			if !yield(i, d.AtUnsafe(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from back to front. It
// has the same semantics as slices.Backward.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := d.Len() - 1; i >= 0; i-- {
			if !yield(i, d.AtUnsafe(i)) {
				return
			}
		}
	}
}

// Iter returns an iterator over values only, front to back. If you need
// indexes, use All instead.
func (d *Deque[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		s1, s2 := d.slices()
		for _, t := range s1 {
			if !yield(t) {
				return
			}
		}
		for _, t := range s2 {
			if !yield(t) {
				return
			}
		}
	}
}

// RIter returns an iterator over values only, back to front.
func (d *Deque[T]) RIter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, t := range d.Backward() {
			if !yield(t) {
				return
			}
		}
	}
}
