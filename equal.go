package ringdeque

import (
	"cmp"
	"slices"
)

// Equal returns whether both Deques have the same length and the same elements
// in the same order. Capacity is not compared, so a full Deque of capacity 3
// equals a Deque of capacity 10 holding the same three elements. Two nil
// Deques are equal, but an empty Deque and nil are not. This must not be a
// method, otherwise Deque would be constrained to comparable elements.
func Equal[T comparable](d1 *Deque[T], d2 *Deque[T]) bool {
	return d1.EqualFunc(d2, func(a, b T) bool { return a == b })
}

// EqualFunc returns whether both Deques have the same length and f reports
// every pair of elements, in front-to-back order, as equal. Two nil Deques
// are equal, but an empty Deque and nil are not.
func (d1 *Deque[T]) EqualFunc(d2 *Deque[T], f func(T, T) bool) bool {
	if d1 == nil || d2 == nil {
		return d1 == d2
	}

	if d1.size != d2.size {
		return false
	}

	for i := range d1.size {
		if !f(d1.buf[d1.physical(i)], d2.buf[d2.physical(i)]) {
			return false
		}
	}
	return true
}

// Contains returns whether the element is in the Deque. This must not be a
// method, otherwise Deque would be constrained to comparable elements. It has
// the same semantics as slices.Contains.
func Contains[T comparable](d *Deque[T], t T) bool {
	return Index(d, t) != -1
}

// ContainsFunc returns whether an element satisfying f is in the Deque. It has
// the same semantics as slices.ContainsFunc.
func (d *Deque[T]) ContainsFunc(f func(T) bool) bool {
	return d.IndexFunc(f) != -1
}

// Index returns the index of the first ocurrence of t in the Deque or -1 if
// absent. It cannot be a method, otherwise Deque would be constrained to
// comparable elements only. Index has the same semantics as slices.Index.
func Index[T comparable](d *Deque[T], t T) int {
	return d.IndexFunc(func(e T) bool { return e == t })
}

// IndexFunc returns the index of the first element that satisfies f in the
// Deque or -1 if none do. IndexFunc has the same semantics as
// slices.IndexFunc.
func (d *Deque[T]) IndexFunc(f func(T) bool) int {
	s1, s2 := d.slices()
	i := slices.IndexFunc(s1, f)
	if i != -1 {
		return i
	}
	i = slices.IndexFunc(s2, f)
	if i != -1 {
		return i + len(s1)
	}
	return -1
}

// Max returns the maximum element in the queue. It must not be a method,
// otherwise Deque would be constrained to ordered elements only. It has the
// same semantics as slices.Max, so it panics on an empty Deque.
func Max[T cmp.Ordered](d *Deque[T]) T {
	s1, s2 := d.slices()
	result := slices.Max(s1)
	// slices.Max panics on an empty slice, so handle this edge case.
	if s2 != nil {
		result = max(result, slices.Max(s2))
	}
	return result
}

// Min returns the minimum element in the queue. It must not be a method,
// otherwise Deque would be constrained to ordered elements only. It has the
// same semantics as slices.Min, so it panics on an empty Deque.
func Min[T cmp.Ordered](d *Deque[T]) T {
	s1, s2 := d.slices()
	result := slices.Min(s1)
	if s2 != nil {
		result = min(result, slices.Min(s2))
	}
	return result
}
