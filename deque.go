package ringdeque

import (
	"fmt"

	"github.com/juju/errors"
)

// Deque is a fixed-capacity double-ended queue backed by a ring buffer. It
// holds at most Cap() elements and never reallocates: pushing to a full Deque
// evicts the element at the opposite end, so a full Deque behaves like a
// sliding window over the most recent pushes.
//
// To create a Deque instance, you must use one of the available constructors,
// MakeDeque(capacity), CopySliceToDeque(capacity, s) or Of(capacity, ts...).
// The zero Deque has no storage and panics on push. nil Deques panic when
// called, except for Len. Creating a Deque in the following way is wrong:
//
//	var deque Deque[int] // wrong
//
// Deque is not safe to use concurrently from multiple goroutines.
type Deque[T any] struct {
	// Items [head, head+size) modulo len(buf) in buf are live. Every other
	// slot holds the zero value of T.
	// Invariants:
	// - len(buf) >= 1 and never changes.
	// - head < len(buf).
	// - size <= len(buf).
	buf        []T
	head, size uint
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// MakeDeque allocates storage for exactly capacity elements. It returns
// ErrInvalidCapacity if capacity is less than one.
func MakeDeque[T any](capacity int) (*Deque[T], error) {
	if capacity < 1 {
		return nil, errors.Annotatef(ErrInvalidCapacity, "capacity %d", capacity)
	}
	return &Deque[T]{buf: make([]T, capacity)}, nil
}

// MustMakeDeque is like MakeDeque but panics on an invalid capacity.
func MustMakeDeque[T any](capacity int) *Deque[T] {
	d, err := MakeDeque[T](capacity)
	if err != nil {
		panic(err)
	}
	return d
}

// CopySliceToDeque allocates a Deque with the given capacity and pushes the
// elements of s at the back, in order, until the Deque is full. Elements that
// don't fit are dropped; unlike PushBack, construction never evicts. Memory
// is not shared with s.
func CopySliceToDeque[T any](capacity int, s []T) (*Deque[T], error) {
	d, err := MakeDeque[T](capacity)
	if err != nil {
		return nil, err
	}
	d.size = uint(copy(d.buf, s))
	return d, nil
}

// Of is the literal form of CopySliceToDeque. It panics on an invalid
// capacity.
func Of[T any](capacity int, ts ...T) *Deque[T] {
	d, err := CopySliceToDeque(capacity, ts)
	if err != nil {
		panic(err)
	}
	return d
}

// Clone returns a new Deque with the same capacity and the same elements.
// The physical layout is normalized so the clone's front is in slot 0.
func (d *Deque[T]) Clone() *Deque[T] {
	c := &Deque[T]{buf: make([]T, len(d.buf))}
	c.size = uint(d.CopySlice(0, c.buf))
	return c
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Len returns the number of elements in the Deque or 0 if nil.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return int(d.size)
}

// Cap returns the fixed number of elements the Deque can hold.
func (d *Deque[T]) Cap() int  { return len(d.buf) }
func (d *Deque[T]) cap() uint { return uint(len(d.buf)) }

// Empty returns whether the Deque is empty.
func (d *Deque[T]) Empty() bool { return d.size == 0 }

// Full returns whether the Deque is full. Pushing to a full Deque evicts.
func (d *Deque[T]) Full() bool { return d.size == d.cap() }

// PushBack puts every argument at the back of the Deque, in order. The last
// argument is the new back. Each push to a full Deque evicts the current
// front, so pushing more than Cap() elements keeps only the last Cap() ones.
func (d *Deque[T]) PushBack(ts ...T) {
	for _, t := range ts {
		d.pushBack(t)
	}
}

// PushFront puts every argument at the front of the Deque, in order. The last
// argument is the new front. Each push to a full Deque evicts the current
// back.
func (d *Deque[T]) PushFront(ts ...T) {
	for _, t := range ts {
		d.pushFront(t)
	}
}

// PushBackEvict pushes t at the back and returns the front element it
// evicted, if the Deque was full.
func (d *Deque[T]) PushBackEvict(t T) (evicted T, ok bool) {
	if d.Full() {
		evicted, ok = d.buf[d.head], true
	}
	d.pushBack(t)
	return
}

// PushFrontEvict pushes t at the front and returns the back element it
// evicted, if the Deque was full.
func (d *Deque[T]) PushFrontEvict(t T) (evicted T, ok bool) {
	if d.Full() {
		evicted, ok = d.buf[d.physical(d.size-1)], true
	}
	d.pushFront(t)
	return
}

// EmplaceBack builds a new back element with f. If f fails, its error is
// returned unchanged and the Deque is left untouched; in particular nothing
// is evicted.
func (d *Deque[T]) EmplaceBack(f func() (T, error)) error {
	t, err := f()
	if err != nil {
		return err
	}
	d.pushBack(t)
	return nil
}

// EmplaceFront builds a new front element with f. If f fails, its error is
// returned unchanged and the Deque is left untouched.
func (d *Deque[T]) EmplaceFront(f func() (T, error)) error {
	t, err := f()
	if err != nil {
		return err
	}
	d.pushFront(t)
	return nil
}

func (d *Deque[T]) pushBack(t T) {
	tail := d.physical(d.size)
	if d.Full() {
		// tail == head: the slot holds the front.
		d.head = (d.head + 1) % d.cap()
	} else {
		d.size++
	}
	d.buf[tail] = t
}

func (d *Deque[T]) pushFront(t T) {
	d.head = (d.head + d.cap() - 1) % d.cap()
	if !d.Full() {
		d.size++
	}
	// When full, the new head is the old back's slot and t overwrites it.
	d.buf[d.head] = t
}

// PopFront removes the first element in the Deque, zeroes its slot, and
// returns it. It returns ErrEmptyContainer if the Deque is empty.
func (d *Deque[T]) PopFront() (t T, err error) {
	if d.Empty() {
		return t, errors.Annotate(ErrEmptyContainer, "pop front")
	}
	return d.PopFrontUnsafe(), nil
}

// PopFrontUnsafe removes the first element in the Deque and returns it. It
// panics if the Deque is empty.
func (d *Deque[T]) PopFrontUnsafe() T {
	d.mustNotBeEmpty("PopFrontUnsafe")
	var zero T
	t := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) % d.cap()
	d.size--
	return t
}

// PopBack removes the last element in the Deque, zeroes its slot, and returns
// it. It returns ErrEmptyContainer if the Deque is empty.
func (d *Deque[T]) PopBack() (t T, err error) {
	if d.Empty() {
		return t, errors.Annotate(ErrEmptyContainer, "pop back")
	}
	return d.PopBackUnsafe(), nil
}

// PopBackUnsafe removes the last element in the Deque and returns it. It
// panics if the Deque is empty.
func (d *Deque[T]) PopBackUnsafe() T {
	d.mustNotBeEmpty("PopBackUnsafe")
	var zero T
	last := d.physical(d.size - 1)
	t := d.buf[last]
	d.buf[last] = zero
	d.size--
	return t
}

// Front returns the first element in the Deque, or ErrEmptyContainer.
func (d *Deque[T]) Front() (t T, err error) {
	p, err := d.FrontPtr()
	if err != nil {
		return t, err
	}
	return *p, nil
}

// FrontPtr returns a pointer to the first element in the Deque. The pointer
// is only valid until the next push, pop or resize.
func (d *Deque[T]) FrontPtr() (*T, error) {
	if d.Empty() {
		return nil, errors.Annotate(ErrEmptyContainer, "front")
	}
	return &d.buf[d.head], nil
}

// Back returns the last element in the Deque, or ErrEmptyContainer.
func (d *Deque[T]) Back() (t T, err error) {
	p, err := d.BackPtr()
	if err != nil {
		return t, err
	}
	return *p, nil
}

// BackPtr returns a pointer to the last element in the Deque. The pointer is
// only valid until the next push, pop or resize.
func (d *Deque[T]) BackPtr() (*T, error) {
	if d.Empty() {
		return nil, errors.Annotate(ErrEmptyContainer, "back")
	}
	return &d.buf[d.physical(d.size-1)], nil
}

// Resize changes the number of elements to n. Shrinking drops elements from
// the back. Growing appends zero values at the back with PushBack semantics,
// so growing past Cap() keeps evicting from the front: the final length is
// Cap() and the Deque holds the last Cap() elements of the sequence.
// It returns ErrNegativeLength if n is negative.
func (d *Deque[T]) Resize(n int) error {
	return d.ResizeFunc(n, func() (t T, _ error) { return t, nil })
}

// ResizeFunc is like Resize, but growth elements are built by f. If f fails,
// the elements built so far stay in the Deque and f's error is returned
// unchanged.
func (d *Deque[T]) ResizeFunc(n int, f func() (T, error)) error {
	if n < 0 {
		return errors.Annotatef(ErrNegativeLength, "resize to %d", n)
	}
	if un := uint(n); un < d.size {
		d.dropBack(d.size - un)
		return nil
	}
	for i := d.size; i < uint(n); i++ {
		if err := d.EmplaceBack(f); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes every element in O(d.Len()), zeroing their slots. The
// capacity is retained.
func (d *Deque[T]) Clear() {
	d.dropBack(d.size)
}

func (d *Deque[T]) dropBack(n uint) {
	var zero T
	for i := d.size - n; i < d.size; i++ {
		d.buf[d.physical(i)] = zero
	}
	d.size -= n
}

// SwapWith exchanges the contents of d and other in O(1). Both Deques must
// have the same capacity, otherwise ErrCapacityMismatch is returned.
func (d *Deque[T]) SwapWith(other *Deque[T]) error {
	if d.cap() != other.cap() {
		return errors.Annotatef(ErrCapacityMismatch, "capacities %d and %d", d.Cap(), other.Cap())
	}
	*d, *other = *other, *d
	return nil
}

// Rotate moves the first n elements to the back, keeping their order. A
// negative n moves the last -n elements to the front instead. It is a head
// move when the Deque is full and takes O(min(n, Len())) otherwise.
func (d *Deque[T]) Rotate(n int) {
	if d.size <= 1 {
		return
	}
	n %= int(d.size)
	if n < 0 {
		n += int(d.size)
	}
	if n == 0 {
		return
	}
	if d.Full() {
		d.head = d.physical(uint(n))
		return
	}
	if uint(n) <= d.size/2 {
		for range n {
			d.pushBack(d.PopFrontUnsafe())
		}
		return
	}
	for range int(d.size) - n {
		d.pushFront(d.PopBackUnsafe())
	}
}

/*****************************************************************************
 * SLICE API
 *****************************************************************************/

// Helper to reuse the slices package functions.
func (d *Deque[T]) slices() (a, b []T) {
	if d == nil || d.Empty() {
		return nil, nil
	}

	end := d.head + d.size
	if end <= d.cap() {
		return d.buf[d.head:end], nil
	}
	return d.buf[d.head:], d.buf[:end-d.cap()]
}

// MakeSliceCopy allocates a slice to hold every Deque element and copies them
// in front-to-back order.
func (d *Deque[T]) MakeSliceCopy() []T {
	s := make([]T, d.Len())
	_ = d.CopySlice(0, s)
	return s
}

// CopySlice has the same semantics as the copy() built-in function. It copies
// elements in the Deque starting at the start index up until the buffer is
// full or the Deque is over, whichever happens first.
//
// CopySlice returns the number of elements copied.
func (d *Deque[T]) CopySlice(start int, buf []T) int {
	s1, s2 := d.slices()
	L1 := len(s1)
	if start < L1 {
		result := copy(buf, s1[start:])
		if result < len(buf) {
			result += copy(buf[result:], s2)
		}
		return result
	}
	return copy(buf, s2[start-L1:])
}

// At returns the i-th element in the Deque, or ErrIndexOutOfRange.
func (d *Deque[T]) At(i int) (t T, err error) {
	if err := d.checkBounds(i); err != nil {
		return t, err
	}
	return d.AtUnsafe(i), nil
}

// AtUnsafe returns the i-th element in the Deque without a bounds check. An
// out of bounds index wraps around the storage and returns another slot,
// possibly a zero value.
func (d *Deque[T]) AtUnsafe(i int) T {
	return d.buf[d.physical(uint(i))]
}

// Ptr returns a pointer to the i-th element in the Deque, or
// ErrIndexOutOfRange. The pointer is only valid until the next push, pop or
// resize.
func (d *Deque[T]) Ptr(i int) (*T, error) {
	if err := d.checkBounds(i); err != nil {
		return nil, err
	}
	return &d.buf[d.physical(uint(i))], nil
}

// Set writes t to the i-th position in the Deque, or returns
// ErrIndexOutOfRange.
func (d *Deque[T]) Set(i int, t T) error {
	if err := d.checkBounds(i); err != nil {
		return err
	}
	d.SetUnsafe(i, t)
	return nil
}

// SetUnsafe writes t to the i-th position in the Deque without a bounds
// check. Writing out of bounds breaks the zeroed-slot invariant.
func (d *Deque[T]) SetUnsafe(i int, t T) {
	d.buf[d.physical(uint(i))] = t
}

// Swap swaps the elements in the i-th and j-th indexes, or returns
// ErrIndexOutOfRange.
func (d *Deque[T]) Swap(i, j int) error {
	if err := d.checkBounds(i); err != nil {
		return err
	}
	if err := d.checkBounds(j); err != nil {
		return err
	}
	a, b := d.physical(uint(i)), d.physical(uint(j))
	d.buf[a], d.buf[b] = d.buf[b], d.buf[a]
	return nil
}

// ForEach takes in a function that returns a bool and calls it in order for
// every element in the queue, or until the first call that returns false.
func (d *Deque[T]) ForEach(f func(T) bool) {
	s1, s2 := d.slices()
	for _, t := range s1 {
		if !f(t) {
			return
		}
	}
	for _, t := range s2 {
		if !f(t) {
			return
		}
	}
}

// String formats the elements front to back, followed by the length, e.g.
// "[1 5 3] (3/5)".
func (d *Deque[T]) String() string {
	return fmt.Sprintf("%v (%d/%d)", d.MakeSliceCopy(), d.Len(), d.Cap())
}

/*****************************************************************************
 * SENTINEL ERRORS
 *****************************************************************************/

const (
	// ErrEmptyContainer is returned when reading or popping an element of an
	// empty Deque.
	ErrEmptyContainer = errors.ConstError("deque is empty")

	// ErrIndexOutOfRange is returned by checked accessors when the index is
	// negative or not less than Len().
	ErrIndexOutOfRange = errors.ConstError("index out of range")

	// ErrInvalidCapacity is returned when making a Deque with a capacity less
	// than one.
	ErrInvalidCapacity = errors.ConstError("capacity must be at least one")

	// ErrNegativeLength is returned when resizing a Deque to a negative
	// length.
	ErrNegativeLength = errors.ConstError("length cannot be negative")

	// ErrCapacityMismatch is returned when swapping Deques of different
	// capacities.
	ErrCapacityMismatch = errors.ConstError("capacities differ")
)

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

// physical maps logical index i to its slot in buf.
func (d *Deque[T]) physical(i uint) uint {
	return (d.head + i) % d.cap()
}

func (d *Deque[T]) checkBounds(i int) error {
	if i < 0 || i >= d.Len() {
		return errors.Annotatef(ErrIndexOutOfRange, "index %d with length %d", i, d.Len())
	}
	return nil
}

func (d *Deque[T]) mustNotBeEmpty(op string) {
	if d.Empty() {
		panic("ringdeque: " + op + " on empty deque")
	}
}
