package ringdeque

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// wrapped returns a full deque of capacity 5 holding [3 4 5 6 7], with its
// front in the middle of the storage.
func wrapped() *Deque[int] {
	d := MustMakeDeque[int](5)
	d.PushBack(1, 2, 3, 4, 5, 6, 7)
	return d
}

func TestIteratorWalk(t *testing.T) {
	d := wrapped()

	var got []int
	for it := d.Begin(); !it.Equal(d.End()); it = it.Next() {
		v, err := it.Get()
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Equal(t, []int{3, 4, 5, 6, 7}, got)

	got = got[:0]
	for it := d.End().Prev(); it.GreaterEqual(d.Begin()); it = it.Prev() {
		v, err := it.Get()
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Equal(t, []int{7, 6, 5, 4, 3}, got)
}

func TestIteratorArithmetic(t *testing.T) {
	d := wrapped()
	begin, end := d.Begin(), d.End()

	require.Equal(t, 5, Distance(begin, end))
	require.Equal(t, -5, begin.Diff(end))

	it := begin.Add(3)
	require.Equal(t, 3, it.Index())
	v, err := it.Get()
	require.NoError(t, err)
	require.Equal(t, 6, v)

	require.True(t, begin.Add(3).Equal(end.Sub(2)))
	require.True(t, begin.Less(it))
	require.True(t, it.LessEqual(it))
	require.True(t, end.Greater(it))
	require.False(t, begin.Greater(it))

	require.True(t, it.Valid())
	require.False(t, end.Valid())
	require.False(t, begin.Prev().Valid())
	_, err = end.Get()
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	// Same index on another deque is a different position.
	require.False(t, begin.Equal(wrapped().Begin()))
	require.True(t, d.IteratorAt(2).Equal(begin.Add(2)))
}

func TestIteratorWrite(t *testing.T) {
	d := wrapped()

	require.NoError(t, d.Begin().Next().Set(40))
	p, err := d.End().Prev().Ptr()
	require.NoError(t, err)
	*p = 70
	require.Equal(t, []int{3, 40, 5, 6, 70}, d.MakeSliceCopy())

	require.NoError(t, Fill(d.Begin().Add(1), d.End().Sub(1), 0))
	require.Equal(t, []int{3, 0, 0, 0, 70}, d.MakeSliceCopy())

	require.ErrorIs(t, Fill(d.Begin(), d.End().Add(1), 9), ErrIndexOutOfRange)
	require.Equal(t, []int{9, 9, 9, 9, 9}, d.MakeSliceCopy())
}

func TestIterSeqs(t *testing.T) {
	d := wrapped()

	require.Equal(t, []int{3, 4, 5, 6, 7}, slices.Collect(d.Iter()))
	require.Equal(t, []int{7, 6, 5, 4, 3}, slices.Collect(d.RIter()))

	var idx []int
	for i, v := range d.All() {
		require.Equal(t, d.AtUnsafe(i), v)
		idx = append(idx, i)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, idx)

	idx = idx[:0]
	for i := range d.Backward() {
		idx = append(idx, i)
	}
	require.Equal(t, []int{4, 3, 2, 1, 0}, idx)

	// Iteration is restartable and stops early.
	var first []int
	for v := range d.Iter() {
		first = append(first, v)
		if len(first) == 2 {
			break
		}
	}
	require.Equal(t, []int{3, 4}, first)
	require.Equal(t, []int{3, 4, 5, 6, 7}, slices.Collect(d.Iter()))

	var visited []int
	d.ForEach(func(v int) bool {
		visited = append(visited, v)
		return v < 5
	})
	require.Equal(t, []int{3, 4, 5}, visited)

	var nilDeque *Deque[int]
	require.Empty(t, slices.Collect(nilDeque.Iter()))
	require.Empty(t, slices.Collect(nilDeque.RIter()))
}
