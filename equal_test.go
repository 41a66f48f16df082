package ringdeque

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	small := Of(5, 1, 2, 3)
	large := Of(10, 1, 2, 3)

	require.True(t, Equal(small, small))
	require.True(t, Equal(small, large))
	require.True(t, Equal(large, small))

	// Same values at different physical offsets.
	shifted := MustMakeDeque[int](3)
	shifted.PushBack(0, 0, 1, 2, 3)
	require.True(t, Equal(small, shifted))

	require.False(t, Equal(small, Of(5, 1, 2)))
	require.False(t, Equal(small, Of(5, 1, 2, 4)))
	require.False(t, Equal(small, Of(5, 3, 2, 1)))

	var n1, n2 *Deque[int]
	require.True(t, Equal(n1, n2))
	require.False(t, Equal(n1, MustMakeDeque[int](1)))
	require.True(t, Equal(MustMakeDeque[int](1), MustMakeDeque[int](7)))
}

func TestEqualFunc(t *testing.T) {
	a := Of(3, "A", "b")
	b := Of(4, "a", "B")
	require.True(t, a.EqualFunc(b, strings.EqualFold))
	require.False(t, Equal(a, b))
}

func TestSearch(t *testing.T) {
	d := MustMakeDeque[int](4)
	d.PushBack(9, 4, 8, 1, 7, 2)
	// [8 1 7 2], wrapped around the storage.

	require.True(t, Contains(d, 7))
	require.False(t, Contains(d, 9))
	require.Equal(t, 3, Index(d, 2))
	require.Equal(t, -1, Index(d, 4))
	require.Equal(t, 2, d.IndexFunc(func(v int) bool { return v%7 == 0 }))
	require.True(t, d.ContainsFunc(func(v int) bool { return v > 7 }))
	require.Equal(t, 8, Max(d))
	require.Equal(t, 1, Min(d))

	require.Panics(t, func() { Max(MustMakeDeque[int](1)) })
}
