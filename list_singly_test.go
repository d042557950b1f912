package orxlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinglyPushPopFrontBack(t *testing.T) {
	l := NewSingly[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)

	v, ok := l.PopFront()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = l.PopFront()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, "[3]", l.String())

	front, _ := l.Front()
	back, _ := l.Back()
	assert.Equal(t, front, back)
	assert.Equal(t, 3, front)

	l.PushBack(4)
	assert.Equal(t, "[3, 4]", l.String())

	var got []int
	for v := range l.Iter() {
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 4}, got)
}

func TestSinglyInsertNextToAndRemove(t *testing.T) {
	l := NewSinglyFromSlice([]string{"a", "b", "c"})
	b, ok := l.IndexOf(func(v string) bool { return v == "b" })
	require.True(t, ok)

	newIdx, err := l.InsertNextTo(b, "X")
	require.NoError(t, err)
	assert.Equal(t, "[a, b, X, c]", l.String())

	_, err = l.Remove(newIdx)
	require.NoError(t, err)
	assert.Equal(t, "[a, b, c]", l.String())
}

func TestSinglyRemoveFrontAndInterior(t *testing.T) {
	l := NewSinglyFromSlice([]int{1, 2, 3, 4})
	first, _ := l.IndexOf(func(v int) bool { return v == 1 })
	_, err := l.Remove(first)
	require.NoError(t, err)
	assert.Equal(t, "[2, 3, 4]", l.String())

	third, _ := l.IndexOf(func(v int) bool { return v == 3 })
	_, err = l.Remove(third)
	require.NoError(t, err)
	assert.Equal(t, "[2, 4]", l.String())

	back, _ := l.Back()
	assert.Equal(t, 4, back)
}

func TestSinglyAppendBack(t *testing.T) {
	a := NewSinglyFromSlice([]int{1, 2, 3})
	b := NewSinglyFromSlice([]int{4, 5})
	require.NoError(t, a.AppendBack(b))
	assert.Equal(t, "[1, 2, 3, 4, 5]", a.String())
	assert.True(t, b.IsEmpty())
}

func TestSinglyRingIter(t *testing.T) {
	l := NewSinglyFromSlice([]int{1, 2, 3, 4})
	pivot, _ := l.IndexOf(func(v int) bool { return v == 3 })

	var got []int
	for v := range l.RingIter(pivot) {
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 4, 1, 2}, got)
}

func TestSinglyReclaimThreshold(t *testing.T) {
	l := NewSingly[string](WithReclaimPolicy[string](ReclaimThreshold{D: 2}))
	idxs := make([]NodeIndex, 0, 5)
	for _, v := range []string{"a", "b", "c", "d", "e"} {
		idxs = append(idxs, l.PushBack(v))
	}
	front, _ := l.IndexOf(func(v string) bool { return v == "a" })
	l.Remove(front)
	second, _ := l.IndexOf(func(v string) bool { return v == "b" })
	l.Remove(second)

	assert.Equal(t, ErrReorganizedCollection, l.IdxErr(idxs[0]))
}
