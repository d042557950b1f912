package orxlist

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkDoublyInvariants walks l and asserts the cross-cutting invariants
// that must hold after every operation: forward traversal visits exactly
// live-count distinct slots and ends at back, every next/prev pair agrees
// in both directions, and the free list is exactly as long as hole-count.
func checkDoublyInvariants[T any](t *testing.T, l *DoublyList[T]) {
	t.Helper()
	l.mu.RLock()
	defer l.mu.RUnlock()

	seen := map[int]bool{}
	pos := l.front
	count := 0
	for pos != nullPos {
		require.False(t, seen[pos], "slot %d visited twice while walking forward", pos)
		seen[pos] = true
		count++
		s := l.arena.At(pos)
		if s.next != nullPos {
			next := l.arena.At(s.next)
			require.Equal(t, pos, next.prev, "next(A)=B must imply prev(B)=A")
		} else {
			require.Equal(t, pos, l.back, "walking off the end must land on back")
		}
		pos = s.next
	}
	require.Equal(t, l.arena.LiveCount(), count)
	require.Equal(t, l.arena.LiveCount()+l.arena.HoleCount(), l.arena.Len())
	require.Equal(t, l.arena.HoleCount(), l.arena.HoleFreeListLen())
	require.Equal(t, l.arena.LiveCount(), l.arena.LiveCountByScan(),
		"bookkeeping live count must agree with a direct storage-order scan")
}

func TestDoublyInvariantsHoldUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	l := NewDoubly[int](WithReclaimPolicy[int](ReclaimThreshold{D: 2}))
	var live []NodeIndex

	for i := 0; i < 500; i++ {
		switch {
		case len(live) == 0 || rng.IntN(3) == 0:
			var idx NodeIndex
			if rng.IntN(2) == 0 {
				idx = l.PushFront(i)
			} else {
				idx = l.PushBack(i)
			}
			live = append(live, idx)
		case rng.IntN(4) == 0:
			which := rng.IntN(len(live))
			idx := live[which]
			if l.IdxErr(idx) == nil {
				l.Remove(idx)
			}
			live = append(live[:which], live[which+1:]...)
		default:
			which := rng.IntN(len(live))
			idx := live[which]
			if l.IdxErr(idx) == nil {
				l.InsertNextTo(idx, i)
			}
		}
		checkDoublyInvariants(t, l)
	}
}

func TestDoublyIndexStableAcrossNonCompactingOps(t *testing.T) {
	l := NewDoubly[string](WithReclaimPolicy[string](ReclaimNever{}))
	idx := l.PushBack("anchor")
	l.PushBack("b")
	l.PushFront("c")
	l.InsertNextTo(idx, "d")

	v, ok := l.Get(idx)
	require.True(t, ok)
	assert.Equal(t, "anchor", v)
}

func TestReclaimClosedNodesAlwaysClearsHolesAndInvalidatesPriorIndices(t *testing.T) {
	l := NewDoublyFromSlice([]int{1, 2, 3})
	idx, _ := l.IndexOf(func(v int) bool { return v == 2 })

	l.ReclaimClosedNodes()
	assert.Equal(t, 0, l.NodeUtilization().NumClosed)
	assert.Equal(t, ErrReorganizedCollection, l.IdxErr(idx))
}

func TestPushBackPopBackRoundTrip(t *testing.T) {
	// Leave one residual hole first: the push below reuses it and the pop
	// frees it again, so the hole count ends where it started.
	l := NewDoublyFromSlice([]int{1, 2, 3, 4})
	l.PopBack()
	before := l.NodeUtilization()

	l.PushBack(99)
	v, ok := l.PopBack()
	require.True(t, ok)
	assert.Equal(t, 99, v)
	assert.Equal(t, "[1, 2, 3]", l.String())
	assert.Equal(t, before.NumClosed, l.NodeUtilization().NumClosed)
}

func TestInsertNextToRemoveRoundTrip(t *testing.T) {
	l := NewDoublyFromSlice([]int{1, 2, 3})
	before := l.String()

	idx, _ := l.IndexOf(func(v int) bool { return v == 2 })
	newIdx, err := l.InsertNextTo(idx, 42)
	require.NoError(t, err)
	_, err = l.Remove(newIdx)
	require.NoError(t, err)
	assert.Equal(t, before, l.String())
}

func TestMoveNextToItsOwnPredecessorIsNoOp(t *testing.T) {
	l := NewDoublyFromSlice([]int{1, 2, 3, 4})
	before := l.String()

	a, _ := l.IndexOf(func(v int) bool { return v == 2 })
	prevOfA, _ := l.IndexOf(func(v int) bool { return v == 1 })
	require.NoError(t, l.MoveNextTo(a, prevOfA))
	assert.Equal(t, before, l.String())
}

func TestInsertAdjacentToRemovedIndexFails(t *testing.T) {
	l := NewDoublyFromSlice([]int{1, 2, 3})
	idx, _ := l.IndexOf(func(v int) bool { return v == 2 })
	l.IntoLazyReclaim()
	l.Remove(idx)

	_, err := l.InsertNextTo(idx, 99)
	assert.Equal(t, ErrRemovedNode, err)
}
