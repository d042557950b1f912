package orxlist

import (
	"fmt"
	"iter"
	"strings"
	"sync"
)

// SinglyList is the one-way variant: each live node carries only a next
// link. Operations that would need a predecessor lookup without paying for
// one — pop_back, insert_prev_to, move_to_front/back, move_next/prev_to —
// are not offered here; see DESIGN.md for the boundary.
// The zero value is not ready to use; construct with NewSingly or
// NewSinglyFromSlice.
type SinglyList[T any] struct {
	mu         sync.RWMutex
	id         CollectionID
	generation uint64
	arena      *arena[singlySlot[T]]
	front      int
	back       int
	policy     ReclaimPolicy
	cfg        listConfig
}

// NewSingly creates an empty singly linked list.
func NewSingly[T any](opts ...Option[T]) *SinglyList[T] {
	cfg := defaultListConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &SinglyList[T]{
		id:     newCollectionID(),
		arena:  newArena[singlySlot[T]](cfg.fragmentCap, cfg.growthFactor),
		front:  nullPos,
		back:   nullPos,
		policy: cfg.policy,
		cfg:    cfg,
	}
}

// NewSinglyFromSlice builds a singly linked list containing values in
// order, front to back.
func NewSinglyFromSlice[T any](values []T, opts ...Option[T]) *SinglyList[T] {
	l := NewSingly(opts...)
	l.Extend(values...)
	return l
}

func (l *SinglyList[T]) issueIndex(pos int) NodeIndex {
	return NodeIndex{collection: l.id, pos: pos, generation: l.generation}
}

// Len returns the number of live elements.
func (l *SinglyList[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.arena.LiveCount()
}

// IsEmpty reports whether the list has no live elements.
func (l *SinglyList[T]) IsEmpty() bool { return l.Len() == 0 }

// Front returns the value at the front of the list.
func (l *SinglyList[T]) Front() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var zero T
	if l.front == nullPos {
		return zero, false
	}
	return l.arena.At(l.front).value, true
}

// Back returns the value at the back of the list.
func (l *SinglyList[T]) Back() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var zero T
	if l.back == nullPos {
		return zero, false
	}
	return l.arena.At(l.back).value, true
}

// PushFront inserts value at the front of the list and returns its index.
func (l *SinglyList[T]) PushFront(value T) NodeIndex {
	l.mu.Lock()
	defer l.mu.Unlock()
	pos := l.arena.Alloc(singlySlot[T]{value: value, next: l.front})
	if l.front == nullPos {
		l.back = pos
	}
	l.front = pos
	return l.issueIndex(pos)
}

// PushBack inserts value at the back of the list and returns its index.
// The list keeps an explicit back position, so this stays O(1) even
// without a prev link: no predecessor search is needed to reach it.
func (l *SinglyList[T]) PushBack(value T) NodeIndex {
	l.mu.Lock()
	defer l.mu.Unlock()
	pos := l.arena.Alloc(singlySlot[T]{value: value, next: nullPos})
	if l.back != nullPos {
		l.arena.At(l.back).next = pos
	} else {
		l.front = pos
	}
	l.back = pos
	return l.issueIndex(pos)
}

// PopFront removes and returns the front value, or (zero, false) if empty.
func (l *SinglyList[T]) PopFront() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var zero T
	if l.front == nullPos {
		return zero, false
	}
	pos := l.front
	next := l.arena.At(pos).next
	l.front = next
	if next == nullPos {
		l.back = nullPos
	}
	freed, _ := l.arena.Free(pos)
	l.maybeReclaim()
	return freed.value, true
}

// IdxErr resolves idx against the list's current state.
func (l *SinglyList[T]) IdxErr(idx NodeIndex) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return resolveIndex(idx, l.id, l.generation, l.arena)
}

// Get returns the value named by idx, and whether idx is currently valid.
func (l *SinglyList[T]) Get(idx NodeIndex) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var zero T
	if resolveIndex(idx, l.id, l.generation, l.arena) != nil {
		return zero, false
	}
	return l.arena.At(idx.pos).value, true
}

// MustGet is subscript sugar: it panics if idx is not currently valid.
func (l *SinglyList[T]) MustGet(idx NodeIndex) T {
	v, ok := l.Get(idx)
	if !ok {
		panic("orxlist: MustGet called with an invalid NodeIndex")
	}
	return v
}

// Set overwrites the value named by idx, returning false if idx is stale.
func (l *SinglyList[T]) Set(idx NodeIndex, value T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if resolveIndex(idx, l.id, l.generation, l.arena) != nil {
		return false
	}
	l.arena.At(idx.pos).value = value
	return true
}

// Update applies fn to the value named by idx in place, while holding the
// list's write lock. Returns false if idx is stale.
func (l *SinglyList[T]) Update(idx NodeIndex, fn func(*T)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if resolveIndex(idx, l.id, l.generation, l.arena) != nil {
		return false
	}
	fn(&l.arena.At(idx.pos).value)
	return true
}

// InsertNextTo inserts value immediately after idx's element. Unlike
// InsertPrevTo (doubly-only), this needs no predecessor lookup: only
// idx's own next field changes, so it is available on the singly variant.
func (l *SinglyList[T]) InsertNextTo(idx NodeIndex, value T) (NodeIndex, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := resolveIndex(idx, l.id, l.generation, l.arena); err != nil {
		return NodeIndex{}, err
	}
	target := l.arena.At(idx.pos)
	nextPos := target.next
	pos := l.arena.Alloc(singlySlot[T]{value: value, next: nextPos})
	l.arena.At(idx.pos).next = pos
	if nextPos == nullPos {
		l.back = pos
	}
	return l.issueIndex(pos), nil
}

// Remove deletes the element named by idx and returns its value. Because
// the singly variant keeps no back-link, splicing an interior node out
// requires locating its predecessor by walking from the front: O(n), in
// contrast to the doubly variant's O(1) Remove. See DESIGN.md.
func (l *SinglyList[T]) Remove(idx NodeIndex) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var zero T
	if err := resolveIndex(idx, l.id, l.generation, l.arena); err != nil {
		return zero, err
	}
	if idx.pos == l.front {
		next := l.arena.At(idx.pos).next
		l.front = next
		if next == nullPos {
			l.back = nullPos
		}
	} else {
		prevPos := l.front
		for prevPos != nullPos && l.arena.At(prevPos).next != idx.pos {
			prevPos = l.arena.At(prevPos).next
		}
		next := l.arena.At(idx.pos).next
		l.arena.At(prevPos).next = next
		if next == nullPos {
			l.back = prevPos
		}
	}
	freed, _ := l.arena.Free(idx.pos)
	l.maybeReclaim()
	return freed.value, nil
}

// AppendFront moves other's elements in front of this list's elements.
// other is left empty and must not be used afterwards.
func (l *SinglyList[T]) AppendFront(other *SinglyList[T]) error {
	return l.splice(other, true)
}

// AppendBack moves other's elements to the back of this list's elements.
// other is left empty and must not be used afterwards.
func (l *SinglyList[T]) AppendBack(other *SinglyList[T]) error {
	return l.splice(other, false)
}

func (l *SinglyList[T]) splice(other *SinglyList[T], front bool) error {
	if other == l {
		return errIncompatibleSplice
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	other.mu.Lock()
	defer other.mu.Unlock()

	if other.cfg.fragmentCap != l.cfg.fragmentCap || other.cfg.growthFactor != l.cfg.growthFactor ||
		other.policy != l.policy {
		return errIncompatibleSplice
	}
	if other.front == nullPos {
		return nil
	}

	offset := l.arena.Len()
	l.arena.fragments = append(l.arena.fragments, other.arena.fragments...)
	for _, base := range other.arena.bases {
		l.arena.bases = append(l.arena.bases, base+offset)
	}
	l.arena.total += other.arena.total
	l.arena.liveCount += other.arena.liveCount
	l.arena.holeCount += other.arena.holeCount
	for _, frag := range other.arena.fragments {
		for i := range frag {
			if frag[i].state == slotLive {
				if frag[i].value.next != nullPos {
					frag[i].value.next += offset
				}
			} else if frag[i].holeNext != nullPos {
				frag[i].holeNext += offset
			}
		}
	}
	otherFront, otherBack := other.front+offset, other.back+offset
	if other.arena.holeHead != nullPos {
		newHoleHead := other.arena.holeHead + offset
		tail := newHoleHead
		for {
			c := l.arena.cellAt(tail)
			if c.holeNext == nullPos {
				break
			}
			tail = c.holeNext
		}
		l.arena.cellAt(tail).holeNext = l.arena.holeHead
		l.arena.holeHead = newHoleHead
	}

	if front {
		if l.front == nullPos {
			l.back = otherBack
		}
		l.arena.At(otherBack).next = l.front
		l.front = otherFront
	} else {
		if l.back != nullPos {
			l.arena.At(l.back).next = otherFront
		} else {
			l.front = otherFront
		}
		l.back = otherBack
	}

	other.id = newCollectionID()
	other.generation = 0
	other.arena = newArena[singlySlot[T]](other.cfg.fragmentCap, other.cfg.growthFactor)
	other.front = nullPos
	other.back = nullPos
	return nil
}

// IndexOf linearly scans front to back for the first element matching
// pred.
func (l *SinglyList[T]) IndexOf(pred func(T) bool) (NodeIndex, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for pos := l.front; pos != nullPos; {
		s := l.arena.At(pos)
		if pred(s.value) {
			return l.issueIndex(pos), true
		}
		pos = s.next
	}
	return NodeIndex{}, false
}

// NodeUtilization reports the arena's current live/closed slot counts.
func (l *SinglyList[T]) NodeUtilization() NodeUtilization {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return NodeUtilization{NumActive: l.arena.LiveCount(), NumClosed: l.arena.HoleCount()}
}

// FragmentCount reports how many independently allocated storage fragments
// back the list.
func (l *SinglyList[T]) FragmentCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.arena.FragmentCount()
}

// ReclaimClosedNodes compacts the arena unconditionally, legal in any
// reclaim mode.
func (l *SinglyList[T]) ReclaimClosedNodes() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.compact()
}

func (l *SinglyList[T]) maybeReclaim() {
	if l.policy.shouldReclaim(l.arena.LiveCount(), l.arena.HoleCount()) {
		l.compact()
	}
}

// compact rebuilds the arena from scratch, packing live elements into
// storage positions 0..liveCount-1 in list order, and bumps the
// generation. Walking strictly in list order (front to back, following
// next) is what makes this possible at all without a prev link: the
// predecessor of each slot being placed is always the slot placed just
// before it.
func (l *SinglyList[T]) compact() {
	fresh := newArena[singlySlot[T]](l.cfg.fragmentCap, l.cfg.growthFactor)
	prevPos := nullPos
	pos := l.front
	newFront, newBack := nullPos, nullPos
	for pos != nullPos {
		old := l.arena.At(pos)
		newPos := fresh.Alloc(singlySlot[T]{value: old.value, next: nullPos})
		if prevPos != nullPos {
			fresh.At(prevPos).next = newPos
		} else {
			newFront = newPos
		}
		newBack = newPos
		prevPos = newPos
		pos = old.next
	}
	l.arena = fresh
	l.front, l.back = newFront, newBack
	l.generation++
}

// IntoLazyReclaim switches the list into Never (manual-only) reclaim mode.
func (l *SinglyList[T]) IntoLazyReclaim() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.policy = ReclaimNever{}
}

// IntoAutoReclaim switches the list into ReclaimThreshold{D}.
func (l *SinglyList[T]) IntoAutoReclaim(d uint) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.policy = ReclaimThreshold{D: d}
}

// Extend appends values to the back of the list, in order.
func (l *SinglyList[T]) Extend(values ...T) {
	for _, v := range values {
		l.PushBack(v)
	}
}

// Clone deep-copies the list into a fresh arena with a new CollectionID
// and generation 0.
func (l *SinglyList[T]) Clone() *SinglyList[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := NewSingly[T](
		WithReclaimPolicy[T](l.policy),
		WithFragmentCapacity[T](l.cfg.fragmentCap),
		WithFragmentGrowthFactor[T](l.cfg.growthFactor),
	)
	for pos := l.front; pos != nullPos; {
		s := l.arena.At(pos)
		out.PushBack(s.value)
		pos = s.next
	}
	return out
}

// EqualSingly reports whether a and b contain the same values in the same
// order.
func EqualSingly[T comparable](a, b *SinglyList[T]) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a != b {
		b.mu.RLock()
		defer b.mu.RUnlock()
	}
	if a.arena.LiveCount() != b.arena.LiveCount() {
		return false
	}
	pa, pb := a.front, b.front
	for pa != nullPos {
		sa, sb := a.arena.At(pa), b.arena.At(pb)
		if sa.value != sb.value {
			return false
		}
		pa, pb = sa.next, sb.next
	}
	return true
}

// String renders the list's values in list order, front to back.
func (l *SinglyList[T]) String() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var b strings.Builder
	b.WriteByte('[')
	for pos := l.front; pos != nullPos; {
		s := l.arena.At(pos)
		fmt.Fprintf(&b, "%v", s.value)
		pos = s.next
		if pos != nullPos {
			b.WriteString(", ")
		}
	}
	b.WriteByte(']')
	return b.String()
}

// Iter returns a lazy, single-pass, front-to-back sequence of values.
func (l *SinglyList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.mu.RLock()
		defer l.mu.RUnlock()
		for pos := l.front; pos != nullPos; {
			s := l.arena.At(pos)
			if !yield(s.value) {
				return
			}
			pos = s.next
		}
	}
}

// IterFrom returns a lazy sequence starting at idx's element and
// continuing to the back.
func (l *SinglyList[T]) IterFrom(idx NodeIndex) iter.Seq[T] {
	return func(yield func(T) bool) {
		l.mu.RLock()
		defer l.mu.RUnlock()
		if resolveIndex(idx, l.id, l.generation, l.arena) != nil {
			return
		}
		for pos := idx.pos; pos != nullPos; {
			s := l.arena.At(pos)
			if !yield(s.value) {
				return
			}
			pos = s.next
		}
	}
}

// RingIter returns a lazy sequence that starts at pivot and wraps around
// the list exactly once. It needs no back-link: wrapping is just "if next
// ran off the back, continue from front", which next-only links support.
func (l *SinglyList[T]) RingIter(pivot NodeIndex) iter.Seq[T] {
	return func(yield func(T) bool) {
		l.mu.RLock()
		defer l.mu.RUnlock()
		if resolveIndex(pivot, l.id, l.generation, l.arena) != nil {
			return
		}
		count := l.arena.LiveCount()
		pos := pivot.pos
		for i := 0; i < count; i++ {
			s := l.arena.At(pos)
			if !yield(s.value) {
				return
			}
			pos = s.next
			if pos == nullPos {
				pos = l.front
			}
		}
	}
}

// Indices returns a lazy, single-pass sequence of every live NodeIndex, in
// list order front to back.
func (l *SinglyList[T]) Indices() iter.Seq[NodeIndex] {
	return func(yield func(NodeIndex) bool) {
		l.mu.RLock()
		defer l.mu.RUnlock()
		for pos := l.front; pos != nullPos; {
			if !yield(l.issueIndex(pos)) {
				return
			}
			pos = l.arena.At(pos).next
		}
	}
}
