package orxlist

// slotState marks a cell of the arena as holding a live payload or sitting
// on the free list awaiting reuse.
type slotState uint8

const (
	slotHole slotState = iota
	slotLive
)

const nullPos = -1

// cell is one slot of the arena. When state is slotLive, value holds the
// node's payload plus its link field(s) (see doublySlot/singlySlot).
// When state is slotHole, holeNext threads the free list and value holds
// the zero value (Free clears the payload); it is not read.
type cell[S any] struct {
	state    slotState
	holeNext int
	value    S
}

// arena is a growable, address-stable sequence of node slots. It knows
// nothing about link semantics (that is the job of doublySlot/singlySlot
// and the list types built on top); it only allocates, frees, and
// iterates cells.
//
// Growth appends a new, independently allocated fragment to fragments;
// existing fragments are never reallocated or moved, so a position handed
// out by Alloc stays addressable via At for the arena's entire lifetime.
// This is the arena's pinned-address guarantee.
type arena[S any] struct {
	fragments    [][]cell[S]
	bases        []int // bases[i] is the flat position of fragments[i][0]
	total        int   // allocated slot count: live + hole
	liveCount    int
	holeCount    int
	holeHead     int // nullPos if the free list is empty
	fragmentCap  int
	growthFactor float64
}

func newArena[S any](fragmentCap int, growthFactor float64) *arena[S] {
	if fragmentCap < 1 {
		fragmentCap = 8
	}
	if growthFactor <= 1.0 {
		growthFactor = 2.0
	}
	return &arena[S]{
		holeHead:     nullPos,
		fragmentCap:  fragmentCap,
		growthFactor: growthFactor,
	}
}

func (a *arena[S]) Len() int       { return a.total }
func (a *arena[S]) LiveCount() int { return a.liveCount }
func (a *arena[S]) HoleCount() int { return a.holeCount }

// locate resolves a flat position to the fragment index and offset holding
// it, or ok=false if pos falls outside the arena entirely.
func (a *arena[S]) locate(pos int) (fragIdx, offset int, ok bool) {
	if pos < 0 || pos >= a.total {
		return 0, 0, false
	}
	// There are never more than a few dozen fragments in practice, so
	// scanning from the end (most lookups land in a recently grown
	// fragment) is simple and fast.
	for i := len(a.bases) - 1; i >= 0; i-- {
		if pos >= a.bases[i] {
			return i, pos - a.bases[i], true
		}
	}
	return 0, 0, false
}

func (a *arena[S]) cellAt(pos int) *cell[S] {
	fragIdx, offset, ok := a.locate(pos)
	if !ok {
		return nil
	}
	return &a.fragments[fragIdx][offset]
}

// IsLive reports whether pos names a slot currently holding a payload.
func (a *arena[S]) IsLive(pos int) bool {
	c := a.cellAt(pos)
	return c != nil && c.state == slotLive
}

// InBounds reports whether pos is a position within the arena's current
// allocated range (live or hole), as opposed to being outside it entirely.
func (a *arena[S]) InBounds(pos int) bool {
	return pos >= 0 && pos < a.total
}

// At returns a pointer to the live payload at pos, or nil if pos does not
// name a live slot. The pointer remains valid until the next Free touching
// that position; callers must not retain it across such an operation.
func (a *arena[S]) At(pos int) *S {
	c := a.cellAt(pos)
	if c == nil || c.state != slotLive {
		return nil
	}
	return &c.value
}

// growFragment appends one new, unused fragment whose first cell is flat
// position total. Its cells count as neither live nor holes: Alloc hands
// them out one at a time, in order, and only then do they count toward
// total.
func (a *arena[S]) growFragment() {
	size := a.fragmentCap
	if n := len(a.fragments); n > 0 {
		size = int(float64(len(a.fragments[n-1])) * a.growthFactor)
		if size < a.fragmentCap {
			size = a.fragmentCap
		}
	}
	a.fragments = append(a.fragments, make([]cell[S], size))
	a.bases = append(a.bases, a.total)
}

// Alloc places v into a slot and returns its position: the hole free-list
// head if there is one, otherwise the next unused cell of the last
// fragment, growing the arena with a new fragment when that one is full.
// Already-issued positions are never invalidated by growth.
func (a *arena[S]) Alloc(v S) int {
	pos := a.holeHead
	if pos == nullPos {
		if n := len(a.fragments); n == 0 || a.total == a.bases[n-1]+len(a.fragments[n-1]) {
			a.growFragment()
		}
		pos = a.total
		a.total++
	} else {
		a.holeHead = a.cellAt(pos).holeNext
		a.holeCount--
	}
	c := a.cellAt(pos)
	c.state = slotLive
	c.value = v
	a.liveCount++
	return pos
}

// Free destructs the payload at pos and turns the slot into a hole at the
// head of the free list. It fails (returns ok=false) if pos does not name
// a live slot.
func (a *arena[S]) Free(pos int) (freed S, ok bool) {
	c := a.cellAt(pos)
	if c == nil || c.state != slotLive {
		return freed, false
	}
	freed = c.value
	var zero S
	c.value = zero
	c.state = slotHole
	c.holeNext = a.holeHead
	a.holeHead = pos
	a.liveCount--
	a.holeCount++
	return freed, true
}

// IterLive calls f for every live position in arena storage order (not
// list order). Iteration stops early if f returns false.
func (a *arena[S]) IterLive(f func(pos int) bool) {
	for fi, frag := range a.fragments {
		base := a.bases[fi]
		for off := range frag {
			if frag[off].state == slotLive {
				if !f(base + off) {
					return
				}
			}
		}
	}
}

// LiveCountByScan recomputes the live count by walking storage directly via
// IterLive, independent of the liveCount bookkeeping field. Invariant
// checkers use it to cross-validate that bookkeeping against ground truth.
func (a *arena[S]) LiveCountByScan() int {
	n := 0
	a.IterLive(func(int) bool {
		n++
		return true
	})
	return n
}

// HoleFreeListLen walks the free list and counts it; used by invariant
// checks to confirm it matches HoleCount exactly.
func (a *arena[S]) HoleFreeListLen() int {
	n := 0
	for pos := a.holeHead; pos != nullPos; {
		c := a.cellAt(pos)
		if c == nil || c.state != slotHole {
			break
		}
		n++
		pos = c.holeNext
	}
	return n
}

// FragmentCount reports how many independently allocated fragments make up
// the arena. AppendFront/AppendBack reparent fragments rather than copying
// payloads, so a splice adds the other arena's fragments to this count.
func (a *arena[S]) FragmentCount() int { return len(a.fragments) }
