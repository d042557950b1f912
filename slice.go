package orxlist

// DoublySlice presents a bounded view onto a contiguous run of a
// DoublyList: the half-open range starting at from and running up to but
// not including to. Its operations are restricted to those meaningful
// over a sub-range: no push that would extend past the slice's own
// boundary, but moves and mutation of elements already inside the view
// are allowed and are immediately visible in the underlying list, since
// the slice holds no copy of anything — only the boundary indices. to
// itself is never a member of the slice; it only marks where the view
// ends.
type DoublySlice[T any] struct {
	l        *DoublyList[T]
	from, to NodeIndex
}

// Slice returns a view over the half-open range [from, to) in list
// order: from is the first element of the view, to is the first element
// after it. Panics if from or to is not currently valid, or if to does
// not appear at or after from when walking forward from from.
func (l *DoublyList[T]) Slice(from, to NodeIndex) *DoublySlice[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if err := resolveIndex(from, l.id, l.generation, l.arena); err != nil {
		panic("orxlist: Slice called with an invalid from index: " + err.Error())
	}
	if err := resolveIndex(to, l.id, l.generation, l.arena); err != nil {
		panic("orxlist: Slice called with an invalid to index: " + err.Error())
	}
	for pos := from.pos; ; {
		if pos == to.pos {
			return &DoublySlice[T]{l: l, from: from, to: to}
		}
		pos = l.arena.At(pos).next
		if pos == nullPos {
			panic("orxlist: Slice called with to before from")
		}
	}
}

// checkBounds re-validates both boundary indices against the underlying
// list's current memory-state, returning the error idx_err would give for
// whichever side is stale.
func (s *DoublySlice[T]) checkBounds() error {
	if err := resolveIndex(s.from, s.l.id, s.l.generation, s.l.arena); err != nil {
		return err
	}
	return resolveIndex(s.to, s.l.id, s.l.generation, s.l.arena)
}

// Len returns the number of elements currently in the slice's range.
func (s *DoublySlice[T]) Len() int {
	s.l.mu.RLock()
	defer s.l.mu.RUnlock()
	if s.checkBounds() != nil {
		return 0
	}
	n := 0
	for pos := s.from.pos; pos != s.to.pos; pos = s.l.arena.At(pos).next {
		n++
	}
	return n
}

// Get returns the value at idx if idx lies within the slice's bounds.
func (s *DoublySlice[T]) Get(idx NodeIndex) (T, bool) {
	s.l.mu.RLock()
	defer s.l.mu.RUnlock()
	var zero T
	if s.checkBounds() != nil {
		return zero, false
	}
	if resolveIndex(idx, s.l.id, s.l.generation, s.l.arena) != nil {
		return zero, false
	}
	for pos := s.from.pos; pos != s.to.pos; pos = s.l.arena.At(pos).next {
		if pos == idx.pos {
			return s.l.arena.At(pos).value, true
		}
	}
	return zero, false
}

// Values collects the slice's current elements, front to back, into a
// fresh slice.
func (s *DoublySlice[T]) Values() []T {
	s.l.mu.RLock()
	defer s.l.mu.RUnlock()
	if s.checkBounds() != nil {
		return nil
	}
	var out []T
	for pos := s.from.pos; pos != s.to.pos; pos = s.l.arena.At(pos).next {
		out = append(out, s.l.arena.At(pos).value)
	}
	return out
}

// ForEachMut visits every element currently in the slice's range, front to
// back, giving fn a pointer to mutate each value in place under a single
// held write lock. This is the slice's mutating iterator: changes are
// written straight into the underlying list's arena.
func (s *DoublySlice[T]) ForEachMut(fn func(*T)) error {
	s.l.mu.Lock()
	defer s.l.mu.Unlock()
	if err := s.checkBounds(); err != nil {
		return err
	}
	for pos := s.from.pos; pos != s.to.pos; pos = s.l.arena.At(pos).next {
		fn(&s.l.arena.At(pos).value)
	}
	return nil
}

// MoveToFront moves idx to the front of the slice's own range, not the
// underlying list's front. idx must currently lie within the slice, i.e.
// strictly before to (to itself is the view's exclusive end and is never
// a candidate to move). Elements outside the slice are untouched; only the
// links among elements inside [from, to) and the slice's own from
// bookkeeping change — to names a fixed position and never needs updating.
func (s *DoublySlice[T]) MoveToFront(idx NodeIndex) error {
	s.l.mu.Lock()
	defer s.l.mu.Unlock()
	if err := s.checkBounds(); err != nil {
		return err
	}
	if err := resolveIndex(idx, s.l.id, s.l.generation, s.l.arena); err != nil {
		return err
	}
	if idx.pos == s.from.pos {
		return nil
	}
	inRange := false
	for pos := s.from.pos; pos != s.to.pos; pos = s.l.arena.At(pos).next {
		if pos == idx.pos {
			inRange = true
			break
		}
	}
	if !inRange {
		return ErrOutOfBounds
	}

	l := s.l
	n := l.arena.At(idx.pos)
	p, q := n.prev, n.next
	if p != nullPos {
		l.arena.At(p).next = q
	}
	if q != nullPos {
		l.arena.At(q).prev = p
	}
	if idx.pos == l.back {
		l.back = p
	}

	oldFront := s.from.pos
	n.next = oldFront
	n.prev = l.arena.At(oldFront).prev
	if n.prev != nullPos {
		l.arena.At(n.prev).next = idx.pos
	}
	l.arena.At(oldFront).prev = idx.pos
	if oldFront == l.front {
		l.front = idx.pos
	}
	s.from = l.issueIndex(idx.pos)
	return nil
}

// Iter returns the slice's elements as a fresh slice, an alias for
// Values kept for symmetry with the list's lazy iterators; slice views
// are short-lived and small enough that a materialized copy is the
// simpler contract.
func (s *DoublySlice[T]) Iter() []T {
	return s.Values()
}
