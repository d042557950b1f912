package orxlist

import "iter"

// Iterator is a stateful, single-pass cursor over a DoublyList. Once
// exhausted it reaches no further elements until Reset moves it back to
// before the front element.
type Iterator[T any] struct {
	l       *DoublyList[T]
	pos     int // current position, or nullPos before the first Next/after exhaustion
	started bool
	unsafe  bool
}

// NewIterator returns an iterator positioned before the front element. A
// call to Next is required to reach the first element.
func (l *DoublyList[T]) NewIterator() *Iterator[T] {
	return &Iterator[T]{l: l, pos: nullPos}
}

func withUnsafeIterator[T any](l *DoublyList[T]) *Iterator[T] {
	return &Iterator[T]{l: l, pos: nullPos, unsafe: true}
}

// Next advances the iterator and reports whether an element was reached.
func (it *Iterator[T]) Next() bool {
	if !it.unsafe {
		it.l.mu.RLock()
		defer it.l.mu.RUnlock()
	}
	if !it.started {
		it.started = true
		it.pos = it.l.front
	} else if it.pos != nullPos {
		it.pos = it.l.arena.At(it.pos).next
	}
	return it.pos != nullPos
}

// Value returns the value at the iterator's current position. Only valid
// after Next has returned true.
func (it *Iterator[T]) Value() T {
	if !it.unsafe {
		it.l.mu.RLock()
		defer it.l.mu.RUnlock()
	}
	return it.l.arena.At(it.pos).value
}

// Index returns the NodeIndex of the iterator's current position.
func (it *Iterator[T]) Index() NodeIndex {
	return it.l.issueIndex(it.pos)
}

// Reset moves the iterator back to before the front element.
func (it *Iterator[T]) Reset() {
	it.started = false
	it.pos = nullPos
}

// WithIterator hands an unlocked-style iterator to f while holding a
// single read lock for its whole duration — cheaper than constructing an
// iterator that locks/unlocks on every Next/Value call.
func (l *DoublyList[T]) WithIterator(f func(it *Iterator[T])) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	f(withUnsafeIterator(l))
}

// Iter returns a lazy, single-pass, front-to-back sequence of values. It
// is O(1) to construct and O(n) to exhaust, and is not restartable (ranging
// over it twice walks the list twice, each a fresh O(n) pass of whatever
// is live at that time — it does not "rewind" a shared cursor).
func (l *DoublyList[T]) Iter() iter.Seq[T] {
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
// continuing to the back. An invalid idx yields nothing.
func (l *DoublyList[T]) IterFrom(idx NodeIndex) iter.Seq[T] {
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

// IterBackwardFrom returns a lazy sequence starting at idx's element and
// continuing to the front. Doubly-only: it walks prev links.
func (l *DoublyList[T]) IterBackwardFrom(idx NodeIndex) iter.Seq[T] {
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
			pos = s.prev
		}
	}
}

// RingIter returns a lazy sequence that starts at pivot and wraps around
// the list exactly once, visiting every live element exactly once: pivot,
// pivot's successors to the back, then front up to (but not including)
// pivot again. An invalid pivot yields nothing.
func (l *DoublyList[T]) RingIter(pivot NodeIndex) iter.Seq[T] {
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
func (l *DoublyList[T]) Indices() iter.Seq[NodeIndex] {
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
