package orxlist

import "errors"

// NodeIdxError is the error family returned when a NodeIndex can no longer
// be resolved to a live slot. The three variants are distinguished so that
// callers can decide whether it is worth re-deriving the index (via
// IndexOf) or whether the element is simply gone.
var (
	// ErrOutOfBounds is returned when an index belongs to a different
	// collection, or its slot position no longer exists in the arena.
	ErrOutOfBounds = errors.New("orxlist: index out of bounds")

	// ErrRemovedNode is returned when an index's collection and generation
	// match, but the slot it names has been freed and not yet recycled by
	// a compaction.
	ErrRemovedNode = errors.New("orxlist: node already removed")

	// ErrReorganizedCollection is returned when an index's generation is
	// stale: the arena has been compacted since the index was issued, so
	// the slot position may now hold an unrelated element.
	ErrReorganizedCollection = errors.New("orxlist: collection reorganized since index was issued")
)

// errIncompatibleSplice signals that append_* was asked to splice two
// lists with incompatible fragment layouts or reclaim policies. This is
// deliberately forbidden rather than silently coerced.
var errIncompatibleSplice = errors.New("orxlist: cannot splice lists with incompatible fragment layout or reclaim policy")
