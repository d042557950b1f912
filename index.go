package orxlist

// resolveIndex implements the idx_err resolution order:
//  1. collection mismatch -> ErrOutOfBounds ("not this list")
//  2. generation mismatch -> ErrReorganizedCollection
//  3. position outside the current arena range -> ErrOutOfBounds
//  4. slot is a hole -> ErrRemovedNode
//  5. otherwise -> nil (the index is live)
//
// The order matters: after a compaction, a removed-then-recycled slot must
// never masquerade as the index's original element, which is why the
// generation check happens before the bounds/hole checks.
func resolveIndex[S any](idx NodeIndex, id CollectionID, generation uint64, a *arena[S]) error {
	if idx.collection != id {
		return ErrOutOfBounds
	}
	if idx.generation != generation {
		return ErrReorganizedCollection
	}
	if !a.InBounds(idx.pos) {
		return ErrOutOfBounds
	}
	if !a.IsLive(idx.pos) {
		return ErrRemovedNode
	}
	return nil
}
