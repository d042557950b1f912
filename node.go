package orxlist

import "fmt"

// doublySlot is the payload stored in a doubly linked list's arena: one
// value plus both link fields. nullPos marks an absent neighbour.
type doublySlot[T any] struct {
	value T
	prev  int
	next  int
}

// singlySlot is the payload stored in a singly linked list's arena: one
// value plus the single forward link. There is deliberately no prev field
// — the singly variant carries no back-link invariant.
type singlySlot[T any] struct {
	value T
	next  int
}

// NodeIndex is an opaque capability token identifying one live slot within
// one list at one memory-state generation. It is returned by mutating
// operations and consumed by the O(1) lookups; it is never constructible
// by calling code, only by the list that issued it.
type NodeIndex struct {
	collection CollectionID
	pos        int
	generation uint64
}

// IsNil reports whether idx is the zero NodeIndex, i.e. was never issued by
// any list. It is distinct from being merely invalid for a particular list.
func (idx NodeIndex) IsNil() bool {
	return idx == NodeIndex{}
}

// String renders idx for logging and debugging.
func (idx NodeIndex) String() string {
	return fmt.Sprintf("NodeIndex{collection: %s, pos: %d, generation: %d}", idx.collection, idx.pos, idx.generation)
}
