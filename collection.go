package orxlist

import "github.com/google/uuid"

// CollectionID is a process-unique identity minted once per list at
// construction time. It is copied into every NodeIndex the list issues and
// checked on every O(1) lookup: an index from a different list can never
// coincidentally resolve to a live slot of this one.
type CollectionID uuid.UUID

func newCollectionID() CollectionID {
	return CollectionID(uuid.New())
}

func (c CollectionID) String() string {
	return uuid.UUID(c).String()
}
