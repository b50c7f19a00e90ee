package core

import (
	"github.com/google/uuid"
)

// ID represents a domain identifier.
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered
// generation, falling back to v4 if v7 is unavailable.
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation.
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty.
func (id ID) IsEmpty() bool {
	return id == ""
}

// SnapshotID identifies one pipeline invocation's result set.
type SnapshotID ID

func (id SnapshotID) String() string { return ID(id).String() }

// NewSnapshotID creates an identifier for a fresh snapshot.
func NewSnapshotID() SnapshotID {
	return SnapshotID(NewID())
}
