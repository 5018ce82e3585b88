package valueobjects

import (
	"github.com/google/uuid"

	pkgerrors "sceneit/pkg/errors"
)

// Marker types binding an ID to the kind of entity it names. They carry no
// data; their only purpose is to make IDs of different kinds distinct types.
type (
	SceneKind     struct{}
	VariantKind   struct{}
	AuthorKind    struct{}
	CharacterKind struct{}
	DialogueKind  struct{}
)

// ID is a value object representing a unique identifier for an entity of
// kind K. Value objects are immutable and have no identity beyond their
// value; equality and map-key hashing consider the underlying UUID only.
//
// An ID may outlive the entity it names. Holding an ID is never proof the
// entity still exists somewhere; owners must validate membership themselves.
type ID[K any] struct {
	value uuid.UUID
}

// Per-kind aliases so signatures stay readable.
type (
	SceneID     = ID[SceneKind]
	VariantID   = ID[VariantKind]
	AuthorID    = ID[AuthorKind]
	CharacterID = ID[CharacterKind]
	DialogueID  = ID[DialogueKind]
)

// NewID creates a new random identifier of kind K
func NewID[K any]() ID[K] {
	return ID[K]{value: uuid.New()}
}

// ParseID creates an identifier of kind K from an existing string
func ParseID[K any](s string) (ID[K], error) {
	if s == "" {
		return ID[K]{}, pkgerrors.NewValidationError("id cannot be empty")
	}
	value, err := uuid.Parse(s)
	if err != nil {
		return ID[K]{}, pkgerrors.NewValidationError("id must be a valid UUID").WithCause(err)
	}
	return ID[K]{value: value}, nil
}

// String returns the string representation of the ID
func (id ID[K]) String() string {
	return id.value.String()
}

// Equals checks if two IDs of the same kind are equal
func (id ID[K]) Equals(other ID[K]) bool {
	return id.value == other.value
}

// IsZero checks if the ID is the zero value
func (id ID[K]) IsZero() bool {
	return id.value == uuid.Nil
}
