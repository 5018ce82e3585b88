package entities

import (
	"time"

	pkgerrors "sceneit/pkg/errors"
	"sceneit/pkg/utils"
)

// RevisionNote is a validated free-text note attached to an entity's
// revision history
type RevisionNote struct {
	value string
}

// NewRevisionNote creates a revision note with validation
func NewRevisionNote(input string) (RevisionNote, error) {
	note := utils.TrimInput(input)

	if note == "" {
		return RevisionNote{}, pkgerrors.NewValidationError("revision note cannot be empty")
	}

	if utils.ContainsControlChars(note) {
		return RevisionNote{}, pkgerrors.NewValidationError("revision note cannot contain control characters")
	}

	return RevisionNote{value: note}, nil
}

// String returns the note text
func (n RevisionNote) String() string {
	return n.value
}

// Metadata tracks revision bookkeeping shared by every storyboard entity.
// Version starts at 1 and increases monotonically with each Touch.
type Metadata struct {
	createdAt     time.Time
	updatedAt     time.Time
	version       int
	revisionNotes []RevisionNote
	tags          []string
	locked        bool
}

// NewMetadata creates metadata for a freshly constructed entity
func NewMetadata() Metadata {
	now := time.Now()
	return Metadata{
		createdAt: now,
		updatedAt: now,
		version:   1,
	}
}

// CreatedAt returns when the entity was created
func (m *Metadata) CreatedAt() time.Time {
	return m.createdAt
}

// UpdatedAt returns when the entity was last modified
func (m *Metadata) UpdatedAt() time.Time {
	return m.updatedAt
}

// Version returns the current revision counter
func (m *Metadata) Version() int {
	return m.version
}

// Locked reports whether the entity is locked against edits
func (m *Metadata) Locked() bool {
	return m.locked
}

// SetLocked marks the entity as locked or unlocked
func (m *Metadata) SetLocked(locked bool) {
	m.locked = locked
}

// Tags returns the entity's tags
func (m *Metadata) Tags() []string {
	tags := make([]string, len(m.tags))
	copy(tags, m.tags)
	return tags
}

// AddTag appends a tag
func (m *Metadata) AddTag(tag string) {
	m.tags = append(m.tags, tag)
}

// RevisionNotes returns the revision history notes
func (m *Metadata) RevisionNotes() []RevisionNote {
	notes := make([]RevisionNote, len(m.revisionNotes))
	copy(notes, m.revisionNotes)
	return notes
}

// AddRevisionNote appends a note to the revision history
func (m *Metadata) AddRevisionNote(note RevisionNote) {
	m.revisionNotes = append(m.revisionNotes, note)
}

// Touch records a modification: bumps the updated timestamp and increments
// the version counter
func (m *Metadata) Touch() {
	m.updatedAt = time.Now()
	m.version++
}
