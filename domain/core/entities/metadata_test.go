package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "sceneit/pkg/errors"
)

func TestMetadataTouch(t *testing.T) {
	m := NewMetadata()

	assert.Equal(t, 1, m.Version())
	assert.Equal(t, m.CreatedAt(), m.UpdatedAt())

	m.Touch()
	m.Touch()

	assert.Equal(t, 3, m.Version(), "version increases monotonically")
	assert.False(t, m.UpdatedAt().Before(m.CreatedAt()))
}

func TestRevisionNotes(t *testing.T) {
	m := NewMetadata()

	note, err := NewRevisionNote("  tightened the   chase pacing ")
	require.NoError(t, err)
	assert.Equal(t, "tightened the chase pacing", note.String())

	m.AddRevisionNote(note)
	require.Len(t, m.RevisionNotes(), 1)

	_, err = NewRevisionNote("")
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestNames(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "Edgar Wright", wantErr: false},
		{name: "empty", input: "  ", wantErr: true},
		{name: "control chars", input: "Ed\x1bgar", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, authorErr := NewAuthorName(tt.input)
			_, characterErr := NewCharacterName(tt.input)

			if tt.wantErr {
				assert.Error(t, authorErr)
				assert.Error(t, characterErr)
			} else {
				assert.NoError(t, authorErr)
				assert.NoError(t, characterErr)
			}
		})
	}
}

func TestNewAuthorAndCharacter(t *testing.T) {
	authorName, err := NewAuthorName("Sam Gonzalez")
	require.NoError(t, err)
	author := NewAuthor(authorName)
	assert.Equal(t, "Sam Gonzalez", author.Name())
	assert.False(t, author.ID().IsZero())

	characterName, err := NewCharacterName("SARAH")
	require.NoError(t, err)
	character := NewCharacter(characterName)
	assert.Equal(t, "SARAH", character.Name())
	assert.False(t, character.ID().IsZero())
}
