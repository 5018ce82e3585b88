package entities

import (
	"fmt"
	"unicode/utf8"

	"sceneit/domain/config"
	"sceneit/domain/core/valueobjects"
	pkgerrors "sceneit/pkg/errors"
	"sceneit/pkg/utils"
)

// CharacterName is a validated character display name
type CharacterName struct {
	value string
}

// NewCharacterName creates a character name with validation
func NewCharacterName(input string) (CharacterName, error) {
	return NewCharacterNameWithConfig(input, config.DefaultDomainConfig())
}

// NewCharacterNameWithConfig creates a character name with validation and configuration
func NewCharacterNameWithConfig(input string, cfg *config.DomainConfig) (CharacterName, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	name := utils.TrimInput(input)

	if name == "" {
		return CharacterName{}, pkgerrors.NewValidationError("character name cannot be empty")
	}

	if utf8.RuneCountInString(name) > cfg.MaxNameLength {
		return CharacterName{}, pkgerrors.NewValidationError(
			fmt.Sprintf("character name exceeds maximum length of %d characters", cfg.MaxNameLength))
	}

	if utils.ContainsControlChars(name) {
		return CharacterName{}, pkgerrors.NewValidationError("character name cannot contain control characters")
	}

	return CharacterName{value: name}, nil
}

// String returns the name text
func (n CharacterName) String() string {
	return n.value
}

// Character is a cast member who can speak dialogue in scenes
type Character struct {
	id       valueobjects.CharacterID
	name     CharacterName
	metadata Metadata
}

// NewCharacter creates a character from a validated name
func NewCharacter(name CharacterName) *Character {
	return &Character{
		id:       valueobjects.NewID[valueobjects.CharacterKind](),
		name:     name,
		metadata: NewMetadata(),
	}
}

// ID returns the character's unique identifier
func (c *Character) ID() valueobjects.CharacterID {
	return c.id
}

// Name returns the character's display name
func (c *Character) Name() string {
	return c.name.String()
}

// Metadata returns the character's revision metadata
func (c *Character) Metadata() *Metadata {
	return &c.metadata
}
