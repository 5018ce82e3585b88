package entities

import (
	"fmt"
	"unicode/utf8"

	"sceneit/domain/config"
	"sceneit/domain/core/valueobjects"
	pkgerrors "sceneit/pkg/errors"
	"sceneit/pkg/utils"
)

// AuthorName is a validated author display name
type AuthorName struct {
	value string
}

// NewAuthorName creates an author name with validation
func NewAuthorName(input string) (AuthorName, error) {
	return NewAuthorNameWithConfig(input, config.DefaultDomainConfig())
}

// NewAuthorNameWithConfig creates an author name with validation and configuration
func NewAuthorNameWithConfig(input string, cfg *config.DomainConfig) (AuthorName, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	name := utils.TrimInput(input)

	if name == "" {
		return AuthorName{}, pkgerrors.NewValidationError("author name cannot be empty")
	}

	if utf8.RuneCountInString(name) > cfg.MaxNameLength {
		return AuthorName{}, pkgerrors.NewValidationError(
			fmt.Sprintf("author name exceeds maximum length of %d characters", cfg.MaxNameLength))
	}

	if utils.ContainsControlChars(name) {
		return AuthorName{}, pkgerrors.NewValidationError("author name cannot contain control characters")
	}

	return AuthorName{value: name}, nil
}

// String returns the name text
func (n AuthorName) String() string {
	return n.value
}

// Author is a credited writer on the storyboard
type Author struct {
	id       valueobjects.AuthorID
	name     AuthorName
	metadata Metadata
}

// NewAuthor creates an author from a validated name
func NewAuthor(name AuthorName) *Author {
	return &Author{
		id:       valueobjects.NewID[valueobjects.AuthorKind](),
		name:     name,
		metadata: NewMetadata(),
	}
}

// ID returns the author's unique identifier
func (a *Author) ID() valueobjects.AuthorID {
	return a.id
}

// Name returns the author's display name
func (a *Author) Name() string {
	return a.name.String()
}

// Metadata returns the author's revision metadata
func (a *Author) Metadata() *Metadata {
	return &a.metadata
}
