package valueobjects

import (
	"fmt"
	"unicode/utf8"

	"sceneit/domain/config"
	pkgerrors "sceneit/pkg/errors"
	"sceneit/pkg/utils"
)

// DefaultTitle is used when a storyboard has not been named yet.
const DefaultTitle = "Untitled Storyboard"

// Title is a value object for the storyboard title
type Title struct {
	value string
}

// NewTitle creates a title with validation using default configuration
func NewTitle(input string) (Title, error) {
	return NewTitleWithConfig(input, config.DefaultDomainConfig())
}

// NewTitleWithConfig creates a title with validation and configuration
func NewTitleWithConfig(input string, cfg *config.DomainConfig) (Title, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	trimmed := utils.TrimInput(input)

	if trimmed == "" {
		return Title{}, pkgerrors.NewValidationError("title cannot be empty")
	}

	if utf8.RuneCountInString(trimmed) > cfg.MaxTitleLength {
		return Title{}, pkgerrors.NewValidationError(
			fmt.Sprintf("title exceeds maximum length of %d characters", cfg.MaxTitleLength))
	}

	if utils.ContainsControlChars(trimmed) {
		return Title{}, pkgerrors.NewValidationError("title cannot contain control characters")
	}

	return Title{value: trimmed}, nil
}

// UntitledTitle returns the placeholder title for unnamed storyboards
func UntitledTitle() Title {
	return Title{value: DefaultTitle}
}

// String returns the title text
func (t Title) String() string {
	return t.value
}

// IsZero checks if the title is the zero value
func (t Title) IsZero() bool {
	return t.value == ""
}

// Equals checks if two titles are equal
func (t Title) Equals(other Title) bool {
	return t.value == other.value
}

// Summary is a value object for the storyboard logline/summary
type Summary struct {
	value string
}

// NewSummary creates a summary with validation
func NewSummary(input string) (Summary, error) {
	trimmed := utils.TrimInput(input)

	if trimmed == "" {
		return Summary{}, pkgerrors.NewValidationError("summary cannot be empty")
	}

	if utils.ContainsControlChars(trimmed) {
		return Summary{}, pkgerrors.NewValidationError("summary cannot contain control characters")
	}

	return Summary{value: trimmed}, nil
}

// String returns the summary text
func (s Summary) String() string {
	return s.value
}

// IsZero checks if the summary is the zero value
func (s Summary) IsZero() bool {
	return s.value == ""
}
