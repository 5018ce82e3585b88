package valueobjects

import (
	"fmt"
	"unicode/utf8"

	"sceneit/domain/config"
	pkgerrors "sceneit/pkg/errors"
	"sceneit/pkg/utils"
)

// CameraLocation places the camera inside or outside
type CameraLocation string

const (
	CameraInterior CameraLocation = "INT"
	CameraExterior CameraLocation = "EXT"
)

// TimeOfDay is the lighting/time slug of a scene heading
type TimeOfDay string

const (
	TimeMorning    TimeOfDay = "MORNING"
	TimeDawn       TimeOfDay = "DAWN"
	TimeDay        TimeOfDay = "DAY"
	TimeDusk       TimeOfDay = "DUSK"
	TimeEvening    TimeOfDay = "EVENING"
	TimeNight      TimeOfDay = "NIGHT"
	TimeLater      TimeOfDay = "LATER"
	TimeContinuous TimeOfDay = "CONTINUOUS"
)

// SceneLocation is a validated location slug, e.g. "SARAH'S KITCHEN"
type SceneLocation struct {
	value string
}

// NewSceneLocation creates a location with validation
func NewSceneLocation(input string) (SceneLocation, error) {
	return NewSceneLocationWithConfig(input, config.DefaultDomainConfig())
}

// NewSceneLocationWithConfig creates a location with validation and configuration
func NewSceneLocationWithConfig(input string, cfg *config.DomainConfig) (SceneLocation, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	trimmed := utils.TrimInput(input)

	if trimmed == "" {
		return SceneLocation{}, pkgerrors.NewValidationError("scene location cannot be empty")
	}

	if utf8.RuneCountInString(trimmed) > cfg.MaxLocationLength {
		return SceneLocation{}, pkgerrors.NewValidationError(
			fmt.Sprintf("scene location exceeds maximum length of %d characters", cfg.MaxLocationLength))
	}

	if utils.ContainsControlChars(trimmed) {
		return SceneLocation{}, pkgerrors.NewValidationError("scene location cannot contain control characters")
	}

	return SceneLocation{value: trimmed}, nil
}

// String returns the location text
func (l SceneLocation) String() string {
	return l.value
}

// SceneHeading is the slug line of a scene variant: camera placement,
// location and time of day
type SceneHeading struct {
	camera    CameraLocation
	location  SceneLocation
	timeOfDay TimeOfDay
}

// HeadingInput is the raw, unvalidated form of a scene heading as collected
// from an editing surface
type HeadingInput struct {
	Camera    string `validate:"required,oneof=INT EXT"`
	Location  string `validate:"required,max=120"`
	TimeOfDay string `validate:"required,oneof=MORNING DAWN DAY DUSK EVENING NIGHT LATER CONTINUOUS"`
}

// NewSceneHeading builds a heading from already-typed components
func NewSceneHeading(camera CameraLocation, location SceneLocation, timeOfDay TimeOfDay) SceneHeading {
	return SceneHeading{
		camera:    camera,
		location:  location,
		timeOfDay: timeOfDay,
	}
}

// ParseSceneHeading validates raw input and builds a heading from it
func ParseSceneHeading(input HeadingInput) (SceneHeading, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return SceneHeading{}, pkgerrors.NewValidationError("invalid scene heading").WithCause(err)
	}

	location, err := NewSceneLocation(input.Location)
	if err != nil {
		return SceneHeading{}, err
	}

	return SceneHeading{
		camera:    CameraLocation(input.Camera),
		location:  location,
		timeOfDay: TimeOfDay(input.TimeOfDay),
	}, nil
}

// Camera returns the camera placement
func (h SceneHeading) Camera() CameraLocation {
	return h.camera
}

// Location returns the scene location
func (h SceneHeading) Location() SceneLocation {
	return h.location
}

// TimeOfDay returns the time-of-day slug
func (h SceneHeading) TimeOfDay() TimeOfDay {
	return h.timeOfDay
}

// String renders the heading in screenplay slug format, e.g.
// "INT. SARAH'S KITCHEN - NIGHT"
func (h SceneHeading) String() string {
	return fmt.Sprintf("%s. %s - %s", h.camera, h.location, h.timeOfDay)
}
