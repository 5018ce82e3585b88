package entities

import (
	"sceneit/domain/core/valueobjects"
	pkgerrors "sceneit/pkg/errors"
)

// SceneVariant is one draft of a scene: an optional heading plus an ordered
// sequence of beats. Scenes keep every draft around so alternate takes can
// be compared and swapped.
type SceneVariant struct {
	id       valueobjects.VariantID
	heading  *valueobjects.SceneHeading
	elements []SceneElement
	metadata Metadata
}

// NewSceneVariant creates an empty variant
func NewSceneVariant() *SceneVariant {
	return &SceneVariant{
		id:       valueobjects.NewID[valueobjects.VariantKind](),
		metadata: NewMetadata(),
	}
}

// ID returns the variant's unique identifier
func (v *SceneVariant) ID() valueobjects.VariantID {
	return v.id
}

// Heading returns the variant's heading, or nil if none has been set
func (v *SceneVariant) Heading() *valueobjects.SceneHeading {
	return v.heading
}

// SetHeading sets or replaces the variant's heading
func (v *SceneVariant) SetHeading(heading valueobjects.SceneHeading) {
	v.heading = &heading
	v.metadata.Touch()
}

// ClearHeading removes the variant's heading
func (v *SceneVariant) ClearHeading() {
	v.heading = nil
	v.metadata.Touch()
}

// Elements returns the ordered beats of the variant
func (v *SceneVariant) Elements() []SceneElement {
	elements := make([]SceneElement, len(v.elements))
	copy(elements, v.elements)
	return elements
}

// AppendElement adds a beat to the end of the variant
func (v *SceneVariant) AppendElement(element SceneElement) {
	v.elements = append(v.elements, element)
	v.metadata.Touch()
}

// Metadata returns the variant's revision metadata
func (v *SceneVariant) Metadata() *Metadata {
	return &v.metadata
}

// Scene is a narrative unit holding one or more content variants, exactly
// one of which is active at a time. Structural relationships between scenes
// live in the scene graph, not here.
type Scene struct {
	id            valueobjects.SceneID
	activeVariant valueobjects.VariantID
	variants      []*SceneVariant
	metadata      Metadata
}

// NewScene creates a scene with a single empty variant, which becomes the
// active one
func NewScene() *Scene {
	variant := NewSceneVariant()

	return &Scene{
		id:            valueobjects.NewID[valueobjects.SceneKind](),
		activeVariant: variant.ID(),
		variants:      []*SceneVariant{variant},
		metadata:      NewMetadata(),
	}
}

// ID returns the scene's unique identifier
func (s *Scene) ID() valueobjects.SceneID {
	return s.id
}

// ActiveVariantID returns the identifier of the active variant
func (s *Scene) ActiveVariantID() valueobjects.VariantID {
	return s.activeVariant
}

// ActiveVariant returns the active variant
func (s *Scene) ActiveVariant() *SceneVariant {
	for _, v := range s.variants {
		if v.ID().Equals(s.activeVariant) {
			return v
		}
	}
	// Unreachable while the invariant "activeVariant is a member" holds.
	return nil
}

// Variants returns all drafts of the scene
func (s *Scene) Variants() []*SceneVariant {
	variants := make([]*SceneVariant, len(s.variants))
	copy(variants, s.variants)
	return variants
}

// AddVariant attaches a new draft to the scene without activating it
func (s *Scene) AddVariant(variant *SceneVariant) error {
	if variant == nil {
		return pkgerrors.NewValidationError("variant cannot be nil")
	}

	for _, v := range s.variants {
		if v.ID().Equals(variant.ID()) {
			return pkgerrors.NewConflictError("variant already attached to scene")
		}
	}

	s.variants = append(s.variants, variant)
	s.metadata.Touch()
	return nil
}

// SetActiveVariant switches which draft is active
func (s *Scene) SetActiveVariant(id valueobjects.VariantID) error {
	for _, v := range s.variants {
		if v.ID().Equals(id) {
			s.activeVariant = id
			s.metadata.Touch()
			return nil
		}
	}
	return pkgerrors.NewNotFoundError("scene variant")
}

// Metadata returns the scene's revision metadata
func (s *Scene) Metadata() *Metadata {
	return &s.metadata
}

// Touch records a structural modification affecting this scene
func (s *Scene) Touch() {
	s.metadata.Touch()
}
