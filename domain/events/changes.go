// Package events defines the change notifications emitted by scene graph
// mutations. A notification is a plain value describing what happened; the
// graph never calls back into its owner. The storyboard consumes them to run
// side effects (metadata touches) without duplicating graph logic.
package events

import (
	"sceneit/domain/core/valueobjects"
)

// GraphChange describes one completed structural mutation of the scene graph
type GraphChange interface {
	// ChangeType returns a stable name for the mutation kind
	ChangeType() string

	// TouchedScenes returns every scene identifier the mutation referenced,
	// in argument order. Consumers use this to propagate revision updates.
	TouchedScenes() []valueobjects.SceneID
}

// SceneAdded is emitted when a scene joins the graph
type SceneAdded struct {
	Scene valueobjects.SceneID
}

func (c SceneAdded) ChangeType() string { return "scene.added" }

func (c SceneAdded) TouchedScenes() []valueobjects.SceneID {
	return []valueobjects.SceneID{c.Scene}
}

// SceneSetAsRoot is emitted when a scene is marked as a story entry point
type SceneSetAsRoot struct {
	Scene valueobjects.SceneID
}

func (c SceneSetAsRoot) ChangeType() string { return "scene.set_as_root" }

func (c SceneSetAsRoot) TouchedScenes() []valueobjects.SceneID {
	return []valueobjects.SceneID{c.Scene}
}

// ScenesLinked is emitted when a directed transition is added
type ScenesLinked struct {
	From valueobjects.SceneID
	Dest valueobjects.SceneID
}

func (c ScenesLinked) ChangeType() string { return "scenes.linked" }

func (c ScenesLinked) TouchedScenes() []valueobjects.SceneID {
	return []valueobjects.SceneID{c.From, c.Dest}
}

// SceneMoved is emitted when a scene is reparented from one scene to another
type SceneMoved struct {
	Scene valueobjects.SceneID
	From  valueobjects.SceneID
	Dest  valueobjects.SceneID
}

func (c SceneMoved) ChangeType() string { return "scene.moved" }

func (c SceneMoved) TouchedScenes() []valueobjects.SceneID {
	return []valueobjects.SceneID{c.Scene, c.From, c.Dest}
}

// SceneDeleted is emitted when a scene and all references to it are removed
type SceneDeleted struct {
	Scene valueobjects.SceneID
}

func (c SceneDeleted) ChangeType() string { return "scene.deleted" }

func (c SceneDeleted) TouchedScenes() []valueobjects.SceneID {
	return []valueobjects.SceneID{c.Scene}
}

// EdgeDeleted is emitted when a single transition is removed
type EdgeDeleted struct {
	From valueobjects.SceneID
	Dest valueobjects.SceneID
}

func (c EdgeDeleted) ChangeType() string { return "edge.deleted" }

func (c EdgeDeleted) TouchedScenes() []valueobjects.SceneID {
	return []valueobjects.SceneID{c.From, c.Dest}
}
