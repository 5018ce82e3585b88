package aggregates

import (
	"fmt"

	"sceneit/domain/core/valueobjects"
)

// Structural-edit errors. Each carries the identifiers involved so a caller
// can surface the exact failure rather than a generic message. All are
// recoverable; a failed operation leaves the graph in its prior state.

// SceneNotInGraphError reports an identifier missing from the scene graph
type SceneNotInGraphError struct {
	Scene valueobjects.SceneID
}

func (e *SceneNotInGraphError) Error() string {
	return fmt.Sprintf("scene %s is not in the scene graph", e.Scene)
}

// UnknownSceneError reports an identifier missing from the scene bank
type UnknownSceneError struct {
	Scene valueobjects.SceneID
}

func (e *UnknownSceneError) Error() string {
	return fmt.Sprintf("scene %s is not in the storyboard", e.Scene)
}

// InvalidMoveError reports a move whose scene is not currently a successor
// of the source, so there is no edge to reparent
type InvalidMoveError struct {
	Scene valueobjects.SceneID
	From  valueobjects.SceneID
	Dest  valueobjects.SceneID
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("cannot move scene %s: it does not follow scene %s (destination %s)",
		e.Scene, e.From, e.Dest)
}

// CycleDetectedError reports a move that would make the scene its own
// (indirect) descendant
type CycleDetectedError struct {
	Scene valueobjects.SceneID
	Dest  valueobjects.SceneID
}

func (e *CycleDetectedError) Error() string {
	return fmt.Sprintf("moving scene %s under scene %s would create a cycle", e.Scene, e.Dest)
}
