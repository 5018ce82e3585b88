package aggregates

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"sceneit/domain/core/valueobjects"
	"sceneit/domain/events"
)

// SceneGraph is the ordering and relationship model for scenes: a directed,
// possibly-branching structure expressing what can come next. It stores only
// scene identifiers and entry points, never scene content, so it can be owned
// by a Storyboard without knowing anything about it.
//
// Cycles may exist in general; only MoveScene actively refuses to close one.
// Every mutation returns a change notification describing what happened.
//
// Not safe for concurrent use; the owning editor session must serialize
// access.
type SceneGraph struct {
	edges map[valueobjects.SceneID]map[valueobjects.SceneID]struct{}
	roots map[valueobjects.SceneID]struct{}
}

// NewSceneGraph creates an empty scene graph
func NewSceneGraph() *SceneGraph {
	return &SceneGraph{
		edges: make(map[valueobjects.SceneID]map[valueobjects.SceneID]struct{}),
		roots: make(map[valueobjects.SceneID]struct{}),
	}
}

// AddScene inserts a scene into the graph with no successors. Adding a scene
// that is already present is a no-op beyond the notification.
func (g *SceneGraph) AddScene(scene valueobjects.SceneID) events.GraphChange {
	if _, exists := g.edges[scene]; !exists {
		g.edges[scene] = make(map[valueobjects.SceneID]struct{})
	}
	return events.SceneAdded{Scene: scene}
}

// AddRoot marks a scene as a valid story entry point, inserting it into the
// graph first if needed
func (g *SceneGraph) AddRoot(scene valueobjects.SceneID) events.GraphChange {
	g.AddScene(scene)
	g.roots[scene] = struct{}{}
	return events.SceneSetAsRoot{Scene: scene}
}

// AddEdge records that dest is a possible next scene after from. Both scenes
// are inserted into the graph if absent. Re-adding an existing edge is a
// no-op beyond the notification.
func (g *SceneGraph) AddEdge(from, dest valueobjects.SceneID) events.GraphChange {
	g.AddScene(from)
	g.AddScene(dest)

	g.edges[from][dest] = struct{}{}

	return events.ScenesLinked{From: from, Dest: dest}
}

// MoveScene reparents scene from one predecessor to another.
//
// All three identifiers must already be graph members; the first missing one
// (checked scene, from, dest) fails the call with SceneNotInGraphError.
// Moving between identical endpoints succeeds without mutating anything.
// If scene does not currently follow from, the call fails with
// InvalidMoveError. If dest can already reach scene through existing edges,
// inserting the new edge would make scene its own descendant; the removed
// edge is restored and the call fails with CycleDetectedError, leaving the
// graph exactly as it was.
func (g *SceneGraph) MoveScene(scene, from, dest valueobjects.SceneID) (events.GraphChange, error) {
	for _, id := range []valueobjects.SceneID{scene, from, dest} {
		if _, exists := g.edges[id]; !exists {
			return nil, &SceneNotInGraphError{Scene: id}
		}
	}

	// Same endpoints: nothing to mutate, but the move is still reported.
	if from == dest {
		return events.SceneMoved{Scene: scene, From: from, Dest: dest}, nil
	}

	if _, present := g.edges[from][scene]; !present {
		return nil, &InvalidMoveError{Scene: scene, From: from, Dest: dest}
	}
	delete(g.edges[from], scene)

	if g.isDescendant(dest, scene) {
		g.edges[from][scene] = struct{}{}
		return nil, &CycleDetectedError{Scene: scene, Dest: dest}
	}

	g.edges[dest][scene] = struct{}{}

	return events.SceneMoved{Scene: scene, From: from, Dest: dest}, nil
}

// isDescendant reports whether target is reachable from start by following
// outgoing edges. Iterative DFS with an explicit stack; short-circuits the
// moment target is popped, so a query with start == target is true
// immediately. Visited tracking keeps the walk finite on cyclic graphs.
func (g *SceneGraph) isDescendant(start, target valueobjects.SceneID) bool {
	visited := make(map[valueobjects.SceneID]struct{})
	stack := []valueobjects.SceneID{start}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if node == target {
			return true
		}

		if _, seen := visited[node]; seen {
			continue
		}
		visited[node] = struct{}{}

		for next := range g.edges[node] {
			stack = append(stack, next)
		}
	}

	return false
}

// DeleteScene removes a scene from the graph: its own successor entry, its
// root mark if any, and every edge that points at it from the remaining
// scenes
func (g *SceneGraph) DeleteScene(scene valueobjects.SceneID) (events.GraphChange, error) {
	if _, exists := g.edges[scene]; !exists {
		return nil, &SceneNotInGraphError{Scene: scene}
	}
	delete(g.edges, scene)
	delete(g.roots, scene)

	for _, successors := range g.edges {
		delete(successors, scene)
	}

	return events.SceneDeleted{Scene: scene}, nil
}

// DeleteEdge removes the single transition from -> dest without deleting
// either scene. Removing an edge that does not exist is a silent no-op; only
// a missing from scene is an error.
func (g *SceneGraph) DeleteEdge(from, dest valueobjects.SceneID) (events.GraphChange, error) {
	successors, exists := g.edges[from]
	if !exists {
		return nil, &SceneNotInGraphError{Scene: from}
	}

	delete(successors, dest)

	return events.EdgeDeleted{From: from, Dest: dest}, nil
}

// Contains reports whether a scene is a member of the graph
func (g *SceneGraph) Contains(scene valueobjects.SceneID) bool {
	_, exists := g.edges[scene]
	return exists
}

// IsRoot reports whether a scene is marked as a story entry point
func (g *SceneGraph) IsRoot(scene valueobjects.SceneID) bool {
	_, exists := g.roots[scene]
	return exists
}

// NextScenes returns a restartable sequence over the direct successors of
// scene: every possible "next" scene in the story flow. The sequence is
// empty when the scene is absent or has no successors.
func (g *SceneGraph) NextScenes(scene valueobjects.SceneID) iter.Seq[valueobjects.SceneID] {
	return func(yield func(valueobjects.SceneID) bool) {
		for next := range g.edges[scene] {
			if !yield(next) {
				return
			}
		}
	}
}

// UnreachableScenes returns every graph member that cannot be reached from
// any root. The traversal is seeded with all roots at once; with no roots,
// every member is unreachable.
func (g *SceneGraph) UnreachableScenes() map[valueobjects.SceneID]struct{} {
	visited := make(map[valueobjects.SceneID]struct{})
	stack := make([]valueobjects.SceneID, 0, len(g.roots))
	for root := range g.roots {
		stack = append(stack, root)
	}

	for len(stack) > 0 {
		scene := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := visited[scene]; seen {
			continue
		}
		visited[scene] = struct{}{}

		for next := range g.edges[scene] {
			stack = append(stack, next)
		}
	}

	unreachable := make(map[valueobjects.SceneID]struct{})
	for scene := range g.edges {
		if _, seen := visited[scene]; !seen {
			unreachable[scene] = struct{}{}
		}
	}
	return unreachable
}

// PrintFrom writes a breadth-first outline of the graph to w, indenting each
// scene in proportion to its depth.
//
// With a start scene, only the subtree below it is printed. With start nil,
// every root is printed as an independent origin under a "ROOT:" header,
// depth resetting per root; a scene reachable from several roots appears
// exactly once, under whichever root reached it first. Root order follows
// map iteration and is not specified. Diagnostic output only; the format is
// not stable.
func (g *SceneGraph) PrintFrom(w io.Writer, start *valueobjects.SceneID) {
	visited := make(map[valueobjects.SceneID]struct{})

	if start != nil {
		g.printSubtree(w, *start, visited)
		return
	}

	for root := range g.roots {
		fmt.Fprintf(w, "ROOT: %s\n", root)
		g.printSubtree(w, root, visited)
		fmt.Fprintln(w)
	}
}

// printSubtree runs one BFS origin, sharing visited across calls so repeated
// origins never reprint a scene
func (g *SceneGraph) printSubtree(w io.Writer, root valueobjects.SceneID, visited map[valueobjects.SceneID]struct{}) {
	type entry struct {
		scene valueobjects.SceneID
		depth int
	}
	queue := []entry{{scene: root, depth: 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if _, seen := visited[current.scene]; seen {
			continue
		}
		visited[current.scene] = struct{}{}

		fmt.Fprintf(w, "%s- %s\n", strings.Repeat("  ", current.depth), current.scene)

		for next := range g.edges[current.scene] {
			queue = append(queue, entry{scene: next, depth: current.depth + 1})
		}
	}
}
