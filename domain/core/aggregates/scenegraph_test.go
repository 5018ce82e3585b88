package aggregates

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sceneit/domain/core/valueobjects"
	"sceneit/domain/events"
)

func newSceneID() valueobjects.SceneID {
	return valueobjects.NewID[valueobjects.SceneKind]()
}

func collectNext(g *SceneGraph, id valueobjects.SceneID) []valueobjects.SceneID {
	var next []valueobjects.SceneID
	for s := range g.NextScenes(id) {
		next = append(next, s)
	}
	return next
}

// snapshotEdges copies the full edge relation so failure cases can assert
// the graph was left untouched
func snapshotEdges(g *SceneGraph) map[valueobjects.SceneID]map[valueobjects.SceneID]struct{} {
	snapshot := make(map[valueobjects.SceneID]map[valueobjects.SceneID]struct{}, len(g.edges))
	for scene, successors := range g.edges {
		set := make(map[valueobjects.SceneID]struct{}, len(successors))
		for next := range successors {
			set[next] = struct{}{}
		}
		snapshot[scene] = set
	}
	return snapshot
}

func TestAddScene(t *testing.T) {
	g := NewSceneGraph()
	scene := newSceneID()

	change := g.AddScene(scene)

	assert.True(t, g.Contains(scene))
	assert.Empty(t, collectNext(g, scene))
	assert.Equal(t, "scene.added", change.ChangeType())
	assert.Equal(t, []valueobjects.SceneID{scene}, change.TouchedScenes())

	// Re-adding must not disturb existing successors
	other := newSceneID()
	g.AddEdge(scene, other)
	g.AddScene(scene)
	assert.Len(t, collectNext(g, scene), 1)
}

func TestAddRoot(t *testing.T) {
	g := NewSceneGraph()
	scene := newSceneID()

	change := g.AddRoot(scene)

	assert.True(t, g.Contains(scene), "root must be inserted as a member")
	assert.True(t, g.IsRoot(scene))
	assert.Equal(t, "scene.set_as_root", change.ChangeType())
}

func TestAddEdge(t *testing.T) {
	g := NewSceneGraph()
	from := newSceneID()
	dest := newSceneID()

	change := g.AddEdge(from, dest)

	assert.True(t, g.Contains(from))
	assert.True(t, g.Contains(dest), "referenced scenes become members")
	assert.Equal(t, []valueobjects.SceneID{from, dest}, change.TouchedScenes())

	// Idempotent: repeated links never duplicate the successor
	g.AddEdge(from, dest)
	g.AddEdge(from, dest)
	assert.Equal(t, []valueobjects.SceneID{dest}, collectNext(g, from))
}

func TestNextScenesAbsentScene(t *testing.T) {
	g := NewSceneGraph()
	assert.Empty(t, collectNext(g, newSceneID()))
}

func TestNextScenesRestartable(t *testing.T) {
	g := NewSceneGraph()
	from := newSceneID()
	g.AddEdge(from, newSceneID())
	g.AddEdge(from, newSceneID())

	seq := g.NextScenes(from)

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	assert.Equal(t, 2, first)
	assert.Equal(t, 2, second, "sequence must be restartable")
}

func TestMoveScene(t *testing.T) {
	scene := newSceneID()
	from := newSceneID()
	dest := newSceneID()

	setup := func() *SceneGraph {
		g := NewSceneGraph()
		g.AddEdge(from, scene)
		g.AddScene(dest)
		return g
	}

	t.Run("successful move reparents the scene", func(t *testing.T) {
		g := setup()

		change, err := g.MoveScene(scene, from, dest)

		require.NoError(t, err)
		assert.NotContains(t, collectNext(g, from), scene)
		assert.Contains(t, collectNext(g, dest), scene)
		assert.Equal(t, []valueobjects.SceneID{scene, from, dest}, change.TouchedScenes())
	})

	t.Run("same endpoints is a notified no-op", func(t *testing.T) {
		g := setup()
		before := snapshotEdges(g)

		change, err := g.MoveScene(scene, from, from)

		require.NoError(t, err)
		assert.Equal(t, events.SceneMoved{Scene: scene, From: from, Dest: from}, change)
		assert.Equal(t, before, snapshotEdges(g))
	})

	t.Run("missing members are reported in check order", func(t *testing.T) {
		stranger := newSceneID()
		tests := []struct {
			name    string
			scene   valueobjects.SceneID
			from    valueobjects.SceneID
			dest    valueobjects.SceneID
			missing valueobjects.SceneID
		}{
			{name: "scene missing", scene: stranger, from: from, dest: dest, missing: stranger},
			{name: "from missing", scene: scene, from: stranger, dest: dest, missing: stranger},
			{name: "dest missing", scene: scene, from: from, dest: stranger, missing: stranger},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				g := setup()

				_, err := g.MoveScene(tt.scene, tt.from, tt.dest)

				var notInGraph *SceneNotInGraphError
				require.ErrorAs(t, err, &notInGraph)
				assert.Equal(t, tt.missing, notInGraph.Scene)
			})
		}
	})

	t.Run("scene not following from is an invalid move", func(t *testing.T) {
		g := setup()
		// dest is a member but scene does not follow it
		_, err := g.MoveScene(scene, dest, from)

		var invalid *InvalidMoveError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, scene, invalid.Scene)
		assert.Equal(t, dest, invalid.From)
		assert.Equal(t, from, invalid.Dest)
	})
}

func TestMoveSceneCycleDetection(t *testing.T) {
	t.Run("destination already reaching the scene is rejected", func(t *testing.T) {
		g := NewSceneGraph()
		scene := newSceneID()
		from := newSceneID()
		dest := newSceneID()

		// Two paths to scene: from -> scene and dest -> middle -> scene.
		middle := newSceneID()
		g.AddEdge(from, scene)
		g.AddEdge(dest, middle)
		g.AddEdge(middle, scene)

		before := snapshotEdges(g)

		_, err := g.MoveScene(scene, from, dest)

		var cycle *CycleDetectedError
		require.ErrorAs(t, err, &cycle)
		assert.Equal(t, scene, cycle.Scene)
		assert.Equal(t, dest, cycle.Dest)
		assert.Equal(t, before, snapshotEdges(g), "failed move must leave the graph untouched")
	})

	t.Run("moving a scene under itself is rejected", func(t *testing.T) {
		g := NewSceneGraph()
		scene := newSceneID()
		from := newSceneID()
		g.AddEdge(from, scene)

		before := snapshotEdges(g)

		_, err := g.MoveScene(scene, from, scene)

		var cycle *CycleDetectedError
		require.ErrorAs(t, err, &cycle)
		assert.Equal(t, before, snapshotEdges(g))
	})
}

func TestDeleteScene(t *testing.T) {
	t.Run("absent scene is an error", func(t *testing.T) {
		g := NewSceneGraph()
		missing := newSceneID()

		_, err := g.DeleteScene(missing)

		var notInGraph *SceneNotInGraphError
		require.ErrorAs(t, err, &notInGraph)
		assert.Equal(t, missing, notInGraph.Scene)
	})

	t.Run("deletion purges every reference", func(t *testing.T) {
		g := NewSceneGraph()
		a := newSceneID()
		b := newSceneID()
		c := newSceneID()
		g.AddRoot(b)
		g.AddEdge(a, b)
		g.AddEdge(c, b)
		g.AddEdge(b, c)

		change, err := g.DeleteScene(b)

		require.NoError(t, err)
		assert.Equal(t, "scene.deleted", change.ChangeType())
		assert.False(t, g.Contains(b))
		assert.False(t, g.IsRoot(b))
		for _, remaining := range []valueobjects.SceneID{a, c} {
			assert.NotContains(t, collectNext(g, remaining), b)
		}
		assert.NotContains(t, g.UnreachableScenes(), b, "deleted scenes are out of reachability consideration")
	})
}

func TestDeleteEdge(t *testing.T) {
	t.Run("missing from scene is an error", func(t *testing.T) {
		g := NewSceneGraph()
		missing := newSceneID()

		_, err := g.DeleteEdge(missing, newSceneID())

		var notInGraph *SceneNotInGraphError
		require.ErrorAs(t, err, &notInGraph)
		assert.Equal(t, missing, notInGraph.Scene)
	})

	t.Run("existing edge is removed", func(t *testing.T) {
		g := NewSceneGraph()
		from := newSceneID()
		dest := newSceneID()
		g.AddEdge(from, dest)

		change, err := g.DeleteEdge(from, dest)

		require.NoError(t, err)
		assert.Empty(t, collectNext(g, from))
		assert.Equal(t, []valueobjects.SceneID{from, dest}, change.TouchedScenes())
	})

	t.Run("missing edge is a silent no-op", func(t *testing.T) {
		g := NewSceneGraph()
		from := newSceneID()
		g.AddScene(from)
		before := snapshotEdges(g)

		_, err := g.DeleteEdge(from, newSceneID())

		require.NoError(t, err)
		assert.Equal(t, before, snapshotEdges(g))
	})
}

func TestUnreachableScenes(t *testing.T) {
	t.Run("no roots makes every member unreachable", func(t *testing.T) {
		g := NewSceneGraph()
		a := newSceneID()
		b := newSceneID()
		g.AddEdge(a, b)

		unreachable := g.UnreachableScenes()

		assert.Len(t, unreachable, 2)
		assert.Contains(t, unreachable, a)
		assert.Contains(t, unreachable, b)
	})

	t.Run("a root with no edges reaches only itself", func(t *testing.T) {
		g := NewSceneGraph()
		root := newSceneID()
		stray := newSceneID()
		g.AddRoot(root)
		g.AddScene(stray)

		unreachable := g.UnreachableScenes()

		assert.NotContains(t, unreachable, root)
		assert.Contains(t, unreachable, stray)
	})

	t.Run("cutting an edge orphans the subtree behind it", func(t *testing.T) {
		g := NewSceneGraph()
		a := newSceneID()
		b := newSceneID()
		c := newSceneID()
		g.AddScene(a)
		g.AddScene(b)
		g.AddScene(c)
		g.AddRoot(a)
		g.AddEdge(a, b)
		g.AddEdge(b, c)

		assert.Empty(t, g.UnreachableScenes())

		_, err := g.DeleteEdge(b, c)
		require.NoError(t, err)

		unreachable := g.UnreachableScenes()
		assert.Len(t, unreachable, 1)
		assert.Contains(t, unreachable, c)
	})
}

func TestPrintFrom(t *testing.T) {
	t.Run("subtree printing indents by depth", func(t *testing.T) {
		g := NewSceneGraph()
		a := newSceneID()
		b := newSceneID()
		c := newSceneID()
		g.AddEdge(a, b)
		g.AddEdge(b, c)

		var buf bytes.Buffer
		g.PrintFrom(&buf, &a)

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "- "+a.String(), lines[0])
		assert.Equal(t, "  - "+b.String(), lines[1])
		assert.Equal(t, "    - "+c.String(), lines[2])
	})

	t.Run("shared scene prints exactly once across roots", func(t *testing.T) {
		g := NewSceneGraph()
		rootA := newSceneID()
		rootB := newSceneID()
		shared := newSceneID()
		g.AddRoot(rootA)
		g.AddRoot(rootB)
		g.AddEdge(rootA, shared)
		g.AddEdge(rootB, shared)

		var buf bytes.Buffer
		g.PrintFrom(&buf, nil)

		output := buf.String()
		assert.Equal(t, 2, strings.Count(output, "ROOT: "))
		// Root iteration order is unspecified; only the overall count matters.
		assert.Equal(t, 1, strings.Count(output, "- "+shared.String()))
	})

	t.Run("a scene in a cycle prints once", func(t *testing.T) {
		g := NewSceneGraph()
		a := newSceneID()
		b := newSceneID()
		g.AddEdge(a, b)
		g.AddEdge(b, a)

		var buf bytes.Buffer
		g.PrintFrom(&buf, &a)

		assert.Equal(t, 1, strings.Count(buf.String(), "- "+a.String()))
		assert.Equal(t, 1, strings.Count(buf.String(), "- "+b.String()))
	})
}
