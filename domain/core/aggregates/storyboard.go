package aggregates

import (
	"sceneit/domain/core/entities"
	"sceneit/domain/core/valueobjects"
	"sceneit/domain/events"
)

// StoryTemplate selects the script format a storyboard targets
type StoryTemplate string

const (
	TemplateTeleplay       StoryTemplate = "teleplay"
	TemplateScreenplay     StoryTemplate = "screenplay"
	TemplateHalfHourSitcom StoryTemplate = "half_hour_sitcom"
	TemplateNovel          StoryTemplate = "novel"
)

// Storyboard is the project aggregate: it owns scene content, authors,
// characters, the title and template, and the scene graph. It is the sole
// entry point for structural edits, validating every referenced scene
// against the scene bank before delegating to the graph, then translating
// the graph's change notification into metadata touches on the affected
// scenes.
//
// The graph holds identifiers only; the scene bank is the authoritative
// content store keyed by the same identifiers. The storyboard keeps the two
// consistent.
//
// Not safe for concurrent use; one editor session owns an instance at a time.
type Storyboard struct {
	title      *valueobjects.Title
	authors    map[valueobjects.AuthorID]*entities.Author
	sceneBank  map[valueobjects.SceneID]*entities.Scene
	characters map[valueobjects.CharacterID]*entities.Character
	template   *StoryTemplate
	sceneGraph *SceneGraph
	metadata   entities.Metadata
}

// NewStoryboard creates an empty storyboard
func NewStoryboard() *Storyboard {
	return &Storyboard{
		authors:    make(map[valueobjects.AuthorID]*entities.Author),
		sceneBank:  make(map[valueobjects.SceneID]*entities.Scene),
		characters: make(map[valueobjects.CharacterID]*entities.Character),
		sceneGraph: NewSceneGraph(),
		metadata:   entities.NewMetadata(),
	}
}

// Title returns the storyboard title, or nil if none is set
func (sb *Storyboard) Title() *valueobjects.Title {
	return sb.title
}

// UpdateTitle sets or replaces the storyboard title
func (sb *Storyboard) UpdateTitle(title valueobjects.Title) {
	sb.title = &title
	sb.metadata.Touch()
}

// ClearTitle returns the storyboard to an unnamed state
func (sb *Storyboard) ClearTitle() {
	sb.title = nil
	sb.metadata.Touch()
}

// Template returns the active story template, or nil if none is selected
func (sb *Storyboard) Template() *StoryTemplate {
	return sb.template
}

// UpdateTemplate sets or replaces the active story template
func (sb *Storyboard) UpdateTemplate(template StoryTemplate) {
	sb.template = &template
	sb.metadata.Touch()
}

// ClearTemplate clears the currently selected story template
func (sb *Storyboard) ClearTemplate() {
	sb.template = nil
	sb.metadata.Touch()
}

// AddAuthor adds an author; an author with the same ID is replaced
func (sb *Storyboard) AddAuthor(author *entities.Author) {
	sb.authors[author.ID()] = author
	sb.metadata.Touch()
}

// RemoveAuthor removes an author by ID. Scenes and characters are unaffected.
func (sb *Storyboard) RemoveAuthor(id valueobjects.AuthorID) {
	delete(sb.authors, id)
	sb.metadata.Touch()
}

// Authors returns the credited authors
func (sb *Storyboard) Authors() []*entities.Author {
	authors := make([]*entities.Author, 0, len(sb.authors))
	for _, a := range sb.authors {
		authors = append(authors, a)
	}
	return authors
}

// AddCharacter adds a character; a character with the same ID is replaced
func (sb *Storyboard) AddCharacter(character *entities.Character) {
	sb.characters[character.ID()] = character
	sb.metadata.Touch()
}

// RemoveCharacter removes a character by ID
func (sb *Storyboard) RemoveCharacter(id valueobjects.CharacterID) {
	delete(sb.characters, id)
	sb.metadata.Touch()
}

// Character retrieves a character by ID
func (sb *Storyboard) Character(id valueobjects.CharacterID) (*entities.Character, bool) {
	character, exists := sb.characters[id]
	return character, exists
}

// AddScene registers a scene in both ownership layers: the scene graph for
// relationships and the scene bank for content
func (sb *Storyboard) AddScene(scene *entities.Scene) {
	change := sb.sceneGraph.AddScene(scene.ID())
	sb.sceneBank[scene.ID()] = scene
	sb.applyChange(change)
}

// Scene retrieves a scene from the bank by ID
func (sb *Storyboard) Scene(id valueobjects.SceneID) (*entities.Scene, bool) {
	scene, exists := sb.sceneBank[id]
	return scene, exists
}

// SceneCount returns how many scenes the bank holds
func (sb *Storyboard) SceneCount() int {
	return len(sb.sceneBank)
}

// Graph exposes the scene graph for read-side traversal and diagnostics.
// Mutations must go through the storyboard.
func (sb *Storyboard) Graph() *SceneGraph {
	return sb.sceneGraph
}

// SetSceneAsRoot marks a scene as a valid story entry point
func (sb *Storyboard) SetSceneAsRoot(id valueobjects.SceneID) error {
	if _, exists := sb.sceneBank[id]; !exists {
		return &UnknownSceneError{Scene: id}
	}

	change := sb.sceneGraph.AddRoot(id)
	sb.applyChange(change)
	return nil
}

// LinkScenes creates a directed transition between two scenes. Both
// endpoints must exist in the scene bank; from is checked before dest.
func (sb *Storyboard) LinkScenes(from, dest valueobjects.SceneID) error {
	if _, exists := sb.sceneBank[from]; !exists {
		return &UnknownSceneError{Scene: from}
	}
	if _, exists := sb.sceneBank[dest]; !exists {
		return &UnknownSceneError{Scene: dest}
	}

	change := sb.sceneGraph.AddEdge(from, dest)
	sb.applyChange(change)
	return nil
}

// UnlinkScenes removes the transition from -> dest without deleting either
// scene. Both endpoints must exist in the scene bank.
func (sb *Storyboard) UnlinkScenes(from, dest valueobjects.SceneID) error {
	if _, exists := sb.sceneBank[from]; !exists {
		return &UnknownSceneError{Scene: from}
	}
	if _, exists := sb.sceneBank[dest]; !exists {
		return &UnknownSceneError{Scene: dest}
	}

	change, err := sb.sceneGraph.DeleteEdge(from, dest)
	if err != nil {
		return err
	}
	sb.applyChange(change)
	return nil
}

// MoveScene reparents a scene in the graph. All three scenes must exist in
// the scene bank; graph-level preconditions (membership, a removable source
// edge, no cycle) are enforced by the graph itself.
func (sb *Storyboard) MoveScene(scene, from, dest valueobjects.SceneID) error {
	for _, id := range []valueobjects.SceneID{scene, from, dest} {
		if _, exists := sb.sceneBank[id]; !exists {
			return &UnknownSceneError{Scene: id}
		}
	}

	change, err := sb.sceneGraph.MoveScene(scene, from, dest)
	if err != nil {
		return err
	}
	sb.applyChange(change)
	return nil
}

// DeleteScene removes a scene from both the scene bank and the scene graph,
// including every edge and root reference to it. Deleting a scene that is
// not in the bank is a no-op success; the graph is never consulted.
func (sb *Storyboard) DeleteScene(id valueobjects.SceneID) error {
	if _, exists := sb.sceneBank[id]; !exists {
		return nil
	}
	delete(sb.sceneBank, id)

	change, err := sb.sceneGraph.DeleteScene(id)
	if err != nil {
		return err
	}
	sb.applyChange(change)
	return nil
}

// StandaloneScenes returns the scenes not reachable from any root: orphaned
// content that no linearized output would include
func (sb *Storyboard) StandaloneScenes() map[valueobjects.SceneID]struct{} {
	return sb.sceneGraph.UnreachableScenes()
}

// Metadata returns the storyboard's own revision metadata
func (sb *Storyboard) Metadata() *entities.Metadata {
	return &sb.metadata
}

// applyChange reacts to a structural change notification: every scene the
// change references gets its revision metadata touched, and the storyboard's
// own metadata advances. Scenes the bank no longer holds are skipped; a
// notification may reference an identifier whose content was just removed.
func (sb *Storyboard) applyChange(change events.GraphChange) {
	for _, id := range change.TouchedScenes() {
		if scene, exists := sb.sceneBank[id]; exists {
			scene.Touch()
		}
	}
	sb.metadata.Touch()
}
