package entities

import (
	"sceneit/domain/core/valueobjects"
	pkgerrors "sceneit/pkg/errors"
	"sceneit/pkg/utils"
)

// SceneElement is one beat in a scene variant: either a block of action or a
// dialogue exchange. The marker method keeps the set closed.
type SceneElement interface {
	sceneElement()
}

// Action is a validated block of action/description text
type Action struct {
	text string
}

// NewAction creates an action beat with validation
func NewAction(input string) (Action, error) {
	text := utils.TrimInput(input)

	if text == "" {
		return Action{}, pkgerrors.NewValidationError("action text cannot be empty")
	}

	if utils.ContainsControlChars(text) {
		return Action{}, pkgerrors.NewValidationError("action text cannot contain control characters")
	}

	return Action{text: text}, nil
}

// Text returns the action text
func (a Action) Text() string {
	return a.text
}

func (a Action) sceneElement() {}

// DialogueBlock is one line inside a dialogue exchange: spoken text or a
// parenthetical direction
type DialogueBlock interface {
	dialogueBlock()
}

// DialogueText is a validated spoken line
type DialogueText struct {
	value string
}

// NewDialogueText creates a spoken line with validation
func NewDialogueText(input string) (DialogueText, error) {
	text := utils.TrimInput(input)

	if text == "" {
		return DialogueText{}, pkgerrors.NewValidationError("dialogue text cannot be empty")
	}

	if utils.ContainsControlChars(text) {
		return DialogueText{}, pkgerrors.NewValidationError("dialogue text cannot contain control characters")
	}

	return DialogueText{value: text}, nil
}

// String returns the spoken line
func (t DialogueText) String() string {
	return t.value
}

func (t DialogueText) dialogueBlock() {}

// Parenthetical is a validated actor direction, e.g. "(whispering)"
type Parenthetical struct {
	value string
}

// NewParenthetical creates a parenthetical with validation
func NewParenthetical(input string) (Parenthetical, error) {
	text := utils.TrimInput(input)

	if text == "" {
		return Parenthetical{}, pkgerrors.NewValidationError("parenthetical cannot be empty")
	}

	return Parenthetical{value: text}, nil
}

// String returns the parenthetical text
func (p Parenthetical) String() string {
	return p.value
}

func (p Parenthetical) dialogueBlock() {}

// Dialogue is a dialogue exchange spoken by one character within a scene
type Dialogue struct {
	id       valueobjects.DialogueID
	scene    valueobjects.SceneID
	speaker  valueobjects.CharacterID
	content  []DialogueBlock
	metadata Metadata
}

// NewDialogue creates an empty dialogue exchange for the given speaker
func NewDialogue(scene valueobjects.SceneID, speaker valueobjects.CharacterID) *Dialogue {
	return &Dialogue{
		id:       valueobjects.NewID[valueobjects.DialogueKind](),
		scene:    scene,
		speaker:  speaker,
		metadata: NewMetadata(),
	}
}

// ID returns the dialogue's unique identifier
func (d *Dialogue) ID() valueobjects.DialogueID {
	return d.id
}

// Scene returns the scene this dialogue belongs to
func (d *Dialogue) Scene() valueobjects.SceneID {
	return d.scene
}

// Speaker returns the speaking character's identifier
func (d *Dialogue) Speaker() valueobjects.CharacterID {
	return d.speaker
}

// Content returns the ordered dialogue blocks
func (d *Dialogue) Content() []DialogueBlock {
	content := make([]DialogueBlock, len(d.content))
	copy(content, d.content)
	return content
}

// AddBlock appends a block to the exchange
func (d *Dialogue) AddBlock(block DialogueBlock) {
	d.content = append(d.content, block)
	d.metadata.Touch()
}

// Metadata returns the dialogue's revision metadata
func (d *Dialogue) Metadata() *Metadata {
	return &d.metadata
}

func (d *Dialogue) sceneElement() {}
