package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sceneit/domain/core/valueobjects"
	pkgerrors "sceneit/pkg/errors"
)

func TestNewScene(t *testing.T) {
	scene := NewScene()

	require.Len(t, scene.Variants(), 1)
	assert.True(t, scene.ActiveVariantID().Equals(scene.Variants()[0].ID()),
		"the initial variant is the active one")
	assert.NotNil(t, scene.ActiveVariant())
	assert.Equal(t, 1, scene.Metadata().Version())
}

func TestSceneAddVariant(t *testing.T) {
	scene := NewScene()
	draft := NewSceneVariant()

	require.NoError(t, scene.AddVariant(draft))
	assert.Len(t, scene.Variants(), 2)
	assert.False(t, scene.ActiveVariantID().Equals(draft.ID()),
		"adding a draft must not activate it")

	err := scene.AddVariant(draft)
	assert.True(t, pkgerrors.IsConflict(err))

	err = scene.AddVariant(nil)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestSceneSetActiveVariant(t *testing.T) {
	scene := NewScene()
	draft := NewSceneVariant()
	require.NoError(t, scene.AddVariant(draft))

	require.NoError(t, scene.SetActiveVariant(draft.ID()))
	assert.True(t, scene.ActiveVariantID().Equals(draft.ID()))

	err := scene.SetActiveVariant(valueobjects.NewID[valueobjects.VariantKind]())
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestSceneTouch(t *testing.T) {
	scene := NewScene()
	before := scene.Metadata().Version()
	updatedBefore := scene.Metadata().UpdatedAt()

	scene.Touch()

	assert.Equal(t, before+1, scene.Metadata().Version())
	assert.False(t, scene.Metadata().UpdatedAt().Before(updatedBefore))
}

func TestSceneVariantElements(t *testing.T) {
	variant := NewSceneVariant()

	action, err := NewAction("  She opens   the door. ")
	require.NoError(t, err)
	assert.Equal(t, "She opens the door.", action.Text())

	variant.AppendElement(action)

	speaker := valueobjects.NewID[valueobjects.CharacterKind]()
	dialogue := NewDialogue(valueobjects.NewID[valueobjects.SceneKind](), speaker)

	line, err := NewDialogueText("Who's there?")
	require.NoError(t, err)
	paren, err := NewParenthetical("whispering")
	require.NoError(t, err)
	dialogue.AddBlock(paren)
	dialogue.AddBlock(line)

	variant.AppendElement(dialogue)

	elements := variant.Elements()
	require.Len(t, elements, 2)
	assert.IsType(t, Action{}, elements[0])
	require.IsType(t, &Dialogue{}, elements[1])
	assert.True(t, elements[1].(*Dialogue).Speaker().Equals(speaker))
	assert.Len(t, dialogue.Content(), 2)
}

func TestSceneVariantHeading(t *testing.T) {
	variant := NewSceneVariant()
	assert.Nil(t, variant.Heading())

	location, err := valueobjects.NewSceneLocation("CITY STREET")
	require.NoError(t, err)
	heading := valueobjects.NewSceneHeading(valueobjects.CameraExterior, location, valueobjects.TimeNight)

	variant.SetHeading(heading)
	require.NotNil(t, variant.Heading())
	assert.Equal(t, "EXT. CITY STREET - NIGHT", variant.Heading().String())

	variant.ClearHeading()
	assert.Nil(t, variant.Heading())
}

func TestElementValidation(t *testing.T) {
	_, err := NewAction("")
	assert.True(t, pkgerrors.IsValidation(err))

	_, err = NewDialogueText("line\x00break")
	assert.True(t, pkgerrors.IsValidation(err))

	_, err = NewParenthetical("   ")
	assert.True(t, pkgerrors.IsValidation(err))
}
