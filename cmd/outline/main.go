// Package main implements the outline diagnostic tool. It assembles a small
// demo storyboard, exercises the structural-editing operations, and prints
// the resulting story outline and orphaned-scene report to stdout.
package main

import (
	"errors"
	"os"

	"go.uber.org/zap"

	"sceneit/domain/core/aggregates"
	"sceneit/domain/core/entities"
	"sceneit/domain/core/valueobjects"
	"sceneit/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Fatal("outline failed", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(logger *zap.Logger) error {
	sb := aggregates.NewStoryboard()

	title, err := valueobjects.NewTitle("The Long Night")
	if err != nil {
		return err
	}
	sb.UpdateTitle(title)
	sb.UpdateTemplate(aggregates.TemplateScreenplay)

	name, err := entities.NewAuthorName("Sam Gonzalez")
	if err != nil {
		return err
	}
	sb.AddAuthor(entities.NewAuthor(name))

	opening := entities.NewScene()
	chase := entities.NewScene()
	rooftop := entities.NewScene()
	flashback := entities.NewScene()

	for _, scene := range []*entities.Scene{opening, chase, rooftop, flashback} {
		sb.AddScene(scene)
	}

	heading, err := valueobjects.ParseSceneHeading(valueobjects.HeadingInput{
		Camera:    "EXT",
		Location:  "CITY STREET",
		TimeOfDay: "NIGHT",
	})
	if err != nil {
		return err
	}
	opening.ActiveVariant().SetHeading(heading)

	if err := sb.SetSceneAsRoot(opening.ID()); err != nil {
		return err
	}
	if err := sb.LinkScenes(opening.ID(), chase.ID()); err != nil {
		return err
	}
	if err := sb.LinkScenes(chase.ID(), rooftop.ID()); err != nil {
		return err
	}

	logger.Info("storyboard assembled",
		zap.String("title", sb.Title().String()),
		zap.Int("scenes", sb.SceneCount()),
	)

	// Demonstrate cycle refusal: with the shortcut opening -> rooftop in
	// place, reparenting the rooftop under the opening is rejected and the
	// specific error names the scenes involved.
	if err := sb.LinkScenes(opening.ID(), rooftop.ID()); err != nil {
		return err
	}
	err = sb.MoveScene(rooftop.ID(), chase.ID(), opening.ID())
	var cycleErr *aggregates.CycleDetectedError
	if errors.As(err, &cycleErr) {
		logger.Warn("move rejected",
			zap.String("scene", cycleErr.Scene.String()),
			zap.String("dest", cycleErr.Dest.String()),
			zap.String("reason", "would make the scene its own descendant"),
		)
	} else if err != nil {
		return err
	}
	if err := sb.UnlinkScenes(opening.ID(), rooftop.ID()); err != nil {
		return err
	}

	sb.Graph().PrintFrom(os.Stdout, nil)

	// flashback was never linked, so the orphan report has content.
	for orphan := range sb.StandaloneScenes() {
		logger.Warn("scene unreachable from any root", zap.String("scene", orphan.String()))
	}

	return nil
}
