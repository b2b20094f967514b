package adventure

import (
	"fmt"

	"github.com/cory-johannsen/dungeon/content"
	"github.com/cory-johannsen/dungeon/internal/config"
	"github.com/cory-johannsen/dungeon/internal/game/artifact"
	"github.com/cory-johannsen/dungeon/internal/game/clue"
	"github.com/cory-johannsen/dungeon/internal/game/world"
)

// Content is the static data one run is built from.
type Content struct {
	Dungeon   *world.Dungeon
	Artifacts *artifact.Registry
	Clues     *clue.Pool
}

// LoadContent loads the dungeon, artifacts and clue pool, preferring the
// configured files and falling back to the built-in content.
//
// Postcondition: Returns fully populated Content or a non-nil error.
func LoadContent(cc config.ContentConfig) (Content, error) {
	var (
		c   Content
		err error
	)

	if cc.Dungeon != "" {
		c.Dungeon, err = world.LoadDungeonFromFile(cc.Dungeon)
	} else {
		c.Dungeon, err = world.LoadDungeonFromBytes(content.Dungeon)
	}
	if err != nil {
		return Content{}, fmt.Errorf("loading dungeon: %w", err)
	}

	if cc.Artifacts != "" {
		c.Artifacts, err = artifact.LoadFromFile(cc.Artifacts)
	} else {
		c.Artifacts, err = artifact.LoadFromBytes(content.Artifacts)
	}
	if err != nil {
		return Content{}, fmt.Errorf("loading artifacts: %w", err)
	}

	if cc.Clues != "" {
		c.Clues, err = clue.LoadPoolFromFile(cc.Clues)
	} else {
		c.Clues, err = clue.LoadPoolFromBytes(content.Clues)
	}
	if err != nil {
		return Content{}, fmt.Errorf("loading clues: %w", err)
	}

	return c, nil
}
