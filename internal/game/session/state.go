// Package session holds the mutable state of one adventure run.
package session

import (
	"github.com/cory-johannsen/dungeon/internal/game/artifact"
	"github.com/cory-johannsen/dungeon/internal/game/character"
	"github.com/cory-johannsen/dungeon/internal/game/clue"
	"github.com/cory-johannsen/dungeon/internal/game/inventory"
)

// State is everything a run mutates. It is owned by a single goroutine and
// passed by pointer to every resolver call.
type State struct {
	// Player holds health and attack.
	Player *character.Stats
	// Backpack is the player's inventory.
	Backpack *inventory.Backpack
	// Clues is the set of discovered clues.
	Clues *clue.Set
	// Artifacts is the registry of artifacts not yet discovered.
	Artifacts *artifact.Registry
}

// New assembles a State from its parts.
//
// Precondition: all arguments must be non-nil.
func New(player *character.Stats, backpack *inventory.Backpack, clues *clue.Set, artifacts *artifact.Registry) *State {
	return &State{
		Player:    player,
		Backpack:  backpack,
		Clues:     clues,
		Artifacts: artifacts,
	}
}

// Snapshot is a read-only copy of a State for reporting.
type Snapshot struct {
	Health    int
	Attack    int
	Items     []string
	Clues     []string
	Artifacts []string
}

// Snapshot copies the current state.
//
// Postcondition: mutating the result does not affect s.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Health:    s.Player.Health,
		Attack:    s.Player.Attack,
		Items:     s.Backpack.Names(),
		Clues:     s.Clues.Sorted(),
		Artifacts: s.Artifacts.Names(),
	}
}
