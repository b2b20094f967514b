// Package world provides the dungeon model: an ordered sequence of rooms and
// the challenge each one poses.
package world

import (
	"errors"
	"fmt"
)

// Challenge is the kind of encounter a room poses.
type Challenge string

// Known challenge kinds.
const (
	None    Challenge = "none"
	Trap    Challenge = "trap"
	Puzzle  Challenge = "puzzle"
	Library Challenge = "library"
)

// Valid reports whether c is a known challenge kind.
func (c Challenge) Valid() bool {
	switch c {
	case None, Trap, Puzzle, Library:
		return true
	default:
		return false
	}
}

// NeedsOutcome reports whether the challenge resolves to success or failure text.
func (c Challenge) NeedsOutcome() bool {
	return c == Trap || c == Puzzle
}

// Outcome is the narration and penalty attached to a trap or puzzle.
type Outcome struct {
	// Success is printed when the player overcomes the challenge.
	Success string
	// Failure is printed when the challenge defeats the player.
	Failure string
	// HealthDelta is applied to health on failure; normally negative.
	HealthDelta int
}

// Room is one step of the dungeon.
type Room struct {
	// ID identifies the room for logging.
	ID string
	// Description is shown when the player enters.
	Description string
	// Item is granted on entry. Empty means no item.
	Item string
	// Challenge is the encounter kind.
	Challenge Challenge
	// Outcome is required for trap and puzzle rooms, ignored otherwise.
	Outcome *Outcome
}

// HasItem reports whether entering the room grants an item.
func (r Room) HasItem() bool {
	return r.Item != ""
}

// Validate checks room invariants.
//
// Postcondition: Returns nil if the room can be resolved, or an error
// describing every violation.
func (r Room) Validate() error {
	var errs []error
	if r.Description == "" {
		errs = append(errs, errors.New("description must not be empty"))
	}
	if !r.Challenge.Valid() {
		errs = append(errs, fmt.Errorf("unknown challenge %q", r.Challenge))
	}
	if r.Challenge.NeedsOutcome() && r.Outcome == nil {
		errs = append(errs, fmt.Errorf("%s room requires an outcome", r.Challenge))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("room %q: %w", r.ID, err)
	}
	return nil
}

// Dungeon is a named, fixed, ordered list of rooms.
type Dungeon struct {
	Name  string
	Rooms []Room
}

// Problems returns the validation error of every malformed room, in order.
//
// Postcondition: len(result) == number of rooms whose Validate fails.
func (d *Dungeon) Problems() []error {
	var out []error
	for _, r := range d.Rooms {
		if err := r.Validate(); err != nil {
			out = append(out, err)
		}
	}
	return out
}
