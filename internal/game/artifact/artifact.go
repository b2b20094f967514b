// Package artifact models enchanted artifacts and the registry they are
// discovered from.
package artifact

import (
	"errors"
	"fmt"
)

// Effect names what an artifact does when discovered.
type Effect string

const (
	// IncreasesHealth raises the player's health by Power.
	IncreasesHealth Effect = "increases_health"
	// EnhancesAttack raises the player's attack by Power.
	EnhancesAttack Effect = "enhances_attack"
	// SolvesPuzzles lets the holder bypass puzzles.
	SolvesPuzzles Effect = "solves_puzzles"
)

// Valid reports whether e is a known effect.
func (e Effect) Valid() bool {
	switch e {
	case IncreasesHealth, EnhancesAttack, SolvesPuzzles:
		return true
	default:
		return false
	}
}

// Artifact is an enchanted item that applies its effect once.
type Artifact struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Power       int    `yaml:"power"`
	Effect      Effect `yaml:"effect"`
}

// Validate checks that the Artifact satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (a Artifact) Validate() error {
	var errs []error
	if a.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if a.Power < 0 {
		errs = append(errs, fmt.Errorf("power must be >= 0, got %d", a.Power))
	}
	if !a.Effect.Valid() {
		errs = append(errs, fmt.Errorf("effect must be one of increases_health, enhances_attack, solves_puzzles; got %q", a.Effect))
	}
	return errors.Join(errs...)
}
