package character

import (
	"errors"
	"fmt"
)

// New builds the starting Stats for a run.
//
// Precondition: health >= 1, attack >= 0.
// Postcondition: Returns a non-nil Stats or an error describing every violation.
func New(health, attack int) (*Stats, error) {
	var errs []error
	if health < 1 {
		errs = append(errs, fmt.Errorf("starting health must be >= 1, got %d", health))
	}
	if attack < 0 {
		errs = append(errs, fmt.Errorf("starting attack must be >= 0, got %d", attack))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("character: %w", err)
	}
	return &Stats{Health: health, Attack: attack}, nil
}
