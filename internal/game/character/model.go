// Package character defines the player's combat-relevant stats.
package character

import "fmt"

// Stats holds the player's health and attack power.
//
// Invariant: Health >= 0 after any mutation through Stats methods.
type Stats struct {
	Health int
	Attack int
}

// ApplyHealthDelta adds delta to Health and floors the result at zero.
//
// Postcondition: Health >= 0.
func (s *Stats) ApplyHealthDelta(delta int) {
	s.Health += delta
	if s.Health < 0 {
		s.Health = 0
	}
}

// AddHealth raises Health by n.
//
// Precondition: n >= 0.
func (s *Stats) AddHealth(n int) {
	s.ApplyHealthDelta(n)
}

// AddAttack raises Attack by n.
//
// Precondition: n >= 0.
func (s *Stats) AddAttack(n int) {
	s.Attack += n
}

// IsDefeated reports whether the player has run out of health.
func (s *Stats) IsDefeated() bool {
	return s.Health <= 0
}

// String renders the status line shown after every step.
func (s Stats) String() string {
	return fmt.Sprintf("Health: %d, Attack: %d", s.Health, s.Attack)
}
