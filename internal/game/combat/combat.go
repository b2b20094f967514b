// Package combat implements the single-monster fight that may precede the dungeon.
package combat

// Outcome is how a fight ended.
type Outcome int

const (
	// Victory means the monster fell.
	Victory Outcome = iota
	// Defeat means the player fell; the game must stop.
	Defeat
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Combatant is the monster side of a fight.
type Combatant struct {
	Name      string
	MaxHP     int
	CurrentHP int
}

// NewCombatant returns a Combatant at full health.
//
// Precondition: hp >= 1.
func NewCombatant(name string, hp int) *Combatant {
	return &Combatant{Name: name, MaxHP: hp, CurrentHP: hp}
}

// IsDead reports whether the combatant has no health left.
//
// Postcondition: Returns true iff CurrentHP <= 0.
func (c *Combatant) IsDead() bool {
	return c.CurrentHP <= 0
}

// ApplyDamage reduces CurrentHP by amount, flooring at zero.
// Precondition: amount must be >= 0.
// Postcondition: CurrentHP >= 0.
func (c *Combatant) ApplyDamage(amount int) {
	c.CurrentHP -= amount
	if c.CurrentHP < 0 {
		c.CurrentHP = 0
	}
}
