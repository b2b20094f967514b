// Package encounter resolves the challenge each room poses against the
// player's state.
package encounter

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/console"
	"github.com/cory-johannsen/dungeon/internal/game/clue"
	"github.com/cory-johannsen/dungeon/internal/game/dice"
	"github.com/cory-johannsen/dungeon/internal/game/session"
	"github.com/cory-johannsen/dungeon/internal/game/world"
)

// StaffOfWisdom is the item that lets its holder bypass puzzles.
const StaffOfWisdom = "staff_of_wisdom"

// CluesPerVisit is how many distinct clues a library reveals.
const CluesPerVisit = 2

// ErrMalformedRoom marks a room that cannot be resolved and was skipped.
var ErrMalformedRoom = errors.New("malformed room")

// Resolver applies room challenges to a session.State.
type Resolver struct {
	roller   *dice.Roller
	pool     *clue.Pool
	prompter console.Prompter
	narrator *console.Narrator
	logger   *zap.Logger
}

// NewResolver creates a Resolver.
//
// Precondition: all arguments must be non-nil.
func NewResolver(roller *dice.Roller, pool *clue.Pool, prompter console.Prompter, narrator *console.Narrator, logger *zap.Logger) *Resolver {
	return &Resolver{
		roller:   roller,
		pool:     pool,
		prompter: prompter,
		narrator: narrator,
		logger:   logger,
	}
}

// Check reports whether room can be resolved.
//
// Postcondition: Returns nil, or an error wrapping ErrMalformedRoom.
func (r *Resolver) Check(room world.Room) error {
	if err := room.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRoom, err)
	}
	return nil
}

// Resolve applies room's challenge to s. Item grants are the caller's job.
//
// Precondition: s must be fully populated.
// Postcondition: s.Player.Health >= 0. A malformed room leaves s untouched
// and returns an error wrapping ErrMalformedRoom.
func (r *Resolver) Resolve(s *session.State, room world.Room) error {
	if err := r.Check(room); err != nil {
		return err
	}
	r.logger.Debug("resolving room",
		zap.String("room", room.ID),
		zap.String("challenge", string(room.Challenge)),
	)

	switch room.Challenge {
	case world.Trap:
		r.resolveTrap(s, *room.Outcome)
	case world.Puzzle:
		r.resolvePuzzle(s, *room.Outcome)
	case world.Library:
		return r.resolveLibrary(s, room)
	}
	return nil
}

func (r *Resolver) resolveTrap(s *session.State, out world.Outcome) {
	r.narrator.Say("You see a potential trap!")
	disarm, answer, err := console.TrapChoice.Ask(r.prompter)
	if err != nil {
		r.noAnswer(answer, err)
	}
	if disarm && r.roller.Coin() {
		r.narrator.Styled(console.Good, "%s", out.Success)
		return
	}
	r.narrator.Styled(console.Bad, "%s", out.Failure)
	r.penalize(s, out.HealthDelta)
}

// resolvePuzzle lets the staff holder pass freely. Declining a puzzle skips
// it without penalty; only a failed attempt costs health.
func (r *Resolver) resolvePuzzle(s *session.State, out world.Outcome) {
	r.narrator.Say("You encounter a puzzle!")
	if s.Backpack.Has(StaffOfWisdom) {
		r.narrator.Styled(console.Good, "Using the Staff of Wisdom, you bypass the puzzle!")
		return
	}
	attempt, answer, err := console.PuzzleChoice.Ask(r.prompter)
	if err != nil {
		r.noAnswer(answer, err)
	}
	if !attempt {
		r.narrator.Say("You leave the puzzle untouched and move on.")
		return
	}
	if r.roller.Coin() {
		r.narrator.Styled(console.Good, "%s", out.Success)
		return
	}
	r.narrator.Styled(console.Bad, "%s", out.Failure)
	r.penalize(s, out.HealthDelta)
}

func (r *Resolver) resolveLibrary(s *session.State, room world.Room) error {
	r.narrator.Say("You explore ancient texts in the %s.", room.Description)
	drawn, err := r.pool.Sample(r.roller, min(CluesPerVisit, r.pool.Len()))
	if err != nil {
		return fmt.Errorf("encounter: library %q: %w", room.ID, err)
	}
	for _, c := range drawn {
		if s.Clues.Add(c) {
			r.narrator.Styled(console.Good, "You discovered a new clue: %s", c)
		} else {
			r.narrator.Say("You already know this clue.")
		}
	}
	if s.Backpack.Has(StaffOfWisdom) {
		r.narrator.Styled(console.Good, "With the Staff of Wisdom, you decipher the clues and bypass future puzzles!")
	}
	return nil
}

// penalize applies delta to health, clamped at zero.
func (r *Resolver) penalize(s *session.State, delta int) {
	before := s.Player.Health
	s.Player.ApplyHealthDelta(delta)
	r.logger.Debug("health changed",
		zap.Int("before", before),
		zap.Int("delta", delta),
		zap.Int("after", s.Player.Health),
	)
}

func (r *Resolver) noAnswer(fallback string, err error) {
	r.narrator.Blank()
	r.narrator.Say("No answer given; defaulting to %q.", fallback)
	r.logger.Debug("prompt fell back to default", zap.String("default", fallback), zap.Error(err))
}
