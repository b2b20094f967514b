// Package dungeon walks the player through the fixed room sequence.
package dungeon

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/console"
	"github.com/cory-johannsen/dungeon/internal/game/encounter"
	"github.com/cory-johannsen/dungeon/internal/game/session"
	"github.com/cory-johannsen/dungeon/internal/game/world"
)

// Report summarizes a traversal.
type Report struct {
	// Visited is the number of rooms entered and resolved.
	Visited int
	// Skipped holds the reason for every malformed room passed over.
	Skipped []error
	// Defeated is true when health reached zero and the walk stopped early.
	Defeated bool
}

// Explorer drives a session through rooms in order.
type Explorer struct {
	resolver *encounter.Resolver
	narrator *console.Narrator
	logger   *zap.Logger
}

// NewExplorer creates an Explorer.
//
// Precondition: all arguments must be non-nil.
func NewExplorer(resolver *encounter.Resolver, narrator *console.Narrator, logger *zap.Logger) *Explorer {
	return &Explorer{resolver: resolver, narrator: narrator, logger: logger}
}

// Explore visits rooms in order. For each room it grants the item first,
// resolves the challenge, then shows the inventory and status. Malformed
// rooms are reported and skipped. The walk stops early once health is zero.
//
// Precondition: s must be fully populated.
// Postcondition: Returns a Report; a non-nil error means ctx was cancelled
// or a room failed to resolve.
func (e *Explorer) Explore(ctx context.Context, s *session.State, rooms []world.Room) (Report, error) {
	var rep Report
	for i, room := range rooms {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		if err := e.resolver.Check(room); err != nil {
			rep.Skipped = append(rep.Skipped, err)
			e.narrator.Blank()
			e.narrator.Styled(console.Bad, "The way ahead is unclear; you skip a part of the dungeon.")
			e.logger.Warn("skipping room", zap.Int("index", i), zap.Error(err))
			continue
		}

		e.narrator.Blank()
		e.narrator.Styled(console.Heading, "You enter: %s", room.Description)
		if room.HasItem() {
			e.grant(s, room.Item)
		}
		if err := e.resolver.Resolve(s, room); err != nil {
			return rep, fmt.Errorf("dungeon: resolving room %q: %w", room.ID, err)
		}
		rep.Visited++

		e.narrator.Say("%s", s.Backpack.Render())
		e.narrator.Styled(console.Status, "%s", s.Player.String())

		if s.Player.IsDefeated() {
			rep.Defeated = true
			e.narrator.Styled(console.Bad, "Your strength gives out. The dungeon claims another adventurer.")
			e.logger.Info("player defeated in dungeon", zap.String("room", room.ID))
			break
		}
	}
	return rep, nil
}

func (e *Explorer) grant(s *session.State, name string) {
	it, ok := s.Backpack.Acquire(name)
	if !ok {
		e.narrator.Say("You already carry a %s.", name)
		return
	}
	e.narrator.Styled(console.Good, "You acquired a %s!", it.Name)
	e.logger.Debug("item acquired", zap.String("item", it.Name), zap.String("instance_id", it.InstanceID))
}
