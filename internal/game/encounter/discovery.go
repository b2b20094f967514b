package encounter

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/console"
	"github.com/cory-johannsen/dungeon/internal/game/artifact"
	"github.com/cory-johannsen/dungeon/internal/game/session"
)

// DiscoverArtifact looks for the artifact named name. If it is still in the
// registry its effect is applied to s and it is removed for good.
//
// Postcondition: ok is true iff the artifact was present; a second call with
// the same name reports false and leaves s unchanged.
func (r *Resolver) DiscoverArtifact(s *session.State, name string) (artifact.Artifact, bool) {
	a, ok := s.Artifacts.Discover(name)
	if !ok {
		r.narrator.Say("You found nothing of interest.")
		return artifact.Artifact{}, false
	}

	r.narrator.Styled(console.Good, "You found the %s! %s", a.Name, a.Description)
	switch a.Effect {
	case artifact.IncreasesHealth:
		s.Player.AddHealth(a.Power)
		r.narrator.Styled(console.Good, "Your health increased by %d!", a.Power)
	case artifact.EnhancesAttack:
		s.Player.AddAttack(a.Power)
		r.narrator.Styled(console.Good, "Your attack increased by %d!", a.Power)
	case artifact.SolvesPuzzles:
		s.Backpack.Acquire(a.Name)
		r.narrator.Styled(console.Good, "You stow the %s; puzzles will no longer stand in your way.", a.Name)
	}
	r.logger.Info("artifact discovered",
		zap.String("artifact", a.Name),
		zap.String("effect", string(a.Effect)),
		zap.Int("power", a.Power),
	)
	return a, true
}
