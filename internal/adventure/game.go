// Package adventure wires configuration, content and the game packages into
// one playable run.
package adventure

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/config"
	"github.com/cory-johannsen/dungeon/internal/console"
	"github.com/cory-johannsen/dungeon/internal/game/character"
	"github.com/cory-johannsen/dungeon/internal/game/clue"
	"github.com/cory-johannsen/dungeon/internal/game/combat"
	"github.com/cory-johannsen/dungeon/internal/game/dice"
	"github.com/cory-johannsen/dungeon/internal/game/dungeon"
	"github.com/cory-johannsen/dungeon/internal/game/encounter"
	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/session"
	"github.com/cory-johannsen/dungeon/internal/game/world"
)

// Outcome is how a run ended.
type Outcome int

const (
	// Completed means the player walked every room.
	Completed Outcome = iota
	// Defeated means the player fell in combat or in the dungeon.
	Defeated
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case Defeated:
		return "defeated"
	default:
		return "unknown"
	}
}

// Result is the record of a finished run.
type Result struct {
	Outcome Outcome
	// Final is the state at the end of the run.
	Final session.Snapshot
	// Artifact is the name of the artifact discovered, if any.
	Artifact string
	// Combat is the pre-dungeon fight, nil when combat is disabled.
	Combat *combat.Result
	// Report is the dungeon traversal summary; zero if the run ended in combat.
	Report dungeon.Report
}

// Game is one adventure run.
type Game struct {
	cfg      config.Config
	dungeon  *world.Dungeon
	state    *session.State
	roller   *dice.Roller
	resolver *encounter.Resolver
	explorer *dungeon.Explorer
	narrator *console.Narrator
	logger   *zap.Logger
}

// NewSource returns the random source for seed: crypto-backed when seed is
// zero, reproducible otherwise.
func NewSource(seed int64) dice.Source {
	if seed == 0 {
		return dice.NewCryptoSource()
	}
	return dice.NewSeededSource(seed)
}

// New assembles a Game.
//
// Precondition: cfg must be valid; every other argument must be non-nil.
// Postcondition: Returns a ready Game or a non-nil error.
func New(cfg config.Config, c Content, src dice.Source, prompter console.Prompter, narrator *console.Narrator, logger *zap.Logger) (*Game, error) {
	player, err := character.New(cfg.Game.StartHealth, cfg.Game.StartAttack)
	if err != nil {
		return nil, fmt.Errorf("adventure: %w", err)
	}
	for _, p := range c.Dungeon.Problems() {
		logger.Warn("dungeon contains a malformed room", zap.String("dungeon", c.Dungeon.Name), zap.Error(p))
	}

	roller := dice.NewLoggedRoller(src, logger)
	resolver := encounter.NewResolver(roller, c.Clues, prompter, narrator, logger)
	return &Game{
		cfg:      cfg,
		dungeon:  c.Dungeon,
		state:    session.New(player, inventory.NewBackpack(cfg.Game.DedupeItems), clue.NewSet(), c.Artifacts),
		roller:   roller,
		resolver: resolver,
		explorer: dungeon.NewExplorer(resolver, narrator, logger),
		narrator: narrator,
		logger:   logger,
	}, nil
}

// State exposes the live session state.
func (g *Game) State() *session.State {
	return g.state
}

// Run plays the adventure: optional fight, one artifact discovery, the
// dungeon, then the final summary. A defeat in combat ends the run at once.
//
// Postcondition: Returns a Result, or an error if ctx is cancelled or the
// game cannot continue.
func (g *Game) Run(ctx context.Context) (Result, error) {
	var res Result

	g.narrator.Styled(console.Heading, "Welcome to the %s!", g.dungeon.Name)
	g.narrator.Styled(console.Status, "%s", g.state.Player.String())

	if g.cfg.Combat.Enabled {
		monster := combat.NewCombatant(g.cfg.Combat.MonsterName, g.cfg.Combat.MonsterHealth)
		fight, err := combat.Fight(g.state.Player, monster, g.cfg.Combat.MonsterDamage, g.narrator)
		if err != nil {
			return res, fmt.Errorf("adventure: %w", err)
		}
		res.Combat = &fight
		g.logger.Info("combat finished",
			zap.String("outcome", fight.Outcome.String()),
			zap.Int("rounds", len(fight.Rounds)),
		)
		if fight.Outcome == combat.Defeat {
			res.Outcome = Defeated
			res.Final = g.state.Snapshot()
			return res, nil
		}
	}

	if name, ok := g.chooseArtifact(); ok {
		if a, found := g.resolver.DiscoverArtifact(g.state, name); found {
			res.Artifact = a.Name
		}
	}

	rep, err := g.explorer.Explore(ctx, g.state, g.dungeon.Rooms)
	res.Report = rep
	if err != nil {
		return res, fmt.Errorf("adventure: %w", err)
	}
	if rep.Defeated {
		res.Outcome = Defeated
	}

	g.summarize()
	res.Final = g.state.Snapshot()
	g.logger.Info("adventure finished",
		zap.String("outcome", res.Outcome.String()),
		zap.Int("health", res.Final.Health),
		zap.Int("items", len(res.Final.Items)),
		zap.Int("clues", len(res.Final.Clues)),
	)
	return res, nil
}

// chooseArtifact picks the artifact to look for: the configured one, or with
// probability ArtifactChance a random one still in the registry.
func (g *Game) chooseArtifact() (string, bool) {
	if g.cfg.Game.Artifact != "" {
		return g.cfg.Game.Artifact, true
	}
	names := g.state.Artifacts.Names()
	if len(names) == 0 || !g.roller.Chance(g.cfg.Game.ArtifactChance) {
		return "", false
	}
	return names[g.roller.Pick(len(names))], true
}

func (g *Game) summarize() {
	g.narrator.Blank()
	g.narrator.Styled(console.Heading, "--- Game End ---")
	g.narrator.Styled(console.Status, "%s", g.state.Player.String())
	g.narrator.Say("Final Inventory:")
	g.narrator.Say("%s", g.state.Backpack.Render())
	g.narrator.Say("Clues:")
	clues := g.state.Clues.Sorted()
	if len(clues) == 0 {
		g.narrator.Say("No clues found.")
		return
	}
	for _, c := range clues {
		g.narrator.Say("- %s", c)
	}
}
