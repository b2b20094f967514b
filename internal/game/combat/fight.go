package combat

import (
	"fmt"

	"github.com/cory-johannsen/dungeon/internal/console"
	"github.com/cory-johannsen/dungeon/internal/game/character"
)

// Round records one exchange of blows.
type Round struct {
	Number int
	// Dealt is the damage the player dealt this round.
	Dealt int
	// MonsterHP is the monster's health after the player's blow.
	MonsterHP int
	// Taken is the damage the monster dealt; zero if it fell first.
	Taken int
	// PlayerHP is the player's health at the end of the round.
	PlayerHP int
}

// Result is the full record of a fight.
type Result struct {
	Outcome Outcome
	Rounds  []Round
}

// Fight runs the turn loop: the player strikes for its attack, then a living
// monster strikes back for damage. The loop ends when either side falls.
//
// Precondition: player and monster must be non-nil; damage >= 1.
// Postcondition: player.Health >= 0; Outcome is Defeat iff player.Health == 0.
func Fight(player *character.Stats, monster *Combatant, damage int, n *console.Narrator) (Result, error) {
	if damage < 1 {
		return Result{}, fmt.Errorf("combat: monster damage must be >= 1, got %d", damage)
	}

	n.Blank()
	n.Styled(console.Heading, "A %s appears! Prepare for battle.", monster.Name)

	var res Result
	for !player.IsDefeated() {
		round := Round{Number: len(res.Rounds) + 1, Dealt: player.Attack}
		n.Say("You attack and deal %d damage!", player.Attack)
		monster.ApplyDamage(player.Attack)
		round.MonsterHP = monster.CurrentHP
		if monster.IsDead() {
			round.PlayerHP = player.Health
			res.Rounds = append(res.Rounds, round)
			n.Styled(console.Good, "You defeated the %s!", monster.Name)
			res.Outcome = Victory
			return res, nil
		}

		n.Styled(console.Bad, "The %s attacks you for %d damage!", monster.Name, damage)
		player.ApplyHealthDelta(-damage)
		round.Taken = damage
		round.PlayerHP = player.Health
		res.Rounds = append(res.Rounds, round)
		n.Styled(console.Status, "%s", player.String())
	}

	n.Styled(console.Bad, "Game Over! You have been defeated.")
	res.Outcome = Defeat
	return res, nil
}
