package clue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dungeon/content"
	"github.com/cory-johannsen/dungeon/internal/game/clue"
	"github.com/cory-johannsen/dungeon/internal/game/dice"
	"github.com/cory-johannsen/dungeon/internal/testutil"
)

func TestSet_Add(t *testing.T) {
	s := clue.NewSet()
	assert.True(t, s.Add("Beware the shadows."))
	assert.False(t, s.Add("Beware the shadows."), "duplicate must be rejected")
	assert.True(t, s.Has("Beware the shadows."))
	assert.Equal(t, 1, s.Len())
}

func TestSet_Sorted(t *testing.T) {
	s := clue.NewSet()
	s.Add("b")
	s.Add("a")
	s.Add("c")
	assert.Equal(t, []string{"a", "b", "c"}, s.Sorted())
	assert.Empty(t, clue.NewSet().Sorted())
}

func TestLoadPoolFromBytes_Builtin(t *testing.T) {
	p, err := clue.LoadPoolFromBytes(content.Clues)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Len())
	assert.Contains(t, p.Clues(), "The key lies with the gnome.")
}

func TestNewPool_Invalid(t *testing.T) {
	_, err := clue.NewPool(nil)
	assert.Error(t, err)
	_, err = clue.NewPool([]string{"a", ""})
	assert.Error(t, err)
	_, err = clue.NewPool([]string{"a", "a"})
	assert.Error(t, err)
}

func TestLoadPoolFromBytes_InvalidYAML(t *testing.T) {
	_, err := clue.LoadPoolFromBytes([]byte("clues: [unterminated"))
	assert.Error(t, err)
}

func TestPool_Sample_Scripted(t *testing.T) {
	p, err := clue.NewPool([]string{"a", "b", "c", "d"})
	require.NoError(t, err)
	r := dice.NewLoggedRoller(testutil.NewScriptedSource(3, 0), zap.NewNop())
	got, err := p.Sample(r, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "b"}, got)
}

func TestPool_Sample_TooMany(t *testing.T) {
	p, err := clue.NewPool([]string{"a"})
	require.NoError(t, err)
	r := dice.NewLoggedRoller(dice.NewCryptoSource(), zap.NewNop())
	_, err = p.Sample(r, 2)
	assert.Error(t, err)
}

// TestSet_Property_BoundedByPool verifies repeated library visits never grow
// the set past the pool size and never shrink it.
func TestSet_Property_BoundedByPool(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		p, err := clue.LoadPoolFromBytes(content.Clues)
		require.NoError(rt, err)
		r := dice.NewLoggedRoller(dice.NewSeededSource(rapid.Int64().Draw(rt, "seed")), zap.NewNop())
		visits := rapid.IntRange(0, 10).Draw(rt, "visits")

		s := clue.NewSet()
		prev := 0
		for i := 0; i < visits; i++ {
			drawn, err := p.Sample(r, 2)
			require.NoError(rt, err)
			for _, c := range drawn {
				s.Add(c)
			}
			assert.GreaterOrEqual(rt, s.Len(), prev)
			assert.LessOrEqual(rt, s.Len(), p.Len())
			prev = s.Len()
		}
	})
}
