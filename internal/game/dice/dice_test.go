package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dungeon/internal/game/dice"
	"github.com/cory-johannsen/dungeon/internal/testutil"
)

// TestCryptoSource_Intn_InRange verifies the postcondition:
// every value returned by Intn(6) is in [0, 6).
func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

// TestCryptoSource_Intn_PanicsOnZero verifies the precondition:
// Intn panics when called with n <= 0.
func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	src := dice.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
}

func TestSeededSource_Reproducible(t *testing.T) {
	a := dice.NewSeededSource(42)
	b := dice.NewSeededSource(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestSeededSource_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { dice.NewSeededSource(1).Intn(0) })
}

func TestRoller_Coin(t *testing.T) {
	r := dice.NewLoggedRoller(testutil.NewScriptedSource(0, 1), zap.NewNop())
	assert.True(t, r.Coin(), "0 is success")
	assert.False(t, r.Coin(), "1 is failure")
}

func TestRoller_Chance_Bounds(t *testing.T) {
	src := testutil.NewScriptedSource(0)
	r := dice.NewLoggedRoller(src, zap.NewNop())
	assert.False(t, r.Chance(0))
	assert.True(t, r.Chance(1))
	assert.Equal(t, 0, src.Calls(), "degenerate probabilities must not draw")
}

func TestRoller_Chance_Threshold(t *testing.T) {
	// 299_999 < 300_000 hits; 300_000 does not.
	r := dice.NewLoggedRoller(testutil.NewScriptedSource(299_999, 300_000), zap.NewNop())
	assert.True(t, r.Chance(0.3))
	assert.False(t, r.Chance(0.3))
}

func TestRoller_Pick(t *testing.T) {
	r := dice.NewLoggedRoller(testutil.NewScriptedSource(2), zap.NewNop())
	assert.Equal(t, 2, r.Pick(3))
}

func TestRoller_Sample_Scripted(t *testing.T) {
	// [0 1 2 3]: i=0 swap with 0+3 -> [3 1 2 0]; i=1 swap with 1+0 -> unchanged.
	r := dice.NewLoggedRoller(testutil.NewScriptedSource(3, 0), zap.NewNop())
	got, err := r.Sample(4, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, got)
}

func TestRoller_Sample_Invalid(t *testing.T) {
	r := dice.NewLoggedRoller(dice.NewCryptoSource(), zap.NewNop())
	_, err := r.Sample(2, 3)
	assert.Error(t, err)
	_, err = r.Sample(2, -1)
	assert.Error(t, err)
}

// TestRoller_Sample_Property verifies samples are distinct, in range and of length k.
func TestRoller_Sample_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(rt, "n")
		k := rapid.IntRange(0, n).Draw(rt, "k")
		seed := rapid.Int64().Draw(rt, "seed")

		r := dice.NewLoggedRoller(dice.NewSeededSource(seed), zap.NewNop())
		got, err := r.Sample(n, k)
		require.NoError(rt, err)
		assert.Len(rt, got, k)

		seen := make(map[int]bool, k)
		for _, v := range got {
			assert.GreaterOrEqual(rt, v, 0)
			assert.Less(rt, v, n)
			assert.False(rt, seen[v], "index %d repeated", v)
			seen[v] = true
		}
	})
}
