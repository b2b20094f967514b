package artifact_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dungeon/content"
	"github.com/cory-johannsen/dungeon/internal/game/artifact"
)

func builtin(t *testing.T) *artifact.Registry {
	t.Helper()
	reg, err := artifact.LoadFromBytes(content.Artifacts)
	require.NoError(t, err)
	return reg
}

func TestLoadFromBytes_Builtin(t *testing.T) {
	reg := builtin(t)
	assert.Equal(t, []string{"amulet_of_vitality", "ring_of_strength", "staff_of_wisdom"}, reg.Names())

	a, ok := reg.Lookup("amulet_of_vitality")
	require.True(t, ok)
	assert.Equal(t, 15, a.Power)
	assert.Equal(t, artifact.IncreasesHealth, a.Effect)
}

func TestLoadFromBytes_InvalidYAML(t *testing.T) {
	_, err := artifact.LoadFromBytes([]byte("artifacts: [not valid"))
	assert.Error(t, err)
}

func TestLoadFromBytes_UnknownEffect(t *testing.T) {
	_, err := artifact.LoadFromBytes([]byte(`
artifacts:
  - name: cursed_idol
    power: 3
    effect: curses_everyone
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cursed_idol")
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifacts.yaml")
	require.NoError(t, os.WriteFile(path, content.Artifacts, 0644))
	reg, err := artifact.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, reg.Len())

	_, err = artifact.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewRegistry_Duplicate(t *testing.T) {
	a := artifact.Artifact{Name: "ring", Power: 1, Effect: artifact.EnhancesAttack}
	_, err := artifact.NewRegistry([]artifact.Artifact{a, a})
	assert.Error(t, err)
}

func TestArtifact_Validate(t *testing.T) {
	assert.NoError(t, artifact.Artifact{Name: "x", Power: 0, Effect: artifact.SolvesPuzzles}.Validate())
	assert.Error(t, artifact.Artifact{Name: "", Power: 1, Effect: artifact.SolvesPuzzles}.Validate())
	assert.Error(t, artifact.Artifact{Name: "x", Power: -1, Effect: artifact.SolvesPuzzles}.Validate())
}

func TestRegistry_DiscoverAtMostOnce(t *testing.T) {
	reg := builtin(t)
	a, ok := reg.Discover("amulet_of_vitality")
	require.True(t, ok)
	assert.Equal(t, "amulet_of_vitality", a.Name)
	assert.Equal(t, 2, reg.Len())

	_, ok = reg.Discover("amulet_of_vitality")
	assert.False(t, ok)
	_, ok = reg.Lookup("amulet_of_vitality")
	assert.False(t, ok)
}

func TestRegistry_DiscoverUnknown(t *testing.T) {
	reg := builtin(t)
	_, ok := reg.Discover("crown_of_nothing")
	assert.False(t, ok)
	assert.Equal(t, 3, reg.Len())
}

// TestRegistry_Property_OnlyShrinks verifies the registry never grows and each
// name is discovered at most once.
func TestRegistry_Property_OnlyShrinks(t *testing.T) {
	names := []string{"amulet_of_vitality", "ring_of_strength", "staff_of_wisdom", "nothing"}
	rapid.Check(t, func(rt *rapid.T) {
		reg, err := artifact.LoadFromBytes(content.Artifacts)
		require.NoError(rt, err)
		attempts := rapid.SliceOf(rapid.SampledFrom(names)).Draw(rt, "attempts")

		found := make(map[string]int)
		prev := reg.Len()
		for _, n := range attempts {
			if _, ok := reg.Discover(n); ok {
				found[n]++
			}
			assert.LessOrEqual(rt, reg.Len(), prev)
			prev = reg.Len()
		}
		for n, c := range found {
			assert.Equal(rt, 1, c, "artifact %q discovered more than once", n)
		}
		assert.Equal(rt, 3-len(found), reg.Len())
	})
}
