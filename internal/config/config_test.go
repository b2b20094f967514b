package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Game: GameConfig{
			StartHealth:    100,
			StartAttack:    5,
			DedupeItems:    true,
			ArtifactChance: 0.3,
		},
		Combat: CombatConfig{
			Enabled:       true,
			MonsterName:   "monster",
			MonsterHealth: 70,
			MonsterDamage: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestDefaults_AreValid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.Game.StartHealth)
	assert.Equal(t, 5, cfg.Game.StartAttack)
	assert.True(t, cfg.Game.DedupeItems)
	assert.InDelta(t, 0.3, cfg.Game.ArtifactChance, 1e-9)
	assert.False(t, cfg.Combat.Enabled)
	assert.Equal(t, 70, cfg.Combat.MonsterHealth)
	assert.Equal(t, 10, cfg.Combat.MonsterDamage)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
game:
  start_health: 80
  start_attack: 7
  dedupe_items: false
  artifact: amulet_of_vitality
  seed: 42
combat:
  enabled: true
  monster_health: 20
display:
  color: true
logging:
  level: debug
  format: console
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.Game.StartHealth)
	assert.Equal(t, 7, cfg.Game.StartAttack)
	assert.False(t, cfg.Game.DedupeItems)
	assert.Equal(t, "amulet_of_vitality", cfg.Game.Artifact)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.True(t, cfg.Combat.Enabled)
	assert.Equal(t, 20, cfg.Combat.MonsterHealth)
	assert.Equal(t, 10, cfg.Combat.MonsterDamage, "unset keys keep defaults")
	assert.True(t, cfg.Display.Color)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Game.StartHealth)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DUNGEON_GAME_START_HEALTH", "55")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 55, cfg.Game.StartHealth)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestValidateGame(t *testing.T) {
	cfg := validConfig()
	cfg.Game.StartHealth = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Game.StartAttack = -1
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Game.ArtifactChance = 1.5
	assert.Error(t, cfg.Validate())
}

func TestValidateCombat(t *testing.T) {
	cfg := validConfig()
	cfg.Combat.MonsterDamage = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Combat.MonsterName = ""
	assert.Error(t, cfg.Validate())

	// Disabled combat is not validated.
	cfg = validConfig()
	cfg.Combat = CombatConfig{}
	assert.NoError(t, cfg.Validate())
}

func TestValidateLogging(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidate_ReportsAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Game.StartHealth = 0
	cfg.Logging.Format = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.start_health")
	assert.Contains(t, err.Error(), "logging.format")
}

func TestValidateArtifactChance_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		p := rapid.Float64Range(-2, 3).Draw(rt, "chance")
		cfg := validConfig()
		cfg.Game.ArtifactChance = p
		err := cfg.Validate()
		if p >= 0 && p <= 1 {
			assert.NoError(rt, err)
		} else {
			assert.Error(rt, err)
		}
	})
}
