package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wars.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, DefaultHitPoints, c.Stats.Defaults.HitPoints)
	assert.Equal(t, DefaultAttackPower, c.Stats.Defaults.AttackPower)
	assert.Equal(t, DefaultStartPower, c.Search.StartPower)
	assert.Equal(t, DefaultWorkers, c.Search.Workers)
	assert.Equal(t, "tea", c.Display.UI)
	assert.NoError(t, c.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
stats:
  defaults:
    hit_points: 300
  species:
    elf:
      attack_power: 15
      note: part two answer for the main example
search:
  workers: 2
display:
  speed: 3
  ui: tcell
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 300, c.Stats.Defaults.HitPoints)
	assert.Equal(t, DefaultAttackPower, c.Stats.Defaults.AttackPower)
	assert.Equal(t, 15, c.Stats.Species["elf"].AttackPower)
	assert.Equal(t, 2, c.Search.Workers)
	assert.Equal(t, DefaultStartPower, c.Search.StartPower)
	assert.Equal(t, 3, c.Display.Speed)
	assert.Equal(t, "tcell", c.Display.UI)
}

func TestLoadInvalid(t *testing.T) {
	for _, tc := range []struct {
		name string
		body string
	}{
		{"negative stat", "stats:\n  species:\n    elf:\n      hit_points: -1\n"},
		{"speed", "display:\n  speed: 9\n"},
		{"ui", "display:\n  ui: cursive\n"},
		{"search bounds", "search:\n  start_power: 10\n  max_power: 5\n"},
		{"yaml", "stats: [\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestLoadShippedConfig(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "assets", "wars.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultHitPoints, c.Stats.Defaults.HitPoints)
	assert.Equal(t, DefaultMaxPower, c.Search.MaxPower)
	assert.Equal(t, 3, c.Display.Speed)
}
