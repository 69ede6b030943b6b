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
	path := filepath.Join(t.TempDir(), "slipstep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, 9.8, cfg.Physics.Gravity)
	assert.Equal(t, -300.0, cfg.Physics.JumpImpulse)
	assert.Equal(t, 100.0, cfg.Player.SpeedX)
	assert.Equal(t, 100.0, cfg.Player.SpeedY)
	assert.Equal(t, 1.5, cfg.Surface.IceMultiplier)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
physics:
  gravity: 20
player:
  speed_x: 150
server:
  tick_rate: 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20.0, cfg.Physics.Gravity)
	assert.Equal(t, -300.0, cfg.Physics.JumpImpulse)
	assert.Equal(t, 150.0, cfg.Player.SpeedX)
	assert.Equal(t, 100.0, cfg.Player.SpeedY)
	assert.Equal(t, 30, cfg.Server.TickRate)
}

func TestLoadEmptyPathUsesEnv(t *testing.T) {
	path := writeConfig(t, "surface:\n  ice_multiplier: 2\n")
	t.Setenv(EnvPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Surface.IceMultiplier)
}

func TestLoadEmptyPathNoEnv(t *testing.T) {
	t.Setenv(EnvPath, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"negative speed":     "player:\n  speed_x: -1\n",
		"zero tick rate":     "server:\n  tick_rate: 0\n",
		"negative max delta": "physics:\n  max_delta_time: -0.5\n",
		"no collision box":   "player:\n  collision_width: 0\n",
		"negative ice":       "surface:\n  ice_multiplier: -2\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "physics: [unterminated"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}
