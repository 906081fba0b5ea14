package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "war.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "warn"

game {
  players = 4
  shuffle = "smoosh"
  seed    = 10
}
`), 0o644))

	g := &Globals{Config: path}
	cfg, err := g.load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Game.Players)

	players := 2
	shuffle := "none"
	GameFlags{Players: &players, Shuffle: &shuffle}.apply(cfg)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 2, cfg.Game.Players)
	assert.Equal(t, "none", cfg.Game.Shuffle)
	assert.Equal(t, int64(10), cfg.Game.Seed, "unset flags keep the file value")
	assert.Equal(t, log.WarnLevel, cfg.Level())
}

func TestVerboseWinsOverLogLevel(t *testing.T) {
	g := &Globals{Config: filepath.Join(t.TempDir(), "missing.hcl"), LogLevel: "error", Verbose: true}
	cfg, err := g.load()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, cfg.Level())

	g.Verbose = false
	cfg, err = g.load()
	require.NoError(t, err)
	assert.Equal(t, log.ErrorLevel, cfg.Level())
}

func TestPlayWritesRecord(t *testing.T) {
	out := filepath.Join(t.TempDir(), "game.json")
	players := 2
	seed := int64(5)
	cmd := &PlayCmd{
		GameFlags: GameFlags{Players: &players, Seed: &seed},
		Out:       out,
	}
	g := &Globals{Config: filepath.Join(t.TempDir(), "missing.hcl"), LogLevel: "error", NoColor: true}
	require.NoError(t, cmd.Run(g))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"rounds"`)
	assert.Contains(t, string(data), `"seed": 5`)
}

func TestSignalHandlerStopCancelsContext(t *testing.T) {
	ctx, stop := setupSignalHandler(log.NewWithOptions(io.Discard, log.Options{}))
	require.NoError(t, ctx.Err())

	stop()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
