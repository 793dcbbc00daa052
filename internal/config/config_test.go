package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the config env var at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SPINNER_MEMORY_CONFIG", "")
	return home
}

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("filler", "+", "")
	fs.Bool("run", true, "")
	fs.Bool("funny", false, "")
	fs.String("catalog", "", "")
	fs.Uint64("seed", 0, "")
	fs.String("log-file", "", "")
	fs.String("config", "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadFromDefaultPath(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".config", "spinner-memory", "config.toml"), `
[game]
filler = "."
rows = 6
frame_interval = "50ms"

[log]
level = "debug"

[[keys]]
scope = "reorder"
action = "submit"
keys = ["x"]
`)

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, ".", cfg.Game.Filler)
	require.Equal(t, 6, cfg.Game.Rows)
	require.Equal(t, 10, cfg.Game.Cols)
	require.Equal(t, 50*time.Millisecond, cfg.Game.FrameInterval)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, []KeyOverride{{Scope: "reorder", Action: "submit", Keys: []string{"x"}}}, cfg.Keys)
}

func TestLoadPrecedence(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom.toml")
	writeFile(t, path, `
[game]
filler = "file"
rows = 4
hold_ticks = 7
`)
	t.Setenv("SPINNER_MEMORY_CONFIG", path)
	t.Setenv("SPINNER_MEMORY_GAME_ROWS", "5")
	t.Setenv("SPINNER_MEMORY_GAME_FILLER", "env")

	cfg, err := Load(testFlags(t, "--filler=flag", "--funny"))
	require.NoError(t, err)
	require.Equal(t, "flag", cfg.Game.Filler, "flag beats env and file")
	require.Equal(t, 5, cfg.Game.Rows, "env beats file")
	require.Equal(t, 7, cfg.Game.HoldTicks, "file beats default")
	require.True(t, cfg.Game.Funny)
	require.True(t, cfg.Game.Run, "unset flag keeps its default")
}

func TestLoadConfigFlag(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "other.toml")
	writeFile(t, path, "[game]\nrun = false\n")

	cfg, err := Load(testFlags(t, "--config", path))
	require.NoError(t, err)
	require.False(t, cfg.Game.Run)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	home := isolate(t)
	_, err := Load(testFlags(t, "--config", filepath.Join(home, "missing.toml")))
	require.ErrorContains(t, err, "read config")
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "bad.toml")
	writeFile(t, path, "[game]\nhold_ticks = 0\n")
	t.Setenv("SPINNER_MEMORY_CONFIG", path)

	_, err := Load(nil)
	require.ErrorContains(t, err, "hold_ticks")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "empty filler", mutate: func(c *Config) { c.Game.Filler = "" }},
		{name: "zero rows", mutate: func(c *Config) { c.Game.Rows = 0 }},
		{name: "zero cols", mutate: func(c *Config) { c.Game.Cols = 0 }},
		{name: "zero hold", mutate: func(c *Config) { c.Game.HoldTicks = 0 }},
		{name: "zero frame interval", mutate: func(c *Config) { c.Game.FrameInterval = 0 }},
		{name: "negative refresh", mutate: func(c *Config) { c.Game.RefreshInterval = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			require.Error(t, c.Validate())
		})
	}
	require.NoError(t, Default().Validate())
}

func TestSaveThenLoad(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "nested", "dir", "config.toml")

	want := Default()
	want.Game.Filler = "*"
	want.Game.Funny = true
	want.Game.HoldTicks = 12
	want.Game.RefreshInterval = 250 * time.Millisecond
	want.Log.File = filepath.Join(home, "game.log")
	want.Keys = []KeyOverride{{Scope: "reorder", Action: "toggle_pick", Keys: []string{"p"}}}

	require.NoError(t, Save(want, path))
	t.Setenv("SPINNER_MEMORY_CONFIG", path)

	got, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
