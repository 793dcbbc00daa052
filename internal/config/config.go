package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Game GameConfig    `mapstructure:"game"`
	Log  LogConfig     `mapstructure:"log"`
	Keys []KeyOverride `mapstructure:"keys"`
}

// GameConfig holds round and board settings.
type GameConfig struct {
	Filler          string        `mapstructure:"filler"`
	Run             bool          `mapstructure:"run"`
	Funny           bool          `mapstructure:"funny"`
	Catalog         string        `mapstructure:"catalog"`
	Rows            int           `mapstructure:"rows"`
	Cols            int           `mapstructure:"cols"`
	HoldTicks       int           `mapstructure:"hold_ticks"`
	FrameInterval   time.Duration `mapstructure:"frame_interval"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	Seed            uint64        `mapstructure:"seed"`
}

// LogConfig holds logger settings. An empty File disables logging.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// KeyOverride rebinds the keys of one action in one scope.
type KeyOverride struct {
	Scope  string   `mapstructure:"scope"`
	Action string   `mapstructure:"action"`
	Keys   []string `mapstructure:"keys"`
}

const envPrefix = "SPINNER_MEMORY"

// flag name -> config key
var flagKeys = map[string]string{
	"filler":   "game.filler",
	"run":      "game.run",
	"funny":    "game.funny",
	"catalog":  "game.catalog",
	"seed":     "game.seed",
	"log-file": "log.file",
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Game: GameConfig{
			Filler:          "+",
			Run:             true,
			Rows:            10,
			Cols:            10,
			HoldTicks:       20,
			FrameInterval:   100 * time.Millisecond,
			RefreshInterval: 200 * time.Millisecond,
		},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultPath is where Load looks when neither --config nor
// SPINNER_MEMORY_CONFIG is set.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "spinner-memory", "config.toml")
}

// Load reads configuration from defaults, file, env and flags, in increasing
// precedence. Env var overrides use prefix SPINNER_MEMORY_.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("game.filler", def.Game.Filler)
	v.SetDefault("game.run", def.Game.Run)
	v.SetDefault("game.funny", def.Game.Funny)
	v.SetDefault("game.catalog", def.Game.Catalog)
	v.SetDefault("game.rows", def.Game.Rows)
	v.SetDefault("game.cols", def.Game.Cols)
	v.SetDefault("game.hold_ticks", def.Game.HoldTicks)
	v.SetDefault("game.frame_interval", def.Game.FrameInterval)
	v.SetDefault("game.refresh_interval", def.Game.RefreshInterval)
	v.SetDefault("game.seed", def.Game.Seed)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.level", def.Log.Level)

	v.SetConfigType("toml")

	cfgPath := os.Getenv(envPrefix + "_CONFIG")
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
	}
	explicit := cfgPath != ""
	if explicit {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	g := c.Game
	switch {
	case g.Filler == "":
		return fmt.Errorf("config: game.filler must not be empty")
	case g.Rows < 1 || g.Cols < 1:
		return fmt.Errorf("config: game.rows and game.cols must be positive, got %dx%d", g.Rows, g.Cols)
	case g.HoldTicks < 1:
		return fmt.Errorf("config: game.hold_ticks must be positive, got %d", g.HoldTicks)
	case g.FrameInterval <= 0 || g.RefreshInterval <= 0:
		return fmt.Errorf("config: game.frame_interval and game.refresh_interval must be positive")
	}
	return nil
}

// Save writes the provided config to path as TOML, creating the directory if
// needed.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("game.filler", cfg.Game.Filler)
	v.Set("game.run", cfg.Game.Run)
	v.Set("game.funny", cfg.Game.Funny)
	v.Set("game.catalog", cfg.Game.Catalog)
	v.Set("game.rows", cfg.Game.Rows)
	v.Set("game.cols", cfg.Game.Cols)
	v.Set("game.hold_ticks", cfg.Game.HoldTicks)
	v.Set("game.frame_interval", cfg.Game.FrameInterval.String())
	v.Set("game.refresh_interval", cfg.Game.RefreshInterval.String())
	v.Set("game.seed", cfg.Game.Seed)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.level", cfg.Log.Level)
	if len(cfg.Keys) > 0 {
		keys := make([]map[string]any, 0, len(cfg.Keys))
		for _, k := range cfg.Keys {
			keys = append(keys, map[string]any{"scope": k.Scope, "action": k.Action, "keys": k.Keys})
		}
		v.Set("keys", keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
