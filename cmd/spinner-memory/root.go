package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/akgondber/spinner-memory-game-cli/internal/catalog"
	"github.com/akgondber/spinner-memory-game-cli/internal/config"
	"github.com/akgondber/spinner-memory-game-cli/internal/game"
	"github.com/akgondber/spinner-memory-game-cli/internal/logging"
	"github.com/akgondber/spinner-memory-game-cli/internal/tui"
)

const version = "1.0.0"

func newRootCommand() *cobra.Command {
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "spinner-memory",
		Short: "Train your memory with terminal spinners",
		Long: `Spinners appear one by one at random cells of a grid. Afterwards the
list is shuffled and you restore the order they appeared in.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, logger, err := buildModel(cmd.Flags())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if _, err := tea.NewProgram(m, tea.WithOutput(cmd.OutOrStdout())).Run(); err != nil {
				logger.Error("program exited", zap.Error(err))
				return fmt.Errorf("run game: %w", err)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.String("filler", def.Game.Filler, "glyph for empty grid cells")
	f.Bool("run", def.Game.Run, "start the first round immediately")
	f.Bool("funny", def.Game.Funny, "play with the funny spinners")
	f.String("catalog", def.Game.Catalog, "path to a spinner catalog TOML file")
	f.Uint64("seed", def.Game.Seed, "random seed, 0 picks one at random")
	f.String("log-file", def.Log.File, "write logs to this file")
	cmd.PersistentFlags().String("config", "", "config file (default "+config.DefaultPath()+")")

	cmd.AddCommand(newConfigCommand(), newCatalogCommand())
	return cmd
}

// buildModel resolves config, catalog and key bindings into a ready model.
func buildModel(flags *pflag.FlagSet) (tui.Model, *zap.Logger, error) {
	cfg, err := config.Load(flags)
	if err != nil {
		return tui.Model{}, nil, err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return tui.Model{}, nil, err
	}

	cat, err := selectCatalog(cfg.Game)
	if err != nil {
		return tui.Model{}, nil, err
	}

	keys := tui.NewKeyRegistry()
	if err := keys.ApplyOverrides(cfg.Keys); err != nil {
		return tui.Model{}, nil, err
	}

	rnd := game.SystemRand()
	if cfg.Game.Seed != 0 {
		rnd = game.NewRand(cfg.Game.Seed)
	}

	logger.Info("starting",
		zap.String("version", version),
		zap.String("catalog", cat.Name),
		zap.Int("spinners", len(cat.Spinners)),
		zap.Uint64("seed", cfg.Game.Seed),
	)

	opts := tui.Options{
		Filler:          cfg.Game.Filler,
		Run:             cfg.Game.Run,
		Grid:            game.Grid{Rows: cfg.Game.Rows, Cols: cfg.Game.Cols},
		HoldTicks:       cfg.Game.HoldTicks,
		FrameInterval:   cfg.Game.FrameInterval,
		RefreshInterval: cfg.Game.RefreshInterval,
	}
	return tui.New(cat, opts, rnd, keys, logger), logger, nil
}

func selectCatalog(g config.GameConfig) (catalog.Catalog, error) {
	cats, err := catalog.Load(g.Catalog)
	if err != nil {
		return catalog.Catalog{}, err
	}
	name := catalog.Preparatory
	if g.Funny {
		name = catalog.Funny
	}
	return catalog.Find(cats, name)
}

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a config file with the default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			if len(args) == 1 {
				path = args[0]
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				} else if !errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("stat config: %w", err)
				}
			}
			if err := config.Save(config.Default(), path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}

func newCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect spinner catalogs",
	}

	var path string
	export := &cobra.Command{
		Use:   "export",
		Short: "Print the spinner catalogs as TOML",
		Long:  "Print the built-in catalogs, or the ones in --catalog, as TOML. The output is a valid --catalog file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats, err := catalog.Load(path)
			if err != nil {
				return err
			}
			return catalog.Write(cmd.OutOrStdout(), cats)
		},
	}
	export.Flags().StringVar(&path, "catalog", "", "catalog file to export instead of the built-ins")

	cmd.AddCommand(export)
	return cmd
}
