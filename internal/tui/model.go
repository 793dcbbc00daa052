// Package tui is the bubbletea front end of the game: it owns the timers,
// maps keys to reorder commands and renders every screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akgondber/spinner-memory-game-cli/internal/catalog"
	"github.com/akgondber/spinner-memory-game-cli/internal/game"
)

type Options struct {
	Filler          string
	Run             bool
	Grid            game.Grid
	HoldTicks       int
	FrameInterval   time.Duration
	RefreshInterval time.Duration
}

func DefaultOptions() Options {
	return Options{
		Filler:          "+",
		Run:             true,
		Grid:            game.Grid{Rows: 10, Cols: 10},
		HoldTicks:       20,
		FrameInterval:   100 * time.Millisecond,
		RefreshInterval: 200 * time.Millisecond,
	}
}

type screen int

const (
	screenIntro screen = iota
	screenPresenting
	screenReorder
	screenFinished
)

type Model struct {
	opts     Options
	catalog  catalog.Catalog
	rnd      game.Rand
	log      *zap.Logger
	keys     *KeyRegistry
	round    game.Round
	driver   game.Driver
	started  bool
	quitting bool
	width    int
	height   int
}

// New builds the model. With opts.Run set the first round is created right
// away and Init starts presenting it.
func New(cat catalog.Catalog, opts Options, rnd game.Rand, keys *KeyRegistry, log *zap.Logger) Model {
	if rnd == nil {
		rnd = game.SystemRand()
	}
	if keys == nil {
		keys = NewKeyRegistry()
	}
	if log == nil {
		log = zap.NewNop()
	}
	def := DefaultOptions()
	if opts.Filler == "" {
		opts.Filler = def.Filler
	}
	if opts.Grid.Rows < 1 || opts.Grid.Cols < 1 {
		opts.Grid = def.Grid
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = def.FrameInterval
	}
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = def.RefreshInterval
	}

	m := Model{opts: opts, catalog: cat, rnd: rnd, log: log, keys: keys}
	if opts.Run {
		m, _ = m.startRound()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.screen() == screenPresenting {
		return presentTickCmd(m.round.ID, m.opts.FrameInterval)
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case presentTickMsg:
		return m.handlePresentTick(msg)
	case refreshTickMsg:
		return m.handleRefreshTick(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) screen() screen {
	if !m.started {
		return screenIntro
	}
	switch m.round.Phase {
	case game.PhasePresenting:
		return screenPresenting
	case game.PhaseAwaitingReorder:
		return screenReorder
	default:
		return screenFinished
	}
}

// scope picks the key scope for the current screen. Reordering has two
// scopes so the help text follows the pick state.
func (m Model) scope() string {
	switch m.screen() {
	case screenIntro:
		return scopeIntro
	case screenPresenting:
		return scopePresenting
	case screenReorder:
		if m.round.HasSelected() {
			return scopeCarry
		}
		return scopeReorder
	default:
		return scopeFinished
	}
}

func (m Model) stale(round uuid.UUID) bool {
	return m.quitting || !m.started || round != m.round.ID
}

func (m Model) handlePresentTick(msg presentTickMsg) (tea.Model, tea.Cmd) {
	if m.stale(msg.round) || m.round.Phase != game.PhasePresenting {
		return m, nil
	}
	if !m.driver.Step() {
		return m, presentTickCmd(m.round.ID, m.opts.FrameInterval)
	}
	m.round = m.driver.Round()
	m.log.Info("round presented",
		zap.String("round", m.round.ID.String()),
		zap.Stringer("phase", m.round.Phase),
		zap.Int("items", m.round.Len()),
	)
	return m, refreshTickCmd(m.round.ID, m.opts.RefreshInterval)
}

func (m Model) handleRefreshTick(msg refreshTickMsg) (tea.Model, tea.Cmd) {
	if m.stale(msg.round) || m.round.Phase == game.PhasePresenting {
		return m, nil
	}
	m.round = m.round.Animate()
	return m, refreshTickCmd(m.round.ID, m.opts.RefreshInterval)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name := normalizeKeyName(msg.String())
	b := m.keys.Lookup(name, m.scope())
	if b == nil {
		return m, nil
	}

	switch b.Action {
	case actionQuit:
		m.quitting = true
		m.log.Info("quit", zap.String("round", m.round.ID.String()))
		return m, tea.Quit
	case actionNewRound:
		return m.startRound()
	case actionPrev:
		return m.apply(game.Command{Type: game.CmdMovePrev})
	case actionNext:
		return m.apply(game.Command{Type: game.CmdMoveNext})
	case actionTogglePick:
		return m.apply(game.Command{Type: game.CmdTogglePick})
	case actionSubmit:
		return m.apply(game.Command{Type: game.CmdSubmit})
	case actionJump:
		slot, ok := b.jumpSlot(name)
		if !ok {
			return m, nil
		}
		return m.apply(game.Command{Type: game.CmdJump, Slot: slot})
	}
	return m, nil
}

func (m Model) startRound() (Model, tea.Cmd) {
	m.round = game.NewRound(m.catalog.Spinners, m.rnd)
	m.driver = game.NewDriver(m.round, m.opts.Grid, m.opts.HoldTicks, m.rnd)
	m.started = true
	m.log.Info("round started",
		zap.String("round", m.round.ID.String()),
		zap.String("catalog", m.catalog.Name),
		zap.Int("items", m.round.Len()),
	)
	return m, presentTickCmd(m.round.ID, m.opts.FrameInterval)
}

// apply runs a reorder command. A rejected command leaves the model as it
// was; the reason only reaches the log.
func (m Model) apply(cmd game.Command) (Model, tea.Cmd) {
	events, next, err := game.Apply(m.round, cmd)
	if err != nil {
		m.log.Debug("command ignored",
			zap.String("round", m.round.ID.String()),
			zap.String("command", string(cmd.Type)),
			zap.Error(err),
		)
		return m, nil
	}
	m.round = next
	for _, ev := range events {
		fields := []zap.Field{
			zap.String("round", m.round.ID.String()),
			zap.String("event", string(ev.Type)),
			zap.String("item", ev.Item),
		}
		switch ev.Type {
		case game.EvtSubmitted:
			fields = append(fields, zap.Int("matched", ev.Result.Matched), zap.Int("total", ev.Result.Total), zap.Bool("won", ev.Result.Won))
			m.log.Info("round submitted", fields...)
		default:
			fields = append(fields, zap.Int("from", ev.From), zap.Int("to", ev.To), zap.Bool("selected", ev.Selected))
			m.log.Debug("reorder", fields...)
		}
	}
	return m, nil
}
