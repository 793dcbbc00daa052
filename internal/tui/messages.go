package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

// presentTickMsg drives the round driver. A tick whose round is no longer
// current is dropped, which ends its chain.
type presentTickMsg struct {
	round uuid.UUID
}

// refreshTickMsg animates the list once presentation is over.
type refreshTickMsg struct {
	round uuid.UUID
}

func presentTickCmd(round uuid.UUID, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return presentTickMsg{round: round}
	})
}

func refreshTickCmd(round uuid.UUID, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return refreshTickMsg{round: round}
	})
}
