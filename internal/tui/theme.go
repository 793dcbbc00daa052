package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorSky      lipgloss.Color = "#89dceb"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent  = colorSky
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorCarry   = colorPeach
	colorMuted   = colorSubtext0
	colorBorder  = colorSurface1
	colorFiller  = colorOverlay0
	colorBody    = colorText
	colorInfo    = colorTeal
)

// AllPaletteColors returns every color the theme uses, for testing purposes.
func AllPaletteColors() []lipgloss.Color {
	return []lipgloss.Color{
		colorRed, colorPeach, colorGreen, colorTeal, colorSky, colorLavender,
		colorText, colorSubtext0, colorOverlay0, colorSurface1,
	}
}

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	titleStyle   = lipgloss.NewStyle().Foreground(colorBody).Bold(true)
	textStyle    = lipgloss.NewStyle().Foreground(colorBody)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	keyStyle     = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	brandStyle   = lipgloss.NewStyle().Foreground(colorAccent)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	cursorStyle  = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	carryStyle   = lipgloss.NewStyle().Foreground(colorCarry).Bold(true)
	fillerStyle  = lipgloss.NewStyle().Foreground(colorFiller)
	glyphStyle   = lipgloss.NewStyle().Foreground(colorInfo)
	borderStyle  = lipgloss.NewStyle().Foreground(colorBorder)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// Figures used across screens.
const (
	figTick     = "✔"
	figCross    = "✖"
	figPointer  = "❯"
	figRadioOn  = "◉"
	figRadioOff = "◯"
)
