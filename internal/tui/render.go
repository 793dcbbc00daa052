package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/akgondber/spinner-memory-game-cli/internal/game"
)

const (
	presentTitle = "Remember spinners occurrences sequence"
	reorderHelp  = "Sequence of spinners occurrences was shuffled.\nTry to restore a correct sequence."
)

func (m Model) View() string {
	var body string
	switch m.screen() {
	case screenIntro:
		body = renderIntro()
	case screenPresenting:
		body = m.renderPresenting()
	case screenReorder:
		body = m.renderReorder()
	default:
		body = m.renderFinished()
	}
	return clipLines(body+"\n\n"+m.renderFooter(), m.width)
}

func renderIntro() string {
	return strings.Join([]string{
		"Train your memory with " + brandStyle.Render("spinner-memory"),
		textStyle.Render("Spinners appear one by one, each for a short while, at a random position of a table."),
		textStyle.Render("Your task is to remember the order they appeared in and give every spinner its number."),
	}, "\n")
}

func (m Model) renderPresenting() string {
	return "  " + titleStyle.Render(presentTitle) + "\n" + m.renderGrid()
}

// renderGrid draws the board with the current spinner frame in its cell.
func (m Model) renderGrid() string {
	g := m.driver.Grid()
	cur, showing := m.driver.Current()
	at := m.driver.Cell()
	filler := fillerStyle.Render(m.opts.Filler)

	rows := make([][]string, g.Rows)
	for r := range rows {
		rows[r] = make([]string, g.Cols)
		for c := range rows[r] {
			rows[r][c] = filler
		}
	}
	if showing && at.Row < g.Rows && at.Col < g.Cols {
		rows[at.Row][at.Col] = glyphStyle.Render(cur.Glyph())
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		BorderRow(true).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Render()
}

func (m Model) renderReorder() string {
	var b strings.Builder
	b.WriteString(textStyle.Render(reorderHelp))
	b.WriteString("\n\n")
	b.WriteString(renderKeyHelp(m.keys.HelpBindings(m.scope()), 2))
	b.WriteString("\n")

	slots := m.round.Slots()
	rows := make([][]string, 0, len(slots))
	for _, it := range slots {
		marker := "  "
		if it.Active {
			radio := figRadioOff
			style := cursorStyle
			if it.Selected {
				radio = figRadioOn
				style = carryStyle
			}
			marker = style.Render(figPointer + radio)
		}
		rows = append(rows, []string{marker, strconv.Itoa(it.CurrentIndex + 1), glyphStyle.Render(it.Glyph()), it.Name})
	}
	b.WriteString(listTable(rows))
	return b.String()
}

func (m Model) renderFinished() string {
	var b strings.Builder
	if res := m.round.Result; res != nil {
		sym := errorStyle.Render(figCross)
		if res.Won {
			sym = successStyle.Render(figTick)
		}
		b.WriteString("     " + sym + " " + titleStyle.Render(res.String()))
		b.WriteString("\n\n")
	}

	items := m.round.Presentation()
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		mark := errorStyle.Render(figCross)
		if game.Correct(it) {
			mark = successStyle.Render(figTick)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%s %d", mark, it.CurrentIndex+1),
			glyphStyle.Render(it.Glyph()),
			it.Name,
			fmt.Sprintf("%s %d", successStyle.Render(figTick), it.OriginalIndex+1),
		})
	}
	b.WriteString(listTable(rows))
	return b.String()
}

func listTable(rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Render()
}

func (m Model) renderFooter() string {
	return renderKeyHelp(m.keys.HelpBindings(scopeGlobal), 0)
}

// renderKeyHelp lays bindings out as "key - desc" pairs, perLine to a row.
// perLine <= 0 keeps everything on one line.
func renderKeyHelp(bindings []key.Binding, perLine int) string {
	if len(bindings) == 0 {
		return ""
	}
	if perLine <= 0 {
		perLine = len(bindings)
	}
	var lines []string
	var line []string
	for i, b := range bindings {
		h := b.Help()
		line = append(line, keyStyle.Render(h.Key)+mutedStyle.Render(" - ")+textStyle.Render(h.Desc))
		if len(line) == perLine || i == len(bindings)-1 {
			lines = append(lines, strings.Join(line, "  "))
			line = nil
		}
	}
	return strings.Join(lines, "\n")
}

// clipLines truncates every line to width cells. A zero width means the
// terminal size is not known yet.
func clipLines(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if ansi.StringWidth(l) > width {
			lines[i] = ansi.Truncate(l, width, "…")
		}
	}
	return strings.Join(lines, "\n")
}
