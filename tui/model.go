// Package tui provides the terminal user interface for LED Board.
// This file contains the bubbletea model driving the board.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atran/led-board/common"
	"github.com/atran/led-board/config"
	"github.com/atran/led-board/led"
)

// inputKind identifies what the text prompt is collecting.
type inputKind int

const (
	inputNone inputKind = iota
	inputColor
	inputBlink
	inputTimer
	inputAllColor
	inputAllBlink
	inputAllTimer
)

// tickMsg carries the sweep time so tests can drive the clock.
type tickMsg struct {
	t time.Time
}

// Model is the bubbletea model for the LED board.
type Model struct {
	board   *led.Board
	cfg     *config.Config
	keys    keyMap
	help    help.Model
	input   textinput.Model
	asking  inputKind
	cursor  int
	status  string
	warning string
	ticking bool
	width   int
}

// Run starts the terminal frontend on the given board.
func Run(board *led.Board, cfg *config.Config) error {
	program := tea.NewProgram(NewModel(board, cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// NewModel creates the board model.
func NewModel(board *led.Board, cfg *config.Config) Model {
	input := textinput.New()
	input.CharLimit = 16
	input.Width = 20

	return Model{
		board:  board,
		cfg:    cfg,
		keys:   defaultKeyMap(),
		help:   help.New(),
		input:  input,
		status: "Ready",
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// tick schedules the next deadline sweep.
func tick() tea.Cmd {
	return tea.Tick(common.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg{t: t}
	})
}

// ensureTick starts the sweep loop if deadlines are pending.
func (m *Model) ensureTick() tea.Cmd {
	if m.ticking || !m.board.HasPendingTimers() {
		return nil
	}
	m.ticking = true
	return tick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.board.Advance(msg.t)
		if !m.board.HasPendingTimers() {
			m.ticking = false
			return m, nil
		}
		return m, tick()

	case tea.KeyMsg:
		if m.asking != inputNone {
			return m.updatePrompt(msg)
		}
		return m.updateBoard(msg)
	}

	return m, nil
}

// updateBoard handles keys in the normal board view.
func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.warning = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.board.Columns())
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.board.Columns())
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Add):
		l := m.board.Add()
		m.cursor = m.board.Len() - 1
		m.status = fmt.Sprintf("LED #%d added", l.ID())

	case key.Matches(msg, m.keys.Toggle):
		if l, ok := m.selected(); ok {
			if err := m.board.Toggle(l.ID()); err != nil {
				m.warning = err.Error()
			}
		}

	case key.Matches(msg, m.keys.Remove):
		if l, ok := m.selected(); ok {
			id := l.ID()
			if err := m.board.Remove(id); err != nil {
				m.warning = err.Error()
			} else {
				m.status = fmt.Sprintf("LED #%d removed", id)
				m.clampCursor()
			}
		}

	case key.Matches(msg, m.keys.RemoveAll):
		if err := m.board.RemoveAll(); err != nil {
			m.warning = err.Error()
		} else {
			m.status = "All LEDs removed"
			m.cursor = 0
		}

	case key.Matches(msg, m.keys.AllOn):
		if err := m.board.TurnAllOn(); err != nil {
			m.warning = err.Error()
		} else {
			m.status = "All LEDs turned on"
		}

	case key.Matches(msg, m.keys.AllOff):
		if err := m.board.TurnAllOff(); err != nil {
			m.warning = err.Error()
		} else {
			m.status = "All LEDs turned off"
		}

	case key.Matches(msg, m.keys.Color):
		if l, ok := m.selected(); ok {
			if !l.On() {
				m.warning = "LED must be on to change its color"
				break
			}
			return m.openPrompt(inputColor, "Hex color (#RRGGBB): ", m.cfg.DefaultColor)
		}

	case key.Matches(msg, m.keys.Blink):
		if l, ok := m.selected(); ok {
			if !l.On() {
				m.warning = "LED must be on to blink"
				break
			}
			initial := strconv.FormatInt(l.BlinkInterval().Milliseconds(), 10)
			return m.openPrompt(inputBlink, "Blink interval in ms (0 disables): ", initial)
		}

	case key.Matches(msg, m.keys.Timer):
		if l, ok := m.selected(); ok {
			if !l.On() {
				m.warning = "LED must be on to schedule auto-off"
				break
			}
			return m.openPrompt(inputTimer, "Auto-off in seconds: ", "10")
		}

	case key.Matches(msg, m.keys.AllColor):
		if err := m.checkAnyLit(); err != nil {
			m.warning = err.Error()
			break
		}
		return m.openPrompt(inputAllColor, "Hex color for all lit LEDs (#RRGGBB): ", m.cfg.DefaultColor)

	case key.Matches(msg, m.keys.AllBlink):
		if err := m.checkAnyLit(); err != nil {
			m.warning = err.Error()
			break
		}
		return m.openPrompt(inputAllBlink, "Blink interval for all lit LEDs in ms: ", "500")

	case key.Matches(msg, m.keys.AllTimer):
		if err := m.checkAnyLit(); err != nil {
			m.warning = err.Error()
			break
		}
		return m.openPrompt(inputAllTimer, "Auto-off for all lit LEDs in seconds: ", "10")
	}

	return m, m.ensureTick()
}

// openPrompt switches into text input mode.
func (m Model) openPrompt(kind inputKind, prompt, initial string) (tea.Model, tea.Cmd) {
	m.asking = kind
	m.input.Prompt = prompt
	m.input.SetValue(initial)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

// updatePrompt handles keys while the text prompt is open.
func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.asking = inputNone
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		kind := m.asking
		value := strings.TrimSpace(m.input.Value())
		m.asking = inputNone
		m.input.Blur()
		m.applyPrompt(kind, value)
		return m, m.ensureTick()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// applyPrompt commits a completed prompt to the board.
func (m *Model) applyPrompt(kind inputKind, value string) {
	m.warning = ""

	switch kind {
	case inputColor, inputAllColor:
		c, err := led.ParseHex(value)
		if err != nil {
			m.warning = err.Error()
			return
		}
		if kind == inputColor {
			l, ok := m.selected()
			if !ok {
				return
			}
			if err := m.board.SetColor(l.ID(), c); err != nil {
				m.warning = err.Error()
				return
			}
			m.status = fmt.Sprintf("LED #%d recolored", l.ID())
		} else {
			if err := m.board.SetAllColor(c); err != nil {
				m.warning = err.Error()
				return
			}
			m.status = "Recolored all lit LEDs"
		}

	case inputBlink, inputAllBlink:
		ms, err := strconv.Atoi(value)
		if err != nil {
			m.warning = "blink interval must be a number of milliseconds"
			return
		}
		d := time.Duration(ms) * time.Millisecond
		if kind == inputBlink {
			l, ok := m.selected()
			if !ok {
				return
			}
			if err := m.board.SetBlinkInterval(l.ID(), d); err != nil {
				m.warning = err.Error()
				return
			}
			m.status = fmt.Sprintf("LED #%d blink rate set to %v", l.ID(), d)
		} else {
			if err := m.board.SetAllBlinkInterval(d); err != nil {
				m.warning = err.Error()
				return
			}
			m.status = fmt.Sprintf("Blink rate of all lit LEDs set to %v", d)
		}

	case inputTimer, inputAllTimer:
		secs, err := strconv.Atoi(value)
		if err != nil {
			m.warning = "auto-off must be a number of seconds"
			return
		}
		d := time.Duration(secs) * time.Second
		if kind == inputTimer {
			l, ok := m.selected()
			if !ok {
				return
			}
			if err := m.board.SetAutoOff(l.ID(), d); err != nil {
				m.warning = err.Error()
				return
			}
			m.status = fmt.Sprintf("LED #%d turns off in %v", l.ID(), d)
		} else {
			if err := m.board.SetAllAutoOff(d); err != nil {
				m.warning = err.Error()
				return
			}
			m.status = fmt.Sprintf("All lit LEDs turn off in %v", d)
		}
	}
}

// selected returns the LED under the cursor.
func (m *Model) selected() (*led.LED, bool) {
	leds := m.board.List()
	if m.cursor < 0 || m.cursor >= len(leds) {
		return nil, false
	}
	return leds[m.cursor], true
}

func (m *Model) checkAnyLit() error {
	if m.board.Len() == 0 {
		return common.ErrNoLEDs
	}
	if m.board.LitCount() == 0 {
		return common.ErrNoneLit
	}
	return nil
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next >= 0 && next < m.board.Len() {
		m.cursor = next
	}
}

func (m *Model) clampCursor() {
	if m.cursor >= m.board.Len() {
		m.cursor = m.board.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("LED Board"))
	b.WriteString("\n\n")

	leds := m.board.List()
	if len(leds) == 0 {
		b.WriteString(emptyStyle.Render("No LEDs on the board. Press 'a' to add one."))
		b.WriteString("\n")
	} else {
		b.WriteString(boardStyle.Render(m.renderGrid(leds)))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	if m.asking != inputNone {
		b.WriteString(promptStyle.Render(m.input.View()))
	} else if m.warning != "" {
		b.WriteString(warnStyle.Render("⚠ " + m.warning))
	} else {
		lit := litCountStyle.Render(fmt.Sprintf("%d / %d lit", m.board.LitCount(), m.board.Len()))
		b.WriteString(statusStyle.Render(m.status) + "  " + lit)
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// renderGrid lays the LED glyphs out row-major at the board's width.
func (m Model) renderGrid(leds []*led.LED) string {
	columns := m.board.Columns()
	var rows []string
	var cells []string

	for i, l := range leds {
		cell := fmt.Sprintf(" %s %-3s", ledGlyph(l), fmt.Sprintf("#%d", l.ID()))
		if i == m.cursor {
			cell = selectedStyle.Render(cell)
		}
		cells = append(cells, cell)

		if (i+1)%columns == 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			cells = nil
		}
	}
	if len(cells) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(rows, "\n")
}
