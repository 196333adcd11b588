package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atran/led-board/config"
	"github.com/atran/led-board/led"
)

func newTestModel() Model {
	return NewModel(led.NewBoard(), config.DefaultConfig())
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func TestModel_AddAndToggle(t *testing.T) {
	m := newTestModel()

	m = update(t, m, keyPress('a'))
	if m.board.Len() != 1 {
		t.Fatalf("board has %d LEDs after add, want 1", m.board.Len())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.board.LitCount() != 1 {
		t.Error("LED should be lit after toggle")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.board.LitCount() != 0 {
		t.Error("LED should be dark after second toggle")
	}
}

func TestModel_RemoveClampsCursor(t *testing.T) {
	m := newTestModel()

	for i := 0; i < 3; i++ {
		m = update(t, m, keyPress('a'))
	}
	if m.cursor != 2 {
		t.Fatalf("cursor = %d after three adds, want 2", m.cursor)
	}

	m = update(t, m, keyPress('d'))
	if m.board.Len() != 2 {
		t.Fatalf("board has %d LEDs after remove, want 2", m.board.Len())
	}
	if m.cursor != 1 {
		t.Errorf("cursor = %d after removing the last LED, want 1", m.cursor)
	}
}

func TestModel_AllOnWarnsWhenEmpty(t *testing.T) {
	m := newTestModel()

	m = update(t, m, keyPress('O'))
	if m.warning == "" {
		t.Error("turning on an empty board should set a warning")
	}
}

func TestModel_ColorPromptRequiresLit(t *testing.T) {
	m := newTestModel()
	m = update(t, m, keyPress('a'))

	m = update(t, m, keyPress('c'))
	if m.asking != inputNone {
		t.Error("color prompt should not open for a dark LED")
	}
	if m.warning == "" {
		t.Error("expected a warning for recoloring a dark LED")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, keyPress('c'))
	if m.asking != inputColor {
		t.Error("color prompt should open for a lit LED")
	}
}

func TestModel_ColorPromptApplies(t *testing.T) {
	m := newTestModel()
	m = update(t, m, keyPress('a'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, keyPress('c'))

	m.input.SetValue("#FF0000")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	l, ok := m.selected()
	if !ok {
		t.Fatal("no LED selected")
	}
	want := led.Color{R: 255, A: 255}
	if l.Color() != want {
		t.Errorf("LED color = %+v, want red", l.Color())
	}
}

func TestModel_PromptEscapeCancels(t *testing.T) {
	m := newTestModel()
	m = update(t, m, keyPress('a'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, keyPress('b'))

	if m.asking != inputBlink {
		t.Fatal("blink prompt should be open")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.asking != inputNone {
		t.Error("escape should close the prompt")
	}
}

func TestModel_BlinkStartsTicking(t *testing.T) {
	m := newTestModel()
	m = update(t, m, keyPress('a'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, keyPress('b'))

	m.input.SetValue("100")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if !m.ticking {
		t.Error("arming a blink should start the tick loop")
	}
	if cmd == nil {
		t.Error("expected a tick command")
	}
}

func TestModel_TickSweepsAutoOff(t *testing.T) {
	m := newTestModel()
	m = update(t, m, keyPress('a'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, keyPress('t'))

	m.input.SetValue("5")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.ticking {
		t.Fatal("scheduling an auto-off should start the tick loop")
	}

	m = update(t, m, tickMsg{t: time.Now().Add(10 * time.Second)})
	if m.board.LitCount() != 0 {
		t.Error("LED should have auto-offed")
	}
	if m.ticking {
		t.Error("tick loop should stop once the board is idle")
	}
}

func TestModel_ViewShowsEmptyState(t *testing.T) {
	m := newTestModel()

	view := m.View()
	if !strings.Contains(view, "No LEDs on the board") {
		t.Error("empty board view should show the empty-state hint")
	}
}

func TestModel_ViewShowsLitCount(t *testing.T) {
	m := newTestModel()
	m = update(t, m, keyPress('a'))
	m = update(t, m, keyPress('a'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	view := m.View()
	if !strings.Contains(view, "1 / 2 lit") {
		t.Errorf("view should show the lit count, got:\n%s", view)
	}
}
