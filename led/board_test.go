package led

import (
	"errors"
	"testing"
	"time"

	"github.com/atran/led-board/common"
)

// fakeClock lets tests control the board's notion of now.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

func newTestBoard() (*Board, *fakeClock) {
	b := NewBoard()
	clock := newFakeClock()
	b.now = clock.now
	return b, clock
}

func TestBoard_AddAssignsSequentialIDs(t *testing.T) {
	b, _ := newTestBoard()

	for i := 1; i <= 3; i++ {
		l := b.Add()
		if l.ID() != i {
			t.Errorf("Add() #%d assigned ID %d", i, l.ID())
		}
	}

	if b.Len() != 3 {
		t.Errorf("Len() = %d, want 3", b.Len())
	}
}

func TestBoard_NewLEDStartsOff(t *testing.T) {
	b, _ := newTestBoard()
	l := b.Add()

	if l.On() {
		t.Error("new LED should start off")
	}
	if !l.Color().IsTransparent() {
		t.Error("new LED color should be transparent")
	}
	if l.Blinking() {
		t.Error("new LED should not blink")
	}
}

func TestBoard_RemoveReassignsDenseIDs(t *testing.T) {
	b, _ := newTestBoard()
	for i := 0; i < 5; i++ {
		b.Add()
	}

	if err := b.Remove(3); err != nil {
		t.Fatalf("Remove(3) error = %v", err)
	}

	for i, l := range b.List() {
		if l.ID() != i+1 {
			t.Errorf("after removal, LED at index %d has ID %d, want %d", i, l.ID(), i+1)
		}
	}

	// Next added LED continues the dense sequence
	l := b.Add()
	if l.ID() != 5 {
		t.Errorf("Add() after removal assigned ID %d, want 5", l.ID())
	}
}

func TestBoard_RemoveMissing(t *testing.T) {
	b, _ := newTestBoard()
	b.Add()

	if err := b.Remove(42); !errors.Is(err, common.ErrLEDNotFound) {
		t.Errorf("Remove(42) error = %v, want ErrLEDNotFound", err)
	}
}

func TestBoard_RemoveAll(t *testing.T) {
	b, _ := newTestBoard()

	if err := b.RemoveAll(); !errors.Is(err, common.ErrNoLEDs) {
		t.Errorf("RemoveAll() on empty board error = %v, want ErrNoLEDs", err)
	}

	b.Add()
	b.Add()
	if err := b.RemoveAll(); err != nil {
		t.Fatalf("RemoveAll() error = %v", err)
	}

	if b.Len() != 0 {
		t.Errorf("Len() after RemoveAll = %d, want 0", b.Len())
	}

	// ID counter resets to 1
	if l := b.Add(); l.ID() != 1 {
		t.Errorf("Add() after RemoveAll assigned ID %d, want 1", l.ID())
	}
}

func TestBoard_ToggleTurnsOnWhite(t *testing.T) {
	b, _ := newTestBoard()
	l := b.Add()

	if err := b.Toggle(l.ID()); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !l.On() {
		t.Error("LED should be on after toggle")
	}
	if l.Color() != White {
		t.Errorf("LED color = %+v, want White", l.Color())
	}

	if err := b.Toggle(l.ID()); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if l.On() {
		t.Error("LED should be off after second toggle")
	}
}

func TestBoard_SetColorIsTheOnFlag(t *testing.T) {
	b, _ := newTestBoard()
	l := b.Add()

	red := Color{R: 255, A: 255}
	if err := b.SetColor(l.ID(), red); err != nil {
		t.Fatalf("SetColor() error = %v", err)
	}
	if !l.On() {
		t.Error("LED with opaque color should be on")
	}

	if err := b.SetColor(l.ID(), Transparent); err != nil {
		t.Fatalf("SetColor() error = %v", err)
	}
	if l.On() {
		t.Error("LED with transparent color should be off")
	}
}

func TestBoard_TurnOnCancelsAutoOff(t *testing.T) {
	b, clock := newTestBoard()
	l := b.Add()

	b.TurnOn(l.ID())
	if err := b.SetAutoOff(l.ID(), 5*time.Second); err != nil {
		t.Fatalf("SetAutoOff() error = %v", err)
	}

	// Turning off and back on must clear the deadline
	b.TurnOff(l.ID())
	b.TurnOn(l.ID())
	if !l.AutoOffAt().IsZero() {
		t.Error("manual turn-on should cancel the pending auto-off")
	}

	// Past the old deadline the LED must still be on
	b.Advance(clock.advance(10 * time.Second))
	if !l.On() {
		t.Error("LED turned off by a cancelled auto-off")
	}
}

func TestBoard_AutoOffFires(t *testing.T) {
	b, clock := newTestBoard()
	l := b.Add()

	b.TurnOn(l.ID())
	if err := b.SetAutoOff(l.ID(), 3*time.Second); err != nil {
		t.Fatalf("SetAutoOff() error = %v", err)
	}

	// Before the deadline nothing happens
	changed := b.Advance(clock.advance(2 * time.Second))
	if len(changed) != 0 {
		t.Errorf("Advance before deadline changed %v", changed)
	}
	if !l.On() {
		t.Error("LED turned off before the deadline")
	}

	// At the deadline it turns off
	changed = b.Advance(clock.advance(1 * time.Second))
	if len(changed) != 1 || changed[0] != l.ID() {
		t.Errorf("Advance at deadline changed %v, want [%d]", changed, l.ID())
	}
	if l.On() {
		t.Error("LED should be off after auto-off fired")
	}
	if !l.AutoOffAt().IsZero() {
		t.Error("deadline should be cleared after firing")
	}
}

func TestBoard_AutoOffValidation(t *testing.T) {
	b, _ := newTestBoard()
	l := b.Add()
	b.TurnOn(l.ID())

	tests := []struct {
		name string
		d    time.Duration
	}{
		{"zero", 0},
		{"negative", -time.Second},
		{"sub-second", 500 * time.Millisecond},
		{"too-long", 3601 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := b.SetAutoOff(l.ID(), tt.d); !errors.Is(err, common.ErrInvalidDuration) {
				t.Errorf("SetAutoOff(%v) error = %v, want ErrInvalidDuration", tt.d, err)
			}
		})
	}
}

func TestBoard_BlinkFlipsPhase(t *testing.T) {
	b, clock := newTestBoard()
	l := b.Add()

	b.TurnOn(l.ID())
	if err := b.SetBlinkInterval(l.ID(), 100*time.Millisecond); err != nil {
		t.Fatalf("SetBlinkInterval() error = %v", err)
	}
	if !l.Blinking() {
		t.Error("LED should be blinking")
	}
	if l.DisplayColor() != White {
		t.Error("LED should start the blink cycle fully lit")
	}

	b.Advance(clock.advance(100 * time.Millisecond))
	if l.DisplayColor() != White.Dimmed() {
		t.Errorf("DisplayColor() in trough = %+v, want dimmed white", l.DisplayColor())
	}

	b.Advance(clock.advance(100 * time.Millisecond))
	if l.DisplayColor() != White {
		t.Errorf("DisplayColor() after full cycle = %+v, want White", l.DisplayColor())
	}
}

func TestBoard_ZeroIntervalStopsBlink(t *testing.T) {
	b, clock := newTestBoard()
	l := b.Add()

	b.TurnOn(l.ID())
	b.SetBlinkInterval(l.ID(), 100*time.Millisecond)
	b.Advance(clock.advance(100 * time.Millisecond)) // into the trough

	if err := b.SetBlinkInterval(l.ID(), 0); err != nil {
		t.Fatalf("SetBlinkInterval(0) error = %v", err)
	}
	if l.Blinking() {
		t.Error("zero interval should disarm blinking")
	}
	if l.DisplayColor() != White {
		t.Error("zero interval should restore the full color")
	}
}

func TestBoard_TurnOffDisarmsBlink(t *testing.T) {
	b, clock := newTestBoard()
	l := b.Add()

	b.TurnOn(l.ID())
	b.SetBlinkInterval(l.ID(), 100*time.Millisecond)
	b.TurnOff(l.ID())

	if l.Blinking() {
		t.Error("turn-off should disarm blinking")
	}
	// The interval itself survives for the dialog default
	if l.BlinkInterval() != 100*time.Millisecond {
		t.Errorf("BlinkInterval() = %v, want 100ms", l.BlinkInterval())
	}

	// Turning back on does not resume blinking until re-armed
	b.TurnOn(l.ID())
	changed := b.Advance(clock.advance(time.Second))
	if len(changed) != 0 {
		t.Errorf("Advance changed %v, blinking should stay disarmed", changed)
	}
}

func TestBoard_BlinkIntervalValidation(t *testing.T) {
	b, _ := newTestBoard()
	l := b.Add()

	if err := b.SetBlinkInterval(l.ID(), -time.Second); !errors.Is(err, common.ErrInvalidInterval) {
		t.Errorf("negative interval error = %v, want ErrInvalidInterval", err)
	}
	if err := b.SetBlinkInterval(l.ID(), 10001*time.Millisecond); !errors.Is(err, common.ErrInvalidInterval) {
		t.Errorf("oversized interval error = %v, want ErrInvalidInterval", err)
	}
}

func TestBoard_TurnAllOn(t *testing.T) {
	b, clock := newTestBoard()

	if err := b.TurnAllOn(); !errors.Is(err, common.ErrNoLEDs) {
		t.Errorf("TurnAllOn() on empty board error = %v, want ErrNoLEDs", err)
	}

	a := b.Add()
	c := b.Add()
	b.TurnOn(a.ID())
	b.SetAutoOff(a.ID(), 2*time.Second)

	if err := b.TurnAllOn(); err != nil {
		t.Fatalf("TurnAllOn() error = %v", err)
	}
	if !a.On() || !c.On() {
		t.Error("all LEDs should be on")
	}

	// Auto-offs were cancelled for every LED
	b.Advance(clock.advance(5 * time.Second))
	if !a.On() {
		t.Error("TurnAllOn should cancel pending auto-offs")
	}

	if err := b.TurnAllOn(); !errors.Is(err, common.ErrAllOn) {
		t.Errorf("TurnAllOn() with everything lit error = %v, want ErrAllOn", err)
	}
}

func TestBoard_TurnAllOff(t *testing.T) {
	b, _ := newTestBoard()

	if err := b.TurnAllOff(); !errors.Is(err, common.ErrNoLEDs) {
		t.Errorf("TurnAllOff() on empty board error = %v, want ErrNoLEDs", err)
	}

	a := b.Add()
	b.Add()

	if err := b.TurnAllOff(); !errors.Is(err, common.ErrAllOff) {
		t.Errorf("TurnAllOff() with everything dark error = %v, want ErrAllOff", err)
	}

	b.TurnOn(a.ID())
	if err := b.TurnAllOff(); err != nil {
		t.Fatalf("TurnAllOff() error = %v", err)
	}
	if a.On() {
		t.Error("LED should be off")
	}
}

func TestBoard_SetAllColor(t *testing.T) {
	b, _ := newTestBoard()

	red := Color{R: 255, A: 255}

	if err := b.SetAllColor(red); !errors.Is(err, common.ErrNoLEDs) {
		t.Errorf("SetAllColor() on empty board error = %v, want ErrNoLEDs", err)
	}

	a := b.Add()
	c := b.Add()

	if err := b.SetAllColor(red); !errors.Is(err, common.ErrNoneLit) {
		t.Errorf("SetAllColor() with nothing lit error = %v, want ErrNoneLit", err)
	}

	b.TurnOn(a.ID())
	if err := b.SetAllColor(red); err != nil {
		t.Fatalf("SetAllColor() error = %v", err)
	}

	if a.Color() != red {
		t.Errorf("lit LED color = %+v, want red", a.Color())
	}
	if c.On() {
		t.Error("dark LED should stay off when recoloring lit LEDs")
	}
}

func TestBoard_SetAllBlinkInterval(t *testing.T) {
	b, _ := newTestBoard()

	if err := b.SetAllBlinkInterval(time.Second); !errors.Is(err, common.ErrNoLEDs) {
		t.Errorf("SetAllBlinkInterval() on empty board error = %v, want ErrNoLEDs", err)
	}

	a := b.Add()
	c := b.Add()

	if err := b.SetAllBlinkInterval(time.Second); !errors.Is(err, common.ErrNoneLit) {
		t.Errorf("SetAllBlinkInterval() with nothing lit error = %v, want ErrNoneLit", err)
	}

	b.TurnOn(a.ID())
	if err := b.SetAllBlinkInterval(time.Second); err != nil {
		t.Fatalf("SetAllBlinkInterval() error = %v", err)
	}

	if !a.Blinking() {
		t.Error("lit LED should be blinking")
	}
	if c.Blinking() {
		t.Error("dark LED should not be blinking")
	}
}

func TestBoard_SetAllAutoOff(t *testing.T) {
	b, clock := newTestBoard()

	a := b.Add()
	c := b.Add()
	b.TurnOn(a.ID())

	if err := b.SetAllAutoOff(2 * time.Second); err != nil {
		t.Fatalf("SetAllAutoOff() error = %v", err)
	}

	b.Advance(clock.advance(2 * time.Second))
	if a.On() {
		t.Error("lit LED should have auto-offed")
	}
	if !c.AutoOffAt().IsZero() {
		t.Error("dark LED should not get an auto-off deadline")
	}
}

func TestBoard_GridPosition(t *testing.T) {
	b, _ := newTestBoard()

	tests := []struct {
		index    int
		row, col int
	}{
		{0, 0, 0},
		{4, 0, 4},
		{5, 1, 0},
		{7, 1, 2},
		{10, 2, 0},
	}

	for _, tt := range tests {
		row, col := b.GridPosition(tt.index)
		if row != tt.row || col != tt.col {
			t.Errorf("GridPosition(%d) = (%d, %d), want (%d, %d)",
				tt.index, row, col, tt.row, tt.col)
		}
	}
}

func TestBoard_HasPendingTimers(t *testing.T) {
	b, _ := newTestBoard()
	l := b.Add()

	if b.HasPendingTimers() {
		t.Error("idle board should have no pending timers")
	}

	b.TurnOn(l.ID())
	b.SetBlinkInterval(l.ID(), time.Second)
	if !b.HasPendingTimers() {
		t.Error("blinking LED should report a pending timer")
	}

	b.TurnOff(l.ID())
	if b.HasPendingTimers() {
		t.Error("turn-off should clear pending timers")
	}

	b.TurnOn(l.ID())
	b.SetAutoOff(l.ID(), time.Minute)
	if !b.HasPendingTimers() {
		t.Error("pending auto-off should report a pending timer")
	}
}

func TestBoard_Callbacks(t *testing.T) {
	b, _ := newTestBoard()

	var layoutCalls, changeCalls int
	b.SetOnLayoutChanged(func() { layoutCalls++ })
	b.SetOnLEDChanged(func(*LED) { changeCalls++ })

	l := b.Add()
	if layoutCalls != 1 {
		t.Errorf("layout callback fired %d times after Add, want 1", layoutCalls)
	}

	b.TurnOn(l.ID())
	if changeCalls != 1 {
		t.Errorf("change callback fired %d times after TurnOn, want 1", changeCalls)
	}

	b.Remove(l.ID())
	if layoutCalls != 2 {
		t.Errorf("layout callback fired %d times after Remove, want 2", layoutCalls)
	}
}
