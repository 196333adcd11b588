// Package led implements the virtual LED state machine and the board
// that manages a collection of LEDs.
// This file contains the Board, the collection manager that owns the
// LEDs, assigns dense sequential IDs, and lays them out on a grid.
package led

import (
	"time"

	"github.com/atran/led-board/common"
)

// Board manages an ordered collection of LEDs.
//
// LEDs are kept in insertion order and rendered row-major into a
// fixed-width grid. IDs are reassigned densely from 1 after every
// removal so they always run 1..N.
//
// Board is not safe for concurrent use; frontends drive it from their
// single event loop and hop onto that loop (glib.IdleAdd for GTK) when
// reacting to outside events.
type Board struct {
	leds    []*LED
	nextID  int
	columns int
	now     func() time.Time

	onLEDChanged    func(*LED)
	onLayoutChanged func()
}

// NewBoard creates an empty board with the default column count.
func NewBoard() *Board {
	return &Board{
		nextID:  1,
		columns: common.DefaultGridColumns,
		now:     time.Now,
	}
}

// SetOnLEDChanged sets a callback fired after a single LED's state or
// appearance changes. Layout changes (add/remove) fire the layout
// callback instead.
func (b *Board) SetOnLEDChanged(callback func(*LED)) {
	b.onLEDChanged = callback
}

// SetOnLayoutChanged sets a callback fired after the collection itself
// changes (add, remove, remove all).
func (b *Board) SetOnLayoutChanged(callback func()) {
	b.onLayoutChanged = callback
}

// SetColumns updates the grid width. Out-of-range values are clamped.
func (b *Board) SetColumns(n int) {
	b.columns = common.ClampInt(n, 1, 12)
}

// Columns returns the grid width.
func (b *Board) Columns() int {
	return b.columns
}

// Len returns the number of LEDs on the board.
func (b *Board) Len() int {
	return len(b.leds)
}

// LitCount returns the number of LEDs currently on.
func (b *Board) LitCount() int {
	n := 0
	for _, l := range b.leds {
		if l.On() {
			n++
		}
	}
	return n
}

// List returns the LEDs in insertion order.
func (b *Board) List() []*LED {
	return b.leds
}

// Get retrieves an LED by ID.
func (b *Board) Get(id int) (*LED, error) {
	for _, l := range b.leds {
		if l.id == id {
			return l, nil
		}
	}
	return nil, common.ErrLEDNotFound
}

// GridPosition returns the row-major grid cell for the LED at index i.
func (b *Board) GridPosition(i int) (row, col int) {
	return i / b.columns, i % b.columns
}

// Add appends a new LED with the next sequential ID.
func (b *Board) Add() *LED {
	l := newLED(b.nextID)
	b.leds = append(b.leds, l)
	common.LogInfo("LED #%d added", b.nextID)
	b.nextID++
	b.layoutChanged()
	return l
}

// Remove deletes the LED with the given ID and reassigns the remaining
// IDs densely from 1.
func (b *Board) Remove(id int) error {
	for i, l := range b.leds {
		if l.id == id {
			b.leds = append(b.leds[:i], b.leds[i+1:]...)
			b.reassignIDs()
			common.LogInfo("LED #%d removed", id)
			b.layoutChanged()
			return nil
		}
	}
	return common.ErrLEDNotFound
}

// RemoveAll clears the board and resets the ID counter.
func (b *Board) RemoveAll() error {
	if len(b.leds) == 0 {
		return common.ErrNoLEDs
	}
	b.leds = nil
	b.nextID = 1
	common.LogInfo("All LEDs removed")
	b.layoutChanged()
	return nil
}

// Toggle flips the LED between on and off. Left-click behavior.
func (b *Board) Toggle(id int) error {
	l, err := b.Get(id)
	if err != nil {
		return err
	}
	if l.On() {
		return b.TurnOff(id)
	}
	return b.TurnOn(id)
}

// TurnOn lights the LED white and cancels any pending auto-off.
func (b *Board) TurnOn(id int) error {
	l, err := b.Get(id)
	if err != nil {
		return err
	}
	if l.turnOn() {
		common.LogInfo("LED #%d turned on", id)
		b.ledChanged(l)
	}
	return nil
}

// TurnOff darkens the LED and disarms its blink cycle.
func (b *Board) TurnOff(id int) error {
	l, err := b.Get(id)
	if err != nil {
		return err
	}
	if l.turnOff() {
		common.LogInfo("LED #%d turned off", id)
		b.ledChanged(l)
	}
	return nil
}

// SetColor sets the LED's color. The on/off state follows the color:
// a transparent color turns the LED off.
func (b *Board) SetColor(id int, c Color) error {
	l, err := b.Get(id)
	if err != nil {
		return err
	}
	if l.setColor(c) {
		common.LogInfo("LED #%d turned on", id)
	} else {
		common.LogDebug("LED #%d color changed to %s", id, c.Hex())
	}
	b.ledChanged(l)
	return nil
}

// SetBlinkInterval configures the blink rate of one LED. Zero disables
// blinking; valid intervals run up to MaxBlinkInterval.
func (b *Board) SetBlinkInterval(id int, d time.Duration) error {
	if d < 0 || d > common.MaxBlinkInterval {
		return common.ErrInvalidInterval
	}
	l, err := b.Get(id)
	if err != nil {
		return err
	}
	l.setBlinkInterval(d, b.now())
	common.LogInfo("LED #%d blink interval set to %v", id, d)
	b.ledChanged(l)
	return nil
}

// SetAutoOff schedules the LED to turn off after d.
func (b *Board) SetAutoOff(id int, d time.Duration) error {
	if d < common.MinAutoOff || d > common.MaxAutoOff {
		return common.ErrInvalidDuration
	}
	l, err := b.Get(id)
	if err != nil {
		return err
	}
	l.setAutoOff(d, b.now())
	common.LogInfo("LED #%d auto-off set to %v", id, d)
	return nil
}

// StopAutoOff cancels a pending auto-off.
func (b *Board) StopAutoOff(id int) error {
	l, err := b.Get(id)
	if err != nil {
		return err
	}
	l.stopAutoOff()
	return nil
}

// TurnAllOn lights every LED that is off and cancels every pending
// auto-off, so nothing turns itself back off right after.
func (b *Board) TurnAllOn() error {
	if len(b.leds) == 0 {
		return common.ErrNoLEDs
	}

	allOn := true
	for _, l := range b.leds {
		if !l.On() {
			allOn = false
			break
		}
	}
	if allOn {
		return common.ErrAllOn
	}

	for _, l := range b.leds {
		if !l.On() {
			l.setColor(White)
			b.ledChanged(l)
		}
		l.stopAutoOff()
	}
	common.LogInfo("All LEDs turned on")
	return nil
}

// TurnAllOff darkens every lit LED.
func (b *Board) TurnAllOff() error {
	if len(b.leds) == 0 {
		return common.ErrNoLEDs
	}

	allOff := true
	for _, l := range b.leds {
		if l.turnOff() {
			allOff = false
			b.ledChanged(l)
		}
	}
	if allOff {
		return common.ErrAllOff
	}
	common.LogInfo("All LEDs turned off")
	return nil
}

// SetAllColor recolors every lit LED. At least one LED must be on.
func (b *Board) SetAllColor(c Color) error {
	if len(b.leds) == 0 {
		return common.ErrNoLEDs
	}
	if b.LitCount() == 0 {
		return common.ErrNoneLit
	}

	for _, l := range b.leds {
		if l.On() {
			l.setColor(c)
			b.ledChanged(l)
		}
	}
	common.LogInfo("Changed color of all lit LEDs to %s", c.Hex())
	return nil
}

// SetAllBlinkInterval applies a blink interval to every lit LED.
// At least one LED must be on or already blinking.
func (b *Board) SetAllBlinkInterval(d time.Duration) error {
	if d < 0 || d > common.MaxBlinkInterval {
		return common.ErrInvalidInterval
	}
	if len(b.leds) == 0 {
		return common.ErrNoLEDs
	}

	anyEligible := false
	for _, l := range b.leds {
		if l.On() || l.BlinkInterval() > 0 {
			anyEligible = true
			break
		}
	}
	if !anyEligible {
		return common.ErrNoneLit
	}

	now := b.now()
	for _, l := range b.leds {
		if l.On() {
			l.setBlinkInterval(d, now)
			b.ledChanged(l)
		}
	}
	common.LogInfo("Blink interval of all lit LEDs set to %v", d)
	return nil
}

// SetAllAutoOff schedules an auto-off for every lit LED.
func (b *Board) SetAllAutoOff(d time.Duration) error {
	if d < common.MinAutoOff || d > common.MaxAutoOff {
		return common.ErrInvalidDuration
	}
	if len(b.leds) == 0 {
		return common.ErrNoLEDs
	}
	if b.LitCount() == 0 {
		return common.ErrNoneLit
	}

	now := b.now()
	for _, l := range b.leds {
		if l.On() {
			l.setAutoOff(d, now)
		}
	}
	common.LogInfo("Auto-off of all lit LEDs set to %v", d)
	return nil
}

// Advance sweeps blink and auto-off deadlines against now and returns
// the IDs of LEDs whose visual changed. Frontends call this from their
// tick (glib timeout, tea.Tick).
func (b *Board) Advance(now time.Time) []int {
	var changed []int
	for _, l := range b.leds {
		wasOn := l.On()
		if l.advance(now) {
			changed = append(changed, l.id)
			if wasOn && !l.On() {
				common.LogInfo("LED #%d turned off", l.id)
			}
			b.ledChanged(l)
		}
	}
	return changed
}

// HasPendingTimers reports whether any LED has an armed blink cycle or a
// pending auto-off, i.e. whether a frontend needs to keep ticking.
func (b *Board) HasPendingTimers() bool {
	for _, l := range b.leds {
		if l.hasPendingTimers() {
			return true
		}
	}
	return false
}

// reassignIDs renumbers the LEDs densely from 1 and resets the next-ID
// counter, preserving insertion order.
func (b *Board) reassignIDs() {
	id := 1
	for _, l := range b.leds {
		l.id = id
		id++
	}
	b.nextID = id
}

func (b *Board) ledChanged(l *LED) {
	if b.onLEDChanged != nil {
		b.onLEDChanged(l)
	}
}

func (b *Board) layoutChanged() {
	if b.onLayoutChanged != nil {
		b.onLayoutChanged()
	}
}
