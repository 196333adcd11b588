// Package led implements the virtual LED state machine and the board
// that manages a collection of LEDs.
// This file contains the per-LED state: color, blink phase, and the
// pending auto-off deadline.
package led

import "time"

// LED holds the state of a single virtual LED.
//
// The color is the on/off flag: a transparent color means the LED is off.
// Blinking is a periodic toggle between the full color and a dimmed
// version of it; the blink interval is retained across off/on cycles but
// blinking itself is disarmed whenever the LED turns off and must be
// re-armed by setting an interval again.
//
// All mutations go through the owning Board, which supplies the clock and
// enforces validation. LED exposes read-only accessors for frontends.
type LED struct {
	id            int
	color         Color
	blinkInterval time.Duration
	blinkArmed    bool
	blinkVisible  bool
	nextFlip      time.Time
	autoOffAt     time.Time
}

func newLED(id int) *LED {
	return &LED{
		id:           id,
		color:        Transparent,
		blinkVisible: true,
	}
}

// ID returns the LED's identifier. IDs are reassigned densely from 1
// whenever the board's collection changes.
func (l *LED) ID() int {
	return l.id
}

// On reports whether the LED is lit.
func (l *LED) On() bool {
	return !l.color.IsTransparent()
}

// Color returns the LED's current color.
func (l *LED) Color() Color {
	return l.color
}

// DisplayColor returns the color a frontend should paint right now:
// the full color, or a dimmed version during the blink trough.
func (l *LED) DisplayColor() Color {
	if l.blinkVisible {
		return l.color
	}
	return l.color.Dimmed()
}

// BlinkInterval returns the configured blink interval. Zero means the LED
// does not blink. The value survives the LED turning off even though
// blinking is disarmed by that transition.
func (l *LED) BlinkInterval() time.Duration {
	return l.blinkInterval
}

// Blinking reports whether the blink cycle is currently armed.
func (l *LED) Blinking() bool {
	return l.blinkArmed
}

// AutoOffAt returns the pending auto-off deadline, or the zero time when
// no auto-off is scheduled.
func (l *LED) AutoOffAt() time.Time {
	return l.autoOffAt
}

// setColor updates the color. The on/off state follows the color.
// Returns true if the LED rose from off to on.
func (l *LED) setColor(c Color) bool {
	wasOn := l.On()
	l.color = c
	return !wasOn && l.On()
}

// turnOn lights the LED white. A pending auto-off is cancelled so a
// manual turn-on is never undone by an earlier timer.
// No-op when already on.
func (l *LED) turnOn() bool {
	if l.On() {
		return false
	}
	l.blinkVisible = true
	l.setColor(White)
	l.stopAutoOff()
	return true
}

// turnOff darkens the LED. Blinking is disarmed and the phase reset so
// the LED shows its full color the next time it lights up.
// No-op when already off.
func (l *LED) turnOff() bool {
	if !l.On() {
		return false
	}
	l.blinkArmed = false
	l.blinkVisible = true
	l.setColor(Transparent)
	l.stopAutoOff()
	return true
}

// setBlinkInterval stores the interval and re-arms the blink cycle.
// A zero interval disarms blinking and restores the full color.
func (l *LED) setBlinkInterval(d time.Duration, now time.Time) {
	l.blinkInterval = d
	if d > 0 {
		l.blinkArmed = true
		l.nextFlip = now.Add(d)
		return
	}
	l.blinkArmed = false
	l.blinkVisible = true
}

// setAutoOff schedules a one-shot turn-off after d. A later call replaces
// any earlier deadline. Non-positive durations are ignored by the board's
// validation before reaching here.
func (l *LED) setAutoOff(d time.Duration, now time.Time) {
	l.autoOffAt = now.Add(d)
}

// stopAutoOff cancels a pending auto-off.
func (l *LED) stopAutoOff() {
	l.autoOffAt = time.Time{}
}

// advance applies any deadlines that have passed. It returns true when
// the LED's visual changed (blink phase flip or auto-off firing).
func (l *LED) advance(now time.Time) bool {
	changed := false

	if l.blinkArmed && l.blinkInterval > 0 && !now.Before(l.nextFlip) {
		l.blinkVisible = !l.blinkVisible
		// Re-anchor on now so a stalled frontend doesn't replay flips.
		l.nextFlip = now.Add(l.blinkInterval)
		changed = true
	}

	if !l.autoOffAt.IsZero() && !now.Before(l.autoOffAt) {
		if l.turnOff() {
			changed = true
		} else {
			l.stopAutoOff()
		}
	}

	return changed
}

// hasPendingTimers reports whether the LED needs deadline sweeps.
func (l *LED) hasPendingTimers() bool {
	return (l.blinkArmed && l.blinkInterval > 0) || !l.autoOffAt.IsZero()
}
