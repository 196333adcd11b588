// Package led implements the core of LED Board: the per-LED state
// machine and the collection manager.
//
// This package is pure state and deadlines — it imports no GUI code, so
// both the GTK frontend and the terminal frontend drive the exact same
// logic, and the state machine is testable with an injected clock.
//
// # Architecture
//
// The package is organized around two types:
//
//   - LED: one virtual LED — color (which doubles as the on/off flag),
//     blink interval and phase, and a pending auto-off deadline
//   - Board: the ordered collection — dense sequential IDs, grid layout
//     positions, all-LED operations, and the deadline sweep
//
// # Timing Model
//
// LEDs never own timers. Blink flips and auto-offs are deadlines stored
// on each LED; a frontend calls Board.Advance on its own tick (a glib
// timeout in GTK, tea.Tick in the terminal) and repaints the LEDs whose
// visual changed. Board.HasPendingTimers tells the frontend whether it
// needs to keep ticking at all.
//
// # Invariants
//
//   - IDs are unique and dense 1..N after every mutation
//   - an LED is on exactly when its color is not transparent
//   - the blink phase shows the full color whenever blinking is disarmed
//   - a manual turn-on always cancels a pending auto-off
//
// # Thread Safety
//
// Board is confined to the frontend's event loop; it performs no
// locking. External event sources (like the system tray) must hop onto
// that loop before touching the board.
package led
