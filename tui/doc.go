// Package tui provides the terminal user interface for LED Board.
//
// The TUI is a bubbletea program that renders the board as a grid of
// colored glyphs: a filled circle for a lit LED, an outline for a dark
// one. The cursor moves with the arrow keys or hjkl; space toggles the
// selected LED, and single-letter commands mirror the GTK control panel
// (capital letters apply to every lit LED at once).
//
// Color, blink rate, and auto-off values are collected through a
// textinput prompt at the bottom of the screen.
//
// # Timing
//
// Like the GTK frontend, the TUI sweeps the board's blink and auto-off
// deadlines on a fixed tick. The tick is only scheduled while the board
// reports pending timers, so an idle board renders no frames.
package tui
