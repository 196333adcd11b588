// Package ui provides the graphical user interface for LED Board.
// This file contains the LEDGrid component that lays the LED widgets
// out in a fixed-width grid and drives the blink/auto-off sweep.
package ui

import (
	"time"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/atran/led-board/common"
	"github.com/atran/led-board/led"
)

// LEDGrid displays the board's LEDs in a row-major grid.
// It owns the periodic deadline sweep: a GTK timeout that runs while any
// LED is blinking or waiting on an auto-off, and removes itself once the
// board goes idle again.
type LEDGrid struct {
	mainWindow *MainWindow
	container  *gtk.Box
	grid       *gtk.Grid
	widgets    []*LEDWidget
	ticking    bool
}

// NewLEDGrid creates a new LED grid bound to the main window's board.
func NewLEDGrid(mainWindow *MainWindow) *LEDGrid {
	g := &LEDGrid{
		mainWindow: mainWindow,
	}

	g.container = gtk.NewBox(gtk.OrientationVertical, 0)
	g.container.SetHExpand(true)
	g.container.SetVExpand(true)

	g.grid = gtk.NewGrid()
	g.grid.SetRowSpacing(12)
	g.grid.SetColumnSpacing(12)
	g.grid.SetHAlign(gtk.AlignCenter)
	g.grid.SetVAlign(gtk.AlignStart)
	g.grid.SetMarginTop(24)
	g.grid.SetMarginBottom(24)
	g.grid.SetMarginStart(24)
	g.grid.SetMarginEnd(24)
	g.grid.AddCSSClass("led-board")

	return g
}

// GetWidget returns the grid container to be added to the window.
func (g *LEDGrid) GetWidget() gtk.Widgetter {
	return g.container
}

func (g *LEDGrid) board() *led.Board {
	return g.mainWindow.app.board
}

// Reload rebuilds the grid from the board's current collection.
// Called after every add or remove; existing widgets are rebound to the
// renumbered IDs and surplus widgets are dropped.
func (g *LEDGrid) Reload() {
	// Detach whatever the container currently shows
	for g.container.FirstChild() != nil {
		g.container.Remove(g.container.FirstChild())
	}
	for g.grid.FirstChild() != nil {
		g.grid.Remove(g.grid.FirstChild())
	}

	leds := g.board().List()
	if len(leds) == 0 {
		for _, w := range g.widgets {
			w.unparent()
		}
		g.widgets = nil
		g.showEmptyState()
		return
	}

	// Reuse widgets where possible, create the rest
	for len(g.widgets) > len(leds) {
		last := g.widgets[len(g.widgets)-1]
		last.unparent()
		g.widgets = g.widgets[:len(g.widgets)-1]
	}
	for i, l := range leds {
		if i < len(g.widgets) {
			g.widgets[i].rebind(l.ID())
		} else {
			g.widgets = append(g.widgets, NewLEDWidget(g, l.ID()))
		}
	}

	for i, w := range g.widgets {
		row, col := g.board().GridPosition(i)
		g.grid.Attach(w.GetWidget(), col, row, 1, 1)
	}

	g.container.Append(g.grid)
}

// showEmptyState shows a hint when the board has no LEDs.
func (g *LEDGrid) showEmptyState() {
	centerBox := gtk.NewBox(gtk.OrientationVertical, 24)
	centerBox.SetHAlign(gtk.AlignCenter)
	centerBox.SetVAlign(gtk.AlignCenter)
	centerBox.SetVExpand(true)
	centerBox.SetMarginTop(48)
	centerBox.SetMarginBottom(48)
	centerBox.SetMarginStart(24)
	centerBox.SetMarginEnd(24)

	icon := gtk.NewImage()
	icon.SetFromIconName("display-brightness-symbolic")
	icon.SetPixelSize(96)
	icon.AddCSSClass("dim-label")
	icon.AddCSSClass("empty-state-icon")
	centerBox.Append(icon)

	titleLabel := gtk.NewLabel("No LEDs on the board")
	titleLabel.AddCSSClass("title-1")
	centerBox.Append(titleLabel)

	descLabel := gtk.NewLabel("Click Add LED to place your first LED")
	descLabel.AddCSSClass("dim-label")
	centerBox.Append(descLabel)

	g.container.Append(centerBox)
}

// RefreshLED redraws the widget bound to the given LED ID.
func (g *LEDGrid) RefreshLED(id int) {
	for _, w := range g.widgets {
		if w.ID() == id {
			w.Refresh()
			return
		}
	}
}

// RefreshAll redraws every LED widget.
func (g *LEDGrid) RefreshAll() {
	for _, w := range g.widgets {
		w.Refresh()
	}
}

// EnsureTicking starts the deadline sweep if it is not already running.
// Call after arming a blink cycle or an auto-off.
func (g *LEDGrid) EnsureTicking() {
	if g.ticking || !g.board().HasPendingTimers() {
		return
	}
	g.ticking = true

	glib.TimeoutAdd(uint(common.TickInterval.Milliseconds()), func() bool {
		changed := g.board().Advance(time.Now())
		for _, id := range changed {
			g.RefreshLED(id)

			// A changed LED that is now dark was taken down by its
			// auto-off; blink flips never turn an LED off.
			if l, err := g.board().Get(id); err == nil && !l.On() {
				if g.mainWindow.app.config.ShowNotifications {
					NotifyAutoOff(id)
				}
			}
		}
		if len(changed) > 0 {
			g.mainWindow.refreshStatus()
		}

		if !g.board().HasPendingTimers() {
			g.ticking = false
			return false
		}
		return true
	})
}
