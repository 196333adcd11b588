// Package ui provides the graphical user interface for LED Board.
// This file contains the system tray indicator functionality.
package ui

import (
	"fmt"

	"fyne.io/systray"
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/atran/led-board/common"
)

// Pre-generated icons for performance.
var (
	iconLit  = GenerateLitIcon()
	iconDark = GenerateDarkIcon()
)

// TrayIndicator manages the system tray icon and menu.
// It provides quick board control without opening the main window.
type TrayIndicator struct {
	app        *Application
	statusItem *systray.MenuItem
	lit        int
	total      int
}

// NewTrayIndicator creates a new system tray indicator.
func NewTrayIndicator(app *Application) *TrayIndicator {
	return &TrayIndicator{
		app: app,
	}
}

// Run starts the system tray indicator.
// This should be called from a goroutine as it blocks.
func (t *TrayIndicator) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the systray is ready.
func (t *TrayIndicator) onReady() {
	systray.SetIcon(iconDark)
	systray.SetTitle("LED Board")
	systray.SetTooltip("LED Board - All off")

	// Status line - shows the lit count
	t.statusItem = systray.AddMenuItem("○  Board dark", "Current board state")
	t.statusItem.Disable()

	systray.AddSeparator()

	// Quick actions. Clicks arrive on systray goroutines, so board
	// mutations hop onto the GTK main thread first.
	addItem := systray.AddMenuItem("Add LED", "Add a new LED to the board")
	go func() {
		for range addItem.ClickedCh {
			glib.IdleAdd(func() {
				t.app.board.Add()
			})
		}
	}()

	allOnItem := systray.AddMenuItem("Turn All On", "Turn every LED on")
	go func() {
		for range allOnItem.ClickedCh {
			glib.IdleAdd(func() {
				if err := t.app.board.TurnAllOn(); err != nil {
					common.LogDebug("Tray: turn all on: %v", err)
				}
			})
		}
	}()

	allOffItem := systray.AddMenuItem("Turn All Off", "Turn every LED off")
	go func() {
		for range allOffItem.ClickedCh {
			glib.IdleAdd(func() {
				if err := t.app.board.TurnAllOff(); err != nil {
					common.LogDebug("Tray: turn all off: %v", err)
				}
			})
		}
	}()

	systray.AddSeparator()

	// Show window
	showItem := systray.AddMenuItem("Open LED Board", "Show main window")
	go func() {
		for range showItem.ClickedCh {
			glib.IdleAdd(func() {
				t.app.showWindow()
			})
		}
	}()

	systray.AddSeparator()

	// Quit
	quitItem := systray.AddMenuItem("Quit", "Close LED Board")
	go func() {
		for range quitItem.ClickedCh {
			glib.IdleAdd(func() {
				t.app.Quit()
			})
			systray.Quit()
		}
	}()
}

// onExit is called when the systray is about to exit.
func (t *TrayIndicator) onExit() {
	common.LogInfo("Tray indicator cleanup completed")
}

// UpdateStatus refreshes the icon and status line from the lit count.
// Safe to call from the GTK main thread; systray marshals internally.
func (t *TrayIndicator) UpdateStatus(lit, total int) {
	if lit == t.lit && total == t.total {
		return
	}
	t.lit = lit
	t.total = total

	if lit > 0 {
		systray.SetIcon(iconLit)
		systray.SetTooltip(fmt.Sprintf("LED Board - %d of %d lit", lit, total))
		if t.statusItem != nil {
			t.statusItem.SetTitle(fmt.Sprintf("●  %d / %d lit", lit, total))
		}
	} else {
		systray.SetIcon(iconDark)
		systray.SetTooltip("LED Board - All off")
		if t.statusItem != nil {
			t.statusItem.SetTitle("○  Board dark")
		}
	}
}
