// Package ui provides the graphical user interface for LED Board.
//
// This package implements the GTK4-based user interface including:
//
//   - Main application window with the LED grid and control panel
//   - System tray indicator for quick access
//   - Color, blink rate, and auto-off timer dialogs
//   - Preferences and settings dialogs
//   - Desktop notifications
//
// # Architecture
//
// The UI is built on GTK4 using the gotk4 bindings. Key components:
//
//   - Application: Main GTK application lifecycle management
//   - MainWindow: Primary window with the grid, control panel, and menu
//   - LEDGrid: Grid layout of LED widgets, owner of the deadline sweep
//   - LEDWidget: One drawn LED with its click handlers and context menu
//   - TrayIndicator: System tray integration for background operation
//
// # Timing
//
// LEDs never own timers. The board records blink and auto-off deadlines,
// and LEDGrid runs a single GTK timeout that sweeps them while any are
// pending. The timeout removes itself once the board goes idle, so an
// idle application schedules no wakeups.
//
// # Theme Support
//
// The UI automatically adapts to system dark/light mode preferences
// using GTK's built-in theme detection and CSS custom properties.
//
// # Thread Safety
//
// GTK operations must execute on the main thread. When updating UI
// from background goroutines (like tray menu clicks), use
// glib.IdleAdd() to schedule updates on the main thread.
//
// Example:
//
//	go func() {
//	    // Background work...
//	    glib.IdleAdd(func() {
//	        // Safe to update UI here
//	        label.SetText("3 / 10 lit")
//	    })
//	}()
//
// # File Organization
//
//   - app.go: Application lifecycle and main window creation
//   - main_window.go: Main window layout, control panel, and menu
//   - led_grid.go: LED grid layout and the deadline sweep
//   - led_widget.go: Single LED rendering and interaction
//   - dialogs.go: Color, blink, auto-off, and message dialogs
//   - tray.go: System tray indicator
//   - icons.go: Icon generation for tray
//   - styles.go: CSS styling and theme support
//   - notifications.go: Desktop notification integration
//   - preferences.go: Settings dialog
package ui
