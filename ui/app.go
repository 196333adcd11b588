package ui

import (
	"os"
	"path/filepath"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/atran/led-board/config"
	"github.com/atran/led-board/led"
)

// Application represents the main application
type Application struct {
	app     *gtk.Application
	window  *MainWindow
	board   *led.Board
	config  *config.Config
	version string
	tray    *TrayIndicator
}

// NewApplication creates a new application.
// startupLEDs overrides the configured startup count when non-negative.
func NewApplication(appID, version string, startupLEDs int) *Application {
	// Create GTK4 application
	app := gtk.NewApplication(appID, gio.ApplicationFlagsNone)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Use default configuration if there's an error
		cfg = config.DefaultConfig()
	}
	if startupLEDs >= 0 {
		cfg.StartupLEDs = startupLEDs
	}

	// Create the board with the configured grid width
	board := led.NewBoard()
	board.SetColumns(cfg.Columns)

	application := &Application{
		app:     app,
		board:   board,
		config:  cfg,
		version: version,
	}

	// Connect activation signal
	app.ConnectActivate(application.onActivate)

	return application
}

// Run runs the application
func (a *Application) Run(args []string) int {
	return a.app.Run(args)
}

// onActivate is called when the application is activated
func (a *Application) onActivate() {
	// Apply configured theme
	a.ApplyTheme(a.config.Theme)

	// Set up the application icon
	a.setupAppIcon()

	// Load custom CSS styles
	LoadStyles()

	// Create main window
	a.window = NewMainWindow(a)
	a.window.Show()

	// Place the configured number of LEDs on a fresh board
	for i := 0; i < a.config.StartupLEDs; i++ {
		a.board.Add()
	}

	// Start system tray indicator
	a.tray = NewTrayIndicator(a)
	go a.tray.Run()
}

// setupAppIcon sets up the application icon
func (a *Application) setupAppIcon() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	iconTheme := gtk.IconThemeGetForDisplay(display)
	if iconTheme == nil {
		return
	}

	// Add icon search paths
	// GTK4 looks for theme subdirectories (like "hicolor") inside these paths

	// From executable directory
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		iconTheme.AddSearchPath(filepath.Join(execDir, "assets", "icons"))
	}

	// From current working directory
	if cwd, err := os.Getwd(); err == nil {
		iconTheme.AddSearchPath(filepath.Join(cwd, "assets", "icons"))
	}

	// Set the default icon for all windows
	// according to GTK4 documentation: gtk_window_set_default_icon_name
	gtk.WindowSetDefaultIconName("led-board")
}

// GetBoard returns the LED board
func (a *Application) GetBoard() *led.Board {
	return a.board
}

// GetConfig returns the configuration
func (a *Application) GetConfig() *config.Config {
	return a.config
}

// ApplyTheme applies the specified theme to the application.
// Supported values: "auto" (system default), "light", "dark"
func (a *Application) ApplyTheme(theme string) {
	settings := gtk.SettingsGetDefault()
	if settings == nil {
		return
	}

	switch theme {
	case "light":
		settings.SetObjectProperty("gtk-application-prefer-dark-theme", false)
	case "dark":
		settings.SetObjectProperty("gtk-application-prefer-dark-theme", true)
	default: // "auto" - follow system theme, don't override
		// Reset to system default by not forcing any preference
		// GTK will use the system's color scheme
	}
}

// GetVersion returns the application version
func (a *Application) GetVersion() string {
	return a.version
}

// GetWindow returns the main window
func (a *Application) GetWindow() *gtk.Window {
	if a.window != nil {
		return &a.window.window.Window
	}
	return nil
}

// showWindow shows the main window
func (a *Application) showWindow() {
	if a.window != nil {
		a.window.window.Present()
	}
}

// Quit closes the application
func (a *Application) Quit() {
	a.app.Quit()
}

// GetTray returns the tray indicator
func (a *Application) GetTray() *TrayIndicator {
	return a.tray
}
