package ui

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/atran/led-board/common"
	"github.com/atran/led-board/led"
)

// MainWindow represents the main application window.
type MainWindow struct {
	app         *Application
	window      *gtk.ApplicationWindow
	headerBar   *gtk.HeaderBar
	ledGrid     *LEDGrid
	statusBar   *gtk.Box
	statusLabel *gtk.Label
	litLabel    *gtk.Label
}

// NewMainWindow creates a new main window.
func NewMainWindow(app *Application) *MainWindow {
	mw := &MainWindow{
		app: app,
	}

	// Create GTK4 application window
	mw.window = gtk.NewApplicationWindow(app.app)
	mw.window.SetTitle("LED Board")
	mw.window.SetDefaultSize(common.DefaultWindowWidth, common.DefaultWindowHeight)
	mw.window.SetIconName("led-board")

	// Hide to tray instead of closing when configured
	mw.window.SetHideOnClose(app.config.MinimizeToTray)

	// Create main layout
	mw.createLayout()

	// React to board changes
	mw.connectBoard()

	return mw
}

// createLayout creates the window layout.
func (mw *MainWindow) createLayout() {
	// Create GTK4 header bar
	mw.headerBar = gtk.NewHeaderBar()

	// Button to add a new LED
	addButton := gtk.NewButton()
	addButton.SetIconName("list-add-symbolic")
	addButton.SetTooltipText("Add LED")
	addButton.ConnectClicked(mw.onAddLED)
	mw.headerBar.PackStart(addButton)

	// Menu button
	menuButton := gtk.NewMenuButton()
	menuButton.SetIconName("open-menu-symbolic")
	menuButton.SetTooltipText("Menu")
	mw.headerBar.PackEnd(menuButton)

	// Create menu
	menu := mw.createMenu()
	menuButton.SetMenuModel(menu)

	// Set header bar as titlebar (prevents double bar)
	mw.window.SetTitlebar(mw.headerBar)

	// Create main container
	mainBox := gtk.NewBox(gtk.OrientationVertical, 0)

	// Control panel with the board-wide operations
	mainBox.Append(mw.createControlPanel())

	// LED grid
	mw.ledGrid = NewLEDGrid(mw)

	scrolled := gtk.NewScrolledWindow()
	scrolled.SetVExpand(true)
	scrolled.SetChild(mw.ledGrid.GetWidget())
	mainBox.Append(scrolled)

	// Status bar
	mw.createStatusBar()
	mainBox.Append(mw.statusBar)

	// Set window content
	mw.window.SetChild(mainBox)

	mw.ledGrid.Reload()
}

// createControlPanel creates the row of board-wide control buttons.
func (mw *MainWindow) createControlPanel() *gtk.Box {
	panel := gtk.NewBox(gtk.OrientationHorizontal, 8)
	panel.SetMarginTop(12)
	panel.SetMarginBottom(12)
	panel.SetMarginStart(12)
	panel.SetMarginEnd(12)
	panel.SetHAlign(gtk.AlignCenter)

	controls := []struct {
		label   string
		tooltip string
		handler func()
	}{
		{"Add LED", "Add a new LED to the board", mw.onAddLED},
		{"All On", "Turn every LED on", mw.onTurnAllOn},
		{"All Off", "Turn every LED off", mw.onTurnAllOff},
		{"Colors...", "Change the color of all lit LEDs", mw.showAllColorDialog},
		{"Blink...", "Set the blink rate of all lit LEDs", mw.showAllBlinkDialog},
		{"Timer...", "Set the auto-off timer of all lit LEDs", mw.showAllAutoOffDialog},
	}

	for _, c := range controls {
		btn := gtk.NewButtonWithLabel(c.label)
		btn.SetTooltipText(c.tooltip)
		btn.AddCSSClass("control-button")
		btn.ConnectClicked(c.handler)
		panel.Append(btn)
	}

	removeBtn := gtk.NewButtonWithLabel("Remove All")
	removeBtn.SetTooltipText("Remove every LED from the board")
	removeBtn.AddCSSClass("destructive-action")
	removeBtn.ConnectClicked(mw.onRemoveAll)
	panel.Append(removeBtn)

	return panel
}

// createMenu creates the application menu.
func (mw *MainWindow) createMenu() *gio.Menu {
	menu := gio.NewMenu()

	// Board section
	boardSection := gio.NewMenu()
	boardSection.Append("Add LED", "app.add")
	boardSection.Append("Remove All LEDs", "app.remove-all")
	menu.AppendSection("", &boardSection.MenuModel)

	// Settings section
	settingsSection := gio.NewMenu()
	settingsSection.Append("Preferences", "app.preferences")
	menu.AppendSection("", &settingsSection.MenuModel)

	// App section
	appSection := gio.NewMenu()
	appSection.Append("Help", "app.help")
	appSection.Append("About", "app.about")
	appSection.Append("Quit", "app.quit")
	menu.AppendSection("", &appSection.MenuModel)

	// Connect actions
	mw.setupActions()

	return menu
}

// setupActions configures menu actions.
func (mw *MainWindow) setupActions() {
	// Add LED action (Ctrl+N)
	addAction := gio.NewSimpleAction("add", nil)
	addAction.ConnectActivate(func(_ *glib.Variant) {
		mw.onAddLED()
	})
	mw.app.app.AddAction(addAction)
	mw.app.app.SetAccelsForAction("app.add", []string{"<Control>n"})

	// Remove all action
	removeAllAction := gio.NewSimpleAction("remove-all", nil)
	removeAllAction.ConnectActivate(func(_ *glib.Variant) {
		mw.onRemoveAll()
	})
	mw.app.app.AddAction(removeAllAction)

	// Preferences action (Ctrl+,)
	preferencesAction := gio.NewSimpleAction("preferences", nil)
	preferencesAction.ConnectActivate(func(_ *glib.Variant) {
		mw.onPreferences()
	})
	mw.app.app.AddAction(preferencesAction)
	mw.app.app.SetAccelsForAction("app.preferences", []string{"<Control>comma"})

	// Help action (F1)
	helpAction := gio.NewSimpleAction("help", nil)
	helpAction.ConnectActivate(func(_ *glib.Variant) {
		mw.onHelp()
	})
	mw.app.app.AddAction(helpAction)
	mw.app.app.SetAccelsForAction("app.help", []string{"F1"})

	// About action
	aboutAction := gio.NewSimpleAction("about", nil)
	aboutAction.ConnectActivate(func(_ *glib.Variant) {
		mw.onAbout()
	})
	mw.app.app.AddAction(aboutAction)

	// Quit action (Ctrl+Q)
	quitAction := gio.NewSimpleAction("quit", nil)
	quitAction.ConnectActivate(func(_ *glib.Variant) {
		mw.app.Quit()
	})
	mw.app.app.AddAction(quitAction)
	mw.app.app.SetAccelsForAction("app.quit", []string{"<Control>q"})
}

// createStatusBar creates the status bar.
func (mw *MainWindow) createStatusBar() {
	mw.statusBar = gtk.NewBox(gtk.OrientationHorizontal, 12)
	mw.statusBar.AddCSSClass("status-bar")
	mw.statusBar.SetMarginTop(6)
	mw.statusBar.SetMarginBottom(6)
	mw.statusBar.SetMarginStart(12)
	mw.statusBar.SetMarginEnd(12)

	// Status label
	mw.statusLabel = gtk.NewLabel("Ready")
	mw.statusLabel.SetXAlign(0)
	mw.statusLabel.SetHExpand(true)
	mw.statusBar.Append(mw.statusLabel)

	// Lit counter
	mw.litLabel = gtk.NewLabel("0 / 0 lit")
	mw.litLabel.AddCSSClass("lit-counter")
	mw.statusBar.Append(mw.litLabel)
}

// connectBoard wires the board callbacks to the UI.
func (mw *MainWindow) connectBoard() {
	board := mw.app.board

	board.SetOnLEDChanged(func(l *led.LED) {
		mw.ledGrid.RefreshLED(l.ID())
		mw.refreshStatus()
	})

	board.SetOnLayoutChanged(func() {
		mw.ledGrid.Reload()
		mw.refreshStatus()
	})
}

// refreshStatus updates the lit counter and the tray status line.
func (mw *MainWindow) refreshStatus() {
	board := mw.app.board
	lit := board.LitCount()
	total := board.Len()

	if mw.litLabel != nil {
		mw.litLabel.SetText(fmt.Sprintf("%d / %d lit", lit, total))
	}
	if mw.app.tray != nil {
		mw.app.tray.UpdateStatus(lit, total)
	}
}

// Show displays the window.
func (mw *MainWindow) Show() {
	mw.window.Show()
}

// SetStatus updates the status text.
func (mw *MainWindow) SetStatus(text string) {
	if mw.statusLabel != nil {
		mw.statusLabel.SetText(text)
	}
}

// Event handlers

func (mw *MainWindow) onAddLED() {
	l := mw.app.board.Add()
	mw.SetStatus(fmt.Sprintf("LED #%d added", l.ID()))
}

func (mw *MainWindow) onRemoveAll() {
	if err := mw.app.board.RemoveAll(); err != nil {
		mw.surfaceBoardError("Remove All LEDs", err)
		return
	}
	mw.SetStatus("All LEDs removed")
}

func (mw *MainWindow) onTurnAllOn() {
	if err := mw.app.board.TurnAllOn(); err != nil {
		mw.surfaceBoardError("Turn All On", err)
		return
	}
	mw.SetStatus("All LEDs turned on")
	if mw.app.config.ShowNotifications {
		NotifyAllOn(mw.app.board.Len())
	}
}

func (mw *MainWindow) onTurnAllOff() {
	if err := mw.app.board.TurnAllOff(); err != nil {
		mw.surfaceBoardError("Turn All Off", err)
		return
	}
	mw.SetStatus("All LEDs turned off")
	if mw.app.config.ShowNotifications {
		NotifyAllOff()
	}
}

func (mw *MainWindow) onPreferences() {
	prefsDialog := NewPreferencesDialog(mw)
	prefsDialog.Show()
}

func (mw *MainWindow) onHelp() {
	mw.showInfo("LED Board Help",
		"Left-click an LED to toggle it on or off.\n\n"+
			"Right-click an LED for its context menu: remove it, or "+
			"change its color, blink rate, and auto-off timer while it is lit.\n\n"+
			"The control panel applies the same operations to every lit LED at once.")
}

func (mw *MainWindow) onAbout() {
	about := gtk.NewAboutDialog()
	about.SetTransientFor(&mw.window.Window)
	about.SetModal(true)

	// Application info
	about.SetProgramName("LED Board")
	about.SetLogoIconName("led-board")
	about.SetVersion(mw.app.version)
	about.SetComments("Virtual LED board simulator.\nToggle, recolor, blink, and time out an array of LEDs.")

	about.SetWebsite("https://github.com/atran/led-board")
	about.SetWebsiteLabel("GitHub Repository")

	about.SetCopyright("© 2026 LED Board contributors")
	about.SetLicenseType(gtk.LicenseMITX11)

	about.Show()
}
