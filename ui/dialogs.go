// Package ui provides the graphical user interface for LED Board.
// This file contains the color, blink rate, and auto-off dialogs shared
// by the per-LED context menu and the control panel.
package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/atran/led-board/common"
	"github.com/atran/led-board/led"
)

// showColorDialog opens the color picker for a single lit LED.
func (mw *MainWindow) showColorDialog(id int) {
	l, err := mw.app.board.Get(id)
	if err != nil {
		return
	}

	mw.pickColor(fmt.Sprintf("Select Color for LED #%d", id), l.Color(), func(c led.Color) {
		if err := mw.app.board.SetColor(id, c); err != nil {
			mw.showWarning("Change Color", err.Error())
			return
		}
		mw.SetStatus(fmt.Sprintf("LED #%d recolored", id))
	})
}

// showAllColorDialog opens the color picker for every lit LED.
func (mw *MainWindow) showAllColorDialog() {
	// Guard before opening the picker so the user gets the warning
	// immediately instead of after choosing a color.
	if err := mw.checkAnyLit(); err != nil {
		mw.showWarning("Change All Colors", err.Error())
		return
	}

	initial, _ := led.ParseHex(mw.app.config.DefaultColor)

	mw.pickColor("Select Color for All Lit LEDs", initial, func(c led.Color) {
		if err := mw.app.board.SetAllColor(c); err != nil {
			mw.showWarning("Change All Colors", err.Error())
			return
		}
		mw.SetStatus("Recolored all lit LEDs")
	})
}

// pickColor opens a modal color chooser and reports the selection.
func (mw *MainWindow) pickColor(title string, initial led.Color, onPicked func(led.Color)) {
	dialog := gtk.NewColorChooserDialog(title, &mw.window.Window)
	dialog.SetModal(true)
	dialog.SetUseAlpha(false)

	if !initial.IsTransparent() {
		rgba := gdk.NewRGBA(
			float32(initial.R)/255,
			float32(initial.G)/255,
			float32(initial.B)/255,
			1,
		)
		dialog.SetRGBA(&rgba)
	}

	dialog.ConnectResponse(func(responseID int) {
		if responseID == int(gtk.ResponseOK) {
			rgba := dialog.RGBA()
			c := led.Color{
				R: uint8(rgba.Red() * 255),
				G: uint8(rgba.Green() * 255),
				B: uint8(rgba.Blue() * 255),
				A: 255,
			}
			onPicked(c)
		}
		dialog.Destroy()
	})

	dialog.Show()
}

// showBlinkDialog opens the blink rate dialog for one LED.
func (mw *MainWindow) showBlinkDialog(id int) {
	l, err := mw.app.board.Get(id)
	if err != nil {
		return
	}

	mw.spinDialog(spinDialogOpts{
		title:   fmt.Sprintf("Blink Rate for LED #%d", id),
		message: "Milliseconds between blinks (0 disables blinking)",
		min:     0,
		max:     float64(common.MaxBlinkInterval.Milliseconds()),
		step:    50,
		initial: float64(l.BlinkInterval().Milliseconds()),
	}, func(value float64) {
		d := time.Duration(value) * time.Millisecond
		if err := mw.app.board.SetBlinkInterval(id, d); err != nil {
			mw.showWarning("Set Blink Rate", err.Error())
			return
		}
		mw.ledGrid.EnsureTicking()
		mw.SetStatus(fmt.Sprintf("LED #%d blink rate set to %v", id, d))
	})
}

// showAllBlinkDialog opens the blink rate dialog for every lit LED.
func (mw *MainWindow) showAllBlinkDialog() {
	if err := mw.checkAnyLit(); err != nil {
		mw.showWarning("Set All Blink Rates", err.Error())
		return
	}

	mw.spinDialog(spinDialogOpts{
		title:   "Blink Rate for All Lit LEDs",
		message: "Milliseconds between blinks (0 disables blinking)",
		min:     0,
		max:     float64(common.MaxBlinkInterval.Milliseconds()),
		step:    50,
		initial: 500,
	}, func(value float64) {
		d := time.Duration(value) * time.Millisecond
		if err := mw.app.board.SetAllBlinkInterval(d); err != nil {
			mw.showWarning("Set All Blink Rates", err.Error())
			return
		}
		mw.ledGrid.EnsureTicking()
		mw.SetStatus(fmt.Sprintf("Blink rate of all lit LEDs set to %v", d))
	})
}

// showAutoOffDialog opens the auto-off timer dialog for one LED.
func (mw *MainWindow) showAutoOffDialog(id int) {
	mw.spinDialog(spinDialogOpts{
		title:   fmt.Sprintf("Auto-Off Timer for LED #%d", id),
		message: "Seconds until the LED turns itself off",
		min:     1,
		max:     common.MaxAutoOff.Seconds(),
		step:    1,
		initial: 10,
	}, func(value float64) {
		d := time.Duration(value) * time.Second
		if err := mw.app.board.SetAutoOff(id, d); err != nil {
			mw.showWarning("Set Auto-Off Timer", err.Error())
			return
		}
		mw.ledGrid.EnsureTicking()
		mw.SetStatus(fmt.Sprintf("LED #%d turns off in %v", id, d))
	})
}

// showAllAutoOffDialog opens the auto-off timer dialog for every lit LED.
func (mw *MainWindow) showAllAutoOffDialog() {
	if err := mw.checkAnyLit(); err != nil {
		mw.showWarning("Set All Auto-Off Timers", err.Error())
		return
	}

	mw.spinDialog(spinDialogOpts{
		title:   "Auto-Off Timer for All Lit LEDs",
		message: "Seconds until the lit LEDs turn themselves off",
		min:     1,
		max:     common.MaxAutoOff.Seconds(),
		step:    1,
		initial: 10,
	}, func(value float64) {
		d := time.Duration(value) * time.Second
		if err := mw.app.board.SetAllAutoOff(d); err != nil {
			mw.showWarning("Set All Auto-Off Timers", err.Error())
			return
		}
		mw.ledGrid.EnsureTicking()
		mw.SetStatus(fmt.Sprintf("All lit LEDs turn off in %v", d))
	})
}

// checkAnyLit returns the guard error the collection dialogs surface
// before opening: the board must exist and have at least one lit LED.
func (mw *MainWindow) checkAnyLit() error {
	if mw.app.board.Len() == 0 {
		return common.ErrNoLEDs
	}
	if mw.app.board.LitCount() == 0 {
		return common.ErrNoneLit
	}
	return nil
}

// spinDialogOpts configures one numeric input dialog.
type spinDialogOpts struct {
	title   string
	message string
	min     float64
	max     float64
	step    float64
	initial float64
}

// spinDialog shows a modal dialog with a single spin button.
func (mw *MainWindow) spinDialog(opts spinDialogOpts, onAccept func(value float64)) {
	window := gtk.NewWindow()
	window.SetTitle(opts.title)
	window.SetTransientFor(&mw.window.Window)
	window.SetModal(true)
	window.SetDefaultSize(380, 180)
	window.SetResizable(false)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 0)

	contentBox := gtk.NewBox(gtk.OrientationVertical, 12)
	contentBox.SetMarginTop(24)
	contentBox.SetMarginBottom(12)
	contentBox.SetMarginStart(24)
	contentBox.SetMarginEnd(24)

	lbl := gtk.NewLabel(opts.message)
	lbl.SetXAlign(0)
	lbl.SetWrap(true)
	contentBox.Append(lbl)

	spin := gtk.NewSpinButtonWithRange(opts.min, opts.max, opts.step)
	spin.SetValue(opts.initial)
	spin.SetNumeric(true)
	contentBox.Append(spin)

	mainBox.Append(contentBox)

	// Button bar
	buttonBox := gtk.NewBox(gtk.OrientationHorizontal, 12)
	buttonBox.SetHAlign(gtk.AlignEnd)
	buttonBox.SetMarginTop(12)
	buttonBox.SetMarginBottom(24)
	buttonBox.SetMarginStart(24)
	buttonBox.SetMarginEnd(24)

	cancelBtn := gtk.NewButtonWithLabel("Cancel")
	cancelBtn.ConnectClicked(func() {
		window.Close()
	})
	buttonBox.Append(cancelBtn)

	acceptBtn := gtk.NewButtonWithLabel("Apply")
	acceptBtn.AddCSSClass("suggested-action")
	acceptBtn.ConnectClicked(func() {
		value := spin.Value()
		window.Close()
		onAccept(value)
	})
	buttonBox.Append(acceptBtn)

	mainBox.Append(buttonBox)

	window.SetChild(mainBox)
	window.Show()
	spin.GrabFocus()
}

// showWarning displays a warning dialog for a rejected operation.
func (mw *MainWindow) showWarning(title, message string) {
	mw.messageDialog(title, message, "dialog-warning-symbolic")
}

// showError displays an error dialog.
func (mw *MainWindow) showError(title, message string) {
	mw.messageDialog(title, message, "dialog-error-symbolic")
}

// showInfo displays an information dialog.
func (mw *MainWindow) showInfo(title, message string) {
	mw.messageDialog(title, message, "dialog-information-symbolic")
}

// messageDialog shows a simple modal message with an icon and OK button.
func (mw *MainWindow) messageDialog(title, message, iconName string) {
	window := gtk.NewWindow()
	window.SetTitle(title)
	window.SetTransientFor(&mw.window.Window)
	window.SetModal(true)
	window.SetDefaultSize(350, 150)
	window.SetResizable(false)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 12)
	mainBox.SetMarginTop(24)
	mainBox.SetMarginBottom(24)
	mainBox.SetMarginStart(24)
	mainBox.SetMarginEnd(24)
	mainBox.SetHAlign(gtk.AlignCenter)

	icon := gtk.NewImage()
	icon.SetFromIconName(iconName)
	icon.SetPixelSize(48)
	mainBox.Append(icon)

	titleLabel := gtk.NewLabel(title)
	titleLabel.AddCSSClass("heading")
	mainBox.Append(titleLabel)

	msgLabel := gtk.NewLabel(message)
	msgLabel.SetWrap(true)
	msgLabel.SetMaxWidthChars(40)
	mainBox.Append(msgLabel)

	okBtn := gtk.NewButtonWithLabel("OK")
	okBtn.SetHAlign(gtk.AlignCenter)
	okBtn.SetMarginTop(12)
	okBtn.ConnectClicked(func() {
		window.Close()
	})
	mainBox.Append(okBtn)

	window.SetChild(mainBox)
	window.Show()
}

// surfaceBoardError routes a board error to the right dialog: guard
// failures become warnings, anything else an error dialog.
func (mw *MainWindow) surfaceBoardError(title string, err error) {
	switch {
	case errors.Is(err, common.ErrNoLEDs),
		errors.Is(err, common.ErrAllOn),
		errors.Is(err, common.ErrAllOff),
		errors.Is(err, common.ErrNoneLit):
		mw.showWarning(title, err.Error())
	default:
		mw.showError(title, err.Error())
	}
}
