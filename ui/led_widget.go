// Package ui provides the graphical user interface for LED Board.
// This file contains the LEDWidget component that renders a single LED
// and handles its mouse interactions.
package ui

import (
	"fmt"
	"math"

	"github.com/diamondburned/gotk4/pkg/cairo"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/atran/led-board/common"
)

// LEDWidget renders one LED as a drawn circle.
// Left click toggles the LED; right click opens the context menu with
// Remove always available and the remaining actions only while lit.
type LEDWidget struct {
	grid    *LEDGrid
	ledID   int
	area    *gtk.DrawingArea
	popover *gtk.Popover
}

// NewLEDWidget creates a widget bound to the LED with the given ID.
func NewLEDWidget(grid *LEDGrid, ledID int) *LEDWidget {
	w := &LEDWidget{
		grid:  grid,
		ledID: ledID,
	}

	w.area = gtk.NewDrawingArea()
	w.area.SetSizeRequest(common.LEDWidgetSize, common.LEDWidgetSize)
	w.area.AddCSSClass("led-cell")
	w.area.SetTooltipText(fmt.Sprintf("LED #%d", ledID))
	w.area.SetDrawFunc(w.draw)

	// Left click toggles
	primary := gtk.NewGestureClick()
	primary.SetButton(gdk.BUTTON_PRIMARY)
	primary.ConnectPressed(func(nPress int, x, y float64) {
		w.onToggle()
	})
	w.area.AddController(primary)

	// Right click opens the context menu
	secondary := gtk.NewGestureClick()
	secondary.SetButton(gdk.BUTTON_SECONDARY)
	secondary.ConnectPressed(func(nPress int, x, y float64) {
		w.showContextMenu()
	})
	w.area.AddController(secondary)

	return w
}

// GetWidget returns the drawing area to be added to a container.
func (w *LEDWidget) GetWidget() gtk.Widgetter {
	return w.area
}

// ID returns the bound LED's identifier.
func (w *LEDWidget) ID() int {
	return w.ledID
}

// Refresh redraws the widget after the LED's state changed.
func (w *LEDWidget) Refresh() {
	w.area.QueueDraw()
}

// draw paints the LED lens: a filled circle in the LED's display color,
// or an outlined dark socket when the LED is off.
func (w *LEDWidget) draw(area *gtk.DrawingArea, cr *cairo.Context, width, height int) {
	l, err := w.grid.board().Get(w.ledID)
	if err != nil {
		return
	}

	cx := float64(width) / 2
	cy := float64(height) / 2
	radius := math.Min(cx, cy) - 4

	c := l.DisplayColor()
	if c.IsTransparent() {
		// Dark socket with a subtle rim
		cr.SetSourceRGBA(0.2, 0.2, 0.2, 0.6)
		cr.Arc(cx, cy, radius, 0, 2*math.Pi)
		cr.Fill()
	} else {
		cr.SetSourceRGBA(
			float64(c.R)/255,
			float64(c.G)/255,
			float64(c.B)/255,
			float64(c.A)/255,
		)
		cr.Arc(cx, cy, radius, 0, 2*math.Pi)
		cr.Fill()
	}

	cr.SetSourceRGBA(0, 0, 0, 0.35)
	cr.SetLineWidth(1.5)
	cr.Arc(cx, cy, radius, 0, 2*math.Pi)
	cr.Stroke()
}

// onToggle flips the LED between on and off.
func (w *LEDWidget) onToggle() {
	if err := w.grid.board().Toggle(w.ledID); err != nil {
		common.LogWarn("Toggle LED #%d: %v", w.ledID, err)
	}
}

// showContextMenu opens the right-click menu. Remove is always offered;
// color, blink rate, and auto-off only apply to a lit LED.
func (w *LEDWidget) showContextMenu() {
	l, err := w.grid.board().Get(w.ledID)
	if err != nil {
		return
	}

	if w.popover != nil {
		w.popover.Unparent()
	}

	w.popover = gtk.NewPopover()
	w.popover.SetParent(w.area)

	box := gtk.NewBox(gtk.OrientationVertical, 0)
	box.SetMarginTop(6)
	box.SetMarginBottom(6)
	box.SetMarginStart(6)
	box.SetMarginEnd(6)

	mw := w.grid.mainWindow

	if l.On() {
		box.Append(w.contextItem("Change Color...", func() {
			mw.showColorDialog(w.ledID)
		}))
		box.Append(w.contextItem("Set Blink Rate...", func() {
			mw.showBlinkDialog(w.ledID)
		}))
		box.Append(w.contextItem("Set Auto-Off Timer...", func() {
			mw.showAutoOffDialog(w.ledID)
		}))

		sep := gtk.NewSeparator(gtk.OrientationHorizontal)
		sep.SetMarginTop(4)
		sep.SetMarginBottom(4)
		box.Append(sep)
	}

	box.Append(w.contextItem("Remove LED", func() {
		w.onRemove()
	}))

	w.popover.SetChild(box)
	w.popover.Popup()
}

// contextItem creates one flat menu button that closes the popover
// before running its action.
func (w *LEDWidget) contextItem(label string, action func()) *gtk.Button {
	btn := gtk.NewButtonWithLabel(label)
	btn.AddCSSClass("flat")
	btn.AddCSSClass("context-item")
	if child := btn.Child(); child != nil {
		if lbl, ok := child.(*gtk.Label); ok {
			lbl.SetXAlign(0)
		}
	}
	btn.ConnectClicked(func() {
		w.popover.Popdown()
		action()
	})
	return btn
}

// onRemove deletes this LED from the board.
func (w *LEDWidget) onRemove() {
	if err := w.grid.board().Remove(w.ledID); err != nil {
		common.LogWarn("Remove LED #%d: %v", w.ledID, err)
	}
}

// unparent detaches the widget's popover before the widget is dropped
// from the grid. GTK4 popovers must be unparented explicitly.
func (w *LEDWidget) unparent() {
	if w.popover != nil {
		w.popover.Unparent()
		w.popover = nil
	}
}

// rebind points the widget at a different LED ID after the board
// renumbered its collection.
func (w *LEDWidget) rebind(id int) {
	w.ledID = id
	w.area.SetTooltipText(fmt.Sprintf("LED #%d", id))
	w.area.QueueDraw()
}
