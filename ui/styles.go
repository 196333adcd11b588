// Package ui provides the graphical user interface for LED Board.
// This file contains the CSS styles and theming for a modern, clean UI.
package ui

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// CSS styles for modern LED Board UI - Dark theme compatible
// Uses theme-aware colors that work with system dark/light mode
const appCSS = `
/* ============================================
   LED Board - Modern UI Styles (GTK4)
   Theme-aware styles
   ============================================ */

/* Board container - the gray panel the LEDs sit on */
.led-board {
    background-color: alpha(currentColor, 0.08);
    border-radius: 12px;
    border: 1px solid alpha(currentColor, 0.15);
    padding: 12px;
}

/* Individual LED cells */
.led-cell {
    border-radius: 6px;
}

.led-cell:hover {
    background-color: alpha(currentColor, 0.08);
}

/* Control panel buttons - sea green like classroom LED kits */
.control-button {
    background-color: #2E8B57;
    color: white;
    border-radius: 6px;
    padding: 6px 12px;
    font-weight: 600;
}

.control-button:hover {
    background-color: #267349;
}

.control-button image {
    color: white;
    -gtk-icon-style: symbolic;
}

/* Remove All - red */
button.destructive-action {
    background-color: #e01b24;
    color: white;
}

button.destructive-action:hover {
    background-color: #c01c28;
}

/* Context menu items */
.context-item {
    background-color: transparent;
    border-radius: 6px;
    padding: 6px 12px;
}

.context-item:hover {
    background-color: alpha(currentColor, 0.1);
}

/* Lit counter in the status bar */
.lit-counter {
    font-family: monospace;
    font-size: 12px;
    font-weight: 500;
    color: #2E8B57;
    padding: 4px 10px;
    background-color: alpha(#2E8B57, 0.15);
    border-radius: 14px;
}

/* Empty State */
.empty-state-icon {
    opacity: 0.4;
}

/* Status Bar */
.status-bar {
    border-top: 1px solid alpha(currentColor, 0.15);
    padding: 6px 12px;
    opacity: 0.8;
}

/* Entry fields */
entry {
    border-radius: 6px;
    min-height: 34px;
}

/* Spin buttons in dialogs */
spinbutton {
    border-radius: 6px;
}

/* Flat button */
button.flat {
    background-color: transparent;
}

button.flat:hover {
    background-color: alpha(currentColor, 0.1);
}
`

// LoadStyles loads the custom CSS styles for the application.
// Should be called during application startup.
func LoadStyles() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromString(appCSS)

	gtk.StyleContextAddProviderForDisplay(
		display,
		provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
}
