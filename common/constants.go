// Package common provides shared constants, types, and utilities
// used across the LED Board application.
package common

import "time"

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "com.ledboard.app"
	// AppName is the display name of the application.
	AppName = "LED Board"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "led-board"
)

// File names used by the application.
const (
	ConfigFileName = "config.yaml"
	LogFileName    = "led-board.log"
)

// LED behavior bounds. Blink intervals and auto-off durations outside
// these ranges are rejected by the board.
const (
	// MaxBlinkInterval is the slowest allowed blink rate. An interval of
	// zero disables blinking entirely.
	MaxBlinkInterval = 10000 * time.Millisecond
	// MinAutoOff is the shortest allowed auto-off duration.
	MinAutoOff = 1 * time.Second
	// MaxAutoOff is the longest allowed auto-off duration.
	MaxAutoOff = 3600 * time.Second
	// TickInterval is how often frontends sweep blink and auto-off deadlines.
	TickInterval = 50 * time.Millisecond
)

// UI constants.
const (
	// DefaultWindowWidth is the default main window width.
	DefaultWindowWidth = 720
	// DefaultWindowHeight is the default main window height.
	DefaultWindowHeight = 560
	// LEDWidgetSize is the fixed pixel size of one LED widget.
	LEDWidgetSize = 50
	// DefaultGridColumns is the number of columns in the LED grid.
	DefaultGridColumns = 5
	// DialogMargin is the standard margin for dialog content.
	DialogMargin = 24
	// TrayIconSize is the size of the system tray icon.
	TrayIconSize = 22
)

// Theme values.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)
