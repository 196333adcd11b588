// Package tui provides the terminal user interface for LED Board.
// This file contains the lipgloss styles.
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/atran/led-board/led"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2E8B57")).
			Padding(0, 1)

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236"))

	offStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e5a50a")).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2E8B57")).
			Padding(0, 1)

	litCountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2E8B57")).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Padding(1, 2)
)

// ledGlyph renders one LED as a colored glyph. The blink trough scales
// the color toward black since terminals have no alpha channel.
func ledGlyph(l *led.LED) string {
	c := l.DisplayColor()
	if c.IsTransparent() {
		return offStyle.Render("○")
	}

	scale := float64(c.A) / 255
	hex := fmt.Sprintf("#%02X%02X%02X",
		uint8(float64(c.R)*scale),
		uint8(float64(c.G)*scale),
		uint8(float64(c.B)*scale),
	)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●")
}
