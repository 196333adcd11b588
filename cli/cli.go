// Package cli provides command-line functionality for LED Board.
// This covers the non-GUI surface: usage help and inspecting the
// persisted settings from the terminal.
package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/atran/led-board/common"
	"github.com/atran/led-board/config"
)

// ShowSettings prints the persisted configuration as a table.
func ShowSettings() error {
	cfg, err := config.Load()
	if err != nil {
		return common.WrapError(err, "failed to load configuration")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SETTING\tVALUE")
	fmt.Fprintln(w, "-------\t-----")
	fmt.Fprintf(w, "Theme\t%s\n", cfg.Theme)
	fmt.Fprintf(w, "Grid columns\t%d\n", cfg.Columns)
	fmt.Fprintf(w, "Startup LEDs\t%d\n", cfg.StartupLEDs)
	fmt.Fprintf(w, "Default color\t%s\n", cfg.DefaultColor)
	fmt.Fprintf(w, "Minimize to tray\t%v\n", cfg.MinimizeToTray)
	fmt.Fprintf(w, "Notifications\t%v\n", cfg.ShowNotifications)
	w.Flush()

	return nil
}

// PrintHelp prints CLI usage help.
func PrintHelp() {
	fmt.Println(`LED Board - Virtual LED board simulator

Usage:
  led-board [OPTIONS]

Options:
  --version         Show version and exit
  --verbose         Enable verbose logging
  --tui             Run the terminal interface instead of the GUI
  --leds N          Start with N LEDs on the board (overrides settings)
  --settings        Print the persisted settings and exit
  --help            Show this help message

Examples:
  led-board
  led-board --tui
  led-board --tui --leds 10
  led-board --settings

Notes:
  - Left-click an LED to toggle it; right-click for its context menu
  - Settings are stored in ~/.config/led-board/config.yaml
  - Run without options to launch the GUI`)
}
