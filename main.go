// Package main provides the entry point for the LED Board application.
// LED Board is a GTK4-based virtual LED board simulator with an optional
// terminal interface.
//
// Features:
//   - Grid of virtual LEDs that toggle with a click
//   - Per-LED color, blink rate, and auto-off timer
//   - Board-wide operations over every lit LED
//   - System tray indicator with quick actions
//   - Terminal interface for headless sessions
//
// Usage:
//
//	led-board [options]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atran/led-board/cli"
	"github.com/atran/led-board/common"
	"github.com/atran/led-board/config"
	"github.com/atran/led-board/led"
	"github.com/atran/led-board/tui"
	"github.com/atran/led-board/ui"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	showVersion  = flag.Bool("version", false, "Show version and exit")
	verbose      = flag.Bool("verbose", false, "Enable verbose logging")
	showHelp     = flag.Bool("help", false, "Show help message")
	runTUI       = flag.Bool("tui", false, "Run the terminal interface instead of the GUI")
	startupLEDs  = flag.Int("leds", -1, "Start with N LEDs on the board (overrides settings)")
	showSettings = flag.Bool("settings", false, "Print the persisted settings and exit")
)

func main() {
	flag.Parse()

	// Handle help flag
	if *showHelp {
		cli.PrintHelp()
		os.Exit(0)
	}

	// Handle version flag
	if *showVersion {
		fmt.Printf("LED Board v%s\n", appVersion)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		os.Exit(0)
	}

	// Initialize logger with structured logging and file output
	logLevel := common.LevelInfo
	if *verbose {
		logLevel = common.LevelDebug
	}

	if err := common.InitLogger(common.LogConfig{
		Level:       logLevel,
		EnableFile:  true,
		MaxFileSize: 5 * 1024 * 1024, // 5MB
		MaxBackups:  5,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
	defer common.CloseLogger()

	if *showSettings {
		if err := cli.ShowSettings(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Setup graceful shutdown context
	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals (SIGINT, SIGTERM)
	setupSignalHandler(cancel)

	if *runTUI {
		runTerminal()
		return
	}

	// Start the GTK application (GUI mode)
	common.LogInfo("Starting %s v%s", common.AppName, appVersion)
	app := ui.NewApplication(common.AppID, appVersion, *startupLEDs)
	exitCode := app.Run(os.Args[:1])

	if exitCode != 0 {
		common.LogWarn("Application exited with code %d", exitCode)
	}
	os.Exit(exitCode)
}

// runTerminal runs the bubbletea frontend on a fresh board.
func runTerminal() {
	cfg, err := config.Load()
	if err != nil {
		common.LogWarn("Using default settings: %v", err)
		cfg = config.DefaultConfig()
	}

	board := led.NewBoard()
	board.SetColumns(cfg.Columns)

	count := cfg.StartupLEDs
	if *startupLEDs >= 0 {
		count = *startupLEDs
	}
	for i := 0; i < count; i++ {
		board.Add()
	}

	common.LogInfo("Starting %s v%s (terminal)", common.AppName, appVersion)
	if err := tui.Run(board, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupSignalHandler configures graceful shutdown on SIGINT/SIGTERM.
// When a signal is received, it cancels the context to allow cleanup.
func setupSignalHandler(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		common.LogInfo("Received signal %v, initiating graceful shutdown...", sig)
		cancel()
		// GTK and bubbletea handle their own shutdown paths; the context
		// only guards the brief startup window.
	}()
}
