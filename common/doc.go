// Package common provides shared constants, types, utilities, and interfaces
// used throughout the LED Board application.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: Application-wide constants like LED behavior bounds, file names, and UI dimensions
//   - Errors: Sentinel errors for consistent error handling across packages
//   - Interfaces: Abstractions for notifications and logging
//   - Logger: Structured logging with multiple output destinations
//   - Utils: Common utility functions for file and directory handling
//
// # Usage
//
// Import the package to access shared functionality:
//
//	import "github.com/atran/led-board/common"
//
//	// Use constants
//	size := common.LEDWidgetSize
//
//	// Use logger
//	common.LogInfo("LED #%d turned on", id)
//
//	// Check errors
//	if errors.Is(err, common.ErrNoLEDs) {
//	    // Warn the user there is nothing to operate on
//	}
package common
