// Package ui holds the terminal plumbing shared by the prompt and the
// wizard, and the non-interactive output of the formulary CLI.
//
// # Event loop
//
// Loop runs a Bubble Tea model to completion. ProgramLoop is the real
// implementation backed by tea.Program; the uitest subpackage provides a
// scripted one for tests.
//
// # Output
//
// Printer renders header boxes, success boxes and error boxes with colors
// taken from the active theme. Width follows the terminal when the output
// is one.
//
// # Logging Integration
//
// Logging is controlled by the FORMULARY_LOG_LEVEL environment variable.
// When unset, zap logging is silent so the terminal UI is not disturbed.
package ui
