// Package ui provides terminal output components for the ggadmin CLI.
//
// This package uses Lipgloss to render styled output for the one-shot
// commands (show, scan, version). Unlike the interactive editor TUI, these
// components follow a "render once and exit" pattern - they print a styled
// snapshot and return.
//
// # Components
//
//   - Header: command banner showing the operation and its parameters
//   - Result: success/failure/warning boxes with detail rows
//   - Catalog, Form, Backend renderers: styled views of backend data
//
// The Printer ties these together and writes them to a single destination,
// which keeps command output testable.
//
// # Logging Integration
//
// Logging is controlled via the GGADMIN_LOG_LEVEL environment variable and
// goes to stderr. When unset, zap is silent and the curated output here is
// all the user sees.
package ui
