// Package config provides user configuration management for the ggadmin tools.
//
// This package manages a YAML-based configuration file that stores the form
// language set, application preferences (including the last-selected tab), and
// known admin backends. The configuration follows OS-specific conventions for
// storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/ggadmin/config.yaml or $HOME/.config/ggadmin/config.yaml
//   - macOS: $HOME/.config/ggadmin/config.yaml
//   - Windows: %LOCALAPPDATA%\ggadmin\config.yaml
//
// # Languages
//
// The ordered language list drives the tab UI: headers are built in list
// order and alt+1..alt+9 map to positions in the list. The stock pair is
// en/mk; editing the file is all it takes to add a third language. Codes are
// canonicalized through golang.org/x/text/language on load, so "EN" and
// "mk-MK" in the file behave as "en" and "mk".
//
// # Usage Example
//
//	// Load the global registry
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// The tab controller persists its selection through a SelectionStore
//	store := config.NewSelectionStore(registry)
//
//	// Save changes atomically
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config
