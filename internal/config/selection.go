package config

import (
	"github.com/gogevgelija/ggadmin/internal/logging"
	"go.uber.org/zap"
)

// SelectionStore persists the last-selected tab language in the registry.
// It satisfies the tabs.Store interface so the tab controller never touches
// the configuration file directly.
//
// A write failure is swallowed: the selection survives for the rest of the
// session in memory and simply will not outlive the process. The next load
// then falls back to the default language, which matches the behavior of a
// browser with storage disabled.
type SelectionStore struct {
	registry *Registry
}

// NewSelectionStore creates a store backed by the given registry.
func NewSelectionStore(registry *Registry) *SelectionStore {
	return &SelectionStore{registry: registry}
}

// Get returns the persisted language code, or "" when nothing was ever
// persisted.
func (s *SelectionStore) Get() string {
	if s.registry == nil || s.registry.Preferences == nil {
		return ""
	}
	return s.registry.Preferences.SelectedLanguage
}

// Set persists the language code, writing the registry through to disk.
func (s *SelectionStore) Set(code string) {
	if s.registry == nil {
		return
	}
	if s.registry.Preferences == nil {
		s.registry.Preferences = &Preferences{}
	}
	s.registry.Preferences.SelectedLanguage = code

	if err := s.registry.Save(); err != nil {
		logging.Debug("Failed to persist tab selection",
			zap.String("language", code),
			zap.Error(err),
		)
	}
}
