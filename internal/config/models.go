package config

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Registry represents the entire user configuration file.
// This stores the language set, application preferences and known backends.
type Registry struct {
	Version     int                 `yaml:"version"`
	Languages   []Language          `yaml:"languages,omitempty"`   // Ordered list of form languages
	Preferences *Preferences        `yaml:"preferences,omitempty"`
	Backends    map[string]*Backend `yaml:"backends,omitempty"` // Keyed by backend instance ID
}

// Language describes one form language. The order of languages in the
// registry is the order of tab headers and of the alt+N keyboard shortcuts.
type Language struct {
	Code string `yaml:"code"` // BCP 47 base code (e.g., "en", "mk")
	Name string `yaml:"name"` // Display name (e.g., "English", "Macedonian")
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	DefaultLanguage  string `yaml:"default_language"`           // Tab activated when nothing is persisted
	SelectedLanguage string `yaml:"selected_language,omitempty"` // Last tab the user chose
	ErrorScanDelayMS int    `yaml:"error_scan_delay_ms"`        // Fallback delay before the one-shot error scan
	AutoDiscover     bool   `yaml:"auto_discover"`              // Enable mDNS backend discovery on startup
	DiscoverTimeout  int    `yaml:"discover_timeout"`           // mDNS discovery timeout in seconds
}

// Backend represents a known admin backend instance.
type Backend struct {
	Nickname string    `yaml:"nickname,omitempty"` // User-friendly name
	BaseURL  string    `yaml:"base_url"`           // e.g., "http://192.168.1.50:8600"
	LastSeen time.Time `yaml:"last_seen,omitempty"`
}

// DefaultLanguages returns the stock language pair the GoGevgelija admin
// ships with. The registry can replace or extend this list without code
// changes.
func DefaultLanguages() []Language {
	return []Language{
		{Code: "en", Name: "English"},
		{Code: "mk", Name: "Macedonian"},
	}
}

// DefaultErrorScanDelayMS is the fallback delay before the one-shot
// validation scan when no backend push signal is available.
const DefaultErrorScanDelayMS = 100

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:   1,
		Languages: DefaultLanguages(),
		Preferences: &Preferences{
			DefaultLanguage:  "en",
			ErrorScanDelayMS: DefaultErrorScanDelayMS,
			AutoDiscover:     true,
			DiscoverTimeout:  10,
		},
		Backends: make(map[string]*Backend),
	}
}

// NormalizeLanguageCode canonicalizes a language code to its BCP 47 base
// form ("EN" -> "en", "mk-MK" -> "mk"). Returns an error for strings that
// do not parse as a language tag.
func NormalizeLanguageCode(code string) (string, error) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("invalid language code %q: %w", code, err)
	}
	base, _ := tag.Base()
	return base.String(), nil
}

// Normalize canonicalizes every language code in the registry and drops
// entries whose code does not parse. Called after loading from disk so the
// rest of the application only ever sees canonical codes.
func (r *Registry) Normalize() {
	out := r.Languages[:0]
	for _, lang := range r.Languages {
		code, err := NormalizeLanguageCode(lang.Code)
		if err != nil {
			continue
		}
		lang.Code = code
		out = append(out, lang)
	}
	r.Languages = out

	if r.Preferences != nil {
		if code, err := NormalizeLanguageCode(r.Preferences.DefaultLanguage); err == nil {
			r.Preferences.DefaultLanguage = code
		}
	}
}

// LanguageByCode retrieves a language descriptor by canonical code.
// The second return value reports whether the code is configured.
func (r *Registry) LanguageByCode(code string) (Language, bool) {
	for _, lang := range r.Languages {
		if lang.Code == code {
			return lang, true
		}
	}
	return Language{}, false
}

// DefaultLanguage returns the configured default language code, falling
// back to "en" when preferences are missing or empty.
func (r *Registry) DefaultLanguage() string {
	if r.Preferences == nil || r.Preferences.DefaultLanguage == "" {
		return "en"
	}
	return r.Preferences.DefaultLanguage
}

// EnsureBackend ensures a backend entry exists in the registry.
// If the backend doesn't exist, creates a new entry with default values.
// Returns the backend entry (existing or newly created).
func (r *Registry) EnsureBackend(id string) *Backend {
	if r.Backends == nil {
		r.Backends = make(map[string]*Backend)
	}

	if backend, exists := r.Backends[id]; exists {
		return backend
	}

	backend := &Backend{}
	r.Backends[id] = backend
	return backend
}

// UpdateBackendLastSeen updates the last seen timestamp and URL for a backend.
func (r *Registry) UpdateBackendLastSeen(id, baseURL string) {
	backend := r.EnsureBackend(id)
	backend.LastSeen = time.Now()
	backend.BaseURL = baseURL
}

// SetBackendNickname sets a user-friendly nickname for a backend.
func (r *Registry) SetBackendNickname(id, nickname string) {
	backend := r.EnsureBackend(id)
	backend.Nickname = nickname
}
