package tabs

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gogevgelija/ggadmin/internal/form"
	"github.com/gogevgelija/ggadmin/internal/logging"
)

// LanguageDescriptor describes one configured form language. Descriptors
// are immutable for the session; their order is the header order and the
// order of the alt+N shortcuts.
type LanguageDescriptor struct {
	Code        string // canonical language code ("en", "mk")
	DisplayName string // header label ("English", "Macedonian")
	Shortcut    string // keyboard shortcut hint ("alt+1"), "" when none
}

// Title returns the header tooltip text: the display name, with the
// shortcut advertised when the language has one.
func (d LanguageDescriptor) Title() string {
	if d.Shortcut == "" {
		return d.DisplayName
	}
	return fmt.Sprintf("%s (%s)", d.DisplayName, d.Shortcut)
}

// Header is one clickable tab label.
type Header struct {
	Code   string
	Label  string
	Title  string // tooltip text, includes the shortcut hint when one exists
	Active bool
}

// Panel holds the re-parented content of every field group for one language,
// in form order.
type Panel struct {
	Code   string
	Groups []*form.FieldGroup
	Active bool
}

// HasErrors reports whether any group under the panel carries a validation
// error.
func (p *Panel) HasErrors() bool {
	for _, g := range p.Groups {
		if g.HasErrors() {
			return true
		}
	}
	return false
}

// Controller detects multilingual field groups, builds the tab strip and
// manages active-tab state. A zero controller is unusable; construct with
// NewController.
type Controller struct {
	languages   []LanguageDescriptor
	defaultCode string
	store       Store

	form    *form.Form
	headers []*Header
	panels  []*Panel
	built   bool
	scanned bool
}

// NewController creates a controller over the configured language set.
// defaultCode is activated when nothing usable was persisted; store may not
// be nil (use NewMemoryStore for a throwaway session).
func NewController(languages []LanguageDescriptor, defaultCode string, store Store) *Controller {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Controller{
		languages:   languages,
		defaultCode: defaultCode,
		store:       store,
	}
}

// Initialize scans the form and builds the tab UI. If no field group carries
// a language tag the call is a no-op: nothing is built, nothing is hidden,
// and the form is left untouched. Otherwise one header and one panel exist
// afterwards per language with at least one tagged group, every tagged group
// is hidden in place, and exactly one tab is active.
func (c *Controller) Initialize(f *form.Form) {
	// The guard runs before any mutation so non-multilingual forms keep
	// their rendering byte-for-byte.
	if f == nil || !f.HasMultilingualGroups() {
		return
	}

	c.form = f
	c.headers = nil
	c.panels = nil
	c.built = false
	c.scanned = false

	byCode := make(map[string]*Panel, len(c.languages))
	for _, g := range f.TaggedGroups() {
		code, ok := c.Classify(g)
		g.Hidden = true
		if !ok {
			continue
		}
		panel := byCode[code]
		if panel == nil {
			panel = &Panel{Code: code}
			byCode[code] = panel
		}
		panel.Groups = append(panel.Groups, g)
	}

	// Headers and panels follow descriptor order, not form order, and only
	// exist for populated languages.
	for _, lang := range c.languages {
		panel, ok := byCode[lang.Code]
		if !ok {
			continue
		}
		c.headers = append(c.headers, &Header{
			Code:  lang.Code,
			Label: lang.DisplayName,
			Title: lang.Title(),
		})
		c.panels = append(c.panels, panel)
	}

	if len(c.headers) == 0 {
		// Every tagged group had an unknown language. Nothing to show.
		c.form = nil
		return
	}
	c.built = true

	c.activateInitial()
}

// activateInitial restores the persisted selection, falling through to the
// default language and then to the first built header. A built controller
// never ends Initialize with zero active tabs.
func (c *Controller) activateInitial() {
	stored := c.LoadSelection()
	c.SwitchTo(stored)
	if c.ActiveCode() != "" {
		return
	}

	logging.Debug("Persisted tab has no header, falling back",
		zap.String("stored", stored),
		zap.String("default", c.defaultCode),
	)
	c.SwitchTo(c.defaultCode)
	if c.ActiveCode() != "" {
		return
	}
	c.SwitchTo(c.headers[0].Code)
}

// Built reports whether Initialize found multilingual groups and built the
// tab strip.
func (c *Controller) Built() bool {
	return c.built
}

// Classify derives a group's language code from its language tag, matched
// against the configured languages. A group whose tag matches no configured
// code contributes to no panel; the drop leaves a debug log line and nothing
// else.
func (c *Controller) Classify(g *form.FieldGroup) (string, bool) {
	tag := g.LanguageTag()
	if tag == "" {
		return "", false
	}
	for _, lang := range c.languages {
		if lang.Code == tag {
			return tag, true
		}
	}
	logging.LogDroppedGroup(g.ID, tag)
	return "", false
}

// SwitchTo clears the active designation from all headers and panels, then
// sets it solely on the pair matching code. When no header matches, nothing
// ends up active and no error is raised. Calling it twice with the same code
// yields the same single active pair.
func (c *Controller) SwitchTo(code string) {
	for _, h := range c.headers {
		h.Active = false
	}
	for _, p := range c.panels {
		p.Active = false
	}

	for i, h := range c.headers {
		if h.Code == code {
			h.Active = true
			c.panels[i].Active = true
			return
		}
	}
	logging.Debug("Switch to unknown tab left none active", zap.String("language", code))
}

// Select is the user-input path: it switches to code and persists the
// choice. Header clicks and keyboard shortcuts land here; the error scan
// does not, so framework-driven activation never overwrites the user's
// stored preference.
func (c *Controller) Select(code string) {
	c.SwitchTo(code)
	c.PersistSelection(code)
}

// PersistSelection writes the language code to the store.
func (c *Controller) PersistSelection(code string) {
	c.store.Set(code)
}

// LoadSelection reads the persisted language code, returning the configured
// default when nothing has ever been persisted.
func (c *Controller) LoadSelection() string {
	if code := c.store.Get(); code != "" {
		return code
	}
	return c.defaultCode
}

// ScanForErrors inspects each panel in construction order and activates the
// first one containing a validation error, without persisting the change.
// It runs at most once per Initialize; later calls report false. When no
// panel has errors the active tab is left unchanged.
func (c *Controller) ScanForErrors() bool {
	if !c.built || c.scanned {
		return false
	}
	c.scanned = true

	for _, p := range c.panels {
		if p.HasErrors() {
			logging.Debug("Error scan activating panel", zap.String("language", p.Code))
			c.SwitchTo(p.Code)
			return true
		}
	}
	return false
}

// ActiveCode returns the code of the active header, or "" when none is
// active.
func (c *Controller) ActiveCode() string {
	for _, h := range c.headers {
		if h.Active {
			return h.Code
		}
	}
	return ""
}

// ActivePanel returns the active panel, or nil when none is active.
func (c *Controller) ActivePanel() *Panel {
	for _, p := range c.panels {
		if p.Active {
			return p
		}
	}
	return nil
}

// Headers returns the tab headers in display order.
func (c *Controller) Headers() []*Header {
	return c.headers
}

// Panels returns the content panels in display order.
func (c *Controller) Panels() []*Panel {
	return c.panels
}

// PanelByCode returns the panel for a language code, or nil when the
// language has no panel on this form.
func (c *Controller) PanelByCode(code string) *Panel {
	for _, p := range c.panels {
		if p.Code == code {
			return p
		}
	}
	return nil
}

// LanguageAt returns the configured language descriptor at the given
// position. It backs the alt+N shortcuts, which address languages by their
// configured order whether or not the current form has a panel for them.
func (c *Controller) LanguageAt(index int) (LanguageDescriptor, bool) {
	if index < 0 || index >= len(c.languages) {
		return LanguageDescriptor{}, false
	}
	return c.languages[index], true
}

// Languages returns the configured language descriptors in order.
func (c *Controller) Languages() []LanguageDescriptor {
	return c.languages
}
