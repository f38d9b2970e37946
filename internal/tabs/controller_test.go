package tabs

import (
	"testing"

	"github.com/gogevgelija/ggadmin/internal/form"
)

func testLanguages() []LanguageDescriptor {
	return []LanguageDescriptor{
		{Code: "en", DisplayName: "English", Shortcut: "alt+1"},
		{Code: "mk", DisplayName: "Macedonian", Shortcut: "alt+2"},
	}
}

func newTestController(store Store) *Controller {
	return NewController(testLanguages(), "en", store)
}

// multilingualForm builds a listing form with two en groups and one mk group.
func multilingualForm() *form.Form {
	return &form.Form{
		ID:   "listing/42",
		Kind: form.KindListing,
		Groups: []*form.FieldGroup{
			{ID: "main", Fields: []*form.Field{{Name: "phone", Label: "Phone"}}},
			{ID: "text-en", Lang: "en", Fields: []*form.Field{{Name: "title", Label: "Title"}}},
			{ID: "hours-en", Lang: "en", Fields: []*form.Field{{Name: "open_time", Label: "Open time"}}},
			{ID: "text-mk", Lang: "mk", Fields: []*form.Field{{Name: "title", Label: "Title"}}},
		},
	}
}

func TestInitializeNoTaggedGroupsIsNoOp(t *testing.T) {
	f := &form.Form{
		ID:   "category/1",
		Kind: form.KindCategory,
		Groups: []*form.FieldGroup{
			{ID: "main", Fields: []*form.Field{{Name: "order", Label: "Order"}}},
		},
	}

	c := newTestController(NewMemoryStore())
	c.Initialize(f)

	if c.Built() {
		t.Error("Initialize() built a tab strip for a form with no tagged groups")
	}
	if len(c.Headers()) != 0 || len(c.Panels()) != 0 {
		t.Error("Initialize() created headers/panels on a no-op form")
	}
	for _, g := range f.Groups {
		if g.Hidden {
			t.Errorf("group %s was hidden by a no-op Initialize()", g.ID)
		}
	}
}

func TestInitializeBuildsPanelsPerPopulatedLanguage(t *testing.T) {
	f := multilingualForm()
	c := newTestController(NewMemoryStore())
	c.Initialize(f)

	if !c.Built() {
		t.Fatal("Initialize() did not build")
	}

	if len(c.Headers()) != 2 || len(c.Panels()) != 2 {
		t.Fatalf("got %d headers / %d panels, want 2/2", len(c.Headers()), len(c.Panels()))
	}

	en := c.PanelByCode("en")
	if en == nil || len(en.Groups) != 2 {
		t.Errorf("en panel should hold 2 groups' content, got %v", en)
	}
	mk := c.PanelByCode("mk")
	if mk == nil || len(mk.Groups) != 1 {
		t.Errorf("mk panel should hold 1 group's content, got %v", mk)
	}

	// Originals hidden, not removed
	if len(f.Groups) != 4 {
		t.Errorf("Initialize() removed groups from the form: %d left, want 4", len(f.Groups))
	}
	for _, g := range f.TaggedGroups() {
		if !g.Hidden {
			t.Errorf("tagged group %s should be hidden after Initialize()", g.ID)
		}
	}
	if f.GroupByID("main").Hidden {
		t.Error("untranslated group should stay visible")
	}
}

func TestInitializeSkipsUnpopulatedLanguage(t *testing.T) {
	f := &form.Form{
		ID:   "blog/7",
		Kind: form.KindBlog,
		Groups: []*form.FieldGroup{
			{ID: "text-en", Lang: "en", Fields: []*form.Field{{Name: "title", Label: "Title"}}},
		},
	}

	c := newTestController(NewMemoryStore())
	c.Initialize(f)

	if len(c.Headers()) != 1 {
		t.Fatalf("got %d headers, want 1 (only en is populated)", len(c.Headers()))
	}
	if c.PanelByCode("mk") != nil {
		t.Error("a panel exists for a language with no groups")
	}
}

func TestClassifyDropsUnknownLanguage(t *testing.T) {
	f := &form.Form{
		ID:   "listing/9",
		Kind: form.KindListing,
		Groups: []*form.FieldGroup{
			{ID: "text-en", Lang: "en", Fields: []*form.Field{{Name: "title", Label: "Title"}}},
			{ID: "text-de", Lang: "de", Fields: []*form.Field{{Name: "title", Label: "Titel"}}},
		},
	}

	c := newTestController(NewMemoryStore())
	c.Initialize(f)

	if len(c.Panels()) != 1 {
		t.Fatalf("got %d panels, want 1 (de is not configured)", len(c.Panels()))
	}
	for _, p := range c.Panels() {
		for _, g := range p.Groups {
			if g.ID == "text-de" {
				t.Error("unknown-language group was attached to a panel")
			}
		}
	}
}

func TestSwitchToIsIdempotent(t *testing.T) {
	c := newTestController(NewMemoryStore())
	c.Initialize(multilingualForm())

	c.SwitchTo("mk")
	c.SwitchTo("mk")

	active := 0
	for _, h := range c.Headers() {
		if h.Active {
			active++
		}
	}
	for _, p := range c.Panels() {
		if p.Active {
			active++
		}
	}
	if active != 2 {
		t.Errorf("after double SwitchTo(mk): %d active header+panel, want 2 (one each)", active)
	}
	if c.ActiveCode() != "mk" {
		t.Errorf("ActiveCode() = %q, want mk", c.ActiveCode())
	}
}

func TestSwitchToUnknownCodeLeavesNoneActive(t *testing.T) {
	c := newTestController(NewMemoryStore())
	c.Initialize(multilingualForm())

	c.SwitchTo("de")

	if c.ActiveCode() != "" {
		t.Errorf("ActiveCode() = %q after switching to an unknown code, want none", c.ActiveCode())
	}
	if c.ActivePanel() != nil {
		t.Error("a panel stayed active after switching to an unknown code")
	}
}

func TestPersistRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	c := newTestController(store)
	c.PersistSelection("mk")

	// A fresh controller over the same store sees the value
	c2 := newTestController(store)
	if got := c2.LoadSelection(); got != "mk" {
		t.Errorf("LoadSelection() = %q, want mk", got)
	}

	// Never persisted: the default comes back
	c3 := newTestController(NewMemoryStore())
	if got := c3.LoadSelection(); got != "en" {
		t.Errorf("LoadSelection() with empty store = %q, want en", got)
	}
}

func TestInitializeRestoresPersistedSelection(t *testing.T) {
	store := NewMemoryStore()
	store.Set("mk")

	c := newTestController(store)
	c.Initialize(multilingualForm())

	if c.ActiveCode() != "mk" {
		t.Errorf("ActiveCode() = %q, want persisted mk", c.ActiveCode())
	}
}

func TestInitializeFallsBackWhenStoredCodeHasNoHeader(t *testing.T) {
	store := NewMemoryStore()
	store.Set("de") // persisted by some other form's language set

	c := newTestController(store)
	c.Initialize(multilingualForm())

	if c.ActiveCode() != "en" {
		t.Errorf("ActiveCode() = %q, want fallback en", c.ActiveCode())
	}
}

func TestInitializeFallsBackToFirstHeader(t *testing.T) {
	// Only mk is populated, so neither the stored code nor the default has
	// a header. The first built header must win over zero active tabs.
	f := &form.Form{
		ID:   "event/3",
		Kind: form.KindEvent,
		Groups: []*form.FieldGroup{
			{ID: "text-mk", Lang: "mk", Fields: []*form.Field{{Name: "title", Label: "Title"}}},
		},
	}

	c := newTestController(NewMemoryStore())
	c.Initialize(f)

	if c.ActiveCode() != "mk" {
		t.Errorf("ActiveCode() = %q, want mk (first and only header)", c.ActiveCode())
	}
}

func TestSelectPersists(t *testing.T) {
	store := NewMemoryStore()
	c := newTestController(store)
	c.Initialize(multilingualForm())

	c.Select("mk")

	if c.ActiveCode() != "mk" {
		t.Errorf("ActiveCode() = %q, want mk", c.ActiveCode())
	}
	if store.Get() != "mk" {
		t.Errorf("store.Get() = %q, want mk", store.Get())
	}
}

func TestScanForErrorsActivatesFirstErrorPanel(t *testing.T) {
	f := multilingualForm()
	f.GroupByID("text-mk").Fields[0].Errors = []string{"This field is required."}

	store := NewMemoryStore()
	store.Set("en")
	c := newTestController(store)
	c.Initialize(f)

	if c.ActiveCode() != "en" {
		t.Fatalf("precondition: active = %q, want en", c.ActiveCode())
	}

	if !c.ScanForErrors() {
		t.Fatal("ScanForErrors() = false, want true (mk panel has an error)")
	}
	if c.ActiveCode() != "mk" {
		t.Errorf("ActiveCode() after scan = %q, want mk regardless of persisted selection", c.ActiveCode())
	}

	// The scan is framework-driven: it must not overwrite the user's choice
	if store.Get() != "en" {
		t.Errorf("store.Get() after scan = %q, want en untouched", store.Get())
	}
}

func TestScanForErrorsStopsAtFirstPanel(t *testing.T) {
	f := multilingualForm()
	f.GroupByID("hours-en").Fields[0].Errors = []string{"Invalid hours."}
	f.GroupByID("text-mk").Fields[0].Errors = []string{"This field is required."}

	c := newTestController(NewMemoryStore())
	c.Initialize(f)
	c.SwitchTo("mk")

	c.ScanForErrors()

	// en comes first in construction order, so it wins even though mk also
	// has errors
	if c.ActiveCode() != "en" {
		t.Errorf("ActiveCode() = %q, want en (first panel with errors)", c.ActiveCode())
	}
}

func TestScanForErrorsNoErrorsLeavesActiveUnchanged(t *testing.T) {
	c := newTestController(NewMemoryStore())
	c.Initialize(multilingualForm())
	c.Select("mk")

	if c.ScanForErrors() {
		t.Error("ScanForErrors() = true on a clean form")
	}
	if c.ActiveCode() != "mk" {
		t.Errorf("ActiveCode() = %q, want mk unchanged", c.ActiveCode())
	}
}

func TestScanForErrorsRunsOnce(t *testing.T) {
	f := multilingualForm()
	c := newTestController(NewMemoryStore())
	c.Initialize(f)

	c.ScanForErrors()

	// An error appearing after the scan must not re-trigger it
	f.GroupByID("text-mk").Fields[0].Errors = []string{"late error"}
	if c.ScanForErrors() {
		t.Error("ScanForErrors() ran a second time")
	}
}

func TestLanguageAt(t *testing.T) {
	c := newTestController(NewMemoryStore())

	lang, ok := c.LanguageAt(1)
	if !ok || lang.Code != "mk" {
		t.Errorf("LanguageAt(1) = %v/%v, want mk descriptor", lang, ok)
	}

	if _, ok := c.LanguageAt(5); ok {
		t.Error("LanguageAt(5) should report false")
	}
	if _, ok := c.LanguageAt(-1); ok {
		t.Error("LanguageAt(-1) should report false")
	}
}

func TestHeaderTitlesAdvertiseShortcuts(t *testing.T) {
	c := newTestController(NewMemoryStore())
	c.Initialize(multilingualForm())

	for _, h := range c.Headers() {
		switch h.Code {
		case "en":
			if h.Title != "English (alt+1)" {
				t.Errorf("en header title = %q, want shortcut hint", h.Title)
			}
		case "mk":
			if h.Title != "Macedonian (alt+2)" {
				t.Errorf("mk header title = %q, want shortcut hint", h.Title)
			}
		}
	}
}
