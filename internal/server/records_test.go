package server

import (
	"testing"

	"github.com/gogevgelija/ggadmin/internal/form"
)

func sampleStore() *Store {
	s := NewStore(nil)
	s.SeedSampleData()
	return s
}

func TestNewStoreDefaultLanguages(t *testing.T) {
	s := NewStore(nil)
	if len(s.languages) != 2 {
		t.Fatalf("expected 2 default languages, got %d", len(s.languages))
	}
	if s.languages[0].Code != "en" || s.languages[1].Code != "mk" {
		t.Errorf("unexpected default languages: %v", s.languages)
	}
}

func TestStoreAddGet(t *testing.T) {
	s := NewStore(nil)
	f := s.buildForm(form.KindCategory, 7, "Cafes", nil, map[string]string{
		"name_en": "Cafes",
		"name_mk": "Кафулиња",
	})
	s.Add(f)

	got := s.Get("category/7")
	if got == nil {
		t.Fatal("Get returned nil for added form")
	}
	if got.Title != "Cafes" {
		t.Errorf("Title = %q", got.Title)
	}
	if s.Get("category/999") != nil {
		t.Error("Get should return nil for unknown ID")
	}
}

func TestStoreCatalogOrder(t *testing.T) {
	s := sampleStore()
	catalog := s.Catalog()

	if len(catalog.Sections) != 1 || catalog.Sections[0].Name != "MAIN" {
		t.Fatalf("expected single MAIN section, got %v", catalog.Sections)
	}

	forms := catalog.Sections[0].Forms
	if len(forms) != 4 {
		t.Fatalf("expected 4 seeded forms, got %d", len(forms))
	}

	// Admin display order: listings, blogs, events, categories
	wantKinds := []form.Kind{form.KindListing, form.KindBlog, form.KindEvent, form.KindCategory}
	for i, want := range wantKinds {
		if forms[i].Kind != want {
			t.Errorf("forms[%d].Kind = %v, want %v", i, forms[i].Kind, want)
		}
	}
}

func TestBuildFormLayout(t *testing.T) {
	s := NewStore(nil)
	f := s.buildForm(form.KindEvent, 3, "Carnival",
		[]*form.Field{{Name: "date", Label: "Date", Value: "2025-03-01"}},
		map[string]string{
			"title_en": "Carnival",
			"title_mk": "Карневал",
		})

	if f.ID != "event/3" {
		t.Errorf("ID = %q", f.ID)
	}

	// One main group plus one tagged group per language
	if len(f.Groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(f.Groups))
	}
	main := f.Groups[0]
	if main.LanguageTag() != "" {
		t.Errorf("main group should be untagged, got %q", main.LanguageTag())
	}
	if main.ID != "event-3-main" {
		t.Errorf("main group ID = %q", main.ID)
	}

	en := f.Groups[1]
	if en.LanguageTag() != "en" || en.ID != "event-3-en" {
		t.Errorf("en group = %q/%q", en.LanguageTag(), en.ID)
	}
	// Event translated fields: title, description, location
	if len(en.Fields) != 3 {
		t.Fatalf("expected 3 translated fields, got %d", len(en.Fields))
	}
	if en.Fields[0].Name != "title" || en.Fields[0].Value != "Carnival" {
		t.Errorf("en title field = %+v", en.Fields[0])
	}

	mk := f.Groups[2]
	if mk.LanguageTag() != "mk" || mk.Fields[0].Value != "Карневал" {
		t.Errorf("mk group = %q, title = %q", mk.LanguageTag(), mk.Fields[0].Value)
	}
	if mk.Fields[1].Value != "" {
		t.Errorf("unsupplied mk description should be blank, got %q", mk.Fields[1].Value)
	}
}

func TestStoreValidateComplete(t *testing.T) {
	s := sampleStore()
	values := s.Get("listing/1").Values()

	result := s.Validate("listing/1", values)
	if !result.Valid {
		t.Errorf("fully translated listing should validate, errors: %v", result.Errors)
	}
}

func TestStoreValidateMissingTranslations(t *testing.T) {
	s := sampleStore()
	// Seeded event has no mk translations
	values := s.Get("event/1").Values()

	result := s.Validate("event/1", values)
	if result.Valid {
		t.Fatal("event with blank mk fields should fail validation")
	}
	if result.FormID != "event/1" {
		t.Errorf("FormID = %q", result.FormID)
	}

	// All three mk fields are blank (title, description, location), plus
	// the en location that was never seeded
	for _, fe := range result.Errors {
		if fe.GroupID != "event-1-mk" && fe.GroupID != "event-1-en" {
			t.Errorf("unexpected error group %q", fe.GroupID)
		}
		if len(fe.Messages) != 1 || fe.Messages[0] != "This field is required." {
			t.Errorf("unexpected messages %v", fe.Messages)
		}
	}
	mkErrors := 0
	for _, fe := range result.Errors {
		if fe.GroupID == "event-1-mk" {
			mkErrors++
		}
	}
	if mkErrors != 3 {
		t.Errorf("expected 3 mk field errors, got %d", mkErrors)
	}
}

func TestStoreValidateWhitespaceIsBlank(t *testing.T) {
	s := sampleStore()
	values := s.Get("category/1").Values()
	values["name_mk"] = "   "

	result := s.Validate("category/1", values)
	if result.Valid {
		t.Fatal("whitespace-only value should fail validation")
	}
	if result.Errors[0].Field != "name" {
		t.Errorf("Field = %q", result.Errors[0].Field)
	}
}

func TestStoreValidateUnknownForm(t *testing.T) {
	s := sampleStore()
	result := s.Validate("listing/404", map[string]string{})
	if !result.Valid {
		t.Error("unknown form should validate trivially")
	}
}

func TestStoreApply(t *testing.T) {
	s := sampleStore()
	values := s.Get("listing/1").Values()
	values["title_mk"] = "Вардар Скара"
	values["phone"] = "+389 34 222 111"
	values["nonexistent_field"] = "ignored"

	s.Apply("listing/1", values)

	f := s.Get("listing/1")
	mk := f.GroupByID("listing-1-mk")
	if mk == nil {
		t.Fatal("mk group missing")
	}
	title := mk.FieldByName("title")
	if title == nil || title.Value != "Вардар Скара" {
		t.Errorf("mk title not applied: %+v", title)
	}
	phone := f.Groups[0].FieldByName("phone")
	if phone == nil || phone.Value != "+389 34 222 111" {
		t.Errorf("untranslated field not applied: %+v", phone)
	}
}

func TestGroupIDFlattensSlashes(t *testing.T) {
	f := &form.Form{ID: "listing/1"}
	if got := groupID(f, "en"); got != "listing-1-en" {
		t.Errorf("groupID = %q", got)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"title", "Title"},
		{"open_time", "Open time"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := label(tt.name); got != tt.want {
			t.Errorf("label(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
