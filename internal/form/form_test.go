package form

import (
	"testing"
)

func sampleForm() *Form {
	return &Form{
		ID:    "listing/42",
		Kind:  KindListing,
		Title: "Vardar Grill House",
		Groups: []*FieldGroup{
			{
				ID: "listing-main",
				Fields: []*Field{
					{Name: "phone", Label: "Phone", Value: "+389 34 211 000"},
				},
			},
			{
				ID:   "listing-en",
				Lang: "en",
				Fields: []*Field{
					{Name: "title", Label: "Title", Value: "Vardar Grill House"},
					{Name: "description", Label: "Description"},
				},
			},
			{
				ID:   "listing-mk",
				Lang: "mk",
				Module: &Module{
					Legend: "Macedonian",
					Fields: []*Field{
						{Name: "title", Label: "Title", Value: "Скара Вардар"},
					},
				},
			},
		},
	}
}

func TestLanguageTag(t *testing.T) {
	f := sampleForm()

	if tag := f.Groups[0].LanguageTag(); tag != "" {
		t.Errorf("untranslated group LanguageTag() = %q, want empty", tag)
	}
	if tag := f.Groups[1].LanguageTag(); tag != "en" {
		t.Errorf("LanguageTag() = %q, want en", tag)
	}
}

func TestContentPrefersModule(t *testing.T) {
	f := sampleForm()

	direct := f.Groups[1]
	if len(direct.Content()) != 2 {
		t.Errorf("Content() of direct group returned %d fields, want 2", len(direct.Content()))
	}

	withModule := f.Groups[2]
	content := withModule.Content()
	if len(content) != 1 || content[0].Name != "title" {
		t.Errorf("Content() of module group should return the module's fields, got %v", content)
	}
}

func TestHasMultilingualGroups(t *testing.T) {
	f := sampleForm()
	if !f.HasMultilingualGroups() {
		t.Error("HasMultilingualGroups() = false, want true")
	}

	plain := &Form{
		ID:   "category/1",
		Kind: KindCategory,
		Groups: []*FieldGroup{
			{ID: "category-main", Fields: []*Field{{Name: "order", Label: "Order"}}},
		},
	}
	if plain.HasMultilingualGroups() {
		t.Error("HasMultilingualGroups() = true for a form with no tagged groups")
	}
}

func TestGroupHasErrors(t *testing.T) {
	f := sampleForm()

	g := f.Groups[1]
	if g.HasErrors() {
		t.Error("HasErrors() = true on a clean group")
	}

	g.Fields[1].Errors = []string{"This field is required."}
	if !g.HasErrors() {
		t.Error("HasErrors() = false after attaching a field error")
	}

	// Group-level errors count too
	other := f.Groups[2]
	other.Errors = []string{"Section incomplete."}
	if !other.HasErrors() {
		t.Error("HasErrors() = false after attaching a group error")
	}
}

func TestClearErrors(t *testing.T) {
	f := sampleForm()
	f.Groups[1].Fields[0].Errors = []string{"bad"}
	f.Groups[2].Errors = []string{"bad"}

	f.ClearErrors()

	for _, g := range f.Groups {
		if g.HasErrors() {
			t.Errorf("group %s still has errors after ClearErrors()", g.ID)
		}
	}
}

func TestValues(t *testing.T) {
	f := sampleForm()
	values := f.Values()

	tests := []struct {
		key  string
		want string
	}{
		{"phone", "+389 34 211 000"},
		{"title_en", "Vardar Grill House"},
		{"title_mk", "Скара Вардар"},
	}

	for _, tt := range tests {
		if got := values[tt.key]; got != tt.want {
			t.Errorf("Values()[%q] = %q, want %q", tt.key, got, tt.want)
		}
	}

	if _, ok := values["title"]; ok {
		t.Error("Values() should key translated fields as name_lang, found bare 'title'")
	}
}

func TestEncodeDecode(t *testing.T) {
	f := sampleForm()

	data, err := f.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if decoded.ID != f.ID || decoded.Kind != f.Kind {
		t.Errorf("Decode() = %s/%s, want %s/%s", decoded.ID, decoded.Kind, f.ID, f.Kind)
	}
	if len(decoded.Groups) != len(f.Groups) {
		t.Errorf("Decode() returned %d groups, want %d", len(decoded.Groups), len(f.Groups))
	}
	if decoded.Groups[2].Module == nil {
		t.Error("Decode() lost the module child")
	}
}

func TestDecodeRejectsMissingID(t *testing.T) {
	if _, err := Decode([]byte(`{"kind":"listing"}`)); err == nil {
		t.Error("Decode() should reject a form without an id")
	}
}

func TestTranslatedFields(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindListing, 4},
		{KindEvent, 3},
		{KindPromotion, 3},
		{KindBlog, 4},
		{KindCategory, 2},
	}

	for _, tt := range tests {
		if got := TranslatedFields(tt.kind); len(got) != tt.want {
			t.Errorf("TranslatedFields(%s) returned %d fields, want %d", tt.kind, len(got), tt.want)
		}
	}
}
