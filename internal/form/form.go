package form

import (
	"encoding/json"
	"fmt"
)

// Kind identifies the record type a form edits.
type Kind string

const (
	KindListing   Kind = "listing"
	KindEvent     Kind = "event"
	KindPromotion Kind = "promotion"
	KindBlog      Kind = "blog"
	KindCategory  Kind = "category"
)

// Kinds lists all record kinds in their admin display order.
var Kinds = []Kind{KindListing, KindBlog, KindEvent, KindPromotion, KindCategory}

// translatedFields maps each record kind to the field names that exist once
// per language. Untranslated fields (prices, coordinates, images) are plain
// group members.
var translatedFields = map[Kind][]string{
	KindListing:   {"title", "description", "address", "open_time"},
	KindEvent:     {"title", "description", "location"},
	KindPromotion: {"title", "description", "address"},
	KindBlog:      {"title", "subtitle", "content", "author"},
	KindCategory:  {"name", "description"},
}

// TranslatedFields returns the per-language field names for a record kind.
// The returned slice is shared; callers must not modify it.
func TranslatedFields(kind Kind) []string {
	return translatedFields[kind]
}

// DisplayName returns a human-readable name for the record kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindListing:
		return "Listing"
	case KindEvent:
		return "Event"
	case KindPromotion:
		return "Promotion"
	case KindBlog:
		return "Blog post"
	case KindCategory:
		return "Category"
	default:
		return string(k)
	}
}

// Field is a single editable value inside a field group.
type Field struct {
	Name   string   `json:"name"`
	Label  string   `json:"label"`
	Value  string   `json:"value"`
	Errors []string `json:"errors,omitempty"`
}

// HasErrors reports whether the field carries at least one validation error.
func (f *Field) HasErrors() bool {
	return len(f.Errors) > 0
}

// Module is the optional child content container of a field group. When
// present it owns the group's renderable content instead of the group's
// direct field list.
type Module struct {
	Legend string   `json:"legend,omitempty"`
	Fields []*Field `json:"fields"`
}

// FieldGroup is one logical section of the form. Translated groups carry a
// language tag; the tab controller reads it through LanguageTag and never
// infers language membership from anything else.
type FieldGroup struct {
	ID     string   `json:"id"`
	Lang   string   `json:"lang,omitempty"` // canonical language code, "" for untranslated groups
	Legend string   `json:"legend,omitempty"`
	Fields []*Field `json:"fields,omitempty"`
	Module *Module  `json:"module,omitempty"`
	Errors []string `json:"errors,omitempty"` // group-level (non-field) errors

	// Hidden marks the group's shell as visually hidden after its content
	// was re-parented under a language panel. The group stays in the form.
	Hidden bool `json:"-"`
}

// LanguageTag returns the group's language code, or "" when the group is not
// language-specific.
func (g *FieldGroup) LanguageTag() string {
	return g.Lang
}

// Content returns the group's renderable fields: the module child's fields
// when a module is present, otherwise the group's direct fields.
func (g *FieldGroup) Content() []*Field {
	if g.Module != nil {
		return g.Module.Fields
	}
	return g.Fields
}

// HasErrors reports whether the group or any of its content fields carries a
// validation error.
func (g *FieldGroup) HasErrors() bool {
	if len(g.Errors) > 0 {
		return true
	}
	for _, f := range g.Content() {
		if f.HasErrors() {
			return true
		}
	}
	return false
}

// FieldByName finds a content field by name. Returns nil when absent.
func (g *FieldGroup) FieldByName(name string) *Field {
	for _, f := range g.Content() {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Form is one record's rendered edit form.
type Form struct {
	ID     string        `json:"id"`
	Kind   Kind          `json:"kind"`
	Title  string        `json:"title"`
	Groups []*FieldGroup `json:"groups"`
}

// TaggedGroups returns the groups carrying any language tag, in form order.
func (f *Form) TaggedGroups() []*FieldGroup {
	var out []*FieldGroup
	for _, g := range f.Groups {
		if g.LanguageTag() != "" {
			out = append(out, g)
		}
	}
	return out
}

// HasMultilingualGroups reports whether any group carries a language tag.
// The tab controller checks this before touching the form at all.
func (f *Form) HasMultilingualGroups() bool {
	for _, g := range f.Groups {
		if g.LanguageTag() != "" {
			return true
		}
	}
	return false
}

// GroupByID finds a group by ID. Returns nil when absent.
func (f *Form) GroupByID(id string) *FieldGroup {
	for _, g := range f.Groups {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// ClearErrors removes every group-level and field-level error from the form.
// The backend re-attaches errors on each validation pass.
func (f *Form) ClearErrors() {
	for _, g := range f.Groups {
		g.Errors = nil
		for _, field := range g.Content() {
			field.Errors = nil
		}
	}
}

// Values flattens the form to a field-name -> value map for submission.
// Translated fields are keyed name_lang (title_en, title_mk), matching the
// backend's storage columns.
func (f *Form) Values() map[string]string {
	out := make(map[string]string)
	for _, g := range f.Groups {
		for _, field := range g.Content() {
			key := field.Name
			if lang := g.LanguageTag(); lang != "" {
				key = fmt.Sprintf("%s_%s", field.Name, lang)
			}
			out[key] = field.Value
		}
	}
	return out
}

// Decode parses a form from its JSON wire representation.
func Decode(data []byte) (*Form, error) {
	var f Form
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal form: %w", err)
	}
	if f.ID == "" {
		return nil, fmt.Errorf("form is missing an id")
	}
	return &f, nil
}

// Encode renders the form to its JSON wire representation.
func (f *Form) Encode() ([]byte, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal form: %w", err)
	}
	return data, nil
}
