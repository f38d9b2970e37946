package server

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gogevgelija/ggadmin/internal/adminapi"
	"github.com/gogevgelija/ggadmin/internal/form"
)

// Store is the in-memory record store backing the demo backend.
type Store struct {
	mu        sync.RWMutex
	languages []Language
	forms     map[string]*form.Form
}

// Language is one form language the backend renders groups for.
type Language struct {
	Code string
	Name string
}

// DefaultStoreLanguages is the stock backend language pair.
var DefaultStoreLanguages = []Language{
	{Code: "en", Name: "English"},
	{Code: "mk", Name: "Macedonian"},
}

// NewStore creates a store rendering forms in the given languages.
// An empty language list falls back to the stock en/mk pair.
func NewStore(languages []Language) *Store {
	if len(languages) == 0 {
		languages = DefaultStoreLanguages
	}
	return &Store{
		languages: languages,
		forms:     make(map[string]*form.Form),
	}
}

// Add registers a form under its ID, replacing any previous one.
func (s *Store) Add(f *form.Form) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forms[f.ID] = f
}

// Get returns the form for a record ID, or nil when unknown.
func (s *Store) Get(id string) *form.Form {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.forms[id]
}

// Catalog builds the record index. Content records land under the "MAIN"
// section, mirroring the grouping of the original admin's index page.
func (s *Store) Catalog() *adminapi.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []adminapi.Summary
	for _, f := range s.forms {
		entries = append(entries, adminapi.Summary{ID: f.ID, Kind: f.Kind, Title: f.Title})
	}

	// Admin display order: by kind order, then by ID within a kind
	kindRank := make(map[form.Kind]int, len(form.Kinds))
	for i, k := range form.Kinds {
		kindRank[k] = i
	}
	sort.Slice(entries, func(i, j int) bool {
		if kindRank[entries[i].Kind] != kindRank[entries[j].Kind] {
			return kindRank[entries[i].Kind] < kindRank[entries[j].Kind]
		}
		return entries[i].ID < entries[j].ID
	})

	return &adminapi.Catalog{
		Sections: []adminapi.Section{
			{Name: "MAIN", Forms: entries},
		},
	}
}

// Validate checks submitted values for a record and returns the verdict.
// Translated fields are required in every language the backend renders;
// a blank one produces a field error addressed to its group.
func (s *Store) Validate(id string, values map[string]string) *adminapi.ValidationResult {
	s.mu.RLock()
	f := s.forms[id]
	s.mu.RUnlock()

	result := &adminapi.ValidationResult{FormID: id, Valid: true}
	if f == nil {
		return result
	}

	for _, lang := range s.languages {
		for _, name := range form.TranslatedFields(f.Kind) {
			key := fmt.Sprintf("%s_%s", name, lang.Code)
			if strings.TrimSpace(values[key]) != "" {
				continue
			}
			result.Valid = false
			result.Errors = append(result.Errors, adminapi.FieldError{
				GroupID:  groupID(f, lang.Code),
				Field:    name,
				Messages: []string{"This field is required."},
			})
		}
	}
	return result
}

// Apply writes submitted values back into the stored form. Only called for
// valid submissions; unknown keys are ignored.
func (s *Store) Apply(id string, values map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.forms[id]
	if f == nil {
		return
	}
	for _, g := range f.Groups {
		for _, field := range g.Content() {
			key := field.Name
			if lang := g.LanguageTag(); lang != "" {
				key = fmt.Sprintf("%s_%s", field.Name, lang)
			}
			if v, ok := values[key]; ok {
				field.Value = v
			}
		}
	}
}

// groupID derives the translated group's ID for a language, matching the
// layout produced by buildForm.
func groupID(f *form.Form, lang string) string {
	return fmt.Sprintf("%s-%s", strings.ReplaceAll(f.ID, "/", "-"), lang)
}

// label turns a field name into its display label ("open_time" -> "Open time").
func label(name string) string {
	s := strings.ReplaceAll(name, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// buildForm renders the edit form for one record: an untranslated main group
// followed by one tagged group per language holding the kind's translated
// fields.
func (s *Store) buildForm(kind form.Kind, num int, title string, mainFields []*form.Field, values map[string]string) *form.Form {
	id := fmt.Sprintf("%s/%d", kind, num)
	f := &form.Form{
		ID:    id,
		Kind:  kind,
		Title: title,
		Groups: []*form.FieldGroup{
			{
				ID:     fmt.Sprintf("%s-%d-main", kind, num),
				Legend: "General",
				Fields: mainFields,
			},
		},
	}

	for _, lang := range s.languages {
		group := &form.FieldGroup{
			ID:     groupID(f, lang.Code),
			Lang:   lang.Code,
			Legend: lang.Name,
		}
		for _, name := range form.TranslatedFields(kind) {
			group.Fields = append(group.Fields, &form.Field{
				Name:  name,
				Label: label(name),
				Value: values[fmt.Sprintf("%s_%s", name, lang.Code)],
			})
		}
		f.Groups = append(f.Groups, group)
	}
	return f
}

// SeedSampleData fills the store with Gevgelija-flavored demo records.
func (s *Store) SeedSampleData() {
	s.Add(s.buildForm(form.KindListing, 1, "Vardar Grill House",
		[]*form.Field{
			{Name: "phone", Label: "Phone", Value: "+389 34 211 000"},
			{Name: "website", Label: "Website", Value: "https://vardargrill.example"},
		},
		map[string]string{
			"title_en":       "Vardar Grill House",
			"title_mk":       "Скара Вардар",
			"description_en": "Traditional grill in the old town.",
			"description_mk": "Традиционална скара во стариот град.",
			"address_en":     "Marshal Tito 14, Gevgelija",
			"address_mk":     "Маршал Тито 14, Гевгелија",
			"open_time_en":   "Mon-Sun 10:00-23:00",
			"open_time_mk":   "Пон-Нед 10:00-23:00",
		}))

	s.Add(s.buildForm(form.KindEvent, 1, "Smokvica Wine Night",
		[]*form.Field{
			{Name: "date", Label: "Date", Value: "2025-09-12"},
		},
		map[string]string{
			"title_en":       "Smokvica Wine Night",
			"title_mk":       "Вечер на вино во Смоквица",
			"description_en": "Tasting of local Vardar valley wines.",
			"location_en":    "Smokvica village square",
		}))

	s.Add(s.buildForm(form.KindBlog, 1, "A Weekend in Gevgelija",
		[]*form.Field{
			{Name: "published", Label: "Published", Value: "true"},
		},
		map[string]string{
			"title_en":    "A Weekend in Gevgelija",
			"subtitle_en": "Thermal springs, wine and borderline charm",
			"content_en":  "Start at the Vardar promenade...",
			"author_en":   "GoGevgelija Team",
		}))

	s.Add(s.buildForm(form.KindCategory, 1, "Restaurants",
		[]*form.Field{
			{Name: "order", Label: "Order", Value: "1"},
		},
		map[string]string{
			"name_en":        "Restaurants",
			"name_mk":        "Ресторани",
			"description_en": "Places to eat",
			"description_mk": "Места за јадење",
		}))
}
