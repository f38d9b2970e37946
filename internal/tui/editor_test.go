package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogevgelija/ggadmin/internal/config"
	"github.com/gogevgelija/ggadmin/internal/form"
)

func TestShortcutIndex(t *testing.T) {
	tests := []struct {
		key  string
		want int
	}{
		{"alt+1", 0},
		{"alt+2", 1},
		{"alt+9", 8},
		{"alt+0", -1},
		{"alt+a", -1},
		{"alt+10", -1},
		{"ctrl+1", -1},
		{"1", -1},
		{"", -1},
	}
	for _, tt := range tests {
		if got := shortcutIndex(tt.key); got != tt.want {
			t.Errorf("shortcutIndex(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestLanguageDescriptors(t *testing.T) {
	registry := config.NewRegistry()
	descriptors := LanguageDescriptors(registry)

	if len(descriptors) != 2 {
		t.Fatalf("expected 2 descriptors, got %d", len(descriptors))
	}
	if descriptors[0].Code != "en" || descriptors[0].Shortcut != "alt+1" {
		t.Errorf("descriptors[0] = %+v", descriptors[0])
	}
	if descriptors[1].Code != "mk" || descriptors[1].Shortcut != "alt+2" {
		t.Errorf("descriptors[1] = %+v", descriptors[1])
	}
	if got := descriptors[1].Title(); got != "Macedonian (alt+2)" {
		t.Errorf("Title() = %q", got)
	}
}

func testEditorModel() EditorModel {
	f := &form.Form{
		ID: "listing/1",
		Groups: []*form.FieldGroup{
			{ID: "listing-1-en", Lang: "en", Legend: "English", Fields: []*form.Field{
				{Name: "title", Label: "Title", Value: "Grill House"},
			}},
			{ID: "listing-1-mk", Lang: "mk", Legend: "Macedonian", Fields: []*form.Field{
				{Name: "title", Label: "Наслов", Value: "Скара"},
			}},
		},
	}
	return NewEditorModel(nil, f, config.NewRegistry())
}

func TestLanguageShortcutWhileEditing(t *testing.T) {
	m := testEditorModel()
	if got := m.Tabs.ActiveCode(); got != "en" {
		t.Fatalf("initial active = %q, want en", got)
	}

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(EditorModel)
	if !m.editing {
		t.Fatal("enter should start editing the field under the cursor")
	}

	// The shortcut must work even while the field editor has focus
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}, Alt: true})
	m = model.(EditorModel)
	if got := m.Tabs.ActiveCode(); got != "mk" {
		t.Errorf("active after alt+2 = %q, want mk", got)
	}
	if m.editing {
		t.Error("switching tabs should close the field editor")
	}
}

func TestUnboundShortcutNotTypedIntoField(t *testing.T) {
	m := testEditorModel()

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(EditorModel)
	before := m.input.Value()

	// alt+5 maps to no configured language; it is still not field input
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}, Alt: true})
	m = model.(EditorModel)
	if got := m.input.Value(); got != before {
		t.Errorf("field input = %q, want %q", got, before)
	}
	if got := m.Tabs.ActiveCode(); got != "en" {
		t.Errorf("active = %q, want en", got)
	}
}
