package ui

import (
	"strings"
	"testing"

	"github.com/gogevgelija/ggadmin/internal/adminapi"
	"github.com/gogevgelija/ggadmin/internal/discovery"
	"github.com/gogevgelija/ggadmin/internal/form"
)

func TestRenderCatalog(t *testing.T) {
	catalog := &adminapi.Catalog{
		Sections: []adminapi.Section{
			{
				Name: "MAIN",
				Forms: []adminapi.Summary{
					{ID: "listing/1", Kind: form.KindListing, Title: "Vardar Grill House"},
				},
			},
			{Name: "USERS"},
		},
	}

	out := RenderCatalog(catalog)
	for _, want := range []string{"MAIN", "Vardar Grill House", "listing/1", "USERS", "(no records)"} {
		if !strings.Contains(out, want) {
			t.Errorf("catalog output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderForm(t *testing.T) {
	f := &form.Form{
		ID:    "event/1",
		Kind:  form.KindEvent,
		Title: "Smokvica Wine Night",
		Groups: []*form.FieldGroup{
			{
				ID:     "event-1-mk",
				Lang:   "mk",
				Legend: "Macedonian",
				Fields: []*form.Field{
					{Name: "title", Label: "Title", Errors: []string{"This field is required."}},
				},
			},
		},
	}

	out := RenderForm(f)
	for _, want := range []string{"Smokvica Wine Night", "[mk]", "Title", "(blank)", "This field is required."} {
		if !strings.Contains(out, want) {
			t.Errorf("form output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderBackends(t *testing.T) {
	out := RenderBackends(nil)
	if !strings.Contains(out, "No backends found") {
		t.Errorf("empty scan output = %q", out)
	}

	out = RenderBackends([]*discovery.Backend{
		{Name: "ggadmin-backend", IP: "192.168.1.50", Port: 8600},
	})
	for _, want := range []string{"ggadmin-backend", "192.168.1.50:8600", "http://192.168.1.50:8600"} {
		if !strings.Contains(out, want) {
			t.Errorf("scan output missing %q:\n%s", want, out)
		}
	}
}
