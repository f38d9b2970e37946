package ui

import (
	"fmt"
	"strings"

	"github.com/gogevgelija/ggadmin/internal/adminapi"
	"github.com/gogevgelija/ggadmin/internal/discovery"
	"github.com/gogevgelija/ggadmin/internal/form"
)

// RenderCatalog renders the backend's record index, one section at a time.
func RenderCatalog(catalog *adminapi.Catalog) string {
	var b strings.Builder
	for i, section := range catalog.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(SectionTitleStyle.Render(section.Name))
		b.WriteString("\n")
		if len(section.Forms) == 0 {
			b.WriteString(ListMetaStyle.Render("  (no records)"))
			b.WriteString("\n")
			continue
		}
		for _, summary := range section.Forms {
			row := ListItemStyle.Render(summary.Title) + "  " +
				ListMetaStyle.Render(fmt.Sprintf("%s  [%s]", summary.Kind.DisplayName(), summary.ID))
			b.WriteString(row)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderForm renders a read-only view of one record's edit form. Translated
// groups carry a language badge; field errors are listed under their field.
func RenderForm(f *form.Form) string {
	var b strings.Builder
	b.WriteString(SectionTitleStyle.Render(f.Title))
	b.WriteString("  ")
	b.WriteString(ListMetaStyle.Render(fmt.Sprintf("%s  [%s]", f.Kind.DisplayName(), f.ID)))
	b.WriteString("\n")

	for _, g := range f.Groups {
		b.WriteString("\n")
		legend := g.Legend
		if legend == "" {
			legend = g.ID
		}
		b.WriteString(ListItemStyle.Render(legend))
		if lang := g.LanguageTag(); lang != "" {
			b.WriteString("  ")
			b.WriteString(LangTagStyle.Render("[" + lang + "]"))
		}
		b.WriteString("\n")

		for _, field := range g.Content() {
			value := field.Value
			if value == "" {
				value = ListMetaStyle.Render("(blank)")
			}
			b.WriteString(fmt.Sprintf("    %s: %s\n", ListMetaStyle.Render(field.Label), value))
			for _, msg := range field.Errors {
				b.WriteString(FieldErrorStyle.Render(FailureMarker + " " + msg))
				b.WriteString("\n")
			}
		}
		for _, msg := range g.Errors {
			b.WriteString(FieldErrorStyle.Render(FailureMarker + " " + msg))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderBackends renders the result of an mDNS scan.
func RenderBackends(backends []*discovery.Backend) string {
	if len(backends) == 0 {
		return ListMetaStyle.Render("  No backends found on the local network.") + "\n"
	}

	var b strings.Builder
	for _, backend := range backends {
		row := ListItemStyle.Render(backend.Name) + "  " +
			ListMetaStyle.Render(fmt.Sprintf("%s:%d", backend.IP, backend.Port))
		b.WriteString(row)
		b.WriteString("\n")
		b.WriteString(ListMetaStyle.Render("    " + backend.BaseURL()))
		b.WriteString("\n")
	}
	return b.String()
}
