package adminapi

import (
	"github.com/gogevgelija/ggadmin/internal/form"
)

// Summary is one catalog entry: a record the backend can serve a form for.
type Summary struct {
	ID    string    `json:"id"`
	Kind  form.Kind `json:"kind"`
	Title string    `json:"title"`
}

// Section is a named group of catalog entries. The backend groups records
// the way the original admin index did (content records under "MAIN").
type Section struct {
	Name  string    `json:"name"`
	Forms []Summary `json:"forms"`
}

// Catalog is the backend's record index.
type Catalog struct {
	Sections []Section `json:"sections"`
}

// FieldError is one validation failure, addressed to a group and optionally
// to a field within it. An empty Field means the error is group-level.
type FieldError struct {
	GroupID  string   `json:"group_id"`
	Field    string   `json:"field,omitempty"`
	Messages []string `json:"messages"`
}

// ValidationResult is the backend's verdict on a submission. The same
// payload arrives on the WebSocket event stream.
type ValidationResult struct {
	FormID string       `json:"form_id"`
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

// ApplyTo clears the form's errors and attaches this result's errors to the
// matching groups and fields. Errors addressed to unknown groups or fields
// are dropped; the form never fails to render because the backend named a
// section it no longer has.
func (r *ValidationResult) ApplyTo(f *form.Form) {
	if f == nil || f.ID != r.FormID {
		return
	}

	f.ClearErrors()
	for _, fe := range r.Errors {
		g := f.GroupByID(fe.GroupID)
		if g == nil {
			continue
		}
		if fe.Field == "" {
			g.Errors = append(g.Errors, fe.Messages...)
			continue
		}
		if field := g.FieldByName(fe.Field); field != nil {
			field.Errors = append(field.Errors, fe.Messages...)
		}
	}
}
