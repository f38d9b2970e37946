package adminapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gogevgelija/ggadmin/internal/form"
)

func testForm() *form.Form {
	return &form.Form{
		ID:   "listing/42",
		Kind: form.KindListing,
		Groups: []*form.FieldGroup{
			{ID: "text-en", Lang: "en", Fields: []*form.Field{
				{Name: "title", Label: "Title", Value: "Vardar Grill House"},
			}},
			{ID: "text-mk", Lang: "mk", Fields: []*form.Field{
				{Name: "title", Label: "Title"},
			}},
		},
	}
}

// fastClient returns a client pointed at the test server with retries tuned
// down so failure tests stay quick.
func fastClient(url string) *Client {
	c := NewClient(url)
	c.MaxRetries = 1
	c.RetryDelay = time.Millisecond
	return c
}

func TestGetForm(t *testing.T) {
	want := testForm()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/forms/listing/42" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		data, _ := want.Encode()
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	got, err := fastClient(srv.URL).GetForm(context.Background(), "listing/42")
	if err != nil {
		t.Fatalf("GetForm() error = %v", err)
	}
	if got.ID != want.ID || len(got.Groups) != 2 {
		t.Errorf("GetForm() = %v, want id %s with 2 groups", got, want.ID)
	}
}

func TestGetFormHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := fastClient(srv.URL).GetForm(context.Background(), "listing/404")
	if err == nil {
		t.Fatal("GetForm() should fail on 404")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Type != ErrTypeHTTP || apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("got %v/%d, want HTTP error with status 404", apiErr.Type, apiErr.StatusCode)
	}
	if apiErr.Retryable {
		t.Error("a 404 must not be retryable")
	}
}

func TestGetFormParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := fastClient(srv.URL).GetForm(context.Background(), "listing/42")
	if err == nil {
		t.Fatal("GetForm() should fail on a non-JSON body")
	}
	apiErr, ok := err.(*APIError)
	if !ok || apiErr.Type != ErrTypeParse {
		t.Errorf("got %v, want parse error", err)
	}
}

func TestRetryOnServerError(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		data, _ := testForm().Encode()
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	_, err := fastClient(srv.URL).GetForm(context.Background(), "listing/42")
	if err != nil {
		t.Fatalf("GetForm() error = %v, want success after retry", err)
	}
	if attempts != 2 {
		t.Errorf("server saw %d attempts, want 2", attempts)
	}
}

func TestSubmitForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}

		var values map[string]string
		if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
			t.Fatalf("failed to decode submission: %v", err)
		}
		if values["title_en"] != "Vardar Grill House" {
			t.Errorf("submission missing title_en, got %v", values)
		}

		result := ValidationResult{
			FormID: "listing/42",
			Valid:  false,
			Errors: []FieldError{
				{GroupID: "text-mk", Field: "title", Messages: []string{"This field is required."}},
			},
		}
		_ = json.NewEncoder(w).Encode(result)
	}))
	defer srv.Close()

	f := testForm()
	result, err := fastClient(srv.URL).SubmitForm(context.Background(), f.ID, f.Values())
	if err != nil {
		t.Fatalf("SubmitForm() error = %v", err)
	}
	if result.Valid {
		t.Error("result.Valid = true, want false")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("result has %d errors, want 1", len(result.Errors))
	}
}

func TestValidationResultApplyTo(t *testing.T) {
	f := testForm()
	result := &ValidationResult{
		FormID: f.ID,
		Valid:  false,
		Errors: []FieldError{
			{GroupID: "text-mk", Field: "title", Messages: []string{"This field is required."}},
			{GroupID: "text-mk", Messages: []string{"Macedonian section incomplete."}},
			{GroupID: "gone", Field: "title", Messages: []string{"orphan"}},
		},
	}

	result.ApplyTo(f)

	mk := f.GroupByID("text-mk")
	if got := mk.FieldByName("title").Errors; len(got) != 1 {
		t.Errorf("mk title errors = %v, want 1 message", got)
	}
	if len(mk.Errors) != 1 {
		t.Errorf("mk group errors = %v, want 1 message", mk.Errors)
	}
	if f.GroupByID("text-en").HasErrors() {
		t.Error("en group should have no errors")
	}
}

func TestApplyToIgnoresOtherForms(t *testing.T) {
	f := testForm()
	f.GroupByID("text-en").Fields[0].Errors = []string{"existing"}

	result := &ValidationResult{FormID: "blog/1", Valid: true}
	result.ApplyTo(f)

	// A result for a different form must not clear this form's errors
	if !f.GroupByID("text-en").HasErrors() {
		t.Error("ApplyTo() for another form cleared this form's errors")
	}
}

func TestHTTPToWS(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://192.168.1.50:8600", "ws://192.168.1.50:8600"},
		{"https://admin.gevgelija.example", "wss://admin.gevgelija.example"},
		{"192.168.1.50:8600", "ws://192.168.1.50:8600"},
	}

	for _, tt := range tests {
		if got := httpToWS(tt.in); got != tt.want {
			t.Errorf("httpToWS(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
