package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType distinguishes the three result box variants
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Result is a styled outcome box printed at the end of a one-shot command.
type Result struct {
	Type            ResultType
	Title           string
	Err             error
	Details         map[string]string
	Troubleshooting []string
	Width           int
}

// NewSuccessResult creates a success result with detail rows
func NewSuccessResult(title string, details map[string]string) *Result {
	return &Result{
		Type:    ResultSuccess,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result with troubleshooting tips
func NewFailureResult(title string, err error, troubleshooting []string) *Result {
	return &Result{
		Type:            ResultFailure,
		Title:           title,
		Err:             err,
		Troubleshooting: troubleshooting,
		Width:           GetTerminalWidth(),
	}
}

// NewWarningResult creates a warning result with detail rows
func NewWarningResult(title string, details map[string]string) *Result {
	return &Result{
		Type:    ResultWarning,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail adds a detail row to the result
func (r *Result) AddDetail(key, value string) *Result {
	if r.Details == nil {
		r.Details = make(map[string]string)
	}
	r.Details[key] = value
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	switch r.Type {
	case ResultFailure:
		return r.renderFailure(width)
	case ResultWarning:
		return r.renderTitled(width, WarningTitleStyle.Render("   "+WarningMarker+"  WARNING  ─  "+r.Title), WarningBoxStyle(width))
	default:
		return r.renderTitled(width, SuccessTitleStyle.Render("   "+SuccessMarker+"  SUCCESS  ─  "+r.Title), SuccessBoxStyle(width))
	}
}

func (r *Result) renderTitled(width int, titleLine string, box lipgloss.Style) string {
	lines := []string{"", titleLine, ""}
	lines = append(lines, r.detailLines()...)
	lines = append(lines, "")
	return box.Render(strings.Join(lines, "\n"))
}

func (r *Result) renderFailure(width int) string {
	titleLine := ErrorTitleStyle.Render("   " + FailureMarker + "  FAILED  ─  " + r.Title)
	lines := []string{"", titleLine, ""}

	if r.Err != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+r.Err.Error()), "")
	}

	if len(r.Troubleshooting) > 0 {
		troubleLines := []string{TroubleshootingTitleStyle.Render("Troubleshooting:"), ""}
		for _, tip := range r.Troubleshooting {
			troubleLines = append(troubleLines, TroubleshootingItemStyle.Render("  • "+tip))
		}
		lines = append(lines, TroubleshootingBoxStyle(width).Render(strings.Join(troubleLines, "\n")), "")
	}

	return ErrorBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// detailLines renders the detail rows in stable key order
func (r *Result) detailLines() []string {
	keys := make([]string, 0, len(r.Details))
	for key := range r.Details {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var lines []string
	for _, key := range keys {
		keyStyled := ResultKeyStyle.Render("   " + key + ":")
		valueStyled := ResultValueStyle.Render(r.Details[key])
		lines = append(lines, keyStyled+" "+valueStyled)
	}
	return lines
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
