package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogevgelija/ggadmin/internal/adminapi"
	"github.com/gogevgelija/ggadmin/internal/config"
	"github.com/gogevgelija/ggadmin/internal/form"
	"github.com/gogevgelija/ggadmin/internal/tabs"
)

// Messages for async editor operations
type submitResultMsg struct {
	result *adminapi.ValidationResult
	err    error
}

type validationEventMsg struct {
	result adminapi.ValidationResult
}

type eventsClosedMsg struct{}

type subscribedMsg struct {
	ch     <-chan adminapi.ValidationResult
	cancel context.CancelFunc
}

type errorScanTimeoutMsg struct{}

type statusClearMsg struct{}

// editorKeyMap defines key bindings for the editor screen
type editorKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	PrevTab key.Binding
	NextTab key.Binding
	Edit    key.Binding
	Save    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevTab, k.NextTab, k.Edit, k.Save, k.Back}
}

func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Edit},
		{k.PrevTab, k.NextTab, k.Save, k.Back, k.Quit},
	}
}

// editKeyMap defines key bindings while a field value is being edited
type editKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.Cancel}}
}

// fieldRef addresses one visible field row
type fieldRef struct {
	group *form.FieldGroup
	field *form.Field
}

// EditorModel is the record editing screen with language tabs
type EditorModel struct {
	Client   *adminapi.Client
	Form     *form.Form
	Tabs     *tabs.Controller
	Registry *config.Registry

	// Visible field rows, rebuilt whenever the active tab changes
	rows   []fieldRef
	cursor int

	// Inline edit state
	editing bool
	input   textinput.Model

	// Event stream state
	eventsCh  <-chan adminapi.ValidationResult
	cancelSub context.CancelFunc

	// Submit/status state
	submitting bool
	status     string
	statusErr  bool

	backRequested bool

	Width  int
	Height int

	Help     help.Model
	Keys     editorKeyMap
	EditKeys editKeyMap
}

// LanguageDescriptors builds tab descriptors from the registry's ordered
// language list. The first nine languages get alt+N shortcuts.
func LanguageDescriptors(registry *config.Registry) []tabs.LanguageDescriptor {
	var descriptors []tabs.LanguageDescriptor
	for i, lang := range registry.Languages {
		shortcut := ""
		if i < 9 {
			shortcut = "alt+" + strconv.Itoa(i+1)
		}
		descriptors = append(descriptors, tabs.LanguageDescriptor{
			Code:        lang.Code,
			DisplayName: lang.Name,
			Shortcut:    shortcut,
		})
	}
	return descriptors
}

// shortcutIndex maps an alt+N key string to its language index, or -1 when
// the key is not a language shortcut.
func shortcutIndex(keyName string) int {
	rest, ok := strings.CutPrefix(keyName, "alt+")
	if !ok || len(rest) != 1 {
		return -1
	}
	if rest[0] < '1' || rest[0] > '9' {
		return -1
	}
	return int(rest[0] - '1')
}

// NewEditorModel creates the editor for a fetched form. The tab controller
// persists language choices into the registry.
func NewEditorModel(client *adminapi.Client, f *form.Form, registry *config.Registry) EditorModel {
	controller := tabs.NewController(
		LanguageDescriptors(registry),
		registry.DefaultLanguage(),
		config.NewSelectionStore(registry),
	)
	controller.Initialize(f)

	input := textinput.New()
	input.CharLimit = 512
	input.Width = 60

	keys := editorKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevTab: key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "prev tab")),
		NextTab: key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→", "next tab")),
		Edit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit field")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
	editKeys := editKeyMap{
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}

	m := EditorModel{
		Client:   client,
		Form:     f,
		Tabs:     controller,
		Registry: registry,
		input:    input,
		Help:     help.New(),
		Keys:     keys,
		EditKeys: editKeys,
	}
	m.rebuildRows()
	return m
}

// Init subscribes to the backend's validation event stream and arms the
// fallback scan timer for errors already present in the fetched form.
func (m EditorModel) Init() tea.Cmd {
	return tea.Batch(scanTimer(m.Registry), subscribeEvents(m.Client))
}

// subscribeEvents dials the backend's event stream. Failure is silent; the
// fallback timer alone covers the initial error scan.
func subscribeEvents(client *adminapi.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(context.Background())
		ch, err := client.SubscribeValidation(ctx)
		if err != nil {
			cancel()
			return eventsClosedMsg{}
		}
		return subscribedMsg{ch: ch, cancel: cancel}
	}
}

// scanTimer arms the one-shot fallback before the deferred error scan
func scanTimer(registry *config.Registry) tea.Cmd {
	delay := config.DefaultErrorScanDelayMS
	if registry.Preferences != nil && registry.Preferences.ErrorScanDelayMS > 0 {
		delay = registry.Preferences.ErrorScanDelayMS
	}
	return tea.Tick(time.Duration(delay)*time.Millisecond, func(time.Time) tea.Msg {
		return errorScanTimeoutMsg{}
	})
}

// waitForValidation blocks on the event stream and forwards one result
func waitForValidation(ch <-chan adminapi.ValidationResult) tea.Cmd {
	return func() tea.Msg {
		result, ok := <-ch
		if !ok {
			return eventsClosedMsg{}
		}
		return validationEventMsg{result: result}
	}
}

// clearStatusAfter clears the status line after a short delay
func clearStatusAfter() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

// rebuildRows recomputes the visible field rows: untagged groups in form
// order, then the active panel's groups.
func (m *EditorModel) rebuildRows() {
	m.rows = m.rows[:0]

	for _, g := range m.Form.Groups {
		if g.Hidden {
			continue
		}
		for _, field := range g.Content() {
			m.rows = append(m.rows, fieldRef{group: g, field: field})
		}
	}
	if panel := m.Tabs.ActivePanel(); panel != nil {
		for _, g := range panel.Groups {
			for _, field := range g.Content() {
				m.rows = append(m.rows, fieldRef{group: g, field: field})
			}
		}
	}

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// IsBackRequested reports whether the user asked to leave the editor
func (m EditorModel) IsBackRequested() bool {
	return m.backRequested
}

// Close tears down the event subscription
func (m *EditorModel) Close() {
	if m.cancelSub != nil {
		m.cancelSub()
		m.cancelSub = nil
	}
}

// Update handles editor messages
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case errorScanTimeoutMsg:
		// Runs at most once per load; a no-op if the event stream already
		// triggered the scan
		if m.Tabs.ScanForErrors() {
			m.rebuildRows()
		}
		return m, nil

	case subscribedMsg:
		m.eventsCh = msg.ch
		m.cancelSub = msg.cancel
		return m, waitForValidation(msg.ch)

	case validationEventMsg:
		cmd := waitForValidation(m.eventsCh)
		if msg.result.FormID == m.Form.ID {
			msg.result.ApplyTo(m.Form)
			m.Tabs.Initialize(m.Form)
			m.Tabs.ScanForErrors()
			m.rebuildRows()
			if !msg.result.Valid {
				m.status = fmt.Sprintf("%d validation error(s)", len(msg.result.Errors))
				m.statusErr = true
			}
		}
		return m, cmd

	case eventsClosedMsg:
		m.eventsCh = nil
		return m, nil

	case submitResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.status = "Save failed: " + msg.err.Error()
			m.statusErr = true
			return m, clearStatusAfter()
		}
		msg.result.ApplyTo(m.Form)
		m.Tabs.Initialize(m.Form)
		m.Tabs.ScanForErrors()
		m.rebuildRows()
		if msg.result.Valid {
			m.status = "Saved"
			m.statusErr = false
		} else {
			m.status = fmt.Sprintf("Not saved: %d validation error(s)", len(msg.result.Errors))
			m.statusErr = true
		}
		return m, clearStatusAfter()

	case statusClearMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		// Language shortcuts work from anywhere on the form, even while a
		// field editor has focus
		if index := shortcutIndex(msg.String()); index >= 0 {
			if lang, ok := m.Tabs.LanguageAt(index); ok {
				if m.editing {
					m.editing = false
					m.input.Blur()
				}
				m.Tabs.Select(lang.Code)
				m.rebuildRows()
			}
			return m, nil
		}
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

// updateBrowsing handles keys while navigating the form
func (m EditorModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.Keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.Keys.PrevTab):
		m.selectAdjacentTab(-1)

	case key.Matches(msg, m.Keys.NextTab):
		m.selectAdjacentTab(1)

	case key.Matches(msg, m.Keys.Edit):
		if m.cursor < len(m.rows) {
			m.editing = true
			m.input.SetValue(m.rows[m.cursor].field.Value)
			m.input.CursorEnd()
			m.input.Focus()
			return m, textinput.Blink
		}

	case key.Matches(msg, m.Keys.Save):
		if !m.submitting {
			m.submitting = true
			m.status = "Saving..."
			m.statusErr = false
			return m, submitForm(m.Client, m.Form)
		}

	case key.Matches(msg, m.Keys.Back), key.Matches(msg, m.Keys.Quit):
		m.backRequested = true
	}

	return m, nil
}

// updateEditing handles keys while a field value is being edited
func (m EditorModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.EditKeys.Cancel):
		m.editing = false
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.EditKeys.Confirm):
		if m.cursor < len(m.rows) {
			m.rows[m.cursor].field.Value = m.input.Value()
		}
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// selectAdjacentTab moves the active tab left or right in header order
func (m *EditorModel) selectAdjacentTab(offset int) {
	headers := m.Tabs.Headers()
	if len(headers) == 0 {
		return
	}
	current := 0
	for i, h := range headers {
		if h.Active {
			current = i
			break
		}
	}
	next := (current + offset + len(headers)) % len(headers)
	m.Tabs.Select(headers[next].Code)
	m.rebuildRows()
}

// submitForm posts the form's values to the backend
func submitForm(client *adminapi.Client, f *form.Form) tea.Cmd {
	values := f.Values()
	id := f.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		result, err := client.SubmitForm(ctx, id, values)
		return submitResultMsg{result: result, err: err}
	}
}

// View renders the editor screen
func (m EditorModel) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle(m.Form.Title))
	b.WriteString("\n")
	b.WriteString(RenderSubtitle(m.Form.Kind.DisplayName() + " • " + m.Form.ID))
	b.WriteString("\n\n")

	if m.Tabs.Built() {
		b.WriteString(m.renderTabStrip())
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderFields())

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(RenderError(m.status))
		} else {
			b.WriteString(RenderSuccess(m.status))
		}
		b.WriteString("\n")
	}

	var helpText string
	if m.editing {
		helpText = m.Help.View(m.EditKeys)
	} else {
		helpText = m.Help.View(m.Keys)
	}
	return RenderApplicationContainer(b.String(), helpText, m.Width, m.Height)
}

// renderTabStrip renders the language headers with active and error markers
func (m EditorModel) renderTabStrip() string {
	var cells []string
	for _, h := range m.Tabs.Headers() {
		label := h.Label
		if panel := m.Tabs.PanelByCode(h.Code); panel != nil && panel.HasErrors() {
			label += " " + TabErrorMarkerStyle.Render("✗")
		}
		if h.Active {
			cells = append(cells, TabActiveStyle.Render(label))
		} else {
			cells = append(cells, TabInactiveStyle.Render(label))
		}
	}
	return "  " + lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// renderFields renders the visible field rows, grouped under their legends
func (m EditorModel) renderFields() string {
	var b strings.Builder
	var lastGroup *form.FieldGroup

	for i, row := range m.rows {
		if row.group != lastGroup {
			if lastGroup != nil {
				b.WriteString("\n")
			}
			legend := row.group.Legend
			if legend == "" {
				legend = row.group.ID
			}
			b.WriteString("  " + LegendStyle.Render(legend))
			if lang := row.group.LanguageTag(); lang != "" {
				b.WriteString("  " + SubtitleStyle.Render("["+lang+"]"))
			}
			b.WriteString("\n")
			for _, msg := range row.group.Errors {
				b.WriteString("    " + FieldErrorStyle.Render("✗ "+msg) + "\n")
			}
			lastGroup = row.group
		}

		labelStyle := FieldLabelStyle
		prefix := "    "
		if i == m.cursor && !m.editing {
			labelStyle = FieldLabelFocusStyle
			prefix = "  → "
		}

		if i == m.cursor && m.editing {
			b.WriteString(fmt.Sprintf("  → %s %s\n", labelStyle.Render(row.field.Label+":"), m.input.View()))
		} else {
			value := row.field.Value
			if value == "" {
				value = SubtitleStyle.Render("(blank)")
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, labelStyle.Render(row.field.Label+":"), value))
		}

		for _, msg := range row.field.Errors {
			b.WriteString("      " + FieldErrorStyle.Render("✗ "+msg) + "\n")
		}
	}

	if len(m.rows) == 0 {
		b.WriteString("  " + SubtitleStyle.Render("This record has no editable fields."))
		b.WriteString("\n")
	}
	return b.String()
}
