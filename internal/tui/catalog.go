package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogevgelija/ggadmin/internal/adminapi"
)

// catalogKeyMap defines key bindings for the catalog screen
type catalogKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding
	Quit  key.Binding
}

func (k catalogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Back, k.Quit}
}

func (k catalogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Enter, k.Back, k.Quit}}
}

// recordItem wraps a catalog entry for bubbles/list
type recordItem struct {
	summary adminapi.Summary
	section string
}

func (r recordItem) FilterValue() string {
	return r.summary.Title + " " + r.summary.ID
}

func (r recordItem) Title() string {
	return r.summary.Title
}

func (r recordItem) Description() string {
	return fmt.Sprintf("%s • %s", r.summary.Kind.DisplayName(), r.summary.ID)
}

// recordDelegate renders catalog rows
type recordDelegate struct{}

func (d recordDelegate) Height() int                               { return 2 }
func (d recordDelegate) Spacing() int                              { return 0 }
func (d recordDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d recordDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ri, ok := item.(recordItem)
	if !ok {
		return
	}

	titleStyle := lipgloss.NewStyle().Foreground(TextColor).PaddingLeft(4)
	descStyle := lipgloss.NewStyle().Foreground(SubtleColor).PaddingLeft(4)
	if index == m.Index() {
		titleStyle = lipgloss.NewStyle().Foreground(HighlightColor).Bold(true).PaddingLeft(2)
		fmt.Fprintf(w, "%s\n%s", titleStyle.Render("→ "+ri.Title()), descStyle.Render(ri.Description()))
		return
	}
	fmt.Fprintf(w, "%s\n%s", titleStyle.Render(ri.Title()), descStyle.Render(ri.Description()))
}

// CatalogModel is the record selection screen
type CatalogModel struct {
	BackendURL string
	RecordList list.Model
	Selected   bool
	Back       bool

	Width  int
	Height int

	Help help.Model
	Keys catalogKeyMap
}

// NewCatalogModel creates the catalog screen over a fetched catalog
func NewCatalogModel(backendURL string, catalog *adminapi.Catalog) CatalogModel {
	var items []list.Item
	for _, section := range catalog.Sections {
		for _, summary := range section.Forms {
			items = append(items, recordItem{summary: summary, section: section.Name})
		}
	}

	recordList := list.New(items, recordDelegate{}, 0, 0)
	recordList.SetShowTitle(false)
	recordList.SetShowStatusBar(false)
	recordList.SetShowHelp(false)
	recordList.SetFilteringEnabled(false)

	keys := catalogKeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Back:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}

	return CatalogModel{
		BackendURL: backendURL,
		RecordList: recordList,
		Help:       help.New(),
		Keys:       keys,
	}
}

// Init implements tea.Model
func (m CatalogModel) Init() tea.Cmd {
	return nil
}

// Update handles catalog screen messages
func (m CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.RecordList.SetSize(msg.Width-8, msg.Height-10)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Enter):
			if len(m.RecordList.Items()) > 0 {
				m.Selected = true
			}
			return m, nil
		case key.Matches(msg, m.Keys.Back):
			m.Back = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.RecordList, cmd = m.RecordList.Update(msg)
	return m, cmd
}

// GetSelectedFormID returns the chosen record's form ID, or "" if none
func (m CatalogModel) GetSelectedFormID() string {
	if !m.Selected {
		return ""
	}
	if item, ok := m.RecordList.SelectedItem().(recordItem); ok {
		return item.summary.ID
	}
	return ""
}

// View renders the catalog screen
func (m CatalogModel) View() string {
	var b strings.Builder
	b.WriteString(RenderSubtitle("Connected to " + m.BackendURL))
	b.WriteString("\n\n")
	if len(m.RecordList.Items()) == 0 {
		b.WriteString("  No records on this backend.\n")
	} else {
		b.WriteString(m.RecordList.View())
	}

	return RenderApplicationContainer(b.String(), m.Help.View(m.Keys), m.Width, m.Height)
}
