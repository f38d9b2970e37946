package tui

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogevgelija/ggadmin/internal/discovery"
)

// Messages for async operations
type scanCompleteMsg struct {
	backends []*discovery.Backend
	err      error
}

type scanTickMsg time.Time

// discoveryKeyMap defines key bindings for the discovery screen
type discoveryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Rescan key.Binding
	Manual key.Binding
	Quit   key.Binding
}

func (k discoveryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Rescan, k.Manual, k.Quit}
}

func (k discoveryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Rescan, k.Manual, k.Quit},
	}
}

// manualModeKeyMap defines key bindings for manual URL entry
type manualModeKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

func (k manualModeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

func (k manualModeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.Cancel}}
}

// backendItem wraps a Backend for use with bubbles/list
type backendItem struct {
	backend *discovery.Backend
}

func (b backendItem) FilterValue() string {
	return b.backend.Name + " " + b.backend.IP + " " + b.backend.Hostname
}

func (b backendItem) Title() string {
	return b.backend.Name
}

func (b backendItem) Description() string {
	return fmt.Sprintf("%s:%d • %s", b.backend.IP, b.backend.Port, b.backend.BaseURL())
}

// backendDelegate renders backend rows in the list
type backendDelegate struct{}

func (d backendDelegate) Height() int                             { return 2 }
func (d backendDelegate) Spacing() int                            { return 1 }
func (d backendDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d backendDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	bi, ok := item.(backendItem)
	if !ok {
		return
	}

	titleStyle := lipgloss.NewStyle().Foreground(TextColor).PaddingLeft(4)
	descStyle := lipgloss.NewStyle().Foreground(SubtleColor).PaddingLeft(4)
	if index == m.Index() {
		titleStyle = lipgloss.NewStyle().Foreground(HighlightColor).Bold(true).PaddingLeft(2)
		descStyle = descStyle.PaddingLeft(2)
		fmt.Fprintf(w, "%s\n%s", titleStyle.Render("→ "+bi.Title()), descStyle.Render("  "+bi.Description()))
		return
	}
	fmt.Fprintf(w, "%s\n%s", titleStyle.Render(bi.Title()), descStyle.Render(bi.Description()))
}

// DiscoveryModel is the backend discovery screen
type DiscoveryModel struct {
	BackendList list.Model
	Spinner     spinner.Model
	ProgressBar progress.Model
	URLInput    textinput.Model

	Scanning      bool
	ScanStartTime time.Time
	ScanTimeout   time.Duration
	ManualMode    bool
	Selected      bool
	ManualURL     string
	Err           error

	Width  int
	Height int

	Help       help.Model
	Keys       discoveryKeyMap
	ManualKeys manualModeKeyMap
}

// NewDiscoveryModel creates the discovery screen in scanning state
func NewDiscoveryModel() DiscoveryModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	pb := progress.New(progress.WithDefaultGradient())

	input := textinput.New()
	input.Placeholder = "http://192.168.1.50:8600"
	input.CharLimit = 128
	input.Width = 40

	backendList := list.New(nil, backendDelegate{}, 0, 0)
	backendList.SetShowTitle(false)
	backendList.SetShowStatusBar(false)
	backendList.SetShowHelp(false)
	backendList.SetFilteringEnabled(false)

	keys := discoveryKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "connect")),
		Rescan: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rescan")),
		Manual: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "manual url")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
	}
	manualKeys := manualModeKeyMap{
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "connect")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}

	return DiscoveryModel{
		BackendList: backendList,
		Spinner:     sp,
		ProgressBar: pb,
		URLInput:    input,
		Scanning:      true,
		ScanStartTime: time.Now(),
		ScanTimeout:   discovery.DefaultScanTimeout,
		Help:        help.New(),
		Keys:        keys,
		ManualKeys:  manualKeys,
	}
}

// Init starts the network scan
func (m DiscoveryModel) Init() tea.Cmd {
	return tea.Batch(
		m.Spinner.Tick,
		scanBackends(m.ScanTimeout),
		scanTick(),
	)
}

// scanBackends runs the mDNS scan off the update loop
func scanBackends(timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		backends, err := discovery.ScanForBackends(timeout)
		return scanCompleteMsg{backends: backends, err: err}
	}
}

// scanTick drives the elapsed-time display during a scan
func scanTick() tea.Cmd {
	return tea.Tick(time.Second/4, func(t time.Time) tea.Msg {
		return scanTickMsg(t)
	})
}

// Update handles discovery screen messages
func (m DiscoveryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.BackendList.SetSize(msg.Width-8, msg.Height-12)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case scanTickMsg:
		if m.Scanning {
			return m, scanTick()
		}
		return m, nil

	case scanCompleteMsg:
		m.Scanning = false
		m.Err = msg.err
		items := make([]list.Item, 0, len(msg.backends))
		for _, backend := range msg.backends {
			items = append(items, backendItem{backend: backend})
		}
		m.BackendList.SetItems(items)
		return m, nil

	case tea.KeyMsg:
		if m.ManualMode {
			return m.updateManualMode(msg)
		}
		switch {
		case key.Matches(msg, m.Keys.Rescan):
			if !m.Scanning {
				m.Scanning = true
				m.Err = nil
				m.ScanStartTime = time.Now()
				m.BackendList.SetItems(nil)
				return m, tea.Batch(m.Spinner.Tick, scanBackends(m.ScanTimeout), scanTick())
			}
		case key.Matches(msg, m.Keys.Manual):
			m.ManualMode = true
			m.URLInput.Focus()
			return m, textinput.Blink
		case key.Matches(msg, m.Keys.Enter):
			if !m.Scanning && len(m.BackendList.Items()) > 0 {
				m.Selected = true
			}
			return m, nil
		}
	}

	if !m.Scanning && !m.ManualMode {
		var cmd tea.Cmd
		m.BackendList, cmd = m.BackendList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateManualMode handles keys while the URL input is focused
func (m DiscoveryModel) updateManualMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ManualKeys.Cancel):
		m.ManualMode = false
		m.URLInput.Blur()
		m.URLInput.SetValue("")
		return m, nil

	case key.Matches(msg, m.ManualKeys.Confirm):
		raw := strings.TrimSpace(m.URLInput.Value())
		if raw == "" {
			return m, nil
		}
		if !strings.Contains(raw, "://") {
			raw = "http://" + raw
		}
		if _, err := url.Parse(raw); err != nil {
			m.Err = fmt.Errorf("invalid backend URL: %w", err)
			return m, nil
		}
		m.ManualURL = raw
		m.Selected = true
		return m, nil
	}

	var cmd tea.Cmd
	m.URLInput, cmd = m.URLInput.Update(msg)
	return m, cmd
}

// GetSelectedBackendURL returns the chosen backend's base URL, or "" if none
func (m DiscoveryModel) GetSelectedBackendURL() string {
	if !m.Selected {
		return ""
	}
	if m.ManualURL != "" {
		return m.ManualURL
	}
	if item, ok := m.BackendList.SelectedItem().(backendItem); ok {
		return item.backend.BaseURL()
	}
	return ""
}

// View renders the discovery screen
func (m DiscoveryModel) View() string {
	var content string
	switch {
	case m.ManualMode:
		content = m.renderManualEntry()
	case m.Scanning:
		content = m.renderScanning()
	default:
		content = m.renderResults()
	}

	var helpText string
	switch {
	case m.ManualMode:
		helpText = m.Help.View(m.ManualKeys)
	default:
		helpText = m.Help.View(m.Keys)
	}

	return RenderApplicationContainer(content, helpText, m.Width, m.Height)
}

// renderScanning renders the centered scan progress display
func (m DiscoveryModel) renderScanning() string {
	elapsed := time.Since(m.ScanStartTime)
	elapsedSec := int(elapsed.Seconds())

	total := int(m.ScanTimeout.Seconds())
	if total <= 0 {
		total = 1
	}
	percent := elapsedSec * 100 / total
	if percent > 100 {
		percent = 100
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		"",
		TitleStyle.Render(m.Spinner.View()+" SEARCHING FOR BACKENDS"),
		"",
		SubtitleStyle.Render("Scanning your network for ggadmin backends..."),
		"",
		m.ProgressBar.ViewAs(float64(percent)/100.0),
		"",
		SubtitleStyle.Render("Elapsed: "+strconv.Itoa(elapsedSec)+"s"),
		"",
	)
	return lipgloss.Place(m.Width-4, 0, lipgloss.Center, lipgloss.Top, content)
}

// renderResults renders the backend list or the empty/error message
func (m DiscoveryModel) renderResults() string {
	var b strings.Builder
	b.WriteString("\n")

	switch {
	case m.Err != nil:
		b.WriteString(RenderError(fmt.Sprintf("Scan failed: %v", m.Err)))
		b.WriteString("\n\n")
		b.WriteString("  Troubleshooting:\n")
		b.WriteString("    • Check that the backend is running (ggadmin-server serve)\n")
		b.WriteString("    • Verify this machine is on the same network\n")
		b.WriteString("    • Use 'm' to enter the backend URL manually\n")

	case len(m.BackendList.Items()) == 0:
		warningStyle := lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
		b.WriteString("  ")
		b.WriteString(warningStyle.Render("⚠ No backends found on your network"))
		b.WriteString("\n\n")
		b.WriteString("  Troubleshooting:\n")
		b.WriteString("    • Check that the backend is running with --announce\n")
		b.WriteString("    • Try rescanning with 'r'\n")
		b.WriteString("    • Use 'm' to enter the backend URL manually\n")

	default:
		b.WriteString(m.BackendList.View())
	}

	return b.String()
}

// renderManualEntry renders the manual URL entry dialog
func (m DiscoveryModel) renderManualEntry() string {
	var b strings.Builder
	b.WriteString(RenderSubtitle("Enter backend URL"))
	b.WriteString("\n\n")
	b.WriteString("  Backend URL: ")
	b.WriteString(m.URLInput.View())
	b.WriteString("\n\n")
	if m.Err != nil {
		b.WriteString("  " + FieldErrorStyle.Render(m.Err.Error()))
		b.WriteString("\n")
	}
	return b.String()
}
