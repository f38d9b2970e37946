package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogevgelija/ggadmin/internal/adminapi"
	"github.com/gogevgelija/ggadmin/internal/config"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenDiscovery Screen = "discovery"
	ScreenCatalog   Screen = "catalog"
	ScreenEditor    Screen = "editor"
)

// AppModel is the top-level coordinator model that manages screen transitions
type AppModel struct {
	CurrentScreen Screen

	// Screen models
	DiscoveryModel DiscoveryModel
	CatalogModel   CatalogModel
	EditorModel    EditorModel

	// Shared application state
	Registry   *config.Registry
	Client     *adminapi.Client
	BackendURL string
	LastError  error

	// UI state
	Width  int
	Height int
}

// NewAppModel creates the application. When backendURL is non-empty the
// discovery screen is skipped and the catalog loads immediately.
func NewAppModel(registry *config.Registry, backendURL string) AppModel {
	model := AppModel{
		CurrentScreen: ScreenDiscovery,
		Registry:      registry,
		BackendURL:    backendURL,
	}

	if backendURL != "" {
		model.Client = adminapi.NewClient(backendURL)
		model.CurrentScreen = ScreenCatalog
	} else {
		model.DiscoveryModel = NewDiscoveryModel()
	}
	return model
}

// Init initializes the starting screen
func (m AppModel) Init() tea.Cmd {
	switch m.CurrentScreen {
	case ScreenDiscovery:
		return m.DiscoveryModel.Init()
	case ScreenCatalog:
		return func() tea.Msg { return openCatalogMsg{} }
	default:
		return nil
	}
}

// openCatalogMsg asks the app to fetch the catalog for the current backend
type openCatalogMsg struct{}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		// The active screen resizes; others pick up dimensions on transition
		return m.updateCurrentScreen(msg)

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			m.EditorModel.Close()
			return m, tea.Quit
		}

	case openCatalogMsg:
		return m.openCatalog()
	}

	return m.updateCurrentScreen(msg)
}

// updateCurrentScreen routes updates to the currently active screen
func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.CurrentScreen {
	case ScreenDiscovery:
		updated, c := m.DiscoveryModel.Update(msg)
		m.DiscoveryModel = updated.(DiscoveryModel)
		cmd = c

		if m.DiscoveryModel.Selected {
			if url := m.DiscoveryModel.GetSelectedBackendURL(); url != "" {
				m.BackendURL = url
				m.Client = adminapi.NewClient(url)
				return m.openCatalog()
			}
			m.DiscoveryModel.Selected = false
		}

		// Quit from the idle results list
		if !m.DiscoveryModel.Scanning && !m.DiscoveryModel.ManualMode {
			if keyMsg, ok := msg.(tea.KeyMsg); ok {
				if keyMsg.String() == "q" || keyMsg.String() == "esc" {
					return m, tea.Quit
				}
			}
		}

	case ScreenCatalog:
		updated, c := m.CatalogModel.Update(msg)
		m.CatalogModel = updated.(CatalogModel)
		cmd = c

		if m.CatalogModel.Selected {
			if id := m.CatalogModel.GetSelectedFormID(); id != "" {
				return m.openEditor(id)
			}
			m.CatalogModel.Selected = false
		}
		if m.CatalogModel.Back {
			return m.transitionToDiscovery()
		}
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "q" {
			return m, tea.Quit
		}

	case ScreenEditor:
		updated, c := m.EditorModel.Update(msg)
		if em, ok := updated.(EditorModel); ok {
			m.EditorModel = em
		}
		cmd = c

		if m.EditorModel.IsBackRequested() {
			m.EditorModel.Close()
			return m.openCatalog()
		}
	}

	return m, cmd
}

// openCatalog fetches the catalog and shows the record list
func (m AppModel) openCatalog() (tea.Model, tea.Cmd) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	catalog, err := m.Client.GetCatalog(ctx)
	if err != nil {
		m.LastError = fmt.Errorf("fetching catalog from %s: %w", m.BackendURL, err)
		return m.transitionToDiscovery()
	}
	m.LastError = nil

	m.CurrentScreen = ScreenCatalog
	m.CatalogModel = NewCatalogModel(m.BackendURL, catalog)
	m.CatalogModel.Width = m.Width
	m.CatalogModel.Height = m.Height
	m.CatalogModel.RecordList.SetSize(m.Width-8, m.Height-10)
	return m, m.CatalogModel.Init()
}

// openEditor fetches one form and shows the editor
func (m AppModel) openEditor(formID string) (tea.Model, tea.Cmd) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	f, err := m.Client.GetForm(ctx, formID)
	if err != nil {
		// Stay on the catalog; surface the error there
		m.LastError = fmt.Errorf("fetching form %s: %w", formID, err)
		m.CatalogModel.Selected = false
		return m, nil
	}
	m.LastError = nil

	m.CurrentScreen = ScreenEditor
	m.EditorModel = NewEditorModel(m.Client, f, m.Registry)
	m.EditorModel.Width = m.Width
	m.EditorModel.Height = m.Height
	return m, m.EditorModel.Init()
}

// transitionToDiscovery returns to a fresh discovery screen
func (m AppModel) transitionToDiscovery() (tea.Model, tea.Cmd) {
	m.CurrentScreen = ScreenDiscovery
	m.DiscoveryModel = NewDiscoveryModel()
	m.DiscoveryModel.Width = m.Width
	m.DiscoveryModel.Height = m.Height
	return m, m.DiscoveryModel.Init()
}

// View renders the current screen
func (m AppModel) View() string {
	switch m.CurrentScreen {
	case ScreenDiscovery:
		return m.DiscoveryModel.View()
	case ScreenCatalog:
		return m.CatalogModel.View()
	case ScreenEditor:
		return m.EditorModel.View()
	default:
		return "Unknown screen"
	}
}

// Run starts the interactive application over the given backend URL
// (discovered interactively when empty).
func Run(registry *config.Registry, backendURL string) error {
	p := tea.NewProgram(NewAppModel(registry, backendURL), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
