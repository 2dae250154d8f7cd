package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"dailyroll/internal/adapters/tui/views"
	"dailyroll/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPicker ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state  ViewState
	picker *views.PickerModel
	help   *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(repo ports.NoteRepository, journal ports.MergeJournal) *App {
	return &App{
		state:  ViewPicker,
		picker: views.NewPickerModel(repo, journal),
		help:   views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.picker.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.picker.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.ShowHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToPickerMsg:
		a.state = ViewPicker
		return a, nil
	}

	switch a.state {
	case ViewHelp:
		_, cmd := a.help.Update(msg)
		return a, cmd
	default:
		_, cmd := a.picker.Update(msg)
		return a, cmd
	}
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.picker.View()
	}
}
