package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dailyroll/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToPickerMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("dailyroll Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Daily-to-monthly note merger"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("space", "Select/deselect month"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Actions"))
	b.WriteString("\n")
	b.WriteString(helpLine("enter", "Merge selected months (or the highlighted one)"))
	b.WriteString(helpLine("a", "Toggle append mode"))
	b.WriteString(helpLine("e", "Toggle keep-empty"))
	b.WriteString(helpLine("t", "Toggle skip-duplicate-todos"))
	b.WriteString(helpLine("y", "Copy summary path to clipboard"))
	b.WriteString(helpLine("r", "Refresh month list"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Other"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle this help"))
	b.WriteString(helpLine("q", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press esc, q or ? to close"))
	b.WriteString("\n")

	return styles.App.Render(b.String())
}

func helpLine(keys, desc string) string {
	return styles.HelpKey.Render(keys) + "  " + styles.HelpDesc.Render(desc) + "\n"
}
