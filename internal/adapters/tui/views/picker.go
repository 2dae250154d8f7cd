package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dailyroll/internal/adapters/tui/styles"
	"dailyroll/internal/application/commands"
	"dailyroll/internal/domain"
	"dailyroll/internal/ports"
)

// PickerKeyMap defines key bindings for the month picker
type PickerKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Merge     key.Binding
	Append    key.Binding
	KeepEmpty key.Binding
	SkipTodos key.Binding
	Copy      key.Binding
	Refresh   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var PickerKeys = PickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "select month"),
	),
	Merge: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "merge"),
	),
	Append: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "toggle append"),
	),
	KeepEmpty: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "toggle keep-empty"),
	),
	SkipTodos: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle skip-dup-todos"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy summary path"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// MonthEntry is one selectable row in the picker
type MonthEntry struct {
	Month      string
	NoteCount  int
	HasSummary bool
	Selected   bool
}

type monthsLoadedMsg struct {
	groups  domain.MonthGroups
	entries []MonthEntry
	err     error
}

type mergeFinishedMsg struct {
	messages []string
	failed   bool
}

// PickerModel is the month picker view
type PickerModel struct {
	ViewState

	repo    ports.NoteRepository
	journal ports.MergeJournal // may be nil when the journal is unavailable

	groups  domain.MonthGroups
	entries []MonthEntry
	cursor  int
	opts    domain.MergeOptions
}

// NewPickerModel creates a new month picker
func NewPickerModel(repo ports.NoteRepository, journal ports.MergeJournal) *PickerModel {
	return &PickerModel{repo: repo, journal: journal}
}

// Init loads the months
func (m *PickerModel) Init() tea.Cmd {
	return m.loadMonths
}

func (m *PickerModel) loadMonths() tea.Msg {
	groups, err := m.repo.DiscoverMonths(ports.NoteFilter{})
	if err != nil {
		return monthsLoadedMsg{err: err}
	}

	entries := make([]MonthEntry, 0, len(groups))
	for _, month := range groups.SortedKeys() {
		exists, err := m.repo.SummaryExists(month)
		if err != nil {
			return monthsLoadedMsg{err: err}
		}
		entries = append(entries, MonthEntry{
			Month:      month,
			NoteCount:  len(groups[month]),
			HasSummary: exists,
		})
	}
	return monthsLoadedMsg{groups: groups, entries: entries}
}

// SelectedMonths returns the months to merge: the marked ones, or the
// month under the cursor when nothing is marked.
func (m *PickerModel) SelectedMonths() []string {
	var months []string
	for _, e := range m.entries {
		if e.Selected {
			months = append(months, e.Month)
		}
	}
	if len(months) == 0 && m.cursor < len(m.entries) {
		months = append(months, m.entries[m.cursor].Month)
	}
	return months
}

func (m *PickerModel) mergeMonths(months []string) tea.Cmd {
	repo, journal := m.repo, m.journal
	groups, opts := m.groups, m.opts

	return func() tea.Msg {
		ctx := context.Background()
		var messages []string
		failed := false

		for _, month := range months {
			result, err := commands.NewMergeMonthCommand(repo, month, groups[month], opts).Execute(ctx)
			if err != nil {
				messages = append(messages, fmt.Sprintf("%s: %v", month, err))
				failed = true
				continue
			}
			messages = append(messages, result.Message)

			if journal != nil {
				rec := domain.MergeRecord{
					Month:           month,
					NotesWritten:    result.NotesWritten,
					NotesConsidered: result.NotesConsidered,
				}
				if err := journal.Record(&rec); err != nil {
					messages = append(messages, fmt.Sprintf("%s: journal: %v", month, err))
				}
			}
		}
		return mergeFinishedMsg{messages: messages, failed: failed}
	}
}

// Update handles messages for the picker
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case monthsLoadedMsg:
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.groups = msg.groups
		m.entries = msg.entries
		if m.cursor >= len(m.entries) && len(m.entries) > 0 {
			m.cursor = len(m.entries) - 1
		}
		return m, nil

	case mergeFinishedMsg:
		m.SetMessage(strings.Join(msg.messages, " · "), msg.failed)
		return m, m.loadMonths

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PickerKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, PickerKeys.Help):
			return m, func() tea.Msg { return ShowHelpMsg{} }

		case key.Matches(msg, PickerKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Toggle):
			if m.cursor < len(m.entries) {
				m.entries[m.cursor].Selected = !m.entries[m.cursor].Selected
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Append):
			m.opts.Append = !m.opts.Append
			return m, nil

		case key.Matches(msg, PickerKeys.KeepEmpty):
			m.opts.KeepEmpty = !m.opts.KeepEmpty
			return m, nil

		case key.Matches(msg, PickerKeys.SkipTodos):
			m.opts.SkipDuplicateTodos = !m.opts.SkipDuplicateTodos
			return m, nil

		case key.Matches(msg, PickerKeys.Copy):
			if m.cursor < len(m.entries) {
				path := m.repo.SummaryPath(m.entries[m.cursor].Month)
				clipboard.WriteAll(path)
				m.SetMessage("Copied "+path, false)
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Refresh):
			m.ClearMessage()
			return m, m.loadMonths

		case key.Matches(msg, PickerKeys.Merge):
			months := m.SelectedMonths()
			if len(months) == 0 {
				m.SetMessage("Nothing to merge", true)
				return m, nil
			}
			return m, m.mergeMonths(months)
		}
	}

	return m, nil
}

// View renders the picker
func (m *PickerModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("dailyroll"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Merge daily notes into monthly summaries"))
	b.WriteString("\n\n")

	b.WriteString(optionLabel("append", m.opts.Append))
	b.WriteString("  ")
	b.WriteString(optionLabel("keep-empty", m.opts.KeepEmpty))
	b.WriteString("  ")
	b.WriteString(optionLabel("skip-dup-todos", m.opts.SkipDuplicateTodos))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(styles.MutedText.Render("No daily notes found"))
		b.WriteString("\n")
	}

	for i, entry := range m.entries {
		mark := "[ ]"
		if entry.Selected {
			mark = "[x]"
		}
		row := fmt.Sprintf("%s %s  %d notes", mark, entry.Month, entry.NoteCount)
		if entry.HasSummary {
			row += "  " + styles.SummaryTag.Render("summary exists")
		}
		if i == m.cursor {
			b.WriteString(styles.MonthSelected.Render("> " + row))
		} else {
			b.WriteString(styles.MonthRow.Render("  " + row))
		}
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("space select · enter merge · a/e/t options · y copy path · ? help · q quit"))
	b.WriteString("\n")

	return styles.App.Render(b.String())
}

func optionLabel(name string, on bool) string {
	if on {
		return styles.OptionOn.Render(name + ": on")
	}
	return styles.OptionOff.Render(name + ": off")
}
