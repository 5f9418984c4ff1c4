package applist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/effort/internal/models"
)

type AddApplicationMsg struct{}

type RecordMsg struct {
	ApplicationID string
	Desired       models.CommitmentState
}

type Item struct {
	App        models.Application
	TodayState models.CommitmentState
	Reported   bool
}

func (i Item) Title() string {
	switch {
	case i.Reported && i.TodayState == models.StateCompleted:
		return "✅ " + i.App.Name
	case i.Reported && i.TodayState == models.StateTouched:
		return "🙌 " + i.App.Name
	case i.Reported && i.TodayState == models.StatePotentialMiss:
		return "🤔 " + i.App.Name
	default:
		return "   " + i.App.Name
	}
}

func (i Item) Description() string {
	if !i.Reported {
		return "not reported today"
	}
	return "today: " + string(i.TodayState)
}

func (i Item) FilterValue() string { return i.App.Name }

type KeyMap struct {
	Touched   key.Binding
	Miss      key.Binding
	Completed key.Binding
	Add       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Touched: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "touched today"),
		),
		Miss: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "might miss today"),
		),
		Completed: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "completed"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add application"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(items []Item, width, height int) Model {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}

	l := list.New(listItems, list.NewDefaultDelegate(), width, height)
	l.Title = "Applications"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is rendered globally

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Touched, keys.Miss, keys.Completed, keys.Add}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{list: l, keys: keys}
}

func (m *Model) SetItems(items []Item) {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}
	m.list.SetItems(listItems)
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Selected() (Item, bool) {
	it, ok := m.list.SelectedItem().(Item)
	return it, ok
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddApplicationMsg{} }
		case key.Matches(msg, m.keys.Touched):
			return m, m.recordCmd(models.StateTouched)
		case key.Matches(msg, m.keys.Miss):
			return m, m.recordCmd(models.StatePotentialMiss)
		case key.Matches(msg, m.keys.Completed):
			return m, m.recordCmd(models.StateCompleted)
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) recordCmd(desired models.CommitmentState) tea.Cmd {
	it, ok := m.Selected()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return RecordMsg{ApplicationID: it.App.ID, Desired: desired}
	}
}

func (m Model) View() string {
	return m.list.View()
}
