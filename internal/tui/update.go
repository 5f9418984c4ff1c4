package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/effort/internal/tui/components/applist"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := docStyle.GetFrameSize()
		m.appList.SetSize(msg.Width-h, msg.Height-v-4)
		return m, nil

	case applist.AddApplicationMsg:
		m.previousState = m.state
		m.state = StateAddApp
		m.form = m.newAppForm()
		return m, m.form.Init()

	case applist.RecordMsg:
		m.record(msg.ApplicationID, msg.Desired)
		return m, nil

	case tea.KeyMsg:
		if m.state == StateAddApp {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			if m.state == StateApps {
				m.state = StateCalendar
			} else {
				m.state = StateApps
			}
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	switch m.state {
	case StateApps:
		var cmd tea.Cmd
		m.appList, cmd = m.appList.Update(msg)
		return m, cmd

	case StateAddApp:
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		if m.form.State == huh.StateCompleted {
			m.addApplication(m.appForm.Name)
			m.state = m.previousState
			m.form = nil
			return m, nil
		}
		if m.form.State == huh.StateAborted {
			m.state = m.previousState
			m.form = nil
			return m, nil
		}
		return m, cmd
	}

	return m, nil
}
