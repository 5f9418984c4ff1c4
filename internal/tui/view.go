package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/effort/internal/calendar"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateApps:
		content = docStyle.Render(m.appList.View())
	case StateCalendar:
		content = m.viewCalendar()
	case StateAddApp:
		if m.form != nil {
			content = docStyle.Render(m.form.View())
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m.keys),
	)
}

func (m *Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Applications", "Calendar"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) viewCalendar() string {
	header := fmt.Sprintf("Commitment calendar (day %s)\n\n", m.today)
	return docStyle.Render(header + calendar.RenderGrid(m.grid))
}

func (m *Model) viewStatus() string {
	if m.errMsg != "" {
		return errorStyle.Render(m.errMsg)
	}
	if m.statusMsg != "" {
		return statusStyle.Render(m.statusMsg)
	}
	return ""
}
