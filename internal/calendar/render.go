package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	cellCommittedStyle = lipgloss.NewStyle().Background(lipgloss.Color("39"))  // sky blue
	cellVisitedStyle   = lipgloss.NewStyle().Background(lipgloss.Color("220")) // yellow
	cellNoDataStyle    = lipgloss.NewStyle().Background(lipgloss.Color("236")) // near black
	cellPendingStyle   = lipgloss.NewStyle().Background(lipgloss.Color("196")) // red: today still open
	cellTodayDoneStyle = lipgloss.NewStyle().Background(lipgloss.Color("205")) // highlight: committed today
	cellPaddingStyle   = lipgloss.NewStyle()

	weekLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(10)
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Bold(true)
)

func cellStyle(class Class) lipgloss.Style {
	switch class {
	case ClassCommitted:
		return cellCommittedStyle
	case ClassCommittedToday:
		return cellTodayDoneStyle
	case ClassPendingToday:
		return cellPendingStyle
	case ClassVisited:
		return cellVisitedStyle
	case ClassNoData:
		return cellNoDataStyle
	default:
		return cellPaddingStyle
	}
}

// RenderGrid renders the weekday-aligned grid for a terminal, newest week on
// top. Shared by the calendar command and the TUI calendar tab.
func RenderGrid(grid [][]Cell) string {
	var b strings.Builder

	b.WriteString(weekLabelStyle.Render(""))
	for _, label := range WeekdayLabels() {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%-3s ", label[:2])))
	}
	b.WriteString("\n")

	for i := len(grid) - 1; i >= 0; i-- {
		label := "this week"
		if age := len(grid) - 1 - i; age > 0 {
			label = fmt.Sprintf("%dw ago", age)
		}
		b.WriteString(weekLabelStyle.Render(label))
		for _, cell := range grid[i] {
			b.WriteString(cellStyle(cell.Class).Render("  "))
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderLegend maps each cell color to its meaning.
func RenderLegend() string {
	entries := []struct {
		style lipgloss.Style
		label string
	}{
		{cellPendingStyle, "today, pending"},
		{cellTodayDoneStyle, "today, committed"},
		{cellCommittedStyle, "committed"},
		{cellVisitedStyle, "visited, not committed"},
		{cellNoDataStyle, "no data"},
	}

	var parts []string
	for _, e := range entries {
		parts = append(parts, e.style.Render("  ")+" "+e.label)
	}
	return strings.Join(parts, "   ")
}
