package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/effort/internal/calendar"
	"github.com/julianstephens/effort/internal/commitment"
	"github.com/julianstephens/effort/internal/models"
	"github.com/julianstephens/effort/internal/storage"
	"github.com/julianstephens/effort/internal/tui/components/applist"
)

type SessionState int

const (
	StateApps SessionState = iota
	StateCalendar
	StateAddApp
)

type AppFormModel struct {
	Name string
}

type Model struct {
	store   storage.Provider
	service *commitment.Service

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	appList applist.Model
	grid    [][]calendar.Cell
	today   string

	form    *huh.Form
	appForm *AppFormModel

	statusMsg string
	errMsg    string
	quitting  bool
	width     int
	height    int
}

func New(store storage.Provider, service *commitment.Service) (*Model, error) {
	m := &Model{
		store:   store,
		service: service,
		state:   StateApps,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		appList: applist.New(nil, 0, 0),
	}
	if err := m.refresh(); err != nil {
		return nil, err
	}
	return m, nil
}

// refresh reloads applications, today's states and the calendar grid.
func (m *Model) refresh() error {
	settings, err := m.store.GetSettings()
	if err != nil {
		return err
	}

	apps, err := m.store.GetAllApplications(settings.UserID)
	if err != nil {
		return err
	}

	var items []applist.Item
	for _, app := range apps {
		if !app.Eligible() {
			continue
		}
		state, ok, err := m.service.TodayState(app.ID)
		if err != nil {
			return err
		}
		items = append(items, applist.Item{App: app, TodayState: state, Reported: ok})
	}
	m.appList.SetItems(items)

	weeks := settings.CalendarWeeks
	if weeks <= 0 {
		weeks = storage.DefaultCalendarWeeks
	}
	counts, today, err := m.service.History(weeks * calendar.DaysInWeek)
	if err != nil {
		return err
	}
	grid, err := calendar.Weeks(counts, weeks, today)
	if err != nil {
		return err
	}
	m.grid = grid
	m.today = today

	return nil
}

func (m *Model) record(applicationID string, desired models.CommitmentState) {
	res, err := m.service.Record(applicationID, desired)
	switch {
	case err == nil:
		m.errMsg = ""
		m.statusMsg = fmt.Sprintf("Recorded %s for %s", res.AppliedState, res.Day)
	case errors.Is(err, commitment.ErrIllegalTransition):
		m.errMsg = ""
		m.statusMsg = "Already recorded today"
	default:
		m.statusMsg = ""
		m.errMsg = err.Error()
	}

	if err := m.refresh(); err != nil {
		m.errMsg = err.Error()
	}
}

func (m *Model) addApplication(name string) {
	settings, err := m.store.GetSettings()
	if err != nil {
		m.errMsg = err.Error()
		return
	}

	app := models.Application{
		ID:        uuid.NewString(),
		UserID:    settings.UserID,
		Name:      name,
		Status:    models.AppStatusReporting,
		CreatedAt: time.Now().UTC(),
	}
	if err := m.store.AddApplication(app); err != nil {
		m.errMsg = err.Error()
		return
	}

	m.statusMsg = fmt.Sprintf("Added %q", name)
	if err := m.refresh(); err != nil {
		m.errMsg = err.Error()
	}
}

func (m *Model) newAppForm() *huh.Form {
	m.appForm = &AppFormModel{}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Application name").
				Value(&m.appForm.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
		),
	)
}

func (m Model) Init() tea.Cmd {
	return nil
}
