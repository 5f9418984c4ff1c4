package storage

// Settings holds the local profile and display configuration. The profile
// stands in for the external identity collaborator: commands act as UserID,
// and writes are refused while Verified is false.
type Settings struct {
	UserID        string `json:"user_id"`
	DisplayName   string `json:"display_name"`
	Verified      bool   `json:"verified"`
	CalendarWeeks int    `json:"calendar_weeks"`
}

// DefaultCalendarWeeks is the observed calendar window: six full weeks.
const DefaultCalendarWeeks = 6
