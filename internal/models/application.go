package models

import "time"

type ApplicationStatus string

const (
	AppStatusDraft     ApplicationStatus = "draft"
	AppStatusReporting ApplicationStatus = "reporting"
	AppStatusClosed    ApplicationStatus = "closed"
)

// Application represents one commitment target being reported on.
// Only applications in reporting status accept commitments.
type Application struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	Name       string            `json:"name"`
	Status     ApplicationStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	ArchivedAt *time.Time        `json:"archived_at,omitempty"`
}

// Eligible reports whether the application currently accepts commitments.
func (a Application) Eligible() bool {
	return a.Status == AppStatusReporting && a.ArchivedAt == nil
}
