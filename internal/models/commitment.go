package models

import (
	"fmt"
	"time"
)

type CommitmentState string

const (
	StateTouched       CommitmentState = "touched"
	StateCompleted     CommitmentState = "completed"
	StatePotentialMiss CommitmentState = "potential_miss"
)

// ParseCommitmentState validates a state received from the outside
// (CLI args, form input). Unknown values are a caller error, not a panic.
func ParseCommitmentState(s string) (CommitmentState, error) {
	switch CommitmentState(s) {
	case StateTouched, StateCompleted, StatePotentialMiss:
		return CommitmentState(s), nil
	}
	return "", fmt.Errorf("unknown commitment state: %q", s)
}

// CommitmentRecord is one day's commitment claim for one application.
// At most one record exists per (UserID, ApplicationID, Day).
type CommitmentRecord struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	ApplicationID string          `json:"application_id"`
	Day           string          `json:"day"` // YYYY-MM-DD activity-day key
	State         CommitmentState `json:"state"`
	CreatedAt     time.Time       `json:"created_at"`
}
