// Package commitment enforces the daily commitment state machine.
package commitment

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/effort/internal/dayclock"
	"github.com/julianstephens/effort/internal/identity"
	"github.com/julianstephens/effort/internal/models"
	"github.com/julianstephens/effort/internal/storage"
)

// Result reports the outcome of a successful Record call.
type Result struct {
	AppliedState models.CommitmentState
	Day          string
	Created      bool // true when a new record was inserted, false on an upgrade
}

type Service struct {
	store storage.Provider
	ident identity.Provider
	now   func() time.Time
}

func New(store storage.Provider, ident identity.Provider) *Service {
	return &Service{
		store: store,
		ident: ident,
		now:   time.Now,
	}
}

// NewAt is like New but with an injectable clock.
func NewAt(store storage.Provider, ident identity.Provider, now func() time.Time) *Service {
	return &Service{
		store: store,
		ident: ident,
		now:   now,
	}
}

// Record applies the desired state to today's record for the application.
//
// The write is never read-then-write: a fresh record goes through
// CreateCommitment, which collapses racing inserts on the uniqueness
// constraint, and an existing record goes through TransitionCommitment,
// a compare-and-swap on the current state. A CAS loss means a concurrent
// writer already recorded the day, which surfaces as ErrIllegalTransition.
func (s *Service) Record(applicationID string, desired models.CommitmentState) (Result, error) {
	userID, err := s.ident.CurrentUser()
	if err != nil {
		return Result{}, ErrNotAuthenticated
	}

	if applicationID == "" {
		return Result{}, fmt.Errorf("%w: empty application id", ErrMalformedInput)
	}
	if _, err := models.ParseCommitmentState(string(desired)); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	app, err := s.store.GetApplication(applicationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Result{}, ErrApplicationNotEligible
		}
		return Result{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if app.UserID != userID || !app.Eligible() {
		return Result{}, ErrApplicationNotEligible
	}

	day := dayclock.ActivityDay(s.now())

	rec := models.CommitmentRecord{
		ID:            uuid.NewString(),
		UserID:        userID,
		ApplicationID: applicationID,
		Day:           day,
		State:         desired,
		CreatedAt:     s.now().UTC(),
	}

	err = s.store.CreateCommitment(rec)
	if err == nil {
		return Result{AppliedState: desired, Day: day, Created: true}, nil
	}
	if !errors.Is(err, storage.ErrDuplicate) {
		return Result{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// A record for today already exists; attempt the sanctioned upgrade.
	existing, err := s.store.GetCommitment(userID, applicationID, day)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if !CanTransition(existing.State, desired) {
		return Result{}, fmt.Errorf("%w (current state: %s)", ErrIllegalTransition, existing.State)
	}

	err = s.store.TransitionCommitment(userID, applicationID, day, existing.State, desired)
	if err != nil {
		if errors.Is(err, storage.ErrStaleState) {
			// A concurrent writer moved the record first; the day is recorded.
			return Result{}, fmt.Errorf("%w (concurrent update)", ErrIllegalTransition)
		}
		return Result{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return Result{AppliedState: desired, Day: day, Created: false}, nil
}

// TodayState returns the stored state for today's record, or ok=false when
// the day is still absent.
func (s *Service) TodayState(applicationID string) (models.CommitmentState, bool, error) {
	userID, err := s.ident.CurrentUser()
	if err != nil {
		return "", false, ErrNotAuthenticated
	}

	rec, err := s.store.GetCommitment(userID, applicationID, dayclock.ActivityDay(s.now()))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return rec.State, true, nil
}

// History returns per-day commitment counts for the window ending today,
// plus today's key. A potential_miss record marks the day as visited without
// counting as a commitment, so its day is present with count 0.
func (s *Service) History(windowDays int) (map[string]int, string, error) {
	userID, err := s.ident.CurrentUser()
	if err != nil {
		return nil, "", ErrNotAuthenticated
	}

	today := dayclock.ActivityDay(s.now())
	from := dayclock.AddDays(today, -(windowDays - 1))

	recs, err := s.store.ListCommitments(userID, from, today)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return CountByDay(recs), today, nil
}

// CountByDay folds records into the per-day commit counts the calendar
// consumes. touched and completed each count one; potential_miss only marks
// presence.
func CountByDay(recs []models.CommitmentRecord) map[string]int {
	counts := make(map[string]int, len(recs))
	for _, rec := range recs {
		switch rec.State {
		case models.StateTouched, models.StateCompleted:
			counts[rec.Day]++
		case models.StatePotentialMiss:
			counts[rec.Day] += 0
		}
	}
	return counts
}
