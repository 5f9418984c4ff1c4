package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/effort/internal/models"
)

func providers(t *testing.T) map[string]Provider {
	t.Helper()

	dir := t.TempDir()
	sqlite := NewSQLiteStore(filepath.Join(dir, "effort.db"))
	jsonStore := NewJSONStore(filepath.Join(dir, "effort.json"))

	stores := map[string]Provider{
		"sqlite": sqlite,
		"json":   jsonStore,
	}
	for name, store := range stores {
		if err := store.Init(); err != nil {
			t.Fatalf("%s init failed: %v", name, err)
		}
		t.Cleanup(func() { store.Close() })
	}

	return stores
}

func testRecord(day string, state models.CommitmentState) models.CommitmentRecord {
	return models.CommitmentRecord{
		ID:            "rec-" + day + "-" + string(state),
		UserID:        "user-1",
		ApplicationID: "app-1",
		Day:           day,
		State:         state,
		CreatedAt:     time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreateCommitment_DuplicateDayRejected(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.CreateCommitment(testRecord("2025-10-05", models.StateTouched)); err != nil {
				t.Fatalf("first insert failed: %v", err)
			}

			err := store.CreateCommitment(testRecord("2025-10-05", models.StateCompleted))
			if !errors.Is(err, ErrDuplicate) {
				t.Fatalf("second insert error = %v, want ErrDuplicate", err)
			}

			// A different day for the same pair is fine.
			if err := store.CreateCommitment(testRecord("2025-10-06", models.StateTouched)); err != nil {
				t.Errorf("next-day insert failed: %v", err)
			}
		})
	}
}

func TestTransitionCommitment_StateGuard(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.CreateCommitment(testRecord("2025-10-05", models.StatePotentialMiss)); err != nil {
				t.Fatalf("insert failed: %v", err)
			}

			// Guard mismatch: record is potential_miss, not touched.
			err := store.TransitionCommitment("user-1", "app-1", "2025-10-05",
				models.StateTouched, models.StateCompleted)
			if !errors.Is(err, ErrStaleState) {
				t.Fatalf("mismatched guard error = %v, want ErrStaleState", err)
			}

			// Matching guard succeeds exactly once.
			err = store.TransitionCommitment("user-1", "app-1", "2025-10-05",
				models.StatePotentialMiss, models.StateTouched)
			if err != nil {
				t.Fatalf("matching guard failed: %v", err)
			}

			err = store.TransitionCommitment("user-1", "app-1", "2025-10-05",
				models.StatePotentialMiss, models.StateTouched)
			if !errors.Is(err, ErrStaleState) {
				t.Fatalf("replayed guard error = %v, want ErrStaleState", err)
			}

			rec, err := store.GetCommitment("user-1", "app-1", "2025-10-05")
			if err != nil {
				t.Fatalf("get failed: %v", err)
			}
			if rec.State != models.StateTouched {
				t.Errorf("state = %s, want touched", rec.State)
			}
		})
	}
}

func TestTransitionCommitment_MissingRow(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			err := store.TransitionCommitment("user-1", "app-1", "2025-10-05",
				models.StateTouched, models.StateCompleted)
			if !errors.Is(err, ErrStaleState) {
				t.Errorf("missing row error = %v, want ErrStaleState", err)
			}
		})
	}
}

func TestListCommitments_RangeAndOrder(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			days := []string{"2025-09-01", "2025-09-15", "2025-10-01", "2025-10-05"}
			for _, day := range days {
				if err := store.CreateCommitment(testRecord(day, models.StateTouched)); err != nil {
					t.Fatalf("insert %s failed: %v", day, err)
				}
			}
			// Another user's record must not leak into the scan.
			other := testRecord("2025-09-15", models.StateTouched)
			other.ID = "rec-other"
			other.UserID = "user-2"
			if err := store.CreateCommitment(other); err != nil {
				t.Fatalf("insert other-user record failed: %v", err)
			}

			recs, err := store.ListCommitments("user-1", "2025-09-10", "2025-10-05")
			if err != nil {
				t.Fatalf("list failed: %v", err)
			}

			want := []string{"2025-09-15", "2025-10-01", "2025-10-05"}
			if len(recs) != len(want) {
				t.Fatalf("got %d records, want %d", len(recs), len(want))
			}
			for i, day := range want {
				if recs[i].Day != day {
					t.Errorf("record %d day = %s, want %s", i, recs[i].Day, day)
				}
				if recs[i].UserID != "user-1" {
					t.Errorf("record %d leaked user %s", i, recs[i].UserID)
				}
			}
		})
	}
}

func TestGetCommitment_NotFound(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.GetCommitment("user-1", "app-1", "2025-10-05")
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestApplications_RoundTrip(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			app := models.Application{
				ID:        "app-1",
				UserID:    "user-1",
				Name:      "Spring Grant",
				Status:    models.AppStatusReporting,
				CreatedAt: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			}
			if err := store.AddApplication(app); err != nil {
				t.Fatalf("add failed: %v", err)
			}

			got, err := store.GetApplication("app-1")
			if err != nil {
				t.Fatalf("get failed: %v", err)
			}
			if got.Name != app.Name || got.Status != app.Status || !got.CreatedAt.Equal(app.CreatedAt) {
				t.Errorf("round trip mismatch: %+v", got)
			}

			archived := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
			got.Status = models.AppStatusClosed
			got.ArchivedAt = &archived
			if err := store.UpdateApplication(got); err != nil {
				t.Fatalf("update failed: %v", err)
			}

			updated, err := store.GetApplication("app-1")
			if err != nil {
				t.Fatalf("get after update failed: %v", err)
			}
			if updated.Status != models.AppStatusClosed || updated.ArchivedAt == nil {
				t.Errorf("update not persisted: %+v", updated)
			}
			if updated.Eligible() {
				t.Error("closed archived application still reports eligible")
			}

			if _, err := store.GetApplication("missing"); !errors.Is(err, ErrNotFound) {
				t.Errorf("missing app error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestSettings_RoundTrip(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			settings, err := store.GetSettings()
			if err != nil {
				t.Fatalf("defaults missing: %v", err)
			}
			if settings.CalendarWeeks != DefaultCalendarWeeks {
				t.Errorf("default weeks = %d, want %d", settings.CalendarWeeks, DefaultCalendarWeeks)
			}

			settings.UserID = "user-1"
			settings.DisplayName = "Alex"
			settings.Verified = true
			if err := store.SaveSettings(settings); err != nil {
				t.Fatalf("save failed: %v", err)
			}

			got, err := store.GetSettings()
			if err != nil {
				t.Fatalf("get failed: %v", err)
			}
			if got != settings {
				t.Errorf("round trip mismatch: %+v != %+v", got, settings)
			}
		})
	}
}
