package dayclock

import (
	"testing"
	"time"
)

var jst = time.FixedZone("UTC+9", 9*60*60)

func TestActivityDay_BoundaryStraddle(t *testing.T) {
	// 03:59:59 and 04:00:00 reference-local time must map to adjacent keys.
	before := time.Date(2025, 10, 6, 3, 59, 59, 0, jst)
	after := time.Date(2025, 10, 6, 4, 0, 0, 0, jst)

	if got := ActivityDay(before); got != "2025-10-05" {
		t.Errorf("03:59:59 mapped to %s, want 2025-10-05", got)
	}
	if got := ActivityDay(after); got != "2025-10-06" {
		t.Errorf("04:00:00 mapped to %s, want 2025-10-06", got)
	}
}

func TestActivityDay_SameWindowSameKey(t *testing.T) {
	// Every instant inside one 04:00-04:00 window yields the same key.
	instants := []time.Time{
		time.Date(2025, 10, 5, 4, 0, 0, 0, jst),
		time.Date(2025, 10, 5, 12, 30, 0, 0, jst),
		time.Date(2025, 10, 5, 20, 0, 0, 0, jst),
		time.Date(2025, 10, 6, 0, 15, 0, 0, jst),
		time.Date(2025, 10, 6, 3, 0, 0, 0, jst),
	}

	for _, instant := range instants {
		if got := ActivityDay(instant); got != "2025-10-05" {
			t.Errorf("ActivityDay(%s) = %s, want 2025-10-05", instant, got)
		}
	}
}

func TestActivityDay_IndependentOfCallerZone(t *testing.T) {
	// The same instant expressed in different zones must produce the same key.
	utc := time.Date(2025, 10, 5, 18, 0, 0, 0, time.UTC)
	ny := utc.In(time.FixedZone("UTC-5", -5*60*60))
	syd := utc.In(time.FixedZone("UTC+11", 11*60*60))

	want := ActivityDay(utc)
	if got := ActivityDay(ny); got != want {
		t.Errorf("UTC-5 view mapped to %s, UTC view mapped to %s", got, want)
	}
	if got := ActivityDay(syd); got != want {
		t.Errorf("UTC+11 view mapped to %s, UTC view mapped to %s", got, want)
	}
}

func TestActivityDay_YearBoundary(t *testing.T) {
	instant := time.Date(2026, 1, 1, 2, 0, 0, 0, jst)
	if got := ActivityDay(instant); got != "2025-12-31" {
		t.Errorf("Jan 1 02:00 reference-local mapped to %s, want 2025-12-31", got)
	}
}

func TestAddDays(t *testing.T) {
	if got := AddDays("2025-10-05", 1); got != "2025-10-06" {
		t.Errorf("AddDays(+1) = %s, want 2025-10-06", got)
	}
	if got := AddDays("2025-10-05", -41); got != "2025-08-25" {
		t.Errorf("AddDays(-41) = %s, want 2025-08-25", got)
	}
	if got := AddDays("2025-03-01", -1); got != "2025-02-28" {
		t.Errorf("AddDays(-1) across month = %s, want 2025-02-28", got)
	}
}

func TestWeekday(t *testing.T) {
	wd, err := Weekday("2025-10-05")
	if err != nil {
		t.Fatalf("Weekday failed: %v", err)
	}
	if wd != time.Sunday {
		t.Errorf("2025-10-05 weekday = %s, want Sunday", wd)
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse("2025/10/05"); err == nil {
		t.Error("expected error for slash-separated date")
	}
	if _, err := Parse("not-a-date"); err == nil {
		t.Error("expected error for garbage input")
	}
}
