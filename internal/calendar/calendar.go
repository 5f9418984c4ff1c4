// Package calendar turns per-day commitment counts into a display-ready grid.
package calendar

import (
	"fmt"
	"time"

	"github.com/julianstephens/effort/internal/dayclock"
)

// Class tags a cell for rendering. A day with no record is not the same fact
// as a day with a zero-count record, and today is never rendered like a
// historical day, so the tags stay separate.
type Class string

const (
	// ClassNoData marks a past day with no record at all.
	ClassNoData Class = "no_data"
	// ClassPendingToday marks today while it has no record yet.
	ClassPendingToday Class = "pending_today"
	// ClassCommittedToday marks today once it has a positive count.
	ClassCommittedToday Class = "committed_today"
	// ClassCommitted marks a past day with a positive count.
	ClassCommitted Class = "committed"
	// ClassVisited marks a day with a record but a zero count.
	ClassVisited Class = "visited"
	// ClassPadding marks a placeholder cell after today that squares off the
	// final week. Padding cells have an empty day key.
	ClassPadding Class = "padding"
)

type Cell struct {
	Day   string
	Count int
	Class Class
}

// DaysInWeek is the grid width; columns run Monday through Sunday.
const DaysInWeek = 7

// Classify tags a single day given its count (ok=false when no record exists).
func Classify(day string, count int, ok bool, today string) Class {
	isToday := day == today
	switch {
	case !ok && isToday:
		return ClassPendingToday
	case !ok:
		return ClassNoData
	case count > 0 && isToday:
		return ClassCommittedToday
	case count > 0:
		return ClassCommitted
	default:
		return ClassVisited
	}
}

// Build returns exactly windowDays cells ending at today, oldest first.
func Build(counts map[string]int, windowDays int, today string) ([]Cell, error) {
	if windowDays < 1 {
		return nil, fmt.Errorf("window must be at least one day, got %d", windowDays)
	}
	if _, err := dayclock.Parse(today); err != nil {
		return nil, err
	}

	cells := make([]Cell, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		day := dayclock.AddDays(today, -i)
		count, ok := counts[day]
		cells = append(cells, Cell{
			Day:   day,
			Count: count,
			Class: Classify(day, count, ok, today),
		})
	}

	return cells, nil
}

// Weeks returns a rectangular weeks×7 grid of cells, oldest week first, each
// row running Monday through Sunday. The grid ends on the Sunday of today's
// week, so the slots after today in the final row are padding cells and every
// column is a fixed weekday no matter where today falls.
func Weeks(counts map[string]int, weeks int, today string) ([][]Cell, error) {
	if weeks < 1 {
		return nil, fmt.Errorf("grid must be at least one week, got %d", weeks)
	}

	wd, err := dayclock.Weekday(today)
	if err != nil {
		return nil, err
	}

	// Days from today through the Sunday ending its week (0 when today is
	// Sunday). time.Weekday has Sunday == 0.
	padding := (DaysInWeek - int(wd)) % DaysInWeek
	end := dayclock.AddDays(today, padding)
	total := weeks * DaysInWeek

	grid := make([][]Cell, 0, weeks)
	row := make([]Cell, 0, DaysInWeek)
	for i := total - 1; i >= 0; i-- {
		day := dayclock.AddDays(end, -i)
		cell := Cell{Day: day}
		if day > today {
			cell = Cell{Class: ClassPadding}
		} else {
			count, ok := counts[day]
			cell.Count = count
			cell.Class = Classify(day, count, ok, today)
		}
		row = append(row, cell)
		if len(row) == DaysInWeek {
			grid = append(grid, row)
			row = make([]Cell, 0, DaysInWeek)
		}
	}

	return grid, nil
}

// WeekdayLabels returns the column headers, Monday first.
func WeekdayLabels() []string {
	labels := make([]string, 0, DaysInWeek)
	for i := 0; i < DaysInWeek; i++ {
		wd := time.Weekday((int(time.Monday) + i) % DaysInWeek)
		labels = append(labels, wd.String()[:3])
	}
	return labels
}
