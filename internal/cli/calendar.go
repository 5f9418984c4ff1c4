package cli

import (
	"fmt"

	"github.com/julianstephens/effort/internal/calendar"
)

type CalendarCmd struct {
	Weeks int `help:"Number of weeks to display (default from settings)."`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	weeks := c.Weeks
	if weeks <= 0 {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return err
		}
		weeks = settings.CalendarWeeks
	}

	counts, today, err := ctx.Service.History(weeks * calendar.DaysInWeek)
	if err != nil {
		return err
	}

	grid, err := calendar.Weeks(counts, weeks, today)
	if err != nil {
		return err
	}

	fmt.Printf("Commitment calendar (day %s)\n\n", today)
	fmt.Println(calendar.RenderGrid(grid))
	fmt.Println(calendar.RenderLegend())
	return nil
}
