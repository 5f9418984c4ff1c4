package cli

import (
	"fmt"

	"github.com/julianstephens/effort/internal/dayclock"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	userID, err := currentUserID(ctx.Store)
	if err != nil {
		return err
	}

	today := dayclock.Today()
	fmt.Printf("Activity day: %s\n\n", today)

	apps, err := ctx.Store.GetAllApplications(userID)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		fmt.Println("No applications yet. Add one with 'effort app add'.")
		return nil
	}

	for _, app := range apps {
		if !app.Eligible() {
			continue
		}
		state, ok, err := ctx.Service.TodayState(app.ID)
		if err != nil {
			return err
		}
		status := "not reported"
		if ok {
			status = string(state)
		}
		fmt.Printf("  %-30s  %s\n", app.Name, status)
	}

	return nil
}
