package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/effort/internal/models"
)

type AppAddCmd struct {
	Name   string `arg:"" help:"Application name."`
	Status string `help:"Initial status." enum:"draft,reporting,closed" default:"reporting"`
}

func (c *AppAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	userID, err := currentUserID(ctx.Store)
	if err != nil {
		return err
	}

	app := models.Application{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      c.Name,
		Status:    models.ApplicationStatus(c.Status),
		CreatedAt: time.Now().UTC(),
	}
	if err := ctx.Store.AddApplication(app); err != nil {
		return err
	}

	fmt.Printf("Added application %q (%s)\n", app.Name, app.ID)
	return nil
}

type AppListCmd struct {
	All bool `help:"Include archived applications."`
}

func (c *AppListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	userID, err := currentUserID(ctx.Store)
	if err != nil {
		return err
	}

	apps, err := ctx.Store.GetAllApplications(userID)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		fmt.Println("No applications yet. Add one with 'effort app add'.")
		return nil
	}

	for _, app := range apps {
		if app.ArchivedAt != nil && !c.All {
			continue
		}
		marker := " "
		if !app.Eligible() {
			marker = "-"
		}
		fmt.Printf("%s %-30s  %-10s  %s\n", marker, app.Name, app.Status, app.ID)
	}

	return nil
}

type AppStatusCmd struct {
	Application string `arg:"" help:"Application id or name prefix."`
	Status      string `arg:"" help:"New status." enum:"draft,reporting,closed"`
}

func (c *AppStatusCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	userID, err := currentUserID(ctx.Store)
	if err != nil {
		return err
	}

	app, err := resolveApplication(ctx.Store, userID, c.Application)
	if err != nil {
		return err
	}

	app.Status = models.ApplicationStatus(c.Status)
	if err := ctx.Store.UpdateApplication(app); err != nil {
		return err
	}

	fmt.Printf("Set %q to %s\n", app.Name, app.Status)
	return nil
}

type AppArchiveCmd struct {
	Application string `arg:"" help:"Application id or name prefix."`
}

func (c *AppArchiveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	userID, err := currentUserID(ctx.Store)
	if err != nil {
		return err
	}

	app, err := resolveApplication(ctx.Store, userID, c.Application)
	if err != nil {
		return err
	}
	if app.ArchivedAt != nil {
		return fmt.Errorf("application %q is already archived", app.Name)
	}

	now := time.Now().UTC()
	app.ArchivedAt = &now
	if err := ctx.Store.UpdateApplication(app); err != nil {
		return err
	}

	fmt.Printf("Archived %q\n", app.Name)
	return nil
}
