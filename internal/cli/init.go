package cli

import (
	"fmt"

	"github.com/google/uuid"
)

type InitCmd struct {
	Name string `help:"Display name for the local profile." default:""`
}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if settings.UserID == "" {
		settings.UserID = uuid.NewString()
		settings.DisplayName = c.Name
		settings.Verified = true
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return err
		}
	}

	fmt.Printf("Initialized effort storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
