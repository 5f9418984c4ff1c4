package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/effort/internal/commitment"
)

type CommitCmd struct {
	Application string `arg:"" help:"Application id or name prefix."`
	State       string `arg:"" help:"Desired state: touched, potential_miss (or 'miss'), completed." default:"touched"`
}

func (c *CommitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	desired, err := parseDesiredState(c.State)
	if err != nil {
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

	res, err := ctx.Service.Record(app.ID, desired)
	if err != nil {
		// "Already recorded" is feedback, not a failure; keep it separate
		// from store errors so the exit code stays zero.
		if errors.Is(err, commitment.ErrIllegalTransition) {
			fmt.Printf("Nothing to do: %v\n", err)
			return nil
		}
		if errors.Is(err, commitment.ErrStoreUnavailable) {
			return fmt.Errorf("store unavailable, try again: %w", err)
		}
		return err
	}

	verb := "Recorded"
	if !res.Created {
		verb = "Upgraded to"
	}
	fmt.Printf("%s %s for %q on %s\n", verb, res.AppliedState, app.Name, res.Day)
	return nil
}
