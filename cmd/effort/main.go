package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/effort/internal/cli"
	"github.com/julianstephens/effort/internal/commitment"
	"github.com/julianstephens/effort/internal/identity"
	"github.com/julianstephens/effort/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/effort/effort.db"`

	Init     cli.InitCmd     `cmd:"" help:"Initialize effort storage and the local profile."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Commit   cli.CommitCmd   `cmd:"" help:"Record today's commitment for an application."`
	Today    cli.TodayCmd    `cmd:"" help:"Show the current activity day and today's reports."`
	Calendar cli.CalendarCmd `cmd:"" help:"Render the commitment calendar."`
	App      struct {
		Add     cli.AppAddCmd     `cmd:"" help:"Add an application."`
		List    cli.AppListCmd    `cmd:"" help:"List applications."`
		Status  cli.AppStatusCmd  `cmd:"" help:"Change an application's status."`
		Archive cli.AppArchiveCmd `cmd:"" help:"Archive an application."`
	} `cmd:"" help:"Manage applications."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("effort"),
		kong.Description("Daily commitment tracker with a shifted day boundary"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:   store,
		Service: commitment.New(store, identity.FromSettings{Store: store}),
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
