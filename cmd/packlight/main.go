package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/packlight/packlight-cli/internal/cli"
	"github.com/packlight/packlight-cli/internal/cli/items"
	"github.com/packlight/packlight-cli/internal/cli/profile"
	"github.com/packlight/packlight-cli/internal/cli/system"
	"github.com/packlight/packlight-cli/internal/cli/trips"
	"github.com/packlight/packlight-cli/internal/cli/weathercmd"
	"github.com/packlight/packlight-cli/internal/constants"
	errs "github.com/packlight/packlight-cli/internal/errors"
	"github.com/packlight/packlight-cli/internal/logger"
	"github.com/packlight/packlight-cli/internal/notifier"
	"github.com/packlight/packlight-cli/internal/reminder"
	"github.com/packlight/packlight-cli/internal/repository"
	"github.com/packlight/packlight-cli/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .db extension selects the SQLite backend, anything else the JSON backend." default:"~/.config/packlight/packlight.json"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init system.InitCmd `cmd:"" help:"Initialize storage and set up your profile."`
	Trip struct {
		New    trips.TripNewCmd    `cmd:"" help:"Create a new trip."`
		List   trips.TripListCmd   `cmd:"" help:"List all trips by start date." default:"1"`
		Show   trips.TripShowCmd   `cmd:"" help:"Show a trip with progress, countdown, and items."`
		Delete trips.TripDeleteCmd `cmd:"" help:"Delete a trip and all its items."`
	} `cmd:"" help:"Manage trips."`
	Item struct {
		Add    items.ItemAddCmd    `cmd:"" help:"Add a packing item to a trip."`
		Toggle items.ItemToggleCmd `cmd:"" help:"Toggle an item's packed status."`
		Delete items.ItemDeleteCmd `cmd:"" help:"Delete an item from a trip."`
		Search items.ItemSearchCmd `cmd:"" help:"Search a trip's items by name or category."`
	} `cmd:"" help:"Manage packing items."`
	Profile struct {
		Show profile.ShowCmd `cmd:"" help:"Show the stored profile." default:"1"`
	} `cmd:"" help:"Manage your profile."`
	Logout profile.LogoutCmd `cmd:"" help:"Clear all local data and reset onboarding."`
	Remind struct {
		Sync  cli.RemindSyncCmd  `cmd:"" help:"Recompute reminder schedules." default:"1"`
		Watch cli.RemindWatchCmd `cmd:"" help:"Keep reminders armed until interrupted."`
	} `cmd:"" help:"Manage packing reminders."`
	Weather weathercmd.WeatherCmd `cmd:"" help:"Look up weather and packing recommendations for a destination."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the weather API key in the OS keyring."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the weather API key from the OS keyring."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check keyring availability."`
	} `cmd:"" help:"Manage the weather API key."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Local-first travel packing assistant"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(configPath)}); err != nil {
		fmt.Fprintln(os.Stderr, errs.Formatf("failed to initialize logger: %v", err))
		os.Exit(1)
	}

	// A .db path selects the SQLite backend; everything else gets the JSON
	// document store.
	var store storage.Provider
	if strings.HasSuffix(configPath, ".db") {
		store = storage.NewSQLiteStore(configPath)
	} else {
		store = storage.NewJSONStore(configPath)
	}

	appCtx := &cli.Context{Store: store}

	// The init command handles its own storage lifecycle.
	selected := ""
	if ctx.Selected() != nil {
		selected = ctx.Selected().Name
	}
	if selected != "init" {
		if err := store.Load(); err != nil {
			errs.Fatal(err)
		}
		repo, err := repository.New(store)
		if err != nil {
			errs.Fatal(err)
		}
		appCtx.Repo = repo
		appCtx.Reminders = reminder.New(reminder.NewTimerExternal(notifier.New()))
		// Every successful mutation reissues the reminder schedules.
		repo.Subscribe(appCtx.Reminders.Refresh)
	}

	errs.Fatal(ctx.Run(appCtx))
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
