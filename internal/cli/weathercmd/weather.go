package weathercmd

import (
	"errors"
	"fmt"

	"github.com/packlight/packlight-cli/internal/cli"
	"github.com/packlight/packlight-cli/internal/keyring"
	"github.com/packlight/packlight-cli/internal/views"
	"github.com/packlight/packlight-cli/internal/weather"
)

type WeatherCmd struct {
	Destination string `arg:"" help:"Destination to look up."`
}

func (c *WeatherCmd) Run(ctx *cli.Context) error {
	apiKey, err := keyring.GetAPIKey()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no weather API key configured, run 'packlight keyring set <key>' first")
		}
		return err
	}

	report, err := weather.NewClient("", apiKey).Current(c.Destination)
	if err != nil {
		// Weather failures are non-fatal: print the generic message and
		// leave the exit code clean.
		fmt.Println("Could not load weather information")
		return nil
	}

	fmt.Printf("%s: %.0f°C, %s\n", c.Destination, report.TempC, report.Description)
	fmt.Printf("Wind %.0f m/s, humidity %d%%\n", report.WindSpeed, report.Humidity)

	rec := views.Recommend(report.TempC, report.ConditionCode, report.Humidity)
	fmt.Println("\nWhat to Pack")
	fmt.Println(rec.Advice)
	for _, clothing := range rec.Clothing {
		fmt.Printf("  - %s\n", clothing)
	}
	return nil
}
