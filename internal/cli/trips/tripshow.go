package trips

import (
	"fmt"
	"time"

	"github.com/packlight/packlight-cli/internal/cli"
	"github.com/packlight/packlight-cli/internal/keyring"
	"github.com/packlight/packlight-cli/internal/views"
	"github.com/packlight/packlight-cli/internal/weather"
)

type TripShowCmd struct {
	ID      string `arg:"" help:"Trip id."`
	Weather bool   `short:"w" help:"Include a weather lookup and packing recommendation."`
	Query   string `short:"q" help:"Filter items by name or category."`
}

func (c *TripShowCmd) Run(ctx *cli.Context) error {
	trip, err := ctx.Repo.GetTrip(c.ID)
	if err != nil {
		return err
	}

	now := time.Now()
	progress := views.TripProgress(trip)

	fmt.Printf("%s - %s\n", trip.Destination, cli.FormatDisplayDate(trip.StartDate))
	if views.IsUpcoming(trip, now) {
		fmt.Println("Upcoming")
	}
	if countdown := views.TripCountdown(trip, now); countdown != nil {
		fmt.Println(cli.FormatCountdown(countdown))
	}
	fmt.Printf("%d of %d items packed (%.0f%%)\n", progress.Packed, progress.Total, progress.Percent)

	if c.Weather {
		showWeather(trip.Destination)
	}

	items, err := ctx.Repo.SearchItems(trip.ID, c.Query)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("\nNo items yet. Start adding items to your packing list!")
		return nil
	}

	fmt.Println()
	for _, item := range items {
		fmt.Println(cli.FormatItem(item))
		fmt.Printf("    id: %s\n", item.ID)
	}
	return nil
}

// showWeather is best-effort: a failed lookup renders a generic message and
// never fails the command.
func showWeather(destination string) {
	apiKey, err := keyring.GetAPIKey()
	if err != nil {
		fmt.Println("Could not load weather information (no API key configured)")
		return
	}

	report, err := weather.NewClient("", apiKey).Current(destination)
	if err != nil {
		fmt.Println("Could not load weather information")
		return
	}

	fmt.Printf("Weather: %.0f°C, %s, wind %.0f m/s, humidity %d%%\n",
		report.TempC, report.Description, report.WindSpeed, report.Humidity)

	rec := views.Recommend(report.TempC, report.ConditionCode, report.Humidity)
	fmt.Printf("What to pack: %s\n", rec.Advice)
	for _, clothing := range rec.Clothing {
		fmt.Printf("  - %s\n", clothing)
	}
}
