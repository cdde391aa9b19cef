package trips

import (
	"fmt"

	"github.com/packlight/packlight-cli/internal/cli"
	"github.com/packlight/packlight-cli/internal/utils"
)

type TripNewCmd struct {
	Destination string `arg:"" help:"Trip destination."`
	StartDate   string `short:"d" help:"Trip start date (YYYY-MM-DD)." required:""`
}

func (c *TripNewCmd) Validate() error {
	if _, err := utils.ParseDate(c.StartDate); err != nil {
		return err
	}
	return nil
}

func (c *TripNewCmd) Run(ctx *cli.Context) error {
	trip, err := ctx.Repo.CreateTrip(c.Destination, c.StartDate)
	if err != nil {
		return err
	}

	fmt.Printf("Created trip to %s starting %s\n", trip.Destination, cli.FormatDisplayDate(trip.StartDate))
	fmt.Printf("  id: %s\n", trip.ID)
	return nil
}
