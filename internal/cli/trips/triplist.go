package trips

import (
	"fmt"
	"time"

	"github.com/packlight/packlight-cli/internal/cli"
)

type TripListCmd struct{}

func (c *TripListCmd) Run(ctx *cli.Context) error {
	trips := ctx.Repo.ListTrips()
	if len(trips) == 0 {
		fmt.Println("No trips planned yet. Add your first trip to start packing!")
		return nil
	}

	now := time.Now()
	for _, trip := range trips {
		fmt.Println(cli.FormatTrip(trip, now))
		fmt.Printf("  id: %s\n", trip.ID)
	}
	return nil
}
