package trips

import (
	"errors"
	"fmt"

	"github.com/packlight/packlight-cli/internal/cli"
	"github.com/packlight/packlight-cli/internal/models"
)

type TripDeleteCmd struct {
	ID string `arg:"" help:"Trip id."`
}

func (c *TripDeleteCmd) Run(ctx *cli.Context) error {
	err := ctx.Repo.DeleteTrip(c.ID)
	if errors.Is(err, models.ErrNotFound) {
		// Idempotent delete: the trip is already gone.
		fmt.Println("Trip not found (already deleted?)")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println("Trip deleted")
	return nil
}
