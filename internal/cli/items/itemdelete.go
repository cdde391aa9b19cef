package items

import (
	"errors"
	"fmt"

	"github.com/packlight/packlight-cli/internal/cli"
	"github.com/packlight/packlight-cli/internal/models"
)

type ItemDeleteCmd struct {
	TripID string `arg:"" help:"Trip id."`
	ItemID string `arg:"" help:"Item id."`
}

func (c *ItemDeleteCmd) Run(ctx *cli.Context) error {
	err := ctx.Repo.DeleteItem(c.TripID, c.ItemID)
	if errors.Is(err, models.ErrNotFound) {
		// Idempotent delete: the item is already gone.
		fmt.Println("Item not found (already deleted?)")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println("Item deleted")
	return nil
}
