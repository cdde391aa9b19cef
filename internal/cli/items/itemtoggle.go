package items

import (
	"fmt"

	"github.com/packlight/packlight-cli/internal/cli"
)

type ItemToggleCmd struct {
	TripID string `arg:"" help:"Trip id."`
	ItemID string `arg:"" help:"Item id."`
}

func (c *ItemToggleCmd) Run(ctx *cli.Context) error {
	item, err := ctx.Repo.TogglePacked(c.TripID, c.ItemID)
	if err != nil {
		return err
	}

	if item.Packed {
		fmt.Printf("%s packed\n", item.Name)
	} else {
		fmt.Printf("%s unpacked\n", item.Name)
	}
	return nil
}
