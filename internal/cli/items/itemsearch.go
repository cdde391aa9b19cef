package items

import (
	"fmt"

	"github.com/packlight/packlight-cli/internal/cli"
)

type ItemSearchCmd struct {
	TripID string `arg:"" help:"Trip id."`
	Query  string `arg:"" optional:"" help:"Substring matched against item name or category."`
}

func (c *ItemSearchCmd) Run(ctx *cli.Context) error {
	items, err := ctx.Repo.SearchItems(c.TripID, c.Query)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("No matching items")
		return nil
	}

	for _, item := range items {
		fmt.Println(cli.FormatItem(item))
		fmt.Printf("    id: %s\n", item.ID)
	}
	return nil
}
