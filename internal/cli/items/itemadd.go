package items

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/packlight/packlight-cli/internal/cli"
	"github.com/packlight/packlight-cli/internal/models"
	"github.com/packlight/packlight-cli/internal/repository"
)

type ItemAddCmd struct {
	TripID   string `arg:"" help:"Trip id."`
	Name     string `short:"n" help:"Item name. Prompted from the category taxonomy when omitted."`
	Category string `short:"c" help:"Item category. Prompted when omitted."`
	Reminder string `short:"r" help:"Optional reminder date (YYYY-MM-DD), must be before the trip start date."`
}

func (c *ItemAddCmd) Run(ctx *cli.Context) error {
	trip, err := ctx.Repo.GetTrip(c.TripID)
	if err != nil {
		return err
	}

	if c.Category == "" || c.Name == "" {
		if err := c.pickFromTaxonomy(); err != nil {
			return err
		}
	}

	if c.Reminder != "" {
		// Inline validation so the specific message reaches the user before
		// anything else runs.
		if err := repository.ValidateReminderDate(c.Reminder, trip.StartDate); err != nil {
			return err
		}
	}

	var reminder *string
	if c.Reminder != "" {
		reminder = &c.Reminder
	}

	item, err := ctx.Repo.AddItem(trip.ID, c.Category, c.Name, reminder)
	if err != nil {
		return err
	}

	fmt.Printf("Added %s (%s) to %s\n", item.Name, item.Category, trip.Destination)
	fmt.Printf("  id: %s\n", item.ID)
	return nil
}

// pickFromTaxonomy prompts for a category and suggested item using the fixed
// reference taxonomy. The selection is copied into plain strings; nothing
// links back to the taxonomy afterwards.
func (c *ItemAddCmd) pickFromTaxonomy() error {
	categoryOptions := make([]huh.Option[string], 0, len(models.Categories))
	for _, cat := range models.Categories {
		categoryOptions = append(categoryOptions, huh.NewOption(cat.Name, cat.Name))
	}

	if c.Category == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&c.Category),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	if c.Name == "" {
		category, ok := models.FindCategory(c.Category)
		if !ok {
			return fmt.Errorf("unknown category: %s", c.Category)
		}
		itemOptions := make([]huh.Option[string], 0, len(category.Items))
		for _, sub := range category.Items {
			itemOptions = append(itemOptions, huh.NewOption(sub.Name, sub.Name))
		}
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Item").
				Options(itemOptions...).
				Value(&c.Name),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	return nil
}
