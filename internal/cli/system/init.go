package system

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/packlight/packlight-cli/internal/cli"
	"github.com/packlight/packlight-cli/internal/models"
)

type InitCmd struct {
	Force   bool   `help:"Force reset by deleting existing storage before initialization."`
	Name    string `help:"Display name. Prompted when omitted."`
	Country string `help:"Home country. Prompted when omitted."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		path := ctx.Store.GetConfigPath()
		if _, err := os.Stat(path); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			fmt.Printf("Deleted existing storage at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	profile, err := c.collectProfile()
	if err != nil {
		return err
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.SaveProfile(profile); err != nil {
		return err
	}
	if err := ctx.Store.SetOnboardingComplete(true); err != nil {
		return err
	}

	fmt.Printf("Initialized packlight storage at: %s\n", ctx.Store.GetConfigPath())
	fmt.Printf("Hello, %s! Plan your next adventure with 'packlight trip new'.\n", profile.Name)
	return nil
}

// collectProfile fills any missing onboarding fields interactively.
func (c *InitCmd) collectProfile() (models.Profile, error) {
	name := strings.TrimSpace(c.Name)
	country := strings.TrimSpace(c.Country)

	var fields []huh.Field
	if name == "" {
		fields = append(fields, huh.NewInput().
			Title("What's your name?").
			Value(&name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("name cannot be empty")
				}
				return nil
			}))
	}
	if country == "" {
		options := make([]huh.Option[string], 0, len(models.Countries))
		for _, c := range models.Countries {
			options = append(options, huh.NewOption(c, c))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Where are you from?").
			Options(options...).
			Value(&country))
	}

	if len(fields) > 0 {
		if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
			return models.Profile{}, err
		}
	}

	return models.Profile{Name: strings.TrimSpace(name), Country: country}, nil
}
