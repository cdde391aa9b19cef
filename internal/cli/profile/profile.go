package profile

import (
	"fmt"

	"github.com/packlight/packlight-cli/internal/cli"
)

type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Store.GetProfile()
	if err != nil {
		return err
	}
	if p.Name == "" {
		fmt.Println("No profile set up. Run 'packlight init' first.")
		return nil
	}

	fmt.Printf("Name:    %s\n", p.Name)
	fmt.Printf("Country: %s\n", p.Country)
	return nil
}

// LogoutCmd destroys the whole local state: profile, onboarding flag, and the
// entire trip collection, and cancels any pending reminders.
type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	if err := ctx.Repo.Reset(); err != nil {
		return err
	}
	ctx.Reminders.Close()

	fmt.Println("Logged out. All local data has been cleared.")
	return nil
}
