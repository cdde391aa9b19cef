package system

import (
	"errors"
	"fmt"

	"github.com/packlight/packlight-cli/internal/cli"
	"github.com/packlight/packlight-cli/internal/keyring"
)

// KeyringSetCmd stores the weather API key in the OS keyring
type KeyringSetCmd struct {
	APIKey string `arg:"" help:"Weather API key to store in the OS keyring."`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	if err := keyring.SetAPIKey(cmd.APIKey); err != nil {
		return fmt.Errorf("failed to store API key in keyring: %w", err)
	}
	fmt.Println("✓ Weather API key stored in OS keyring")
	return nil
}

// KeyringDeleteCmd removes the weather API key from the OS keyring
type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	err := keyring.DeleteAPIKey()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API key found in keyring")
		}
		return err
	}
	fmt.Println("✓ Weather API key deleted from OS keyring")
	return nil
}

// KeyringStatusCmd checks the availability of the OS keyring
type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		fmt.Println("❌ OS keyring is not available on this system")
		return errors.New("keyring unavailable")
	}

	fmt.Println("✓ OS keyring is available")
	if _, err := keyring.GetAPIKey(); err == nil {
		fmt.Println("✓ Weather API key is configured")
	} else {
		fmt.Println("ℹ No weather API key stored")
	}
	return nil
}
