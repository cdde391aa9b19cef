package models

import (
	"fmt"
	"strings"
)

// Profile holds the locally stored user identity set during onboarding.
// It is mutable only by a full logout/reset.
type Profile struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Country) == "" {
		return fmt.Errorf("%w: country cannot be empty", ErrInvalidInput)
	}
	return nil
}
