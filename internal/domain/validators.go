package domain

import (
	"fmt"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks if an email address is valid.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// Validate checks the required role creation fields.
func (c RoleCreate) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.Color == "" {
		return fmt.Errorf("color is required")
	}
	if c.Order == nil {
		return fmt.Errorf("order is required")
	}
	return nil
}

// Validate checks the required player creation fields. Status is free-form:
// the roster UI uses its own set of labels and the API does not restrict them.
func (c PlayerCreate) Validate() error {
	if c.MinecraftUsername == "" {
		return fmt.Errorf("minecraft_username is required")
	}
	if c.RoleID == "" {
		return fmt.Errorf("role_id is required")
	}
	if c.Status == "" {
		return fmt.Errorf("status is required")
	}
	return nil
}

// Validate checks the required settings fields.
func (u SettingsUpdate) Validate() error {
	if u.ContactLink == nil {
		return fmt.Errorf("contact_link is required")
	}
	return nil
}
