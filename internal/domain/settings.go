package domain

// SettingsID is the fixed primary key of the settings singleton row.
const SettingsID = "settings"

// Settings is a singleton document holding site-wide values.
type Settings struct {
	ID          string `json:"id"`
	ContactLink string `json:"contact_link"`
}

// DefaultSettings is returned when the singleton row is missing.
func DefaultSettings() *Settings {
	return &Settings{ID: SettingsID, ContactLink: ""}
}

// SettingsUpdate holds the writable settings fields.
type SettingsUpdate struct {
	ContactLink *string `json:"contact_link"`
}
