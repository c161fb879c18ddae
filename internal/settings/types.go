package settings

import (
	"time"

	"friday-assistant/internal/semparser"
)

// Update is a partial change; nil fields are left as they are.
type Update struct {
	Credential *string
	Enabled    *bool
}

// Snapshot is an immutable view of the settings with its update time.
type Snapshot struct {
	Settings  semparser.Settings
	UpdatedAt time.Time
}
