package settings

import "friday-assistant/internal/semparser"

// Provider hands out the current parser settings snapshot.
type Provider interface {
	Current() semparser.Settings
}

// Updater applies partial updates to the settings.
type Updater interface {
	Provider
	Update(u Update) Snapshot
	Snapshot() Snapshot
}
