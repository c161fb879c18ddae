package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.0-flash"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout bounds a single HTTP round trip when no client is supplied.
	DefaultTimeout = 30 * time.Second

	// RoleUser and RoleModel are the content roles understood by the API.
	RoleUser  = "user"
	RoleModel = "model"
)
