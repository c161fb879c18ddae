package http

import (
	"friday-assistant/internal/settings"
	"friday-assistant/pkg/response"
)

// --- Request DTOs ---

type updateReq struct {
	APIKey  *string `json:"api_key" binding:"omitempty,max=512"`
	Enabled *bool   `json:"enabled"`
}

func (r updateReq) validate() error {
	if r.APIKey == nil && r.Enabled == nil {
		return errEmptyUpdate
	}
	return nil
}

func (r updateReq) toInput() settings.Update {
	return settings.Update{Credential: r.APIKey, Enabled: r.Enabled}
}

// --- Response DTOs ---

type settingsResp struct {
	APIKey    string            `json:"api_key"`
	HasAPIKey bool              `json:"has_api_key"`
	Enabled   bool              `json:"enabled"`
	Available bool              `json:"available"`
	UpdatedAt response.DateTime `json:"updated_at" swaggertype:"string"`
}

func newSettingsResp(snap settings.Snapshot) settingsResp {
	s := snap.Settings
	return settingsResp{
		APIKey:    settings.Mask(s.Credential),
		HasAPIKey: s.Credential != "",
		Enabled:   s.Enabled,
		Available: s.Available(),
		UpdatedAt: response.DateTime(snap.UpdatedAt),
	}
}
