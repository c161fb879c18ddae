package http

import (
	"friday-assistant/internal/settings"
	"friday-assistant/pkg/log"
)

type handler struct {
	l     log.Logger
	store settings.Updater
}

// New creates a new HTTP handler for the settings domain.
func New(l log.Logger, store settings.Updater) *handler {
	return &handler{
		l:     l,
		store: store,
	}
}
