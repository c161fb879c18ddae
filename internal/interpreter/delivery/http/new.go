package http

import (
	"friday-assistant/internal/interpreter"
	"friday-assistant/internal/settings"
	"friday-assistant/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       interpreter.UseCase
	settings settings.Provider

	// historyLimit caps the turns forwarded to the use case; 0 keeps all of them.
	historyLimit int
}

// New creates a new HTTP handler for the interpreter domain.
func New(l log.Logger, uc interpreter.UseCase, settings settings.Provider, historyLimit int) *handler {
	return &handler{
		l:            l,
		uc:           uc,
		settings:     settings,
		historyLimit: historyLimit,
	}
}
