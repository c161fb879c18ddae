package http

import "errors"

var errEmptyUpdate = errors.New("at least one of api_key or enabled is required")
