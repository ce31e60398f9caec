package catalog

import "errors"

var (
	ErrNotFound        = errors.New("service not found")
	ErrNameTaken       = errors.New("a service with that name already exists")
	ErrInvalidDuration = errors.New("duration must be 15, 30 or 60 minutes")
	ErrMissingName     = errors.New("name is required")
)
