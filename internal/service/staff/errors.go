package staff

import "errors"

var (
	ErrNotFound        = errors.New("staff not found")
	ErrNameTaken       = errors.New("a staff member with that name already exists")
	ErrInvalidCapacity = errors.New("daily capacity must be at least 1")
	ErrInvalidStatus   = errors.New("status must be 'Available' or 'On Leave'")
	ErrMissingFields   = errors.New("name and serviceType are required")
)
