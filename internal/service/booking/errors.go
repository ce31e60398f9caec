package booking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bookora/bookora_backend/internal/model"
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time format, expected 'H:MM AM/PM', 'H:MM' or a timestamp")
	ErrInvalidTimeRange  = errors.New("end time must be after start time")
	ErrStaffNotFound     = errors.New("staff not found")
	ErrServiceNotFound   = errors.New("service not found")
	ErrNotFound          = errors.New("appointment not found")
	ErrStaffUnavailable  = errors.New("staff is unavailable on that day")
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrAlreadyFinal      = errors.New("appointment is already in a terminal state")
)

// ValidationError reports every missing required field of a request, not
// just the first one encountered.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: missing " + strings.Join(e.Fields, ", ")
}

// ConflictError is returned when a requested window collides with an
// existing scheduled appointment. It carries the colliding record so the
// caller can render who holds the slot and when.
type ConflictError struct {
	StaffName string
	Existing  *model.Appointment
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already has an appointment from %s to %s",
		e.StaffName,
		e.Existing.StartTime.Format("15:04"),
		e.Existing.EndTime.Format("15:04"),
	)
}
