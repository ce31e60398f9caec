package model

import (
	"time"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Appointment
// ---------------------------------------------------------------------------

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
	StatusNoShow    AppointmentStatus = "No-Show"
	StatusWaiting   AppointmentStatus = "Waiting"
)

// CountsAgainstCapacity reports whether an appointment in this status
// consumes the assigned staff member's daily capacity. Terminal failure
// states (Cancelled, No-Show) free the slot.
func (s AppointmentStatus) CountsAgainstCapacity() bool {
	switch s {
	case StatusWaiting, StatusScheduled, StatusCompleted:
		return true
	}
	return false
}

// Valid reports whether s is one of the known appointment statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow, StatusWaiting:
		return true
	}
	return false
}

// Appointment is one booking request and its resolved state.
// Staff and service relationships are held by id; the display names are
// denormalized copies kept for presentation only.
type Appointment struct {
	ID           uuid.UUID         `json:"id"`
	OwnerID      uuid.UUID         `json:"owner_id"`
	CustomerName string            `json:"customer_name"`
	ServiceID    uuid.UUID         `json:"service_id"`
	ServiceName  string            `json:"service_name"`
	StaffID      *uuid.UUID        `json:"staff_id,omitempty"`
	StaffName    *string           `json:"staff_name,omitempty"`
	Day          time.Time         `json:"day"` // truncated to midnight; capacity bucket
	StartTime    time.Time         `json:"start_time"`
	EndTime      time.Time         `json:"end_time"`
	Status       AppointmentStatus `json:"status"`
	// QueuePosition is 0 unless the appointment is Waiting, in which case
	// it is a 1-based rank within its service's queue.
	QueuePosition int       `json:"queue_position"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ---------------------------------------------------------------------------
// Staff
// ---------------------------------------------------------------------------

type StaffStatus string

const (
	StaffAvailable StaffStatus = "Available"
	StaffOnLeave   StaffStatus = "On Leave"
)

// Staff is a service provider with a daily booking ceiling.
type Staff struct {
	ID            uuid.UUID   `json:"id"`
	OwnerID       uuid.UUID   `json:"owner_id"`
	Name          string      `json:"name"`
	ServiceType   string      `json:"service_type"`
	DailyCapacity int         `json:"daily_capacity"`
	Status        StaffStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// ServiceDurations lists the allowed service lengths in minutes.
var ServiceDurations = []int{15, 30, 60}

// Service is a bookable offering.
type Service struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

// ---------------------------------------------------------------------------
// User
// ---------------------------------------------------------------------------

// User is an administrator account. Every staff record, service and
// appointment is scoped to its owning user.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ---------------------------------------------------------------------------
// ActivityLog
// ---------------------------------------------------------------------------

// ActivityLog is one line of the owner-facing activity feed. Entries are
// written by the activity worker, never on the request path.
type ActivityLog struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
