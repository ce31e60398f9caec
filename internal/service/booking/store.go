package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bookora/bookora_backend/internal/model"
)

// ListFilter narrows appointment listings. Zero values mean "no filter".
type ListFilter struct {
	Day    *time.Time
	Status *model.AppointmentStatus
}

// Queries is the data-access surface the engine needs. It is implemented
// by the pgx store for both pooled and in-transaction access, and by an
// in-memory fake in tests.
type Queries interface {
	StaffByName(ctx context.Context, ownerID uuid.UUID, name string) (*model.Staff, error)
	StaffByID(ctx context.Context, ownerID, staffID uuid.UUID) (*model.Staff, error)
	// EligibleStaff returns Available staff whose service type matches,
	// ordered ascending by name so first-fit assignment is deterministic.
	EligibleStaff(ctx context.Context, ownerID uuid.UUID, serviceType string) ([]model.Staff, error)
	ServiceByName(ctx context.Context, ownerID uuid.UUID, name string) (*model.Service, error)

	// DayLoad counts the staff member's appointments on the given calendar
	// day whose status consumes capacity (Waiting, Scheduled, Completed).
	DayLoad(ctx context.Context, ownerID, staffID uuid.UUID, day time.Time) (int, error)

	// Conflicting returns the first Scheduled appointment of the staff
	// member whose window overlaps [start, end), or nil. exclude, when
	// non-nil, omits that appointment id from consideration.
	Conflicting(ctx context.Context, ownerID, staffID uuid.UUID, start, end time.Time, exclude *uuid.UUID) (*model.Appointment, error)

	CreateAppointment(ctx context.Context, a *model.Appointment) error
	UpdateAppointment(ctx context.Context, a *model.Appointment) error
	AppointmentByID(ctx context.Context, ownerID, id uuid.UUID) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, ownerID, id uuid.UUID) error
	ListAppointments(ctx context.Context, ownerID uuid.UUID, f ListFilter) ([]model.Appointment, error)

	// CountWaiting returns the number of Waiting appointments for the
	// service; the next queue position is this count plus one.
	CountWaiting(ctx context.Context, ownerID, serviceID uuid.UUID) (int, error)
	// NextWaiting returns the Waiting appointment with the lowest queue
	// position for the service, or nil when the queue is empty.
	NextWaiting(ctx context.Context, ownerID, serviceID uuid.UUID) (*model.Appointment, error)
	// CloseQueueGap decrements the queue position of every Waiting
	// appointment for the service whose position is strictly greater than
	// vacated.
	CloseQueueGap(ctx context.Context, ownerID, serviceID uuid.UUID, vacated int) error
	ListWaiting(ctx context.Context, ownerID uuid.UUID) ([]model.Appointment, error)
}

// Tx is the transactional view of the store. The lock methods serialize
// concurrent deciders: LockStaff before any capacity/conflict read that a
// write depends on, LockService before any count-then-insert or
// renumbering of a service's queue. Locks are held until the transaction
// ends.
type Tx interface {
	Queries
	LockStaff(ctx context.Context, ownerID, staffID uuid.UUID) error
	LockService(ctx context.Context, ownerID, serviceID uuid.UUID) error
}

// Store is the engine's persistence collaborator.
type Store interface {
	Queries
	// WithTx runs fn inside one atomic unit; the decision and its write
	// either both land or neither does.
	WithTx(ctx context.Context, fn func(tx Tx) error) error
}
