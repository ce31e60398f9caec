package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bookora/bookora_backend/internal/model"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type AssignRequest struct {
	CustomerName string
	Service      string
	Staff        string // optional preferred staff name
	Day          *time.Time
	StartTime    string
	EndTime      string
}

type UpdateRequest struct {
	CustomerName *string
	Staff        *string
	StartTime    *string
	EndTime      *string
}

type OutcomeKind string

const (
	OutcomeAssigned OutcomeKind = "assigned"
	OutcomeQueued   OutcomeKind = "queued"
)

// Outcome is the result of a successful assignment decision. Conflicts and
// validation failures are reported as errors (ConflictError,
// ValidationError), not outcomes.
type Outcome struct {
	Kind          OutcomeKind        `json:"kind"`
	Appointment   *model.Appointment `json:"appointment"`
	StaffName     string             `json:"staff_name,omitempty"`
	QueuePosition int                `json:"queue_position,omitempty"`
}

// Promotion describes a queued appointment that was moved onto the
// schedule after a slot freed up.
type Promotion struct {
	Appointment *model.Appointment
	StaffName   string
}

// Recorder receives one human-readable line after every state-changing
// decision. Implementations must not block the caller; failures are theirs
// to swallow.
type Recorder interface {
	Record(ctx context.Context, ownerID uuid.UUID, message string)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

type Service interface {
	// Assign decides the outcome of a new appointment request: schedule it
	// against a specific staff member, reassign it to another eligible one,
	// or place it in the service's waiting queue.
	Assign(ctx context.Context, ownerID uuid.UUID, req AssignRequest) (*Outcome, error)

	// Load reports a staff member's current load vs. capacity for a day.
	Load(ctx context.Context, ownerID uuid.UUID, staffName string, day time.Time) (*LoadReport, error)

	List(ctx context.Context, ownerID uuid.UUID, f ListFilter) ([]model.Appointment, error)
	WaitingQueue(ctx context.Context, ownerID uuid.UUID) ([]model.Appointment, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*model.Appointment, error)

	Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateRequest) (*model.Appointment, error)

	// Transition moves an appointment to Completed, Cancelled or No-Show
	// and runs the queue manager: gap-closing renumbering when the
	// appointment held a queue position, promotion of the earliest waiting
	// appointment when the transition freed capacity.
	Transition(ctx context.Context, ownerID, id uuid.UUID, to model.AppointmentStatus) (*model.Appointment, *Promotion, error)

	// Delete removes the appointment and renumbers the queue it may have
	// occupied.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type bookingService struct {
	store  Store
	events Recorder
	now    func() time.Time
}

func New(store Store, events Recorder) Service {
	return &bookingService{store: store, events: events, now: time.Now}
}

// ---------------------------------------------------------------------------
// Assign
// ---------------------------------------------------------------------------

func (s *bookingService) Assign(ctx context.Context, ownerID uuid.UUID, req AssignRequest) (*Outcome, error) {
	if err := validateAssign(req); err != nil {
		return nil, err
	}

	day := s.now()
	if req.Day != nil {
		day = *req.Day
	}
	day = Midnight(day)

	start, end, err := ParseWindow(req.StartTime, req.EndTime, day)
	if err != nil {
		return nil, err
	}

	svc, err := s.store.ServiceByName(ctx, ownerID, strings.TrimSpace(req.Service))
	if err != nil {
		return nil, fmt.Errorf("find service: %w", err)
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	var out *Outcome
	err = s.store.WithTx(ctx, func(tx Tx) error {
		if req.Staff != "" {
			res, err := s.assignPreferred(ctx, tx, ownerID, svc, req, day, start, end)
			if err != nil || res != nil {
				out = res
				return err
			}
			// Preferred staff exists but is on leave or at capacity: fall
			// through to the staff-agnostic search.
		}

		res, err := s.assignFirstFit(ctx, tx, ownerID, svc, req, day, start, end)
		if err != nil {
			return err
		}
		if res == nil {
			res, err = s.enqueue(ctx, tx, ownerID, svc, req, day, start, end)
			if err != nil {
				return err
			}
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordAssignOutcome(ctx, ownerID, req.CustomerName, out)
	return out, nil
}

func validateAssign(req AssignRequest) error {
	var missing []string
	if strings.TrimSpace(req.CustomerName) == "" {
		missing = append(missing, "customerName")
	}
	if strings.TrimSpace(req.Service) == "" {
		missing = append(missing, "service")
	}
	if strings.TrimSpace(req.StartTime) == "" {
		missing = append(missing, "startTime")
	}
	if strings.TrimSpace(req.EndTime) == "" {
		missing = append(missing, "endTime")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// assignPreferred handles a request that names a staff member. A nil, nil
// return means the caller should continue with the staff-agnostic search.
func (s *bookingService) assignPreferred(ctx context.Context, tx Tx, ownerID uuid.UUID, svc *model.Service, req AssignRequest, day, start, end time.Time) (*Outcome, error) {
	st, err := tx.StaffByName(ctx, ownerID, strings.TrimSpace(req.Staff))
	if err != nil {
		return nil, fmt.Errorf("find staff: %w", err)
	}
	if st == nil {
		return nil, ErrStaffNotFound
	}

	if err := tx.LockStaff(ctx, ownerID, st.ID); err != nil {
		return nil, fmt.Errorf("lock staff: %w", err)
	}

	load, err := staffLoad(ctx, tx, st, day)
	if err != nil {
		return nil, err
	}
	if !load.Available {
		return nil, nil
	}

	existing, err := tx.Conflicting(ctx, ownerID, st.ID, start, end, nil)
	if err != nil {
		return nil, fmt.Errorf("check conflict: %w", err)
	}
	if existing != nil {
		// An occupied slot on an otherwise available preferred staff is a
		// hard rejection, never a silent reassignment.
		return nil, &ConflictError{StaffName: st.Name, Existing: existing}
	}

	return s.createScheduled(ctx, tx, ownerID, svc, st, req, day, start, end)
}

// assignFirstFit scans eligible staff in ascending name order and books the
// first one with capacity and a free window. Returns nil, nil when nobody
// fits.
func (s *bookingService) assignFirstFit(ctx context.Context, tx Tx, ownerID uuid.UUID, svc *model.Service, req AssignRequest, day, start, end time.Time) (*Outcome, error) {
	candidates, err := tx.EligibleStaff(ctx, ownerID, svc.Name)
	if err != nil {
		return nil, fmt.Errorf("list eligible staff: %w", err)
	}

	for i := range candidates {
		cand := &candidates[i]
		if err := tx.LockStaff(ctx, ownerID, cand.ID); err != nil {
			return nil, fmt.Errorf("lock staff: %w", err)
		}
		load, err := staffLoad(ctx, tx, cand, day)
		if err != nil {
			return nil, err
		}
		if !load.Available {
			continue
		}
		existing, err := tx.Conflicting(ctx, ownerID, cand.ID, start, end, nil)
		if err != nil {
			return nil, fmt.Errorf("check conflict: %w", err)
		}
		if existing != nil {
			continue
		}
		return s.createScheduled(ctx, tx, ownerID, svc, cand, req, day, start, end)
	}
	return nil, nil
}

func (s *bookingService) createScheduled(ctx context.Context, tx Tx, ownerID uuid.UUID, svc *model.Service, st *model.Staff, req AssignRequest, day, start, end time.Time) (*Outcome, error) {
	name := st.Name
	staffID := st.ID
	appt := &model.Appointment{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		CustomerName: strings.TrimSpace(req.CustomerName),
		ServiceID:    svc.ID,
		ServiceName:  svc.Name,
		StaffID:      &staffID,
		StaffName:    &name,
		Day:          day,
		StartTime:    start,
		EndTime:      end,
		Status:       model.StatusScheduled,
	}
	if err := tx.CreateAppointment(ctx, appt); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return &Outcome{Kind: OutcomeAssigned, Appointment: appt, StaffName: st.Name}, nil
}

func (s *bookingService) enqueue(ctx context.Context, tx Tx, ownerID uuid.UUID, svc *model.Service, req AssignRequest, day, start, end time.Time) (*Outcome, error) {
	if err := tx.LockService(ctx, ownerID, svc.ID); err != nil {
		return nil, fmt.Errorf("lock service: %w", err)
	}

	waiting, err := tx.CountWaiting(ctx, ownerID, svc.ID)
	if err != nil {
		return nil, fmt.Errorf("count waiting: %w", err)
	}
	position := waiting + 1

	appt := &model.Appointment{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		ServiceID:     svc.ID,
		ServiceName:   svc.Name,
		Day:           day,
		StartTime:     start,
		EndTime:       end,
		Status:        model.StatusWaiting,
		QueuePosition: position,
	}
	if err := tx.CreateAppointment(ctx, appt); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return &Outcome{Kind: OutcomeQueued, Appointment: appt, QueuePosition: position}, nil
}

func (s *bookingService) recordAssignOutcome(ctx context.Context, ownerID uuid.UUID, customer string, out *Outcome) {
	if s.events == nil || out == nil {
		return
	}
	switch out.Kind {
	case OutcomeAssigned:
		s.events.Record(ctx, ownerID, fmt.Sprintf("Appointment for %q assigned to %s", customer, out.StaffName))
	case OutcomeQueued:
		s.events.Record(ctx, ownerID, fmt.Sprintf("Appointment for %q added to queue (position %d)", customer, out.QueuePosition))
	}
}
