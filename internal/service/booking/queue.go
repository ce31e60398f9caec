package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bookora/bookora_backend/internal/model"
)

// ---------------------------------------------------------------------------
// Status transitions
// ---------------------------------------------------------------------------

func (s *bookingService) Transition(ctx context.Context, ownerID, id uuid.UUID, to model.AppointmentStatus) (*model.Appointment, *Promotion, error) {
	switch to {
	case model.StatusCompleted, model.StatusCancelled, model.StatusNoShow:
	default:
		return nil, nil, ErrInvalidStatus
	}

	var (
		appt     *model.Appointment
		promoted *Promotion
	)
	err := s.store.WithTx(ctx, func(tx Tx) error {
		cur, err := tx.AppointmentByID(ctx, ownerID, id)
		if err != nil {
			return fmt.Errorf("get appointment: %w", err)
		}
		if cur == nil {
			return ErrNotFound
		}
		if cur.Status == model.StatusCancelled || cur.Status == model.StatusNoShow {
			return ErrAlreadyFinal
		}

		freedCapacity := cur.Status.CountsAgainstCapacity() && !to.CountsAgainstCapacity()
		vacated := cur.QueuePosition
		freedStaffID := cur.StaffID

		cur.Status = to
		cur.QueuePosition = 0
		if err := tx.UpdateAppointment(ctx, cur); err != nil {
			return fmt.Errorf("update appointment: %w", err)
		}

		// A Waiting appointment leaving the queue opens a gap below it.
		if vacated > 0 {
			if err := tx.LockService(ctx, ownerID, cur.ServiceID); err != nil {
				return fmt.Errorf("lock service: %w", err)
			}
			if err := tx.CloseQueueGap(ctx, ownerID, cur.ServiceID, vacated); err != nil {
				return fmt.Errorf("renumber queue: %w", err)
			}
		}

		// Completion and capacity-freeing transitions both hand the slot to
		// the queue manager.
		if to == model.StatusCompleted || freedCapacity {
			promoted, err = s.promote(ctx, tx, ownerID, cur.ServiceID, freedStaffID)
			if err != nil {
				return err
			}
		}

		appt = cur
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if s.events != nil {
		s.events.Record(ctx, ownerID, fmt.Sprintf("Appointment for %q marked %s", appt.CustomerName, appt.Status))
		if promoted != nil {
			s.events.Record(ctx, ownerID, fmt.Sprintf("Appointment for %q promoted from queue to %s", promoted.Appointment.CustomerName, promoted.StaffName))
		}
	}
	return appt, promoted, nil
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func (s *bookingService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	var customer string
	err := s.store.WithTx(ctx, func(tx Tx) error {
		cur, err := tx.AppointmentByID(ctx, ownerID, id)
		if err != nil {
			return fmt.Errorf("get appointment: %w", err)
		}
		if cur == nil {
			return ErrNotFound
		}
		customer = cur.CustomerName

		if err := tx.DeleteAppointment(ctx, ownerID, id); err != nil {
			return fmt.Errorf("delete appointment: %w", err)
		}

		if cur.QueuePosition > 0 {
			if err := tx.LockService(ctx, ownerID, cur.ServiceID); err != nil {
				return fmt.Errorf("lock service: %w", err)
			}
			if err := tx.CloseQueueGap(ctx, ownerID, cur.ServiceID, cur.QueuePosition); err != nil {
				return fmt.Errorf("renumber queue: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.events != nil {
		s.events.Record(ctx, ownerID, fmt.Sprintf("Appointment for %q deleted", customer))
	}
	return nil
}

// ---------------------------------------------------------------------------
// Promotion
// ---------------------------------------------------------------------------

// promote moves the earliest Waiting appointment of the service onto the
// schedule. The staff member freed by the triggering transition is tried
// first when still eligible; otherwise the regular first-fit search runs.
// An empty queue, or a queue head nobody can take, is a no-op.
func (s *bookingService) promote(ctx context.Context, tx Tx, ownerID, serviceID uuid.UUID, freedStaffID *uuid.UUID) (*Promotion, error) {
	if err := tx.LockService(ctx, ownerID, serviceID); err != nil {
		return nil, fmt.Errorf("lock service: %w", err)
	}

	next, err := tx.NextWaiting(ctx, ownerID, serviceID)
	if err != nil {
		return nil, fmt.Errorf("peek queue: %w", err)
	}
	if next == nil {
		return nil, nil
	}

	var candidates []model.Staff
	if freedStaffID != nil {
		st, err := tx.StaffByID(ctx, ownerID, *freedStaffID)
		if err != nil {
			return nil, fmt.Errorf("find freed staff: %w", err)
		}
		if st != nil && st.ServiceType == next.ServiceName && st.Status == model.StaffAvailable {
			candidates = append(candidates, *st)
		}
	}
	eligible, err := tx.EligibleStaff(ctx, ownerID, next.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("list eligible staff: %w", err)
	}
	for _, st := range eligible {
		if freedStaffID != nil && st.ID == *freedStaffID {
			continue
		}
		candidates = append(candidates, st)
	}

	for i := range candidates {
		cand := &candidates[i]
		if err := tx.LockStaff(ctx, ownerID, cand.ID); err != nil {
			return nil, fmt.Errorf("lock staff: %w", err)
		}
		load, err := staffLoad(ctx, tx, cand, next.Day)
		if err != nil {
			return nil, err
		}
		if !load.Available {
			continue
		}
		existing, err := tx.Conflicting(ctx, ownerID, cand.ID, next.StartTime, next.EndTime, &next.ID)
		if err != nil {
			return nil, fmt.Errorf("check conflict: %w", err)
		}
		if existing != nil {
			continue
		}

		vacated := next.QueuePosition
		staffID := cand.ID
		name := cand.Name
		next.StaffID = &staffID
		next.StaffName = &name
		next.Status = model.StatusScheduled
		next.QueuePosition = 0
		if err := tx.UpdateAppointment(ctx, next); err != nil {
			return nil, fmt.Errorf("promote appointment: %w", err)
		}
		if err := tx.CloseQueueGap(ctx, ownerID, serviceID, vacated); err != nil {
			return nil, fmt.Errorf("renumber queue: %w", err)
		}
		return &Promotion{Appointment: next, StaffName: cand.Name}, nil
	}

	return nil, nil
}
