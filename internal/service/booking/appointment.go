package booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/bookora/bookora_backend/internal/model"
)

func (s *bookingService) List(ctx context.Context, ownerID uuid.UUID, f ListFilter) ([]model.Appointment, error) {
	appts, err := s.store.ListAppointments(ctx, ownerID, f)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *bookingService) WaitingQueue(ctx context.Context, ownerID uuid.UUID) ([]model.Appointment, error) {
	appts, err := s.store.ListWaiting(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list waiting queue: %w", err)
	}
	return appts, nil
}

func (s *bookingService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*model.Appointment, error) {
	appt, err := s.store.AppointmentByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	if appt == nil {
		return nil, ErrNotFound
	}
	return appt, nil
}

// Update edits the customer name, the assigned staff and/or the time
// window. Window and staff changes are re-validated against capacity and
// conflicts, with the appointment itself excluded from the conflict scan.
func (s *bookingService) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateRequest) (*model.Appointment, error) {
	var updated *model.Appointment
	err := s.store.WithTx(ctx, func(tx Tx) error {
		cur, err := tx.AppointmentByID(ctx, ownerID, id)
		if err != nil {
			return fmt.Errorf("get appointment: %w", err)
		}
		if cur == nil {
			return ErrNotFound
		}

		if req.CustomerName != nil {
			name := strings.TrimSpace(*req.CustomerName)
			if name == "" {
				return &ValidationError{Fields: []string{"customerName"}}
			}
			cur.CustomerName = name
		}

		start, end := cur.StartTime, cur.EndTime
		if req.StartTime != nil || req.EndTime != nil {
			startRaw := cur.StartTime.Format("15:04")
			endRaw := cur.EndTime.Format("15:04")
			if req.StartTime != nil {
				startRaw = *req.StartTime
			}
			if req.EndTime != nil {
				endRaw = *req.EndTime
			}
			start, end, err = ParseWindow(startRaw, endRaw, cur.Day)
			if err != nil {
				return err
			}
		}

		target := cur.StaffID
		targetName := cur.StaffName
		if req.Staff != nil {
			st, err := tx.StaffByName(ctx, ownerID, strings.TrimSpace(*req.Staff))
			if err != nil {
				return fmt.Errorf("find staff: %w", err)
			}
			if st == nil {
				return ErrStaffNotFound
			}
			staffID := st.ID
			name := st.Name
			target = &staffID
			targetName = &name
		}

		windowChanged := !start.Equal(cur.StartTime) || !end.Equal(cur.EndTime)
		staffChanged := req.Staff != nil && (cur.StaffID == nil || *target != *cur.StaffID)

		if target != nil && (windowChanged || staffChanged) {
			if err := tx.LockStaff(ctx, ownerID, *target); err != nil {
				return fmt.Errorf("lock staff: %w", err)
			}
			if staffChanged {
				st, err := tx.StaffByID(ctx, ownerID, *target)
				if err != nil {
					return fmt.Errorf("find staff: %w", err)
				}
				if st == nil {
					return ErrStaffNotFound
				}
				load, err := staffLoad(ctx, tx, st, cur.Day)
				if err != nil {
					return err
				}
				if !load.Available {
					return fmt.Errorf("%s: %w", st.Name, ErrStaffUnavailable)
				}
			}
			existing, err := tx.Conflicting(ctx, ownerID, *target, start, end, &cur.ID)
			if err != nil {
				return fmt.Errorf("check conflict: %w", err)
			}
			if existing != nil {
				return &ConflictError{StaffName: *targetName, Existing: existing}
			}
		}

		// Assigning staff to a waiting appointment pulls it out of the queue.
		if staffChanged && cur.Status == model.StatusWaiting {
			vacated := cur.QueuePosition
			cur.Status = model.StatusScheduled
			cur.QueuePosition = 0
			if vacated > 0 {
				if err := tx.LockService(ctx, ownerID, cur.ServiceID); err != nil {
					return fmt.Errorf("lock service: %w", err)
				}
				if err := tx.CloseQueueGap(ctx, ownerID, cur.ServiceID, vacated); err != nil {
					return fmt.Errorf("renumber queue: %w", err)
				}
			}
		}

		cur.StaffID = target
		cur.StaffName = targetName
		cur.StartTime = start
		cur.EndTime = end

		if err := tx.UpdateAppointment(ctx, cur); err != nil {
			return fmt.Errorf("update appointment: %w", err)
		}
		updated = cur
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Record(ctx, ownerID, fmt.Sprintf("Appointment for %q updated", updated.CustomerName))
	}
	return updated, nil
}
