package booking

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/bookora/bookora_backend/internal/model"
)

// memStore is an in-memory Store used by the engine and queue tests. It
// runs single-threaded so the Tx lock methods are no-ops.
type memStore struct {
	staff        []model.Staff
	services     []model.Service
	appointments []model.Appointment
}

func (m *memStore) WithTx(_ context.Context, fn func(tx Tx) error) error {
	return fn(m)
}

func (m *memStore) LockStaff(context.Context, uuid.UUID, uuid.UUID) error   { return nil }
func (m *memStore) LockService(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func (m *memStore) StaffByName(_ context.Context, ownerID uuid.UUID, name string) (*model.Staff, error) {
	for i := range m.staff {
		if m.staff[i].OwnerID == ownerID && m.staff[i].Name == name {
			st := m.staff[i]
			return &st, nil
		}
	}
	return nil, nil
}

func (m *memStore) StaffByID(_ context.Context, ownerID, staffID uuid.UUID) (*model.Staff, error) {
	for i := range m.staff {
		if m.staff[i].OwnerID == ownerID && m.staff[i].ID == staffID {
			st := m.staff[i]
			return &st, nil
		}
	}
	return nil, nil
}

func (m *memStore) EligibleStaff(_ context.Context, ownerID uuid.UUID, serviceType string) ([]model.Staff, error) {
	var out []model.Staff
	for _, st := range m.staff {
		if st.OwnerID == ownerID && st.ServiceType == serviceType && st.Status == model.StaffAvailable {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memStore) ServiceByName(_ context.Context, ownerID uuid.UUID, name string) (*model.Service, error) {
	for i := range m.services {
		if m.services[i].OwnerID == ownerID && m.services[i].Name == name {
			svc := m.services[i]
			return &svc, nil
		}
	}
	return nil, nil
}

func (m *memStore) DayLoad(_ context.Context, ownerID, staffID uuid.UUID, day time.Time) (int, error) {
	count := 0
	for _, a := range m.appointments {
		if a.OwnerID == ownerID && a.StaffID != nil && *a.StaffID == staffID &&
			a.Day.Equal(day) && a.Status.CountsAgainstCapacity() {
			count++
		}
	}
	return count, nil
}

func (m *memStore) Conflicting(_ context.Context, ownerID, staffID uuid.UUID, start, end time.Time, exclude *uuid.UUID) (*model.Appointment, error) {
	for i := range m.appointments {
		a := m.appointments[i]
		if a.OwnerID != ownerID || a.StaffID == nil || *a.StaffID != staffID {
			continue
		}
		if a.Status != model.StatusScheduled {
			continue
		}
		if exclude != nil && a.ID == *exclude {
			continue
		}
		if Overlaps(a.StartTime, a.EndTime, start, end) {
			return &a, nil
		}
	}
	return nil, nil
}

func (m *memStore) CreateAppointment(_ context.Context, a *model.Appointment) error {
	m.appointments = append(m.appointments, *a)
	return nil
}

func (m *memStore) UpdateAppointment(_ context.Context, a *model.Appointment) error {
	for i := range m.appointments {
		if m.appointments[i].ID == a.ID {
			m.appointments[i] = *a
			return nil
		}
	}
	return ErrNotFound
}

func (m *memStore) AppointmentByID(_ context.Context, ownerID, id uuid.UUID) (*model.Appointment, error) {
	for i := range m.appointments {
		if m.appointments[i].OwnerID == ownerID && m.appointments[i].ID == id {
			a := m.appointments[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (m *memStore) DeleteAppointment(_ context.Context, ownerID, id uuid.UUID) error {
	for i := range m.appointments {
		if m.appointments[i].OwnerID == ownerID && m.appointments[i].ID == id {
			m.appointments = append(m.appointments[:i], m.appointments[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *memStore) ListAppointments(_ context.Context, ownerID uuid.UUID, f ListFilter) ([]model.Appointment, error) {
	var out []model.Appointment
	for _, a := range m.appointments {
		if a.OwnerID != ownerID {
			continue
		}
		if f.Day != nil && !a.Day.Equal(Midnight(*f.Day)) {
			continue
		}
		if f.Status != nil && a.Status != *f.Status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *memStore) CountWaiting(_ context.Context, ownerID, serviceID uuid.UUID) (int, error) {
	count := 0
	for _, a := range m.appointments {
		if a.OwnerID == ownerID && a.ServiceID == serviceID && a.Status == model.StatusWaiting {
			count++
		}
	}
	return count, nil
}

func (m *memStore) NextWaiting(_ context.Context, ownerID, serviceID uuid.UUID) (*model.Appointment, error) {
	var next *model.Appointment
	for i := range m.appointments {
		a := &m.appointments[i]
		if a.OwnerID != ownerID || a.ServiceID != serviceID || a.Status != model.StatusWaiting {
			continue
		}
		if next == nil || a.QueuePosition < next.QueuePosition {
			next = a
		}
	}
	if next == nil {
		return nil, nil
	}
	out := *next
	return &out, nil
}

func (m *memStore) CloseQueueGap(_ context.Context, ownerID, serviceID uuid.UUID, vacated int) error {
	for i := range m.appointments {
		a := &m.appointments[i]
		if a.OwnerID == ownerID && a.ServiceID == serviceID &&
			a.Status == model.StatusWaiting && a.QueuePosition > vacated {
			a.QueuePosition--
		}
	}
	return nil
}

func (m *memStore) ListWaiting(_ context.Context, ownerID uuid.UUID) ([]model.Appointment, error) {
	var out []model.Appointment
	for _, a := range m.appointments {
		if a.OwnerID == ownerID && a.Status == model.StatusWaiting {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ServiceName != out[j].ServiceName {
			return out[i].ServiceName < out[j].ServiceName
		}
		return out[i].QueuePosition < out[j].QueuePosition
	})
	return out, nil
}

// recorderSpy captures activity lines emitted by the engine.
type recorderSpy struct {
	messages []string
}

func (r *recorderSpy) Record(_ context.Context, _ uuid.UUID, message string) {
	r.messages = append(r.messages, message)
}
