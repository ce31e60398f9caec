package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/bookora/bookora_backend/internal/model"
)

func strp(s string) *string { return &s }

func TestUpdateWindowExcludesSelf(t *testing.T) {
	f := newFixture(t, model.Staff{Name: "Alice", DailyCapacity: 3})

	out := f.assign(t, AssignRequest{
		CustomerName: "Walter", Service: "Haircut", Staff: "Alice",
		StartTime: "9:00 AM", EndTime: "9:30 AM",
	})

	// Widening the appointment's own window must not trip over itself.
	updated, err := f.svc.Update(context.Background(), f.owner, out.Appointment.ID, UpdateRequest{
		StartTime: strp("9:00 AM"),
		EndTime:   strp("10:00 AM"),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !updated.EndTime.Equal(at(10, 0)) {
		t.Errorf("EndTime = %v, want %v", updated.EndTime, at(10, 0))
	}
}

func TestUpdateWindowConflictsWithOther(t *testing.T) {
	f := newFixture(t, model.Staff{Name: "Alice", DailyCapacity: 3})

	f.assign(t, AssignRequest{
		CustomerName: "Walter", Service: "Haircut", Staff: "Alice",
		StartTime: "9:00 AM", EndTime: "10:00 AM",
	})
	second := f.assign(t, AssignRequest{
		CustomerName: "Jesse", Service: "Haircut", Staff: "Alice",
		StartTime: "11:00 AM", EndTime: "11:30 AM",
	})

	_, err := f.svc.Update(context.Background(), f.owner, second.Appointment.ID, UpdateRequest{
		StartTime: strp("9:30 AM"),
		EndTime:   strp("10:30 AM"),
	})

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Update() error = %v, want ConflictError", err)
	}
	if conflict.Existing.CustomerName != "Walter" {
		t.Errorf("conflicting appointment = %q, want Walter", conflict.Existing.CustomerName)
	}
}

func TestUpdateAssignsStaffToWaiting(t *testing.T) {
	f := newFixture(t, model.Staff{Name: "Alice", DailyCapacity: 1})

	f.assign(t, AssignRequest{
		CustomerName: "Walter", Service: "Haircut", Staff: "Alice",
		StartTime: "9:00 AM", EndTime: "9:30 AM",
	})
	queued := f.assign(t, AssignRequest{
		CustomerName: "Jesse", Service: "Haircut",
		StartTime: "10:00 AM", EndTime: "10:30 AM",
	})
	f.assign(t, AssignRequest{
		CustomerName: "Skyler", Service: "Haircut",
		StartTime: "11:00 AM", EndTime: "11:30 AM",
	})

	bob := model.Staff{ID: uuid.New(), OwnerID: f.owner, Name: "Bob", ServiceType: "Haircut", DailyCapacity: 2, Status: model.StaffAvailable}
	f.store.staff = append(f.store.staff, bob)

	updated, err := f.svc.Update(context.Background(), f.owner, queued.Appointment.ID, UpdateRequest{
		Staff: strp("Bob"),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Status != model.StatusScheduled || updated.QueuePosition != 0 {
		t.Errorf("updated = %+v, want Scheduled with no queue position", updated)
	}
	if updated.StaffName == nil || *updated.StaffName != "Bob" {
		t.Errorf("StaffName = %v, want Bob", updated.StaffName)
	}

	// Skyler moves up after Jesse leaves the queue.
	assertQueue(t, f.waiting(t), "Skyler")
}

func TestUpdateStaffChecksCapacity(t *testing.T) {
	f := newFixture(t,
		model.Staff{Name: "Alice", DailyCapacity: 3},
		model.Staff{Name: "Bob", DailyCapacity: 1},
	)

	f.assign(t, AssignRequest{
		CustomerName: "Walter", Service: "Haircut", Staff: "Bob",
		StartTime: "9:00 AM", EndTime: "9:30 AM",
	})
	second := f.assign(t, AssignRequest{
		CustomerName: "Jesse", Service: "Haircut", Staff: "Alice",
		StartTime: "10:00 AM", EndTime: "10:30 AM",
	})

	_, err := f.svc.Update(context.Background(), f.owner, second.Appointment.ID, UpdateRequest{
		Staff: strp("Bob"),
	})
	if !errors.Is(err, ErrStaffUnavailable) {
		t.Errorf("Update() error = %v, want ErrStaffUnavailable", err)
	}

	_, err = f.svc.Update(context.Background(), f.owner, second.Appointment.ID, UpdateRequest{
		Staff: strp("Gus"),
	})
	if !errors.Is(err, ErrStaffNotFound) {
		t.Errorf("Update() error = %v, want ErrStaffNotFound", err)
	}
}

func TestUpdateCustomerName(t *testing.T) {
	f := newFixture(t, model.Staff{Name: "Alice", DailyCapacity: 3})

	out := f.assign(t, AssignRequest{
		CustomerName: "Walter", Service: "Haircut", Staff: "Alice",
		StartTime: "9:00 AM", EndTime: "9:30 AM",
	})

	updated, err := f.svc.Update(context.Background(), f.owner, out.Appointment.ID, UpdateRequest{
		CustomerName: strp("Walter White"),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.CustomerName != "Walter White" {
		t.Errorf("CustomerName = %q, want Walter White", updated.CustomerName)
	}

	_, err = f.svc.Update(context.Background(), f.owner, out.Appointment.ID, UpdateRequest{
		CustomerName: strp("   "),
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("Update() error = %v, want ValidationError", err)
	}
}
