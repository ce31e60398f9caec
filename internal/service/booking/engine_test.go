package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bookora/bookora_backend/internal/model"
)

type fixture struct {
	owner   uuid.UUID
	store   *memStore
	events  *recorderSpy
	svc     Service
	haircut model.Service
}

func newFixture(t *testing.T, staff ...model.Staff) *fixture {
	t.Helper()
	owner := uuid.New()
	haircut := model.Service{ID: uuid.New(), OwnerID: owner, Name: "Haircut", DurationMinutes: 30}
	for i := range staff {
		staff[i].ID = uuid.New()
		staff[i].OwnerID = owner
		if staff[i].ServiceType == "" {
			staff[i].ServiceType = haircut.Name
		}
		if staff[i].Status == "" {
			staff[i].Status = model.StaffAvailable
		}
	}
	store := &memStore{staff: staff, services: []model.Service{haircut}}
	events := &recorderSpy{}
	svc := New(store, events)
	svc.(*bookingService).now = func() time.Time { return testDay }
	return &fixture{owner: owner, store: store, events: events, svc: svc, haircut: haircut}
}

func (f *fixture) assign(t *testing.T, req AssignRequest) *Outcome {
	t.Helper()
	out, err := f.svc.Assign(context.Background(), f.owner, req)
	if err != nil {
		t.Fatalf("Assign() error = %v", err)
	}
	return out
}

func TestAssignPreferredStaff(t *testing.T) {
	f := newFixture(t, model.Staff{Name: "Alice", DailyCapacity: 3})

	out := f.assign(t, AssignRequest{
		CustomerName: "Walter",
		Service:      "Haircut",
		Staff:        "Alice",
		StartTime:    "9:00 AM",
		EndTime:      "9:30 AM",
	})

	if out.Kind != OutcomeAssigned {
		t.Fatalf("Kind = %q, want %q", out.Kind, OutcomeAssigned)
	}
	if out.StaffName != "Alice" {
		t.Errorf("StaffName = %q, want Alice", out.StaffName)
	}
	appt := out.Appointment
	if appt.Status != model.StatusScheduled {
		t.Errorf("Status = %q, want Scheduled", appt.Status)
	}
	if !appt.Day.Equal(testDay) {
		t.Errorf("Day = %v, want %v", appt.Day, testDay)
	}
	if len(f.events.messages) != 1 || !strings.Contains(f.events.messages[0], "assigned to Alice") {
		t.Errorf("activity messages = %v", f.events.messages)
	}
}

func TestAssignPreferredStaffConflict(t *testing.T) {
	f := newFixture(t, model.Staff{Name: "Alice", DailyCapacity: 5})

	f.assign(t, AssignRequest{
		CustomerName: "Walter", Service: "Haircut", Staff: "Alice",
		StartTime: "9:00 AM", EndTime: "10:00 AM",
	})

	// Overlapping request against the same staff is rejected outright,
	// even though Alice still has capacity.
	_, err := f.svc.Assign(context.Background(), f.owner, AssignRequest{
		CustomerName: "Jesse", Service: "Haircut", Staff: "Alice",
		StartTime: "9:30 AM", EndTime: "10:30 AM",
	})

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Assign() error = %v, want ConflictError", err)
	}
	if conflict.StaffName != "Alice" {
		t.Errorf("StaffName = %q, want Alice", conflict.StaffName)
	}
	if conflict.Existing == nil || conflict.Existing.CustomerName != "Walter" {
		t.Errorf("Existing = %+v, want Walter's appointment", conflict.Existing)
	}
}

func TestAssignBoundaryTouchIsNotConflict(t *testing.T) {
	f := newFixture(t, model.Staff{Name: "Alice", DailyCapacity: 5})

	f.assign(t, AssignRequest{
		CustomerName: "Walter", Service: "Haircut", Staff: "Alice",
		StartTime: "9:00 AM", EndTime: "10:00 AM",
	})
	out := f.assign(t, AssignRequest{
		CustomerName: "Jesse", Service: "Haircut", Staff: "Alice",
		StartTime: "10:00 AM", EndTime: "11:00 AM",
	})

	if out.Kind != OutcomeAssigned || out.StaffName != "Alice" {
		t.Errorf("back-to-back window rejected: %+v", out)
	}
}

func TestAssignPreferredAtCapacityFallsThrough(t *testing.T) {
	f := newFixture(t,
		model.Staff{Name: "Alice", DailyCapacity: 1},
		model.Staff{Name: "Bob", DailyCapacity: 3},
	)

	f.assign(t, AssignRequest{
		CustomerName: "Walter", Service: "Haircut", Staff: "Alice",
		StartTime: "9:00 AM", EndTime: "9:30 AM",
	})
	out := f.assign(t, AssignRequest{
		CustomerName: "Jesse", Service: "Haircut", Staff: "Alice",
		StartTime: "11:00 AM", EndTime: "11:30 AM",
	})

	if out.Kind != OutcomeAssigned {
		t.Fatalf("Kind = %q, want %q", out.Kind, OutcomeAssigned)
	}
	if out.StaffName != "Bob" {
		t.Errorf("StaffName = %q, want Bob", out.StaffName)
	}
}

func TestAssignPreferredOnLeaveFallsThrough(t *testing.T) {
	f := newFixture(t,
		model.Staff{Name: "Alice", DailyCapacity: 3, Status: model.StaffOnLeave},
		model.Staff{Name: "Bob", DailyCapacity: 3},
	)

	out := f.assign(t, AssignRequest{
		CustomerName: "Walter", Service: "Haircut", Staff: "Alice",
		StartTime: "9:00 AM", EndTime: "9:30 AM",
	})

	if out.Kind != OutcomeAssigned || out.StaffName != "Bob" {
		t.Errorf("got %+v, want assignment to Bob", out)
	}
}

func TestAssignFirstFitOrder(t *testing.T) {
	f := newFixture(t,
		model.Staff{Name: "Bob", DailyCapacity: 3},
		model.Staff{Name: "Alice", DailyCapacity: 3},
	)

	// No preferred staff: candidates scan in name order, so Alice wins.
	out := f.assign(t, AssignRequest{
		CustomerName: "Walter", Service: "Haircut",
		StartTime: "9:00 AM", EndTime: "9:30 AM",
	})
	if out.StaffName != "Alice" {
		t.Fatalf("first assignment went to %q, want Alice", out.StaffName)
	}

	// Same window again: Alice is busy, Bob takes it.
	out = f.assign(t, AssignRequest{
		CustomerName: "Jesse", Service: "Haircut",
		StartTime: "9:00 AM", EndTime: "9:30 AM",
	})
	if out.StaffName != "Bob" {
		t.Errorf("second assignment went to %q, want Bob", out.StaffName)
	}
}

func TestAssignQueuesWhenNobodyFits(t *testing.T) {
	f := newFixture(t, model.Staff{Name: "Alice", DailyCapacity: 1})

	f.assign(t, AssignRequest{
		CustomerName: "Walter", Service: "Haircut",
		StartTime: "9:00 AM", EndTime: "9:30 AM",
	})

	for i, customer := range []string{"Jesse", "Skyler"} {
		out := f.assign(t, AssignRequest{
			CustomerName: customer, Service: "Haircut",
			StartTime: "10:00 AM", EndTime: "10:30 AM",
		})
		if out.Kind != OutcomeQueued {
			t.Fatalf("Kind = %q, want %q", out.Kind, OutcomeQueued)
		}
		if want := i + 1; out.QueuePosition != want {
			t.Errorf("QueuePosition = %d, want %d", out.QueuePosition, want)
		}
		if out.Appointment.Status != model.StatusWaiting {
			t.Errorf("Status = %q, want Waiting", out.Appointment.Status)
		}
		if out.Appointment.StaffID != nil {
			t.Errorf("queued appointment has staff %v", out.Appointment.StaffID)
		}
	}
}

func TestAssignQueuesWhenNoStaffExists(t *testing.T) {
	f := newFixture(t)

	out := f.assign(t, AssignRequest{
		CustomerName: "Walter", Service: "Haircut",
		StartTime: "9:00 AM", EndTime: "9:30 AM",
	})
	if out.Kind != OutcomeQueued || out.QueuePosition != 1 {
		t.Errorf("got %+v, want queued at position 1", out)
	}
}

func TestAssignValidation(t *testing.T) {
	f := newFixture(t, model.Staff{Name: "Alice", DailyCapacity: 3})

	_, err := f.svc.Assign(context.Background(), f.owner, AssignRequest{
		CustomerName: "  ",
		EndTime:      "10:00 AM",
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Assign() error = %v, want ValidationError", err)
	}
	// Every missing field is reported, not just the first.
	want := []string{"customerName", "service", "startTime"}
	if len(verr.Fields) != len(want) {
		t.Fatalf("Fields = %v, want %v", verr.Fields, want)
	}
	for i, field := range want {
		if verr.Fields[i] != field {
			t.Errorf("Fields[%d] = %q, want %q", i, verr.Fields[i], field)
		}
	}
}

func TestAssignUnknownServiceAndStaff(t *testing.T) {
	f := newFixture(t, model.Staff{Name: "Alice", DailyCapacity: 3})

	_, err := f.svc.Assign(context.Background(), f.owner, AssignRequest{
		CustomerName: "Walter", Service: "Massage",
		StartTime: "9:00 AM", EndTime: "9:30 AM",
	})
	if !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("unknown service error = %v, want ErrServiceNotFound", err)
	}

	_, err = f.svc.Assign(context.Background(), f.owner, AssignRequest{
		CustomerName: "Walter", Service: "Haircut", Staff: "Gus",
		StartTime: "9:00 AM", EndTime: "9:30 AM",
	})
	if !errors.Is(err, ErrStaffNotFound) {
		t.Errorf("unknown staff error = %v, want ErrStaffNotFound", err)
	}
}

func TestAssignScopedToOwner(t *testing.T) {
	f := newFixture(t, model.Staff{Name: "Alice", DailyCapacity: 3})

	_, err := f.svc.Assign(context.Background(), uuid.New(), AssignRequest{
		CustomerName: "Walter", Service: "Haircut",
		StartTime: "9:00 AM", EndTime: "9:30 AM",
	})
	if !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("cross-owner assign error = %v, want ErrServiceNotFound", err)
	}
}

func TestLoad(t *testing.T) {
	f := newFixture(t, model.Staff{Name: "Alice", DailyCapacity: 2})

	f.assign(t, AssignRequest{
		CustomerName: "Walter", Service: "Haircut", Staff: "Alice",
		StartTime: "9:00 AM", EndTime: "9:30 AM",
	})

	report, err := f.svc.Load(context.Background(), f.owner, "Alice", testDay)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if report.Current != 1 || report.Capacity != 2 || !report.Available {
		t.Errorf("LoadReport = %+v, want {1 2 true}", report)
	}

	f.assign(t, AssignRequest{
		CustomerName: "Jesse", Service: "Haircut", Staff: "Alice",
		StartTime: "10:00 AM", EndTime: "10:30 AM",
	})

	report, err = f.svc.Load(context.Background(), f.owner, "Alice", testDay)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if report.Current != 2 || report.Available {
		t.Errorf("LoadReport = %+v, want full", report)
	}

	if _, err := f.svc.Load(context.Background(), f.owner, "Gus", testDay); !errors.Is(err, ErrStaffNotFound) {
		t.Errorf("Load() unknown staff error = %v, want ErrStaffNotFound", err)
	}
}

func TestLoadCapacityIsPerDay(t *testing.T) {
	f := newFixture(t, model.Staff{Name: "Alice", DailyCapacity: 1})

	f.assign(t, AssignRequest{
		CustomerName: "Walter", Service: "Haircut", Staff: "Alice",
		StartTime: "9:00 AM", EndTime: "9:30 AM",
	})

	// Alice is full today but free tomorrow.
	tomorrow := testDay.AddDate(0, 0, 1)
	out := f.assign(t, AssignRequest{
		CustomerName: "Jesse", Service: "Haircut", Staff: "Alice",
		Day:       &tomorrow,
		StartTime: "9:00 AM", EndTime: "9:30 AM",
	})
	if out.Kind != OutcomeAssigned || out.StaffName != "Alice" {
		t.Errorf("got %+v, want Alice on the next day", out)
	}
}
