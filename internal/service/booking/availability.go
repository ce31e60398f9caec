package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bookora/bookora_backend/internal/model"
)

// LoadReport describes a staff member's booking load for one calendar day.
type LoadReport struct {
	Current   int  `json:"current"`
	Capacity  int  `json:"capacity"`
	Available bool `json:"available"`
}

// Load computes the staff member's load for the calendar day of day.
// Available means the staff record is marked Available and has headroom
// under its daily capacity.
func (s *bookingService) Load(ctx context.Context, ownerID uuid.UUID, staffName string, day time.Time) (*LoadReport, error) {
	st, err := s.store.StaffByName(ctx, ownerID, staffName)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, ErrStaffNotFound
	}
	return staffLoad(ctx, s.store, st, day)
}

// staffLoad is the shared implementation used on both the pooled and the
// in-transaction paths.
func staffLoad(ctx context.Context, q Queries, st *model.Staff, day time.Time) (*LoadReport, error) {
	current, err := q.DayLoad(ctx, st.OwnerID, st.ID, Midnight(day))
	if err != nil {
		return nil, fmt.Errorf("count day load: %w", err)
	}
	return &LoadReport{
		Current:   current,
		Capacity:  st.DailyCapacity,
		Available: st.Status == model.StaffAvailable && current < st.DailyCapacity,
	}, nil
}
