package booking

import "time"

// Overlaps reports whether the half-open windows [s1,e1) and [s2,e2)
// intersect: neither window may end before or exactly when the other
// starts. Appointments that touch at a boundary do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}
