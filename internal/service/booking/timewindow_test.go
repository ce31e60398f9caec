package booking

import (
	"errors"
	"testing"
	"time"
)

var testDay = time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return testDay.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantStart time.Time
		wantEnd   time.Time
		wantErr   error
	}{
		{
			name:      "12 hour morning",
			start:     "9:00 AM",
			end:       "10:00 AM",
			wantStart: at(9, 0),
			wantEnd:   at(10, 0),
		},
		{
			name:      "12 hour afternoon",
			start:     "1:30 PM",
			end:       "2:00 PM",
			wantStart: at(13, 30),
			wantEnd:   at(14, 0),
		},
		{
			name:      "12 noon",
			start:     "12:00 PM",
			end:       "12:30 PM",
			wantStart: at(12, 0),
			wantEnd:   at(12, 30),
		},
		{
			name:      "12 midnight",
			start:     "12:00 AM",
			end:       "1:00 AM",
			wantStart: at(0, 0),
			wantEnd:   at(1, 0),
		},
		{
			name:      "lowercase meridiem with no space",
			start:     "9:15am",
			end:       "9:45am",
			wantStart: at(9, 15),
			wantEnd:   at(9, 45),
		},
		{
			name:      "24 hour",
			start:     "14:00",
			end:       "15:00",
			wantStart: at(14, 0),
			wantEnd:   at(15, 0),
		},
		{
			name:      "mixed formats",
			start:     "9:00 AM",
			end:       "13:00",
			wantStart: at(9, 0),
			wantEnd:   at(13, 0),
		},
		{
			name:      "rfc3339 timestamps",
			start:     "2026-03-09T09:00:00Z",
			end:       "2026-03-09T10:00:00Z",
			wantStart: at(9, 0),
			wantEnd:   at(10, 0),
		},
		{
			name:    "end equals start",
			start:   "9:00 AM",
			end:     "9:00 AM",
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "end before start",
			start:   "3:00 PM",
			end:     "2:00 PM",
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "hour out of range 12h",
			start:   "13:00 PM",
			end:     "14:00 PM",
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "hour out of range 24h",
			start:   "25:00",
			end:     "26:00",
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "minute out of range",
			start:   "9:75",
			end:     "10:00",
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "garbage",
			start:   "soonish",
			end:     "later",
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "empty start",
			start:   "",
			end:     "10:00",
			wantErr: ErrInvalidTimeFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ParseWindow(tt.start, tt.end, testDay)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseWindow() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseWindow() error = %v", err)
			}
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestParseWindowAnchorsToDay(t *testing.T) {
	// The anchor day carries a time-of-day; ParseWindow must key off its
	// midnight, not the raw instant.
	noon := testDay.Add(12 * time.Hour)
	start, end, err := ParseWindow("9:00 AM", "10:00 AM", noon)
	if err != nil {
		t.Fatalf("ParseWindow() error = %v", err)
	}
	if !start.Equal(at(9, 0)) || !end.Equal(at(10, 0)) {
		t.Errorf("got [%v, %v), want [%v, %v)", start, end, at(9, 0), at(10, 0))
	}
}

func TestMidnight(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation() error = %v", err)
	}
	in := time.Date(2026, time.July, 4, 18, 45, 12, 999, loc)
	got := Midnight(in)
	want := time.Date(2026, time.July, 4, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("Midnight() = %v, want %v", got, want)
	}
	if got.Location() != loc {
		t.Errorf("Midnight() dropped the location")
	}
}
