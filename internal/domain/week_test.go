package domain

import (
	"testing"
	"time"
)

func TestWeekRange(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name      string
		ref       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "wednesday",
			ref:       time.Date(2023, 7, 5, 14, 30, 0, 0, loc),
			wantStart: time.Date(2023, 7, 3, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2023, 7, 9, 23, 59, 59, int(999*time.Millisecond), loc),
		},
		{
			name:      "sunday folds back to preceding monday",
			ref:       time.Date(2023, 7, 9, 8, 0, 0, 0, loc),
			wantStart: time.Date(2023, 7, 3, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2023, 7, 9, 23, 59, 59, int(999*time.Millisecond), loc),
		},
		{
			name:      "monday is its own week start",
			ref:       time.Date(2023, 7, 3, 0, 0, 0, 0, loc),
			wantStart: time.Date(2023, 7, 3, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2023, 7, 9, 23, 59, 59, int(999*time.Millisecond), loc),
		},
		{
			name:      "week spanning a month boundary",
			ref:       time.Date(2023, 8, 1, 12, 0, 0, 0, loc),
			wantStart: time.Date(2023, 7, 31, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2023, 8, 6, 23, 59, 59, int(999*time.Millisecond), loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekRange(tt.ref)
			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("WeekRange().Start = %v, want %v", got.Start, tt.wantStart)
			}
			if !got.End.Equal(tt.wantEnd) {
				t.Errorf("WeekRange().End = %v, want %v", got.End, tt.wantEnd)
			}
		})
	}
}

func TestWeekRange_UsesReferenceLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	ref := time.Date(2023, 7, 5, 1, 0, 0, 0, loc)

	got := WeekRange(ref)
	if got.Start.Location() != loc {
		t.Errorf("Start location = %v, want %v", got.Start.Location(), loc)
	}
	// 01:00 on Wednesday in UTC+9 is still Tuesday in UTC; the week must
	// be computed in the reference's own calendar.
	if got.Start.Day() != 3 {
		t.Errorf("Start day = %d, want 3", got.Start.Day())
	}
}

func TestTimeRange_Contains(t *testing.T) {
	r := TimeRange{
		Start: time.Date(2023, 7, 3, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2023, 7, 9, 23, 59, 59, 0, time.UTC),
	}

	if !r.Contains(r.Start) {
		t.Error("start bound should be inclusive")
	}
	if !r.Contains(r.End) {
		t.Error("end bound should be inclusive")
	}
	if r.Contains(r.Start.Add(-time.Millisecond)) {
		t.Error("instant before start should not match")
	}
	if r.Contains(r.End.Add(time.Millisecond)) {
		t.Error("instant after end should not match")
	}
}
