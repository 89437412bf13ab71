package domain

import "time"

// WeekRange returns the Monday 00:00:00.000 through Sunday 23:59:59.999
// window of the week containing ref, in ref's own location. The location
// is deliberately taken from the reference instant rather than the host
// environment so results stay deterministic under test.
//
// The calendar arithmetic uses plain day offsets; DST transitions inside
// the week are not specially handled.
func WeekRange(ref time.Time) TimeRange {
	// time.Weekday numbers Sunday as 0; fold it to 6 so the week still
	// starts on the preceding Monday.
	offset := int(ref.Weekday()) - 1
	if ref.Weekday() == time.Sunday {
		offset = 6
	}

	y, m, d := ref.AddDate(0, 0, -offset).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, ref.Location())

	ey, em, ed := start.AddDate(0, 0, 6).Date()
	end := time.Date(ey, em, ed, 23, 59, 59, int(999*time.Millisecond), ref.Location())

	return TimeRange{Start: start, End: end}
}
