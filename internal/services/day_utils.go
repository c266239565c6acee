package services

import "time"

// DateAtLocation truncates an instant to midnight of its calendar day in the
// given location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayBounds returns the inclusive [start, end] window of the calendar day the
// instant falls on; end is the last representable millisecond of the day.
func DayBounds(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, EndOfDay(start)
}

// EndOfDay returns 23:59:59.999 of the calendar day the given midnight
// belongs to.
func EndOfDay(dayStart time.Time) time.Time {
	return dayStart.AddDate(0, 0, 1).Add(-time.Millisecond)
}

// SameCalendarDay reports whether two instants fall on the same calendar day
// in the given location.
func SameCalendarDay(first time.Time, second time.Time, location *time.Location) bool {
	if location == nil {
		location = time.UTC
	}
	firstYear, firstMonth, firstDay := first.In(location).Date()
	secondYear, secondMonth, secondDay := second.In(location).Date()
	return firstYear == secondYear && firstMonth == secondMonth && firstDay == secondDay
}

// WeekStart returns midnight of the Sunday beginning the week the instant
// falls in.
func WeekStart(value time.Time, location *time.Location) time.Time {
	day := DateAtLocation(value, location)
	return day.AddDate(0, 0, -int(day.Weekday()))
}
