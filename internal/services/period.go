package services

import (
	"errors"
	"strings"
	"time"
)

const (
	PeriodThisWeek  = "this-week"
	PeriodLastWeek  = "last-week"
	PeriodThisMonth = "this-month"
	PeriodLastMonth = "last-month"
	PeriodCustom    = "custom"
)

var (
	ErrUnknownPeriod     = errors.New("unknown period")
	ErrMissingRangeBound = errors.New("start and end dates are required for custom period")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvertedRange     = errors.New("end date must not be before start date")
)

const dayParamLayout = "2006-01-02"

// ResolvePeriodRange maps a named period token, or explicit bounds for the
// custom token, to an inclusive [start, end] window relative to now. Weeks
// run Sunday through Saturday; ends land on the final millisecond of their
// closing day.
func ResolvePeriodRange(period string, startDate string, endDate string, now time.Time, location *time.Location) (time.Time, time.Time, error) {
	if location == nil {
		location = time.UTC
	}

	switch strings.TrimSpace(period) {
	case PeriodThisWeek:
		start := WeekStart(now, location)
		return start, EndOfDay(start.AddDate(0, 0, 6)), nil
	case PeriodLastWeek:
		start := WeekStart(now, location).AddDate(0, 0, -7)
		return start, EndOfDay(start.AddDate(0, 0, 6)), nil
	case PeriodThisMonth:
		localized := now.In(location)
		start := time.Date(localized.Year(), localized.Month(), 1, 0, 0, 0, 0, location)
		return start, start.AddDate(0, 1, 0).Add(-time.Millisecond), nil
	case PeriodLastMonth:
		localized := now.In(location)
		start := time.Date(localized.Year(), localized.Month()-1, 1, 0, 0, 0, 0, location)
		return start, start.AddDate(0, 1, 0).Add(-time.Millisecond), nil
	case PeriodCustom:
		return resolveCustomRange(startDate, endDate, location)
	default:
		return time.Time{}, time.Time{}, ErrUnknownPeriod
	}
}

func resolveCustomRange(startDate string, endDate string, location *time.Location) (time.Time, time.Time, error) {
	startRaw := strings.TrimSpace(startDate)
	endRaw := strings.TrimSpace(endDate)
	if startRaw == "" || endRaw == "" {
		return time.Time{}, time.Time{}, ErrMissingRangeBound
	}

	parsedStart, err := time.ParseInLocation(dayParamLayout, startRaw, location)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateFormat
	}
	parsedEnd, err := time.ParseInLocation(dayParamLayout, endRaw, location)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateFormat
	}
	if parsedEnd.Before(parsedStart) {
		return time.Time{}, time.Time{}, ErrInvertedRange
	}

	start := DateAtLocation(parsedStart, location)
	return start, EndOfDay(DateAtLocation(parsedEnd, location)), nil
}

// ParseDayParam parses an ISO-8601 calendar date into midnight of that day.
func ParseDayParam(raw string, location *time.Location) (time.Time, error) {
	parsed, err := time.ParseInLocation(dayParamLayout, strings.TrimSpace(raw), location)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return DateAtLocation(parsed, location), nil
}
