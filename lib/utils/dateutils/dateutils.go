package dateutils

import (
	"time"

	"personnel-backend/lib/utils/apperrors"
)

const DayFormat = "2006-01-02"

// ToDate drops the time-of-day component, comparisons in this package work at
// calendar-day granularity to avoid off-by-one errors from timestamps.
func ToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetweenInclusive counts the days covered by [start, end], both ends
// included. A single-day interval yields 1.
func DaysBetweenInclusive(start, end time.Time) (int, error) {
	s := ToDate(start)
	e := ToDate(end)
	if e.Before(s) {
		return 0, apperrors.Newf(apperrors.KindValidation,
			"invalid date range: end %s is before start %s", e.Format(DayFormat), s.Format(DayFormat))
	}
	return int(e.Sub(s).Hours()/24) + 1, nil
}

// DaysUntil is the signed day difference from today to target, negative when
// the target is already in the past.
func DaysUntil(target, today time.Time) int {
	return int(ToDate(target).Sub(ToDate(today)).Hours() / 24)
}

// IsWithin reports whether point falls inside [start, end], inclusive on
// both ends.
func IsWithin(point, start, end time.Time) bool {
	p := ToDate(point)
	return !p.Before(ToDate(start)) && !p.After(ToDate(end))
}

func IntervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !ToDate(aStart).After(ToDate(bEnd)) && !ToDate(bStart).After(ToDate(aEnd))
}

// MonthWindow resolves "YYYY-MM" to the first and last day of that month.
func MonthWindow(month string) (first, last time.Time, err error) {
	first, err = time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.Newf(apperrors.KindValidation,
			"invalid month parameter %q, expected YYYY-MM", month)
	}
	last = first.AddDate(0, 1, -1)
	return first, last, nil
}

// EndpointInWindow reports whether either endpoint of [start, end] lies inside
// [winStart, winEnd]. Note this is the monthly-report selection rule, not true
// interval intersection: an interval covering the whole window with both
// endpoints outside it does not qualify.
func EndpointInWindow(start, end, winStart, winEnd time.Time) bool {
	return IsWithin(start, winStart, winEnd) || IsWithin(end, winStart, winEnd)
}
