package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"personnel-backend/lib/utils/apperrors"
)

func day(value string) time.Time {
	t, err := time.Parse(DayFormat, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDaysBetweenInclusive(t *testing.T) {
	t.Run(`single day counts as one`, func(t *testing.T) {
		days, err := DaysBetweenInclusive(day("2025-06-01"), day("2025-06-01"))
		require.Nil(t, err)
		require.Equal(t, 1, days)
	})

	t.Run(`both endpoints included`, func(t *testing.T) {
		days, err := DaysBetweenInclusive(day("2025-06-01"), day("2025-06-03"))
		require.Nil(t, err)
		require.Equal(t, 3, days)
	})

	t.Run(`time of day does not shift the count`, func(t *testing.T) {
		start := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
		end := time.Date(2025, 6, 3, 0, 1, 0, 0, time.UTC)
		days, err := DaysBetweenInclusive(start, end)
		require.Nil(t, err)
		require.Equal(t, 3, days)
	})

	t.Run(`end before start fails with validation error`, func(t *testing.T) {
		_, err := DaysBetweenInclusive(day("2025-06-03"), day("2025-06-01"))
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}

func TestIsWithin(t *testing.T) {
	start := day("2025-06-10")
	end := day("2025-06-20")

	t.Run(`boundaries are inclusive`, func(t *testing.T) {
		require.Equal(t, true, IsWithin(start, start, end))
		require.Equal(t, true, IsWithin(end, start, end))
	})

	t.Run(`one day outside either bound is excluded`, func(t *testing.T) {
		require.Equal(t, false, IsWithin(day("2025-06-09"), start, end))
		require.Equal(t, false, IsWithin(day("2025-06-21"), start, end))
	})
}

func TestIntervalsOverlap(t *testing.T) {
	t.Run(`touching endpoints overlap`, func(t *testing.T) {
		require.Equal(t, true, IntervalsOverlap(
			day("2025-06-01"), day("2025-06-10"),
			day("2025-06-10"), day("2025-06-15")))
	})

	t.Run(`disjoint intervals do not overlap`, func(t *testing.T) {
		require.Equal(t, false, IntervalsOverlap(
			day("2025-06-01"), day("2025-06-09"),
			day("2025-06-10"), day("2025-06-15")))
	})
}

func TestDaysUntil(t *testing.T) {
	today := day("2025-06-01")

	require.Equal(t, 10, DaysUntil(day("2025-06-11"), today))
	require.Equal(t, 0, DaysUntil(day("2025-06-01"), today))
	require.Equal(t, -3, DaysUntil(day("2025-05-29"), today))
}

func TestMonthWindow(t *testing.T) {
	t.Run(`resolves first and last day`, func(t *testing.T) {
		first, last, err := MonthWindow("2025-02")
		require.Nil(t, err)
		require.Equal(t, day("2025-02-01"), first)
		require.Equal(t, day("2025-02-28"), last)
	})

	t.Run(`rejects malformed month`, func(t *testing.T) {
		_, _, err := MonthWindow("02-2025")
		require.NotNil(t, err)
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}

func TestEndpointInWindow(t *testing.T) {
	winStart := day("2025-06-01")
	winEnd := day("2025-06-30")

	t.Run(`endpoint inside window qualifies`, func(t *testing.T) {
		require.Equal(t, true, EndpointInWindow(day("2025-05-20"), day("2025-06-02"), winStart, winEnd))
		require.Equal(t, true, EndpointInWindow(day("2025-06-28"), day("2025-07-05"), winStart, winEnd))
	})

	t.Run(`interval spanning the whole window does not qualify`, func(t *testing.T) {
		// Selection rule is endpoint-based, not true intersection.
		require.Equal(t, false, EndpointInWindow(day("2025-05-20"), day("2025-07-10"), winStart, winEnd))
	})
}
