package analytics

import (
	"time"

	"personnel-backend/lib/utils/dateutils"
	"personnel-backend/models"
	dbmodels "personnel-backend/models/db"
)

type RosterRow struct {
	Employee     dbmodels.Employee
	Leave        dbmodels.Leave
	DurationDays int
}

type KindStats map[models.AchievementKind]int

// NewKindStats returns a zero-filled stats map, every kind key is always
// present in the output.
func NewKindStats() KindStats {
	stats := KindStats{}
	for _, kind := range models.AchievementKinds {
		stats[kind] = 0
	}
	return stats
}

type Ranking struct {
	Employee dbmodels.Employee
	Count    int
}

type TopPerformers struct {
	TopStar    *Ranking
	TopChef    *Ranking
	MostDamage *Ranking
}

// EmployeesOnLeave filters the given leaves down to those covering the day and
// joins them with their employees, preserving leave order.
func EmployeesOnLeave(employees []dbmodels.Employee, leaves []dbmodels.Leave, day time.Time) []RosterRow {
	byID := make(map[string]dbmodels.Employee, len(employees))
	for _, employee := range employees {
		byID[employee.ID] = employee
	}
	rows := []RosterRow{}
	for _, leave := range leaves {
		if !dateutils.IsWithin(day, leave.StartDate, leave.EndDate) {
			continue
		}
		employee, ok := byID[leave.EmployeeID]
		if !ok {
			continue
		}
		days, err := dateutils.DaysBetweenInclusive(leave.StartDate, leave.EndDate)
		if err != nil {
			continue
		}
		rows = append(rows, RosterRow{
			Employee:     employee,
			Leave:        leave,
			DurationDays: days,
		})
	}
	return rows
}

// MonthlyLeaveTotal sums the full inclusive day count of every leave with an
// endpoint inside the window. Days falling outside the window still count,
// this mirrors the monthly report totals.
func MonthlyLeaveTotal(leaves []dbmodels.Leave, winStart, winEnd time.Time) int {
	total := 0
	for _, leave := range leaves {
		if !dateutils.EndpointInWindow(leave.StartDate, leave.EndDate, winStart, winEnd) {
			continue
		}
		days, err := dateutils.DaysBetweenInclusive(leave.StartDate, leave.EndDate)
		if err != nil {
			continue
		}
		total += days
	}
	return total
}

// CountByKind tallies achievements per kind, zero-filled for absent kinds.
func CountByKind(achievements []dbmodels.Achievement) KindStats {
	stats := NewKindStats()
	for _, achievement := range achievements {
		if _, known := stats[achievement.Kind]; !known {
			continue
		}
		stats[achievement.Kind]++
	}
	return stats
}

// RankPerformers picks, per kind, the employee with the strict maximum count.
// Ties resolve to the employee encountered first in the given order, so the
// output is deterministic for a stable roster ordering.
func RankPerformers(employees []dbmodels.Employee, achievements []dbmodels.Achievement) TopPerformers {
	countsByEmployee := map[string]KindStats{}
	for _, achievement := range achievements {
		stats, ok := countsByEmployee[achievement.EmployeeID]
		if !ok {
			stats = NewKindStats()
			countsByEmployee[achievement.EmployeeID] = stats
		}
		if _, known := stats[achievement.Kind]; known {
			stats[achievement.Kind]++
		}
	}
	result := TopPerformers{}
	for _, employee := range employees {
		stats, ok := countsByEmployee[employee.ID]
		if !ok {
			continue
		}
		result.TopStar = pickMax(result.TopStar, employee, stats[models.AchievementKindStar])
		result.TopChef = pickMax(result.TopChef, employee, stats[models.AchievementKindChef])
		result.MostDamage = pickMax(result.MostDamage, employee, stats[models.AchievementKindDamage])
	}
	return result
}

func pickMax(current *Ranking, employee dbmodels.Employee, count int) *Ranking {
	if count == 0 {
		return current
	}
	// first-wins on ties
	if current != nil && current.Count >= count {
		return current
	}
	return &Ranking{Employee: employee, Count: count}
}
