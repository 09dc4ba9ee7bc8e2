package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"personnel-backend/lib/utils/dateutils"
	"personnel-backend/models"
	dbmodels "personnel-backend/models/db"
)

func day(value string) time.Time {
	t, err := time.Parse(dateutils.DayFormat, value)
	if err != nil {
		panic(err)
	}
	return t
}

func employee(id, lastName string) dbmodels.Employee {
	return dbmodels.Employee{
		BaseModel: dbmodels.BaseModel{ID: id},
		FirstName: "Test",
		LastName:  lastName,
	}
}

func achievement(employeeID string, kind models.AchievementKind, date string) dbmodels.Achievement {
	return dbmodels.Achievement{
		EmployeeID: employeeID,
		Date:       day(date),
		Kind:       kind,
	}
}

func TestEmployeesOnLeave(t *testing.T) {
	employees := []dbmodels.Employee{employee("e1", "First"), employee("e2", "Second")}
	leaves := []dbmodels.Leave{
		{EmployeeID: "e1", StartDate: day("2025-06-01"), EndDate: day("2025-06-03")},
		{EmployeeID: "e2", StartDate: day("2025-06-05"), EndDate: day("2025-06-07")},
	}

	t.Run(`only covering leaves join the roster`, func(t *testing.T) {
		rows := EmployeesOnLeave(employees, leaves, day("2025-06-02"))
		require.Len(t, rows, 1)
		require.Equal(t, "e1", rows[0].Employee.ID)
		require.Equal(t, 3, rows[0].DurationDays)
	})

	t.Run(`boundary days are on leave`, func(t *testing.T) {
		rows := EmployeesOnLeave(employees, leaves, day("2025-06-05"))
		require.Len(t, rows, 1)
		require.Equal(t, "e2", rows[0].Employee.ID)
	})

	t.Run(`no leaves today gives empty roster`, func(t *testing.T) {
		rows := EmployeesOnLeave(employees, leaves, day("2025-06-04"))
		require.Len(t, rows, 0)
	})
}

func TestMonthlyLeaveTotal(t *testing.T) {
	winStart := day("2025-06-01")
	winEnd := day("2025-06-30")

	t.Run(`full day count of qualifying leaves, even days outside the window`, func(t *testing.T) {
		leaves := []dbmodels.Leave{
			// ends inside the window, 5 days total of which 2 are in May
			{StartDate: day("2025-05-29"), EndDate: day("2025-06-02")},
			// entirely inside, 3 days
			{StartDate: day("2025-06-10"), EndDate: day("2025-06-12")},
		}
		require.Equal(t, 8, MonthlyLeaveTotal(leaves, winStart, winEnd))
	})

	t.Run(`leave spanning the whole window is not counted`, func(t *testing.T) {
		leaves := []dbmodels.Leave{
			{StartDate: day("2025-05-20"), EndDate: day("2025-07-10")},
		}
		require.Equal(t, 0, MonthlyLeaveTotal(leaves, winStart, winEnd))
	})
}

func TestCountByKind(t *testing.T) {
	t.Run(`zero keys are never omitted`, func(t *testing.T) {
		stats := CountByKind([]dbmodels.Achievement{
			achievement("e1", models.AchievementKindStar, "2025-06-01"),
			achievement("e1", models.AchievementKindStar, "2025-06-02"),
			achievement("e1", models.AchievementKindChef, "2025-06-03"),
		})
		require.Equal(t, 2, stats[models.AchievementKindStar])
		require.Equal(t, 1, stats[models.AchievementKindChef])
		count, exist := stats[models.AchievementKindDamage]
		require.Equal(t, true, exist)
		require.Equal(t, 0, count)
	})

	t.Run(`empty input still yields all keys`, func(t *testing.T) {
		stats := CountByKind(nil)
		require.Len(t, stats, len(models.AchievementKinds))
	})
}

func TestRankPerformers(t *testing.T) {
	a := employee("a", "Alpha")
	b := employee("b", "Bravo")
	c := employee("c", "Charlie")

	t.Run(`ties resolve to the first employee in input order`, func(t *testing.T) {
		achievements := []dbmodels.Achievement{
			achievement("a", models.AchievementKindStar, "2025-06-01"),
			achievement("a", models.AchievementKindStar, "2025-06-02"),
			achievement("b", models.AchievementKindStar, "2025-06-03"),
			achievement("b", models.AchievementKindStar, "2025-06-04"),
			achievement("b", models.AchievementKindStar, "2025-06-05"),
			achievement("c", models.AchievementKindStar, "2025-06-06"),
			achievement("c", models.AchievementKindStar, "2025-06-07"),
			achievement("c", models.AchievementKindStar, "2025-06-08"),
		}
		top := RankPerformers([]dbmodels.Employee{a, b, c}, achievements)
		require.NotNil(t, top.TopStar)
		require.Equal(t, "b", top.TopStar.Employee.ID)
		require.Equal(t, 3, top.TopStar.Count)
	})

	t.Run(`kinds rank independently`, func(t *testing.T) {
		achievements := []dbmodels.Achievement{
			achievement("a", models.AchievementKindChef, "2025-06-01"),
			achievement("c", models.AchievementKindDamage, "2025-06-02"),
			achievement("c", models.AchievementKindDamage, "2025-06-03"),
		}
		top := RankPerformers([]dbmodels.Employee{a, b, c}, achievements)
		require.Nil(t, top.TopStar)
		require.Equal(t, "a", top.TopChef.Employee.ID)
		require.Equal(t, "c", top.MostDamage.Employee.ID)
		require.Equal(t, 2, top.MostDamage.Count)
	})

	t.Run(`no achievements means no winners`, func(t *testing.T) {
		top := RankPerformers([]dbmodels.Employee{a, b}, nil)
		require.Nil(t, top.TopStar)
		require.Nil(t, top.TopChef)
		require.Nil(t, top.MostDamage)
	})
}
