package xlsexport

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"personnel-backend/lib/analytics"
	"personnel-backend/models"
	dbmodels "personnel-backend/models/db"
)

func day(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func openBook(t *testing.T, buf *bytes.Buffer) (*excelize.File, string) {
	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	sheets := f.GetSheetList()
	require.Len(t, sheets, 1)
	return f, sheets[0]
}

func TestExportEmployeeLeaves(t *testing.T) {
	exp := impl{}
	employee := dbmodels.Employee{
		FirstName: "Anna",
		LastName:  "Orlova",
		Position:  "Dispatcher",
	}
	leaves := []dbmodels.Leave{
		{
			EmployeeID: "e1",
			StartDate:  day("2026-03-02"),
			EndDate:    day("2026-03-06"),
			Type:       models.LeaveTypeAnnual,
			Status:     models.LeaveStatusApproved,
			Reason:     "vacation",
		},
		{
			EmployeeID: "e1",
			StartDate:  day("2026-03-20"),
			EndDate:    day("2026-03-22"),
			Type:       models.LeaveTypeSick,
			Status:     models.LeaveStatusApproved,
		},
	}

	buf, err := exp.ExportEmployeeLeaves(employee, leaves, "2026-03")
	require.NoError(t, err)
	f, sheet := openBook(t, buf)

	t.Run("header row", func(t *testing.T) {
		for idx, want := range leaveDetailHeaders {
			cell, err := excelize.CoordinatesToCellName(idx+1, 1)
			require.NoError(t, err)
			got, err := f.GetCellValue(sheet, cell)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	})

	t.Run("leave rows", func(t *testing.T) {
		start, err := f.GetCellValue(sheet, "A2")
		require.NoError(t, err)
		require.Equal(t, "2026-03-02", start)
		days, err := f.GetCellValue(sheet, "C2")
		require.NoError(t, err)
		require.Equal(t, "5", days)
		kind, err := f.GetCellValue(sheet, "D3")
		require.NoError(t, err)
		require.Equal(t, "SICK", kind)
	})

	t.Run("totals row sums the day column", func(t *testing.T) {
		label, err := f.GetCellValue(sheet, "A4")
		require.NoError(t, err)
		require.Equal(t, "Total", label)
		formula, err := f.GetCellFormula(sheet, "C4")
		require.NoError(t, err)
		require.Equal(t, "SUM(C2:C3)", formula)
	})

	t.Run("sheet named after employee and month", func(t *testing.T) {
		require.Equal(t, "Anna Orlova 2026-03", sheet)
	})
}

func TestExportEmployeeLeavesEmpty(t *testing.T) {
	exp := impl{}
	employee := dbmodels.Employee{FirstName: "Ivan", LastName: "Petrov"}

	buf, err := exp.ExportEmployeeLeaves(employee, nil, "2026-04")
	require.NoError(t, err)
	f, sheet := openBook(t, buf)

	label, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	require.Equal(t, "Total", label)
	total, err := f.GetCellValue(sheet, "C2")
	require.NoError(t, err)
	require.Equal(t, "0", total)
}

func TestExportLeaveRosterPlaceholder(t *testing.T) {
	exp := impl{}
	entries := []RosterEntry{
		{
			Employee: dbmodels.Employee{FirstName: "Ivan", LastName: "Petrov", Position: "Driver"},
		},
		{
			Employee: dbmodels.Employee{FirstName: "Anna", LastName: "Orlova", Position: "Dispatcher"},
			Leaves: []dbmodels.Leave{
				{
					StartDate: day("2026-03-10"),
					EndDate:   day("2026-03-12"),
					Type:      models.LeaveTypeAnnual,
					Status:    models.LeaveStatusApproved,
				},
			},
		},
	}

	buf, err := exp.ExportLeaveRoster(entries, "2026-03")
	require.NoError(t, err)
	f, sheet := openBook(t, buf)

	t.Run("employee without records gets a placeholder row", func(t *testing.T) {
		name, err := f.GetCellValue(sheet, "A2")
		require.NoError(t, err)
		require.Equal(t, "Ivan Petrov", name)
		placeholder, err := f.GetCellValue(sheet, "C2")
		require.NoError(t, err)
		require.Equal(t, "no records", placeholder)
	})

	t.Run("leave row carries the interval", func(t *testing.T) {
		name, err := f.GetCellValue(sheet, "A3")
		require.NoError(t, err)
		require.Equal(t, "Anna Orlova", name)
		days, err := f.GetCellValue(sheet, "E3")
		require.NoError(t, err)
		require.Equal(t, "3", days)
	})
}

func TestExportAchievementRosterTopPerformers(t *testing.T) {
	exp := impl{}
	anna := dbmodels.Employee{FirstName: "Anna", LastName: "Orlova", Position: "Dispatcher"}
	ivan := dbmodels.Employee{FirstName: "Ivan", LastName: "Petrov", Position: "Driver"}
	entries := []AchievementRosterEntry{
		{Employee: ivan},
		{
			Employee: anna,
			Achievements: []dbmodels.Achievement{
				{Date: day("2026-03-05"), Kind: models.AchievementKindStar},
			},
		},
	}
	top := analytics.TopPerformers{
		TopStar: &analytics.Ranking{Employee: anna, Count: 2},
	}

	buf, err := exp.ExportAchievementRoster(entries, top, "2026-03")
	require.NoError(t, err)
	f, sheet := openBook(t, buf)

	t.Run("summary block follows the roster rows", func(t *testing.T) {
		label, err := f.GetCellValue(sheet, "A5")
		require.NoError(t, err)
		require.Equal(t, "Top performers", label)
	})

	t.Run("leader row carries name and count", func(t *testing.T) {
		kind, err := f.GetCellValue(sheet, "A6")
		require.NoError(t, err)
		require.Equal(t, "Star of the day", kind)
		name, err := f.GetCellValue(sheet, "B6")
		require.NoError(t, err)
		require.Equal(t, "Anna Orlova", name)
		count, err := f.GetCellValue(sheet, "C6")
		require.NoError(t, err)
		require.Equal(t, "2", count)
	})

	t.Run("kinds nobody scored in get a placeholder", func(t *testing.T) {
		for _, cell := range []string{"B7", "B8"} {
			value, err := f.GetCellValue(sheet, cell)
			require.NoError(t, err)
			require.Equal(t, "no records", value)
		}
	})
}

func TestExportEmployeeAchievements(t *testing.T) {
	exp := impl{}
	employee := dbmodels.Employee{FirstName: "Anna", LastName: "Orlova"}
	achievements := []dbmodels.Achievement{
		{EmployeeID: "e1", Date: day("2026-03-05"), Kind: models.AchievementKindStar},
		{EmployeeID: "e1", Date: day("2026-03-09"), Kind: models.AchievementKindStar},
		{EmployeeID: "e1", Date: day("2026-03-15"), Kind: models.AchievementKindChef, Notes: "dinner"},
	}
	stats := analytics.NewKindStats()
	for _, a := range achievements {
		stats[a.Kind]++
	}

	buf, err := exp.ExportEmployeeAchievements(employee, achievements, stats, "2026-03")
	require.NoError(t, err)
	f, sheet := openBook(t, buf)

	notes, err := f.GetCellValue(sheet, "C4")
	require.NoError(t, err)
	require.Equal(t, "dinner", notes)

	label, err := f.GetCellValue(sheet, "A5")
	require.NoError(t, err)
	require.Equal(t, "Total", label)
	totals, err := f.GetCellValue(sheet, "B5")
	require.NoError(t, err)
	require.Equal(t, "STAR: 2, CHEF: 1, X: 0", totals)
}
