package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"personnel-backend/lib/analytics"
	"personnel-backend/lib/utils/dateutils"
	"personnel-backend/models"
	dbmodels "personnel-backend/models/db"
)

// RosterEntry is one employee with the leaves selected for the report window.
// An empty Leaves slice produces a "no records" placeholder row.
type RosterEntry struct {
	Employee dbmodels.Employee
	Leaves   []dbmodels.Leave
}

// AchievementRosterEntry is one employee with the achievements selected for
// the report window.
type AchievementRosterEntry struct {
	Employee     dbmodels.Employee
	Achievements []dbmodels.Achievement
}

type Provider interface {
	ExportEmployeeLeaves(employee dbmodels.Employee, leaves []dbmodels.Leave, month string) (*bytes.Buffer, error)
	ExportLeaveRoster(entries []RosterEntry, month string) (*bytes.Buffer, error)
	ExportEmployeeAchievements(employee dbmodels.Employee, achievements []dbmodels.Achievement, stats analytics.KindStats, month string) (*bytes.Buffer, error)
	ExportAchievementRoster(entries []AchievementRosterEntry, top analytics.TopPerformers, month string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var leaveDetailHeaders = []string{"Start", "End", "Days", "Type", "Status", "Reason"}
var leaveRosterHeaders = []string{"Employee", "Position", "Start", "End", "Days", "Type", "Status"}
var achievementHeaders = []string{"Date", "Kind", "Notes"}

func (i impl) ExportEmployeeLeaves(employee dbmodels.Employee, leaves []dbmodels.Leave, month string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer closeFile(f)
	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, leaveDetailHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "leave report header failed")
	}
	firstDataRow := row + 1
	if err := applyDataCellStyle(f, sheet, 1, firstDataRow, len(leaveDetailHeaders), firstDataRow+len(leaves)+1); err != nil {
		return nil, err
	}
	for _, leave := range leaves {
		row++
		if err := writeLeaveCells(f, sheet, row, 1, leave); err != nil {
			return nil, errors.Wrap(err, "leave report row failed")
		}
	}
	// totals row, day count summed with a column formula
	row++
	if err := writeColumn(f, sheet, 1, row, "Total"); err != nil {
		return nil, err
	}
	if len(leaves) > 0 {
		formula := fmt.Sprintf("SUM(C%d:C%d)", firstDataRow, row-1)
		if err := writeFormula(f, sheet, 3, row, formula); err != nil {
			return nil, err
		}
	} else {
		if err := writeColumn(f, sheet, 3, row, 0); err != nil {
			return nil, err
		}
	}
	f.SetSheetName(sheet, fmt.Sprintf("%s %s", employee.FullName(), month))
	return f.WriteToBuffer()
}

func (i impl) ExportLeaveRoster(entries []RosterEntry, month string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer closeFile(f)
	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, leaveRosterHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "roster report header failed")
	}
	rowCount := 0
	for _, entry := range entries {
		if len(entry.Leaves) == 0 {
			rowCount++
		}
		rowCount += len(entry.Leaves)
	}
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(leaveRosterHeaders), row+rowCount+1); err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if len(entry.Leaves) == 0 {
			row++
			if err := writeColumn(f, sheet, 1, row, entry.Employee.FullName()); err != nil {
				return nil, err
			}
			if err := writeColumn(f, sheet, 2, row, entry.Employee.Position); err != nil {
				return nil, err
			}
			if err := writeColumn(f, sheet, 3, row, "no records"); err != nil {
				return nil, err
			}
			continue
		}
		for _, leave := range entry.Leaves {
			row++
			if err := writeColumn(f, sheet, 1, row, entry.Employee.FullName()); err != nil {
				return nil, err
			}
			if err := writeColumn(f, sheet, 2, row, entry.Employee.Position); err != nil {
				return nil, err
			}
			if err := writeLeaveCells(f, sheet, row, 3, leave); err != nil {
				return nil, errors.Wrap(err, "roster report row failed")
			}
		}
	}
	f.SetSheetName(sheet, fmt.Sprintf("Leaves %s", month))
	return f.WriteToBuffer()
}

func (i impl) ExportEmployeeAchievements(employee dbmodels.Employee, achievements []dbmodels.Achievement, stats analytics.KindStats, month string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer closeFile(f)
	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, achievementHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "achievement report header failed")
	}
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(achievementHeaders), row+len(achievements)+2); err != nil {
		return nil, err
	}
	for _, achievement := range achievements {
		row++
		if err := writeColumn(f, sheet, 1, row, achievement.Date.Format(dateutils.DayFormat)); err != nil {
			return nil, err
		}
		if err := writeColumn(f, sheet, 2, row, achievement.Kind.ToHuman()); err != nil {
			return nil, err
		}
		if err := writeColumn(f, sheet, 3, row, achievement.Notes); err != nil {
			return nil, err
		}
	}
	// trailing totals row, one count per kind
	row++
	totals := ""
	for _, kind := range models.AchievementKinds {
		if totals != "" {
			totals += ", "
		}
		totals += fmt.Sprintf("%s: %d", kind, stats[kind])
	}
	if err := writeColumn(f, sheet, 1, row, "Total"); err != nil {
		return nil, err
	}
	if err := writeColumn(f, sheet, 2, row, totals); err != nil {
		return nil, err
	}
	f.SetSheetName(sheet, fmt.Sprintf("%s %s", employee.FullName(), month))
	return f.WriteToBuffer()
}

var achievementRosterHeaders = []string{"Employee", "Date", "Kind", "Notes"}

func (i impl) ExportAchievementRoster(entries []AchievementRosterEntry, top analytics.TopPerformers, month string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer closeFile(f)
	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, achievementRosterHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "achievement roster header failed")
	}
	rowCount := 0
	for _, entry := range entries {
		if len(entry.Achievements) == 0 {
			rowCount++
		}
		rowCount += len(entry.Achievements)
	}
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(achievementRosterHeaders), row+rowCount+1); err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if len(entry.Achievements) == 0 {
			row++
			if err := writeColumn(f, sheet, 1, row, entry.Employee.FullName()); err != nil {
				return nil, err
			}
			if err := writeColumn(f, sheet, 2, row, "no records"); err != nil {
				return nil, err
			}
			continue
		}
		for _, achievement := range entry.Achievements {
			row++
			cells := []interface{}{
				entry.Employee.FullName(),
				achievement.Date.Format(dateutils.DayFormat),
				achievement.Kind.ToHuman(),
				achievement.Notes,
			}
			for idx, value := range cells {
				if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
					return nil, err
				}
			}
		}
	}
	row, err = writeTopPerformers(f, sheet, row+2, top)
	if err != nil {
		return nil, errors.Wrap(err, "achievement roster summary failed")
	}
	f.SetSheetName(sheet, fmt.Sprintf("Achievements %s", month))
	return f.WriteToBuffer()
}

// writeTopPerformers appends the month's leaders, one row per kind. A kind
// nobody scored in gets a placeholder instead of a name.
func writeTopPerformers(f *excelize.File, sheet string, row int, top analytics.TopPerformers) (int, error) {
	if err := writeColumn(f, sheet, 1, row, "Top performers"); err != nil {
		return row, err
	}
	leaders := map[models.AchievementKind]*analytics.Ranking{
		models.AchievementKindStar:   top.TopStar,
		models.AchievementKindChef:   top.TopChef,
		models.AchievementKindDamage: top.MostDamage,
	}
	for _, kind := range models.AchievementKinds {
		row++
		if err := writeColumn(f, sheet, 1, row, kind.ToHuman()); err != nil {
			return row, err
		}
		leader := leaders[kind]
		if leader == nil {
			if err := writeColumn(f, sheet, 2, row, "no records"); err != nil {
				return row, err
			}
			continue
		}
		if err := writeColumn(f, sheet, 2, row, leader.Employee.FullName()); err != nil {
			return row, err
		}
		if err := writeColumn(f, sheet, 3, row, leader.Count); err != nil {
			return row, err
		}
	}
	return row, nil
}

func writeLeaveCells(f *excelize.File, sheet string, row, startCol int, leave dbmodels.Leave) error {
	days, err := dateutils.DaysBetweenInclusive(leave.StartDate, leave.EndDate)
	if err != nil {
		return err
	}
	cells := []interface{}{
		leave.StartDate.Format(dateutils.DayFormat),
		leave.EndDate.Format(dateutils.DayFormat),
		days,
		string(leave.Type),
		string(leave.Status),
	}
	if startCol == 1 {
		cells = append(cells, leave.Reason)
	}
	for idx, value := range cells {
		if err := writeColumn(f, sheet, startCol+idx, row, value); err != nil {
			return err
		}
	}
	return nil
}

func closeFile(f *excelize.File) {
	if err := f.Close(); err != nil {
		log.WithError(err).Error("xlsx close failed")
	}
}
