package reportprovider

import (
	"bytes"
	"fmt"
	"time"

	"personnel-backend/db"
	achievementstore "personnel-backend/lib/achievement/store"
	"personnel-backend/lib/analytics"
	employeestore "personnel-backend/lib/employee/store"
	pdfexport "personnel-backend/lib/export/pdf"
	xlsexport "personnel-backend/lib/export/xls"
	leavestore "personnel-backend/lib/leave/store"
	"personnel-backend/lib/utils/apperrors"
	"personnel-backend/lib/utils/dateutils"
	initchecker "personnel-backend/lib/utils/init-checker"
)

// Provider assembles report input from the ledgers and hands it to the
// spreadsheet/document renderers. All parameter validation happens here,
// before any rendering starts.
type Provider interface {
	MonthlyLeaveExcel(employeeID, month string) (file *bytes.Buffer, fileName string, err error)
	MonthlyAchievementExcel(employeeID, month string) (file *bytes.Buffer, fileName string, err error)
	TodayRosterPDF() (file []byte, fileName string, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		employeeStore:    employeestore.NewInstance(db.DB),
		leaveStore:       leavestore.NewInstance(db.DB),
		achievementStore: achievementstore.NewInstance(db.DB),
		analytics:        analytics.Instance,
		xls:              xlsexport.Instance,
	}
	initchecker.CheckInit(
		"employeeStore", instance.employeeStore,
		"leaveStore", instance.leaveStore,
		"achievementStore", instance.achievementStore,
		"analytics", instance.analytics,
		"xls", instance.xls,
	)
	Instance = instance
}

type impl struct {
	employeeStore    employeestore.Provider
	leaveStore       leavestore.Provider
	achievementStore achievementstore.Provider
	analytics        analytics.Provider
	xls              xlsexport.Provider
}

func (i impl) MonthlyLeaveExcel(employeeID, month string) (*bytes.Buffer, string, error) {
	if employeeID != "" {
		employee, leaves, _, err := i.analytics.MonthlyLeaveReport(employeeID, month)
		if err != nil {
			return nil, "", err
		}
		file, err := i.xls.ExportEmployeeLeaves(employee, leaves, month)
		if err != nil {
			return nil, "", err
		}
		return file, fmt.Sprintf("leaves_%s_%s.xlsx", employee.LastName, month), nil
	}

	winStart, winEnd, err := dateutils.MonthWindow(month)
	if err != nil {
		return nil, "", err
	}
	employees, err := i.employeeStore.ListAll()
	if err != nil {
		return nil, "", err
	}
	entries := make([]xlsexport.RosterEntry, 0, len(employees))
	for _, employee := range employees {
		leaves, err := i.leaveStore.OverlappingMonth(employee.ID, winStart, winEnd)
		if err != nil {
			return nil, "", err
		}
		entries = append(entries, xlsexport.RosterEntry{
			Employee: employee,
			Leaves:   leaves,
		})
	}
	file, err := i.xls.ExportLeaveRoster(entries, month)
	if err != nil {
		return nil, "", err
	}
	return file, fmt.Sprintf("leaves_%s.xlsx", month), nil
}

func (i impl) MonthlyAchievementExcel(employeeID, month string) (*bytes.Buffer, string, error) {
	if employeeID != "" {
		employee, achievements, stats, err := i.analytics.MonthlyAchievementReport(employeeID, month)
		if err != nil {
			return nil, "", err
		}
		file, err := i.xls.ExportEmployeeAchievements(employee, achievements, stats, month)
		if err != nil {
			return nil, "", err
		}
		return file, fmt.Sprintf("achievements_%s_%s.xlsx", employee.LastName, month), nil
	}

	winStart, winEnd, err := dateutils.MonthWindow(month)
	if err != nil {
		return nil, "", err
	}
	employees, err := i.employeeStore.ListAll()
	if err != nil {
		return nil, "", err
	}
	entries := make([]xlsexport.AchievementRosterEntry, 0, len(employees))
	for _, employee := range employees {
		achievements, err := i.achievementStore.ListByEmployeeInRange(employee.ID, winStart, winEnd)
		if err != nil {
			return nil, "", err
		}
		entries = append(entries, xlsexport.AchievementRosterEntry{
			Employee:     employee,
			Achievements: achievements,
		})
	}
	top, err := i.analytics.TopPerformersInRange(winStart, winEnd)
	if err != nil {
		return nil, "", err
	}
	file, err := i.xls.ExportAchievementRoster(entries, top, month)
	if err != nil {
		return nil, "", err
	}
	return file, fmt.Sprintf("achievements_%s.xlsx", month), nil
}

func (i impl) TodayRosterPDF() ([]byte, string, error) {
	today := time.Now()
	rows, err := i.analytics.TodayRoster(today)
	if err != nil {
		return nil, "", err
	}
	file, err := pdfexport.GenerateTodayRoster(rows, today)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.KindInternal, err, "roster pdf failed")
	}
	return file, fmt.Sprintf("on_leave_%s.pdf", today.Format(dateutils.DayFormat)), nil
}
