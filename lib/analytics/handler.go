package analytics

import (
	"time"

	"personnel-backend/db"
	achievementstore "personnel-backend/lib/achievement/store"
	employeestore "personnel-backend/lib/employee/store"
	leavestore "personnel-backend/lib/leave/store"
	"personnel-backend/lib/utils/apperrors"
	"personnel-backend/lib/utils/dateutils"
	initchecker "personnel-backend/lib/utils/init-checker"
	dbmodels "personnel-backend/models/db"
)

// Provider derives statistics from fresh ledger reads, nothing is cached and
// nothing is mutated.
type Provider interface {
	TodayRoster(today time.Time) (rows []RosterRow, err error)
	MonthlyLeaveReport(employeeID, month string) (employee dbmodels.Employee, leaves []dbmodels.Leave, totalDays int, err error)
	MonthlyAchievementReport(employeeID, month string) (employee dbmodels.Employee, achievements []dbmodels.Achievement, stats KindStats, err error)
	TopPerformersInRange(start, end time.Time) (top TopPerformers, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		employeeStore:    employeestore.NewInstance(db.DB),
		leaveStore:       leavestore.NewInstance(db.DB),
		achievementStore: achievementstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"employeeStore", instance.employeeStore,
		"leaveStore", instance.leaveStore,
		"achievementStore", instance.achievementStore,
	)
	Instance = instance
}

type impl struct {
	employeeStore    employeestore.Provider
	leaveStore       leavestore.Provider
	achievementStore achievementstore.Provider
}

func (i impl) TodayRoster(today time.Time) ([]RosterRow, error) {
	employees, err := i.employeeStore.ListAll()
	if err != nil {
		return nil, err
	}
	leaves, err := i.leaveStore.OnDate(today)
	if err != nil {
		return nil, err
	}
	return EmployeesOnLeave(employees, leaves, today), nil
}

func (i impl) MonthlyLeaveReport(employeeID, month string) (dbmodels.Employee, []dbmodels.Leave, int, error) {
	employee, winStart, winEnd, err := i.resolveParams(employeeID, month)
	if err != nil {
		return dbmodels.Employee{}, nil, 0, err
	}
	leaves, err := i.leaveStore.OverlappingMonth(employeeID, winStart, winEnd)
	if err != nil {
		return dbmodels.Employee{}, nil, 0, err
	}
	return employee, leaves, MonthlyLeaveTotal(leaves, winStart, winEnd), nil
}

func (i impl) MonthlyAchievementReport(employeeID, month string) (dbmodels.Employee, []dbmodels.Achievement, KindStats, error) {
	employee, winStart, winEnd, err := i.resolveParams(employeeID, month)
	if err != nil {
		return dbmodels.Employee{}, nil, nil, err
	}
	achievements, err := i.achievementStore.ListByEmployeeInRange(employeeID, winStart, winEnd)
	if err != nil {
		return dbmodels.Employee{}, nil, nil, err
	}
	return employee, achievements, CountByKind(achievements), nil
}

func (i impl) TopPerformersInRange(start, end time.Time) (TopPerformers, error) {
	employees, err := i.employeeStore.ListAll()
	if err != nil {
		return TopPerformers{}, err
	}
	achievements, err := i.achievementStore.ListInRange(start, end)
	if err != nil {
		return TopPerformers{}, err
	}
	return RankPerformers(employees, achievements), nil
}

func (i impl) resolveParams(employeeID, month string) (employee dbmodels.Employee, winStart, winEnd time.Time, err error) {
	if employeeID == "" {
		return dbmodels.Employee{}, time.Time{}, time.Time{},
			apperrors.New(apperrors.KindValidation, "employee parameter is required")
	}
	winStart, winEnd, err = dateutils.MonthWindow(month)
	if err != nil {
		return dbmodels.Employee{}, time.Time{}, time.Time{}, err
	}
	rec, err := i.employeeStore.GetByID(employeeID)
	if err != nil {
		return dbmodels.Employee{}, time.Time{}, time.Time{}, err
	}
	if rec == nil {
		return dbmodels.Employee{}, time.Time{}, time.Time{},
			apperrors.Newf(apperrors.KindValidation, "employee not found: %v", employeeID)
	}
	return *rec, winStart, winEnd, nil
}
