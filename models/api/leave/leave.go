package leaveapimodels

import (
	"time"

	"personnel-backend/lib/utils/apperrors"
	"personnel-backend/lib/utils/dateutils"
	"personnel-backend/models"
	dbmodels "personnel-backend/models/db"
)

type LeaveData struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`   // YYYY-MM-DD
	Type       string `json:"type"`
	Status     string `json:"status"`
	Reason     string `json:"reason"`
}

func (d LeaveData) Validate() error {
	if d.EmployeeID == "" {
		return apperrors.New(apperrors.KindValidation, "employee reference is required")
	}
	start, end, err := parseRange(d.StartDate, d.EndDate)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return apperrors.New(apperrors.KindValidation, "end date is before start date")
	}
	if !models.LeaveType(d.Type).IsValid() {
		return apperrors.Newf(apperrors.KindValidation, "unknown leave type: %v", d.Type)
	}
	if !models.LeaveStatus(d.Status).IsValid() {
		return apperrors.Newf(apperrors.KindValidation, "unknown leave status: %v", d.Status)
	}
	return nil
}

func (d LeaveData) ToModel() dbmodels.Leave {
	start, _ := time.Parse(dateutils.DayFormat, d.StartDate)
	end, _ := time.Parse(dateutils.DayFormat, d.EndDate)
	return dbmodels.Leave{
		EmployeeID: d.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		Type:       models.LeaveType(d.Type),
		Status:     models.LeaveStatus(d.Status),
		Reason:     d.Reason,
	}
}

type BulkLeaveRequest struct {
	EmployeeIDs []string `json:"employeeIds"`
	StartDate   string   `json:"startDate"` // YYYY-MM-DD
	EndDate     string   `json:"endDate"`   // YYYY-MM-DD
	Reason      string   `json:"reason"`
}

func (r BulkLeaveRequest) Validate() error {
	if len(r.EmployeeIDs) == 0 {
		return apperrors.New(apperrors.KindValidation, "employee list is empty")
	}
	start, end, err := parseRange(r.StartDate, r.EndDate)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return apperrors.New(apperrors.KindValidation, "end date is before start date")
	}
	return nil
}

func (r BulkLeaveRequest) Range() (start, end time.Time) {
	start, _ = time.Parse(dateutils.DayFormat, r.StartDate)
	end, _ = time.Parse(dateutils.DayFormat, r.EndDate)
	return start, end
}

type LeaveView struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	Reason     string `json:"reason"`
	BatchID    string `json:"batch_id,omitempty"`
	Days       int    `json:"days"`
}

func LeaveConvert(rec dbmodels.Leave) LeaveView {
	days, _ := dateutils.DaysBetweenInclusive(rec.StartDate, rec.EndDate)
	return LeaveView{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		StartDate:  rec.StartDate.Format(dateutils.DayFormat),
		EndDate:    rec.EndDate.Format(dateutils.DayFormat),
		Type:       string(rec.Type),
		Status:     string(rec.Status),
		Reason:     rec.Reason,
		BatchID:    rec.BatchID,
		Days:       days,
	}
}

func parseRange(startStr, endStr string) (start, end time.Time, err error) {
	start, err = time.Parse(dateutils.DayFormat, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.Newf(apperrors.KindValidation, "invalid start date %q, expected YYYY-MM-DD", startStr)
	}
	end, err = time.Parse(dateutils.DayFormat, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.Newf(apperrors.KindValidation, "invalid end date %q, expected YYYY-MM-DD", endStr)
	}
	return start, end, nil
}
