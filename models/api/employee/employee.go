package employeeapimodels

import (
	"time"

	"personnel-backend/lib/utils/apperrors"
	"personnel-backend/lib/utils/dateutils"
	dbmodels "personnel-backend/models/db"
)

type EmployeeData struct {
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Position        string  `json:"position"`
	Department      string  `json:"department"`
	Salary          float64 `json:"salary"`
	JoinDate        string  `json:"join_date"` // YYYY-MM-DD
	AnnualLeaveDays int     `json:"annual_leave_days"`
}

func (d EmployeeData) Validate() error {
	if d.FirstName == "" {
		return apperrors.New(apperrors.KindValidation, "first name is required")
	}
	if d.LastName == "" {
		return apperrors.New(apperrors.KindValidation, "last name is required")
	}
	if d.JoinDate != "" {
		if _, err := time.Parse(dateutils.DayFormat, d.JoinDate); err != nil {
			return apperrors.Newf(apperrors.KindValidation, "invalid join date %q, expected YYYY-MM-DD", d.JoinDate)
		}
	}
	if d.AnnualLeaveDays < 0 {
		return apperrors.New(apperrors.KindValidation, "annual leave allowance cannot be negative")
	}
	return nil
}

func (d EmployeeData) ToModel() dbmodels.Employee {
	joinDate, _ := time.Parse(dateutils.DayFormat, d.JoinDate)
	return dbmodels.Employee{
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Position:        d.Position,
		Department:      d.Department,
		Salary:          d.Salary,
		JoinDate:        joinDate,
		AnnualLeaveDays: d.AnnualLeaveDays,
	}
}

type EmployeeView struct {
	EmployeeData
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	joinDate := ""
	if !rec.JoinDate.IsZero() {
		joinDate = rec.JoinDate.Format(dateutils.DayFormat)
	}
	return EmployeeView{
		EmployeeData: EmployeeData{
			FirstName:       rec.FirstName,
			LastName:        rec.LastName,
			Position:        rec.Position,
			Department:      rec.Department,
			Salary:          rec.Salary,
			JoinDate:        joinDate,
			AnnualLeaveDays: rec.AnnualLeaveDays,
		},
		ID:       rec.ID,
		FullName: rec.FullName(),
	}
}
