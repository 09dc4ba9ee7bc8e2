package dbmodels

import (
	"time"

	"github.com/pkg/errors"
	"personnel-backend/models"
)

type Leave struct {
	BaseModel
	EmployeeID string             `gorm:"type:varchar(36);index:idx_leave_employee"`
	StartDate  time.Time          `gorm:"type:date;index"`
	EndDate    time.Time          `gorm:"type:date;index"`
	Type       models.LeaveType   `gorm:"type:varchar(50)"`
	Status     models.LeaveStatus `gorm:"type:varchar(50)"`
	Reason     string             `gorm:"type:text"`
	BatchID    string             `gorm:"type:varchar(36);index"`
}

func (l *Leave) Validate() error {
	if l.EmployeeID == "" {
		return errors.New("leave employee reference is required")
	}
	if l.EndDate.Before(l.StartDate) {
		return errors.New("leave end date is before start date")
	}
	if !l.Type.IsValid() {
		return errors.Errorf("unknown leave type: %v", l.Type)
	}
	if !l.Status.IsValid() {
		return errors.Errorf("unknown leave status: %v", l.Status)
	}
	return nil
}
