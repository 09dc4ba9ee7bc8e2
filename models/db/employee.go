package dbmodels

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Employee struct {
	BaseModel
	FirstName       string    `gorm:"type:varchar(255)"`
	LastName        string    `gorm:"type:varchar(255)"`
	Position        string    `gorm:"type:varchar(255)"`
	Department      string    `gorm:"type:varchar(255)"`
	Salary          float64   `gorm:"type:decimal(12,2)"`
	JoinDate        time.Time `gorm:"type:date"`
	AnnualLeaveDays int
}

func (e Employee) FullName() string {
	return fmt.Sprintf("%v %v", e.FirstName, e.LastName)
}

// AfterDelete removes the employee's leaves and achievements and releases
// assigned inventory items back to the pool (items survive, assignment does not).
func (e *Employee) AfterDelete(tx *gorm.DB) (err error) {
	if e.ID == "" {
		return nil
	}
	if err = tx.Where("employee_id = ?", e.ID).Delete(&Leave{}).Error; err != nil {
		return err
	}
	if err = tx.Where("employee_id = ?", e.ID).Delete(&Achievement{}).Error; err != nil {
		return err
	}
	err = tx.Model(&InventoryItem{}).
		Where("assigned_to_id = ?", e.ID).
		Updates(map[string]interface{}{
			"assigned_to_id": nil,
			"assigned_at":    nil,
		}).Error
	return err
}

func (e *Employee) Validate() error {
	if e.FirstName == "" {
		return errors.New("employee first name is required")
	}
	if e.LastName == "" {
		return errors.New("employee last name is required")
	}
	return nil
}
