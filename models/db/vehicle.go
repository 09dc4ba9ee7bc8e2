package dbmodels

import (
	"time"

	"github.com/pkg/errors"
)

type Vehicle struct {
	BaseModel
	Name           string    `gorm:"type:varchar(255)"`
	Plate          string    `gorm:"type:varchar(32);uniqueIndex"`
	Mileage        int64
	InspectionDate time.Time `gorm:"type:date"`
	Notes          string    `gorm:"type:text"`
}

func (v *Vehicle) Validate() error {
	if v.Name == "" {
		return errors.New("vehicle name is required")
	}
	if v.Plate == "" {
		return errors.New("vehicle plate is required")
	}
	if v.InspectionDate.IsZero() {
		return errors.New("vehicle inspection date is required")
	}
	return nil
}
