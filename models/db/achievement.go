package dbmodels

import (
	"time"

	"github.com/pkg/errors"
	"personnel-backend/models"
)

// Achievement is a per-employee daily marker. The schema deliberately does not
// enforce (employee, date) uniqueness, duplicate same-day records are allowed.
type Achievement struct {
	BaseModel
	EmployeeID string                 `gorm:"type:varchar(36);index:idx_achievement_employee"`
	Date       time.Time              `gorm:"type:date;index"`
	Kind       models.AchievementKind `gorm:"type:varchar(50)"`
	Notes      string                 `gorm:"type:text"`
}

func (a *Achievement) Validate() error {
	if a.EmployeeID == "" {
		return errors.New("achievement employee reference is required")
	}
	if a.Date.IsZero() {
		return errors.New("achievement date is required")
	}
	if !a.Kind.IsValid() {
		return errors.Errorf("unknown achievement kind: %v", a.Kind)
	}
	return nil
}
