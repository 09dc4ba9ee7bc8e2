package dbmodels

import (
	"time"

	"github.com/pkg/errors"
)

type InventoryItem struct {
	BaseModel
	Name         string     `gorm:"type:varchar(255)"`
	Notes        string     `gorm:"type:text"`
	AssignedToID *string    `gorm:"type:varchar(36);index"`
	AssignedAt   *time.Time `gorm:"type:date"`
}

func (i InventoryItem) IsAssigned() bool {
	return i.AssignedToID != nil && *i.AssignedToID != ""
}

func (i *InventoryItem) Validate() error {
	if i.Name == "" {
		return errors.New("inventory item name is required")
	}
	return nil
}
