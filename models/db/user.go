package dbmodels

import (
	"github.com/pkg/errors"
	"personnel-backend/models"
)

type User struct {
	BaseModel
	Name         string          `gorm:"type:varchar(255)"`
	Email        string          `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash string          `gorm:"type:varchar(255)"`
	Role         models.UserRole `gorm:"type:varchar(50)"`
}

func (u *User) Validate() error {
	if u.Name == "" {
		return errors.New("user name is required")
	}
	if u.PasswordHash == "" {
		return errors.New("user password hash is required")
	}
	return nil
}
