package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "personnel-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (id string, err error)
	GetAdmin() (rec *dbmodels.User, err error)
	GetByID(id string) (rec *dbmodels.User, err error)
	Count() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", err
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// GetAdmin returns the single admin account, nil when the table is empty.
func (i impl) GetAdmin() (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Order("created_at").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByID(id string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Count() (int64, error) {
	var rowCount int64
	err := i.db.
		Model(&dbmodels.User{}).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}
