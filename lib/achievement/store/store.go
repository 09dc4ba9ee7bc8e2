package store

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"personnel-backend/lib/utils/dateutils"
	dbmodels "personnel-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Achievement) (id string, err error)
	GetByID(id string) (rec *dbmodels.Achievement, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List() (list []dbmodels.Achievement, err error)
	ListByEmployeeInRange(employeeID string, start, end time.Time) (list []dbmodels.Achievement, err error)
	ListInRange(start, end time.Time) (list []dbmodels.Achievement, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Achievement) (id string, err error) {
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

func (i impl) GetByID(id string) (*dbmodels.Achievement, error) {
	rec := dbmodels.Achievement{}
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Achievement{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Achievement{
		BaseModel: dbmodels.BaseModel{
			ID: id,
		},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List() (list []dbmodels.Achievement, err error) {
	list = []dbmodels.Achievement{}
	err = i.db.
		Order("date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByEmployeeInRange(employeeID string, start, end time.Time) (list []dbmodels.Achievement, err error) {
	list = []dbmodels.Achievement{}
	err = i.db.
		Where("employee_id = ?", employeeID).
		Where("date BETWEEN ? AND ?", dateutils.ToDate(start), dateutils.ToDate(end)).
		Order("date").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListInRange(start, end time.Time) (list []dbmodels.Achievement, err error) {
	list = []dbmodels.Achievement{}
	err = i.db.
		Where("date BETWEEN ? AND ?", dateutils.ToDate(start), dateutils.ToDate(end)).
		Order("date").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
