package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "personnel-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employee) (id string, err error)
	GetByID(id string) (rec *dbmodels.Employee, err error)
	List(page, limit int) (list []dbmodels.Employee, rowCount int64, err error)
	ListAll() (list []dbmodels.Employee, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	Exists(id string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) (id string, err error) {
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

func (i impl) GetByID(id string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
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

func (i impl) List(page, limit int) (list []dbmodels.Employee, rowCount int64, err error) {
	list = []dbmodels.Employee{}
	err = i.db.
		Model(&dbmodels.Employee{}).
		Count(&rowCount).
		Error
	if err != nil {
		return nil, 0, err
	}
	err = i.db.
		Order("last_name, first_name").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListAll() (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	err = i.db.
		Order("last_name, first_name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

// Delete loads the row first so the AfterDelete hook sees the employee id and
// can cascade leaves/achievements and release inventory assignments.
func (i impl) Delete(id string) error {
	rec, err := i.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return gorm.ErrRecordNotFound
	}
	err = i.db.
		Delete(rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Exists(id string) (bool, error) {
	var rowCount int64
	err := i.db.
		Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Count(&rowCount).
		Error
	if err != nil {
		return false, err
	}
	return rowCount > 0, nil
}
