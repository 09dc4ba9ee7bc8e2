package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "personnel-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Vehicle) (id string, err error)
	GetByID(id string) (rec *dbmodels.Vehicle, err error)
	List() (list []dbmodels.Vehicle, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	IsPlateUnique(plate, selfID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Vehicle) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", err
	}
	err = i.IsPlateUnique(rec.Plate, "")
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

func (i impl) GetByID(id string) (*dbmodels.Vehicle, error) {
	rec := dbmodels.Vehicle{}
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

func (i impl) List() (list []dbmodels.Vehicle, err error) {
	list = []dbmodels.Vehicle{}
	err = i.db.
		Order("plate").
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
	plate, ok := updMap["plate"]
	if ok {
		if err := i.IsPlateUnique(plate.(string), id); err != nil {
			return err
		}
	}
	err := i.db.
		Model(&dbmodels.Vehicle{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Vehicle{
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

func (i impl) IsPlateUnique(plate, selfID string) error {
	var rowCount int64
	tx := i.db.Model(dbmodels.Vehicle{})
	tx.Where("plate = ?", plate)
	if selfID != "" {
		tx.Where("id <> ?", selfID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return errors.Wrap(err, "plate uniqueness check failed")
	}
	if rowCount != 0 {
		return errors.Errorf("vehicle with plate %v already exists", plate)
	}
	return nil
}
