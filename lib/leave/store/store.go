package store

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"personnel-backend/lib/utils/apperrors"
	"personnel-backend/lib/utils/dateutils"
	dbmodels "personnel-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Leave) (id string, err error)
	CreateBulk(recs []dbmodels.Leave) (ids []string, err error)
	GetByID(id string) (rec *dbmodels.Leave, err error)
	Delete(id string) error
	List() (list []dbmodels.Leave, err error)
	ListByEmployee(employeeID string) (list []dbmodels.Leave, err error)
	OnDate(date time.Time) (list []dbmodels.Leave, err error)
	OverlappingMonth(employeeID string, winStart, winEnd time.Time) (list []dbmodels.Leave, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Leave) (id string, err error) {
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

// CreateBulk inserts the whole batch inside one transaction. A failure on any
// row (including a dangling employee reference) rolls back every insert.
// Rejected rows come back as Validation errors, storage failures stay plain.
func (i impl) CreateBulk(recs []dbmodels.Leave) (ids []string, err error) {
	ids = make([]string, 0, len(recs))
	err = i.db.Transaction(func(tx *gorm.DB) error {
		for idx := range recs {
			rec := &recs[idx]
			if err := rec.Validate(); err != nil {
				return apperrors.Wrap(apperrors.KindValidation, err, "bulk leave rejected")
			}
			var rowCount int64
			if err := tx.Model(&dbmodels.Employee{}).
				Where("id = ?", rec.EmployeeID).
				Count(&rowCount).
				Error; err != nil {
				return err
			}
			if rowCount == 0 {
				return apperrors.Newf(apperrors.KindValidation, "bulk leave rejected, employee not found: %v", rec.EmployeeID)
			}
			if err := tx.Create(rec).Error; err != nil {
				return err
			}
			ids = append(ids, rec.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (i impl) GetByID(id string) (*dbmodels.Leave, error) {
	rec := dbmodels.Leave{}
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

func (i impl) Delete(id string) error {
	rec := dbmodels.Leave{
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

func (i impl) List() (list []dbmodels.Leave, err error) {
	list = []dbmodels.Leave{}
	err = i.db.
		Order("start_date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByEmployee(employeeID string) (list []dbmodels.Leave, err error) {
	list = []dbmodels.Leave{}
	err = i.db.
		Where("employee_id = ?", employeeID).
		Order("start_date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) OnDate(date time.Time) (list []dbmodels.Leave, err error) {
	day := dateutils.ToDate(date)
	list = []dbmodels.Leave{}
	err = i.db.
		Where("start_date <= ?", day).
		Where("end_date >= ?", day).
		Order("start_date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// OverlappingMonth selects leaves with either endpoint inside the window.
// This matches the monthly report rule, a leave spanning the whole window
// with both endpoints outside it is not selected.
func (i impl) OverlappingMonth(employeeID string, winStart, winEnd time.Time) (list []dbmodels.Leave, err error) {
	list = []dbmodels.Leave{}
	err = i.db.
		Where("employee_id = ?", employeeID).
		Where("(start_date BETWEEN ? AND ?) OR (end_date BETWEEN ? AND ?)",
			dateutils.ToDate(winStart), dateutils.ToDate(winEnd),
			dateutils.ToDate(winStart), dateutils.ToDate(winEnd)).
		Order("start_date").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
