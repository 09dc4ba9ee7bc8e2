package employeeprovider

import (
	log "github.com/sirupsen/logrus"

	"personnel-backend/db"
	"personnel-backend/lib/employee/store"
	"personnel-backend/lib/utils/apperrors"
	initchecker "personnel-backend/lib/utils/init-checker"
	employeeapimodels "personnel-backend/models/api/employee"
)

type Provider interface {
	Create(request employeeapimodels.EmployeeData) (id string, err error)
	Update(id string, request employeeapimodels.EmployeeData) error
	Get(id string) (item employeeapimodels.EmployeeView, err error)
	List(page, limit int) (list []employeeapimodels.EmployeeView, rowCount int64, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
}

func (i impl) Create(request employeeapimodels.EmployeeData) (id string, err error) {
	rec := request.ToModel()
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("employee_name", rec.FullName()).
		WithField("rec_id", id).
		Info("employee created")
	return id, nil
}

func (i impl) Update(id string, request employeeapimodels.EmployeeData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.New(apperrors.KindNotFound, "employee not found")
	}
	data := request.ToModel()
	updMap := map[string]interface{}{
		"first_name":        data.FirstName,
		"last_name":         data.LastName,
		"position":          data.Position,
		"department":        data.Department,
		"salary":            data.Salary,
		"join_date":         data.JoinDate,
		"annual_leave_days": data.AnnualLeaveDays,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("employee updated")
	return nil
}

func (i impl) Get(id string) (employeeapimodels.EmployeeView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	if rec == nil {
		return employeeapimodels.EmployeeView{}, apperrors.New(apperrors.KindNotFound, "employee not found")
	}
	return employeeapimodels.EmployeeConvert(*rec), nil
}

func (i impl) List(page, limit int) (list []employeeapimodels.EmployeeView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(page, limit)
	if err != nil {
		return nil, 0, err
	}
	list = make([]employeeapimodels.EmployeeView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, employeeapimodels.EmployeeConvert(rec))
	}
	return list, rowCount, nil
}

// Delete removes the employee, its leave and achievement rows go with it and
// assigned inventory items are released (model hook).
func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.New(apperrors.KindNotFound, "employee not found")
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("employee deleted")
	return nil
}
