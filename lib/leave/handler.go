package leaveprovider

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"personnel-backend/db"
	employeestore "personnel-backend/lib/employee/store"
	"personnel-backend/lib/leave/store"
	"personnel-backend/lib/utils/apperrors"
	initchecker "personnel-backend/lib/utils/init-checker"
	leaveapimodels "personnel-backend/models/api/leave"
	"personnel-backend/models"
	dbmodels "personnel-backend/models/db"
)

// Bulk batches are created with a fixed type/status, one approved annual
// leave per employee.
const (
	bulkLeaveType   = models.LeaveTypeAnnual
	bulkLeaveStatus = models.LeaveStatusApproved
)

type Provider interface {
	Create(request leaveapimodels.LeaveData) (id string, err error)
	CreateBulk(request leaveapimodels.BulkLeaveRequest) (list []leaveapimodels.LeaveView, err error)
	Delete(id string) error
	List() (list []leaveapimodels.LeaveView, err error)
	ListByEmployee(employeeID string) (list []leaveapimodels.LeaveView, err error)
	OnDate(date time.Time) (list []leaveapimodels.LeaveView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:         store.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"employeeStore", instance.employeeStore,
	)
	Instance = instance
}

type impl struct {
	store         store.Provider
	employeeStore employeestore.Provider
}

func (i impl) Create(request leaveapimodels.LeaveData) (id string, err error) {
	exist, err := i.employeeStore.Exists(request.EmployeeID)
	if err != nil {
		return "", err
	}
	if !exist {
		return "", apperrors.Newf(apperrors.KindValidation, "employee not found: %v", request.EmployeeID)
	}
	rec := request.ToModel()
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("employee_id", rec.EmployeeID).
		WithField("rec_id", id).
		Info("leave created")
	return id, nil
}

// CreateBulk fans one leave window out to every employee in the request.
// The batch commits as a whole or not at all.
func (i impl) CreateBulk(request leaveapimodels.BulkLeaveRequest) (list []leaveapimodels.LeaveView, err error) {
	start, end := request.Range()
	batchID := uuid.NewString()
	recs := make([]dbmodels.Leave, 0, len(request.EmployeeIDs))
	for _, employeeID := range request.EmployeeIDs {
		recs = append(recs, dbmodels.Leave{
			EmployeeID: employeeID,
			StartDate:  start,
			EndDate:    end,
			Type:       bulkLeaveType,
			Status:     bulkLeaveStatus,
			Reason:     request.Reason,
			BatchID:    batchID,
		})
	}
	// the store classifies rejected rows as Validation, storage failures pass
	// through and surface as 500
	_, err = i.store.CreateBulk(recs)
	if err != nil {
		return nil, err
	}
	log.
		WithField("batch_id", batchID).
		WithField("employee_count", len(recs)).
		Info("bulk leave created")
	list = make([]leaveapimodels.LeaveView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, leaveapimodels.LeaveConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.New(apperrors.KindNotFound, "leave not found")
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("leave deleted")
	return nil
}

func (i impl) List() (list []leaveapimodels.LeaveView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	return convertList(recList), nil
}

func (i impl) ListByEmployee(employeeID string) (list []leaveapimodels.LeaveView, err error) {
	recList, err := i.store.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	return convertList(recList), nil
}

func (i impl) OnDate(date time.Time) (list []leaveapimodels.LeaveView, err error) {
	recList, err := i.store.OnDate(date)
	if err != nil {
		return nil, err
	}
	return convertList(recList), nil
}

func convertList(recList []dbmodels.Leave) []leaveapimodels.LeaveView {
	list := make([]leaveapimodels.LeaveView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, leaveapimodels.LeaveConvert(rec))
	}
	return list
}
