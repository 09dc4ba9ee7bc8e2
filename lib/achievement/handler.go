package achievementprovider

import (
	log "github.com/sirupsen/logrus"

	"personnel-backend/db"
	"personnel-backend/lib/achievement/store"
	employeestore "personnel-backend/lib/employee/store"
	"personnel-backend/lib/utils/apperrors"
	"personnel-backend/lib/utils/dateutils"
	initchecker "personnel-backend/lib/utils/init-checker"
	achievementapimodels "personnel-backend/models/api/achievement"
	dbmodels "personnel-backend/models/db"
)

type Provider interface {
	Create(request achievementapimodels.AchievementData) (id string, err error)
	Update(id string, request achievementapimodels.AchievementUpdate) (item achievementapimodels.AchievementView, err error)
	Delete(id string) error
	List() (list []achievementapimodels.AchievementView, err error)
	ListByEmployeeInRange(employeeID, month string) (list []achievementapimodels.AchievementView, err error)
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

func (i impl) Create(request achievementapimodels.AchievementData) (id string, err error) {
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
		WithField("kind", rec.Kind).
		WithField("rec_id", id).
		Info("achievement created")
	return id, nil
}

func (i impl) Update(id string, request achievementapimodels.AchievementUpdate) (achievementapimodels.AchievementView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return achievementapimodels.AchievementView{}, err
	}
	if rec == nil {
		return achievementapimodels.AchievementView{}, apperrors.New(apperrors.KindNotFound, "achievement not found")
	}
	err = i.store.Update(id, request.ToMap())
	if err != nil {
		return achievementapimodels.AchievementView{}, err
	}
	updated, err := i.store.GetByID(id)
	if err != nil {
		return achievementapimodels.AchievementView{}, err
	}
	log.WithField("rec_id", id).Info("achievement updated")
	return achievementapimodels.AchievementConvert(*updated), nil
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.New(apperrors.KindNotFound, "achievement not found")
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("achievement deleted")
	return nil
}

func (i impl) List() (list []achievementapimodels.AchievementView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	return convertList(recList), nil
}

func (i impl) ListByEmployeeInRange(employeeID, month string) (list []achievementapimodels.AchievementView, err error) {
	winStart, winEnd, err := dateutils.MonthWindow(month)
	if err != nil {
		return nil, err
	}
	recList, err := i.store.ListByEmployeeInRange(employeeID, winStart, winEnd)
	if err != nil {
		return nil, err
	}
	return convertList(recList), nil
}

func convertList(recList []dbmodels.Achievement) []achievementapimodels.AchievementView {
	list := make([]achievementapimodels.AchievementView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, achievementapimodels.AchievementConvert(rec))
	}
	return list
}
