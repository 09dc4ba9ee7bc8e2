package vehicleprovider

import (
	log "github.com/sirupsen/logrus"

	"personnel-backend/db"
	"personnel-backend/lib/utils/apperrors"
	initchecker "personnel-backend/lib/utils/init-checker"
	"personnel-backend/lib/vehicle/store"
	vehicleapimodels "personnel-backend/models/api/vehicle"
)

type Provider interface {
	Create(request vehicleapimodels.VehicleData) (id string, err error)
	Update(id string, request vehicleapimodels.VehicleData) error
	Get(id string) (item vehicleapimodels.VehicleView, err error)
	List() (list []vehicleapimodels.VehicleView, err error)
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

func (i impl) Create(request vehicleapimodels.VehicleData) (id string, err error) {
	rec := request.ToModel()
	if err = i.store.IsPlateUnique(rec.Plate, ""); err != nil {
		return "", apperrors.Wrap(apperrors.KindValidation, err, "vehicle rejected")
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("plate", rec.Plate).
		WithField("rec_id", id).
		Info("vehicle created")
	return id, nil
}

func (i impl) Update(id string, request vehicleapimodels.VehicleData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.New(apperrors.KindNotFound, "vehicle not found")
	}
	if err = i.store.IsPlateUnique(request.Plate, id); err != nil {
		return apperrors.Wrap(apperrors.KindValidation, err, "vehicle rejected")
	}
	data := request.ToModel()
	updMap := map[string]interface{}{
		"name":            data.Name,
		"plate":           data.Plate,
		"mileage":         data.Mileage,
		"inspection_date": data.InspectionDate,
		"notes":           data.Notes,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("vehicle updated")
	return nil
}

func (i impl) Get(id string) (vehicleapimodels.VehicleView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return vehicleapimodels.VehicleView{}, err
	}
	if rec == nil {
		return vehicleapimodels.VehicleView{}, apperrors.New(apperrors.KindNotFound, "vehicle not found")
	}
	return vehicleapimodels.VehicleConvert(*rec), nil
}

func (i impl) List() (list []vehicleapimodels.VehicleView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]vehicleapimodels.VehicleView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, vehicleapimodels.VehicleConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.New(apperrors.KindNotFound, "vehicle not found")
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("vehicle deleted")
	return nil
}
