package inventoryprovider

import (
	"time"

	log "github.com/sirupsen/logrus"

	"personnel-backend/db"
	employeestore "personnel-backend/lib/employee/store"
	"personnel-backend/lib/inventory/store"
	"personnel-backend/lib/utils/apperrors"
	"personnel-backend/lib/utils/dateutils"
	initchecker "personnel-backend/lib/utils/init-checker"
	inventoryapimodels "personnel-backend/models/api/inventory"
	dbmodels "personnel-backend/models/db"
)

type Provider interface {
	Create(request inventoryapimodels.InventoryItemData) (id string, err error)
	Update(id string, request inventoryapimodels.InventoryItemData) error
	Get(id string) (item inventoryapimodels.InventoryItemView, err error)
	List() (list []inventoryapimodels.InventoryItemView, err error)
	Delete(id string) error
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

func (i impl) Create(request inventoryapimodels.InventoryItemData) (id string, err error) {
	rec := dbmodels.InventoryItem{
		Name:  request.Name,
		Notes: request.Notes,
	}
	if request.AssignedToID != nil && *request.AssignedToID != "" {
		if err = i.checkEmployee(*request.AssignedToID); err != nil {
			return "", err
		}
		now := dateutils.ToDate(time.Now())
		rec.AssignedToID = request.AssignedToID
		rec.AssignedAt = &now
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("item_name", rec.Name).
		WithField("rec_id", id).
		Info("inventory item created")
	return id, nil
}

func (i impl) Update(id string, request inventoryapimodels.InventoryItemData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.New(apperrors.KindNotFound, "inventory item not found")
	}
	updMap := map[string]interface{}{
		"name":  request.Name,
		"notes": request.Notes,
	}
	if request.AssignedToID == nil || *request.AssignedToID == "" {
		updMap["assigned_to_id"] = nil
		updMap["assigned_at"] = nil
	} else {
		if err = i.checkEmployee(*request.AssignedToID); err != nil {
			return err
		}
		updMap["assigned_to_id"] = *request.AssignedToID
		// assignment date only moves when the item changes hands
		if rec.AssignedToID == nil || *rec.AssignedToID != *request.AssignedToID {
			updMap["assigned_at"] = dateutils.ToDate(time.Now())
		}
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("inventory item updated")
	return nil
}

func (i impl) Get(id string) (inventoryapimodels.InventoryItemView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return inventoryapimodels.InventoryItemView{}, err
	}
	if rec == nil {
		return inventoryapimodels.InventoryItemView{}, apperrors.New(apperrors.KindNotFound, "inventory item not found")
	}
	return inventoryapimodels.InventoryItemConvert(*rec), nil
}

func (i impl) List() (list []inventoryapimodels.InventoryItemView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]inventoryapimodels.InventoryItemView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, inventoryapimodels.InventoryItemConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.New(apperrors.KindNotFound, "inventory item not found")
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("inventory item deleted")
	return nil
}

func (i impl) checkEmployee(employeeID string) error {
	exist, err := i.employeeStore.Exists(employeeID)
	if err != nil {
		return err
	}
	if !exist {
		return apperrors.Newf(apperrors.KindValidation, "employee not found: %v", employeeID)
	}
	return nil
}
