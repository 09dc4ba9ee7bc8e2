package inventoryapimodels

import (
	"personnel-backend/lib/utils/apperrors"
	"personnel-backend/lib/utils/dateutils"
	dbmodels "personnel-backend/models/db"
)

type InventoryItemData struct {
	Name         string  `json:"name"`
	Notes        string  `json:"notes"`
	AssignedToID *string `json:"assigned_to_id"`
}

func (d InventoryItemData) Validate() error {
	if d.Name == "" {
		return apperrors.New(apperrors.KindValidation, "item name is required")
	}
	return nil
}

type InventoryItemView struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Notes        string  `json:"notes"`
	AssignedToID *string `json:"assigned_to_id,omitempty"`
	AssignedAt   string  `json:"assigned_at,omitempty"`
}

func InventoryItemConvert(rec dbmodels.InventoryItem) InventoryItemView {
	view := InventoryItemView{
		ID:           rec.ID,
		Name:         rec.Name,
		Notes:        rec.Notes,
		AssignedToID: rec.AssignedToID,
	}
	if rec.AssignedAt != nil {
		view.AssignedAt = rec.AssignedAt.Format(dateutils.DayFormat)
	}
	return view
}
