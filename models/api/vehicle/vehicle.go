package vehicleapimodels

import (
	"time"

	"personnel-backend/lib/utils/apperrors"
	"personnel-backend/lib/utils/dateutils"
	dbmodels "personnel-backend/models/db"
)

type VehicleData struct {
	Name           string `json:"name"`
	Plate          string `json:"plate"`
	Mileage        int64  `json:"mileage"`
	InspectionDate string `json:"inspection_date"` // YYYY-MM-DD
	Notes          string `json:"notes"`
}

func (d VehicleData) Validate() error {
	if d.Name == "" {
		return apperrors.New(apperrors.KindValidation, "vehicle name is required")
	}
	if d.Plate == "" {
		return apperrors.New(apperrors.KindValidation, "vehicle plate is required")
	}
	if _, err := time.Parse(dateutils.DayFormat, d.InspectionDate); err != nil {
		return apperrors.Newf(apperrors.KindValidation, "invalid inspection date %q, expected YYYY-MM-DD", d.InspectionDate)
	}
	if d.Mileage < 0 {
		return apperrors.New(apperrors.KindValidation, "mileage cannot be negative")
	}
	return nil
}

func (d VehicleData) ToModel() dbmodels.Vehicle {
	inspectionDate, _ := time.Parse(dateutils.DayFormat, d.InspectionDate)
	return dbmodels.Vehicle{
		Name:           d.Name,
		Plate:          d.Plate,
		Mileage:        d.Mileage,
		InspectionDate: inspectionDate,
		Notes:          d.Notes,
	}
}

type VehicleView struct {
	VehicleData
	ID string `json:"id"`
}

func VehicleConvert(rec dbmodels.Vehicle) VehicleView {
	return VehicleView{
		VehicleData: VehicleData{
			Name:           rec.Name,
			Plate:          rec.Plate,
			Mileage:        rec.Mileage,
			InspectionDate: rec.InspectionDate.Format(dateutils.DayFormat),
			Notes:          rec.Notes,
		},
		ID: rec.ID,
	}
}

type TestMailRequest struct {
	To string `json:"to"`
}

func (r TestMailRequest) Validate() error {
	if r.To == "" {
		return apperrors.New(apperrors.KindValidation, "recipient address is required")
	}
	return nil
}
