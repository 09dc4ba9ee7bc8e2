package achievementapimodels

import (
	"time"

	"personnel-backend/lib/utils/apperrors"
	"personnel-backend/lib/utils/dateutils"
	"personnel-backend/models"
	dbmodels "personnel-backend/models/db"
)

type AchievementData struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"` // YYYY-MM-DD
	Kind       string `json:"kind"`
	Notes      string `json:"notes"`
}

func (d AchievementData) Validate() error {
	if d.EmployeeID == "" {
		return apperrors.New(apperrors.KindValidation, "employee reference is required")
	}
	if _, err := time.Parse(dateutils.DayFormat, d.Date); err != nil {
		return apperrors.Newf(apperrors.KindValidation, "invalid date %q, expected YYYY-MM-DD", d.Date)
	}
	if !models.AchievementKind(d.Kind).IsValid() {
		return apperrors.Newf(apperrors.KindValidation, "unknown achievement kind: %v", d.Kind)
	}
	return nil
}

func (d AchievementData) ToModel() dbmodels.Achievement {
	date, _ := time.Parse(dateutils.DayFormat, d.Date)
	return dbmodels.Achievement{
		EmployeeID: d.EmployeeID,
		Date:       date,
		Kind:       models.AchievementKind(d.Kind),
		Notes:      d.Notes,
	}
}

// AchievementUpdate is a partial update, nil fields keep the stored value.
type AchievementUpdate struct {
	Kind  *string `json:"kind"`
	Notes *string `json:"notes"`
}

func (u AchievementUpdate) Validate() error {
	if u.Kind == nil && u.Notes == nil {
		return apperrors.New(apperrors.KindValidation, "nothing to update")
	}
	if u.Kind != nil && !models.AchievementKind(*u.Kind).IsValid() {
		return apperrors.Newf(apperrors.KindValidation, "unknown achievement kind: %v", *u.Kind)
	}
	return nil
}

func (u AchievementUpdate) ToMap() map[string]interface{} {
	updMap := map[string]interface{}{}
	if u.Kind != nil {
		updMap["kind"] = *u.Kind
	}
	if u.Notes != nil {
		updMap["notes"] = *u.Notes
	}
	return updMap
}

type AchievementView struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Kind       string `json:"kind"`
	Notes      string `json:"notes"`
}

func AchievementConvert(rec dbmodels.Achievement) AchievementView {
	return AchievementView{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date.Format(dateutils.DayFormat),
		Kind:       string(rec.Kind),
		Notes:      rec.Notes,
	}
}
