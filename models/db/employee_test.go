package dbmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"personnel-backend/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	ddl := []string{
		`CREATE TABLE employees (
			id text primary key,
			created_at datetime, updated_at datetime,
			first_name text, last_name text, position text, department text,
			salary real, join_date datetime, annual_leave_days integer)`,
		`CREATE TABLE leaves (
			id text primary key,
			created_at datetime, updated_at datetime,
			employee_id text, start_date datetime, end_date datetime,
			type text, status text, reason text, batch_id text)`,
		`CREATE TABLE achievements (
			id text primary key,
			created_at datetime, updated_at datetime,
			employee_id text, date datetime, kind text, notes text)`,
		`CREATE TABLE inventory_items (
			id text primary key,
			created_at datetime, updated_at datetime,
			name text, notes text, assigned_to_id text, assigned_at datetime)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func TestEmployeeAfterDelete(t *testing.T) {
	db := openTestDB(t)
	employeeID := "e1"
	otherID := "e2"
	for _, rec := range []Employee{
		{BaseModel: BaseModel{ID: employeeID}, FirstName: "Anna", LastName: "Orlova"},
		{BaseModel: BaseModel{ID: otherID}, FirstName: "Ivan", LastName: "Petrov"},
	} {
		require.NoError(t, db.Create(&rec).Error)
	}
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	for idx, owner := range []string{employeeID, employeeID, otherID} {
		rec := Leave{
			BaseModel:  BaseModel{ID: string(rune('a' + idx))},
			EmployeeID: owner,
			StartDate:  day,
			EndDate:    day,
			Type:       models.LeaveTypeAnnual,
			Status:     models.LeaveStatusApproved,
		}
		require.NoError(t, db.Create(&rec).Error)
	}
	achievement := Achievement{
		BaseModel:  BaseModel{ID: "ach1"},
		EmployeeID: employeeID,
		Date:       day,
		Kind:       models.AchievementKindStar,
	}
	require.NoError(t, db.Create(&achievement).Error)
	assigned := InventoryItem{
		BaseModel:    BaseModel{ID: "item1"},
		Name:         "Laptop",
		AssignedToID: &employeeID,
		AssignedAt:   &day,
	}
	require.NoError(t, db.Create(&assigned).Error)
	loose := InventoryItem{
		BaseModel: BaseModel{ID: "item2"},
		Name:      "Charger",
	}
	require.NoError(t, db.Create(&loose).Error)

	require.NoError(t, db.Delete(&Employee{BaseModel: BaseModel{ID: employeeID}}).Error)

	t.Run("leaves and achievements follow the employee", func(t *testing.T) {
		var count int64
		require.NoError(t, db.Model(&Leave{}).Where("employee_id = ?", employeeID).Count(&count).Error)
		require.EqualValues(t, 0, count)
		require.NoError(t, db.Model(&Achievement{}).Where("employee_id = ?", employeeID).Count(&count).Error)
		require.EqualValues(t, 0, count)
	})

	t.Run("other employees keep their records", func(t *testing.T) {
		var count int64
		require.NoError(t, db.Model(&Leave{}).Where("employee_id = ?", otherID).Count(&count).Error)
		require.EqualValues(t, 1, count)
	})

	t.Run("assigned inventory is released, not deleted", func(t *testing.T) {
		var item InventoryItem
		require.NoError(t, db.First(&item, "id = ?", "item1").Error)
		require.Equal(t, "Laptop", item.Name)
		require.False(t, item.IsAssigned())
		require.Nil(t, item.AssignedAt)
	})

	t.Run("unassigned inventory is untouched", func(t *testing.T) {
		var item InventoryItem
		require.NoError(t, db.First(&item, "id = ?", "item2").Error)
		require.False(t, item.IsAssigned())
	})
}
