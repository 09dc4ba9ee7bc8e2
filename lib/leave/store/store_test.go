package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"personnel-backend/lib/utils/apperrors"
	"personnel-backend/lib/utils/dateutils"
	"personnel-backend/models"
	dbmodels "personnel-backend/models/db"
)

func testDay(value string) time.Time {
	t, err := time.Parse(dateutils.DayFormat, value)
	if err != nil {
		panic(err)
	}
	return t
}

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
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedEmployee(t *testing.T, db *gorm.DB, id, lastName string) {
	rec := dbmodels.Employee{
		BaseModel: dbmodels.BaseModel{ID: id},
		FirstName: "Test",
		LastName:  lastName,
	}
	require.NoError(t, db.Create(&rec).Error)
}

func bulkRec(employeeID, batchID string) dbmodels.Leave {
	return dbmodels.Leave{
		BaseModel:  dbmodels.BaseModel{ID: uuid.NewString()},
		EmployeeID: employeeID,
		StartDate:  testDay("2026-07-01"),
		EndDate:    testDay("2026-07-14"),
		Type:       models.LeaveTypeAnnual,
		Status:     models.LeaveStatusApproved,
		BatchID:    batchID,
	}
}

func leaveCount(t *testing.T, db *gorm.DB) int64 {
	var count int64
	require.NoError(t, db.Model(&dbmodels.Leave{}).Count(&count).Error)
	return count
}

func TestCreateBulkCommitsWholeBatch(t *testing.T) {
	db := openTestDB(t)
	seedEmployee(t, db, "e1", "Orlova")
	seedEmployee(t, db, "e2", "Petrov")
	provider := NewInstance(db)

	batchID := uuid.NewString()
	ids, err := provider.CreateBulk([]dbmodels.Leave{
		bulkRec("e1", batchID),
		bulkRec("e2", batchID),
	})
	require.NoError(t, err)
	require.Len(t, ids, 2)
	require.EqualValues(t, 2, leaveCount(t, db))

	list, err := provider.ListByEmployee("e2")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, batchID, list[0].BatchID)
}

func TestCreateBulkRollsBackOnUnknownEmployee(t *testing.T) {
	db := openTestDB(t)
	seedEmployee(t, db, "e1", "Orlova")
	provider := NewInstance(db)

	batchID := uuid.NewString()
	_, err := provider.CreateBulk([]dbmodels.Leave{
		bulkRec("e1", batchID),
		bulkRec("ghost", batchID),
	})
	require.Error(t, err)
	require.True(t, apperrors.IsValidation(err))
	require.EqualValues(t, 0, leaveCount(t, db), "valid rows must not survive a rejected batch")
}

func TestCreateBulkRollsBackOnInvalidRow(t *testing.T) {
	db := openTestDB(t)
	seedEmployee(t, db, "e1", "Orlova")
	provider := NewInstance(db)

	bad := bulkRec("e1", uuid.NewString())
	bad.Type = "HOLIDAY"
	_, err := provider.CreateBulk([]dbmodels.Leave{
		bulkRec("e1", uuid.NewString()),
		bad,
	})
	require.Error(t, err)
	require.True(t, apperrors.IsValidation(err))
	require.EqualValues(t, 0, leaveCount(t, db))
}
