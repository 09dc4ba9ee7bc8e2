package leaveprovider

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"personnel-backend/lib/utils/apperrors"
	"personnel-backend/lib/utils/dateutils"
	"personnel-backend/models"
	leaveapimodels "personnel-backend/models/api/leave"
	dbmodels "personnel-backend/models/db"
)

type fakeLeaveStore struct {
	bulk    []dbmodels.Leave
	bulkErr error
}

func (f *fakeLeaveStore) Create(rec dbmodels.Leave) (string, error) { return "", nil }

func (f *fakeLeaveStore) CreateBulk(recs []dbmodels.Leave) ([]string, error) {
	if f.bulkErr != nil {
		return nil, f.bulkErr
	}
	f.bulk = recs
	ids := make([]string, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.EmployeeID)
	}
	return ids, nil
}

func (f *fakeLeaveStore) GetByID(id string) (*dbmodels.Leave, error) { return nil, nil }

func (f *fakeLeaveStore) Delete(id string) error { return nil }

func (f *fakeLeaveStore) List() ([]dbmodels.Leave, error) { return nil, nil }

func (f *fakeLeaveStore) ListByEmployee(employeeID string) ([]dbmodels.Leave, error) {
	return nil, nil
}

func (f *fakeLeaveStore) OnDate(date time.Time) ([]dbmodels.Leave, error) { return nil, nil }

func (f *fakeLeaveStore) OverlappingMonth(employeeID string, winStart, winEnd time.Time) ([]dbmodels.Leave, error) {
	return nil, nil
}

func day(value string) time.Time {
	t, err := time.Parse(dateutils.DayFormat, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCreateBulkFanOut(t *testing.T) {
	store := &fakeLeaveStore{}
	handler := impl{store: store}
	request := leaveapimodels.BulkLeaveRequest{
		EmployeeIDs: []string{"e1", "e2", "e3"},
		StartDate:   "2026-07-01",
		EndDate:     "2026-07-14",
		Reason:      "summer shutdown",
	}

	list, err := handler.CreateBulk(request)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Len(t, store.bulk, 3)

	t.Run("one approved annual leave per employee", func(t *testing.T) {
		for idx, rec := range store.bulk {
			require.Equal(t, request.EmployeeIDs[idx], rec.EmployeeID)
			require.Equal(t, models.LeaveTypeAnnual, rec.Type)
			require.Equal(t, models.LeaveStatusApproved, rec.Status)
			require.Equal(t, day("2026-07-01"), rec.StartDate)
			require.Equal(t, day("2026-07-14"), rec.EndDate)
			require.Equal(t, "summer shutdown", rec.Reason)
		}
	})

	t.Run("rows share one batch id", func(t *testing.T) {
		batchID := store.bulk[0].BatchID
		require.NotEmpty(t, batchID)
		for _, rec := range store.bulk {
			require.Equal(t, batchID, rec.BatchID)
		}
		for _, view := range list {
			require.Equal(t, batchID, view.BatchID)
		}
	})

	t.Run("views carry the inclusive day count", func(t *testing.T) {
		for _, view := range list {
			require.Equal(t, 14, view.Days)
		}
	})
}

func TestCreateBulkErrorClassification(t *testing.T) {
	request := leaveapimodels.BulkLeaveRequest{
		EmployeeIDs: []string{"e1", "ghost"},
		StartDate:   "2026-07-01",
		EndDate:     "2026-07-05",
	}

	t.Run("rejected batch surfaces as validation", func(t *testing.T) {
		store := &fakeLeaveStore{
			bulkErr: apperrors.New(apperrors.KindValidation, "bulk leave rejected, employee not found: ghost"),
		}
		handler := impl{store: store}
		_, err := handler.CreateBulk(request)
		require.Error(t, err)
		require.True(t, apperrors.IsValidation(err))
	})

	t.Run("storage failure stays internal", func(t *testing.T) {
		store := &fakeLeaveStore{
			bulkErr: errors.New("connection reset"),
		}
		handler := impl{store: store}
		_, err := handler.CreateBulk(request)
		require.Error(t, err)
		require.False(t, apperrors.IsValidation(err))
		require.Equal(t, 500, apperrors.StatusCode(err))
	})
}
