package inspectionworker

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"personnel-backend/lib/utils/dateutils"
	dbmodels "personnel-backend/models/db"
)

type fakeMail struct {
	sent []string
	fail bool
}

func (f *fakeMail) SendEMail(to, subject, message string) error {
	if f.fail {
		return errors.New("smtp unreachable")
	}
	f.sent = append(f.sent, subject)
	return nil
}

type fakeVehicleStore struct {
	list []dbmodels.Vehicle
}

func (f *fakeVehicleStore) Create(rec dbmodels.Vehicle) (string, error) { return "", nil }

func (f *fakeVehicleStore) GetByID(id string) (*dbmodels.Vehicle, error) { return nil, nil }

func (f *fakeVehicleStore) List() ([]dbmodels.Vehicle, error) { return f.list, nil }

func (f *fakeVehicleStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f *fakeVehicleStore) Delete(id string) error { return nil }

func (f *fakeVehicleStore) IsPlateUnique(plate, selfID string) error { return nil }

func day(value string) time.Time {
	t, err := time.Parse(dateutils.DayFormat, value)
	if err != nil {
		panic(err)
	}
	return t
}

func vehicle(plate string, inspection string) dbmodels.Vehicle {
	return dbmodels.Vehicle{
		Name:           "Van",
		Plate:          plate,
		InspectionDate: day(inspection),
	}
}

func TestCheckVehicle(t *testing.T) {
	today := day("2025-06-01")

	t.Run(`fires at exactly 10 days`, func(t *testing.T) {
		mail := &fakeMail{}
		w := impl{mail: mail, mailTo: "fleet@example.com"}
		w.checkVehicle(vehicle("34 AB 123", "2025-06-11"), today)
		require.Len(t, mail.sent, 1)
	})

	t.Run(`fires at 20 and 3 days`, func(t *testing.T) {
		mail := &fakeMail{}
		w := impl{mail: mail, mailTo: "fleet@example.com"}
		w.checkVehicle(vehicle("34 AB 123", "2025-06-21"), today)
		w.checkVehicle(vehicle("34 AB 124", "2025-06-04"), today)
		require.Len(t, mail.sent, 2)
	})

	t.Run(`silent at 11 and 9 days`, func(t *testing.T) {
		mail := &fakeMail{}
		w := impl{mail: mail, mailTo: "fleet@example.com"}
		w.checkVehicle(vehicle("34 AB 123", "2025-06-12"), today)
		w.checkVehicle(vehicle("34 AB 124", "2025-06-10"), today)
		require.Len(t, mail.sent, 0)
	})

	t.Run(`silent when overdue`, func(t *testing.T) {
		mail := &fakeMail{}
		w := impl{mail: mail, mailTo: "fleet@example.com"}
		w.checkVehicle(vehicle("34 AB 123", "2025-05-20"), today)
		require.Len(t, mail.sent, 0)
	})
}

func TestJobToleratesSendFailures(t *testing.T) {
	store := &fakeVehicleStore{
		list: []dbmodels.Vehicle{
			vehicle("34 AB 123", time.Now().AddDate(0, 0, 10).Format(dateutils.DayFormat)),
			vehicle("34 AB 124", time.Now().AddDate(0, 0, 3).Format(dateutils.DayFormat)),
		},
	}
	mail := &fakeMail{fail: true}
	w := impl{store: store, mail: mail, mailTo: "fleet@example.com"}
	// must not panic and must visit every vehicle despite failures
	w.job(context.Background())
	require.Len(t, mail.sent, 0)
}
