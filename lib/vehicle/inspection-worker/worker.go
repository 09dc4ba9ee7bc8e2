package inspectionworker

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"personnel-backend/config"
	"personnel-backend/db"
	"personnel-backend/lib/smtp"
	baseworker "personnel-backend/lib/utils/base-worker"
	"personnel-backend/lib/utils/dateutils"
	"personnel-backend/lib/utils/helpers"
	vehiclestore "personnel-backend/lib/vehicle/store"
	dbmodels "personnel-backend/models/db"
)

// ReminderThresholds are the exact days-before-inspection marks at which a
// notification fires. A vehicle at 11 or 9 days gets nothing.
var ReminderThresholds = []int{20, 10, 3}

const workerName = "VehicleInspectionReminder"

func StartWorker(ctx context.Context) {
	i := &impl{
		store:  vehiclestore.NewInstance(db.DB),
		mail:   smtp.Instance,
		mailTo: config.Conf.Reminder.MailTo,
	}
	now := time.Now()
	worker := baseworker.NewInstance(workerName,
		baseworker.DelayUntilHour(now, config.Conf.Reminder.Hour),
		24*time.Hour)
	go worker.Run(ctx, i.job)
}

type impl struct {
	store  vehiclestore.Provider
	mail   smtp.Provider
	mailTo string
}

// job runs once per day. There is no persisted sent-log, idempotency rests
// entirely on the date difference, so a second run on the same calendar day
// sends duplicates.
func (i impl) job(ctx context.Context) {
	logger := log.WithField("worker_name", workerName)
	list, err := i.store.List()
	if err != nil {
		logger.WithError(err).Error("vehicle read failed, run skipped")
		return
	}
	today := time.Now()
	for _, vehicle := range list {
		if helpers.IsContextDone(ctx) {
			logger.Info("run interrupted")
			return
		}
		i.checkVehicle(vehicle, today)
	}
}

// checkVehicle sends at most one reminder. A failed send is logged and the
// run moves on to the next vehicle.
func (i impl) checkVehicle(vehicle dbmodels.Vehicle, today time.Time) {
	daysLeft := dateutils.DaysUntil(vehicle.InspectionDate, today)
	if !isThreshold(daysLeft) {
		return
	}
	logger := log.
		WithField("worker_name", workerName).
		WithField("plate", vehicle.Plate).
		WithField("days_left", daysLeft)
	subject := fmt.Sprintf("Inspection reminder: %s", vehicle.Plate)
	message := fmt.Sprintf("Vehicle %s (%s) is due for inspection on %s, %d day(s) left.",
		vehicle.Name, vehicle.Plate, vehicle.InspectionDate.Format(dateutils.DayFormat), daysLeft)
	if err := i.mail.SendEMail(i.mailTo, subject, message); err != nil {
		logger.WithError(err).Error("reminder send failed")
		return
	}
	logger.Info("reminder sent")
}

func isThreshold(daysLeft int) bool {
	for _, threshold := range ReminderThresholds {
		if daysLeft == threshold {
			return true
		}
	}
	return false
}
