package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "personnel-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "migration of User failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "migration of Employee failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Leave{}); err != nil {
		return errors.Wrap(err, "migration of Leave failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Achievement{}); err != nil {
		return errors.Wrap(err, "migration of Achievement failed")
	}
	if err := DB.AutoMigrate(&dbmodels.InventoryItem{}); err != nil {
		return errors.Wrap(err, "migration of InventoryItem failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Vehicle{}); err != nil {
		return errors.Wrap(err, "migration of Vehicle failed")
	}
	log.Info("migrations finished")
	return nil
}
