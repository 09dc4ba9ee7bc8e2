package db

import (
	"fmt"
	"time"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the database, retrying the initial connection. Exhausting the
// retries is the single fatal startup condition of the service.
func Connect(host string, port string, database string, user string, pass string, debugMode bool, migrate bool, retries int, retryDelay time.Duration) (err error) {
	if DB != nil {
		return nil
	}
	dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", host, port, user, database, pass)
	var db *gorm.DB
	for attempt := 1; ; attempt++ {
		db, err = gorm.Open(postgres.Open(dbConnString), &gorm.Config{
			Logger: gorm_logrus.New(),
		})
		if err == nil {
			break
		}
		if attempt >= retries {
			return errors.Wrapf(err, "database connection failed after %d attempts", attempt)
		}
		log.WithError(err).
			WithField("attempt", attempt).
			Warn("database connection failed, retrying")
		time.Sleep(retryDelay)
	}
	if debugMode {
		db.Logger = logger.Default.LogMode(logger.Info)
		DB = db.Debug()
	} else {
		DB = db
	}
	if migrate {
		if err = AutoMigrateDB(); err != nil {
			return err
		}
	}
	log.Info("database connection established")
	return nil
}

func PingDB() error {
	db, err := DB.DB()
	if err != nil {
		return err
	}
	if err = db.Ping(); err != nil {
		return err
	}
	return nil
}
