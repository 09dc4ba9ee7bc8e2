package initializers

import (
	"time"

	"personnel-backend/config"
	"personnel-backend/db"
)

func InitDBConnection() {
	err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart,
		config.Conf.Database.ConnectRetries, time.Duration(config.Conf.Database.ConnectDelaySec)*time.Second)
	if err != nil {
		panic(err.Error())
	}

	db.InitPreload(config.Conf.Auth.AdminName, config.Conf.Auth.AdminEmail, config.Conf.Auth.AdminPassword)
}
