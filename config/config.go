package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host            string `default:"127.0.0.1" env:"DB_HOST"`
		Port            string `default:"5432" env:"DB_PORT"`
		Name            string `default:"personnel" env:"DB_NAME"`
		User            string `default:"postgres" env:"DB_USER"`
		Password        string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart  *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode       *bool  `default:"false" env:"DB_DEBUG_MODE"`
		ConnectRetries  int    `default:"5" env:"DB_CONNECT_RETRIES"`
		ConnectDelaySec int    `default:"3" env:"DB_CONNECT_DELAY_SEC"`
	}
	Auth struct {
		JWTSecret      string `default:"change-me" env:"JWT_SECRET"`
		JWTExpireInSec int    `default:"86400" env:"JWT_EXPIRE_IN_SEC"`
		AdminName      string `default:"Administrator" env:"ADMIN_NAME"`
		AdminEmail     string `default:"" env:"ADMIN_EMAIL"`
		AdminPassword  string `default:"" env:"ADMIN_PASSWORD"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		From       string `default:"" env:"SMTP_FROM"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	Reminder struct {
		Hour   int    `default:"9" env:"REMINDER_HOUR"`
		MailTo string `default:"" env:"REMINDER_MAIL_TO"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
