package db

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"personnel-backend/models"
	dbmodels "personnel-backend/models/db"
)

// InitPreload seeds the single admin account from config when the users table
// is empty. With no seed password configured the account is created later via
// the init endpoint.
func InitPreload(adminName, adminEmail, adminPassword string) {
	if adminPassword == "" {
		return
	}
	var rowCount int64
	if err := DB.Model(&dbmodels.User{}).Count(&rowCount).Error; err != nil {
		log.WithError(err).Error("admin seed check failed")
		return
	}
	if rowCount > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("admin seed hash failed")
		return
	}
	rec := dbmodels.User{
		Name:         adminName,
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         models.UserRoleAdmin,
	}
	if err := DB.Save(&rec).Error; err != nil {
		log.WithError(err).Error("admin seed failed")
		return
	}
	log.Info("admin account seeded")
}
