package authhandler

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"personnel-backend/db"
	"personnel-backend/lib/auth/store"
	"personnel-backend/lib/utils/apperrors"
	authutils "personnel-backend/lib/utils/auth-utils"
	initchecker "personnel-backend/lib/utils/init-checker"
	"personnel-backend/models"
	authapimodels "personnel-backend/models/api/auth"
	dbmodels "personnel-backend/models/db"
)

type Provider interface {
	Login(password string) (resp authapimodels.JWTResponse, err error)
	Init(request authapimodels.InitRequest) (resp authapimodels.JWTResponse, err error)
	Me(ctx *fiber.Ctx) (view authapimodels.UserView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
}

// Login checks the password against the single admin account.
func (i impl) Login(password string) (authapimodels.JWTResponse, error) {
	rec, err := i.store.GetAdmin()
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if rec == nil {
		return authapimodels.JWTResponse{}, apperrors.New(apperrors.KindAuth, "admin account is not initialized")
	}
	if err = bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		log.Warn("login attempt with wrong password")
		return authapimodels.JWTResponse{}, apperrors.New(apperrors.KindAuth, "wrong password")
	}
	return i.tokenResponse(*rec)
}

// Init creates the admin account once, rejected when one already exists.
func (i impl) Init(request authapimodels.InitRequest) (authapimodels.JWTResponse, error) {
	count, err := i.store.Count()
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if count > 0 {
		return authapimodels.JWTResponse{}, apperrors.New(apperrors.KindValidation, "admin account already exists")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	rec := dbmodels.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: string(hash),
		Role:         models.UserRoleAdmin,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	rec.ID = id
	log.WithField("user_id", id).Info("admin account created")
	return i.tokenResponse(rec)
}

func (i impl) Me(ctx *fiber.Ctx) (authapimodels.UserView, error) {
	userID := authutils.GetUserID(ctx)
	if userID == "" {
		return authapimodels.UserView{}, apperrors.New(apperrors.KindAuth, "missing token subject")
	}
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return authapimodels.UserView{}, err
	}
	if rec == nil {
		return authapimodels.UserView{}, apperrors.New(apperrors.KindAuth, "user not found")
	}
	return authapimodels.UserConvert(*rec), nil
}

func (i impl) tokenResponse(rec dbmodels.User) (authapimodels.JWTResponse, error) {
	token, err := authutils.GetToken(rec.ID, rec.Name, rec.Role)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token: token,
		User:  authapimodels.UserConvert(rec),
	}, nil
}
