package authapimodels

import (
	"personnel-backend/lib/utils/apperrors"
	dbmodels "personnel-backend/models/db"
)

type LoginRequest struct {
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Password == "" {
		return apperrors.New(apperrors.KindValidation, "password is required")
	}
	return nil
}

type InitRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r InitRequest) Validate() error {
	if r.Name == "" {
		return apperrors.New(apperrors.KindValidation, "admin name is required")
	}
	if r.Password == "" {
		return apperrors.New(apperrors.KindValidation, "admin password is required")
	}
	return nil
}

type UserView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type JWTResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:    rec.ID,
		Name:  rec.Name,
		Email: rec.Email,
		Role:  string(rec.Role),
	}
}
