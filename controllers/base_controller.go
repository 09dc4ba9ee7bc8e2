package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"personnel-backend/lib/utils/apperrors"
	apimodels "personnel-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("request body parse failed")
		return errors.New("malformed request body")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("record id is missing")
	}
	return id, nil
}

// SendError maps the application error taxonomy onto HTTP status codes.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error) error {
	status := apperrors.StatusCode(err)
	if status == fiber.StatusInternalServerError {
		log.WithError(err).Error("request failed")
	}
	return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
}
