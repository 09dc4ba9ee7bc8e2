package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"personnel-backend/controllers"
	authhandler "personnel-backend/lib/auth"
	apimodels "personnel-backend/models/api"
	authapimodels "personnel-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

// InitAuthApiRouters registers the two unauthenticated endpoints.
func InitAuthApiRouters(app fiber.Router) {
	controller := authApiController{}
	app.Post("login", controller.login)
	app.Post("init", controller.initAdmin)
}

// InitAuthProtectedRouters registers endpoints behind the JWT middleware.
func InitAuthProtectedRouters(app fiber.Router) {
	controller := authApiController{}
	app.Get("auth/me", controller.me)
}

// @Summary Admin login
// @Tags Auth
// @Description Password check against the single admin account
// @Param	body	body	authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Login(payload.Password)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create the admin account
// @Tags Auth
// @Description One-time setup, rejected once an account exists
// @Param	body	body	authapimodels.InitRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/init [post]
func (c *authApiController) initAdmin(ctx *fiber.Ctx) error {
	var payload authapimodels.InitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Init(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Current user
// @Tags Auth
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=authapimodels.UserView}
// @Failure 401 {object} apimodels.Response
// @router /api/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	resp, err := authhandler.Instance.Me(ctx)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
