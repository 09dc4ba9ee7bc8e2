package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"personnel-backend/controllers"
	"personnel-backend/lib/smtp"
	"personnel-backend/lib/utils/apperrors"
	vehicleprovider "personnel-backend/lib/vehicle"
	apimodels "personnel-backend/models/api"
	vehicleapimodels "personnel-backend/models/api/vehicle"
)

type vehicleApiController struct {
	controllers.BaseAPIController
}

func InitVehicleApiRouters(app fiber.Router) {
	controller := vehicleApiController{}
	app.Route("vehicles", func(router fiber.Router) {
		router.Get("", controller.vehicleList)
		router.Post("", controller.vehicleCreate)
		router.Post("reminders/test", controller.vehicleReminderTest)
		router.Get(":id", controller.vehicleGet)
		router.Put(":id", controller.vehicleUpdate)
		router.Delete(":id", controller.vehicleDelete)
	})
}

// @Summary List vehicles
// @Tags Vehicles
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]vehicleapimodels.VehicleView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/vehicles [get]
func (c *vehicleApiController) vehicleList(ctx *fiber.Ctx) error {
	list, err := vehicleprovider.Instance.List()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create vehicle
// @Tags Vehicles
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	vehicleapimodels.VehicleData	true	"request body"
// @Success 201 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/vehicles [post]
func (c *vehicleApiController) vehicleCreate(ctx *fiber.Ctx) error {
	var payload vehicleapimodels.VehicleData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := vehicleprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary Get vehicle
// @Tags Vehicles
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=vehicleapimodels.VehicleView}
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/vehicles/{id} [get]
func (c *vehicleApiController) vehicleGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := vehicleprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update vehicle
// @Tags Vehicles
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	vehicleapimodels.VehicleData	true	"request body"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/vehicles/{id} [put]
func (c *vehicleApiController) vehicleUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload vehicleapimodels.VehicleData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = vehicleprovider.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete vehicle
// @Tags Vehicles
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/vehicles/{id} [delete]
func (c *vehicleApiController) vehicleDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = vehicleprovider.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Test reminder mail
// @Tags Vehicles
// @Description Sends a test message through the configured mail transport
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	vehicleapimodels.TestMailRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/vehicles/reminders/test [post]
func (c *vehicleApiController) vehicleReminderTest(ctx *fiber.Ctx) error {
	var payload vehicleapimodels.TestMailRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if smtp.Instance == nil {
		return c.SendError(ctx, apperrors.New(apperrors.KindExternal, "mail transport is not configured"))
	}
	err := smtp.Instance.SendEMail(payload.To, "Inspection reminder test", "Mail transport is configured correctly.")
	if err != nil {
		return c.SendError(ctx, apperrors.Wrap(apperrors.KindExternal, err, "test mail failed"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
