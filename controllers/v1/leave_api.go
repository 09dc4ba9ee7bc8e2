package apiv1

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"personnel-backend/controllers"
	leaveprovider "personnel-backend/lib/leave"
	"personnel-backend/lib/utils/dateutils"
	apimodels "personnel-backend/models/api"
	leaveapimodels "personnel-backend/models/api/leave"
)

type leaveApiController struct {
	controllers.BaseAPIController
}

func InitLeaveApiRouters(app fiber.Router) {
	controller := leaveApiController{}
	app.Route("leaves", func(router fiber.Router) {
		router.Get("", controller.leaveList)
		router.Post("", controller.leaveCreate)
		router.Post("bulk", controller.leaveCreateBulk)
		router.Delete(":id", controller.leaveDelete)
	})
}

// @Summary List leaves
// @Tags Leaves
// @Description Full list, or filtered by employee or covering date
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   employeeId	query	string	false	"filter by employee"
// @Param   date	query	string	false	"leaves covering this day (YYYY-MM-DD)"
// @Success 200 {object} apimodels.Response{data=[]leaveapimodels.LeaveView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/leaves [get]
func (c *leaveApiController) leaveList(ctx *fiber.Ctx) error {
	if employeeID := ctx.Query("employeeId"); employeeID != "" {
		list, err := leaveprovider.Instance.ListByEmployee(employeeID)
		if err != nil {
			return c.SendError(ctx, err)
		}
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
	}
	if dateStr := ctx.Query("date"); dateStr != "" {
		date, err := time.Parse(dateutils.DayFormat, dateStr)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("invalid date parameter, expected YYYY-MM-DD"))
		}
		list, err := leaveprovider.Instance.OnDate(date)
		if err != nil {
			return c.SendError(ctx, err)
		}
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
	}
	list, err := leaveprovider.Instance.List()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create leave
// @Tags Leaves
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	leaveapimodels.LeaveData	true	"request body"
// @Success 201 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/leaves [post]
func (c *leaveApiController) leaveCreate(ctx *fiber.Ctx) error {
	var payload leaveapimodels.LeaveData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := leaveprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary Create bulk leave
// @Tags Leaves
// @Description One approved annual leave per employee, the batch commits whole or not at all
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	leaveapimodels.BulkLeaveRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=[]leaveapimodels.LeaveView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/leaves/bulk [post]
func (c *leaveApiController) leaveCreateBulk(ctx *fiber.Ctx) error {
	var payload leaveapimodels.BulkLeaveRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := leaveprovider.Instance.CreateBulk(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(list))
}

// @Summary Delete leave
// @Tags Leaves
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/leaves/{id} [delete]
func (c *leaveApiController) leaveDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = leaveprovider.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
