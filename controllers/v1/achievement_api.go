package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"personnel-backend/controllers"
	achievementprovider "personnel-backend/lib/achievement"
	reportprovider "personnel-backend/lib/report"
	apimodels "personnel-backend/models/api"
	achievementapimodels "personnel-backend/models/api/achievement"
)

type achievementApiController struct {
	controllers.BaseAPIController
}

func InitAchievementApiRouters(app fiber.Router) {
	controller := achievementApiController{}
	app.Route("achievements", func(router fiber.Router) {
		// static routes before the :id wildcard
		router.Get("excel", controller.achievementExcel)
		router.Get("", controller.achievementList)
		router.Post("", controller.achievementCreate)
		router.Put(":id", controller.achievementUpdate)
		router.Delete(":id", controller.achievementDelete)
	})
}

// @Summary List achievements
// @Tags Achievements
// @Description Full list, or one employee's achievements within a month
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   employeeId	query	string	false	"filter by employee, requires date"
// @Param   date	query	string	false	"month window (YYYY-MM)"
// @Success 200 {object} apimodels.Response{data=[]achievementapimodels.AchievementView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/achievements [get]
func (c *achievementApiController) achievementList(ctx *fiber.Ctx) error {
	employeeID := ctx.Query("employeeId")
	month := ctx.Query("date")
	if employeeID != "" || month != "" {
		if employeeID == "" || month == "" {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("employeeId and date parameters are used together"))
		}
		list, err := achievementprovider.Instance.ListByEmployeeInRange(employeeID, month)
		if err != nil {
			return c.SendError(ctx, err)
		}
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
	}
	list, err := achievementprovider.Instance.List()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create achievement
// @Tags Achievements
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	achievementapimodels.AchievementData	true	"request body"
// @Success 201 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/achievements [post]
func (c *achievementApiController) achievementCreate(ctx *fiber.Ctx) error {
	var payload achievementapimodels.AchievementData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := achievementprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary Update achievement
// @Tags Achievements
// @Description Partial update, omitted fields keep their stored value
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	achievementapimodels.AchievementUpdate	true	"request body"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=achievementapimodels.AchievementView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/achievements/{id} [put]
func (c *achievementApiController) achievementUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload achievementapimodels.AchievementUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := achievementprovider.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete achievement
// @Tags Achievements
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/achievements/{id} [delete]
func (c *achievementApiController) achievementDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = achievementprovider.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Achievement report
// @Tags Achievements
// @Description Monthly achievement workbook, one employee or the whole roster
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   employeeId	query	string	false	"report subject, whole roster when omitted"
// @Param   date	query	string	true	"month window (YYYY-MM)"
// @Success 200 {file} binary
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/achievements/excel [get]
func (c *achievementApiController) achievementExcel(ctx *fiber.Ctx) error {
	file, fileName, err := reportprovider.Instance.MonthlyAchievementExcel(ctx.Query("employeeId"), ctx.Query("date"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Status(fiber.StatusOK).Send(file.Bytes())
}
