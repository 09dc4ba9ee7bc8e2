package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"personnel-backend/controllers"
	employeeprovider "personnel-backend/lib/employee"
	apimodels "personnel-backend/models/api"
	employeeapimodels "personnel-backend/models/api/employee"
)

type employeeApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeApiRouters(app fiber.Router) {
	controller := employeeApiController{}
	app.Route("employees", func(router fiber.Router) {
		router.Get("", controller.employeeList)
		router.Post("", controller.employeeCreate)
		router.Get(":id", controller.employeeGet)
		router.Put(":id", controller.employeeUpdate)
		router.Delete(":id", controller.employeeDelete)
	})
}

// @Summary List employees
// @Tags Employees
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   page	query	int	false	"page number"
// @Param   limit	query	int	false	"rows per page"
// @Success 200 {object} apimodels.Response{data=[]employeeapimodels.EmployeeView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/employees [get]
func (c *employeeApiController) employeeList(ctx *fiber.Ctx) error {
	pagination := apimodels.Pagination{
		Page:  ctx.QueryInt("page"),
		Limit: ctx.QueryInt("limit"),
	}
	page, limit := pagination.GetPage()
	list, _, err := employeeprovider.Instance.List(page, limit)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create employee
// @Tags Employees
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	employeeapimodels.EmployeeData	true	"request body"
// @Success 201 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/employees [post]
func (c *employeeApiController) employeeCreate(ctx *fiber.Ctx) error {
	var payload employeeapimodels.EmployeeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := employeeprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary Get employee
// @Tags Employees
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/employees/{id} [get]
func (c *employeeApiController) employeeGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := employeeprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update employee
// @Tags Employees
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	employeeapimodels.EmployeeData	true	"request body"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/employees/{id} [put]
func (c *employeeApiController) employeeUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload employeeapimodels.EmployeeData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = employeeprovider.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete employee
// @Tags Employees
// @Description Removes the employee with its leaves and achievements, assigned inventory is released
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/employees/{id} [delete]
func (c *employeeApiController) employeeDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = employeeprovider.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
