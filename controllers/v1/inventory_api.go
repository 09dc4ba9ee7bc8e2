package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"personnel-backend/controllers"
	inventoryprovider "personnel-backend/lib/inventory"
	apimodels "personnel-backend/models/api"
	inventoryapimodels "personnel-backend/models/api/inventory"
)

type inventoryApiController struct {
	controllers.BaseAPIController
}

func InitInventoryApiRouters(app fiber.Router) {
	controller := inventoryApiController{}
	app.Route("inventory", func(router fiber.Router) {
		router.Get("", controller.inventoryList)
		router.Post("", controller.inventoryCreate)
		router.Get(":id", controller.inventoryGet)
		router.Put(":id", controller.inventoryUpdate)
		router.Delete(":id", controller.inventoryDelete)
	})
}

// @Summary List inventory
// @Tags Inventory
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]inventoryapimodels.InventoryItemView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/inventory [get]
func (c *inventoryApiController) inventoryList(ctx *fiber.Ctx) error {
	list, err := inventoryprovider.Instance.List()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create inventory item
// @Tags Inventory
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	inventoryapimodels.InventoryItemData	true	"request body"
// @Success 201 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/inventory [post]
func (c *inventoryApiController) inventoryCreate(ctx *fiber.Ctx) error {
	var payload inventoryapimodels.InventoryItemData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := inventoryprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary Get inventory item
// @Tags Inventory
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=inventoryapimodels.InventoryItemView}
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/inventory/{id} [get]
func (c *inventoryApiController) inventoryGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := inventoryprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update inventory item
// @Tags Inventory
// @Description Assignment date moves only when the item changes hands
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	inventoryapimodels.InventoryItemData	true	"request body"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/inventory/{id} [put]
func (c *inventoryApiController) inventoryUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload inventoryapimodels.InventoryItemData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = inventoryprovider.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete inventory item
// @Tags Inventory
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/inventory/{id} [delete]
func (c *inventoryApiController) inventoryDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = inventoryprovider.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
