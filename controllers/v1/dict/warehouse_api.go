package dict

import (
	"erp-core-backend/controllers"
	warehousehandler "erp-core-backend/lib/dicts/warehouse"
	"erp-core-backend/middleware"
	apimodels "erp-core-backend/models/api"
	dictapimodels "erp-core-backend/models/api/dict"

	"github.com/gofiber/fiber/v2"
)

type warehouseApiController struct {
	controllers.BaseAPIController
}

func InitWarehouseDictApiRouters(app fiber.Router) {
	controller := warehouseApiController{}
	app.Route("warehouses", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get(":id", controller.getByID)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.deactivate)
	})
}

// @Summary Создание склада
// @Tags Справочник складов
// @Description Создание склада
// @Param   Authorization		header	string							true	"Authorization token"
// @Param	body 				body	dictapimodels.WarehouseData		true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/warehouses [post]
func (c *warehouseApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.WarehouseData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	id, err := warehousehandler.Instance.Create(organizationID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания склада")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список складов
// @Tags Справочник складов
// @Description Список складов организации
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/warehouses [get]
func (c *warehouseApiController) list(ctx *fiber.Ctx) error {
	organizationID := middleware.GetUserOrg(ctx)
	result, err := warehousehandler.Instance.List(organizationID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка складов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Склад
// @Tags Справочник складов
// @Description Склад по идентификатору
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/warehouses/{id} [get]
func (c *warehouseApiController) getByID(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	result, err := warehousehandler.Instance.GetByID(organizationID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения склада")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Обновление склада
// @Tags Справочник складов
// @Description Обновление данных склада
// @Param   Authorization		header	string							true	"Authorization token"
// @Param	body 				body	dictapimodels.WarehouseData		true	"request body"
// @Param   id          		path    string  						true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/warehouses/{id} [put]
func (c *warehouseApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.WarehouseData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	err = warehousehandler.Instance.Update(organizationID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления склада")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Деактивация склада
// @Tags Справочник складов
// @Description Пометка склада неактивным
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/warehouses/{id} [delete]
func (c *warehouseApiController) deactivate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	err = warehousehandler.Instance.Deactivate(organizationID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка деактивации склада")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
