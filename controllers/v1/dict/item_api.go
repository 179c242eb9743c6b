package dict

import (
	"erp-core-backend/controllers"
	itemhandler "erp-core-backend/lib/dicts/item"
	"erp-core-backend/middleware"
	apimodels "erp-core-backend/models/api"
	dictapimodels "erp-core-backend/models/api/dict"

	"github.com/gofiber/fiber/v2"
)

type itemApiController struct {
	controllers.BaseAPIController
}

func InitItemDictApiRouters(app fiber.Router) {
	controller := itemApiController{}
	app.Route("items", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get(":id", controller.getByID)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.deactivate)
	})
}

// @Summary Создание номенклатуры
// @Tags Справочник номенклатуры
// @Description Создание позиции номенклатуры
// @Param   Authorization		header	string						true	"Authorization token"
// @Param	body 				body	dictapimodels.ItemData		true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/items [post]
func (c *itemApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.ItemData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	id, err := itemhandler.Instance.Create(organizationID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания номенклатуры")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список номенклатуры
// @Tags Справочник номенклатуры
// @Description Список номенклатуры с поиском по наименованию и артикулу
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	search				query	string	false	"поисковая строка"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/items [get]
func (c *itemApiController) list(ctx *fiber.Ctx) error {
	organizationID := middleware.GetUserOrg(ctx)
	search := ctx.Query("search", "")
	result, err := itemhandler.Instance.List(organizationID, search)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка номенклатуры")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Номенклатура
// @Tags Справочник номенклатуры
// @Description Позиция номенклатуры по идентификатору
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/items/{id} [get]
func (c *itemApiController) getByID(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	result, err := itemhandler.Instance.GetByID(organizationID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения номенклатуры")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Обновление номенклатуры
// @Tags Справочник номенклатуры
// @Description Обновление позиции номенклатуры
// @Param   Authorization		header	string						true	"Authorization token"
// @Param	body 				body	dictapimodels.ItemData		true	"request body"
// @Param   id          		path    string  					true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/items/{id} [put]
func (c *itemApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.ItemData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	err = itemhandler.Instance.Update(organizationID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления номенклатуры")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Деактивация номенклатуры
// @Tags Справочник номенклатуры
// @Description Пометка позиции номенклатуры неактивной
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/items/{id} [delete]
func (c *itemApiController) deactivate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	err = itemhandler.Instance.Deactivate(organizationID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка деактивации номенклатуры")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
