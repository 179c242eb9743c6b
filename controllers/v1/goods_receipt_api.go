package apiv1

import (
	"erp-core-backend/controllers"
	goodsreceipthandler "erp-core-backend/lib/goods-receipt"
	"erp-core-backend/middleware"
	apimodels "erp-core-backend/models/api"
	docapimodels "erp-core-backend/models/api/docs"

	"github.com/gofiber/fiber/v2"
)

type goodsReceiptApiController struct {
	controllers.BaseAPIController
}

func InitGoodsReceiptApiRouters(app fiber.Router) {
	controller := goodsReceiptApiController{}
	app.Route("goods_receipts", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Get(":id", controller.getByID)
		router.Delete(":id", controller.delete)
		router.Post(":id/complete", controller.complete)
	})
}

// @Summary Создание приходной накладной
// @Tags Приходные накладные
// @Description Создание черновика накладной, номер выдается автоматически
// @Param   Authorization		header	string									true	"Authorization token"
// @Param	body 				body	docapimodels.GoodsReceiptCreateData		true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/goods_receipts [post]
func (c *goodsReceiptApiController) create(ctx *fiber.Ctx) error {
	var payload docapimodels.GoodsReceiptCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := goodsreceipthandler.Instance.Create(organizationID, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания приходной накладной")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Список приходных накладных
// @Tags Приходные накладные
// @Description Список приходных накладных с фильтром и пагинацией
// @Param   Authorization		header	string					true	"Authorization token"
// @Param	body 				body	docapimodels.DocFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/goods_receipts/list [post]
func (c *goodsReceiptApiController) list(ctx *fiber.Ctx) error {
	var payload docapimodels.DocFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	result, rowCount, err := goodsreceipthandler.Instance.List(organizationID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка приходных накладных")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(result, rowCount))
}

// @Summary Приходная накладная
// @Tags Приходные накладные
// @Description Приходная накладная по идентификатору
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/goods_receipts/{id} [get]
func (c *goodsReceiptApiController) getByID(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	result, err := goodsreceipthandler.Instance.GetByID(organizationID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения приходной накладной")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Удаление приходной накладной
// @Tags Приходные накладные
// @Description Удаление непроведенной накладной
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/goods_receipts/{id} [delete]
func (c *goodsReceiptApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	hMsg, err := goodsreceipthandler.Instance.Delete(organizationID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления приходной накладной")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Провести накладную
// @Tags Приходные накладные
// @Description Проведение накладной с оприходованием остатков
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/goods_receipts/{id}/complete [post]
func (c *goodsReceiptApiController) complete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	userID := middleware.GetUserID(ctx)
	hMsg, err := goodsreceipthandler.Instance.Complete(organizationID, userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка проведения приходной накладной")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
