package apiv1

import (
	"erp-core-backend/controllers"
	xlsexport "erp-core-backend/lib/export/xls"
	salesorderhandler "erp-core-backend/lib/sales-order"
	"erp-core-backend/middleware"
	apimodels "erp-core-backend/models/api"
	docapimodels "erp-core-backend/models/api/docs"

	"github.com/gofiber/fiber/v2"
)

type salesOrderApiController struct {
	controllers.BaseAPIController
}

func InitSalesOrderApiRouters(app fiber.Router) {
	controller := salesOrderApiController{}
	app.Route("sales_orders", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Post("export", controller.exportXls)
		router.Get(":id", controller.getByID)
		router.Delete(":id", controller.delete)
		router.Post(":id/confirm", controller.confirm)
		router.Post(":id/dispatch", controller.dispatch)
		router.Post(":id/close", controller.close)
		router.Post(":id/cancel", controller.cancel)
	})
}

// @Summary Создание заказа покупателя
// @Tags Заказы покупателя
// @Description Создание черновика заказа, номер выдается автоматически
// @Param   Authorization		header	string								true	"Authorization token"
// @Param	body 				body	docapimodels.SalesOrderCreateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/sales_orders [post]
func (c *salesOrderApiController) create(ctx *fiber.Ctx) error {
	var payload docapimodels.SalesOrderCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := salesorderhandler.Instance.Create(organizationID, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания заказа покупателя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Список заказов покупателя
// @Tags Заказы покупателя
// @Description Список заказов покупателя с фильтром и пагинацией
// @Param   Authorization		header	string					true	"Authorization token"
// @Param	body 				body	docapimodels.DocFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/sales_orders/list [post]
func (c *salesOrderApiController) list(ctx *fiber.Ctx) error {
	var payload docapimodels.DocFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	result, rowCount, err := salesorderhandler.Instance.List(organizationID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заказов покупателя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(result, rowCount))
}

// @Summary Заказ покупателя
// @Tags Заказы покупателя
// @Description Заказ покупателя по идентификатору
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/sales_orders/{id} [get]
func (c *salesOrderApiController) getByID(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	result, err := salesorderhandler.Instance.GetByID(organizationID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заказа покупателя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Удаление заказа покупателя
// @Tags Заказы покупателя
// @Description Удаление черновика заказа
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/sales_orders/{id} [delete]
func (c *salesOrderApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	hMsg, err := salesorderhandler.Instance.Delete(organizationID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления заказа покупателя")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Подтвердить заказ
// @Tags Заказы покупателя
// @Description Подтверждение заказа с резервированием остатков
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/sales_orders/{id}/confirm [post]
func (c *salesOrderApiController) confirm(ctx *fiber.Ctx) error {
	return c.doUserAction(ctx, salesorderhandler.Instance.Confirm, "Ошибка подтверждения заказа покупателя")
}

// @Summary Отгрузить заказ
// @Tags Заказы покупателя
// @Description Отгрузка заказа со снятием резерва и списанием остатков
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/sales_orders/{id}/dispatch [post]
func (c *salesOrderApiController) dispatch(ctx *fiber.Ctx) error {
	return c.doUserAction(ctx, salesorderhandler.Instance.Dispatch, "Ошибка отгрузки заказа покупателя")
}

// @Summary Закрыть заказ
// @Tags Заказы покупателя
// @Description Закрытие отгруженного заказа
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/sales_orders/{id}/close [post]
func (c *salesOrderApiController) close(ctx *fiber.Ctx) error {
	return c.doUserAction(ctx, salesorderhandler.Instance.Close, "Ошибка закрытия заказа покупателя")
}

// @Summary Отменить заказ
// @Tags Заказы покупателя
// @Description Отмена заказа, резерв возвращается
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/sales_orders/{id}/cancel [post]
func (c *salesOrderApiController) cancel(ctx *fiber.Ctx) error {
	return c.doUserAction(ctx, salesorderhandler.Instance.Cancel, "Ошибка отмены заказа покупателя")
}

// @Summary Выгрузка реестра заказов
// @Tags Заказы покупателя
// @Description Выгрузка реестра заказов покупателя в xlsx
// @Param   Authorization		header	string					true	"Authorization token"
// @Param	body 				body	docapimodels.DocFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/sales_orders/export [post]
func (c *salesOrderApiController) exportXls(ctx *fiber.Ctx) error {
	var payload docapimodels.DocFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	list, _, err := salesorderhandler.Instance.List(organizationID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заказов покупателя")
	}
	buf, err := xlsexport.Instance.ExportSalesOrderList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки реестра заказов")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="sales_orders.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

func (c *salesOrderApiController) doUserAction(ctx *fiber.Ctx, action func(organizationID, userID, id string) (string, error), errMsg string) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	userID := middleware.GetUserID(ctx)
	hMsg, err := action(organizationID, userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, errMsg)
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
