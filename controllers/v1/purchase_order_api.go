package apiv1

import (
	"erp-core-backend/controllers"
	pdfexport "erp-core-backend/lib/export/pdf"
	xlsexport "erp-core-backend/lib/export/xls"
	purchaseorderhandler "erp-core-backend/lib/purchase-order"
	"erp-core-backend/middleware"
	apimodels "erp-core-backend/models/api"
	approvalapimodels "erp-core-backend/models/api/approval"
	docapimodels "erp-core-backend/models/api/docs"

	"github.com/gofiber/fiber/v2"
)

type purchaseOrderApiController struct {
	controllers.BaseAPIController
}

func InitPurchaseOrderApiRouters(app fiber.Router) {
	controller := purchaseOrderApiController{}
	app.Route("purchase_orders", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Post("export", controller.exportXls)
		router.Get(":id", controller.getByID)
		router.Get(":id/print", controller.printPdf)
		router.Delete(":id", controller.delete)
		router.Post(":id/submit", controller.submit)
		router.Post(":id/approve", controller.approve)
		router.Post(":id/reject", controller.reject)
		router.Post(":id/receive", controller.startReceiving)
		router.Post(":id/close", controller.close)
		router.Post(":id/cancel", controller.cancel)
	})
}

// @Summary Создание заказа поставщику
// @Tags Заказы поставщику
// @Description Создание черновика заказа, номер выдается автоматически
// @Param   Authorization		header	string										true	"Authorization token"
// @Param	body 				body	docapimodels.PurchaseOrderCreateData		true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/purchase_orders [post]
func (c *purchaseOrderApiController) create(ctx *fiber.Ctx) error {
	var payload docapimodels.PurchaseOrderCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := purchaseorderhandler.Instance.Create(organizationID, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания заказа поставщику")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Список заказов поставщику
// @Tags Заказы поставщику
// @Description Список заказов поставщику с фильтром и пагинацией
// @Param   Authorization		header	string						true	"Authorization token"
// @Param	body 				body	docapimodels.DocFilter		true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/purchase_orders/list [post]
func (c *purchaseOrderApiController) list(ctx *fiber.Ctx) error {
	var payload docapimodels.DocFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	result, rowCount, err := purchaseorderhandler.Instance.List(organizationID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заказов поставщику")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(result, rowCount))
}

// @Summary Заказ поставщику
// @Tags Заказы поставщику
// @Description Заказ поставщику по идентификатору
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/purchase_orders/{id} [get]
func (c *purchaseOrderApiController) getByID(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	result, err := purchaseorderhandler.Instance.GetByID(organizationID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заказа поставщику")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Удаление заказа поставщику
// @Tags Заказы поставщику
// @Description Удаление черновика заказа
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/purchase_orders/{id} [delete]
func (c *purchaseOrderApiController) delete(ctx *fiber.Ctx) error {
	return c.doAction(ctx, purchaseorderhandler.Instance.Delete, "Ошибка удаления заказа поставщику")
}

// @Summary Отправка на согласование
// @Tags Заказы поставщику
// @Description Перевод черновика на согласование
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/purchase_orders/{id}/submit [post]
func (c *purchaseOrderApiController) submit(ctx *fiber.Ctx) error {
	return c.doUserAction(ctx, purchaseorderhandler.Instance.Submit, "Ошибка отправки заказа на согласование")
}

// @Summary Согласовать
// @Tags Заказы поставщику
// @Description Согласование текущего этапа, на финальном этапе заказ переходит в статус APPROVED
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/purchase_orders/{id}/approve [post]
func (c *purchaseOrderApiController) approve(ctx *fiber.Ctx) error {
	return c.doUserAction(ctx, purchaseorderhandler.Instance.Approve, "Ошибка согласования заказа поставщику")
}

// @Summary Отклонить
// @Tags Заказы поставщику
// @Description Отклонение согласования, заказ возвращается в черновик
// @Param   Authorization		header	string							true	"Authorization token"
// @Param	body 				body	approvalapimodels.RejectData	true	"request body"
// @Param   id          		path    string  						true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/purchase_orders/{id}/reject [post]
func (c *purchaseOrderApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload approvalapimodels.RejectData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	userID := middleware.GetUserID(ctx)
	hMsg, err := purchaseorderhandler.Instance.Reject(organizationID, userID, id, payload.Reason)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отклонения заказа поставщику")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Начать приемку
// @Tags Заказы поставщику
// @Description Перевод согласованного заказа в приемку
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/purchase_orders/{id}/receive [post]
func (c *purchaseOrderApiController) startReceiving(ctx *fiber.Ctx) error {
	return c.doUserAction(ctx, purchaseorderhandler.Instance.StartReceiving, "Ошибка перевода заказа в приемку")
}

// @Summary Закрыть заказ
// @Tags Заказы поставщику
// @Description Закрытие заказа после приемки
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/purchase_orders/{id}/close [post]
func (c *purchaseOrderApiController) close(ctx *fiber.Ctx) error {
	return c.doUserAction(ctx, purchaseorderhandler.Instance.Close, "Ошибка закрытия заказа поставщику")
}

// @Summary Отменить заказ
// @Tags Заказы поставщику
// @Description Отмена заказа, висящее согласование закрывается
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/purchase_orders/{id}/cancel [post]
func (c *purchaseOrderApiController) cancel(ctx *fiber.Ctx) error {
	return c.doUserAction(ctx, purchaseorderhandler.Instance.Cancel, "Ошибка отмены заказа поставщику")
}

// @Summary Выгрузка реестра заказов
// @Tags Заказы поставщику
// @Description Выгрузка реестра заказов поставщику в xlsx
// @Param   Authorization		header	string					true	"Authorization token"
// @Param	body 				body	docapimodels.DocFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/purchase_orders/export [post]
func (c *purchaseOrderApiController) exportXls(ctx *fiber.Ctx) error {
	var payload docapimodels.DocFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	list, _, err := purchaseorderhandler.Instance.List(organizationID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заказов поставщику")
	}
	buf, err := xlsexport.Instance.ExportPurchaseOrderList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки реестра заказов")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="purchase_orders.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Печатная форма заказа
// @Tags Заказы поставщику
// @Description Печатная форма заказа поставщику в pdf
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/purchase_orders/{id}/print [get]
func (c *purchaseOrderApiController) printPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	view, err := purchaseorderhandler.Instance.GetByID(organizationID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заказа поставщику")
	}
	pdfFile, err := pdfexport.GeneratePurchaseOrder(view)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования печатной формы")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="purchase_order.pdf"`)
	return ctx.Status(fiber.StatusOK).Send(pdfFile)
}

func (c *purchaseOrderApiController) doAction(ctx *fiber.Ctx, action func(organizationID, id string) (string, error), errMsg string) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	hMsg, err := action(organizationID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, errMsg)
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *purchaseOrderApiController) doUserAction(ctx *fiber.Ctx, action func(organizationID, userID, id string) (string, error), errMsg string) error {
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
