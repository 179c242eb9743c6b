package apiv1

import (
	"erp-core-backend/controllers"
	workorderhandler "erp-core-backend/lib/work-order"
	"erp-core-backend/middleware"
	apimodels "erp-core-backend/models/api"
	docapimodels "erp-core-backend/models/api/docs"

	"github.com/gofiber/fiber/v2"
)

type workOrderApiController struct {
	controllers.BaseAPIController
}

func InitWorkOrderApiRouters(app fiber.Router) {
	controller := workOrderApiController{}
	app.Route("work_orders", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Get(":id", controller.getByID)
		router.Delete(":id", controller.delete)
		router.Post(":id/release", controller.release)
		router.Post(":id/start", controller.start)
		router.Post(":id/complete", controller.complete)
		router.Post(":id/cancel", controller.cancel)
	})
}

// @Summary Создание производственного заказа
// @Tags Производственные заказы
// @Description Создание производственного заказа, номер выдается автоматически
// @Param   Authorization		header	string								true	"Authorization token"
// @Param	body 				body	docapimodels.WorkOrderCreateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/work_orders [post]
func (c *workOrderApiController) create(ctx *fiber.Ctx) error {
	var payload docapimodels.WorkOrderCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := workorderhandler.Instance.Create(organizationID, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания производственного заказа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Список производственных заказов
// @Tags Производственные заказы
// @Description Список производственных заказов с фильтром и пагинацией
// @Param   Authorization		header	string					true	"Authorization token"
// @Param	body 				body	docapimodels.DocFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/work_orders/list [post]
func (c *workOrderApiController) list(ctx *fiber.Ctx) error {
	var payload docapimodels.DocFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	result, rowCount, err := workorderhandler.Instance.List(organizationID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка производственных заказов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(result, rowCount))
}

// @Summary Производственный заказ
// @Tags Производственные заказы
// @Description Производственный заказ по идентификатору
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/work_orders/{id} [get]
func (c *workOrderApiController) getByID(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	result, err := workorderhandler.Instance.GetByID(organizationID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения производственного заказа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Удаление производственного заказа
// @Tags Производственные заказы
// @Description Удаление запланированного заказа
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/work_orders/{id} [delete]
func (c *workOrderApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	hMsg, err := workorderhandler.Instance.Delete(organizationID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления производственного заказа")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Выдать в работу
// @Tags Производственные заказы
// @Description Перевод запланированного заказа в работу
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/work_orders/{id}/release [post]
func (c *workOrderApiController) release(ctx *fiber.Ctx) error {
	return c.doUserAction(ctx, workorderhandler.Instance.Release, "Ошибка выдачи заказа в работу")
}

// @Summary Запустить производство
// @Tags Производственные заказы
// @Description Старт выполнения производственного заказа
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/work_orders/{id}/start [post]
func (c *workOrderApiController) start(ctx *fiber.Ctx) error {
	return c.doUserAction(ctx, workorderhandler.Instance.Start, "Ошибка запуска производственного заказа")
}

// @Summary Завершить производство
// @Tags Производственные заказы
// @Description Завершение заказа с оприходованием выпуска на склад
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/work_orders/{id}/complete [post]
func (c *workOrderApiController) complete(ctx *fiber.Ctx) error {
	return c.doUserAction(ctx, workorderhandler.Instance.Complete, "Ошибка завершения производственного заказа")
}

// @Summary Отменить заказ
// @Tags Производственные заказы
// @Description Отмена производственного заказа
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/work_orders/{id}/cancel [post]
func (c *workOrderApiController) cancel(ctx *fiber.Ctx) error {
	return c.doUserAction(ctx, workorderhandler.Instance.Cancel, "Ошибка отмены производственного заказа")
}

func (c *workOrderApiController) doUserAction(ctx *fiber.Ctx, action func(organizationID, userID, id string) (string, error), errMsg string) error {
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
