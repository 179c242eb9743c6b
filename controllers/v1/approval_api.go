package apiv1

import (
	"erp-core-backend/controllers"
	approvalrequesthandler "erp-core-backend/lib/approval-request"
	"erp-core-backend/middleware"
	"erp-core-backend/models"
	apimodels "erp-core-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type approvalApiController struct {
	controllers.BaseAPIController
}

func InitApprovalApiRouters(app fiber.Router) {
	controller := approvalApiController{}
	app.Route("approvals", func(router fiber.Router) {
		router.Get("pending", controller.listPending)
		router.Get("entity/:entityType/:id", controller.listByEntity)
		router.Get(":id", controller.getByID)
	})
}

// @Summary Запросы на согласовании
// @Tags Согласование
// @Description Список запросов в статусе PENDING
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	entity_type			query	string	false	"тип документа"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approvals/pending [get]
func (c *approvalApiController) listPending(ctx *fiber.Ctx) error {
	organizationID := middleware.GetUserOrg(ctx)
	entityType := models.EntityType(ctx.Query("entity_type", ""))
	result, err := approvalrequesthandler.Instance.ListPending(organizationID, entityType)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка запросов на согласование")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary История согласования документа
// @Tags Согласование
// @Description Все запросы на согласование по документу
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   entityType			path	string	true	"тип документа"
// @Param   id          		path    string  true    "ID документа"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approvals/entity/{entityType}/{id} [get]
func (c *approvalApiController) listByEntity(ctx *fiber.Ctx) error {
	entityType := models.EntityType(ctx.Params("entityType"))
	if !entityType.IsValid() {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("неизвестный тип документа"))
	}
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	result, err := approvalrequesthandler.Instance.ListByEntity(organizationID, entityType, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения истории согласования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Запрос на согласование
// @Tags Согласование
// @Description Запрос на согласование по идентификатору
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approvals/{id} [get]
func (c *approvalApiController) getByID(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	result, err := approvalrequesthandler.Instance.GetByID(organizationID, id)
	if err != nil {
		if err == approvalrequesthandler.ErrNotFound {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения запроса на согласование")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}
