package apiv1

import (
	"erp-core-backend/controllers"
	approvalworkflowhandler "erp-core-backend/lib/approval-workflow"
	"erp-core-backend/middleware"
	apimodels "erp-core-backend/models/api"
	approvalapimodels "erp-core-backend/models/api/approval"

	"github.com/gofiber/fiber/v2"
)

type approvalWorkflowApiController struct {
	controllers.BaseAPIController
}

func InitApprovalWorkflowApiRouters(app fiber.Router) {
	controller := approvalWorkflowApiController{}
	app.Route("approval_workflows", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", middleware.OrgAdminRequired(), controller.create)
		router.Get(":id", controller.getByID)
		router.Delete(":id", middleware.OrgAdminRequired(), controller.delete)
	})
}

// @Summary Создание маршрута согласования
// @Tags Маршруты согласования
// @Description Создание маршрута согласования с этапами
// @Param   Authorization		header	string									true	"Authorization token"
// @Param	body 				body	approvalapimodels.WorkflowCreateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approval_workflows [post]
func (c *approvalWorkflowApiController) create(ctx *fiber.Ctx) error {
	var payload approvalapimodels.WorkflowCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	id, err := approvalworkflowhandler.Instance.Create(organizationID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания маршрута согласования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список маршрутов согласования
// @Tags Маршруты согласования
// @Description Список маршрутов согласования организации
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approval_workflows [get]
func (c *approvalWorkflowApiController) list(ctx *fiber.Ctx) error {
	organizationID := middleware.GetUserOrg(ctx)
	result, err := approvalworkflowhandler.Instance.List(organizationID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка маршрутов согласования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Маршрут согласования
// @Tags Маршруты согласования
// @Description Маршрут согласования с этапами
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approval_workflows/{id} [get]
func (c *approvalWorkflowApiController) getByID(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	result, err := approvalworkflowhandler.Instance.GetByID(organizationID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения маршрута согласования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Удаление маршрута согласования
// @Tags Маршруты согласования
// @Description Удаление маршрута согласования вместе с этапами
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approval_workflows/{id} [delete]
func (c *approvalWorkflowApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	err = approvalworkflowhandler.Instance.Delete(organizationID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления маршрута согласования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
