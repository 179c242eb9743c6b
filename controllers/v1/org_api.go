package apiv1

import (
	"erp-core-backend/controllers"
	orghandler "erp-core-backend/lib/org"
	"erp-core-backend/middleware"
	apimodels "erp-core-backend/models/api"
	orgapimodels "erp-core-backend/models/api/org"

	"github.com/gofiber/fiber/v2"
)

type orgApiController struct {
	controllers.BaseAPIController
}

func InitOrgApiRouters(app fiber.Router) {
	controller := orgApiController{}
	app.Route("organizations", func(router fiber.Router) {
		router.Post("", controller.createOrg)
	})
}

func InitOrgProtectedApiRouters(app fiber.Router) {
	controller := orgApiController{}
	app.Route("organization", func(router fiber.Router) {
		router.Get("", controller.getOrg)
		router.Get("users", middleware.OrgAdminRequired(), controller.listUsers)
		router.Delete("", middleware.OrgAdminRequired(), controller.deleteOrg)
	})
}

// @Summary Регистрация организации
// @Tags Организации
// @Description Регистрация организации с администратором и сериями нумерации
// @Param	body				body		orgapimodels.CreateOrgData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/organizations [post]
func (c *orgApiController) createOrg(ctx *fiber.Ctx) error {
	var payload orgapimodels.CreateOrgData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := orghandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка регистрации организации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Данные организации
// @Tags Организации
// @Description Данные организации
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/organization [get]
func (c *orgApiController) getOrg(ctx *fiber.Ctx) error {
	organizationID := middleware.GetUserOrg(ctx)
	result, err := orghandler.Instance.GetByID(organizationID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения данных организации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Список пользователей организации
// @Tags Организации
// @Description Список пользователей организации
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/organization/users [get]
func (c *orgApiController) listUsers(ctx *fiber.Ctx) error {
	organizationID := middleware.GetUserOrg(ctx)
	result, err := orghandler.Instance.ListUsers(organizationID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка пользователей")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Удаление организации
// @Tags Организации
// @Description Пометка организации удаленной
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/organization [delete]
func (c *orgApiController) deleteOrg(ctx *fiber.Ctx) error {
	organizationID := middleware.GetUserOrg(ctx)
	err := orghandler.Instance.Delete(organizationID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления организации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
