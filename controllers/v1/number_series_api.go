package apiv1

import (
	"erp-core-backend/controllers"
	numberserieshandler "erp-core-backend/lib/number-series"
	"erp-core-backend/middleware"
	apimodels "erp-core-backend/models/api"
	seriesapimodels "erp-core-backend/models/api/series"

	"github.com/gofiber/fiber/v2"
)

type numberSeriesApiController struct {
	controllers.BaseAPIController
}

func InitNumberSeriesApiRouters(app fiber.Router) {
	controller := numberSeriesApiController{}
	app.Route("number_series", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Put("", middleware.OrgAdminRequired(), controller.save)
	})
}

// @Summary Список серий нумерации
// @Tags Серии нумерации
// @Description Список серий нумерации организации
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/number_series [get]
func (c *numberSeriesApiController) list(ctx *fiber.Ctx) error {
	organizationID := middleware.GetUserOrg(ctx)
	result, err := numberserieshandler.Instance.List(organizationID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка серий нумерации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Настройка серии нумерации
// @Tags Серии нумерации
// @Description Сохранение настроек серии нумерации для типа документа
// @Param   Authorization		header	string								true	"Authorization token"
// @Param	body 				body	seriesapimodels.NumberSeriesData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/number_series [put]
func (c *numberSeriesApiController) save(ctx *fiber.Ctx) error {
	var payload seriesapimodels.NumberSeriesData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	organizationID := middleware.GetUserOrg(ctx)
	err := numberserieshandler.Instance.Save(organizationID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения серии нумерации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
