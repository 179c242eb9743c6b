package apiv1

import (
	"erp-core-backend/controllers"
	inventoryhandler "erp-core-backend/lib/inventory"
	"erp-core-backend/middleware"
	apimodels "erp-core-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type inventoryApiController struct {
	controllers.BaseAPIController
}

func InitInventoryApiRouters(app fiber.Router) {
	controller := inventoryApiController{}
	app.Route("inventory", func(router fiber.Router) {
		router.Get("balances", controller.listBalances)
		router.Get("movements", controller.listMovements)
	})
}

// @Summary Остатки по складам
// @Tags Складской учет
// @Description Остатки с учетом резерва, опционально по складу
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	warehouse_id		query	string	false	"ID склада"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/inventory/balances [get]
func (c *inventoryApiController) listBalances(ctx *fiber.Ctx) error {
	organizationID := middleware.GetUserOrg(ctx)
	warehouseID := ctx.Query("warehouse_id", "")
	result, err := inventoryhandler.Instance.ListBalances(organizationID, warehouseID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения остатков")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Журнал движений
// @Tags Складской учет
// @Description Журнал движений по складу, опционально по номенклатуре
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	item_id				query	string	false	"ID номенклатуры"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/inventory/movements [get]
func (c *inventoryApiController) listMovements(ctx *fiber.Ctx) error {
	organizationID := middleware.GetUserOrg(ctx)
	itemID := ctx.Query("item_id", "")
	result, err := inventoryhandler.Instance.ListMovements(organizationID, itemID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения журнала движений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}
