package main

import (
	"context"
	"erp-core-backend/config"
	apiv1 "erp-core-backend/controllers/v1"
	"erp-core-backend/controllers/v1/dict"
	"erp-core-backend/fiberlog"
	"erp-core-backend/initializers"
	"erp-core-backend/middleware"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // limit of 100MB
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderXRequestID) == "" {
			c.Request().Header.Set(fiber.HeaderXRequestID, uuid.New().String())
		}
		return c.Next()
	})
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitOrgApiRouters(apiV1)
	apiv1.InitAuthApiRouters(apiV1)

	//dict
	dicts := fiber.New()
	apiV1.Mount("/dict", dicts)
	dicts.Use(middleware.AuthorizationRequired())
	dict.InitWarehouseDictApiRouters(dicts)
	dict.InitItemDictApiRouters(dicts)

	//документы доступны только после авторизации
	apiV1.Use(middleware.AuthorizationRequired())
	apiv1.InitOrgProtectedApiRouters(apiV1)
	apiv1.InitNumberSeriesApiRouters(apiV1)
	apiv1.InitApprovalWorkflowApiRouters(apiV1)
	apiv1.InitApprovalApiRouters(apiV1)
	apiv1.InitPurchaseOrderApiRouters(apiV1)
	apiv1.InitSalesOrderApiRouters(apiV1)
	apiv1.InitWorkOrderApiRouters(apiV1)
	apiv1.InitGoodsReceiptApiRouters(apiV1)
	apiv1.InitInventoryApiRouters(apiV1)

	app.Hooks().OnShutdown()

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
