package initializers

import (
	"context"
	"erp-core-backend/config"
	"erp-core-backend/fiberlog"
	approvalrequesthandler "erp-core-backend/lib/approval-request"
	approvalworkflowhandler "erp-core-backend/lib/approval-workflow"
	itemhandler "erp-core-backend/lib/dicts/item"
	warehousehandler "erp-core-backend/lib/dicts/warehouse"
	xlsexport "erp-core-backend/lib/export/xls"
	goodsreceipthandler "erp-core-backend/lib/goods-receipt"
	inventoryhandler "erp-core-backend/lib/inventory"
	numberserieshandler "erp-core-backend/lib/number-series"
	orghandler "erp-core-backend/lib/org"
	purchaseorderhandler "erp-core-backend/lib/purchase-order"
	salesorderhandler "erp-core-backend/lib/sales-order"
	workorderhandler "erp-core-backend/lib/work-order"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	numberserieshandler.NewHandler()
	approvalworkflowhandler.NewHandler()
	approvalrequesthandler.NewHandler()
	orghandler.NewHandler()
	warehousehandler.NewHandler()
	itemhandler.NewHandler()
	inventoryhandler.NewHandler()
	purchaseorderhandler.NewHandler()
	salesorderhandler.NewHandler()
	workorderhandler.NewHandler()
	goodsreceipthandler.NewHandler()
	xlsexport.NewHandler()
}
