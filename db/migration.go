package db

import (
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Organization{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Organization")
	}
	if err := DB.AutoMigrate(&dbmodels.OrgUser{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры OrgUser")
	}
	if err := DB.AutoMigrate(&dbmodels.NumberSeries{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры NumberSeries")
	}
	if err := DB.AutoMigrate(&dbmodels.ApprovalWorkflow{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApprovalWorkflow")
	}
	if err := DB.AutoMigrate(&dbmodels.ApprovalWorkflowStep{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApprovalWorkflowStep")
	}
	if err := DB.AutoMigrate(&dbmodels.ApprovalRequest{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApprovalRequest")
	}
	if err := DB.AutoMigrate(&dbmodels.Warehouse{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Warehouse")
	}
	if err := DB.AutoMigrate(&dbmodels.Item{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Item")
	}
	if err := DB.AutoMigrate(&dbmodels.StockBalance{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры StockBalance")
	}
	if err := DB.AutoMigrate(&dbmodels.StockMovement{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры StockMovement")
	}
	if err := DB.AutoMigrate(&dbmodels.PurchaseOrder{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры PurchaseOrder")
	}
	if err := DB.AutoMigrate(&dbmodels.PurchaseOrderLine{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры PurchaseOrderLine")
	}
	if err := DB.AutoMigrate(&dbmodels.SalesOrder{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры SalesOrder")
	}
	if err := DB.AutoMigrate(&dbmodels.SalesOrderLine{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры SalesOrderLine")
	}
	if err := DB.AutoMigrate(&dbmodels.WorkOrder{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры WorkOrder")
	}
	if err := DB.AutoMigrate(&dbmodels.GoodsReceiptNote{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры GoodsReceiptNote")
	}
	if err := DB.AutoMigrate(&dbmodels.GoodsReceiptLine{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры GoodsReceiptLine")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
