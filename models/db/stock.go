package dbmodels

import (
	"erp-core-backend/models"

	"github.com/shopspring/decimal"
)

// StockBalance - остаток по (организация, склад, номенклатура)
type StockBalance struct {
	BaseModel
	OrganizationID string          `gorm:"type:varchar(36);uniqueIndex:idx_stock_balance_key"`
	WarehouseID    string          `gorm:"type:varchar(36);uniqueIndex:idx_stock_balance_key"`
	ItemID         string          `gorm:"type:varchar(36);uniqueIndex:idx_stock_balance_key"`
	Quantity       decimal.Decimal `gorm:"type:numeric(18,4)"`
	Reserved       decimal.Decimal `gorm:"type:numeric(18,4)"`
}

// Available - доступный остаток без учета резерва
func (b StockBalance) Available() decimal.Decimal {
	return b.Quantity.Sub(b.Reserved)
}

// StockMovement - журнал движений, пишется в той же транзакции, что и проведение документа
type StockMovement struct {
	BaseOrgModel
	WarehouseID  string              `gorm:"type:varchar(36);index"`
	ItemID       string              `gorm:"type:varchar(36);index"`
	EntityType   models.EntityType   `gorm:"type:varchar(50)"`
	EntityID     string              `gorm:"type:varchar(36);index"`
	MovementType models.MovementType `gorm:"type:varchar(20)"`
	Quantity     decimal.Decimal     `gorm:"type:numeric(18,4)"`
	ActorID      string              `gorm:"type:varchar(36)"`
}
