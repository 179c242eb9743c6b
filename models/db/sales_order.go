package dbmodels

import (
	"time"

	"erp-core-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SalesOrder struct {
	BaseOrgModel
	DocumentNumber string `gorm:"type:varchar(64);index"`
	CustomerName   string `gorm:"type:varchar(255)"`
	WarehouseID    string `gorm:"type:varchar(36)"`
	Warehouse      *Warehouse
	Status         models.DocStatus `gorm:"type:varchar(50);index"`
	TotalAmount    decimal.Decimal  `gorm:"type:numeric(18,4)"`
	Currency       string           `gorm:"type:varchar(3)"`
	Comment        string
	AuthorID       string   `gorm:"type:varchar(36)"`
	Author         *OrgUser `gorm:"foreignKey:AuthorID"`
	ConfirmedAt    *time.Time
	DispatchedAt   *time.Time
	Lines          []SalesOrderLine `gorm:"foreignKey:SalesOrderID"`
}

type SalesOrderLine struct {
	BaseOrgModel
	SalesOrderID string `gorm:"type:varchar(36);index"`
	ItemID       string `gorm:"type:varchar(36)"`
	Item         *Item
	Quantity     decimal.Decimal `gorm:"type:numeric(18,4)"`
	Price        decimal.Decimal `gorm:"type:numeric(18,4)"`
	Amount       decimal.Decimal `gorm:"type:numeric(18,4)"`
}

func (s *SalesOrder) AfterDelete(tx *gorm.DB) (err error) {
	if s.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("sales_order_id = ?", s.ID).Delete(&SalesOrderLine{})
	return
}
