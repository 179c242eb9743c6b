package dbmodels

import (
	"time"

	"erp-core-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PurchaseOrder struct {
	BaseOrgModel
	DocumentNumber string `gorm:"type:varchar(64);index"`
	SupplierName   string `gorm:"type:varchar(255)"`
	WarehouseID    string `gorm:"type:varchar(36)"`
	Warehouse      *Warehouse
	Status         models.DocStatus `gorm:"type:varchar(50);index"`
	TotalAmount    decimal.Decimal  `gorm:"type:numeric(18,4)"`
	Currency       string           `gorm:"type:varchar(3)"`
	ExpectedDate   *time.Time
	Comment        string
	AuthorID       string   `gorm:"type:varchar(36)"`
	Author         *OrgUser `gorm:"foreignKey:AuthorID"`
	ApprovedByID   string   `gorm:"type:varchar(36)"`
	ApprovedAt     *time.Time
	Lines          []PurchaseOrderLine `gorm:"foreignKey:PurchaseOrderID"`
}

type PurchaseOrderLine struct {
	BaseOrgModel
	PurchaseOrderID string `gorm:"type:varchar(36);index"`
	ItemID          string `gorm:"type:varchar(36)"`
	Item            *Item
	Quantity        decimal.Decimal `gorm:"type:numeric(18,4)"`
	Price           decimal.Decimal `gorm:"type:numeric(18,4)"`
	Amount          decimal.Decimal `gorm:"type:numeric(18,4)"`
}

func (p *PurchaseOrder) AfterDelete(tx *gorm.DB) (err error) {
	if p.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("purchase_order_id = ?", p.ID).Delete(&PurchaseOrderLine{})
	return
}
