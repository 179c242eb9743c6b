package dbmodels

import (
	"time"

	"erp-core-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GoodsReceiptNote - приходная накладная, после проведения становится неизменяемой
type GoodsReceiptNote struct {
	BaseOrgModel
	DocumentNumber  string `gorm:"type:varchar(64);index"`
	PurchaseOrderID string `gorm:"type:varchar(36);index"`
	PurchaseOrder   *PurchaseOrder
	WarehouseID     string `gorm:"type:varchar(36)"`
	Warehouse       *Warehouse
	Status          models.DocStatus `gorm:"type:varchar(50);index"`
	Comment         string
	AuthorID        string   `gorm:"type:varchar(36)"`
	Author          *OrgUser `gorm:"foreignKey:AuthorID"`
	CompletedByID   string   `gorm:"type:varchar(36)"`
	CompletedAt     *time.Time
	Lines           []GoodsReceiptLine `gorm:"foreignKey:GoodsReceiptNoteID"`
}

type GoodsReceiptLine struct {
	BaseOrgModel
	GoodsReceiptNoteID string `gorm:"type:varchar(36);index"`
	ItemID             string `gorm:"type:varchar(36)"`
	Item               *Item
	Quantity           decimal.Decimal `gorm:"type:numeric(18,4)"`
	Price              decimal.Decimal `gorm:"type:numeric(18,4)"`
}

func (g *GoodsReceiptNote) AfterDelete(tx *gorm.DB) (err error) {
	if g.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("goods_receipt_note_id = ?", g.ID).Delete(&GoodsReceiptLine{})
	return
}
