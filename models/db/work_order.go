package dbmodels

import (
	"time"

	"erp-core-backend/models"

	"github.com/shopspring/decimal"
)

type WorkOrder struct {
	BaseOrgModel
	DocumentNumber string `gorm:"type:varchar(64);index"`
	ItemID         string `gorm:"type:varchar(36)"`
	Item           *Item
	WarehouseID    string `gorm:"type:varchar(36)"`
	Warehouse      *Warehouse
	Status         models.DocStatus `gorm:"type:varchar(50);index"`
	Quantity       decimal.Decimal  `gorm:"type:numeric(18,4)"`
	PlannedStart   *time.Time
	PlannedEnd     *time.Time
	StartedAt      *time.Time
	CompletedAt    *time.Time
	Comment        string
	AuthorID       string   `gorm:"type:varchar(36)"`
	Author         *OrgUser `gorm:"foreignKey:AuthorID"`
}
