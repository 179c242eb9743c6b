package dbmodels

import (
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Item struct {
	BaseOrgModel
	Name          string          `gorm:"type:varchar(255)"`
	Sku           string          `gorm:"type:varchar(64);index"`
	Unit          string          `gorm:"type:varchar(20)"` // Единица измерения
	PurchasePrice decimal.Decimal `gorm:"type:numeric(18,4)"`
	SalesPrice    decimal.Decimal `gorm:"type:numeric(18,4)"`
	Tags          pq.StringArray  `gorm:"type:text[]"`
	IsActive      bool            `gorm:"default:true"`
}
