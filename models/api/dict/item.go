package dictapimodels

import (
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type ItemData struct {
	Name          string          `json:"name"`
	Sku           string          `json:"sku"`
	Unit          string          `json:"unit"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalesPrice    decimal.Decimal `json:"sales_price"`
	Tags          []string        `json:"tags"`
}

func (r ItemData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано наименование")
	}
	if r.Sku == "" {
		return errors.New("не указан артикул")
	}
	return nil
}

type ItemView struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Sku           string          `json:"sku"`
	Unit          string          `json:"unit,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalesPrice    decimal.Decimal `json:"sales_price"`
	Tags          []string        `json:"tags,omitempty"`
	IsActive      bool            `json:"is_active"`
}

func ItemConvert(rec dbmodels.Item) ItemView {
	return ItemView{
		ID:            rec.ID,
		Name:          rec.Name,
		Sku:           rec.Sku,
		Unit:          rec.Unit,
		PurchasePrice: rec.PurchasePrice,
		SalesPrice:    rec.SalesPrice,
		Tags:          []string(rec.Tags),
		IsActive:      rec.IsActive,
	}
}
