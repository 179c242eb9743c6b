package docapimodels

import (
	"time"

	"erp-core-backend/models"
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type SalesOrderCreateData struct {
	CustomerName string        `json:"customer_name"`
	WarehouseID  string        `json:"warehouse_id"`
	Currency     string        `json:"currency"`
	Comment      string        `json:"comment"`
	Lines        []DocLineData `json:"lines"`
}

func (r SalesOrderCreateData) Validate() error {
	if r.CustomerName == "" {
		return errors.New("не указан покупатель")
	}
	if r.WarehouseID == "" {
		return errors.New("не указан склад")
	}
	return validateLines(r.Lines)
}

type SalesOrderView struct {
	ID             string           `json:"id"`
	DocumentNumber string           `json:"document_number"`
	CustomerName   string           `json:"customer_name"`
	WarehouseID    string           `json:"warehouse_id"`
	WarehouseName  string           `json:"warehouse_name,omitempty"`
	Status         models.DocStatus `json:"status"`
	TotalAmount    decimal.Decimal  `json:"total_amount"`
	Currency       string           `json:"currency"`
	Comment        string           `json:"comment,omitempty"`
	AuthorID       string           `json:"author_id"`
	AuthorName     string           `json:"author_name,omitempty"`
	ConfirmedAt    *time.Time       `json:"confirmed_at,omitempty"`
	DispatchedAt   *time.Time       `json:"dispatched_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	Lines          []DocLineView    `json:"lines"`
}

func SalesOrderConvert(rec dbmodels.SalesOrder) SalesOrderView {
	view := SalesOrderView{
		ID:             rec.ID,
		DocumentNumber: rec.DocumentNumber,
		CustomerName:   rec.CustomerName,
		WarehouseID:    rec.WarehouseID,
		Status:         rec.Status,
		TotalAmount:    rec.TotalAmount,
		Currency:       rec.Currency,
		Comment:        rec.Comment,
		AuthorID:       rec.AuthorID,
		ConfirmedAt:    rec.ConfirmedAt,
		DispatchedAt:   rec.DispatchedAt,
		CreatedAt:      rec.CreatedAt,
		Lines:          make([]DocLineView, 0, len(rec.Lines)),
	}
	if rec.Warehouse != nil {
		view.WarehouseName = rec.Warehouse.Name
	}
	if rec.Author != nil {
		view.AuthorName = rec.Author.GetFullName()
	}
	for _, line := range rec.Lines {
		lineView := DocLineView{
			ID:       line.ID,
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Price:    line.Price,
			Amount:   line.Amount,
		}
		if line.Item != nil {
			lineView.ItemName = line.Item.Name
		}
		view.Lines = append(view.Lines, lineView)
	}
	return view
}
