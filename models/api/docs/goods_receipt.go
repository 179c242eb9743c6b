package docapimodels

import (
	"time"

	"erp-core-backend/models"
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
)

type GoodsReceiptCreateData struct {
	PurchaseOrderID string        `json:"purchase_order_id"`
	WarehouseID     string        `json:"warehouse_id"`
	Comment         string        `json:"comment"`
	Lines           []DocLineData `json:"lines"`
}

func (r GoodsReceiptCreateData) Validate() error {
	if r.WarehouseID == "" {
		return errors.New("не указан склад")
	}
	return validateLines(r.Lines)
}

type GoodsReceiptView struct {
	ID              string           `json:"id"`
	DocumentNumber  string           `json:"document_number"`
	PurchaseOrderID string           `json:"purchase_order_id,omitempty"`
	WarehouseID     string           `json:"warehouse_id"`
	WarehouseName   string           `json:"warehouse_name,omitempty"`
	Status          models.DocStatus `json:"status"`
	Comment         string           `json:"comment,omitempty"`
	AuthorID        string           `json:"author_id"`
	AuthorName      string           `json:"author_name,omitempty"`
	CompletedByID   string           `json:"completed_by_id,omitempty"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	Lines           []DocLineView    `json:"lines"`
}

func GoodsReceiptConvert(rec dbmodels.GoodsReceiptNote) GoodsReceiptView {
	view := GoodsReceiptView{
		ID:              rec.ID,
		DocumentNumber:  rec.DocumentNumber,
		PurchaseOrderID: rec.PurchaseOrderID,
		WarehouseID:     rec.WarehouseID,
		Status:          rec.Status,
		Comment:         rec.Comment,
		AuthorID:        rec.AuthorID,
		CompletedByID:   rec.CompletedByID,
		CompletedAt:     rec.CompletedAt,
		CreatedAt:       rec.CreatedAt,
		Lines:           make([]DocLineView, 0, len(rec.Lines)),
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
			Amount:   line.Quantity.Mul(line.Price),
		}
		if line.Item != nil {
			lineView.ItemName = line.Item.Name
		}
		view.Lines = append(view.Lines, lineView)
	}
	return view
}
