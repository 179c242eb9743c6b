package docapimodels

import (
	"time"

	"erp-core-backend/models"
	apimodels "erp-core-backend/models/api"
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type PurchaseOrderCreateData struct {
	SupplierName string        `json:"supplier_name"`
	WarehouseID  string        `json:"warehouse_id"`
	Currency     string        `json:"currency"`
	ExpectedDate *time.Time    `json:"expected_date"`
	Comment      string        `json:"comment"`
	Lines        []DocLineData `json:"lines"`
}

type DocLineData struct {
	ItemID   string          `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

func (r PurchaseOrderCreateData) Validate() error {
	if r.SupplierName == "" {
		return errors.New("не указан поставщик")
	}
	if r.WarehouseID == "" {
		return errors.New("не указан склад")
	}
	return validateLines(r.Lines)
}

func validateLines(lines []DocLineData) error {
	if len(lines) == 0 {
		return errors.New("документ не содержит строк")
	}
	for idx, line := range lines {
		if line.ItemID == "" {
			return errors.Errorf("строка %v: не указана номенклатура", idx+1)
		}
		if !line.Quantity.IsPositive() {
			return errors.Errorf("строка %v: количество должно быть больше нуля", idx+1)
		}
		if line.Price.IsNegative() {
			return errors.Errorf("строка %v: цена не может быть отрицательной", idx+1)
		}
	}
	return nil
}

type DocFilter struct {
	apimodels.Pagination
	Status models.DocStatus `json:"status"`
	Search string           `json:"search"`
}

type PurchaseOrderView struct {
	ID             string           `json:"id"`
	DocumentNumber string           `json:"document_number"`
	SupplierName   string           `json:"supplier_name"`
	WarehouseID    string           `json:"warehouse_id"`
	WarehouseName  string           `json:"warehouse_name,omitempty"`
	Status         models.DocStatus `json:"status"`
	TotalAmount    decimal.Decimal  `json:"total_amount"`
	Currency       string           `json:"currency"`
	ExpectedDate   *time.Time       `json:"expected_date,omitempty"`
	Comment        string           `json:"comment,omitempty"`
	AuthorID       string           `json:"author_id"`
	AuthorName     string           `json:"author_name,omitempty"`
	ApprovedByID   string           `json:"approved_by_id,omitempty"`
	ApprovedAt     *time.Time       `json:"approved_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	Lines          []DocLineView    `json:"lines"`
}

type DocLineView struct {
	ID       string          `json:"id"`
	ItemID   string          `json:"item_id"`
	ItemName string          `json:"item_name,omitempty"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Amount   decimal.Decimal `json:"amount"`
}

func PurchaseOrderConvert(rec dbmodels.PurchaseOrder) PurchaseOrderView {
	view := PurchaseOrderView{
		ID:             rec.ID,
		DocumentNumber: rec.DocumentNumber,
		SupplierName:   rec.SupplierName,
		WarehouseID:    rec.WarehouseID,
		Status:         rec.Status,
		TotalAmount:    rec.TotalAmount,
		Currency:       rec.Currency,
		ExpectedDate:   rec.ExpectedDate,
		Comment:        rec.Comment,
		AuthorID:       rec.AuthorID,
		ApprovedByID:   rec.ApprovedByID,
		ApprovedAt:     rec.ApprovedAt,
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
