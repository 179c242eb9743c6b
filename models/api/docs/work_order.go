package docapimodels

import (
	"time"

	"erp-core-backend/models"
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type WorkOrderCreateData struct {
	ItemID       string          `json:"item_id"`
	WarehouseID  string          `json:"warehouse_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	PlannedStart *time.Time      `json:"planned_start"`
	PlannedEnd   *time.Time      `json:"planned_end"`
	Comment      string          `json:"comment"`
}

func (r WorkOrderCreateData) Validate() error {
	if r.ItemID == "" {
		return errors.New("не указана номенклатура")
	}
	if r.WarehouseID == "" {
		return errors.New("не указан склад")
	}
	if !r.Quantity.IsPositive() {
		return errors.New("количество должно быть больше нуля")
	}
	if r.PlannedStart != nil && r.PlannedEnd != nil && r.PlannedEnd.Before(*r.PlannedStart) {
		return errors.New("дата окончания раньше даты начала")
	}
	return nil
}

type WorkOrderView struct {
	ID             string           `json:"id"`
	DocumentNumber string           `json:"document_number"`
	ItemID         string           `json:"item_id"`
	ItemName       string           `json:"item_name,omitempty"`
	WarehouseID    string           `json:"warehouse_id"`
	WarehouseName  string           `json:"warehouse_name,omitempty"`
	Status         models.DocStatus `json:"status"`
	Quantity       decimal.Decimal  `json:"quantity"`
	PlannedStart   *time.Time       `json:"planned_start,omitempty"`
	PlannedEnd     *time.Time       `json:"planned_end,omitempty"`
	StartedAt      *time.Time       `json:"started_at,omitempty"`
	CompletedAt    *time.Time       `json:"completed_at,omitempty"`
	Comment        string           `json:"comment,omitempty"`
	AuthorID       string           `json:"author_id"`
	AuthorName     string           `json:"author_name,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

func WorkOrderConvert(rec dbmodels.WorkOrder) WorkOrderView {
	view := WorkOrderView{
		ID:             rec.ID,
		DocumentNumber: rec.DocumentNumber,
		ItemID:         rec.ItemID,
		WarehouseID:    rec.WarehouseID,
		Status:         rec.Status,
		Quantity:       rec.Quantity,
		PlannedStart:   rec.PlannedStart,
		PlannedEnd:     rec.PlannedEnd,
		StartedAt:      rec.StartedAt,
		CompletedAt:    rec.CompletedAt,
		Comment:        rec.Comment,
		AuthorID:       rec.AuthorID,
		CreatedAt:      rec.CreatedAt,
	}
	if rec.Item != nil {
		view.ItemName = rec.Item.Name
	}
	if rec.Warehouse != nil {
		view.WarehouseName = rec.Warehouse.Name
	}
	if rec.Author != nil {
		view.AuthorName = rec.Author.GetFullName()
	}
	return view
}
