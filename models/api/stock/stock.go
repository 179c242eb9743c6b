package stockapimodels

import (
	"time"

	"erp-core-backend/models"
	dbmodels "erp-core-backend/models/db"

	"github.com/shopspring/decimal"
)

type StockBalanceView struct {
	ID          string          `json:"id"`
	WarehouseID string          `json:"warehouse_id"`
	ItemID      string          `json:"item_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	Reserved    decimal.Decimal `json:"reserved"`
	Available   decimal.Decimal `json:"available"`
}

func StockBalanceConvert(rec dbmodels.StockBalance) StockBalanceView {
	return StockBalanceView{
		ID:          rec.ID,
		WarehouseID: rec.WarehouseID,
		ItemID:      rec.ItemID,
		Quantity:    rec.Quantity,
		Reserved:    rec.Reserved,
		Available:   rec.Available(),
	}
}

type StockMovementView struct {
	ID           string              `json:"id"`
	WarehouseID  string              `json:"warehouse_id"`
	ItemID       string              `json:"item_id"`
	EntityType   models.EntityType   `json:"entity_type"`
	EntityID     string              `json:"entity_id"`
	MovementType models.MovementType `json:"movement_type"`
	Quantity     decimal.Decimal     `json:"quantity"`
	ActorID      string              `json:"actor_id"`
	CreatedAt    time.Time           `json:"created_at"`
}

func StockMovementConvert(rec dbmodels.StockMovement) StockMovementView {
	return StockMovementView{
		ID:           rec.ID,
		WarehouseID:  rec.WarehouseID,
		ItemID:       rec.ItemID,
		EntityType:   rec.EntityType,
		EntityID:     rec.EntityID,
		MovementType: rec.MovementType,
		Quantity:     rec.Quantity,
		ActorID:      rec.ActorID,
		CreatedAt:    rec.CreatedAt,
	}
}
