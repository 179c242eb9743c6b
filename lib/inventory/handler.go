package inventoryhandler

import (
	"erp-core-backend/db"
	inventorystore "erp-core-backend/lib/inventory/store"
	"erp-core-backend/models"
	stockapimodels "erp-core-backend/models/api/stock"
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Provider interface {
	// Post проводит движение и меняет остаток под блокировкой строки
	Post(organizationID, warehouseID, itemID string, movementType models.MovementType,
		quantity decimal.Decimal, entityType models.EntityType, entityID, actorID string) (hMsg string, err error)
	ListBalances(organizationID, warehouseID string) ([]stockapimodels.StockBalanceView, error)
	ListMovements(organizationID, itemID string) ([]stockapimodels.StockMovementView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db:    db.DB,
		store: inventorystore.NewInstance(db.DB),
	}
}

// NewHandlerWithTx используется при проведении документа в общей транзакции
func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		db:    tx,
		store: inventorystore.NewInstance(tx),
	}
}

type impl struct {
	db    *gorm.DB
	store inventorystore.Provider
}

func (i impl) Post(organizationID, warehouseID, itemID string, movementType models.MovementType,
	quantity decimal.Decimal, entityType models.EntityType, entityID, actorID string) (string, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return "количество движения должно быть больше нуля", nil
	}
	balance, err := i.store.GetBalanceForUpdate(organizationID, warehouseID, itemID)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения остатка")
	}
	if balance == nil {
		id, err := i.store.CreateBalance(dbmodels.StockBalance{
			OrganizationID: organizationID,
			WarehouseID:    warehouseID,
			ItemID:         itemID,
		})
		if err != nil {
			return "", errors.Wrap(err, "ошибка создания строки остатка")
		}
		balance, err = i.store.GetBalanceForUpdate(organizationID, warehouseID, itemID)
		if err != nil {
			return "", errors.Wrap(err, "ошибка получения остатка")
		}
		if balance == nil {
			return "", errors.Errorf("строка остатка не найдена после создания (id %v)", id)
		}
	}
	quantityUpd := balance.Quantity
	reservedUpd := balance.Reserved
	switch movementType {
	case models.MovementTypeReceipt, models.MovementTypeProduction:
		quantityUpd = quantityUpd.Add(quantity)
	case models.MovementTypeIssue:
		if balance.Available().LessThan(quantity) {
			return "недостаточно свободного остатка на складе", nil
		}
		quantityUpd = quantityUpd.Sub(quantity)
	case models.MovementTypeReserve:
		if balance.Available().LessThan(quantity) {
			return "недостаточно свободного остатка для резерва", nil
		}
		reservedUpd = reservedUpd.Add(quantity)
	case models.MovementTypeRelease:
		if balance.Reserved.LessThan(quantity) {
			return "резерв меньше снимаемого количества", nil
		}
		reservedUpd = reservedUpd.Sub(quantity)
	default:
		return "", errors.Errorf("неизвестный тип движения %v", movementType)
	}
	updMap := map[string]interface{}{
		"quantity": quantityUpd,
		"reserved": reservedUpd,
	}
	err = i.store.UpdateBalance(organizationID, balance.ID, updMap)
	if err != nil {
		return "", errors.Wrap(err, "ошибка обновления остатка")
	}
	_, err = i.store.CreateMovement(dbmodels.StockMovement{
		BaseOrgModel: dbmodels.BaseOrgModel{
			OrganizationID: organizationID,
		},
		WarehouseID:  warehouseID,
		ItemID:       itemID,
		EntityType:   entityType,
		EntityID:     entityID,
		MovementType: movementType,
		Quantity:     quantity,
		ActorID:      actorID,
	})
	if err != nil {
		return "", errors.Wrap(err, "ошибка записи движения")
	}
	return "", nil
}

func (i impl) ListBalances(organizationID, warehouseID string) ([]stockapimodels.StockBalanceView, error) {
	recList, err := i.store.ListBalances(organizationID, warehouseID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения остатков")
	}
	result := make([]stockapimodels.StockBalanceView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, stockapimodels.StockBalanceConvert(rec))
	}
	return result, nil
}

func (i impl) ListMovements(organizationID, itemID string) ([]stockapimodels.StockMovementView, error) {
	recList, err := i.store.ListMovements(organizationID, itemID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения движений")
	}
	result := make([]stockapimodels.StockMovementView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, stockapimodels.StockMovementConvert(rec))
	}
	return result, nil
}
