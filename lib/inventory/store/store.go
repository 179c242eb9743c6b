package inventorystore

import (
	dbmodels "erp-core-backend/models/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	GetBalanceForUpdate(organizationID, warehouseID, itemID string) (*dbmodels.StockBalance, error)
	CreateBalance(rec dbmodels.StockBalance) (string, error)
	UpdateBalance(organizationID, id string, updMap map[string]interface{}) error
	ListBalances(organizationID, warehouseID string) ([]dbmodels.StockBalance, error)
	CreateMovement(rec dbmodels.StockMovement) (string, error)
	ListMovements(organizationID, itemID string) ([]dbmodels.StockMovement, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &storeImpl{
		DB: DB,
	}
}

type storeImpl struct {
	DB *gorm.DB
}

func (i storeImpl) GetBalanceForUpdate(organizationID, warehouseID, itemID string) (*dbmodels.StockBalance, error) {
	rec := dbmodels.StockBalance{}
	err := i.DB.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("organization_id = ?", organizationID).
		Where("warehouse_id = ?", warehouseID).
		Where("item_id = ?", itemID).
		First(&rec).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i storeImpl) CreateBalance(rec dbmodels.StockBalance) (string, error) {
	err := i.DB.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i storeImpl) UpdateBalance(organizationID, id string, updMap map[string]interface{}) error {
	result := i.DB.
		Model(&dbmodels.StockBalance{}).
		Where("organization_id = ?", organizationID).
		Where("id = ?", id).
		Updates(updMap)
	return result.Error
}

func (i storeImpl) ListBalances(organizationID, warehouseID string) ([]dbmodels.StockBalance, error) {
	recList := []dbmodels.StockBalance{}
	tx := i.DB.
		Where("organization_id = ?", organizationID)
	if warehouseID != "" {
		tx = tx.Where("warehouse_id = ?", warehouseID)
	}
	err := tx.Find(&recList).Error
	if err != nil {
		return nil, err
	}
	return recList, nil
}

func (i storeImpl) CreateMovement(rec dbmodels.StockMovement) (string, error) {
	err := i.DB.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i storeImpl) ListMovements(organizationID, itemID string) ([]dbmodels.StockMovement, error) {
	recList := []dbmodels.StockMovement{}
	tx := i.DB.
		Where("organization_id = ?", organizationID).
		Order("created_at desc")
	if itemID != "" {
		tx = tx.Where("item_id = ?", itemID)
	}
	err := tx.Find(&recList).Error
	if err != nil {
		return nil, err
	}
	return recList, nil
}
