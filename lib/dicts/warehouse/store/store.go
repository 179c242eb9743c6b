package warehousestore

import (
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Warehouse) (id string, err error)
	GetByID(organizationID, id string) (*dbmodels.Warehouse, error)
	Update(organizationID, id string, updMap map[string]interface{}) error
	List(organizationID string) ([]dbmodels.Warehouse, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &storeImpl{
		DB: DB,
	}
}

type storeImpl struct {
	DB *gorm.DB
}

func (i storeImpl) Create(rec dbmodels.Warehouse) (string, error) {
	err := i.DB.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i storeImpl) GetByID(organizationID, id string) (*dbmodels.Warehouse, error) {
	rec := dbmodels.Warehouse{}
	err := i.DB.
		Where("organization_id = ?", organizationID).
		Where("id = ?", id).
		First(&rec).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i storeImpl) Update(organizationID, id string, updMap map[string]interface{}) error {
	result := i.DB.
		Model(&dbmodels.Warehouse{}).
		Where("organization_id = ?", organizationID).
		Where("id = ?", id).
		Updates(updMap)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("склад не найден")
	}
	return nil
}

func (i storeImpl) List(organizationID string) ([]dbmodels.Warehouse, error) {
	recList := []dbmodels.Warehouse{}
	err := i.DB.
		Where("organization_id = ?", organizationID).
		Order("name").
		Find(&recList).Error
	if err != nil {
		return nil, err
	}
	return recList, nil
}
