package itemstore

import (
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Item) (id string, err error)
	GetByID(organizationID, id string) (*dbmodels.Item, error)
	GetBySku(organizationID, sku string) (*dbmodels.Item, error)
	Update(organizationID, id string, updMap map[string]interface{}) error
	List(organizationID, search string) ([]dbmodels.Item, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &storeImpl{
		DB: DB,
	}
}

type storeImpl struct {
	DB *gorm.DB
}

func (i storeImpl) Create(rec dbmodels.Item) (string, error) {
	err := i.DB.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i storeImpl) GetByID(organizationID, id string) (*dbmodels.Item, error) {
	rec := dbmodels.Item{}
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

func (i storeImpl) GetBySku(organizationID, sku string) (*dbmodels.Item, error) {
	rec := dbmodels.Item{}
	err := i.DB.
		Where("organization_id = ?", organizationID).
		Where("sku = ?", sku).
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
		Model(&dbmodels.Item{}).
		Where("organization_id = ?", organizationID).
		Where("id = ?", id).
		Updates(updMap)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("номенклатура не найдена")
	}
	return nil
}

func (i storeImpl) List(organizationID, search string) ([]dbmodels.Item, error) {
	recList := []dbmodels.Item{}
	tx := i.DB.
		Where("organization_id = ?", organizationID)
	if search != "" {
		like := "%" + search + "%"
		tx = tx.Where("name ilike ? or sku ilike ?", like, like)
	}
	err := tx.
		Order("name").
		Find(&recList).Error
	if err != nil {
		return nil, err
	}
	return recList, nil
}
