package goodsreceiptstore

import (
	docapimodels "erp-core-backend/models/api/docs"
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.GoodsReceiptNote) (id string, err error)
	GetByID(organizationID, id string) (*dbmodels.GoodsReceiptNote, error)
	GetByIDForUpdate(organizationID, id string) (*dbmodels.GoodsReceiptNote, error)
	Update(organizationID, id string, updMap map[string]interface{}) error
	Delete(organizationID, id string) error
	ListCount(organizationID string, filter docapimodels.DocFilter) (count int64, err error)
	List(organizationID string, filter docapimodels.DocFilter) (list []dbmodels.GoodsReceiptNote, err error)
	ListLines(organizationID, noteID string) ([]dbmodels.GoodsReceiptLine, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &storeImpl{
		DB: DB,
	}
}

type storeImpl struct {
	DB *gorm.DB
}

func (i storeImpl) Create(rec dbmodels.GoodsReceiptNote) (string, error) {
	err := i.DB.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i storeImpl) GetByID(organizationID, id string) (*dbmodels.GoodsReceiptNote, error) {
	rec := dbmodels.GoodsReceiptNote{}
	err := i.DB.
		Preload("Lines").
		Preload("Lines.Item").
		Preload("Warehouse").
		Preload("Author").
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

func (i storeImpl) GetByIDForUpdate(organizationID, id string) (*dbmodels.GoodsReceiptNote, error) {
	rec := dbmodels.GoodsReceiptNote{}
	err := i.DB.
		Clauses(clause.Locking{Strength: "UPDATE"}).
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
		Model(&dbmodels.GoodsReceiptNote{}).
		Where("organization_id = ?", organizationID).
		Where("id = ?", id).
		Updates(updMap)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("приходная накладная не найдена")
	}
	return nil
}

func (i storeImpl) Delete(organizationID, id string) error {
	rec := dbmodels.GoodsReceiptNote{}
	err := i.DB.
		Clauses(clause.Returning{}).
		Where("organization_id = ?", organizationID).
		Where("id = ?", id).
		Delete(&rec).Error
	if err != nil {
		return errors.Wrap(err, "ошибка удаления приходной накладной")
	}
	return nil
}

func (i storeImpl) ListCount(organizationID string, filter docapimodels.DocFilter) (int64, error) {
	var rowCount int64
	tx := i.DB.
		Model(dbmodels.GoodsReceiptNote{}).
		Where("organization_id = ?", organizationID)
	i.addFilter(tx, filter)
	err := tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества приходных накладных")
		return 0, errors.New("ошибка получения общего количества приходных накладных")
	}
	return rowCount, nil
}

func (i storeImpl) List(organizationID string, filter docapimodels.DocFilter) ([]dbmodels.GoodsReceiptNote, error) {
	list := []dbmodels.GoodsReceiptNote{}
	tx := i.DB.
		Model(dbmodels.GoodsReceiptNote{}).
		Where("organization_id = ?", organizationID)
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	err := tx.
		Preload("Lines").
		Preload("Lines.Item").
		Preload("Warehouse").
		Preload("Author").
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i storeImpl) ListLines(organizationID, noteID string) ([]dbmodels.GoodsReceiptLine, error) {
	list := []dbmodels.GoodsReceiptLine{}
	err := i.DB.
		Where("organization_id = ?", organizationID).
		Where("goods_receipt_note_id = ?", noteID).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i storeImpl) addFilter(tx *gorm.DB, filter docapimodels.DocFilter) {
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		tx.Where("document_number ilike ?", search)
	}
}

func (i storeImpl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Offset(offset).Limit(limit)
}
