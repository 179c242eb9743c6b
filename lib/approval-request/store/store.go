package approvalrequeststore

import (
	"erp-core-backend/models"
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.ApprovalRequest) (id string, err error)
	GetByID(organizationID, id string) (rec *dbmodels.ApprovalRequest, err error)
	// GetByIDForUpdate читает запрос под блокировкой строки, вызывать только внутри транзакции
	GetByIDForUpdate(organizationID, id string) (rec *dbmodels.ApprovalRequest, err error)
	GetPendingByEntity(organizationID string, entityType models.EntityType, entityID string) (rec *dbmodels.ApprovalRequest, err error)
	Update(organizationID, id string, updMap map[string]interface{}) error
	ListPending(organizationID string, entityType models.EntityType) (list []dbmodels.ApprovalRequest, err error)
	ListByEntity(organizationID string, entityType models.EntityType, entityID string) (list []dbmodels.ApprovalRequest, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApprovalRequest) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(organizationID, id string) (*dbmodels.ApprovalRequest, error) {
	rec := dbmodels.ApprovalRequest{}
	err := i.db.
		Where("id = ?", id).
		Where("organization_id = ?", organizationID).
		Preload("RequestedBy").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByIDForUpdate(organizationID, id string) (*dbmodels.ApprovalRequest, error) {
	rec := dbmodels.ApprovalRequest{}
	err := i.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Where("organization_id = ?", organizationID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetPendingByEntity(organizationID string, entityType models.EntityType, entityID string) (*dbmodels.ApprovalRequest, error) {
	rec := dbmodels.ApprovalRequest{}
	err := i.db.
		Where("organization_id = ?", organizationID).
		Where("entity_type = ?", entityType).
		Where("entity_id = ?", entityID).
		Where("status = ?", models.ApprovalStatusPending).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(organizationID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.ApprovalRequest{}).
		Where("id = ?", id).
		Where("organization_id = ?", organizationID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запрос на согласование не найден")
	}
	return nil
}

func (i impl) ListPending(organizationID string, entityType models.EntityType) (list []dbmodels.ApprovalRequest, err error) {
	list = []dbmodels.ApprovalRequest{}
	tx := i.db.
		Where("organization_id = ?", organizationID).
		Where("status = ?", models.ApprovalStatusPending).
		Preload("RequestedBy").
		Order("created_at ASC")
	if entityType != "" {
		tx = tx.Where("entity_type = ?", entityType)
	}
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListByEntity(organizationID string, entityType models.EntityType, entityID string) (list []dbmodels.ApprovalRequest, err error) {
	list = []dbmodels.ApprovalRequest{}
	err = i.db.
		Where("organization_id = ?", organizationID).
		Where("entity_type = ?", entityType).
		Where("entity_id = ?", entityID).
		Preload("RequestedBy").
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
