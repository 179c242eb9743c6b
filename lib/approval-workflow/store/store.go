package approvalworkflowstore

import (
	"erp-core-backend/models"
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.ApprovalWorkflow) (id string, err error)
	CreateStep(rec dbmodels.ApprovalWorkflowStep) (id string, err error)
	GetByID(organizationID, id string) (rec *dbmodels.ApprovalWorkflow, err error)
	GetActiveByEntityType(organizationID string, entityType models.EntityType) (rec *dbmodels.ApprovalWorkflow, err error)
	List(organizationID string) (list []dbmodels.ApprovalWorkflow, err error)
	Delete(organizationID, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApprovalWorkflow) (id string, err error) {
	err = i.db.
		Omit("Steps").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) CreateStep(rec dbmodels.ApprovalWorkflowStep) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(organizationID, id string) (*dbmodels.ApprovalWorkflow, error) {
	rec := dbmodels.ApprovalWorkflow{}
	err := i.db.
		Where("id = ?", id).
		Where("organization_id = ?", organizationID).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_number ASC")
		}).
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

func (i impl) GetActiveByEntityType(organizationID string, entityType models.EntityType) (*dbmodels.ApprovalWorkflow, error) {
	rec := dbmodels.ApprovalWorkflow{}
	err := i.db.
		Where("organization_id = ?", organizationID).
		Where("entity_type = ?", entityType).
		Where("is_active = ?", true).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_number ASC")
		}).
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

func (i impl) List(organizationID string) (list []dbmodels.ApprovalWorkflow, err error) {
	list = []dbmodels.ApprovalWorkflow{}
	err = i.db.
		Where("organization_id = ?", organizationID).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_number ASC")
		}).
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

func (i impl) Delete(organizationID, id string) error {
	rec := dbmodels.ApprovalWorkflow{
		BaseOrgModel: dbmodels.BaseOrgModel{
			BaseModel:      dbmodels.BaseModel{ID: id},
			OrganizationID: organizationID,
		},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}
