package approvalworkflowhandler

import (
	"erp-core-backend/db"
	approvalworkflowstore "erp-core-backend/lib/approval-workflow/store"
	approvalapimodels "erp-core-backend/models/api/approval"
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(organizationID string, data approvalapimodels.WorkflowCreateData) (id string, err error)
	GetByID(organizationID, id string) (view approvalapimodels.WorkflowView, err error)
	List(organizationID string) (list []approvalapimodels.WorkflowView, err error)
	Delete(organizationID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: approvalworkflowstore.NewInstance(db.DB),
	}
}

type impl struct {
	store approvalworkflowstore.Provider
}

func (i impl) Create(organizationID string, data approvalapimodels.WorkflowCreateData) (id string, err error) {
	logger := log.
		WithField("organization_id", organizationID).
		WithField("entity_type", data.EntityType)
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := approvalworkflowstore.NewInstance(tx)
		existing, err := store.GetActiveByEntityType(organizationID, data.EntityType)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.Errorf("для документа %v уже настроен маршрут согласования", data.EntityType.ToHuman())
		}
		rec := dbmodels.ApprovalWorkflow{
			BaseOrgModel: dbmodels.BaseOrgModel{
				OrganizationID: organizationID,
			},
			Name:       data.Name,
			EntityType: data.EntityType,
			IsActive:   true,
		}
		id, err = store.Create(rec)
		if err != nil {
			return errors.Wrap(err, "ошибка создания маршрута согласования")
		}
		for idx, step := range data.Steps {
			stepNumber := step.StepNumber
			if stepNumber == 0 {
				stepNumber = idx + 1
			}
			stepRec := dbmodels.ApprovalWorkflowStep{
				BaseOrgModel: dbmodels.BaseOrgModel{
					OrganizationID: organizationID,
				},
				WorkflowID: id,
				StepNumber: stepNumber,
				RoleID:     step.RoleID,
				MinAmount:  step.MinAmount,
				MaxAmount:  step.MaxAmount,
			}
			_, err = store.CreateStep(stepRec)
			if err != nil {
				return errors.Wrapf(err, "ошибка сохранения этапа согласования, step=%+v", step)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	logger.
		WithField("rec_id", id).
		Info("создан маршрут согласования")
	return id, nil
}

func (i impl) GetByID(organizationID, id string) (approvalapimodels.WorkflowView, error) {
	rec, err := i.store.GetByID(organizationID, id)
	if err != nil {
		return approvalapimodels.WorkflowView{}, err
	}
	if rec == nil {
		return approvalapimodels.WorkflowView{}, errors.New("маршрут согласования не найден")
	}
	return approvalapimodels.WorkflowConvert(*rec), nil
}

func (i impl) List(organizationID string) ([]approvalapimodels.WorkflowView, error) {
	recList, err := i.store.List(organizationID)
	if err != nil {
		return nil, err
	}
	result := make([]approvalapimodels.WorkflowView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, approvalapimodels.WorkflowConvert(rec))
	}
	return result, nil
}

func (i impl) Delete(organizationID, id string) error {
	logger := log.
		WithField("organization_id", organizationID).
		WithField("rec_id", id)
	err := i.store.Delete(organizationID, id)
	if err != nil {
		logger.WithError(err).Error("ошибка удаления маршрута согласования")
		return err
	}
	logger.Info("удален маршрут согласования")
	return nil
}
