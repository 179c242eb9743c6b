package approvalapimodels

import (
	"erp-core-backend/models"
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type WorkflowCreateData struct {
	Name       string             `json:"name"`
	EntityType models.EntityType  `json:"entity_type"`
	Steps      []WorkflowStepData `json:"steps"`
}

type WorkflowStepData struct {
	StepNumber int              `json:"step_number"` // 0 - нумеруется по порядку
	RoleID     string           `json:"role_id"`
	MinAmount  *decimal.Decimal `json:"min_amount"`
	MaxAmount  *decimal.Decimal `json:"max_amount"`
}

func (r WorkflowCreateData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано наименование")
	}
	if !r.EntityType.IsValid() {
		return errors.Errorf("неизвестный тип документа: %v", r.EntityType)
	}
	for _, step := range r.Steps {
		if step.MinAmount != nil && step.MaxAmount != nil && step.MaxAmount.LessThan(*step.MinAmount) {
			return errors.Errorf("этап %v: верхняя граница суммы меньше нижней", step.StepNumber)
		}
	}
	return nil
}

type WorkflowView struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	EntityType models.EntityType  `json:"entity_type"`
	IsActive   bool               `json:"is_active"`
	Steps      []WorkflowStepView `json:"steps"`
}

type WorkflowStepView struct {
	ID         string           `json:"id"`
	StepNumber int              `json:"step_number"`
	RoleID     string           `json:"role_id,omitempty"`
	MinAmount  *decimal.Decimal `json:"min_amount,omitempty"`
	MaxAmount  *decimal.Decimal `json:"max_amount,omitempty"`
}

func WorkflowConvert(rec dbmodels.ApprovalWorkflow) WorkflowView {
	view := WorkflowView{
		ID:         rec.ID,
		Name:       rec.Name,
		EntityType: rec.EntityType,
		IsActive:   rec.IsActive,
		Steps:      make([]WorkflowStepView, 0, len(rec.Steps)),
	}
	for _, step := range rec.Steps {
		view.Steps = append(view.Steps, WorkflowStepView{
			ID:         step.ID,
			StepNumber: step.StepNumber,
			RoleID:     step.RoleID,
			MinAmount:  step.MinAmount,
			MaxAmount:  step.MaxAmount,
		})
	}
	return view
}
