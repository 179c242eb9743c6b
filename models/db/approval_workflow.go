package dbmodels

import (
	"erp-core-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApprovalWorkflow struct {
	BaseOrgModel
	Name       string                 `gorm:"type:varchar(255)"`
	EntityType models.EntityType      `gorm:"type:varchar(50);index"`
	IsActive   bool                   `gorm:"default:true"`
	Steps      []ApprovalWorkflowStep `gorm:"foreignKey:WorkflowID"`
}

// ApprovalWorkflowStep - этап согласования.
// MinAmount/MaxAmount - диапазон сумм документа, на которые этап распространяется,
// nil означает открытую границу. Границы включительные.
type ApprovalWorkflowStep struct {
	BaseOrgModel
	WorkflowID string `gorm:"type:varchar(36);index"`
	StepNumber int
	RoleID     string           `gorm:"type:varchar(36)"`
	MinAmount  *decimal.Decimal `gorm:"type:numeric(18,4)"`
	MaxAmount  *decimal.Decimal `gorm:"type:numeric(18,4)"`
}

// AppliesTo - распространяется ли этап на документ с указанной суммой.
// Отсутствие суммы у документа подходит под любой этап.
func (s ApprovalWorkflowStep) AppliesTo(amount *decimal.Decimal) bool {
	if amount == nil {
		return true
	}
	if s.MinAmount != nil && amount.LessThan(*s.MinAmount) {
		return false
	}
	if s.MaxAmount != nil && amount.GreaterThan(*s.MaxAmount) {
		return false
	}
	return true
}

func (w *ApprovalWorkflow) AfterDelete(tx *gorm.DB) (err error) {
	if w.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("workflow_id = ?", w.ID).Delete(&ApprovalWorkflowStep{})
	return
}
