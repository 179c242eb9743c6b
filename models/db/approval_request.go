package dbmodels

import (
	"time"

	"erp-core-backend/models"

	"github.com/shopspring/decimal"
)

// ApprovalRequest - экземпляр многоэтапного согласования одного перехода документа.
// Меняется только через approve/reject под блокировкой строки.
type ApprovalRequest struct {
	BaseOrgModel
	WorkflowID      string            `gorm:"type:varchar(36)"`
	EntityType      models.EntityType `gorm:"type:varchar(50);index:idx_approval_entity"`
	EntityID        string            `gorm:"type:varchar(36);index:idx_approval_entity"`
	FromStatus      models.DocStatus  `gorm:"type:varchar(50)"`
	ToStatus        models.DocStatus  `gorm:"type:varchar(50)"`
	Amount          *decimal.Decimal  `gorm:"type:numeric(18,4)"`
	CurrentStep     int
	TotalSteps      int
	Status          models.ApprovalStatus `gorm:"type:varchar(20);index"`
	RequestedByID   string                `gorm:"type:varchar(36)"`
	RequestedBy     *OrgUser              `gorm:"foreignKey:RequestedByID"`
	ApprovedByID    string                `gorm:"type:varchar(36)"`
	ApprovedAt      *time.Time
	RejectedByID    string `gorm:"type:varchar(36)"`
	RejectedAt      *time.Time
	RejectionReason string
}
