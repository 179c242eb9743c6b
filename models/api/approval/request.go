package approvalapimodels

import (
	"time"

	"erp-core-backend/models"
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type ApprovalRequestData struct {
	EntityType models.EntityType `json:"entity_type"`
	EntityID   string            `json:"entity_id"`
	FromStatus models.DocStatus  `json:"from_status"`
	ToStatus   models.DocStatus  `json:"to_status"`
	Amount     *decimal.Decimal  `json:"amount"`
}

func (r ApprovalRequestData) Validate() error {
	if !r.EntityType.IsValid() {
		return errors.Errorf("неизвестный тип документа: %v", r.EntityType)
	}
	if r.EntityID == "" {
		return errors.New("не указан документ")
	}
	if r.ToStatus == "" {
		return errors.New("не указан целевой статус")
	}
	return nil
}

type RejectData struct {
	Reason string `json:"reason"`
}

func (r RejectData) Validate() error {
	if r.Reason == "" {
		return errors.New("не указана причина отклонения")
	}
	return nil
}

type ApprovalRequestView struct {
	ID              string                `json:"id"`
	EntityType      models.EntityType     `json:"entity_type"`
	EntityTypeName  string                `json:"entity_type_name"`
	EntityID        string                `json:"entity_id"`
	FromStatus      models.DocStatus      `json:"from_status"`
	ToStatus        models.DocStatus      `json:"to_status"`
	Amount          *decimal.Decimal      `json:"amount,omitempty"`
	CurrentStep     int                   `json:"current_step"`
	TotalSteps      int                   `json:"total_steps"`
	Status          models.ApprovalStatus `json:"status"`
	StatusName      string                `json:"status_name"`
	RequestedByID   string                `json:"requested_by_id"`
	RequestedByName string                `json:"requested_by_name,omitempty"`
	ApprovedByID    string                `json:"approved_by_id,omitempty"`
	ApprovedAt      *time.Time            `json:"approved_at,omitempty"`
	RejectedByID    string                `json:"rejected_by_id,omitempty"`
	RejectedAt      *time.Time            `json:"rejected_at,omitempty"`
	RejectionReason string                `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

func ApprovalRequestConvert(rec dbmodels.ApprovalRequest) ApprovalRequestView {
	view := ApprovalRequestView{
		ID:              rec.ID,
		EntityType:      rec.EntityType,
		EntityTypeName:  rec.EntityType.ToHuman(),
		EntityID:        rec.EntityID,
		FromStatus:      rec.FromStatus,
		ToStatus:        rec.ToStatus,
		Amount:          rec.Amount,
		CurrentStep:     rec.CurrentStep,
		TotalSteps:      rec.TotalSteps,
		Status:          rec.Status,
		StatusName:      rec.Status.ToHuman(),
		RequestedByID:   rec.RequestedByID,
		ApprovedByID:    rec.ApprovedByID,
		ApprovedAt:      rec.ApprovedAt,
		RejectedByID:    rec.RejectedByID,
		RejectedAt:      rec.RejectedAt,
		RejectionReason: rec.RejectionReason,
		CreatedAt:       rec.CreatedAt,
	}
	if rec.RequestedBy != nil {
		view.RequestedByName = rec.RequestedBy.GetFullName()
	}
	return view
}
