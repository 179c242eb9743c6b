package approvalrequesthandler

import (
	"fmt"
	"time"

	"erp-core-backend/db"
	approvalrequeststore "erp-core-backend/lib/approval-request/store"
	approvalworkflowstore "erp-core-backend/lib/approval-workflow/store"
	orgusersstore "erp-core-backend/lib/org/users/store"
	smtpclient "erp-core-backend/lib/smtp"
	"erp-core-backend/models"
	approvalapimodels "erp-core-backend/models/api/approval"
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Ожидаемые бизнес-исходы, не системные ошибки
var (
	ErrNotFound        = errors.New("запрос на согласование не найден")
	ErrAlreadyResolved = errors.New("запрос на согласование уже обработан")
)

type Provider interface {
	// RequestApproval создает запрос на согласование перехода документа.
	// Если маршрут не настроен или ни один этап не подходит по сумме,
	// запрос проходит в один этап (total_steps = 1).
	RequestApproval(organizationID, requestedBy string, data approvalapimodels.ApprovalRequestData) (view approvalapimodels.ApprovalRequestView, err error)
	// Approve продвигает запрос на один этап.
	// Пока статус PENDING, переход документа применять нельзя.
	Approve(organizationID, approvalID, approvedBy string) (view approvalapimodels.ApprovalRequestView, err error)
	Reject(organizationID, approvalID, rejectedBy, reason string) (view approvalapimodels.ApprovalRequestView, err error)
	GetByID(organizationID, id string) (view approvalapimodels.ApprovalRequestView, err error)
	ListPending(organizationID string, entityType models.EntityType) (list []approvalapimodels.ApprovalRequestView, err error)
	ListByEntity(organizationID string, entityType models.EntityType, entityID string) (list []approvalapimodels.ApprovalRequestView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db:            db.DB,
		store:         approvalrequeststore.NewInstance(db.DB),
		workflowStore: approvalworkflowstore.NewInstance(db.DB),
		usersStore:    orgusersstore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		db:            tx,
		store:         approvalrequeststore.NewInstance(tx),
		workflowStore: approvalworkflowstore.NewInstance(tx),
		usersStore:    orgusersstore.NewInstance(tx),
	}
}

type impl struct {
	db            *gorm.DB
	store         approvalrequeststore.Provider
	workflowStore approvalworkflowstore.Provider
	usersStore    orgusersstore.Provider
}

func (i impl) getLogger(organizationID, recID string) *log.Entry {
	return log.
		WithField("organization_id", organizationID).
		WithField("rec_id", recID)
}

func (i impl) RequestApproval(organizationID, requestedBy string, data approvalapimodels.ApprovalRequestData) (approvalapimodels.ApprovalRequestView, error) {
	logger := log.
		WithField("organization_id", organizationID).
		WithField("entity_type", data.EntityType).
		WithField("entity_id", data.EntityID)
	existing, err := i.store.GetPendingByEntity(organizationID, data.EntityType, data.EntityID)
	if err != nil {
		return approvalapimodels.ApprovalRequestView{}, err
	}
	if existing != nil {
		return approvalapimodels.ApprovalRequestView{}, errors.New("документ уже находится на согласовании")
	}
	workflow, err := i.workflowStore.GetActiveByEntityType(organizationID, data.EntityType)
	if err != nil {
		return approvalapimodels.ApprovalRequestView{}, err
	}
	totalSteps := 1
	workflowID := ""
	if workflow != nil {
		workflowID = workflow.ID
		matched := 0
		for _, step := range workflow.Steps {
			if step.AppliesTo(data.Amount) {
				matched++
			}
		}
		if matched > totalSteps {
			totalSteps = matched
		}
	}
	rec := dbmodels.ApprovalRequest{
		BaseOrgModel: dbmodels.BaseOrgModel{
			OrganizationID: organizationID,
		},
		WorkflowID:    workflowID,
		EntityType:    data.EntityType,
		EntityID:      data.EntityID,
		FromStatus:    data.FromStatus,
		ToStatus:      data.ToStatus,
		Amount:        data.Amount,
		CurrentStep:   1,
		TotalSteps:    totalSteps,
		Status:        models.ApprovalStatusPending,
		RequestedByID: requestedBy,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания запроса на согласование")
		return approvalapimodels.ApprovalRequestView{}, err
	}
	rec.ID = id
	logger.
		WithField("rec_id", id).
		WithField("total_steps", totalSteps).
		Info("создан запрос на согласование")
	return approvalapimodels.ApprovalRequestConvert(rec), nil
}

// inTx выполняет fn поверх store, привязанного к транзакции.
// Без подключения к БД fn получает текущий store как есть
func (i impl) inTx(fn func(store approvalrequeststore.Provider) error) error {
	if i.db == nil {
		return fn(i.store)
	}
	return i.db.Transaction(func(tx *gorm.DB) error {
		return fn(approvalrequeststore.NewInstance(tx))
	})
}

func (i impl) Approve(organizationID, approvalID, approvedBy string) (approvalapimodels.ApprovalRequestView, error) {
	logger := i.getLogger(organizationID, approvalID)
	var rec *dbmodels.ApprovalRequest
	err := i.inTx(func(store approvalrequeststore.Provider) error {
		var err error
		rec, err = store.GetByIDForUpdate(organizationID, approvalID)
		if err != nil {
			return err
		}
		if rec == nil {
			return ErrNotFound
		}
		if rec.Status != models.ApprovalStatusPending {
			return ErrAlreadyResolved
		}
		if rec.CurrentStep < rec.TotalSteps {
			rec.CurrentStep++
			return store.Update(organizationID, rec.ID, map[string]interface{}{
				"current_step": rec.CurrentStep,
			})
		}
		// финальный этап, только после него можно применять переход документа
		now := time.Now()
		rec.Status = models.ApprovalStatusApproved
		rec.ApprovedByID = approvedBy
		rec.ApprovedAt = &now
		return store.Update(organizationID, rec.ID, map[string]interface{}{
			"status":         rec.Status,
			"approved_by_id": rec.ApprovedByID,
			"approved_at":    rec.ApprovedAt,
		})
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrAlreadyResolved) {
			logger.WithError(err).Error("ошибка согласования запроса")
		}
		return approvalapimodels.ApprovalRequestView{}, err
	}
	if rec.Status == models.ApprovalStatusApproved {
		logger.Info("запрос согласован")
		i.notifyRequester(*rec)
	} else {
		logger.
			WithField("current_step", rec.CurrentStep).
			WithField("total_steps", rec.TotalSteps).
			Info("этап согласован, запрос ожидает следующего этапа")
	}
	return approvalapimodels.ApprovalRequestConvert(*rec), nil
}

func (i impl) Reject(organizationID, approvalID, rejectedBy, reason string) (approvalapimodels.ApprovalRequestView, error) {
	logger := i.getLogger(organizationID, approvalID)
	var rec *dbmodels.ApprovalRequest
	err := i.inTx(func(store approvalrequeststore.Provider) error {
		var err error
		rec, err = store.GetByIDForUpdate(organizationID, approvalID)
		if err != nil {
			return err
		}
		if rec == nil {
			return ErrNotFound
		}
		if rec.Status != models.ApprovalStatusPending {
			return ErrAlreadyResolved
		}
		now := time.Now()
		rec.Status = models.ApprovalStatusRejected
		rec.RejectedByID = rejectedBy
		rec.RejectedAt = &now
		rec.RejectionReason = reason
		return store.Update(organizationID, rec.ID, map[string]interface{}{
			"status":           rec.Status,
			"rejected_by_id":   rec.RejectedByID,
			"rejected_at":      rec.RejectedAt,
			"rejection_reason": rec.RejectionReason,
		})
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrAlreadyResolved) {
			logger.WithError(err).Error("ошибка отклонения запроса")
		}
		return approvalapimodels.ApprovalRequestView{}, err
	}
	logger.Info("запрос отклонен")
	i.notifyRequester(*rec)
	return approvalapimodels.ApprovalRequestConvert(*rec), nil
}

func (i impl) GetByID(organizationID, id string) (approvalapimodels.ApprovalRequestView, error) {
	rec, err := i.store.GetByID(organizationID, id)
	if err != nil {
		return approvalapimodels.ApprovalRequestView{}, err
	}
	if rec == nil {
		return approvalapimodels.ApprovalRequestView{}, ErrNotFound
	}
	return approvalapimodels.ApprovalRequestConvert(*rec), nil
}

func (i impl) ListPending(organizationID string, entityType models.EntityType) ([]approvalapimodels.ApprovalRequestView, error) {
	recList, err := i.store.ListPending(organizationID, entityType)
	if err != nil {
		return nil, err
	}
	result := make([]approvalapimodels.ApprovalRequestView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, approvalapimodels.ApprovalRequestConvert(rec))
	}
	return result, nil
}

func (i impl) ListByEntity(organizationID string, entityType models.EntityType, entityID string) ([]approvalapimodels.ApprovalRequestView, error) {
	recList, err := i.store.ListByEntity(organizationID, entityType, entityID)
	if err != nil {
		return nil, err
	}
	result := make([]approvalapimodels.ApprovalRequestView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, approvalapimodels.ApprovalRequestConvert(rec))
	}
	return result, nil
}

// notifyRequester отправляет автору документа письмо об итоге согласования.
// Отправка не влияет на результат операции
func (i impl) notifyRequester(rec dbmodels.ApprovalRequest) {
	logger := i.getLogger(rec.OrganizationID, rec.ID)
	if smtpclient.Instance == nil || rec.RequestedByID == "" {
		return
	}
	user, err := i.usersStore.GetByID(rec.RequestedByID)
	if err != nil || user == nil || user.Email == "" {
		return
	}
	subject := fmt.Sprintf("%s: %s", rec.EntityType.ToHuman(), rec.Status.ToHuman())
	message := fmt.Sprintf("Документ %s переведен в статус согласования %q.", rec.EntityID, rec.Status.ToHuman())
	if rec.Status == models.ApprovalStatusRejected && rec.RejectionReason != "" {
		message = fmt.Sprintf("%s Причина: %s", message, rec.RejectionReason)
	}
	err = smtpclient.Instance.SendEMail(models.SystemUser, user.Email, message, subject)
	if err != nil {
		logger.WithError(err).Warn("не удалось отправить уведомление о согласовании")
	}
}
