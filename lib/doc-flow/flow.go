package docflow

import (
	"fmt"

	"erp-core-backend/models"
)

// transitions описывает граф жизненного цикла документов по типам.
// Переход, отсутствующий в графе, запрещен.
var transitions = map[models.EntityType]map[models.DocStatus]map[models.DocAction]models.DocStatus{
	models.EntityTypePurchaseOrder: {
		models.POStatusDraft: {
			models.DocActionSubmit: models.POStatusSubmitted,
			models.DocActionCancel: models.POStatusCancelled,
		},
		models.POStatusSubmitted: {
			models.DocActionApprove: models.POStatusApproved,
			models.DocActionCancel:  models.POStatusCancelled,
		},
		models.POStatusApproved: {
			models.DocActionReceive: models.POStatusReceiving,
			models.DocActionCancel:  models.POStatusCancelled,
		},
		models.POStatusReceiving: {
			models.DocActionClose:  models.POStatusClosed,
			models.DocActionCancel: models.POStatusCancelled,
		},
	},
	models.EntityTypeSalesOrder: {
		models.SOStatusDraft: {
			models.DocActionConfirm: models.SOStatusConfirmed,
			models.DocActionCancel:  models.SOStatusCancelled,
		},
		models.SOStatusConfirmed: {
			models.DocActionDispatch: models.SOStatusDispatched,
			models.DocActionCancel:   models.SOStatusCancelled,
		},
		models.SOStatusDispatched: {
			models.DocActionClose: models.SOStatusClosed,
		},
	},
	models.EntityTypeWorkOrder: {
		models.WOStatusPlanned: {
			models.DocActionRelease: models.WOStatusReleased,
			models.DocActionCancel:  models.WOStatusCancelled,
		},
		models.WOStatusReleased: {
			models.DocActionStart:  models.WOStatusInProgress,
			models.DocActionCancel: models.WOStatusCancelled,
		},
		models.WOStatusInProgress: {
			models.DocActionComplete: models.WOStatusCompleted,
		},
	},
	models.EntityTypeGoodsReceipt: {
		models.GrnStatusDraft: {
			models.DocActionComplete: models.GrnStatusCompleted,
		},
	},
}

// InitialStatus возвращает стартовый статус документа
func InitialStatus(entityType models.EntityType) models.DocStatus {
	if entityType == models.EntityTypeWorkOrder {
		return models.WOStatusPlanned
	}
	return models.POStatusDraft
}

// CanTransition проверяет, допустимо ли действие в текущем статусе
func CanTransition(entityType models.EntityType, from models.DocStatus, action models.DocAction) bool {
	_, ok := nextStatus(entityType, from, action)
	return ok
}

// Transition возвращает новый статус документа, либо сообщение
// для пользователя о недопустимом переходе
func Transition(entityType models.EntityType, from models.DocStatus, action models.DocAction) (to models.DocStatus, hMsg string) {
	to, ok := nextStatus(entityType, from, action)
	if !ok {
		return "", fmt.Sprintf("действие %v недопустимо для документа в статусе %v", action, from)
	}
	return to, ""
}

// IsTerminal сообщает, что из статуса нет исходящих переходов
func IsTerminal(entityType models.EntityType, status models.DocStatus) bool {
	byStatus, ok := transitions[entityType]
	if !ok {
		return true
	}
	return len(byStatus[status]) == 0
}

// Actions возвращает список допустимых действий для статуса
func Actions(entityType models.EntityType, status models.DocStatus) []models.DocAction {
	byAction := transitions[entityType][status]
	result := make([]models.DocAction, 0, len(byAction))
	for action := range byAction {
		result = append(result, action)
	}
	return result
}

func nextStatus(entityType models.EntityType, from models.DocStatus, action models.DocAction) (models.DocStatus, bool) {
	byStatus, ok := transitions[entityType]
	if !ok {
		return "", false
	}
	to, ok := byStatus[from][action]
	return to, ok
}
