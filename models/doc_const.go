package models

// Тип документа, он же ключ серии нумерации и воркфлоу согласования
type EntityType string

const (
	EntityTypePurchaseOrder EntityType = "PURCHASE_ORDER"
	EntityTypeSalesOrder    EntityType = "SALES_ORDER"
	EntityTypeWorkOrder     EntityType = "WORK_ORDER"
	EntityTypeGoodsReceipt  EntityType = "GOODS_RECEIPT_NOTE"
)

var entityTypeHumanName = map[EntityType]string{
	EntityTypePurchaseOrder: "Заказ поставщику",
	EntityTypeSalesOrder:    "Заказ покупателя",
	EntityTypeWorkOrder:     "Производственный заказ",
	EntityTypeGoodsReceipt:  "Приходная накладная",
}

func (t EntityType) ToHuman() string {
	if human, exist := entityTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}

func (t EntityType) IsValid() bool {
	_, exist := entityTypeHumanName[t]
	return exist
}

type DocStatus string

// Заказ поставщику
const (
	POStatusDraft     DocStatus = "DRAFT"
	POStatusSubmitted DocStatus = "SUBMITTED"
	POStatusApproved  DocStatus = "APPROVED"
	POStatusReceiving DocStatus = "RECEIVING"
	POStatusClosed    DocStatus = "CLOSED"
	POStatusCancelled DocStatus = "CANCELLED"
)

// Заказ покупателя
const (
	SOStatusDraft      DocStatus = "DRAFT"
	SOStatusConfirmed  DocStatus = "CONFIRMED"
	SOStatusDispatched DocStatus = "DISPATCHED"
	SOStatusClosed     DocStatus = "CLOSED"
	SOStatusCancelled  DocStatus = "CANCELLED"
)

// Производственный заказ
const (
	WOStatusPlanned    DocStatus = "PLANNED"
	WOStatusReleased   DocStatus = "RELEASED"
	WOStatusInProgress DocStatus = "IN_PROGRESS"
	WOStatusCompleted  DocStatus = "COMPLETED"
	WOStatusCancelled  DocStatus = "CANCELLED"
)

// Приходная накладная
const (
	GrnStatusDraft     DocStatus = "DRAFT"
	GrnStatusCompleted DocStatus = "COMPLETED"
)

type DocAction string

const (
	DocActionSubmit   DocAction = "submit"
	DocActionApprove  DocAction = "approve"
	DocActionReceive  DocAction = "receive"
	DocActionClose    DocAction = "close"
	DocActionCancel   DocAction = "cancel"
	DocActionConfirm  DocAction = "confirm"
	DocActionDispatch DocAction = "dispatch"
	DocActionRelease  DocAction = "release"
	DocActionStart    DocAction = "start"
	DocActionComplete DocAction = "complete"
)

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
)

var approvalStatusHumanName = map[ApprovalStatus]string{
	ApprovalStatusPending:  "На согласовании",
	ApprovalStatusApproved: "Согласовано",
	ApprovalStatusRejected: "Отклонено",
}

func (s ApprovalStatus) ToHuman() string {
	if human, exist := approvalStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApprovalStatus) IsResolved() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusRejected
}

type MovementType string

const (
	MovementTypeReceipt    MovementType = "RECEIPT"
	MovementTypeIssue      MovementType = "ISSUE"
	MovementTypeReserve    MovementType = "RESERVE"
	MovementTypeRelease    MovementType = "RELEASE"
	MovementTypeProduction MovementType = "PRODUCTION"
)
