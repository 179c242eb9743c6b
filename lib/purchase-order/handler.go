package purchaseorderhandler

import (
	"time"

	"erp-core-backend/db"
	approvalrequesthandler "erp-core-backend/lib/approval-request"
	approvalrequeststore "erp-core-backend/lib/approval-request/store"
	docflow "erp-core-backend/lib/doc-flow"
	numberserieshandler "erp-core-backend/lib/number-series"
	purchaseorderstore "erp-core-backend/lib/purchase-order/store"
	"erp-core-backend/models"
	approvalapimodels "erp-core-backend/models/api/approval"
	docapimodels "erp-core-backend/models/api/docs"
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(organizationID, authorID string, data docapimodels.PurchaseOrderCreateData) (view docapimodels.PurchaseOrderView, err error)
	GetByID(organizationID, id string) (view docapimodels.PurchaseOrderView, err error)
	List(organizationID string, filter docapimodels.DocFilter) (list []docapimodels.PurchaseOrderView, rowCount int64, err error)
	Delete(organizationID, id string) (hMsg string, err error)
	// Submit переводит черновик на согласование и создает запрос в маршруте
	Submit(organizationID, userID, id string) (hMsg string, err error)
	// Approve продвигает согласование, на финальном этапе применяет переход документа
	Approve(organizationID, userID, id string) (hMsg string, err error)
	Reject(organizationID, userID, id, reason string) (hMsg string, err error)
	StartReceiving(organizationID, userID, id string) (hMsg string, err error)
	Close(organizationID, userID, id string) (hMsg string, err error)
	Cancel(organizationID, userID, id string) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: purchaseorderstore.NewInstance(db.DB),
	}
}

type impl struct {
	store purchaseorderstore.Provider
}

func (i impl) getLogger(organizationID, recID string) *log.Entry {
	return log.
		WithField("organization_id", organizationID).
		WithField("rec_id", recID)
}

func (i impl) Create(organizationID, authorID string, data docapimodels.PurchaseOrderCreateData) (docapimodels.PurchaseOrderView, error) {
	logger := log.WithField("organization_id", organizationID)
	var id string
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		number, err := numberserieshandler.Instance.AllocateTx(tx, organizationID, models.EntityTypePurchaseOrder, nil)
		if err != nil {
			return err
		}
		rec := dbmodels.PurchaseOrder{
			BaseOrgModel: dbmodels.BaseOrgModel{
				OrganizationID: organizationID,
			},
			DocumentNumber: number,
			SupplierName:   data.SupplierName,
			WarehouseID:    data.WarehouseID,
			Status:         docflow.InitialStatus(models.EntityTypePurchaseOrder),
			Currency:       data.Currency,
			ExpectedDate:   data.ExpectedDate,
			Comment:        data.Comment,
			AuthorID:       authorID,
		}
		total := decimal.Zero
		for _, line := range data.Lines {
			amount := line.Quantity.Mul(line.Price)
			total = total.Add(amount)
			rec.Lines = append(rec.Lines, dbmodels.PurchaseOrderLine{
				BaseOrgModel: dbmodels.BaseOrgModel{
					OrganizationID: organizationID,
				},
				ItemID:   line.ItemID,
				Quantity: line.Quantity,
				Price:    line.Price,
				Amount:   amount,
			})
		}
		rec.TotalAmount = total
		id, err = purchaseorderstore.NewInstance(tx).Create(rec)
		if err != nil {
			return errors.Wrap(err, "ошибка создания заказа поставщику")
		}
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("ошибка создания заказа поставщику")
		return docapimodels.PurchaseOrderView{}, err
	}
	logger.
		WithField("rec_id", id).
		Info("создан заказ поставщику")
	return i.GetByID(organizationID, id)
}

func (i impl) GetByID(organizationID, id string) (docapimodels.PurchaseOrderView, error) {
	rec, err := i.store.GetByID(organizationID, id)
	if err != nil {
		return docapimodels.PurchaseOrderView{}, err
	}
	if rec == nil {
		return docapimodels.PurchaseOrderView{}, errors.New("заказ поставщику не найден")
	}
	return docapimodels.PurchaseOrderConvert(*rec), nil
}

func (i impl) List(organizationID string, filter docapimodels.DocFilter) ([]docapimodels.PurchaseOrderView, int64, error) {
	rowCount, err := i.store.ListCount(organizationID, filter)
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []docapimodels.PurchaseOrderView{}, rowCount, nil
	}
	recList, err := i.store.List(organizationID, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]docapimodels.PurchaseOrderView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, docapimodels.PurchaseOrderConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Delete(organizationID, id string) (string, error) {
	rec, err := i.store.GetByID(organizationID, id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "заказ поставщику не найден", nil
	}
	if rec.Status != models.POStatusDraft {
		return "удалить можно только черновик", nil
	}
	err = i.store.Delete(organizationID, id)
	if err != nil {
		return "", err
	}
	i.getLogger(organizationID, id).Info("заказ поставщику удален")
	return "", nil
}

func (i impl) Submit(organizationID, userID, id string) (string, error) {
	logger := i.getLogger(organizationID, id)
	var hMsg string
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := purchaseorderstore.NewInstance(tx)
		rec, err := store.GetByIDForUpdate(organizationID, id)
		if err != nil {
			return err
		}
		if rec == nil {
			hMsg = "заказ поставщику не найден"
			return nil
		}
		toStatus, msg := docflow.Transition(models.EntityTypePurchaseOrder, rec.Status, models.DocActionSubmit)
		if msg != "" {
			hMsg = msg
			return nil
		}
		_, err = approvalrequesthandler.NewHandlerWithTx(tx).RequestApproval(organizationID, userID, approvalapimodels.ApprovalRequestData{
			EntityType: models.EntityTypePurchaseOrder,
			EntityID:   rec.ID,
			FromStatus: rec.Status,
			ToStatus:   models.POStatusApproved,
			Amount:     &rec.TotalAmount,
		})
		if err != nil {
			return err
		}
		return store.Update(organizationID, rec.ID, map[string]interface{}{
			"status": toStatus,
		})
	})
	if err != nil {
		logger.WithError(err).Error("ошибка отправки заказа на согласование")
		return "", err
	}
	if hMsg == "" {
		logger.Info("заказ поставщику отправлен на согласование")
	}
	return hMsg, nil
}

func (i impl) Approve(organizationID, userID, id string) (string, error) {
	logger := i.getLogger(organizationID, id)
	var hMsg string
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := purchaseorderstore.NewInstance(tx)
		rec, err := store.GetByIDForUpdate(organizationID, id)
		if err != nil {
			return err
		}
		if rec == nil {
			hMsg = "заказ поставщику не найден"
			return nil
		}
		toStatus, msg := docflow.Transition(models.EntityTypePurchaseOrder, rec.Status, models.DocActionApprove)
		if msg != "" {
			hMsg = msg
			return nil
		}
		pending, err := approvalrequeststore.NewInstance(tx).GetPendingByEntity(organizationID, models.EntityTypePurchaseOrder, rec.ID)
		if err != nil {
			return err
		}
		if pending == nil {
			hMsg = "по документу нет активного согласования"
			return nil
		}
		view, err := approvalrequesthandler.NewHandlerWithTx(tx).Approve(organizationID, pending.ID, userID)
		if err != nil {
			return err
		}
		if view.Status != models.ApprovalStatusApproved {
			// промежуточный этап, документ остается на согласовании
			return nil
		}
		now := time.Now()
		return store.Update(organizationID, rec.ID, map[string]interface{}{
			"status":         toStatus,
			"approved_by_id": userID,
			"approved_at":    &now,
		})
	})
	if err != nil {
		if errors.Is(err, approvalrequesthandler.ErrAlreadyResolved) {
			return "запрос на согласование уже обработан", nil
		}
		logger.WithError(err).Error("ошибка согласования заказа поставщику")
		return "", err
	}
	if hMsg == "" {
		logger.Info("этап согласования заказа выполнен")
	}
	return hMsg, nil
}

func (i impl) Reject(organizationID, userID, id, reason string) (string, error) {
	logger := i.getLogger(organizationID, id)
	var hMsg string
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := purchaseorderstore.NewInstance(tx)
		rec, err := store.GetByIDForUpdate(organizationID, id)
		if err != nil {
			return err
		}
		if rec == nil {
			hMsg = "заказ поставщику не найден"
			return nil
		}
		if rec.Status != models.POStatusSubmitted {
			hMsg = "документ не находится на согласовании"
			return nil
		}
		pending, err := approvalrequeststore.NewInstance(tx).GetPendingByEntity(organizationID, models.EntityTypePurchaseOrder, rec.ID)
		if err != nil {
			return err
		}
		if pending == nil {
			hMsg = "по документу нет активного согласования"
			return nil
		}
		view, err := approvalrequesthandler.NewHandlerWithTx(tx).Reject(organizationID, pending.ID, userID, reason)
		if err != nil {
			return err
		}
		// отклонение окончательное, документ возвращается в исходный статус
		return store.Update(organizationID, rec.ID, map[string]interface{}{
			"status": view.FromStatus,
		})
	})
	if err != nil {
		if errors.Is(err, approvalrequesthandler.ErrAlreadyResolved) {
			return "запрос на согласование уже обработан", nil
		}
		logger.WithError(err).Error("ошибка отклонения заказа поставщику")
		return "", err
	}
	if hMsg == "" {
		logger.Info("заказ поставщику отклонен")
	}
	return hMsg, nil
}

func (i impl) StartReceiving(organizationID, userID, id string) (string, error) {
	return i.applyAction(organizationID, userID, id, models.DocActionReceive, "заказ переведен в приемку")
}

func (i impl) Close(organizationID, userID, id string) (string, error) {
	return i.applyAction(organizationID, userID, id, models.DocActionClose, "заказ поставщику закрыт")
}

func (i impl) Cancel(organizationID, userID, id string) (string, error) {
	logger := i.getLogger(organizationID, id)
	var hMsg string
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := purchaseorderstore.NewInstance(tx)
		rec, err := store.GetByIDForUpdate(organizationID, id)
		if err != nil {
			return err
		}
		if rec == nil {
			hMsg = "заказ поставщику не найден"
			return nil
		}
		toStatus, msg := docflow.Transition(models.EntityTypePurchaseOrder, rec.Status, models.DocActionCancel)
		if msg != "" {
			hMsg = msg
			return nil
		}
		// висящее согласование закрываем вместе с документом
		pending, err := approvalrequeststore.NewInstance(tx).GetPendingByEntity(organizationID, models.EntityTypePurchaseOrder, rec.ID)
		if err != nil {
			return err
		}
		if pending != nil {
			_, err = approvalrequesthandler.NewHandlerWithTx(tx).Reject(organizationID, pending.ID, userID, "документ отменен")
			if err != nil {
				return err
			}
		}
		return store.Update(organizationID, rec.ID, map[string]interface{}{
			"status": toStatus,
		})
	})
	if err != nil {
		logger.WithError(err).Error("ошибка отмены заказа поставщику")
		return "", err
	}
	if hMsg == "" {
		logger.Info("заказ поставщику отменен")
	}
	return hMsg, nil
}

func (i impl) applyAction(organizationID, userID, id string, action models.DocAction, okMsg string) (string, error) {
	logger := i.getLogger(organizationID, id)
	var hMsg string
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := purchaseorderstore.NewInstance(tx)
		rec, err := store.GetByIDForUpdate(organizationID, id)
		if err != nil {
			return err
		}
		if rec == nil {
			hMsg = "заказ поставщику не найден"
			return nil
		}
		toStatus, msg := docflow.Transition(models.EntityTypePurchaseOrder, rec.Status, action)
		if msg != "" {
			hMsg = msg
			return nil
		}
		return store.Update(organizationID, rec.ID, map[string]interface{}{
			"status": toStatus,
		})
	})
	if err != nil {
		logger.WithError(err).Errorf("ошибка выполнения действия %v", action)
		return "", err
	}
	if hMsg == "" {
		logger.Info(okMsg)
	}
	return hMsg, nil
}
