package workorderhandler

import (
	"time"

	"erp-core-backend/db"
	docflow "erp-core-backend/lib/doc-flow"
	inventoryhandler "erp-core-backend/lib/inventory"
	numberserieshandler "erp-core-backend/lib/number-series"
	workorderstore "erp-core-backend/lib/work-order/store"
	"erp-core-backend/models"
	docapimodels "erp-core-backend/models/api/docs"
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(organizationID, authorID string, data docapimodels.WorkOrderCreateData) (view docapimodels.WorkOrderView, err error)
	GetByID(organizationID, id string) (view docapimodels.WorkOrderView, err error)
	List(organizationID string, filter docapimodels.DocFilter) (list []docapimodels.WorkOrderView, rowCount int64, err error)
	Delete(organizationID, id string) (hMsg string, err error)
	Release(organizationID, userID, id string) (hMsg string, err error)
	Start(organizationID, userID, id string) (hMsg string, err error)
	// Complete завершает заказ и приходует выпуск на склад
	Complete(organizationID, userID, id string) (hMsg string, err error)
	Cancel(organizationID, userID, id string) (hMsg string, err error)
}

var Instance Provider

// errAbort откатывает транзакцию, когда движение по складу
// отклонено с сообщением для пользователя
var errAbort = errors.New("операция прервана")

func NewHandler() {
	Instance = impl{
		db:        db.DB,
		store:     workorderstore.NewInstance(db.DB),
		inventory: inventoryhandler.NewHandlerWithTx,
	}
}

type impl struct {
	db        *gorm.DB
	store     workorderstore.Provider
	inventory func(tx *gorm.DB) inventoryhandler.Provider
}

// inTx выполняет fn поверх store, привязанного к транзакции.
// Без подключения к БД fn получает текущий store как есть
func (i impl) inTx(fn func(tx *gorm.DB, store workorderstore.Provider) error) error {
	if i.db == nil {
		return fn(nil, i.store)
	}
	return i.db.Transaction(func(tx *gorm.DB) error {
		return fn(tx, workorderstore.NewInstance(tx))
	})
}

func (i impl) getLogger(organizationID, recID string) *log.Entry {
	return log.
		WithField("organization_id", organizationID).
		WithField("rec_id", recID)
}

func (i impl) Create(organizationID, authorID string, data docapimodels.WorkOrderCreateData) (docapimodels.WorkOrderView, error) {
	logger := log.WithField("organization_id", organizationID)
	var id string
	err := i.inTx(func(tx *gorm.DB, store workorderstore.Provider) error {
		number, err := numberserieshandler.Instance.AllocateTx(tx, organizationID, models.EntityTypeWorkOrder, nil)
		if err != nil {
			return err
		}
		rec := dbmodels.WorkOrder{
			BaseOrgModel: dbmodels.BaseOrgModel{
				OrganizationID: organizationID,
			},
			DocumentNumber: number,
			ItemID:         data.ItemID,
			WarehouseID:    data.WarehouseID,
			Status:         docflow.InitialStatus(models.EntityTypeWorkOrder),
			Quantity:       data.Quantity,
			PlannedStart:   data.PlannedStart,
			PlannedEnd:     data.PlannedEnd,
			Comment:        data.Comment,
			AuthorID:       authorID,
		}
		id, err = store.Create(rec)
		if err != nil {
			return errors.Wrap(err, "ошибка создания производственного заказа")
		}
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("ошибка создания производственного заказа")
		return docapimodels.WorkOrderView{}, err
	}
	logger.
		WithField("rec_id", id).
		Info("создан производственный заказ")
	return i.GetByID(organizationID, id)
}

func (i impl) GetByID(organizationID, id string) (docapimodels.WorkOrderView, error) {
	rec, err := i.store.GetByID(organizationID, id)
	if err != nil {
		return docapimodels.WorkOrderView{}, err
	}
	if rec == nil {
		return docapimodels.WorkOrderView{}, errors.New("производственный заказ не найден")
	}
	return docapimodels.WorkOrderConvert(*rec), nil
}

func (i impl) List(organizationID string, filter docapimodels.DocFilter) ([]docapimodels.WorkOrderView, int64, error) {
	rowCount, err := i.store.ListCount(organizationID, filter)
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []docapimodels.WorkOrderView{}, rowCount, nil
	}
	recList, err := i.store.List(organizationID, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]docapimodels.WorkOrderView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, docapimodels.WorkOrderConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Delete(organizationID, id string) (string, error) {
	rec, err := i.store.GetByID(organizationID, id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "производственный заказ не найден", nil
	}
	if rec.Status != models.WOStatusPlanned {
		return "удалить можно только запланированный заказ", nil
	}
	err = i.store.Delete(organizationID, id)
	if err != nil {
		return "", err
	}
	i.getLogger(organizationID, id).Info("производственный заказ удален")
	return "", nil
}

func (i impl) Release(organizationID, userID, id string) (string, error) {
	return i.applyAction(organizationID, id, models.DocActionRelease, nil, "производственный заказ выдан в работу")
}

func (i impl) Start(organizationID, userID, id string) (string, error) {
	now := time.Now()
	return i.applyAction(organizationID, id, models.DocActionStart, map[string]interface{}{
		"started_at": &now,
	}, "производственный заказ запущен")
}

func (i impl) Complete(organizationID, userID, id string) (string, error) {
	logger := i.getLogger(organizationID, id)
	var hMsg string
	err := i.inTx(func(tx *gorm.DB, store workorderstore.Provider) error {
		rec, err := store.GetByIDForUpdate(organizationID, id)
		if err != nil {
			return err
		}
		if rec == nil {
			hMsg = "производственный заказ не найден"
			return nil
		}
		toStatus, msg := docflow.Transition(models.EntityTypeWorkOrder, rec.Status, models.DocActionComplete)
		if msg != "" {
			hMsg = msg
			return nil
		}
		// выпуск приходуется в той же транзакции, что и смена статуса
		msg, err = i.inventory(tx).Post(organizationID, rec.WarehouseID, rec.ItemID,
			models.MovementTypeProduction, rec.Quantity, models.EntityTypeWorkOrder, rec.ID, userID)
		if err != nil {
			return err
		}
		if msg != "" {
			hMsg = msg
			return errAbort
		}
		now := time.Now()
		return store.Update(organizationID, rec.ID, map[string]interface{}{
			"status":       toStatus,
			"completed_at": &now,
		})
	})
	if errors.Is(err, errAbort) {
		return hMsg, nil
	}
	if err != nil {
		logger.WithError(err).Error("ошибка завершения производственного заказа")
		return "", err
	}
	if hMsg == "" {
		logger.Info("производственный заказ завершен, выпуск оприходован")
	}
	return hMsg, nil
}

func (i impl) Cancel(organizationID, userID, id string) (string, error) {
	return i.applyAction(organizationID, id, models.DocActionCancel, nil, "производственный заказ отменен")
}

func (i impl) applyAction(organizationID, id string, action models.DocAction, extraUpd map[string]interface{}, okMsg string) (string, error) {
	logger := i.getLogger(organizationID, id)
	var hMsg string
	err := i.inTx(func(tx *gorm.DB, store workorderstore.Provider) error {
		rec, err := store.GetByIDForUpdate(organizationID, id)
		if err != nil {
			return err
		}
		if rec == nil {
			hMsg = "производственный заказ не найден"
			return nil
		}
		toStatus, msg := docflow.Transition(models.EntityTypeWorkOrder, rec.Status, action)
		if msg != "" {
			hMsg = msg
			return nil
		}
		updMap := map[string]interface{}{
			"status": toStatus,
		}
		for key, value := range extraUpd {
			updMap[key] = value
		}
		return store.Update(organizationID, rec.ID, updMap)
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
