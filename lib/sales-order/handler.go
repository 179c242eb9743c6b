package salesorderhandler

import (
	"time"

	"erp-core-backend/db"
	docflow "erp-core-backend/lib/doc-flow"
	inventoryhandler "erp-core-backend/lib/inventory"
	numberserieshandler "erp-core-backend/lib/number-series"
	salesorderstore "erp-core-backend/lib/sales-order/store"
	"erp-core-backend/models"
	docapimodels "erp-core-backend/models/api/docs"
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(organizationID, authorID string, data docapimodels.SalesOrderCreateData) (view docapimodels.SalesOrderView, err error)
	GetByID(organizationID, id string) (view docapimodels.SalesOrderView, err error)
	List(organizationID string, filter docapimodels.DocFilter) (list []docapimodels.SalesOrderView, rowCount int64, err error)
	Delete(organizationID, id string) (hMsg string, err error)
	// Confirm подтверждает заказ и резервирует остатки по строкам
	Confirm(organizationID, userID, id string) (hMsg string, err error)
	// Dispatch отгружает заказ: снимает резерв и списывает остатки
	Dispatch(organizationID, userID, id string) (hMsg string, err error)
	Close(organizationID, userID, id string) (hMsg string, err error)
	Cancel(organizationID, userID, id string) (hMsg string, err error)
}

var Instance Provider

// errAbort откатывает транзакцию, когда движение по складу
// отклонено с сообщением для пользователя
var errAbort = errors.New("операция прервана")

func NewHandler() {
	Instance = impl{
		store: salesorderstore.NewInstance(db.DB),
	}
}

type impl struct {
	store salesorderstore.Provider
}

func (i impl) getLogger(organizationID, recID string) *log.Entry {
	return log.
		WithField("organization_id", organizationID).
		WithField("rec_id", recID)
}

func (i impl) Create(organizationID, authorID string, data docapimodels.SalesOrderCreateData) (docapimodels.SalesOrderView, error) {
	logger := log.WithField("organization_id", organizationID)
	var id string
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		number, err := numberserieshandler.Instance.AllocateTx(tx, organizationID, models.EntityTypeSalesOrder, nil)
		if err != nil {
			return err
		}
		rec := dbmodels.SalesOrder{
			BaseOrgModel: dbmodels.BaseOrgModel{
				OrganizationID: organizationID,
			},
			DocumentNumber: number,
			CustomerName:   data.CustomerName,
			WarehouseID:    data.WarehouseID,
			Status:         docflow.InitialStatus(models.EntityTypeSalesOrder),
			Currency:       data.Currency,
			Comment:        data.Comment,
			AuthorID:       authorID,
		}
		total := decimal.Zero
		for _, line := range data.Lines {
			amount := line.Quantity.Mul(line.Price)
			total = total.Add(amount)
			rec.Lines = append(rec.Lines, dbmodels.SalesOrderLine{
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
		id, err = salesorderstore.NewInstance(tx).Create(rec)
		if err != nil {
			return errors.Wrap(err, "ошибка создания заказа покупателя")
		}
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("ошибка создания заказа покупателя")
		return docapimodels.SalesOrderView{}, err
	}
	logger.
		WithField("rec_id", id).
		Info("создан заказ покупателя")
	return i.GetByID(organizationID, id)
}

func (i impl) GetByID(organizationID, id string) (docapimodels.SalesOrderView, error) {
	rec, err := i.store.GetByID(organizationID, id)
	if err != nil {
		return docapimodels.SalesOrderView{}, err
	}
	if rec == nil {
		return docapimodels.SalesOrderView{}, errors.New("заказ покупателя не найден")
	}
	return docapimodels.SalesOrderConvert(*rec), nil
}

func (i impl) List(organizationID string, filter docapimodels.DocFilter) ([]docapimodels.SalesOrderView, int64, error) {
	rowCount, err := i.store.ListCount(organizationID, filter)
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []docapimodels.SalesOrderView{}, rowCount, nil
	}
	recList, err := i.store.List(organizationID, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]docapimodels.SalesOrderView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, docapimodels.SalesOrderConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Delete(organizationID, id string) (string, error) {
	rec, err := i.store.GetByID(organizationID, id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "заказ покупателя не найден", nil
	}
	if rec.Status != models.SOStatusDraft {
		return "удалить можно только черновик", nil
	}
	err = i.store.Delete(organizationID, id)
	if err != nil {
		return "", err
	}
	i.getLogger(organizationID, id).Info("заказ покупателя удален")
	return "", nil
}

func (i impl) Confirm(organizationID, userID, id string) (string, error) {
	logger := i.getLogger(organizationID, id)
	var hMsg string
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := salesorderstore.NewInstance(tx)
		rec, err := store.GetByIDForUpdate(organizationID, id)
		if err != nil {
			return err
		}
		if rec == nil {
			hMsg = "заказ покупателя не найден"
			return nil
		}
		toStatus, msg := docflow.Transition(models.EntityTypeSalesOrder, rec.Status, models.DocActionConfirm)
		if msg != "" {
			hMsg = msg
			return nil
		}
		hMsg, err = i.postLines(tx, *rec, models.MovementTypeReserve, userID)
		if err != nil {
			return err
		}
		if hMsg != "" {
			return errAbort
		}
		now := time.Now()
		return store.Update(organizationID, rec.ID, map[string]interface{}{
			"status":       toStatus,
			"confirmed_at": &now,
		})
	})
	if errors.Is(err, errAbort) {
		return hMsg, nil
	}
	if err != nil {
		logger.WithError(err).Error("ошибка подтверждения заказа покупателя")
		return "", err
	}
	if hMsg == "" {
		logger.Info("заказ покупателя подтвержден, остатки зарезервированы")
	}
	return hMsg, nil
}

func (i impl) Dispatch(organizationID, userID, id string) (string, error) {
	logger := i.getLogger(organizationID, id)
	var hMsg string
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := salesorderstore.NewInstance(tx)
		rec, err := store.GetByIDForUpdate(organizationID, id)
		if err != nil {
			return err
		}
		if rec == nil {
			hMsg = "заказ покупателя не найден"
			return nil
		}
		toStatus, msg := docflow.Transition(models.EntityTypeSalesOrder, rec.Status, models.DocActionDispatch)
		if msg != "" {
			hMsg = msg
			return nil
		}
		// снимаем резерв и списываем в одной транзакции
		hMsg, err = i.postLines(tx, *rec, models.MovementTypeRelease, userID)
		if err != nil {
			return err
		}
		if hMsg != "" {
			return errAbort
		}
		hMsg, err = i.postLines(tx, *rec, models.MovementTypeIssue, userID)
		if err != nil {
			return err
		}
		if hMsg != "" {
			return errAbort
		}
		now := time.Now()
		return store.Update(organizationID, rec.ID, map[string]interface{}{
			"status":        toStatus,
			"dispatched_at": &now,
		})
	})
	if errors.Is(err, errAbort) {
		return hMsg, nil
	}
	if err != nil {
		logger.WithError(err).Error("ошибка отгрузки заказа покупателя")
		return "", err
	}
	if hMsg == "" {
		logger.Info("заказ покупателя отгружен")
	}
	return hMsg, nil
}

func (i impl) Close(organizationID, userID, id string) (string, error) {
	logger := i.getLogger(organizationID, id)
	var hMsg string
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := salesorderstore.NewInstance(tx)
		rec, err := store.GetByIDForUpdate(organizationID, id)
		if err != nil {
			return err
		}
		if rec == nil {
			hMsg = "заказ покупателя не найден"
			return nil
		}
		toStatus, msg := docflow.Transition(models.EntityTypeSalesOrder, rec.Status, models.DocActionClose)
		if msg != "" {
			hMsg = msg
			return nil
		}
		return store.Update(organizationID, rec.ID, map[string]interface{}{
			"status": toStatus,
		})
	})
	if err != nil {
		logger.WithError(err).Error("ошибка закрытия заказа покупателя")
		return "", err
	}
	if hMsg == "" {
		logger.Info("заказ покупателя закрыт")
	}
	return hMsg, nil
}

func (i impl) Cancel(organizationID, userID, id string) (string, error) {
	logger := i.getLogger(organizationID, id)
	var hMsg string
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := salesorderstore.NewInstance(tx)
		rec, err := store.GetByIDForUpdate(organizationID, id)
		if err != nil {
			return err
		}
		if rec == nil {
			hMsg = "заказ покупателя не найден"
			return nil
		}
		fromStatus := rec.Status
		toStatus, msg := docflow.Transition(models.EntityTypeSalesOrder, rec.Status, models.DocActionCancel)
		if msg != "" {
			hMsg = msg
			return nil
		}
		// при отмене подтвержденного заказа резерв возвращается
		if fromStatus == models.SOStatusConfirmed {
			hMsg, err = i.postLines(tx, *rec, models.MovementTypeRelease, userID)
			if err != nil {
				return err
			}
			if hMsg != "" {
				return errAbort
			}
		}
		return store.Update(organizationID, rec.ID, map[string]interface{}{
			"status": toStatus,
		})
	})
	if errors.Is(err, errAbort) {
		return hMsg, nil
	}
	if err != nil {
		logger.WithError(err).Error("ошибка отмены заказа покупателя")
		return "", err
	}
	if hMsg == "" {
		logger.Info("заказ покупателя отменен")
	}
	return hMsg, nil
}

func (i impl) postLines(tx *gorm.DB, rec dbmodels.SalesOrder, movementType models.MovementType, userID string) (string, error) {
	lines, err := salesorderstore.NewInstance(tx).ListLines(rec.OrganizationID, rec.ID)
	if err != nil {
		return "", err
	}
	inventory := inventoryhandler.NewHandlerWithTx(tx)
	for _, line := range lines {
		hMsg, err := inventory.Post(rec.OrganizationID, rec.WarehouseID, line.ItemID, movementType,
			line.Quantity, models.EntityTypeSalesOrder, rec.ID, userID)
		if err != nil || hMsg != "" {
			return hMsg, err
		}
	}
	return "", nil
}
