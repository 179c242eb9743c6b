package goodsreceipthandler

import (
	"time"

	"erp-core-backend/db"
	docflow "erp-core-backend/lib/doc-flow"
	goodsreceiptstore "erp-core-backend/lib/goods-receipt/store"
	inventoryhandler "erp-core-backend/lib/inventory"
	numberserieshandler "erp-core-backend/lib/number-series"
	purchaseorderstore "erp-core-backend/lib/purchase-order/store"
	"erp-core-backend/models"
	docapimodels "erp-core-backend/models/api/docs"
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	// Create создает черновик накладной, номер выдается в транзакции создания.
	// Повторное проведение после сбоя использует уже выданный номер
	Create(organizationID, authorID string, data docapimodels.GoodsReceiptCreateData) (view docapimodels.GoodsReceiptView, err error)
	GetByID(organizationID, id string) (view docapimodels.GoodsReceiptView, err error)
	List(organizationID string, filter docapimodels.DocFilter) (list []docapimodels.GoodsReceiptView, rowCount int64, err error)
	Delete(organizationID, id string) (hMsg string, err error)
	// Complete проводит накладную: приход по строкам и смена статуса в одной транзакции
	Complete(organizationID, userID, id string) (hMsg string, err error)
}

var Instance Provider

var errAbort = errors.New("операция прервана")

func NewHandler() {
	Instance = impl{
		store: goodsreceiptstore.NewInstance(db.DB),
	}
}

type impl struct {
	store goodsreceiptstore.Provider
}

func (i impl) getLogger(organizationID, recID string) *log.Entry {
	return log.
		WithField("organization_id", organizationID).
		WithField("rec_id", recID)
}

func (i impl) Create(organizationID, authorID string, data docapimodels.GoodsReceiptCreateData) (docapimodels.GoodsReceiptView, error) {
	logger := log.WithField("organization_id", organizationID)
	var id string
	var hMsg string
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if data.PurchaseOrderID != "" {
			po, err := purchaseorderstore.NewInstance(tx).GetByID(organizationID, data.PurchaseOrderID)
			if err != nil {
				return err
			}
			if po == nil {
				hMsg = "заказ поставщику не найден"
				return errAbort
			}
			if po.Status != models.POStatusApproved && po.Status != models.POStatusReceiving {
				hMsg = "заказ поставщику не согласован для приемки"
				return errAbort
			}
		}
		number, err := numberserieshandler.Instance.AllocateTx(tx, organizationID, models.EntityTypeGoodsReceipt, nil)
		if err != nil {
			return err
		}
		rec := dbmodels.GoodsReceiptNote{
			BaseOrgModel: dbmodels.BaseOrgModel{
				OrganizationID: organizationID,
			},
			DocumentNumber:  number,
			PurchaseOrderID: data.PurchaseOrderID,
			WarehouseID:     data.WarehouseID,
			Status:          docflow.InitialStatus(models.EntityTypeGoodsReceipt),
			Comment:         data.Comment,
			AuthorID:        authorID,
		}
		for _, line := range data.Lines {
			rec.Lines = append(rec.Lines, dbmodels.GoodsReceiptLine{
				BaseOrgModel: dbmodels.BaseOrgModel{
					OrganizationID: organizationID,
				},
				ItemID:   line.ItemID,
				Quantity: line.Quantity,
				Price:    line.Price,
			})
		}
		id, err = goodsreceiptstore.NewInstance(tx).Create(rec)
		if err != nil {
			return errors.Wrap(err, "ошибка создания приходной накладной")
		}
		return nil
	})
	if errors.Is(err, errAbort) {
		return docapimodels.GoodsReceiptView{}, errors.New(hMsg)
	}
	if err != nil {
		logger.WithError(err).Error("ошибка создания приходной накладной")
		return docapimodels.GoodsReceiptView{}, err
	}
	logger.
		WithField("rec_id", id).
		Info("создана приходная накладная")
	return i.GetByID(organizationID, id)
}

func (i impl) GetByID(organizationID, id string) (docapimodels.GoodsReceiptView, error) {
	rec, err := i.store.GetByID(organizationID, id)
	if err != nil {
		return docapimodels.GoodsReceiptView{}, err
	}
	if rec == nil {
		return docapimodels.GoodsReceiptView{}, errors.New("приходная накладная не найдена")
	}
	return docapimodels.GoodsReceiptConvert(*rec), nil
}

func (i impl) List(organizationID string, filter docapimodels.DocFilter) ([]docapimodels.GoodsReceiptView, int64, error) {
	rowCount, err := i.store.ListCount(organizationID, filter)
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []docapimodels.GoodsReceiptView{}, rowCount, nil
	}
	recList, err := i.store.List(organizationID, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]docapimodels.GoodsReceiptView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, docapimodels.GoodsReceiptConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Delete(organizationID, id string) (string, error) {
	rec, err := i.store.GetByID(organizationID, id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "приходная накладная не найдена", nil
	}
	if rec.Status != models.GrnStatusDraft {
		return "проведенную накладную удалить нельзя", nil
	}
	err = i.store.Delete(organizationID, id)
	if err != nil {
		return "", err
	}
	i.getLogger(organizationID, id).Info("приходная накладная удалена")
	return "", nil
}

func (i impl) Complete(organizationID, userID, id string) (string, error) {
	logger := i.getLogger(organizationID, id)
	var hMsg string
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := goodsreceiptstore.NewInstance(tx)
		rec, err := store.GetByIDForUpdate(organizationID, id)
		if err != nil {
			return err
		}
		if rec == nil {
			hMsg = "приходная накладная не найдена"
			return nil
		}
		toStatus, msg := docflow.Transition(models.EntityTypeGoodsReceipt, rec.Status, models.DocActionComplete)
		if msg != "" {
			hMsg = msg
			return nil
		}
		lines, err := store.ListLines(organizationID, rec.ID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			hMsg = "накладная не содержит строк"
			return nil
		}
		inventory := inventoryhandler.NewHandlerWithTx(tx)
		for _, line := range lines {
			msg, err = inventory.Post(organizationID, rec.WarehouseID, line.ItemID,
				models.MovementTypeReceipt, line.Quantity, models.EntityTypeGoodsReceipt, rec.ID, userID)
			if err != nil {
				return err
			}
			if msg != "" {
				hMsg = msg
				return errAbort
			}
		}
		// первая проведенная накладная переводит связанный заказ в приемку
		if rec.PurchaseOrderID != "" {
			poStore := purchaseorderstore.NewInstance(tx)
			po, err := poStore.GetByIDForUpdate(organizationID, rec.PurchaseOrderID)
			if err != nil {
				return err
			}
			if po != nil && po.Status == models.POStatusApproved {
				poStatus, msg := docflow.Transition(models.EntityTypePurchaseOrder, po.Status, models.DocActionReceive)
				if msg != "" {
					hMsg = msg
					return errAbort
				}
				err = poStore.Update(organizationID, po.ID, map[string]interface{}{
					"status": poStatus,
				})
				if err != nil {
					return err
				}
			}
		}
		now := time.Now()
		return store.Update(organizationID, rec.ID, map[string]interface{}{
			"status":          toStatus,
			"completed_by_id": userID,
			"completed_at":    &now,
		})
	})
	if errors.Is(err, errAbort) {
		return hMsg, nil
	}
	if err != nil {
		logger.WithError(err).Error("ошибка проведения приходной накладной")
		return "", err
	}
	if hMsg == "" {
		logger.Info("приходная накладная проведена")
	}
	return hMsg, nil
}
