package workorderhandler

import (
	"testing"

	inventoryhandler "erp-core-backend/lib/inventory"
	"erp-core-backend/models"
	docapimodels "erp-core-backend/models/api/docs"
	stockapimodels "erp-core-backend/models/api/stock"
	dbmodels "erp-core-backend/models/db"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeStore struct {
	rec     *dbmodels.WorkOrder
	updated map[string]interface{}
}

func (f *fakeStore) Create(rec dbmodels.WorkOrder) (string, error) {
	return "", nil
}

func (f *fakeStore) GetByID(organizationID, id string) (*dbmodels.WorkOrder, error) {
	return f.GetByIDForUpdate(organizationID, id)
}

func (f *fakeStore) GetByIDForUpdate(organizationID, id string) (*dbmodels.WorkOrder, error) {
	if f.rec == nil || f.rec.ID != id || f.rec.OrganizationID != organizationID {
		return nil, nil
	}
	rec := *f.rec
	return &rec, nil
}

func (f *fakeStore) Update(organizationID, id string, updMap map[string]interface{}) error {
	f.updated = updMap
	if v, ok := updMap["status"]; ok {
		f.rec.Status = v.(models.DocStatus)
	}
	return nil
}

func (f *fakeStore) Delete(organizationID, id string) error {
	return nil
}

func (f *fakeStore) ListCount(organizationID string, filter docapimodels.DocFilter) (int64, error) {
	return 0, nil
}

func (f *fakeStore) List(organizationID string, filter docapimodels.DocFilter) ([]dbmodels.WorkOrder, error) {
	return nil, nil
}

type fakeInventory struct {
	hMsg   string
	posted bool
}

func (f *fakeInventory) Post(organizationID, warehouseID, itemID string, movementType models.MovementType,
	quantity decimal.Decimal, entityType models.EntityType, entityID, actorID string) (string, error) {
	if f.hMsg != "" {
		return f.hMsg, nil
	}
	f.posted = true
	return "", nil
}

func (f *fakeInventory) ListBalances(organizationID, warehouseID string) ([]stockapimodels.StockBalanceView, error) {
	return nil, nil
}

func (f *fakeInventory) ListMovements(organizationID, itemID string) ([]stockapimodels.StockMovementView, error) {
	return nil, nil
}

func workOrder(status models.DocStatus) *dbmodels.WorkOrder {
	return &dbmodels.WorkOrder{
		BaseOrgModel: dbmodels.BaseOrgModel{
			BaseModel:      dbmodels.BaseModel{ID: "wo-1"},
			OrganizationID: "org1",
		},
		DocumentNumber: "WO-00001",
		ItemID:         "item-1",
		WarehouseID:    "wh-1",
		Status:         status,
		Quantity:       decimal.NewFromInt(10),
	}
}

func handlerWith(store *fakeStore, inventory *fakeInventory) impl {
	return impl{
		store: store,
		inventory: func(tx *gorm.DB) inventoryhandler.Provider {
			return inventory
		},
	}
}

func TestComplete(t *testing.T) {
	t.Run("завершение приходует выпуск check", func(t *testing.T) {
		store := &fakeStore{rec: workOrder(models.WOStatusInProgress)}
		inventory := &fakeInventory{}
		h := handlerWith(store, inventory)
		hMsg, err := h.Complete("org1", "user1", "wo-1")
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.True(t, inventory.posted)
		require.Equal(t, models.WOStatusCompleted, store.rec.Status)
	})

	t.Run("отказ склада не меняет статус заказа check", func(t *testing.T) {
		store := &fakeStore{rec: workOrder(models.WOStatusInProgress)}
		inventory := &fakeInventory{hMsg: "остаток недоступен"}
		h := handlerWith(store, inventory)
		hMsg, err := h.Complete("org1", "user1", "wo-1")
		require.NoError(t, err)
		require.Equal(t, "остаток недоступен", hMsg)
		require.Nil(t, store.updated)
		require.Equal(t, models.WOStatusInProgress, store.rec.Status)
	})

	t.Run("завершение до запуска check", func(t *testing.T) {
		store := &fakeStore{rec: workOrder(models.WOStatusReleased)}
		inventory := &fakeInventory{}
		h := handlerWith(store, inventory)
		hMsg, err := h.Complete("org1", "user1", "wo-1")
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)
		require.False(t, inventory.posted)
	})

	t.Run("заказ не найден check", func(t *testing.T) {
		h := handlerWith(&fakeStore{}, &fakeInventory{})
		hMsg, err := h.Complete("org1", "user1", "missing")
		require.NoError(t, err)
		require.Equal(t, "производственный заказ не найден", hMsg)
	})
}
