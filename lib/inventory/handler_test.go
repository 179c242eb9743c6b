package inventoryhandler

import (
	"testing"

	"erp-core-backend/models"
	dbmodels "erp-core-backend/models/db"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	balance   *dbmodels.StockBalance
	updMap    map[string]interface{}
	movements []dbmodels.StockMovement
}

func (f *fakeStore) GetBalanceForUpdate(organizationID, warehouseID, itemID string) (*dbmodels.StockBalance, error) {
	return f.balance, nil
}

func (f *fakeStore) CreateBalance(rec dbmodels.StockBalance) (string, error) {
	rec.ID = "bal-1"
	f.balance = &rec
	return rec.ID, nil
}

func (f *fakeStore) UpdateBalance(organizationID, id string, updMap map[string]interface{}) error {
	f.updMap = updMap
	return nil
}

func (f *fakeStore) ListBalances(organizationID, warehouseID string) ([]dbmodels.StockBalance, error) {
	return nil, nil
}

func (f *fakeStore) CreateMovement(rec dbmodels.StockMovement) (string, error) {
	f.movements = append(f.movements, rec)
	return "mov-1", nil
}

func (f *fakeStore) ListMovements(organizationID, itemID string) ([]dbmodels.StockMovement, error) {
	return nil, nil
}

func balanceOf(quantity, reserved string) *dbmodels.StockBalance {
	return &dbmodels.StockBalance{
		BaseModel:      dbmodels.BaseModel{ID: "bal-1"},
		OrganizationID: "org1",
		WarehouseID:    "wh1",
		ItemID:         "item1",
		Quantity:       decimal.RequireFromString(quantity),
		Reserved:       decimal.RequireFromString(reserved),
	}
}

func post(store *fakeStore, movementType models.MovementType, quantity string) (string, error) {
	h := impl{store: store}
	return h.Post("org1", "wh1", "item1", movementType,
		decimal.RequireFromString(quantity), models.EntityTypeSalesOrder, "so-1", "user1")
}

func TestPost(t *testing.T) {
	t.Run("приход увеличивает остаток check", func(t *testing.T) {
		store := &fakeStore{balance: balanceOf("10", "0")}
		hMsg, err := post(store, models.MovementTypeReceipt, "5")
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.True(t, decimal.RequireFromString("15").Equal(store.updMap["quantity"].(decimal.Decimal)))
		require.Len(t, store.movements, 1)
		require.Equal(t, models.MovementTypeReceipt, store.movements[0].MovementType)
	})
	t.Run("расход сверх свободного остатка check", func(t *testing.T) {
		store := &fakeStore{balance: balanceOf("10", "8")}
		hMsg, err := post(store, models.MovementTypeIssue, "5")
		require.NoError(t, err)
		require.Equal(t, "недостаточно свободного остатка на складе", hMsg)
		require.Empty(t, store.movements)
	})
	t.Run("расход в пределах свободного остатка check", func(t *testing.T) {
		store := &fakeStore{balance: balanceOf("10", "8")}
		hMsg, err := post(store, models.MovementTypeIssue, "2")
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.True(t, decimal.RequireFromString("8").Equal(store.updMap["quantity"].(decimal.Decimal)))
	})
	t.Run("резерв уменьшает свободный остаток check", func(t *testing.T) {
		store := &fakeStore{balance: balanceOf("10", "0")}
		hMsg, err := post(store, models.MovementTypeReserve, "4")
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.True(t, decimal.RequireFromString("4").Equal(store.updMap["reserved"].(decimal.Decimal)))
		require.True(t, decimal.RequireFromString("10").Equal(store.updMap["quantity"].(decimal.Decimal)))
	})
	t.Run("снятие резерва больше зарезервированного check", func(t *testing.T) {
		store := &fakeStore{balance: balanceOf("10", "3")}
		hMsg, err := post(store, models.MovementTypeRelease, "5")
		require.NoError(t, err)
		require.Equal(t, "резерв меньше снимаемого количества", hMsg)
	})
	t.Run("ленивое создание строки остатка check", func(t *testing.T) {
		store := &fakeStore{}
		hMsg, err := post(store, models.MovementTypeProduction, "7")
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.NotNil(t, store.balance)
		require.True(t, decimal.RequireFromString("7").Equal(store.updMap["quantity"].(decimal.Decimal)))
	})
	t.Run("нулевое количество check", func(t *testing.T) {
		store := &fakeStore{balance: balanceOf("10", "0")}
		hMsg, err := post(store, models.MovementTypeReceipt, "0")
		require.NoError(t, err)
		require.Equal(t, "количество движения должно быть больше нуля", hMsg)
	})
	t.Run("доступный остаток check", func(t *testing.T) {
		b := balanceOf("10", "4")
		require.True(t, decimal.RequireFromString("6").Equal(b.Available()))
	})
}
