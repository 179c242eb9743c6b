package docflow

import (
	"testing"

	"erp-core-backend/models"

	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	t.Run("полный цикл заказа поставщику check", func(t *testing.T) {
		status := InitialStatus(models.EntityTypePurchaseOrder)
		require.Equal(t, models.POStatusDraft, status)
		for _, action := range []models.DocAction{
			models.DocActionSubmit,
			models.DocActionApprove,
			models.DocActionReceive,
			models.DocActionClose,
		} {
			next, hMsg := Transition(models.EntityTypePurchaseOrder, status, action)
			require.Empty(t, hMsg)
			status = next
		}
		require.Equal(t, models.POStatusClosed, status)
		require.True(t, IsTerminal(models.EntityTypePurchaseOrder, status))
	})
	t.Run("недопустимое действие check", func(t *testing.T) {
		_, hMsg := Transition(models.EntityTypeWorkOrder, models.WOStatusInProgress, models.DocActionRelease)
		require.NotEmpty(t, hMsg)
		require.False(t, CanTransition(models.EntityTypeWorkOrder, models.WOStatusInProgress, models.DocActionRelease))
	})
	t.Run("отмена из терминального статуса check", func(t *testing.T) {
		require.False(t, CanTransition(models.EntityTypePurchaseOrder, models.POStatusClosed, models.DocActionCancel))
		require.False(t, CanTransition(models.EntityTypePurchaseOrder, models.POStatusCancelled, models.DocActionSubmit))
		require.False(t, CanTransition(models.EntityTypeSalesOrder, models.SOStatusDispatched, models.DocActionCancel))
	})
	t.Run("производственный заказ check", func(t *testing.T) {
		status := InitialStatus(models.EntityTypeWorkOrder)
		require.Equal(t, models.WOStatusPlanned, status)
		next, hMsg := Transition(models.EntityTypeWorkOrder, status, models.DocActionRelease)
		require.Empty(t, hMsg)
		require.Equal(t, models.WOStatusReleased, next)
		next, hMsg = Transition(models.EntityTypeWorkOrder, next, models.DocActionStart)
		require.Empty(t, hMsg)
		require.Equal(t, models.WOStatusInProgress, next)
		next, hMsg = Transition(models.EntityTypeWorkOrder, next, models.DocActionComplete)
		require.Empty(t, hMsg)
		require.Equal(t, models.WOStatusCompleted, next)
	})
	t.Run("приходная накладная check", func(t *testing.T) {
		next, hMsg := Transition(models.EntityTypeGoodsReceipt, models.GrnStatusDraft, models.DocActionComplete)
		require.Empty(t, hMsg)
		require.Equal(t, models.GrnStatusCompleted, next)
		require.True(t, IsTerminal(models.EntityTypeGoodsReceipt, models.GrnStatusCompleted))
	})
	t.Run("список допустимых действий check", func(t *testing.T) {
		actions := Actions(models.EntityTypePurchaseOrder, models.POStatusSubmitted)
		require.ElementsMatch(t, []models.DocAction{models.DocActionApprove, models.DocActionCancel}, actions)
	})
}
