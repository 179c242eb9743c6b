package approvalrequesthandler

import (
	"testing"

	"erp-core-backend/models"
	approvalapimodels "erp-core-backend/models/api/approval"
	dbmodels "erp-core-backend/models/db"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeRequestStore struct {
	pending *dbmodels.ApprovalRequest
	created *dbmodels.ApprovalRequest
	rec     *dbmodels.ApprovalRequest
}

func (f *fakeRequestStore) Create(rec dbmodels.ApprovalRequest) (string, error) {
	rec.ID = "req-1"
	f.created = &rec
	return rec.ID, nil
}

func (f *fakeRequestStore) GetByID(organizationID, id string) (*dbmodels.ApprovalRequest, error) {
	return nil, nil
}

func (f *fakeRequestStore) GetByIDForUpdate(organizationID, id string) (*dbmodels.ApprovalRequest, error) {
	if f.rec == nil || f.rec.ID != id || f.rec.OrganizationID != organizationID {
		return nil, nil
	}
	rec := *f.rec
	return &rec, nil
}

func (f *fakeRequestStore) GetPendingByEntity(organizationID string, entityType models.EntityType, entityID string) (*dbmodels.ApprovalRequest, error) {
	return f.pending, nil
}

func (f *fakeRequestStore) Update(organizationID, id string, updMap map[string]interface{}) error {
	if f.rec == nil || f.rec.ID != id || f.rec.OrganizationID != organizationID {
		return nil
	}
	if v, ok := updMap["current_step"]; ok {
		f.rec.CurrentStep = v.(int)
	}
	if v, ok := updMap["status"]; ok {
		f.rec.Status = v.(models.ApprovalStatus)
	}
	if v, ok := updMap["approved_by_id"]; ok {
		f.rec.ApprovedByID = v.(string)
	}
	if v, ok := updMap["rejected_by_id"]; ok {
		f.rec.RejectedByID = v.(string)
	}
	if v, ok := updMap["rejection_reason"]; ok {
		f.rec.RejectionReason = v.(string)
	}
	return nil
}

func (f *fakeRequestStore) ListPending(organizationID string, entityType models.EntityType) ([]dbmodels.ApprovalRequest, error) {
	return nil, nil
}

func (f *fakeRequestStore) ListByEntity(organizationID string, entityType models.EntityType, entityID string) ([]dbmodels.ApprovalRequest, error) {
	return nil, nil
}

type fakeWorkflowStore struct {
	workflow *dbmodels.ApprovalWorkflow
}

func (f *fakeWorkflowStore) Create(rec dbmodels.ApprovalWorkflow) (string, error) {
	return "", nil
}

func (f *fakeWorkflowStore) CreateStep(rec dbmodels.ApprovalWorkflowStep) (string, error) {
	return "", nil
}

func (f *fakeWorkflowStore) GetByID(organizationID, id string) (*dbmodels.ApprovalWorkflow, error) {
	return nil, nil
}

func (f *fakeWorkflowStore) GetActiveByEntityType(organizationID string, entityType models.EntityType) (*dbmodels.ApprovalWorkflow, error) {
	return f.workflow, nil
}

func (f *fakeWorkflowStore) List(organizationID string) ([]dbmodels.ApprovalWorkflow, error) {
	return nil, nil
}

func (f *fakeWorkflowStore) Delete(organizationID, id string) error {
	return nil
}

func dec(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func bandedWorkflow() *dbmodels.ApprovalWorkflow {
	return &dbmodels.ApprovalWorkflow{
		BaseOrgModel: dbmodels.BaseOrgModel{
			BaseModel: dbmodels.BaseModel{ID: "wf-1"},
		},
		EntityType: models.EntityTypePurchaseOrder,
		IsActive:   true,
		Steps: []dbmodels.ApprovalWorkflowStep{
			{StepNumber: 1, MinAmount: dec("0"), MaxAmount: dec("1000")},
			{StepNumber: 2, MinAmount: dec("1000")},
		},
	}
}

func TestRequestApproval(t *testing.T) {
	data := approvalapimodels.ApprovalRequestData{
		EntityType: models.EntityTypePurchaseOrder,
		EntityID:   "po-1",
		FromStatus: models.POStatusSubmitted,
		ToStatus:   models.POStatusApproved,
	}

	t.Run("повторный запрос по документу check", func(t *testing.T) {
		h := impl{
			store:         &fakeRequestStore{pending: &dbmodels.ApprovalRequest{}},
			workflowStore: &fakeWorkflowStore{},
		}
		_, err := h.RequestApproval("org1", "user1", data)
		require.EqualError(t, err, "документ уже находится на согласовании")
	})

	t.Run("маршрут не настроен check", func(t *testing.T) {
		store := &fakeRequestStore{}
		h := impl{store: store, workflowStore: &fakeWorkflowStore{}}
		view, err := h.RequestApproval("org1", "user1", data)
		require.NoError(t, err)
		require.Equal(t, 1, view.TotalSteps)
		require.Equal(t, 1, view.CurrentStep)
		require.Equal(t, models.ApprovalStatusPending, view.Status)
		require.Equal(t, "user1", store.created.RequestedByID)
		require.Empty(t, store.created.WorkflowID)
	})

	t.Run("сумма попадает в оба диапазона check", func(t *testing.T) {
		reqData := data
		reqData.Amount = dec("1000")
		h := impl{store: &fakeRequestStore{}, workflowStore: &fakeWorkflowStore{workflow: bandedWorkflow()}}
		view, err := h.RequestApproval("org1", "user1", reqData)
		require.NoError(t, err)
		require.Equal(t, 2, view.TotalSteps)
	})

	t.Run("сумма попадает только в один диапазон check", func(t *testing.T) {
		reqData := data
		reqData.Amount = dec("1500")
		h := impl{store: &fakeRequestStore{}, workflowStore: &fakeWorkflowStore{workflow: bandedWorkflow()}}
		view, err := h.RequestApproval("org1", "user1", reqData)
		require.NoError(t, err)
		require.Equal(t, 1, view.TotalSteps)
	})

	t.Run("документ без суммы проходит все этапы check", func(t *testing.T) {
		store := &fakeRequestStore{}
		h := impl{store: store, workflowStore: &fakeWorkflowStore{workflow: bandedWorkflow()}}
		view, err := h.RequestApproval("org1", "user1", data)
		require.NoError(t, err)
		require.Equal(t, 2, view.TotalSteps)
		require.Equal(t, "wf-1", store.created.WorkflowID)
	})
}

func TestStepAppliesTo(t *testing.T) {
	t.Run("границы включительные check", func(t *testing.T) {
		step := dbmodels.ApprovalWorkflowStep{MinAmount: dec("1000"), MaxAmount: dec("5000")}
		require.True(t, step.AppliesTo(dec("1000")))
		require.True(t, step.AppliesTo(dec("5000")))
		require.False(t, step.AppliesTo(dec("999.99")))
		require.False(t, step.AppliesTo(dec("5000.01")))
	})
	t.Run("открытые границы check", func(t *testing.T) {
		step := dbmodels.ApprovalWorkflowStep{MinAmount: dec("1000")}
		require.True(t, step.AppliesTo(dec("1000000")))
		step = dbmodels.ApprovalWorkflowStep{}
		require.True(t, step.AppliesTo(dec("0")))
	})
	t.Run("документ без суммы check", func(t *testing.T) {
		step := dbmodels.ApprovalWorkflowStep{MinAmount: dec("1000"), MaxAmount: dec("5000")}
		require.True(t, step.AppliesTo(nil))
	})
}

func pendingRequest(currentStep, totalSteps int) *dbmodels.ApprovalRequest {
	return &dbmodels.ApprovalRequest{
		BaseOrgModel: dbmodels.BaseOrgModel{
			BaseModel:      dbmodels.BaseModel{ID: "req-1"},
			OrganizationID: "org1",
		},
		EntityType:    models.EntityTypePurchaseOrder,
		EntityID:      "po-1",
		FromStatus:    models.POStatusSubmitted,
		ToStatus:      models.POStatusApproved,
		CurrentStep:   currentStep,
		TotalSteps:    totalSteps,
		Status:        models.ApprovalStatusPending,
		RequestedByID: "user1",
	}
}

func TestApprove(t *testing.T) {
	t.Run("каждый этап согласуется отдельно check", func(t *testing.T) {
		store := &fakeRequestStore{rec: pendingRequest(1, 3)}
		h := impl{store: store}

		view, err := h.Approve("org1", "req-1", "user2")
		require.NoError(t, err)
		require.Equal(t, models.ApprovalStatusPending, view.Status)
		require.Equal(t, 2, view.CurrentStep)

		view, err = h.Approve("org1", "req-1", "user2")
		require.NoError(t, err)
		require.Equal(t, models.ApprovalStatusPending, view.Status)
		require.Equal(t, 3, view.CurrentStep)

		view, err = h.Approve("org1", "req-1", "user2")
		require.NoError(t, err)
		require.Equal(t, models.ApprovalStatusApproved, view.Status)
		require.Equal(t, "user2", store.rec.ApprovedByID)

		_, err = h.Approve("org1", "req-1", "user3")
		require.ErrorIs(t, err, ErrAlreadyResolved)
	})

	t.Run("одноэтапный запрос check", func(t *testing.T) {
		store := &fakeRequestStore{rec: pendingRequest(1, 1)}
		h := impl{store: store}
		view, err := h.Approve("org1", "req-1", "user2")
		require.NoError(t, err)
		require.Equal(t, models.ApprovalStatusApproved, view.Status)
	})

	t.Run("запрос не найден check", func(t *testing.T) {
		h := impl{store: &fakeRequestStore{}}
		_, err := h.Approve("org1", "missing", "user2")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("чужая организация check", func(t *testing.T) {
		h := impl{store: &fakeRequestStore{rec: pendingRequest(1, 1)}}
		_, err := h.Approve("org2", "req-1", "user2")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestReject(t *testing.T) {
	t.Run("отклонение завершает запрос окончательно check", func(t *testing.T) {
		store := &fakeRequestStore{rec: pendingRequest(2, 3)}
		h := impl{store: store}

		view, err := h.Reject("org1", "req-1", "user2", "нет бюджета")
		require.NoError(t, err)
		require.Equal(t, models.ApprovalStatusRejected, view.Status)
		require.Equal(t, "user2", store.rec.RejectedByID)
		require.Equal(t, "нет бюджета", store.rec.RejectionReason)

		_, err = h.Approve("org1", "req-1", "user3")
		require.ErrorIs(t, err, ErrAlreadyResolved)
	})

	t.Run("повторное отклонение check", func(t *testing.T) {
		store := &fakeRequestStore{rec: pendingRequest(1, 1)}
		h := impl{store: store}
		_, err := h.Reject("org1", "req-1", "user2", "дубликат")
		require.NoError(t, err)
		_, err = h.Reject("org1", "req-1", "user2", "дубликат")
		require.ErrorIs(t, err, ErrAlreadyResolved)
	})

	t.Run("запрос не найден check", func(t *testing.T) {
		h := impl{store: &fakeRequestStore{}}
		_, err := h.Reject("org1", "missing", "user2", "причина")
		require.ErrorIs(t, err, ErrNotFound)
	})
}
