package warehousehandler

import (
	"erp-core-backend/db"
	warehousestore "erp-core-backend/lib/dicts/warehouse/store"
	dictapimodels "erp-core-backend/models/api/dict"
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	Create(organizationID string, data dictapimodels.WarehouseData) (id string, err error)
	Update(organizationID, id string, data dictapimodels.WarehouseData) error
	GetByID(organizationID, id string) (view dictapimodels.WarehouseView, err error)
	List(organizationID string) (list []dictapimodels.WarehouseView, err error)
	Deactivate(organizationID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: warehousestore.NewInstance(db.DB),
	}
}

type impl struct {
	store warehousestore.Provider
}

func (i impl) Create(organizationID string, data dictapimodels.WarehouseData) (string, error) {
	rec := dbmodels.Warehouse{
		BaseOrgModel: dbmodels.BaseOrgModel{
			OrganizationID: organizationID,
		},
		Name:     data.Name,
		Code:     data.Code,
		Address:  data.Address,
		IsActive: true,
	}
	return i.store.Create(rec)
}

func (i impl) Update(organizationID, id string, data dictapimodels.WarehouseData) error {
	updMap := map[string]interface{}{
		"name":    data.Name,
		"code":    data.Code,
		"address": data.Address,
	}
	return i.store.Update(organizationID, id, updMap)
}

func (i impl) GetByID(organizationID, id string) (dictapimodels.WarehouseView, error) {
	rec, err := i.store.GetByID(organizationID, id)
	if err != nil {
		return dictapimodels.WarehouseView{}, err
	}
	if rec == nil {
		return dictapimodels.WarehouseView{}, errors.New("склад не найден")
	}
	return dictapimodels.WarehouseConvert(*rec), nil
}

func (i impl) List(organizationID string) ([]dictapimodels.WarehouseView, error) {
	recList, err := i.store.List(organizationID)
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.WarehouseView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.WarehouseConvert(rec))
	}
	return result, nil
}

func (i impl) Deactivate(organizationID, id string) error {
	return i.store.Update(organizationID, id, map[string]interface{}{
		"is_active": false,
	})
}
