package itemhandler

import (
	"erp-core-backend/db"
	itemstore "erp-core-backend/lib/dicts/item/store"
	dictapimodels "erp-core-backend/models/api/dict"
	dbmodels "erp-core-backend/models/db"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

type Provider interface {
	Create(organizationID string, data dictapimodels.ItemData) (id string, err error)
	Update(organizationID, id string, data dictapimodels.ItemData) error
	GetByID(organizationID, id string) (view dictapimodels.ItemView, err error)
	List(organizationID, search string) (list []dictapimodels.ItemView, err error)
	Deactivate(organizationID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: itemstore.NewInstance(db.DB),
	}
}

type impl struct {
	store itemstore.Provider
}

func (i impl) Create(organizationID string, data dictapimodels.ItemData) (string, error) {
	existing, err := i.store.GetBySku(organizationID, data.Sku)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", errors.New("номенклатура с таким артикулом уже существует")
	}
	rec := dbmodels.Item{
		BaseOrgModel: dbmodels.BaseOrgModel{
			OrganizationID: organizationID,
		},
		Name:          data.Name,
		Sku:           data.Sku,
		Unit:          data.Unit,
		PurchasePrice: data.PurchasePrice,
		SalesPrice:    data.SalesPrice,
		Tags:          pq.StringArray(data.Tags),
		IsActive:      true,
	}
	return i.store.Create(rec)
}

func (i impl) Update(organizationID, id string, data dictapimodels.ItemData) error {
	updMap := map[string]interface{}{
		"name":           data.Name,
		"sku":            data.Sku,
		"unit":           data.Unit,
		"purchase_price": data.PurchasePrice,
		"sales_price":    data.SalesPrice,
		"tags":           pq.StringArray(data.Tags),
	}
	return i.store.Update(organizationID, id, updMap)
}

func (i impl) GetByID(organizationID, id string) (dictapimodels.ItemView, error) {
	rec, err := i.store.GetByID(organizationID, id)
	if err != nil {
		return dictapimodels.ItemView{}, err
	}
	if rec == nil {
		return dictapimodels.ItemView{}, errors.New("номенклатура не найдена")
	}
	return dictapimodels.ItemConvert(*rec), nil
}

func (i impl) List(organizationID, search string) ([]dictapimodels.ItemView, error) {
	recList, err := i.store.List(organizationID, search)
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.ItemView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.ItemConvert(rec))
	}
	return result, nil
}

func (i impl) Deactivate(organizationID, id string) error {
	return i.store.Update(organizationID, id, map[string]interface{}{
		"is_active": false,
	})
}
