package dictapimodels

import (
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
)

type WarehouseData struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Address string `json:"address"`
}

func (r WarehouseData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано наименование")
	}
	return nil
}

type WarehouseView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Address  string `json:"address,omitempty"`
	IsActive bool   `json:"is_active"`
}

func WarehouseConvert(rec dbmodels.Warehouse) WarehouseView {
	return WarehouseView{
		ID:       rec.ID,
		Name:     rec.Name,
		Code:     rec.Code,
		Address:  rec.Address,
		IsActive: rec.IsActive,
	}
}
