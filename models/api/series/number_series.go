package seriesapimodels

import (
	"time"

	"erp-core-backend/models"
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
)

type NumberSeriesData struct {
	EntityType        models.EntityType `json:"entity_type"`
	Prefix            string            `json:"prefix"`
	Suffix            string            `json:"suffix"`
	Padding           int               `json:"padding"`
	IncludeDate       bool              `json:"include_date"`
	DateFormat        string            `json:"date_format"`
	ResetOnDateChange bool              `json:"reset_on_date_change"`
}

func (r NumberSeriesData) Validate() error {
	if !r.EntityType.IsValid() {
		return errors.Errorf("неизвестный тип документа: %v", r.EntityType)
	}
	if r.Padding < 0 || r.Padding > 12 {
		return errors.New("ширина номера должна быть от 0 до 12")
	}
	return nil
}

type NumberSeriesView struct {
	ID                string            `json:"id"`
	EntityType        models.EntityType `json:"entity_type"`
	EntityTypeName    string            `json:"entity_type_name"`
	Prefix            string            `json:"prefix"`
	Suffix            string            `json:"suffix"`
	CurrentNumber     int64             `json:"current_number"`
	Padding           int               `json:"padding"`
	IncludeDate       bool              `json:"include_date"`
	DateFormat        string            `json:"date_format"`
	ResetOnDateChange bool              `json:"reset_on_date_change"`
	LastResetDate     *time.Time        `json:"last_reset_date,omitempty"`
}

func NumberSeriesConvert(rec dbmodels.NumberSeries) NumberSeriesView {
	return NumberSeriesView{
		ID:                rec.ID,
		EntityType:        rec.EntityType,
		EntityTypeName:    rec.EntityType.ToHuman(),
		Prefix:            rec.Prefix,
		Suffix:            rec.Suffix,
		CurrentNumber:     rec.CurrentNumber,
		Padding:           rec.Padding,
		IncludeDate:       rec.IncludeDate,
		DateFormat:        rec.DateFormat,
		ResetOnDateChange: rec.ResetOnDateChange,
		LastResetDate:     rec.LastResetDate,
	}
}
