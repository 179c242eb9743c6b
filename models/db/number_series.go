package dbmodels

import (
	"fmt"
	"time"

	"erp-core-backend/models"
)

// NumberSeries - счетчик нумерации документов, одна запись на пару (организация, тип документа).
// Изменяется только внутри транзакции выдачи номера под блокировкой строки.
type NumberSeries struct {
	BaseModel
	OrganizationID    string            `gorm:"type:varchar(36);uniqueIndex:idx_number_series_key"`
	EntityType        models.EntityType `gorm:"type:varchar(50);uniqueIndex:idx_number_series_key"`
	Prefix            string            `gorm:"type:varchar(20)"`
	Suffix            string            `gorm:"type:varchar(20)"`
	CurrentNumber     int64
	Padding           int
	IncludeDate       bool
	DateFormat        string `gorm:"type:varchar(20)"`
	ResetOnDateChange bool
	LastResetDate     *time.Time
}

// Format форматирует уже выданное значение счетчика
func (s NumberSeries) Format(number int64, now time.Time) string {
	datePart := ""
	if s.IncludeDate {
		layout := s.DateFormat
		if layout == "" {
			layout = "20060102"
		}
		datePart = now.Format(layout) + "-"
	}
	padding := s.Padding
	if padding <= 0 {
		padding = 5
	}
	return fmt.Sprintf("%s%s%0*d%s", s.Prefix, datePart, padding, number, s.Suffix)
}
