package numberserieshandler

import (
	"time"

	"erp-core-backend/db"
	numberseriesstore "erp-core-backend/lib/number-series/store"
	"erp-core-backend/models"
	seriesapimodels "erp-core-backend/models/api/series"
	dbmodels "erp-core-backend/models/db"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	// Allocate выдает следующий номер в отдельной транзакции
	Allocate(organizationID string, entityType models.EntityType, defaults *seriesapimodels.NumberSeriesData) (number string, err error)
	// AllocateTx выдает следующий номер внутри транзакции вызывающего.
	// При откате транзакции номер считается израсходованным (допустимы пропуски, но не дубли).
	AllocateTx(tx *gorm.DB, organizationID string, entityType models.EntityType, defaults *seriesapimodels.NumberSeriesData) (number string, err error)
	Save(organizationID string, data seriesapimodels.NumberSeriesData) error
	List(organizationID string) (list []seriesapimodels.NumberSeriesView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: numberseriesstore.NewInstance(db.DB),
	}
}

type impl struct {
	store numberseriesstore.Provider
}

var defaultPrefix = map[models.EntityType]string{
	models.EntityTypePurchaseOrder: "PO-",
	models.EntityTypeSalesOrder:    "SO-",
	models.EntityTypeWorkOrder:     "WO-",
	models.EntityTypeGoodsReceipt:  "GRN-",
}

const defaultPadding = 5

func (i impl) Allocate(organizationID string, entityType models.EntityType, defaults *seriesapimodels.NumberSeriesData) (number string, err error) {
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		number, err = i.AllocateTx(tx, organizationID, entityType, defaults)
		return err
	})
	if err != nil && isSerializationFailure(err) {
		// повторяем один раз, дальше отдаем ошибку наверх
		log.
			WithField("organization_id", organizationID).
			WithField("entity_type", entityType).
			Warn("конфликт выдачи номера, повторная попытка")
		err = db.DB.Transaction(func(tx *gorm.DB) error {
			number, err = i.AllocateTx(tx, organizationID, entityType, defaults)
			return err
		})
	}
	if err != nil {
		return "", err
	}
	return number, nil
}

func (i impl) AllocateTx(tx *gorm.DB, organizationID string, entityType models.EntityType, defaults *seriesapimodels.NumberSeriesData) (string, error) {
	store := numberseriesstore.NewInstance(tx)
	rec, err := store.GetByEntityTypeForUpdate(organizationID, entityType)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения серии нумерации")
	}
	if rec == nil {
		newRec := newSeries(organizationID, entityType, defaults)
		_, err = store.Create(newRec)
		if err != nil {
			return "", errors.Wrap(err, "ошибка создания серии нумерации")
		}
		// строка создана в этой же транзакции, повторное чтение держит блокировку
		rec, err = store.GetByEntityTypeForUpdate(organizationID, entityType)
		if err != nil || rec == nil {
			return "", errors.Wrap(err, "ошибка чтения созданной серии нумерации")
		}
	}
	now := time.Now()
	updMap := map[string]interface{}{}
	if rec.ResetOnDateChange && !sameDay(rec.LastResetDate, now) {
		rec.CurrentNumber = 0
		resetDate := now
		rec.LastResetDate = &resetDate
		updMap["last_reset_date"] = rec.LastResetDate
	}
	rec.CurrentNumber++
	updMap["current_number"] = rec.CurrentNumber
	err = store.Update(organizationID, rec.ID, updMap)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения счетчика серии")
	}
	return rec.Format(rec.CurrentNumber, now), nil
}

func (i impl) Save(organizationID string, data seriesapimodels.NumberSeriesData) error {
	logger := log.
		WithField("organization_id", organizationID).
		WithField("entity_type", data.EntityType)
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := numberseriesstore.NewInstance(tx)
		rec, err := store.GetByEntityTypeForUpdate(organizationID, data.EntityType)
		if err != nil {
			return err
		}
		if rec == nil {
			_, err = store.Create(newSeries(organizationID, data.EntityType, &data))
			return err
		}
		updMap := map[string]interface{}{
			"prefix":               data.Prefix,
			"suffix":               data.Suffix,
			"padding":              data.Padding,
			"include_date":         data.IncludeDate,
			"date_format":          data.DateFormat,
			"reset_on_date_change": data.ResetOnDateChange,
		}
		return store.Update(organizationID, rec.ID, updMap)
	})
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения настроек серии нумерации")
		return err
	}
	logger.Info("настройки серии нумерации сохранены")
	return nil
}

func (i impl) List(organizationID string) ([]seriesapimodels.NumberSeriesView, error) {
	recList, err := i.store.List(organizationID)
	if err != nil {
		return nil, err
	}
	result := make([]seriesapimodels.NumberSeriesView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, seriesapimodels.NumberSeriesConvert(rec))
	}
	return result, nil
}

func newSeries(organizationID string, entityType models.EntityType, defaults *seriesapimodels.NumberSeriesData) dbmodels.NumberSeries {
	rec := dbmodels.NumberSeries{
		OrganizationID: organizationID,
		EntityType:     entityType,
		Prefix:         defaultPrefix[entityType],
		Padding:        defaultPadding,
	}
	if defaults != nil {
		rec.Prefix = defaults.Prefix
		rec.Suffix = defaults.Suffix
		rec.IncludeDate = defaults.IncludeDate
		rec.DateFormat = defaults.DateFormat
		rec.ResetOnDateChange = defaults.ResetOnDateChange
		if defaults.Padding > 0 {
			rec.Padding = defaults.Padding
		}
	}
	return rec
}

func sameDay(last *time.Time, now time.Time) bool {
	if last == nil {
		return false
	}
	y1, m1, d1 := last.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// UniqueViolation - гонка ленивого создания строки серии двумя транзакциями
		return pgErr.Code == pgerrcode.SerializationFailure ||
			pgErr.Code == pgerrcode.DeadlockDetected ||
			pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}
