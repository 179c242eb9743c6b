package numberserieshandler

import (
	"testing"
	"time"

	"erp-core-backend/models"
	seriesapimodels "erp-core-backend/models/api/series"
	dbmodels "erp-core-backend/models/db"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	t.Run("префикс и дополнение нулями check", func(t *testing.T) {
		s := dbmodels.NumberSeries{Prefix: "PO-", Padding: 5}
		require.Equal(t, "PO-00042", s.Format(42, now))
	})
	t.Run("суффикс check", func(t *testing.T) {
		s := dbmodels.NumberSeries{Prefix: "SO-", Padding: 4, Suffix: "/MSK"}
		require.Equal(t, "SO-0007/MSK", s.Format(7, now))
	})
	t.Run("номер с датой check", func(t *testing.T) {
		s := dbmodels.NumberSeries{Prefix: "GRN-", Padding: 3, IncludeDate: true}
		require.Equal(t, "GRN-20250314-001", s.Format(1, now))
	})
	t.Run("пользовательский формат даты check", func(t *testing.T) {
		s := dbmodels.NumberSeries{Prefix: "WO-", Padding: 3, IncludeDate: true, DateFormat: "2006"}
		require.Equal(t, "WO-2025-015", s.Format(15, now))
	})
	t.Run("номер длиннее дополнения check", func(t *testing.T) {
		s := dbmodels.NumberSeries{Prefix: "PO-", Padding: 3}
		require.Equal(t, "PO-123456", s.Format(123456, now))
	})
	t.Run("дополнение по умолчанию check", func(t *testing.T) {
		s := dbmodels.NumberSeries{Prefix: "PO-"}
		require.Equal(t, "PO-00001", s.Format(1, now))
	})
}

func TestSameDay(t *testing.T) {
	now := time.Date(2025, 3, 14, 23, 50, 0, 0, time.UTC)
	t.Run("тот же день check", func(t *testing.T) {
		last := time.Date(2025, 3, 14, 0, 10, 0, 0, time.UTC)
		require.True(t, sameDay(&last, now))
	})
	t.Run("следующий день check", func(t *testing.T) {
		last := time.Date(2025, 3, 13, 23, 59, 0, 0, time.UTC)
		require.False(t, sameDay(&last, now))
	})
	t.Run("сброса еще не было check", func(t *testing.T) {
		require.False(t, sameDay(nil, now))
	})
}

func TestNewSeries(t *testing.T) {
	t.Run("значения по умолчанию check", func(t *testing.T) {
		rec := newSeries("org1", models.EntityTypePurchaseOrder, nil)
		require.Equal(t, "PO-", rec.Prefix)
		require.Equal(t, 5, rec.Padding)
		require.Equal(t, int64(0), rec.CurrentNumber)
	})
	t.Run("настройки из запроса check", func(t *testing.T) {
		rec := newSeries("org1", models.EntityTypeSalesOrder, &seriesapimodels.NumberSeriesData{
			EntityType:        models.EntityTypeSalesOrder,
			Prefix:            "ЗП-",
			Padding:           6,
			IncludeDate:       true,
			ResetOnDateChange: true,
		})
		require.Equal(t, "ЗП-", rec.Prefix)
		require.Equal(t, 6, rec.Padding)
		require.True(t, rec.IncludeDate)
		require.True(t, rec.ResetOnDateChange)
	})
	t.Run("нулевое дополнение заменяется check", func(t *testing.T) {
		rec := newSeries("org1", models.EntityTypeWorkOrder, &seriesapimodels.NumberSeriesData{
			EntityType: models.EntityTypeWorkOrder,
			Prefix:     "WO-",
		})
		require.Equal(t, 5, rec.Padding)
	})
}

func TestIsSerializationFailure(t *testing.T) {
	t.Run("повторяемые коды check", func(t *testing.T) {
		for _, code := range []string{pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected, pgerrcode.UniqueViolation} {
			err := errors.Wrap(&pgconn.PgError{Code: code}, "ошибка сохранения счетчика серии")
			require.True(t, isSerializationFailure(err))
		}
	})
	t.Run("прочие ошибки check", func(t *testing.T) {
		require.False(t, isSerializationFailure(errors.New("connection refused")))
		require.False(t, isSerializationFailure(&pgconn.PgError{Code: pgerrcode.NotNullViolation}))
	})
}
