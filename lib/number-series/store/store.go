package numberseriesstore

import (
	"erp-core-backend/models"
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	GetByEntityTypeForUpdate(organizationID string, entityType models.EntityType) (rec *dbmodels.NumberSeries, err error)
	GetByEntityType(organizationID string, entityType models.EntityType) (rec *dbmodels.NumberSeries, err error)
	Create(rec dbmodels.NumberSeries) (id string, err error)
	Update(organizationID, id string, updMap map[string]interface{}) error
	List(organizationID string) (list []dbmodels.NumberSeries, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// GetByEntityTypeForUpdate читает строку серии под блокировкой SELECT ... FOR UPDATE.
// Вызывать только внутри транзакции.
func (i impl) GetByEntityTypeForUpdate(organizationID string, entityType models.EntityType) (*dbmodels.NumberSeries, error) {
	rec := dbmodels.NumberSeries{}
	err := i.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("organization_id = ?", organizationID).
		Where("entity_type = ?", entityType).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByEntityType(organizationID string, entityType models.EntityType) (*dbmodels.NumberSeries, error) {
	rec := dbmodels.NumberSeries{}
	err := i.db.
		Where("organization_id = ?", organizationID).
		Where("entity_type = ?", entityType).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Create(rec dbmodels.NumberSeries) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(organizationID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.NumberSeries{}).
		Where("id = ?", id).
		Where("organization_id = ?", organizationID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("серия нумерации не найдена")
	}
	return nil
}

func (i impl) List(organizationID string) (list []dbmodels.NumberSeries, err error) {
	list = []dbmodels.NumberSeries{}
	err = i.db.
		Where("organization_id = ?", organizationID).
		Order("entity_type ASC").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
