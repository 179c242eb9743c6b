package orgusersstore

import (
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.OrgUser) (id string, err error)
	GetByID(id string) (rec *dbmodels.OrgUser, err error)
	GetByEmail(email string) (rec *dbmodels.OrgUser, err error)
	List(organizationID string) (list []dbmodels.OrgUser, err error)
	Update(organizationID, id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.OrgUser) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.OrgUser, error) {
	rec := dbmodels.OrgUser{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) GetByEmail(email string) (*dbmodels.OrgUser, error) {
	rec := dbmodels.OrgUser{}
	err := i.db.
		Where("email = ?", email).
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

func (i impl) List(organizationID string) (list []dbmodels.OrgUser, err error) {
	list = []dbmodels.OrgUser{}
	err = i.db.
		Where("organization_id = ?", organizationID).
		Order("created_at ASC").
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

func (i impl) Update(organizationID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.OrgUser{}).
		Where("id = ?", id).
		Where("organization_id = ?", organizationID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}
