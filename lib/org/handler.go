package orghandler

import (
	"erp-core-backend/db"
	numberseriesstore "erp-core-backend/lib/number-series/store"
	orgstore "erp-core-backend/lib/org/store"
	orgusersstore "erp-core-backend/lib/org/users/store"
	authutils "erp-core-backend/lib/utils/auth-utils"
	"erp-core-backend/models"
	orgapimodels "erp-core-backend/models/api/org"
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	// Create выполняет онбординг: организация, администратор и серии нумерации по умолчанию
	Create(data orgapimodels.CreateOrgData) (id string, err error)
	GetByID(id string) (view orgapimodels.OrgView, err error)
	Delete(id string) error
	Login(data orgapimodels.LoginData) (view orgapimodels.TokenView, err error)
	ListUsers(organizationID string) (list []orgapimodels.OrgUserView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      orgstore.NewInstance(db.DB),
		usersStore: orgusersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store      orgstore.Provider
	usersStore orgusersstore.Provider
}

func (i impl) Create(data orgapimodels.CreateOrgData) (id string, err error) {
	existing, err := i.usersStore.GetByEmail(data.AdminEmail)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", errors.New("пользователь с такой почтой уже зарегистрирован")
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := orgstore.NewInstance(tx)
		usersStore := orgusersstore.NewInstance(tx)
		seriesStore := numberseriesstore.NewInstance(tx)
		rec := dbmodels.Organization{
			Name:             data.Name,
			OrganizationType: data.OrganizationType,
			FullName:         data.FullName,
			Inn:              data.Inn,
			Kpp:              data.Kpp,
			DirectorName:     data.DirectorName,
			IsActive:         true,
		}
		id, err = store.Create(rec)
		if err != nil {
			return errors.Wrap(err, "ошибка создания организации")
		}
		admin := dbmodels.OrgUser{
			OrganizationID: id,
			Email:          data.AdminEmail,
			Password:       authutils.GetMD5Hash(data.AdminPassword),
			FirstName:      data.AdminFirstName,
			LastName:       data.AdminLastName,
			IsActive:       true,
			Role:           models.OrgAdminRole,
		}
		_, err = usersStore.Create(admin)
		if err != nil {
			return errors.Wrap(err, "ошибка создания администратора организации")
		}
		for entityType, prefix := range map[models.EntityType]string{
			models.EntityTypePurchaseOrder: "PO-",
			models.EntityTypeSalesOrder:    "SO-",
			models.EntityTypeWorkOrder:     "WO-",
			models.EntityTypeGoodsReceipt:  "GRN-",
		} {
			_, err = seriesStore.Create(dbmodels.NumberSeries{
				OrganizationID: id,
				EntityType:     entityType,
				Prefix:         prefix,
				Padding:        5,
			})
			if err != nil {
				return errors.Wrapf(err, "ошибка создания серии нумерации %v", entityType)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	log.
		WithField("organization_id", id).
		Info("создана организация")
	return id, nil
}

func (i impl) GetByID(id string) (orgapimodels.OrgView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return orgapimodels.OrgView{}, err
	}
	if rec == nil {
		return orgapimodels.OrgView{}, errors.New("организация не найдена")
	}
	return orgapimodels.OrgConvert(*rec), nil
}

func (i impl) Delete(id string) error {
	logger := log.WithField("organization_id", id)
	err := i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("ошибка удаления организации")
		return err
	}
	logger.Info("организация помечена удаленной")
	return nil
}

func (i impl) Login(data orgapimodels.LoginData) (orgapimodels.TokenView, error) {
	user, err := i.usersStore.GetByEmail(data.Email)
	if err != nil {
		return orgapimodels.TokenView{}, err
	}
	if user == nil || !user.IsActive {
		return orgapimodels.TokenView{}, errors.New("пользователь не найден")
	}
	if authutils.GetMD5Hash(data.Password) != user.Password {
		return orgapimodels.TokenView{}, errors.New("неверный пароль")
	}
	token, err := authutils.GetToken(user.ID, user.GetFullName(), user.OrganizationID, user.Role.IsOrgAdmin(), user.Role)
	if err != nil {
		return orgapimodels.TokenView{}, err
	}
	refresh, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		return orgapimodels.TokenView{}, err
	}
	return orgapimodels.TokenView{
		AccessToken:  token,
		RefreshToken: refresh,
	}, nil
}

func (i impl) ListUsers(organizationID string) ([]orgapimodels.OrgUserView, error) {
	recList, err := i.usersStore.List(organizationID)
	if err != nil {
		return nil, err
	}
	result := make([]orgapimodels.OrgUserView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, orgapimodels.OrgUserConvert(rec))
	}
	return result, nil
}
