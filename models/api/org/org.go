package orgapimodels

import (
	dbmodels "erp-core-backend/models/db"

	"github.com/pkg/errors"
)

type CreateOrgData struct {
	Name             string `json:"name"`
	OrganizationType string `json:"organization_type"`
	FullName         string `json:"full_name"`
	Inn              string `json:"inn"`
	Kpp              string `json:"kpp"`
	DirectorName     string `json:"director_name"`
	AdminEmail       string `json:"admin_email"`
	AdminPassword    string `json:"admin_password"`
	AdminFirstName   string `json:"admin_first_name"`
	AdminLastName    string `json:"admin_last_name"`
}

func (r CreateOrgData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано наименование организации")
	}
	if r.AdminEmail == "" {
		return errors.New("не указана почта администратора")
	}
	if len(r.AdminPassword) < 8 {
		return errors.New("пароль администратора должен быть не короче 8 символов")
	}
	return nil
}

type OrgView struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	OrganizationType string `json:"organization_type,omitempty"`
	FullName         string `json:"full_name,omitempty"`
	Inn              string `json:"inn,omitempty"`
	Kpp              string `json:"kpp,omitempty"`
	DirectorName     string `json:"director_name,omitempty"`
	IsActive         bool   `json:"is_active"`
}

func OrgConvert(rec dbmodels.Organization) OrgView {
	return OrgView{
		ID:               rec.ID,
		Name:             rec.Name,
		OrganizationType: rec.OrganizationType,
		FullName:         rec.FullName,
		Inn:              rec.Inn,
		Kpp:              rec.Kpp,
		DirectorName:     rec.DirectorName,
		IsActive:         rec.IsActive,
	}
}

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginData) Validate() error {
	if r.Email == "" {
		return errors.New("не указана почта")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type TokenView struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type OrgUserView struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
}

func OrgUserConvert(rec dbmodels.OrgUser) OrgUserView {
	return OrgUserView{
		ID:        rec.ID,
		Email:     rec.Email,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Role:      rec.Role.ToHuman(),
		IsActive:  rec.IsActive,
	}
}
