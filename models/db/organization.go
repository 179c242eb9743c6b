package dbmodels

import (
	"fmt"
	"time"

	"erp-core-backend/models"

	"gorm.io/gorm"
)

type Organization struct {
	BaseModel
	Name             string `gorm:"type:varchar(255)"`
	OrganizationType string `gorm:"type:varchar(3)"`
	FullName         string `gorm:"type:varchar(255)"` // Юридическое название компании
	Inn              string `gorm:"type:varchar(12)"`  // ИНН
	Kpp              string `gorm:"type:varchar(9)"`   // КПП
	DirectorName     string `gorm:"type:varchar(255)"`
	IsActive         bool
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

type OrgUser struct {
	BaseModel
	OrganizationID string `gorm:"type:varchar(36);index"`
	Password       string `gorm:"type:varchar(128)"`
	FirstName      string `gorm:"type:varchar(150)"`
	LastName       string `gorm:"type:varchar(150)"`
	Email          string `gorm:"type:varchar(255)"`
	PhoneNumber    string `gorm:"type:varchar(15)"`
	IsActive       bool
	Role           models.UserRole `gorm:"type:varchar(50)"`
	LastLogin      time.Time
}

func (r OrgUser) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
