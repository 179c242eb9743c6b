package dbmodels

type Warehouse struct {
	BaseOrgModel
	Name     string `gorm:"type:varchar(255)"`
	Code     string `gorm:"type:varchar(50)"`
	Address  string `gorm:"type:varchar(500)"`
	IsActive bool   `gorm:"default:true"`
}
