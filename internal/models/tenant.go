package models

// Tenant is a renter profile linked 1:1 to a User. The UI sends the natural
// identifier as "tenantId"; it persists as tenantIdNo (the sanitizer renames
// it on the way in).
type Tenant struct {
	ID          string `gorm:"column:id;primaryKey" json:"id"`
	TenantName  string `gorm:"column:tenantName" json:"tenantName"`
	TenantIdNo  string `gorm:"column:tenantIdNo;uniqueIndex" json:"tenantIdNo"`
	TenantPhone string `gorm:"column:tenantPhone" json:"tenantPhone"`
	Nationality string `gorm:"column:nationality" json:"nationality"`
	Email       string `gorm:"column:email" json:"email"`
	UserID      string `gorm:"column:userId;uniqueIndex" json:"userId"`

	Documents []Document `gorm:"foreignKey:TenantID" json:"documents"`
}

func (Tenant) TableName() string { return "tenants" }
