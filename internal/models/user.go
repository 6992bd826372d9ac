package models

// Role values accepted in User.Role.
const (
	RoleSystem   = "system"
	RoleAdmin    = "admin"
	RoleLandlord = "landlord"
	RoleTenant   = "tenant"
)

// User represents a login identity. Column names are camelCase because the
// database file is inherited from the previous deployment of this system.
// The password hash is never serialized to clients.
type User struct {
	ID       string `gorm:"column:id;primaryKey" json:"id"`
	Name     string `gorm:"column:name" json:"name"`
	Email    string `gorm:"column:email;uniqueIndex" json:"email"`
	Password string `gorm:"column:password" json:"-"`
	Role     string `gorm:"column:role" json:"role"`
	Status   string `gorm:"column:status" json:"status"`
}

func (User) TableName() string { return "users" }
