package models

// Property is owned by exactly one Owner. Owner name/phone are denormalized
// copies kept by the client.
type Property struct {
	ID              string `gorm:"column:id;primaryKey" json:"id"`
	PropertyName    string `gorm:"column:propertyName" json:"propertyName"`
	PropertyType    string `gorm:"column:propertyType" json:"propertyType"`
	PropertyAddress string `gorm:"column:propertyAddress" json:"propertyAddress"`
	OwnerID         string `gorm:"column:ownerId;index" json:"ownerId"`
	OwnerName       string `gorm:"column:ownerName" json:"ownerName"`
	OwnerPhone      string `gorm:"column:ownerPhone" json:"ownerPhone"`

	Units     []Unit     `gorm:"foreignKey:PropertyID" json:"units"`
	Documents []Document `gorm:"foreignKey:PropertyID" json:"documents"`
}

func (Property) TableName() string { return "properties" }
