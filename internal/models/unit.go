package models

// Unit belongs to exactly one Property. Numeric-looking fields stay text:
// the clients edit and submit them as strings.
type Unit struct {
	ID         string `gorm:"column:id;primaryKey" json:"id"`
	PropertyID string `gorm:"column:propertyId;index" json:"propertyId"`
	UnitNumber string `gorm:"column:unitNumber" json:"unitNumber"`
	UnitType   string `gorm:"column:unitType" json:"unitType"`
	Status     string `gorm:"column:status" json:"status"`
	RentAmount string `gorm:"column:rentAmount" json:"rentAmount"`
	Area       string `gorm:"column:area" json:"area"`
	Rooms      string `gorm:"column:rooms" json:"rooms"`
	Bathrooms  string `gorm:"column:bathrooms" json:"bathrooms"`
	Floor      string `gorm:"column:floor" json:"floor"`

	Appliances []Appliance `gorm:"foreignKey:UnitID" json:"appliances"`
}

func (Unit) TableName() string { return "units" }

// Appliance is a read-only inventory record attached to a Unit.
type Appliance struct {
	ID        string `gorm:"column:id;primaryKey" json:"id"`
	UnitID    string `gorm:"column:unitId;index" json:"unitId"`
	Name      string `gorm:"column:name" json:"name"`
	Condition string `gorm:"column:condition" json:"condition"`
}

func (Appliance) TableName() string { return "appliances" }
