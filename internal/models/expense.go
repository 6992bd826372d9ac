package models

// Expense is a cost booked against a property or one of its units.
type Expense struct {
	ID          string `gorm:"column:id;primaryKey" json:"id"`
	PropertyID  string `gorm:"column:propertyId;index" json:"propertyId"`
	UnitID      string `gorm:"column:unitId;index" json:"unitId"`
	Category    string `gorm:"column:category" json:"category"`
	Amount      string `gorm:"column:amount" json:"amount"`
	Date        string `gorm:"column:date" json:"date"`
	Description string `gorm:"column:description" json:"description"`
}

func (Expense) TableName() string { return "expenses" }
