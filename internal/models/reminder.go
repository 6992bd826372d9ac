package models

// Reminder is a dated note addressed to an owner.
type Reminder struct {
	ID      string `gorm:"column:id;primaryKey" json:"id"`
	OwnerID string `gorm:"column:ownerId;index" json:"ownerId"`
	Title   string `gorm:"column:title" json:"title"`
	DueDate string `gorm:"column:dueDate" json:"dueDate"`
	Status  string `gorm:"column:status" json:"status"`
	Notes   string `gorm:"column:notes" json:"notes"`
}

func (Reminder) TableName() string { return "reminders" }

// PayoutVoucher records a disbursement to an owner.
type PayoutVoucher struct {
	ID          string `gorm:"column:id;primaryKey" json:"id"`
	OwnerID     string `gorm:"column:ownerId;index" json:"ownerId"`
	Amount      string `gorm:"column:amount" json:"amount"`
	Date        string `gorm:"column:date" json:"date"`
	Status      string `gorm:"column:status" json:"status"`
	Description string `gorm:"column:description" json:"description"`
}

func (PayoutVoucher) TableName() string { return "payoutVouchers" }
