package database

import (
	"fmt"

	"aqari/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Owner{},
		&models.Tenant{},
		&models.Property{},
		&models.Unit{},
		&models.Appliance{},
		&models.LeaseContract{},
		&models.PaymentSchedule{},
		&models.Wallet{},
		&models.Transaction{},
		&models.Expense{},
		&models.Document{},
		&models.Reminder{},
		&models.PayoutVoucher{},
		&models.AppSettings{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
