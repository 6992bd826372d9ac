package database

import (
	"errors"
	"fmt"
	"log"
	"time"

	"aqari/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed makes sure the canonical demo graph exists: the four core users with
// known passwords, their wallets, one owner and tenant profile, and one
// property / unit / contract with a single payment-schedule row. It is
// idempotent and safe to call on every startup and after every demo reset.
func Seed(db *gorm.DB, bcryptCost int) error {
	if bcryptCost <= 0 {
		bcryptCost = 10
	}

	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}
	hashedSys, err := bcrypt.GenerateFromPassword([]byte("sys"), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash system password: %w", err)
	}

	// Core users are force-upserted so their passwords are always in a known
	// hashed state, even when a previous run left stale rows behind.
	users := []models.User{
		{ID: "user-system", Name: "System", Email: "system@app.com", Password: string(hashedSys), Role: models.RoleSystem, Status: "active"},
		{ID: "user-admin", Name: "المدير العام", Email: "admin@example.com", Password: string(hashed), Role: models.RoleAdmin, Status: "active"},
		{ID: "user-owner-1", Name: "صالح المحمد", Email: "saleh.m@example.com", Password: string(hashed), Role: models.RoleLandlord, Status: "active"},
		{ID: "user-tenant-1", Name: "محمد علي", Email: "mohamed.ali@example.com", Password: string(hashed), Role: models.RoleTenant, Status: "active"},
	}
	for _, u := range users {
		var existing models.User
		err := db.Where("id = ?", u.ID).First(&existing).Error
		switch {
		case err == nil:
			if err := db.Model(&existing).Update("password", u.Password).Error; err != nil {
				return fmt.Errorf("sync user %s: %w", u.ID, err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := db.Create(&u).Error; err != nil {
				return fmt.Errorf("create user %s: %w", u.ID, err)
			}
		default:
			return fmt.Errorf("lookup user %s: %w", u.ID, err)
		}
	}

	// Wallets only on a fresh database; edited balances must survive restarts.
	if userCount == 0 {
		wallets := []models.Wallet{
			{ID: "wallet-system", UserID: "user-system", OwnerType: "system", Balance: 1000000},
			{ID: "wallet-user-admin", UserID: "user-admin", OwnerType: "user", Balance: 5000},
			{ID: "wallet-user-owner-1", UserID: "user-owner-1", OwnerType: "user", Balance: 1000},
			{ID: "wallet-user-tenant-1", UserID: "user-tenant-1", OwnerType: "user", Balance: 25000},
		}
		for _, w := range wallets {
			if err := firstOrCreate(db, &models.Wallet{}, w.ID, &w); err != nil {
				return fmt.Errorf("seed wallet %s: %w", w.ID, err)
			}
		}
		log.Println("seed: wallets created")
	}

	if err := seedOwnerProfile(db); err != nil {
		return err
	}
	if err := seedTenantProfile(db); err != nil {
		return err
	}
	return seedPropertyGraph(db)
}

func seedOwnerProfile(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.User{}).Where("id = ?", "user-owner-1").Count(&n).Error; err != nil {
		return fmt.Errorf("check owner user: %w", err)
	}
	if n == 0 {
		return nil
	}
	if err := db.Model(&models.Owner{}).Where("userId = ?", "user-owner-1").Count(&n).Error; err != nil {
		return fmt.Errorf("check owner profile: %w", err)
	}
	if n > 0 {
		return nil
	}

	owner := models.Owner{
		ID:                        "owner-1",
		Name:                      "صالح المحمد",
		NationalID:                "1000000001",
		Phone:                     "0500000001",
		Email:                     "saleh.m@example.com",
		ManagementFeeType:         "percentage",
		ManagementFeeValue:        "5",
		ManagementAgreementStatus: "active",
		UserID:                    "user-owner-1",
	}
	if err := db.Create(&owner).Error; err != nil {
		return fmt.Errorf("seed owner profile: %w", err)
	}
	return nil
}

func seedTenantProfile(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.User{}).Where("id = ?", "user-tenant-1").Count(&n).Error; err != nil {
		return fmt.Errorf("check tenant user: %w", err)
	}
	if n == 0 {
		return nil
	}
	if err := db.Model(&models.Tenant{}).Where("userId = ?", "user-tenant-1").Count(&n).Error; err != nil {
		return fmt.Errorf("check tenant profile: %w", err)
	}
	if n > 0 {
		return nil
	}

	tenant := models.Tenant{
		ID:          "tenant-1",
		TenantName:  "محمد علي",
		TenantIdNo:  "2000000001",
		TenantPhone: "0500000002",
		Nationality: "سعودي",
		Email:       "mohamed.ali@example.com",
		UserID:      "user-tenant-1",
	}
	if err := db.Create(&tenant).Error; err != nil {
		return fmt.Errorf("seed tenant profile: %w", err)
	}
	return nil
}

// seedPropertyGraph creates the property, its unit and an active contract
// with one schedule row, but only when the seeded owner owns nothing yet.
func seedPropertyGraph(db *gorm.DB) error {
	var owner models.Owner
	if err := db.Where("id = ?", "owner-1").First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("lookup owner: %w", err)
	}

	var propCount int64
	if err := db.Model(&models.Property{}).Where("ownerId = ?", owner.ID).Count(&propCount).Error; err != nil {
		return fmt.Errorf("count properties: %w", err)
	}
	if propCount > 0 {
		return nil
	}

	prop := models.Property{
		ID:              "prop-1",
		PropertyName:    "برج النخيل",
		PropertyType:    "عمارة سكنية",
		PropertyAddress: "حي العليا، الرياض",
		OwnerID:         owner.ID,
		OwnerName:       owner.Name,
		OwnerPhone:      owner.Phone,
	}
	if err := db.Create(&prop).Error; err != nil {
		return fmt.Errorf("seed property: %w", err)
	}

	unit := models.Unit{
		ID:         "unit-101",
		PropertyID: prop.ID,
		UnitNumber: "101",
		UnitType:   "شقة سكنية",
		Status:     "مؤجرة",
		RentAmount: "50000",
		Area:       "120",
		Rooms:      "3",
		Bathrooms:  "2",
		Floor:      "1",
	}
	if err := db.Create(&unit).Error; err != nil {
		return fmt.Errorf("seed unit: %w", err)
	}

	var tenant models.Tenant
	if err := db.Where("id = ?", "tenant-1").First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("lookup tenant: %w", err)
	}

	today := time.Now().Format("2006-01-02")
	contract := models.LeaseContract{
		ID:               "contract-1",
		PropertyID:       prop.ID,
		PropertyAddress:  prop.PropertyAddress,
		UnitID:           unit.ID,
		TenantID:         tenant.ID,
		TenantName:       tenant.TenantName,
		TenantNationalID: tenant.TenantIdNo,
		TenantPhone:      tenant.TenantPhone,
		LandlordName:     owner.Name,
		LandlordID:       owner.NationalID,
		LandlordPhone:    owner.Phone,
		RepresentedBy:    "landlord",
		StartDate:        today,
		EndDate:          time.Now().AddDate(1, 0, 0).Format("2006-01-02"),
		RentAmount:       unit.RentAmount,
		RentCycle:        "annually",
		SecurityDeposit:  "2000",
		LeasePurpose:     "سكني",
		Terms:            "شروط العقد القياسية.",
		ContractStatus:   "active",
		ApprovalStatus:   "approved",
	}
	if err := db.Create(&contract).Error; err != nil {
		return fmt.Errorf("seed contract: %w", err)
	}

	schedule := models.PaymentSchedule{
		ID:         uuid.NewString(),
		ContractID: contract.ID,
		DueDate:    today,
		Amount:     unit.RentAmount,
	}
	if err := db.Create(&schedule).Error; err != nil {
		return fmt.Errorf("seed payment schedule: %w", err)
	}
	return nil
}

func firstOrCreate(db *gorm.DB, model interface{}, id string, value interface{}) error {
	var n int64
	if err := db.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return db.Create(value).Error
}
