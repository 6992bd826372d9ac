package demo

import (
	"testing"

	"aqari/internal/database"
	"aqari/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupReset(t *testing.T) *ResetService {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.Seed(db, bcrypt.MinCost))
	return NewResetService(db, 0, bcrypt.MinCost)
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

// dirty adds extra records of every wiped kind on top of the seeded graph.
func dirty(t *testing.T, db *gorm.DB) {
	require.NoError(t, db.Create(&models.User{ID: "u-extra", Email: "extra@x.y", Password: "x"}).Error)
	require.NoError(t, db.Create(&models.Property{ID: "p-extra", OwnerID: "owner-1"}).Error)
	require.NoError(t, db.Create(&models.Unit{ID: "un-extra", PropertyID: "p-extra"}).Error)
	require.NoError(t, db.Create(&models.Appliance{ID: "ap-extra", UnitID: "un-extra"}).Error)
	require.NoError(t, db.Create(&models.Transaction{ID: "tx-extra", WalletID: "wallet-system"}).Error)
	require.NoError(t, db.Create(&models.Expense{ID: "ex-extra", PropertyID: "p-extra"}).Error)
	require.NoError(t, db.Create(&models.Document{ID: "doc-extra", PropertyID: "p-extra"}).Error)
	require.NoError(t, db.Create(&models.Reminder{ID: "rem-extra", OwnerID: "owner-1"}).Error)
	require.NoError(t, db.Create(&models.PayoutVoucher{ID: "pv-extra", OwnerID: "owner-1"}).Error)
}

func TestResetRestoresCanonicalGraph(t *testing.T) {
	s := setupReset(t)
	dirty(t, s.DB)

	require.NoError(t, s.Reset())

	db := s.DB
	assert.Equal(t, int64(4), count(t, db, &models.User{}))
	assert.Equal(t, int64(4), count(t, db, &models.Wallet{}))
	assert.Equal(t, int64(1), count(t, db, &models.Owner{}))
	assert.Equal(t, int64(1), count(t, db, &models.Tenant{}))
	assert.Equal(t, int64(1), count(t, db, &models.Property{}))
	assert.Equal(t, int64(1), count(t, db, &models.Unit{}))
	assert.Equal(t, int64(1), count(t, db, &models.LeaseContract{}))
	assert.Equal(t, int64(1), count(t, db, &models.PaymentSchedule{}))
	assert.Zero(t, count(t, db, &models.Transaction{}))
	assert.Zero(t, count(t, db, &models.Expense{}))
	assert.Zero(t, count(t, db, &models.Document{}))
	assert.Zero(t, count(t, db, &models.Reminder{}))
	assert.Zero(t, count(t, db, &models.PayoutVoucher{}))
	assert.Zero(t, count(t, db, &models.Appliance{}))

	// no dangling references in the reseeded graph
	var unit models.Unit
	require.NoError(t, db.First(&unit).Error)
	assert.Equal(t, "prop-1", unit.PropertyID)
	var contract models.LeaseContract
	require.NoError(t, db.First(&contract).Error)
	assert.Equal(t, "prop-1", contract.PropertyID)
	assert.Equal(t, "unit-101", contract.UnitID)
	assert.Equal(t, "tenant-1", contract.TenantID)
	var schedule models.PaymentSchedule
	require.NoError(t, db.First(&schedule).Error)
	assert.Equal(t, contract.ID, schedule.ContractID)
}

func TestResetIfDemoSkipsWithoutFlag(t *testing.T) {
	s := setupReset(t)
	dirty(t, s.DB)

	// no settings row at all
	require.NoError(t, s.ResetIfDemo())
	assert.Equal(t, int64(5), count(t, s.DB, &models.User{}))

	// flag present but off
	require.NoError(t, s.DB.Create(&models.AppSettings{ID: models.SettingsID, IsDemoMode: false}).Error)
	require.NoError(t, s.ResetIfDemo())
	assert.Equal(t, int64(5), count(t, s.DB, &models.User{}))
}

func TestResetIfDemoRunsWithFlag(t *testing.T) {
	s := setupReset(t)
	dirty(t, s.DB)
	require.NoError(t, s.DB.Create(&models.AppSettings{ID: models.SettingsID, IsDemoMode: true}).Error)

	require.NoError(t, s.ResetIfDemo())

	assert.Equal(t, int64(4), count(t, s.DB, &models.User{}))
	// the settings row itself is configuration, not demo data
	assert.Equal(t, int64(1), count(t, s.DB, &models.AppSettings{}))
}
