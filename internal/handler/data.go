package handler

import (
	"errors"
	"log"
	"net/http"

	"aqari/internal/models"
	"aqari/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DataHandler serves the bulk load endpoint. Clients fetch everything once,
// edit locally and push collections back through save-item.
type DataHandler struct {
	DB *gorm.DB
}

func NewDataHandler(db *gorm.DB) *DataHandler {
	return &DataHandler{DB: db}
}

// LoadData returns every collection with its declared relations eagerly
// included. Users are serialized without the password hash (json:"-").
func (h *DataHandler) LoadData(c *gin.Context) {
	properties := make([]models.Property, 0)
	units := make([]models.Unit, 0)
	tenants := make([]models.Tenant, 0)
	owners := make([]models.Owner, 0)
	contracts := make([]models.LeaseContract, 0)
	transactions := make([]models.Transaction, 0)
	expenses := make([]models.Expense, 0)
	wallets := make([]models.Wallet, 0)
	users := make([]models.User, 0)
	reminders := make([]models.Reminder, 0)
	payoutVouchers := make([]models.PayoutVoucher, 0)

	queries := []error{
		h.DB.Preload("Units").Preload("Documents").Find(&properties).Error,
		h.DB.Preload("Appliances").Find(&units).Error,
		h.DB.Preload("Documents").Find(&tenants).Error,
		h.DB.Preload("Properties").Find(&owners).Error,
		h.DB.Preload("PaymentSchedule").Preload("Documents").Find(&contracts).Error,
		h.DB.Find(&transactions).Error,
		h.DB.Find(&expenses).Error,
		h.DB.Find(&wallets).Error,
		h.DB.Find(&users).Error,
		h.DB.Find(&reminders).Error,
		h.DB.Find(&payoutVouchers).Error,
	}
	for _, err := range queries {
		if err != nil {
			log.Printf("load-data: %v", err)
			util.Fail(c, http.StatusInternalServerError, "Failed to load data")
			return
		}
	}

	var settings models.AppSettings
	if err := h.DB.Where("id = ?", models.SettingsID).First(&settings).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("load-data: settings: %v", err)
			util.Fail(c, http.StatusInternalServerError, "Failed to load data")
			return
		}
		settings = models.DefaultSettings()
	}

	util.OK(c, gin.H{
		"properties":     properties,
		"units":          units,
		"tenants":        tenants,
		"owners":         owners,
		"contracts":      contracts,
		"transactions":   transactions,
		"expenses":       expenses,
		"wallets":        wallets,
		"users":          users,
		"reminders":      reminders,
		"payoutVouchers": payoutVouchers,
		"settings":       settings,
	})
}
