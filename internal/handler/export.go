package handler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"aqari/internal/models"
	"aqari/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler renders an owner statement: every payment-schedule row of
// every contract on the owner's properties.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

var statementHeaders = []string{"العقار", "الوحدة", "المستأجر", "تاريخ الاستحقاق", "المبلغ", "حالة العقد"}

type statementRow struct {
	Property string
	Unit     string
	Tenant   string
	DueDate  string
	Amount   string
	Status   string
}

// statementRows collects the owner's schedule rows, contract by contract.
func (h *ExportHandler) statementRows(ownerID string) ([]statementRow, error) {
	var owner models.Owner
	if err := h.DB.Where("id = ?", ownerID).First(&owner).Error; err != nil {
		return nil, err
	}

	var properties []models.Property
	if err := h.DB.Where("ownerId = ?", owner.ID).Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("load properties: %w", err)
	}

	rows := make([]statementRow, 0)
	for _, p := range properties {
		var contracts []models.LeaseContract
		if err := h.DB.Preload("PaymentSchedule").Where("propertyId = ?", p.ID).Find(&contracts).Error; err != nil {
			return nil, fmt.Errorf("load contracts: %w", err)
		}
		for _, ct := range contracts {
			unitLabel := ct.UnitID
			var unit models.Unit
			if err := h.DB.Where("id = ?", ct.UnitID).First(&unit).Error; err == nil {
				unitLabel = unit.UnitNumber
			}
			for _, ps := range ct.PaymentSchedule {
				rows = append(rows, statementRow{
					Property: p.PropertyName,
					Unit:     unitLabel,
					Tenant:   ct.TenantName,
					DueDate:  ps.DueDate,
					Amount:   ps.Amount,
					Status:   ct.ContractStatus,
				})
			}
		}
	}
	return rows, nil
}

// sheetTitle uses the configured statement template name so deployments can
// label their exports.
func (h *ExportHandler) sheetTitle() string {
	var settings models.AppSettings
	if err := h.DB.Where("id = ?", models.SettingsID).First(&settings).Error; err == nil && settings.StatementTemplate != "" {
		return settings.StatementTemplate
	}
	return "default"
}

// StatementXLSX exports the owner statement as a spreadsheet.
func (h *ExportHandler) StatementXLSX(c *gin.Context) {
	ownerID := c.Query("ownerId")
	rows, err := h.statementRows(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Fail(c, http.StatusBadRequest, "Invalid ownerId")
			return
		}
		log.Printf("export statement: %v", err)
		util.Fail(c, http.StatusInternalServerError, "Failed to export statement")
		return
	}

	f := excelize.NewFile()
	sheetName := h.sheetTitle()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "Failed to export statement")
		return
	}
	f.SetActiveSheet(index)

	for i, head := range statementHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, head)
	}

	for idx, r := range rows {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.Property)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Unit)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.Tenant)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.DueDate)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.Status)
	}

	f.SetColWidth(sheetName, "A", "A", 25)
	f.SetColWidth(sheetName, "B", "B", 10)
	f.SetColWidth(sheetName, "C", "C", 20)
	f.SetColWidth(sheetName, "D", "E", 15)
	f.SetColWidth(sheetName, "F", "F", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"statement_%s_%s.xlsx\"",
		ownerID, time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Fail(c, http.StatusInternalServerError, "Failed to export statement")
	}
}

// StatementCSV exports the same rows as CSV.
func (h *ExportHandler) StatementCSV(c *gin.Context) {
	ownerID := c.Query("ownerId")
	rows, err := h.statementRows(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Fail(c, http.StatusBadRequest, "Invalid ownerId")
			return
		}
		log.Printf("export statement: %v", err)
		util.Fail(c, http.StatusInternalServerError, "Failed to export statement")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"statement_%s_%s.csv\"",
		ownerID, time.Now().Format("20060102")))

	// UTF-8 BOM so spreadsheet tools detect the Arabic text
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(statementHeaders)
	for _, r := range rows {
		writer.Write([]string{r.Property, r.Unit, r.Tenant, r.DueDate, r.Amount, r.Status})
	}
}
