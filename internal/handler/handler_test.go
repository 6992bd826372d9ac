package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aqari/internal/config"
	"aqari/internal/database"
	"aqari/internal/models"
	"aqari/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.Seed(db, bcrypt.MinCost))

	cfg := &config.Config{}
	cfg.Server.Mode = gin.TestMode
	cfg.Security.BcryptCost = bcrypt.MinCost

	return router.SetupRouter(cfg, db), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestLoginEmailSuccess(t *testing.T) {
	r, _ := setupServer(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"loginMethod": "email",
		"identifier":  "admin@example.com",
		"password":    "password",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "user-admin", user["id"])
	assert.NotContains(t, user, "password")
}

func TestLoginEmailWrongPassword(t *testing.T) {
	r, _ := setupServer(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"loginMethod": "email",
		"identifier":  "admin@example.com",
		"password":    "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, body, "error")
}

func TestLoginNationalIDIgnoresPassword(t *testing.T) {
	r, _ := setupServer(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"loginMethod": "nationalId",
		"identifier":  "1000000001",
		"password":    "anything at all",
	})

	require.Equal(t, http.StatusOK, w.Code)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "user-owner-1", user["id"])
}

func TestLoginUnknownMethod(t *testing.T) {
	r, _ := setupServer(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"loginMethod": "carrier-pigeon",
		"identifier":  "x",
		"password":    "y",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveItemUnknownKey(t *testing.T) {
	r, _ := setupServer(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/save-item/bogus", []gin.H{{"id": "x"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body, "error")
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	r, _ := setupServer(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/save-item/tenants", []gin.H{{
		"id":         "tenant-2",
		"tenantName": "جديد",
		"tenantId":   "3000000001",
		"documents":  []gin.H{{"id": "doc-x"}},
	}})
	require.Equal(t, http.StatusOK, w.Code)

	w, data := doJSON(t, r, http.MethodGet, "/api/load-data", nil)
	require.Equal(t, http.StatusOK, w.Code)

	tenants := data["tenants"].([]interface{})
	var found map[string]interface{}
	for _, raw := range tenants {
		tn := raw.(map[string]interface{})
		if tn["id"] == "tenant-2" {
			found = tn
		}
	}
	require.NotNil(t, found, "saved tenant must come back on load")
	assert.Equal(t, "3000000001", found["tenantIdNo"])

	// users never carry the credential field
	users := data["users"].([]interface{})
	require.NotEmpty(t, users)
	for _, raw := range users {
		assert.NotContains(t, raw.(map[string]interface{}), "password")
	}

	// seeded contract arrives with its schedule embedded
	contracts := data["contracts"].([]interface{})
	require.Len(t, contracts, 1)
	schedule := contracts[0].(map[string]interface{})["paymentSchedule"].([]interface{})
	assert.Len(t, schedule, 1)
}

func TestSaveSettingsAndLoad(t *testing.T) {
	r, _ := setupServer(t)

	// before any save, defaults are reported
	w, data := doJSON(t, r, http.MethodGet, "/api/load-data", nil)
	require.Equal(t, http.StatusOK, w.Code)
	settings := data["settings"].(map[string]interface{})
	assert.Equal(t, "نظام عقاري", settings["appName"])

	w, _ = doJSON(t, r, http.MethodPost, "/api/save-item/settings", gin.H{
		"appName":    "عقاراتي",
		"isDemoMode": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	_, data = doJSON(t, r, http.MethodGet, "/api/load-data", nil)
	settings = data["settings"].(map[string]interface{})
	assert.Equal(t, "عقاراتي", settings["appName"])
	assert.Equal(t, true, settings["isDemoMode"])
}

func TestDeleteItem(t *testing.T) {
	r, db := setupServer(t)

	w, _ := doJSON(t, r, http.MethodDelete, "/api/delete-item/reminders/nope", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/delete-item/bogus/id", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.NoError(t, db.Create(&models.Reminder{ID: "rem-1", OwnerID: "owner-1"}).Error)
	w, body := doJSON(t, r, http.MethodDelete, "/api/delete-item/reminders/rem-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])

	var n int64
	require.NoError(t, db.Model(&models.Reminder{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestStatementExport(t *testing.T) {
	r, _ := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/export/statement.csv?ownerId=owner-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "برج النخيل")

	req = httptest.NewRequest(http.MethodGet, "/api/export/statement.csv?ownerId=ghost", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
