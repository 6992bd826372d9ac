package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"aqari/internal/store"
	"aqari/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ItemHandler serves the batch save and delete endpoints.
type ItemHandler struct {
	Syncer *store.Syncer
}

func NewItemHandler(db *gorm.DB, bcryptCost int) *ItemHandler {
	return &ItemHandler{Syncer: store.NewSyncer(db, bcryptCost)}
}

// SaveItem accepts a whole collection (or the settings singleton) and
// replays it against the store in one transaction.
func (h *ItemHandler) SaveItem(c *gin.Context) {
	key := c.Param("key")

	// settings is a single object keyed by the fixed singleton id
	if key == "settings" {
		var rec map[string]interface{}
		if err := c.ShouldBindJSON(&rec); err != nil {
			util.Fail(c, http.StatusBadRequest, "Invalid payload")
			return
		}
		if err := h.Syncer.SaveSettings(rec); err != nil {
			log.Printf("save settings: %v", err)
			util.Fail(c, http.StatusInternalServerError, "Failed to save settings")
			return
		}
		util.OK(c, gin.H{"success": true})
		return
	}

	if _, ok := store.Resolve(key); !ok {
		util.Fail(c, http.StatusBadRequest, "Invalid key")
		return
	}

	var items []map[string]interface{}
	if err := c.ShouldBindJSON(&items); err != nil {
		util.Fail(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	if err := h.Syncer.SaveCollection(key, items); err != nil {
		if errors.Is(err, store.ErrUnknownKey) {
			util.Fail(c, http.StatusBadRequest, "Invalid key")
			return
		}
		// item-level cause stays in the server log only
		log.Printf("save %s: %v", key, err)
		util.Fail(c, http.StatusInternalServerError, fmt.Sprintf("Failed to save %s", key))
		return
	}

	util.OK(c, gin.H{"success": true})
}

// DeleteItem removes one entity by id. A miss surfaces as a generic failure,
// matching what the clients already tolerate.
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	key := c.Param("key")
	id := c.Param("id")

	if err := h.Syncer.Delete(key, id); err != nil {
		if errors.Is(err, store.ErrUnknownKey) {
			util.Fail(c, http.StatusBadRequest, "Invalid key")
			return
		}
		log.Printf("delete %s/%s: %v", key, id, err)
		util.Fail(c, http.StatusInternalServerError, "Failed to delete item")
		return
	}

	util.OK(c, gin.H{"success": true})
}
