package router

import (
	"os"
	"path/filepath"
	"strings"

	"aqari/internal/config"
	"aqari/internal/handler"
	"aqari/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine: the API surface plus the SPA
// static fallthrough.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := r.Group("/api")
	api.Use(middleware.Audit(db))

	authHandler := handler.NewAuthHandler(db)
	api.POST("/login", authHandler.Login)

	dataHandler := handler.NewDataHandler(db)
	api.GET("/load-data", dataHandler.LoadData)

	itemHandler := handler.NewItemHandler(db, cfg.Security.BcryptCost)
	api.POST("/save-item/:key", itemHandler.SaveItem)
	api.DELETE("/delete-item/:key/:id", itemHandler.DeleteItem)

	exportHandler := handler.NewExportHandler(db)
	api.GET("/export/statement.xlsx", exportHandler.StatementXLSX)
	api.GET("/export/statement.csv", exportHandler.StatementCSV)

	// everything else falls through to the built frontend, with index.html
	// for client-side routes
	staticDir := cfg.Static.Dir
	if staticDir == "" {
		staticDir = "./dist"
	}
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(404, gin.H{"error": "not found"})
			return
		}
		p := filepath.Join(staticDir, filepath.Clean(c.Request.URL.Path))
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			c.File(p)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	})

	return r
}
