package middleware

import (
	"bytes"
	"io"
	"net/http"

	"aqari/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// maxAuditBody caps how much of a request body lands in the audit row;
// save-item payloads can carry whole collections.
const maxAuditBody = 2000

// Audit records mutating API calls. Logging must never interfere with the
// request, so write failures are ignored.
func Audit(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		c.Next()

		path := c.Request.URL.Path
		action := c.Request.Method + " " + path
		if len(bodyBytes) > 0 {
			body := string(bodyBytes)
			if len(body) > maxAuditBody {
				body = body[:maxAuditBody]
			}
			// login bodies carry credentials; keep them out of the trail
			if path != "/api/login" {
				action += " " + body
			}
		}

		entry := models.AuditLog{
			Method:    c.Request.Method,
			Path:      path,
			Action:    action,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		_ = db.Create(&entry).Error
	}
}
