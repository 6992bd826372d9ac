package handler

import (
	"errors"
	"log"
	"net/http"

	"aqari/internal/auth"
	"aqari/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthHandler serves the login endpoint.
type AuthHandler struct {
	Resolver *auth.Resolver
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{Resolver: &auth.Resolver{DB: db}}
}

type loginReq struct {
	LoginMethod string `json:"loginMethod"`
	Identifier  string `json:"identifier"`
	Password    string `json:"password"`
}

// Login resolves the attempt and returns the sanitized user. Error messages
// are the Arabic texts the clients already display.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Fail(c, http.StatusBadRequest, "طريقة الدخول غير صحيحة")
		return
	}

	user, err := h.Resolver.Login(req.LoginMethod, req.Identifier, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrBadMethod):
			util.Fail(c, http.StatusBadRequest, "طريقة الدخول غير صحيحة")
		case errors.Is(err, auth.ErrBadCredentials):
			util.Fail(c, http.StatusUnauthorized, "بيانات الدخول غير صحيحة")
		case errors.Is(err, auth.ErrBadPassword):
			util.Fail(c, http.StatusUnauthorized, "كلمة المرور غير صحيحة")
		case errors.Is(err, auth.ErrIDNotRegistered):
			util.Fail(c, http.StatusUnauthorized, "رقم الهوية غير مسجل في النظام")
		default:
			log.Printf("login error: %v", err)
			util.Fail(c, http.StatusInternalServerError, "فشل تسجيل الدخول")
		}
		return
	}

	util.OK(c, gin.H{"success": true, "user": user})
}
