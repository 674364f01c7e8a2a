package handler

import (
	"net/http"

	"Asamblea_Hub/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *service.AuthService
}

type LoginReq struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

type RefreshReq struct {
	RefreshToken string `form:"refresh_token" json:"refresh_token" binding:"required"`
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBind(&req); err != nil {
		invalidParams(c)
		return
	}

	user, pair, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err, "No se pudo iniciar sesión.")
		return
	}

	// el hash nunca viaja al cliente (json:"-" en el modelo)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
		"token":   pair,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(userID(c)); err != nil {
		fail(c, err, "No se pudo cerrar la sesión.")
		return
	}
	ok(c, "Sesión cerrada.")
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshReq
	if err := c.ShouldBind(&req); err != nil {
		invalidParams(c)
		return
	}

	pair, err := h.svc.Refresh(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid or expired refresh token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": pair})
}
