package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aminbn12/planiunv/internal/api/middleware"
	"github.com/aminbn12/planiunv/internal/dto"
	"github.com/aminbn12/planiunv/internal/service"
	"github.com/aminbn12/planiunv/pkg/jwt"
	"github.com/aminbn12/planiunv/pkg/response"
)

// AuthHandler serves login, logout and the current-user endpoint.
type AuthHandler struct {
	svc *service.AuthService
}

// NewAuthHandler creates the AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "Identifiants incorrects")
			return
		}
		response.InternalError(c, "Erreur interne du serveur")
		return
	}

	response.OK(c, resp)
}

// Logout POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	v, ok := c.Get(middleware.CtxClaims)
	if !ok {
		response.Unauthorized(c, "Non authentifié")
		return
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, "Non authentifié")
		return
	}

	if err := h.svc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c, "Erreur interne du serveur")
		return
	}

	response.Message(c, "Déconnexion réussie")
}

// Me GET /api/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.svc.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Unauthorized(c, "Non authentifié")
			return
		}
		response.InternalError(c, "Erreur interne du serveur")
		return
	}

	response.OK(c, user)
}
