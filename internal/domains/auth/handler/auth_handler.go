package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/auth"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/response"
	"github.com/chrisakin/Katherine-Akintade-Website/pkg/logger"
)

type AuthHandler struct {
	service auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login - POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		status := auth.GetHTTPStatusCode(err)
		if status == http.StatusInternalServerError {
			logger.Error("login failed", err)
			response.InternalServerError(c, "Failed to log in. Please try again.")
			return
		}
		response.ErrorResponse(c, status, "UNAUTHORIZED", auth.ErrInvalidCredentials.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Logout - POST /auth/logout
// Always succeeds from the caller's perspective.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := bearerToken(c); token != "" {
		h.service.Logout(c.Request.Context(), token)
	}
	response.Success(c, http.StatusOK, gin.H{"logged_out": true})
}

// Refresh - POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		response.Unauthorized(c, "missing session token")
		return
	}

	sess, err := h.service.Refresh(c.Request.Context(), token)
	if err != nil {
		response.Unauthorized(c, auth.ErrSessionExpired.Error())
		return
	}

	response.Success(c, http.StatusOK, sess)
}

// Me - GET /admin/profile
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	user, profile, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		logger.Error("profile fetch failed", err)
		response.InternalServerError(c, "Failed to load profile. Please try again.")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user, "profile": profile})
}

// ChangePassword - PUT /admin/profile/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	var req auth.ChangePasswordRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), userID, req); err != nil {
		status := auth.GetHTTPStatusCode(err)
		if status == http.StatusInternalServerError {
			logger.Error("password change failed", err)
			response.InternalServerError(c, "Failed to update password. Please try again.")
			return
		}
		response.ErrorResponse(c, status, "BAD_REQUEST", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

func bearerToken(c *gin.Context) string {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
