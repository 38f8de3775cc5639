package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"video-field/usecase"
)

// IAuthHandler defines the OAuth flow handlers
type IAuthHandler interface {
	GetAuthURL(ctx *gin.Context)
	HandleCallback(ctx *gin.Context)
	Status(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

// AuthHandler implements the OAuth flow endpoints
type AuthHandler struct {
	authUseCase usecase.IAuthUseCase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUseCase usecase.IAuthUseCase) IAuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

// GetAuthURL handles GET /auth/youtube
func (h *AuthHandler) GetAuthURL(ctx *gin.Context) {
	authURL, err := h.authUseCase.GetAuthorizationURL(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"auth_url": authURL,
	})
}

// HandleCallback handles GET /auth/youtube/callback
func (h *AuthHandler) HandleCallback(ctx *gin.Context) {
	// Provider-reported errors (user denied consent etc.) come back as
	// query parameters, not as a code.
	if errorParam := ctx.Query("error"); errorParam != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":       fmt.Sprintf("OAuth error: %s", errorParam),
			"description": ctx.Query("error_description"),
		})
		return
	}

	state := ctx.Query("state")
	code := ctx.Query("code")
	if state == "" || code == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":  "Missing state or code parameter",
			"action": "Visit /auth/youtube to start over",
		})
		return
	}

	if err := h.authUseCase.HandleCallback(ctx.Request.Context(), state, code); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "YouTube authorization complete. You can close this window.",
	})
}

// Status handles GET /api/youtube/oauth/status
func (h *AuthHandler) Status(ctx *gin.Context) {
	status, err := h.authUseCase.Status(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    status,
	})
}

// Logout handles POST /api/youtube/oauth/logout
func (h *AuthHandler) Logout(ctx *gin.Context) {
	if err := h.authUseCase.Logout(ctx.Request.Context()); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "YouTube credential removed",
	})
}
