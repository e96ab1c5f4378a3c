package handlers

import (
	"errors"
	"net/http"

	"github.com/asegedech/volunteer-api/internal/constants"
	apierrors "github.com/asegedech/volunteer-api/internal/errors"
	"github.com/asegedech/volunteer-api/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login authenticates an admin and initializes the session. Missing or wrong
// credentials are both reported as 401; only a malformed body is a 400.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	admin, err := h.authService.Login(services.LoginInput{
		Identifier: req.Email,
		Password:   req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.InvalidCredentials(c, "")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyAdminID, admin.ID)
	session.Set(constants.ContextKeyAdminEmail, admin.Email)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"email": admin.Email,
	})
}

// Logout removes the session unconditionally. Idempotent.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me reports the current session identity. An anonymous caller gets a 200
// with ok:false rather than a 401.
func (h *AuthHandler) Me(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get(constants.ContextKeyAdminID) == nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"email": session.Get(constants.ContextKeyAdminEmail),
	})
}
