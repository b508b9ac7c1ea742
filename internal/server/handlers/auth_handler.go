package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akilima/akilima/internal/domain/models"
	"github.com/akilima/akilima/internal/repository/mongodb"
	authsvc "github.com/akilima/akilima/internal/service/auth"
)

// userContextKey is where the auth middleware stores the resolved account.
const userContextKey = "currentUser"

// CurrentUser returns the account resolved by the auth middleware, reporting
// whether one was attached.
func CurrentUser(c *gin.Context) (models.User, bool) {
	if val, ok := c.Get(userContextKey); ok {
		if user, ok := val.(models.User); ok {
			return user, true
		}
	}
	return models.User{}, false
}

// currentUser is CurrentUser for routes that always sit behind the auth
// middleware.
func currentUser(c *gin.Context) models.User {
	user, _ := CurrentUser(c)
	return user
}

// SetCurrentUser attaches the resolved account to the request context.
func SetCurrentUser(c *gin.Context, user models.User) {
	c.Set(userContextKey, user)
}

// AuthHandler serves registration, login and profile routes.
type AuthHandler struct {
	svc    *authsvc.Service
	logger *zap.Logger
}

// NewAuthHandler constructs the HTTP handler adapter.
func NewAuthHandler(svc *authsvc.Service, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{svc: svc, logger: logger}
}

// Register creates a new account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid register payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, mongodb.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Email already registered"})
			return
		}
		respondError(c, h.logger, err)
		return
	}

	token, err := h.svc.TokenFor(user.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "token": token, "user": user})
}

// Login verifies credentials and issues a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	token, user, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, authsvc.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": user})
}

// Me returns the caller's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": currentUser(c)})
}

// UpdateCrops replaces the caller's selected crop list.
func (h *AuthHandler) UpdateCrops(c *gin.Context) {
	var req models.UpdateCropsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid crops payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	user, err := h.svc.UpdateCrops(c.Request.Context(), currentUser(c).ID, req.Crops)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}
