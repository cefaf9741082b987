package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"farm-market.backend/internal/domain/entities"
	domainerrors "farm-market.backend/internal/domain/errors"
	"farm-market.backend/internal/interfaces/http/middleware"
	"farm-market.backend/internal/interfaces/http/response"
	"farm-market.backend/internal/usecases"
	"farm-market.backend/pkg/logger"
	"farm-market.backend/pkg/redis"
)

const (
	sessionCookieName = "fm_session"
	sessionDuration   = 7 * 24 * time.Hour
)

// AuthHandler handles registration and login endpoints
type AuthHandler struct {
	identityUsecase *usecases.IdentityUsecase
	sessionStore    *redis.SessionStore
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(identityUsecase *usecases.IdentityUsecase, sessionStore *redis.SessionStore) *AuthHandler {
	return &AuthHandler{identityUsecase: identityUsecase, sessionStore: sessionStore}
}

// Register handles account creation
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.identityUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, user)
}

// Login authenticates a user
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	auth, err := h.identityUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		response.Error(c, err)
		return
	}

	if input.UseSession {
		sessionID := uuid.New().String()
		if err := h.sessionStore.CreateSession(c.Request.Context(), sessionID, &redis.SessionData{
			AccessToken:  auth.AccessToken,
			RefreshToken: auth.RefreshToken,
		}, sessionDuration); err != nil {
			// Bearer auth still works without the cookie session
			logger.Warn(c.Request.Context(), "failed to create session", zap.Error(err))
		} else {
			auth.SessionID = sessionID
			c.SetCookie(sessionCookieName, sessionID, int(sessionDuration.Seconds()), "/", "", false, true)
		}
	}

	response.Success(c, http.StatusOK, auth)
}

// Logout drops the cookie session
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(sessionCookieName)
	if err == nil && sessionID != "" {
		if err := h.sessionStore.DeleteSession(c.Request.Context(), sessionID); err != nil {
			logger.Warn(c.Request.Context(), "failed to delete session", zap.Error(err))
		}
	}
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)

	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the authenticated account
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := h.identityUsecase.GetMe(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}
