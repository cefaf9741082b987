package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"farm-market.backend/internal/domain/entities"
	domainerrors "farm-market.backend/internal/domain/errors"
	"farm-market.backend/internal/interfaces/http/middleware"
	"farm-market.backend/internal/interfaces/http/response"
	"farm-market.backend/internal/usecases"
)

// ProfileHandler handles business profile submission endpoints
type ProfileHandler struct {
	onboardingUsecase *usecases.OnboardingUsecase
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(onboardingUsecase *usecases.OnboardingUsecase) *ProfileHandler {
	return &ProfileHandler{onboardingUsecase: onboardingUsecase}
}

// SubmitFarmerProfile submits a farmer profile for review
// POST /api/v1/profiles/farmer
func (h *ProfileHandler) SubmitFarmerProfile(c *gin.Context) {
	var draft entities.ProfileDraft

	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	profile, err := h.onboardingUsecase.SubmitFarmerProfile(c.Request.Context(), userID, &draft)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, profile)
}

// Me returns the caller's own business profile
// GET /api/v1/profiles/me
func (h *ProfileHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	role, _ := middleware.GetUserRole(c)
	switch entities.Role(role) {
	case entities.RoleFarmer:
		profile, err := h.onboardingUsecase.MyFarmerProfile(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, http.StatusOK, profile)
	case entities.RoleCompany:
		profile, err := h.onboardingUsecase.MyCompanyProfile(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, http.StatusOK, profile)
	default:
		response.Error(c, domainerrors.NotFound("no business profile for this account"))
	}
}

// SubmitCompanyProfile submits a company profile for review
// POST /api/v1/profiles/company
func (h *ProfileHandler) SubmitCompanyProfile(c *gin.Context) {
	var draft entities.ProfileDraft

	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	profile, err := h.onboardingUsecase.SubmitCompanyProfile(c.Request.Context(), userID, &draft)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, profile)
}
