package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"farm-market.backend/internal/domain/entities"
	"farm-market.backend/internal/interfaces/http/middleware"
	"farm-market.backend/internal/interfaces/http/response"
	"farm-market.backend/internal/usecases"
	"farm-market.backend/pkg/utils"
)

// AdminHandler handles review queue and decision endpoints
type AdminHandler struct {
	decisionUsecase *usecases.DecisionUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(decisionUsecase *usecases.DecisionUsecase) *AdminHandler {
	return &AdminHandler{decisionUsecase: decisionUsecase}
}

type decideRequest struct {
	TargetType string `json:"targetType" binding:"required"`
	TargetID   string `json:"targetId" binding:"required"`
	Outcome    string `json:"outcome" binding:"required"`
	Reason     string `json:"reason"`
}

// Decide applies an approval or rejection to a farmer, company or
// product.
// POST /api/v1/admin/decisions
func (h *AdminHandler) Decide(c *gin.Context) {
	var req decideRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target ID"})
		return
	}

	if req.Outcome != string(entities.DecisionApproved) && req.Outcome != string(entities.DecisionRejected) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Outcome must be approved or rejected"})
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	decision, err := h.decisionUsecase.Decide(c.Request.Context(), actorID, &entities.DecideInput{
		TargetType: entities.DecisionTarget(req.TargetType),
		TargetID:   targetID,
		Outcome:    entities.DecisionOutcome(req.Outcome),
		Reason:     req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, decision)
}

// Users returns the account listing for the admin console
// GET /api/v1/admin/users
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.decisionUsecase.Users(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// DecisionHistory returns past decisions for one target
// GET /api/v1/admin/decisions?targetType=farmer&targetId=<uuid>
func (h *AdminHandler) DecisionHistory(c *gin.Context) {
	targetID, err := uuid.Parse(c.Query("targetId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target ID"})
		return
	}

	decisions, err := h.decisionUsecase.History(c.Request.Context(), entities.DecisionTarget(c.Query("targetType")), targetID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"decisions": decisions})
}

// PendingFarmers returns the farmer review queue
// GET /api/v1/admin/pending/farmers
func (h *AdminHandler) PendingFarmers(c *gin.Context) {
	p := utils.ParsePagination(c)

	profiles, err := h.decisionUsecase.PendingFarmers(c.Request.Context(), p.Limit, p.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profiles": profiles})
}

// PendingCompanies returns the company review queue
// GET /api/v1/admin/pending/companies
func (h *AdminHandler) PendingCompanies(c *gin.Context) {
	p := utils.ParsePagination(c)

	profiles, err := h.decisionUsecase.PendingCompanies(c.Request.Context(), p.Limit, p.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profiles": profiles})
}

// PendingProducts returns the product review queue
// GET /api/v1/admin/pending/products
func (h *AdminHandler) PendingProducts(c *gin.Context) {
	p := utils.ParsePagination(c)

	products, err := h.decisionUsecase.PendingProducts(c.Request.Context(), p.Limit, p.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"products": products})
}
