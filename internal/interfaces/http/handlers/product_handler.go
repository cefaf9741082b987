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

// ProductHandler handles product listing endpoints
type ProductHandler struct {
	productUsecase *usecases.ProductUsecase
}

// NewProductHandler creates a new product handler
func NewProductHandler(productUsecase *usecases.ProductUsecase) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase}
}

// Create lists a new product
// POST /api/v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	var input entities.CreateProductInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	product, err := h.productUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, product)
}

// Update edits an owned product
// PUT /api/v1/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var input entities.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	product, err := h.productUsecase.Update(c.Request.Context(), userID, productID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, product)
}

// Get returns one product
// GET /api/v1/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	product, err := h.productUsecase.GetByID(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, product)
}

// ListApproved returns the public catalog
// GET /api/v1/products
func (h *ProductHandler) ListApproved(c *gin.Context) {
	p := utils.ParsePagination(c)

	products, err := h.productUsecase.ListApproved(c.Request.Context(), p.Limit, p.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"products": products})
}

// ListMine returns all products of the calling farmer
// GET /api/v1/products/mine
func (h *ProductHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	products, err := h.productUsecase.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"products": products})
}
