package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Product represents a listing owned by a farmer profile
type Product struct {
	ID              uuid.UUID      `json:"id"`
	FarmerProfileID uuid.UUID      `json:"farmerProfileId"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Category        string         `json:"category"`
	Price           float64        `json:"price"`
	Unit            string         `json:"unit"`
	ImageRef        string         `json:"imageRef"`
	ApprovalStatus  ApprovalStatus `json:"approvalStatus"`
	ApprovalDate    null.Time      `json:"approvalDate,omitempty"`
	RejectionReason null.String    `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// CreateProductInput represents input for creating a product
type CreateProductInput struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Unit        string  `json:"unit" binding:"required"`
	ImageRef    string  `json:"imageRef,omitempty"`
}

// UpdateProductInput represents input for updating a product. Nil
// fields are left untouched.
type UpdateProductInput struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Unit        *string  `json:"unit,omitempty"`
	ImageRef    *string  `json:"imageRef,omitempty"`
}

// TouchesVerifiedFields reports whether the update changes a field
// that invalidates an existing verdict. Name, category and image are
// what the verdict hinges on; description, price and unit edits never
// demote an approved listing.
func (in *UpdateProductInput) TouchesVerifiedFields(p *Product) bool {
	if in.Name != nil && *in.Name != p.Name {
		return true
	}
	if in.Category != nil && *in.Category != p.Category {
		return true
	}
	if in.ImageRef != nil && *in.ImageRef != p.ImageRef {
		return true
	}
	return false
}
