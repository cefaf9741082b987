package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ProfileKind distinguishes the two vetted business profile types
type ProfileKind string

const (
	ProfileKindFarmer  ProfileKind = "farmer"
	ProfileKindCompany ProfileKind = "company"
)

// ProfileDraft carries the business attributes submitted at onboarding
type ProfileDraft struct {
	BusinessName string `json:"businessName" binding:"required,min=2,max=255"`
	TaxNumber    string `json:"taxNumber" binding:"required"`
	City         string `json:"city" binding:"required"`
	District     string `json:"district" binding:"required"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// FarmerProfile is owned 1:1 by a User with the farmer role. Its
// approval status mirrors the owner's after every decision.
type FarmerProfile struct {
	ID             uuid.UUID      `json:"id"`
	UserID         uuid.UUID      `json:"userId"`
	BusinessName   string         `json:"businessName"`
	TaxNumber      string         `json:"taxNumber"`
	City           string         `json:"city"`
	District       string         `json:"district"`
	Address        null.String    `json:"address,omitempty"`
	Phone          null.String    `json:"phone,omitempty"`
	ApprovalStatus ApprovalStatus `json:"approvalStatus"`
	ReviewedAt     null.Time      `json:"reviewedAt,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// CompanyProfile is owned 1:1 by a User with the company role.
type CompanyProfile struct {
	ID             uuid.UUID      `json:"id"`
	UserID         uuid.UUID      `json:"userId"`
	BusinessName   string         `json:"businessName"`
	TaxNumber      string         `json:"taxNumber"`
	City           string         `json:"city"`
	District       string         `json:"district"`
	Address        null.String    `json:"address,omitempty"`
	Phone          null.String    `json:"phone,omitempty"`
	ApprovalStatus ApprovalStatus `json:"approvalStatus"`
	ReviewedAt     null.Time      `json:"reviewedAt,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
