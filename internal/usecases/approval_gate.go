package usecases

import (
	"context"

	"github.com/google/uuid"
	"farm-market.backend/internal/domain/entities"
	domainerrors "farm-market.backend/internal/domain/errors"
	"farm-market.backend/internal/domain/repositories"
)

// Capability names something a caller wants to do on the marketplace
type Capability string

const (
	CapabilityBrowse         Capability = "browse"
	CapabilitySellProducts   Capability = "sell_products"
	CapabilityBulkPurchase   Capability = "bulk_purchase"
	CapabilityReviewListings Capability = "review_listings"
)

// roleCapabilities maps each role to what it may do once its account
// is in good standing.
var roleCapabilities = map[entities.Role]map[Capability]bool{
	entities.RoleCustomer: {
		CapabilityBrowse: true,
	},
	entities.RoleFarmer: {
		CapabilityBrowse:       true,
		CapabilitySellProducts: true,
	},
	entities.RoleCompany: {
		CapabilityBrowse:       true,
		CapabilityBulkPurchase: true,
	},
	entities.RoleAdmin: {
		CapabilityBrowse:         true,
		CapabilityReviewListings: true,
	},
}

// ApprovalGate decides, per request, whether an account may exercise a
// capability. It always reads the current user row so that a decision
// made a moment ago takes effect immediately, not at next login.
type ApprovalGate struct {
	userRepo repositories.UserRepository
}

// NewApprovalGate creates a new approval gate
func NewApprovalGate(userRepo repositories.UserRepository) *ApprovalGate {
	return &ApprovalGate{userRepo: userRepo}
}

// Authorize returns the user when the capability is allowed, or a
// forbidden error naming the blocking condition. Vetted roles are held
// back until a human approves them; a rejected application stays
// locked out of its role capabilities for good.
func (g *ApprovalGate) Authorize(ctx context.Context, userID uuid.UUID, capability Capability) (*entities.User, error) {
	user, err := g.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.AccountStatus == entities.AccountSuspended || user.AccountStatus == entities.AccountDeactivated {
		return nil, domainerrors.Forbidden("account inactive")
	}

	if !roleCapabilities[user.Role][capability] {
		return nil, domainerrors.Forbidden("role does not permit this action")
	}

	if user.Role.RequiresVetting() {
		switch user.ApprovalStatus {
		case entities.ApprovalPending:
			return nil, domainerrors.Forbidden("account pending review")
		case entities.ApprovalRejected:
			return nil, domainerrors.Forbidden("application rejected")
		}
	}

	return user, nil
}
