package entities

import (
	"time"

	"github.com/google/uuid"
)

// Role represents the account role of a user
type Role string

const (
	RoleCustomer Role = "customer"
	RoleFarmer   Role = "farmer"
	RoleCompany  Role = "company"
	RoleAdmin    Role = "admin"
)

// Valid reports whether the role is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleFarmer, RoleCompany, RoleAdmin:
		return true
	}
	return false
}

// RequiresVetting reports whether the role must pass admin review
// before it may transact.
func (r Role) RequiresVetting() bool {
	return r == RoleFarmer || r == RoleCompany
}

// ApprovalStatus is the tri-state review gate shared by users,
// profiles and products.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// AccountStatus is the liveness axis, orthogonal to approval.
type AccountStatus string

const (
	AccountActive      AccountStatus = "active"
	AccountPending     AccountStatus = "pending"
	AccountSuspended   AccountStatus = "suspended"
	AccountDeactivated AccountStatus = "deactivated"
)

// InitialApprovalStatus returns the approval status a fresh account
// starts with. Customers skip review entirely.
func InitialApprovalStatus(r Role) ApprovalStatus {
	if r == RoleCustomer {
		return ApprovalApproved
	}
	return ApprovalPending
}

// InitialAccountStatus returns the account status a fresh account
// starts with. Vetted roles stay pending until an admin approves them.
func InitialAccountStatus(r Role) AccountStatus {
	if r.RequiresVetting() {
		return AccountPending
	}
	return AccountActive
}

// User represents a registered account
type User struct {
	ID             uuid.UUID      `json:"id"`
	Email          string         `json:"email"`
	Name           string         `json:"name"`
	PasswordHash   string         `json:"-"`
	Role           Role           `json:"role"`
	ApprovalStatus ApprovalStatus `json:"approvalStatus"`
	AccountStatus  AccountStatus  `json:"accountStatus"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// RegisterInput represents input for account registration. The profile
// draft is required for farmer and company registrations.
type RegisterInput struct {
	Email    string        `json:"email" binding:"required,email"`
	Name     string        `json:"name" binding:"required,min=2,max=100"`
	Password string        `json:"password" binding:"required,min=8"`
	Role     Role          `json:"role" binding:"required"`
	Profile  *ProfileDraft `json:"profile,omitempty"`
}

// LoginInput represents input for login
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"`
}

// AuthResponse represents a successful authentication
type AuthResponse struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	SessionID    string `json:"sessionId,omitempty"`
	User         *User  `json:"user"`
}
