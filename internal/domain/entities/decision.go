package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// DecisionTarget identifies the kind of entity a decision applies to
type DecisionTarget string

const (
	DecisionTargetFarmer  DecisionTarget = "farmer"
	DecisionTargetCompany DecisionTarget = "company"
	DecisionTargetProduct DecisionTarget = "product"
)

// Valid reports whether the target kind is known
func (t DecisionTarget) Valid() bool {
	switch t {
	case DecisionTargetFarmer, DecisionTargetCompany, DecisionTargetProduct:
		return true
	}
	return false
}

// DecisionOutcome is the result of a human review
type DecisionOutcome string

const (
	DecisionApproved DecisionOutcome = "approved"
	DecisionRejected DecisionOutcome = "rejected"
)

// Decision is the audit record of one admin review action.
type Decision struct {
	ID         uuid.UUID       `json:"id"`
	TargetType DecisionTarget  `json:"targetType"`
	TargetID   uuid.UUID       `json:"targetId"`
	Outcome    DecisionOutcome `json:"outcome"`
	Reason     null.String     `json:"reason,omitempty"`
	ActorID    uuid.UUID       `json:"actorId"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// DecideInput represents input for the admin decision endpoint
type DecideInput struct {
	TargetType DecisionTarget  `json:"targetType" binding:"required"`
	TargetID   uuid.UUID       `json:"targetId" binding:"required"`
	Outcome    DecisionOutcome `json:"outcome" binding:"required,oneof=approved rejected"`
	Reason     string          `json:"reason,omitempty"`
}
