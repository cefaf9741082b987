package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"farm-market.backend/internal/domain/entities"
)

func TestOutcomeSubject(t *testing.T) {
	assert.Equal(t, "Your farmer application has been approved",
		OutcomeSubject(entities.DecisionTargetFarmer, entities.DecisionApproved))
	assert.Equal(t, "Update on your product listing",
		OutcomeSubject(entities.DecisionTargetProduct, entities.DecisionRejected))
}

func TestOutcomeBody(t *testing.T) {
	approved := OutcomeBody("Ada", entities.DecisionTargetCompany, entities.DecisionApproved, "")
	assert.Contains(t, approved, "Hello Ada")
	assert.Contains(t, approved, "company application has been approved")

	rejected := OutcomeBody("Ada", entities.DecisionTargetProduct, entities.DecisionRejected, "image mismatch")
	assert.Contains(t, rejected, "was not approved")
	assert.Contains(t, rejected, "Reason: image mismatch")

	rejectedNoReason := OutcomeBody("Ada", entities.DecisionTargetProduct, entities.DecisionRejected, "")
	assert.NotContains(t, rejectedNoReason, "Reason:")
}
