package notifications

import (
	"fmt"

	"farm-market.backend/internal/domain/entities"
)

var targetLabels = map[entities.DecisionTarget]string{
	entities.DecisionTargetFarmer:  "farmer application",
	entities.DecisionTargetCompany: "company application",
	entities.DecisionTargetProduct: "product listing",
}

// OutcomeSubject builds the subject line for a decision outcome email
func OutcomeSubject(targetType entities.DecisionTarget, outcome entities.DecisionOutcome) string {
	label := targetLabels[targetType]
	if outcome == entities.DecisionApproved {
		return fmt.Sprintf("Your %s has been approved", label)
	}
	return fmt.Sprintf("Update on your %s", label)
}

// OutcomeBody builds the HTML body for a decision outcome email
func OutcomeBody(name string, targetType entities.DecisionTarget, outcome entities.DecisionOutcome, reason string) string {
	label := targetLabels[targetType]

	var detail string
	if outcome == entities.DecisionApproved {
		detail = fmt.Sprintf("<p>Good news! Your %s has been approved and is now live on Farm Market.</p>", label)
	} else {
		detail = fmt.Sprintf("<p>Unfortunately your %s was not approved.</p>", label)
		if reason != "" {
			detail += fmt.Sprintf("<p>Reason: %s</p>", reason)
		}
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<h2>Hello %s,</h2>
		%s
		<p>Best regards,<br>The Farm Market Team</p>
	</div>
</body>
</html>`, name, detail)
}
