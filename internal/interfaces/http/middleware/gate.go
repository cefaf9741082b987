package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"farm-market.backend/internal/interfaces/http/response"
	"farm-market.backend/internal/usecases"
)

// GateUserKey is the context key for the gate-checked user entity
const GateUserKey = "gateUser"

// RequireCapability checks the caller's current standing against the
// approval gate. The token alone is not trusted for status; the gate
// re-reads the user so a fresh admin decision applies to the very next
// request.
func RequireCapability(gate *usecases.ApprovalGate, capability usecases.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "User not authenticated",
			})
			return
		}

		user, err := gate.Authorize(c.Request.Context(), userID, capability)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(GateUserKey, user)
		c.Next()
	}
}
