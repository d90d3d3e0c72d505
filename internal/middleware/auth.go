package middleware

import (
	"net/http"
	"strings"

	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DoctorIDKey is where the guard stores the authenticated doctor's ID
// in the gin context.
const DoctorIDKey = "doctorID"

// AuthMiddleware guards a route group with bearer-token authentication.
// On success the doctor ID from the token subject lands in the context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Missing token", nil)
			c.Abort()
			return
		}

		// Header must be "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Malformed authorization header", nil)
			c.Abort()
			return
		}

		doctorID, err := utils.ValidateToken(secret, parts[1])
		if err != nil {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set(DoctorIDKey, doctorID)
		c.Next()
	}
}

// DoctorID pulls the authenticated doctor's ID back out of the context.
func DoctorID(c *gin.Context) uint64 {
	val, exists := c.Get(DoctorIDKey)
	if !exists {
		return 0
	}
	id, _ := val.(uint64)
	return id
}
