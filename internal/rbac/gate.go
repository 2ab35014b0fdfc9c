package rbac

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"siproa/internal/auth"
)

// RequireRole returns a middleware gating the route on a role name. It
// assumes the JWT middleware already ran; absent claims or a role list
// lacking the required name abort with 403.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := auth.ClaimsFrom(c)
		if !ok || !slices.Contains(claims.Roles, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden"})
			return
		}
		c.Next()
	}
}
