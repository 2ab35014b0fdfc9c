package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// claimsKey is the gin context key the middleware stores the decoded claims
// under. Downstream handlers read it through ClaimsFrom.
const claimsKey = "claims"

// JWT returns a middleware that validates the Authorization bearer token and
// attaches the decoded claims to the request context. It distinguishes a
// missing header, a header that is not of the form "Bearer <token>", and a
// token the verifier rejects; all three abort with 401.
func JWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || scheme != "Bearer" || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "malformed authorization header"})
			return
		}

		claims, err := VerifyToken(strings.TrimSpace(token), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom reads the claims the JWT middleware stored on the context.
func ClaimsFrom(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}
