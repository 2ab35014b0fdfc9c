package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"siproa/internal/auth"
)

// MeHandler echoes the decoded session claims for the authenticated user.
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := auth.ClaimsFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": gin.H{
			"id":       claims.UserID,
			"username": claims.Username,
			"roles":    claims.Roles,
		}})
	}
}
