package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"siproa/internal/auth"
)

// HomeHandler greets the authenticated maestro.
func HomeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := auth.ClaimsFrom(c)
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Bienvenido %s", claims.Username),
			"roles":   claims.Roles,
		})
	}
}

// AdminOnlyHandler is reachable only through the administrator role gate.
func AdminOnlyHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "zona de administración"})
	}
}
