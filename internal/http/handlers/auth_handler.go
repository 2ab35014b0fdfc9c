package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"siproa/internal/auth"
	"siproa/internal/directory"
)

type credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterHandler creates a user with the base role and returns it together
// with a fresh session token.
func RegisterHandler(dir *directory.Directory, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in credentials
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "username and password are required"})
			return
		}

		account, err := dir.CreateUser(c.Request.Context(), in.Username, in.Password, nil)
		if err != nil {
			switch {
			case errors.Is(err, directory.ErrDuplicateUsername):
				c.JSON(http.StatusBadRequest, gin.H{"message": "username already taken"})
			case errors.Is(err, directory.ErrUnknownRole):
				// A missing role row is a provisioning problem, not something
				// the caller can act on.
				slog.Error("registration failed", "username", in.Username, "error", err)
				c.JSON(http.StatusBadRequest, gin.H{"message": "registration failed"})
			default:
				slog.Error("registration failed", "username", in.Username, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			}
			return
		}

		token, err := auth.IssueToken(account.ID, account.Username, account.Roles, jwtSecret)
		if err != nil {
			slog.Error("failed to sign token", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user": account, "token": token})
	}
}

// LoginHandler authenticates a username/password pair and returns a session
// token. Unknown usernames and wrong passwords get the same response.
func LoginHandler(dir *directory.Directory, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in credentials
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "username and password are required"})
			return
		}

		account, err := dir.Authenticate(c.Request.Context(), in.Username, in.Password)
		if err != nil {
			if errors.Is(err, directory.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid username or password"})
				return
			}
			slog.Error("login failed", "username", in.Username, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}

		token, err := auth.IssueToken(account.ID, account.Username, account.Roles, jwtSecret)
		if err != nil {
			slog.Error("failed to sign token", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": account, "token": token})
	}
}
