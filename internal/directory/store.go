package directory

import (
	"context"
	"errors"

	"siproa/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrRoleNotFound = errors.New("role not found")
)

// Store is the persistence boundary of the user directory. The first
// generation of the app kept users in process memory; the current one uses a
// relational backend. Both satisfy this interface so the auth and role
// components are store-agnostic.
type Store interface {
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	InsertUser(ctx context.Context, user *models.User) error
	FindRoleByName(ctx context.Context, name string) (*models.Role, error)
	LinkRole(ctx context.Context, userID, roleID int64) error
	RoleNamesFor(ctx context.Context, userID int64) ([]string, error)
}
