package directory

import (
	"context"
	"errors"
	"fmt"

	"siproa/internal/auth"
	"siproa/internal/models"
)

var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrUnknownRole        = errors.New("unknown role")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Account is the directory's view of a user: id, username and the resolved
// role names, never the password hash.
type Account struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

type Directory struct {
	store Store
}

func New(store Store) *Directory {
	return &Directory{store: store}
}

// CreateUser registers a username with the base role plus any extra roles.
// Role rows must pre-exist; a missing name fails with ErrUnknownRole.
//
// The duplicate check and the insert are separate store calls, so two
// concurrent registrations of the same username can both pass the check.
// Likewise, a role-link failure partway through leaves the user row with the
// links written so far; there is no rollback.
func (d *Directory) CreateUser(ctx context.Context, username, password string, extraRoles []string) (*Account, error) {
	if _, err := d.store.FindUserByUsername(ctx, username); err == nil {
		return nil, ErrDuplicateUsername
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("lookup username: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{Username: username, PasswordHash: hash}
	if err := d.store.InsertUser(ctx, user); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	roles := append([]string{models.RoleMaestro}, extraRoles...)
	for _, name := range roles {
		role, err := d.store.FindRoleByName(ctx, name)
		if err != nil {
			if errors.Is(err, ErrRoleNotFound) {
				return nil, fmt.Errorf("role %q: %w", name, ErrUnknownRole)
			}
			return nil, fmt.Errorf("lookup role %q: %w", name, err)
		}
		if err := d.store.LinkRole(ctx, user.ID, role.ID); err != nil {
			return nil, fmt.Errorf("link role %q: %w", name, err)
		}
	}

	return &Account{ID: user.ID, Username: user.Username, Roles: roles}, nil
}

// Authenticate checks a username/password pair. Unknown usernames and wrong
// passwords both fail with ErrInvalidCredentials so callers cannot enumerate
// accounts.
func (d *Directory) Authenticate(ctx context.Context, username, password string) (*Account, error) {
	user, err := d.store.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup username: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	roles, err := d.store.RoleNamesFor(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve roles: %w", err)
	}

	return &Account{ID: user.ID, Username: user.Username, Roles: roles}, nil
}

// FindByUsername returns the stored user record, or ErrUserNotFound.
func (d *Directory) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return d.store.FindUserByUsername(ctx, username)
}

// RolesFor resolves a user's role names via the join table.
func (d *Directory) RolesFor(ctx context.Context, userID int64) ([]string, error) {
	return d.store.RoleNamesFor(ctx, userID)
}
