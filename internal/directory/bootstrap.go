package directory

import (
	"context"
	"errors"
	"fmt"

	"siproa/internal/models"
)

const (
	adminUsername = "admin"
	// Default credential for the bootstrap admin; change after first login.
	adminPassword = "admin123"
)

type BootstrapResult int

const (
	BootstrapCreated BootstrapResult = iota
	BootstrapExisted
)

func (r BootstrapResult) String() string {
	if r == BootstrapCreated {
		return "created"
	}
	return "already existed"
}

// EnsureAdmin makes sure exactly one "admin" user exists, creating it with
// the administrator role when absent. It runs once during process startup,
// outside any request, and is idempotent across restarts.
func (d *Directory) EnsureAdmin(ctx context.Context) (BootstrapResult, error) {
	_, err := d.store.FindUserByUsername(ctx, adminUsername)
	if err == nil {
		return BootstrapExisted, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return 0, fmt.Errorf("lookup admin: %w", err)
	}

	if _, err := d.CreateUser(ctx, adminUsername, adminPassword, []string{models.RoleAdministrador}); err != nil {
		return 0, fmt.Errorf("create admin: %w", err)
	}
	return BootstrapCreated, nil
}
