package models

import "time"

// Role names are fixed. Every registered user gets RoleMaestro; the bootstrap
// admin additionally gets RoleAdministrador. Nothing creates roles at runtime.
const (
	RoleMaestro       = "MAESTRO"
	RoleAdministrador = "ADMINISTRADOR"
)

type User struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
	Roles        []Role    `gorm:"many2many:user_roles;" json:"-"`
}
