package models

// UserRole is the join between users and roles. The `user_roles` table uses a
// composite primary key (user_id, role_id); links are written once at user
// creation and never updated or deleted.
type UserRole struct {
	UserID int64 `gorm:"primaryKey"`
	RoleID int64 `gorm:"primaryKey"`
}
