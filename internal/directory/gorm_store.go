package directory

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"siproa/internal/models"
)

// GormStore backs the directory with a relational database. It configures no
// uniqueness enforcement of its own beyond the username index and writes role
// links row by row, matching the CreateUser contract.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) InsertUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *GormStore) FindRoleByName(ctx context.Context, name string) (*models.Role, error) {
	var role models.Role
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}

func (s *GormStore) LinkRole(ctx context.Context, userID, roleID int64) error {
	return s.db.WithContext(ctx).Create(&models.UserRole{UserID: userID, RoleID: roleID}).Error
}

func (s *GormStore) RoleNamesFor(ctx context.Context, userID int64) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Table("user_roles ur").
		Joins("JOIN roles r ON r.id = ur.role_id").
		Where("ur.user_id = ?", userID).
		Pluck("r.name", &names).Error
	return names, err
}
