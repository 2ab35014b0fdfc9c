package seed

import (
	"gorm.io/gorm"

	"siproa/internal/models"
)

// EnsureRoles provisions the two fixed role rows. Request-serving code only
// ever looks roles up by name; this is the one place rows come from.
func EnsureRoles(db *gorm.DB) error {
	for _, name := range []string{models.RoleMaestro, models.RoleAdministrador} {
		role := models.Role{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	return nil
}
