package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/adaskevich/tasktracker/internal/models"
)

// GormRoleRepository is a GORM implementation of RoleRepository
type GormRoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &GormRoleRepository{db: db}
}

// FindByPosition finds a role by its name, case-insensitively
func (r *GormRoleRepository) FindByPosition(position string) (*models.Role, error) {
	var role models.Role
	if err := r.db.Where("LOWER(position) = ?", strings.ToLower(position)).
		First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}
