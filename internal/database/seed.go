package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/adaskevich/tasktracker/internal/constants"
	"github.com/adaskevich/tasktracker/internal/models"
)

// Seed inserts the fixed roles, task priorities and task statuses the
// application depends on. Rows already present by name are left untouched,
// so running the seed on every startup is safe.
func Seed(db *gorm.DB) error {
	if err := seedRoles(db); err != nil {
		return fmt.Errorf("failed to seed roles: %w", err)
	}
	if err := seedPriorities(db); err != nil {
		return fmt.Errorf("failed to seed task priorities: %w", err)
	}
	if err := seedStatuses(db); err != nil {
		return fmt.Errorf("failed to seed task statuses: %w", err)
	}
	return nil
}

func seedRoles(db *gorm.DB) error {
	var existing []string
	if err := db.Model(&models.Role{}).Pluck("position", &existing).Error; err != nil {
		return err
	}

	present := toSet(existing)
	for _, position := range constants.RoleNames {
		if _, ok := present[position]; ok {
			continue
		}
		role := models.Role{
			Position:    position,
			Description: constants.RoleDescriptions[position],
		}
		if err := db.Create(&role).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedPriorities(db *gorm.DB) error {
	var existing []string
	if err := db.Model(&models.TaskPriority{}).Pluck("name", &existing).Error; err != nil {
		return err
	}

	present := toSet(existing)
	for level := constants.PriorityLevelHighest; level <= constants.PriorityLevelLowest; level++ {
		label := constants.TaskPriorityLabels[level]
		if _, ok := present[label]; ok {
			continue
		}
		priority := models.TaskPriority{Name: label, ImportanceLevel: level}
		if err := db.Create(&priority).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedStatuses(db *gorm.DB) error {
	var existing []string
	if err := db.Model(&models.TaskStatus{}).Pluck("name", &existing).Error; err != nil {
		return err
	}

	present := toSet(existing)
	for _, name := range constants.TaskStatuses {
		if _, ok := present[name]; ok {
			continue
		}
		if err := db.Create(&models.TaskStatus{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
