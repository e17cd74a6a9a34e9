package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/adaskevich/tasktracker/internal/models"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// CreateWithPerformers creates the task row and its performer edges atomically
func (r *GormTaskRepository) CreateWithPerformers(task *models.Task, performerIDs []uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Performers", "ResponsiblePerson", "Status", "Priority", "CreatedBy").
			Create(task).Error; err != nil {
			return err
		}
		return insertPerformerEdges(tx, task.ID, performerIDs)
	})
}

// FindByID finds a task by ID with all relations attached
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	query := r.db
	for _, p := range taskPreloads {
		query = query.Preload(p)
	}
	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Update applies a full field replacement in one transaction. The write goes
// through a column map so that empty and NULL values overwrite too, while
// created_by_id and created_at stay untouched.
func (r *GormTaskRepository) Update(taskID uint64, update TaskUpdate) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		columns := map[string]interface{}{
			"title":       update.Title,
			"description": update.Description,
			"status_id":   update.StatusID,
			"priority_id": update.PriorityID,
			"deadline":    update.Deadline,
		}
		if update.SetResponsible {
			columns["responsible_person_id"] = update.ResponsiblePersonID
		}

		if err := tx.Model(&models.Task{}).Where("id = ?", taskID).
			Updates(columns).Error; err != nil {
			return err
		}

		if !update.SetPerformers {
			return nil
		}
		if err := tx.Where("task_id = ?", taskID).
			Delete(&models.TaskPerformer{}).Error; err != nil {
			return err
		}
		return insertPerformerEdges(tx, taskID, update.PerformerIDs)
	})
}

// UpdateStatus writes a new status for the task
func (r *GormTaskRepository) UpdateStatus(taskID, statusID uint64) error {
	return r.db.Model(&models.Task{}).Where("id = ?", taskID).
		Update("status_id", statusID).Error
}

// Delete removes the task and its performer edges
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.TaskPerformer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Task{}, id).Error
	})
}

// ListAll returns every task with relations, ordered by creation time
func (r *GormTaskRepository) ListAll() ([]models.Task, error) {
	var tasks []models.Task
	query := r.db
	for _, p := range taskPreloads {
		query = query.Preload(p)
	}
	if err := query.Order("created_at ASC, id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindStatusByName finds a task status by name, case-insensitively
func (r *GormTaskRepository) FindStatusByName(name string) (*models.TaskStatus, error) {
	var status models.TaskStatus
	if err := r.db.Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&status).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

// FindPriorityByLevel finds a task priority by importance level
func (r *GormTaskRepository) FindPriorityByLevel(level int) (*models.TaskPriority, error) {
	var priority models.TaskPriority
	if err := r.db.Where("importance_level = ?", level).
		First(&priority).Error; err != nil {
		return nil, err
	}
	return &priority, nil
}

func insertPerformerEdges(tx *gorm.DB, taskID uint64, performerIDs []uint64) error {
	if len(performerIDs) == 0 {
		return nil
	}
	edges := make([]models.TaskPerformer, len(performerIDs))
	for i, userID := range performerIDs {
		edges[i] = models.TaskPerformer{TaskID: taskID, UserID: userID}
	}
	return tx.Create(&edges).Error
}
