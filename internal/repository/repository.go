package repository

import (
	"time"

	"github.com/adaskevich/tasktracker/internal/models"
)

// taskPreloads are the relations attached to every task read.
var taskPreloads = []string{
	"ResponsiblePerson.Role",
	"Performers.Role",
	"Status",
	"Priority",
	"CreatedBy.Role",
}

// RoleRepository defines the interface for role data access
type RoleRepository interface {
	// FindByPosition finds a role by its name, case-insensitively
	FindByPosition(position string) (*models.Role, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByLogin finds a user by login with the role attached
	FindByLogin(login string) (*models.User, error)

	// FindAllByEmails finds users by email with roles attached. Emails with
	// no matching user are absent from the result; callers decide whether
	// that is an error.
	FindAllByEmails(emails []string) ([]models.User, error)
}

// TaskUpdate carries the replacement values for a full task update.
// CreatedByID and CreatedAt are deliberately absent: they never change.
type TaskUpdate struct {
	Title       string
	Description *string
	StatusID    uint64
	PriorityID  *uint64
	Deadline    *time.Time

	// ResponsiblePersonID is only applied when SetResponsible is true.
	ResponsiblePersonID *uint64
	SetResponsible      bool

	// PerformerIDs replace all existing performer edges when
	// SetPerformers is true.
	PerformerIDs  []uint64
	SetPerformers bool
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// CreateWithPerformers creates the task row and its performer edges
	// in one transaction.
	CreateWithPerformers(task *models.Task, performerIDs []uint64) error

	// FindByID finds a task by ID with all relations attached
	FindByID(id uint64) (*models.Task, error)

	// Update applies a full field replacement in one transaction,
	// rewriting assignment edges only when the update says so.
	Update(taskID uint64, update TaskUpdate) error

	// UpdateStatus writes a new status for the task
	UpdateStatus(taskID, statusID uint64) error

	// Delete removes the task and its performer edges
	Delete(id uint64) error

	// ListAll returns every task with relations, ordered by creation time
	ListAll() ([]models.Task, error)

	// FindStatusByName finds a task status by name, case-insensitively
	FindStatusByName(name string) (*models.TaskStatus, error)

	// FindPriorityByLevel finds a task priority by importance level
	FindPriorityByLevel(level int) (*models.TaskPriority, error)
}
