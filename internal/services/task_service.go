package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/adaskevich/tasktracker/internal/constants"
	"github.com/adaskevich/tasktracker/internal/models"
	"github.com/adaskevich/tasktracker/internal/repository"
	"github.com/adaskevich/tasktracker/internal/utils"
)

// TaskService owns the task lifecycle: creation, full-replace updates,
// status transitions, deletion and listing. All role constraints on
// assignment are enforced here, before anything is written.
type TaskService struct {
	taskRepo        repository.TaskRepository
	userRepo        repository.UserRepository
	normalizer      *Normalizer
	assignableRoles []string
}

// NewTaskService creates a new TaskService. assignableRoles is the set of
// roles allowed to hold a task as responsible person or performer.
func NewTaskService(
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
	normalizer *Normalizer,
	assignableRoles []string,
) *TaskService {
	return &TaskService{
		taskRepo:        taskRepo,
		userRepo:        userRepo,
		normalizer:      normalizer,
		assignableRoles: assignableRoles,
	}
}

// TaskInput carries the user-supplied task fields shared by Create and
// Update. Status, Priority and Deadline are raw labels, normalized here.
type TaskInput struct {
	Title             string
	Description       *string
	ResponsiblePerson string
	Performers        []string
	Status            string
	Priority          string
	Deadline          string
}

// normalizedInput is a TaskInput after validation, resolved against the
// seeded status and priority tables.
type normalizedInput struct {
	statusID   uint64
	priorityID *uint64
	deadline   *time.Time
}

// Create validates the input, resolves every assignee and persists the task
// together with its performer edges in one transaction.
func (s *TaskService) Create(input TaskInput, actor *models.User) (*models.Task, error) {
	normalized, err := s.normalizeInput(input)
	if err != nil {
		return nil, err
	}

	responsible, err := s.resolveAssignee(input.ResponsiblePerson)
	if err != nil {
		return nil, err
	}
	performers, err := s.resolvePerformers(input.Performers)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:               input.Title,
		Description:         input.Description,
		ResponsiblePersonID: &responsible.ID,
		StatusID:            normalized.statusID,
		PriorityID:          normalized.priorityID,
		CreatedByID:         actor.ID,
		Deadline:            normalized.deadline,
	}

	if err := s.taskRepo.CreateWithPerformers(task, userIDs(performers)); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.findTask(task.ID)
}

// Update applies a full field replacement to an existing task. Responsible
// person and performers are only touched when supplied; omitting them keeps
// the existing assignments.
func (s *TaskService) Update(taskID uint64, input TaskInput) (*models.Task, error) {
	if _, err := s.findTask(taskID); err != nil {
		return nil, err
	}

	normalized, err := s.normalizeInput(input)
	if err != nil {
		return nil, err
	}

	update := repository.TaskUpdate{
		Title:       input.Title,
		Description: input.Description,
		StatusID:    normalized.statusID,
		PriorityID:  normalized.priorityID,
		Deadline:    normalized.deadline,
	}

	if input.ResponsiblePerson != "" {
		responsible, err := s.resolveAssignee(input.ResponsiblePerson)
		if err != nil {
			return nil, err
		}
		update.ResponsiblePersonID = &responsible.ID
		update.SetResponsible = true
	}

	if performerEmails := filterEmpty(input.Performers); len(performerEmails) > 0 {
		performers, err := s.resolvePerformers(performerEmails)
		if err != nil {
			return nil, err
		}
		update.PerformerIDs = userIDs(performers)
		update.SetPerformers = true
	}

	if err := s.taskRepo.Update(taskID, update); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.findTask(taskID)
}

// ChangeStatus moves a task to the given status. The boolean result reports
// whether anything changed: a task already in the requested status is a
// benign no-op, distinct from both success and failure, and must not
// trigger a notification.
func (s *TaskService) ChangeStatus(taskID uint64, statusLabel string) (*models.Task, bool, error) {
	canonical, err := s.normalizer.NormalizeStatus(statusLabel)
	if err != nil {
		return nil, false, err
	}

	task, err := s.findTask(taskID)
	if err != nil {
		return nil, false, err
	}

	status, err := s.taskRepo.FindStatusByName(canonical)
	if err != nil {
		return nil, false, fmt.Errorf("failed to resolve status %q: %w", canonical, err)
	}

	if task.StatusID == status.ID {
		return task, false, nil
	}

	if err := s.taskRepo.UpdateStatus(taskID, status.ID); err != nil {
		return nil, false, fmt.Errorf("failed to update task status: %w", err)
	}

	updated, err := s.findTask(taskID)
	if err != nil {
		return nil, false, err
	}
	return updated, true, nil
}

// Delete removes a task and returns a snapshot of the deleted record.
func (s *TaskService) Delete(taskID uint64) (*models.Task, error) {
	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := s.taskRepo.Delete(taskID); err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}
	return task, nil
}

// ListAll returns every task with relations, ordered by creation time.
func (s *TaskService) ListAll() ([]models.Task, error) {
	tasks, err := s.taskRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// normalizeInput validates status, priority and deadline, applying the
// TODO / Lowest defaults, and resolves them to seeded rows.
func (s *TaskService) normalizeInput(input TaskInput) (normalizedInput, error) {
	var out normalizedInput

	statusLabel := input.Status
	if statusLabel == "" {
		statusLabel = constants.TaskStatusTodo
	}
	canonical, err := s.normalizer.NormalizeStatus(statusLabel)
	if err != nil {
		return out, err
	}
	status, err := s.taskRepo.FindStatusByName(canonical)
	if err != nil {
		return out, fmt.Errorf("failed to resolve status %q: %w", canonical, err)
	}
	out.statusID = status.ID

	priorityLabel := input.Priority
	if priorityLabel == "" {
		priorityLabel = constants.TaskPriorityLabels[constants.PriorityLevelLowest]
	}
	level, err := s.normalizer.NormalizePriority(priorityLabel)
	if err != nil {
		return out, err
	}
	priority, err := s.taskRepo.FindPriorityByLevel(level)
	if err != nil {
		return out, fmt.Errorf("failed to resolve priority level %d: %w", level, err)
	}
	out.priorityID = &priority.ID

	if input.Deadline != "" {
		deadline, err := utils.ParseDeadline(input.Deadline)
		if err != nil {
			return out, &ValidationError{Message: err.Error()}
		}
		if !deadline.After(time.Now()) {
			return out, newValidationError(
				"Deadline «%s» must be later than the current moment", input.Deadline)
		}
		out.deadline = &deadline
	}

	return out, nil
}

// resolveAssignee resolves a single responsible-person email and checks its
// role against the allowed-assignment set.
func (s *TaskService) resolveAssignee(email string) (*models.User, error) {
	users, err := s.resolveUsersByEmails([]string{email})
	if err != nil {
		return nil, err
	}
	if err := s.checkRolesOfAssignedUsers(users, "responsible_person"); err != nil {
		return nil, err
	}
	return &users[0], nil
}

// resolvePerformers resolves performer emails and checks their roles
// against the allowed-assignment set.
func (s *TaskService) resolvePerformers(emails []string) ([]models.User, error) {
	emails = filterEmpty(emails)
	if len(emails) == 0 {
		return nil, nil
	}
	users, err := s.resolveUsersByEmails(emails)
	if err != nil {
		return nil, err
	}
	if err := s.checkRolesOfAssignedUsers(users, "performers"); err != nil {
		return nil, err
	}
	return users, nil
}

// resolveUsersByEmails looks up every email and fails naming the missing
// ones; a partial result is never returned.
func (s *TaskService) resolveUsersByEmails(emails []string) ([]models.User, error) {
	users, err := s.userRepo.FindAllByEmails(emails)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve users by email: %w", err)
	}

	found := make(map[string]struct{}, len(users))
	for _, u := range users {
		found[u.Email] = struct{}{}
	}

	var missing []string
	seen := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		if _, ok := found[email]; ok {
			continue
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		missing = append(missing, email)
	}

	if len(missing) > 0 {
		plural := ""
		if len(missing) > 1 {
			plural = "s"
		}
		return nil, newValidationError("User%s with email%s %s not found",
			plural, plural, utils.QuoteJoin(missing))
	}
	return users, nil
}

// checkRolesOfAssignedUsers rejects the assignment if any user's role is
// outside the allowed-assignment set, naming every offending user and the
// full allowed set.
func (s *TaskService) checkRolesOfAssignedUsers(users []models.User, positionLabel string) error {
	allowed := make(map[string]struct{}, len(s.assignableRoles))
	for _, role := range s.assignableRoles {
		allowed[role] = struct{}{}
	}

	var offending []string
	for _, user := range users {
		if _, ok := allowed[user.RolePosition()]; !ok {
			offending = append(offending, user.String())
		}
	}
	if len(offending) > 0 {
		return newForbiddenError(
			"%s cannot be assigned to a task as %s. Only %s roles available for %s.",
			strings.Join(offending, ", "), positionLabel,
			utils.QuoteJoin(s.assignableRoles), positionLabel)
	}
	return nil
}

func (s *TaskService) findTask(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFoundError("Task with ID = «%d» not found", taskID)
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// filterEmpty drops empty entries from an email list, mirroring how null
// performers are filtered out of request payloads.
func filterEmpty(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		result = append(result, v)
	}
	return result
}

// userIDs extracts unique user IDs, preserving order.
func userIDs(users []models.User) []uint64 {
	seen := make(map[uint64]struct{}, len(users))
	ids := make([]uint64, 0, len(users))
	for _, u := range users {
		if _, ok := seen[u.ID]; ok {
			continue
		}
		seen[u.ID] = struct{}{}
		ids = append(ids, u.ID)
	}
	return ids
}
