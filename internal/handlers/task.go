package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adaskevich/tasktracker/internal/dto"
	apierrors "github.com/adaskevich/tasktracker/internal/errors"
	"github.com/adaskevich/tasktracker/internal/middleware"
	"github.com/adaskevich/tasktracker/internal/notify"
	"github.com/adaskevich/tasktracker/internal/services"
)

// TaskHandler coordinates task-related HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
	dispatcher  *notify.Dispatcher
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService, dispatcher *notify.Dispatcher) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		dispatcher:  dispatcher,
	}
}

// createTaskRequest is the Create payload. A responsible person is
// mandatory when a task is born.
type createTaskRequest struct {
	Title             string   `json:"title" binding:"required,max=250"`
	Description       *string  `json:"description"`
	ResponsiblePerson string   `json:"responsible_person" binding:"required,email"`
	Performers        []string `json:"performers"`
	Status            string   `json:"status"`
	Priority          string   `json:"priority"`
	Deadline          string   `json:"deadline"`
}

// editTaskRequest is the Edit payload. Responsible person and performers
// are optional: omitting them leaves the existing assignments intact.
type editTaskRequest struct {
	ID                uint64   `json:"id" binding:"required,min=1"`
	Title             string   `json:"title" binding:"required,max=250"`
	Description       *string  `json:"description"`
	ResponsiblePerson string   `json:"responsible_person" binding:"omitempty,email"`
	Performers        []string `json:"performers"`
	Status            string   `json:"status"`
	Priority          string   `json:"priority"`
	Deadline          string   `json:"deadline"`
}

// Create creates a new task.
func (h *TaskHandler) Create(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body: title and a valid responsible_person email are required")
		return
	}

	task, err := h.taskService.Create(services.TaskInput{
		Title:             req.Title,
		Description:       req.Description,
		ResponsiblePerson: req.ResponsiblePerson,
		Performers:        req.Performers,
		Status:            req.Status,
		Priority:          req.Priority,
		Deadline:          req.Deadline,
	}, actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// Edit applies a full field replacement to an existing task.
func (h *TaskHandler) Edit(c *gin.Context) {
	var req editTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body: id and title are required")
		return
	}

	task, err := h.taskService.Update(req.ID, services.TaskInput{
		Title:             req.Title,
		Description:       req.Description,
		ResponsiblePerson: req.ResponsiblePerson,
		Performers:        req.Performers,
		Status:            req.Status,
		Priority:          req.Priority,
		Deadline:          req.Deadline,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// ChangeStatus moves a task to a new status. A task already in the
// requested status yields a no-op response and no notification.
func (h *TaskHandler) ChangeStatus(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type changeStatusRequest struct {
		TaskID     uint64 `json:"task_id" binding:"required,min=1"`
		StatusName string `json:"status_name" binding:"required"`
	}

	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body: task_id and status_name are required")
		return
	}

	task, changed, err := h.taskService.ChangeStatus(req.TaskID, req.StatusName)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if !changed {
		c.JSON(http.StatusOK, gin.H{
			"detail": fmt.Sprintf("Task is already in «%s» status", task.Status.Name),
		})
		return
	}

	h.dispatcher.NotifyStatusChange(task, actor)

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// Remove deletes a task and returns a snapshot of the deleted record.
func (h *TaskHandler) Remove(c *gin.Context) {
	type removeRequest struct {
		TaskID uint64 `json:"task_id" binding:"required,min=1"`
	}

	var req removeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body: task_id is required")
		return
	}

	task, err := h.taskService.Delete(req.TaskID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// List returns every task, ordered by creation time.
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskService.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}
