package dto

import (
	"time"

	"github.com/adaskevich/tasktracker/internal/models"
)

// TaskStatusDTO represents a task status in API responses
type TaskStatusDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// TaskPriorityDTO represents a task priority in API responses
type TaskPriorityDTO struct {
	ID              uint64 `json:"id"`
	Name            string `json:"name"`
	ImportanceLevel int    `json:"importance_level"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID                uint64           `json:"id"`
	Title             string           `json:"title"`
	Description       *string          `json:"description"`
	ResponsiblePerson *UserDTO         `json:"responsible_person"`
	Performers        []UserDTO        `json:"performers"`
	Status            TaskStatusDTO    `json:"status"`
	Priority          *TaskPriorityDTO `json:"priority"`
	CreatedBy         UserDTO          `json:"created_by"`
	CreatedAt         time.Time        `json:"created_at"`
	Deadline          *time.Time       `json:"deadline"`
}

// ToTaskDTO converts a Task model with preloaded relations to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      TaskStatusDTO{ID: task.Status.ID, Name: task.Status.Name},
		CreatedBy:   ToUserDTO(task.CreatedBy),
		CreatedAt:   task.CreatedAt,
		Deadline:    task.Deadline,
		Performers:  make([]UserDTO, len(task.Performers)),
	}

	if task.ResponsiblePerson != nil {
		responsible := ToUserDTO(*task.ResponsiblePerson)
		dto.ResponsiblePerson = &responsible
	}
	for i, performer := range task.Performers {
		dto.Performers[i] = ToUserDTO(performer)
	}
	if task.Priority != nil {
		dto.Priority = &TaskPriorityDTO{
			ID:              task.Priority.ID,
			Name:            task.Priority.Name,
			ImportanceLevel: task.Priority.ImportanceLevel,
		}
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}
