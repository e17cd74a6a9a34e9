package models

import "time"

// Task is the unit of work tracked by the system. CreatedByID and
// CreatedAt are fixed at creation and never updated afterwards.
type Task struct {
	ID                  uint64     `gorm:"primarykey" json:"id"`
	Title               string     `gorm:"type:varchar(250);not null" json:"title"`
	Description         *string    `gorm:"type:text" json:"description"`
	ResponsiblePersonID *uint64    `json:"-"`
	StatusID            uint64     `gorm:"not null" json:"-"`
	PriorityID          *uint64    `json:"-"`
	CreatedByID         uint64     `gorm:"not null" json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	Deadline            *time.Time `json:"deadline"`

	// Relations
	ResponsiblePerson *User         `gorm:"foreignKey:ResponsiblePersonID;constraint:OnDelete:SET NULL" json:"responsible_person,omitempty"`
	Performers        []User        `gorm:"many2many:task_performers;constraint:OnDelete:CASCADE" json:"performers"`
	Status            TaskStatus    `gorm:"foreignKey:StatusID" json:"status"`
	Priority          *TaskPriority `gorm:"foreignKey:PriorityID" json:"priority,omitempty"`
	CreatedBy         User          `gorm:"foreignKey:CreatedByID" json:"created_by"`
}
