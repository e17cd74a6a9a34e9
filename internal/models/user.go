package models

import "fmt"

// User is an account that can authenticate, create tasks and be assigned
// to them. RoleID is nullable: a user without a role is considered pending
// and cannot pass any role guard.
type User struct {
	ID           uint64  `gorm:"primarykey" json:"id"`
	Login        string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"login"`
	Email        string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"type:varchar(255);not null" json:"-"`
	RoleID       *uint64 `json:"-"`

	// Relations
	Role          *Role  `gorm:"foreignKey:RoleID;constraint:OnDelete:SET NULL" json:"role,omitempty"`
	CreatedTasks  []Task `gorm:"foreignKey:CreatedByID" json:"-"`
	AssignedTasks []Task `gorm:"many2many:task_performers" json:"-"`
}

// RolePosition returns the canonical role name, or "" for a pending user.
func (u *User) RolePosition() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Position
}

// String renders the user the way assignment rejection messages expect.
func (u User) String() string {
	return fmt.Sprintf("User(id=%d, login=%q, email=%q, role=%q)",
		u.ID, u.Login, u.Email, u.RolePosition())
}
