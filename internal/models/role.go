package models

// Role is a named permission class assigned to users. Rows are seeded at
// startup and never modified afterwards.
type Role struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	Position    string `gorm:"type:varchar(100);uniqueIndex;not null" json:"position"`
	Description string `gorm:"type:text" json:"description"`

	// Relations
	Users []User `gorm:"foreignKey:RoleID" json:"-"`
}
