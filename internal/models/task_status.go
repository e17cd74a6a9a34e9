package models

// TaskStatus is one of the fixed lifecycle states (TODO, In progress,
// Done, Backlog). Rows are seeded at startup.
type TaskStatus struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
}
