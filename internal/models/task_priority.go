package models

// TaskPriority maps a display label to an importance level, where level 1
// is the highest urgency and level 5 the lowest. Rows are seeded at startup.
type TaskPriority struct {
	ID              uint64 `gorm:"primarykey" json:"id"`
	Name            string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	ImportanceLevel int    `gorm:"uniqueIndex;not null" json:"importance_level"`
}
