package models

// TaskPerformer is the join row between tasks and their performers.
// Edges are always rewritten as a whole inside the transaction that
// updates the owning task.
type TaskPerformer struct {
	TaskID uint64 `gorm:"primarykey" json:"task_id"`
	UserID uint64 `gorm:"primarykey" json:"user_id"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
