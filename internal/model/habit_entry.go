package model

import "time"

// HabitEntry 习惯在某个时间点的一次完成记录，只追加不修改
// swagger:model HabitEntry
type HabitEntry struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	HabitID     uint      `gorm:"index;not null" json:"habit_id"`
	CompletedAt time.Time `gorm:"not null;index" json:"completed_at"`
}

func (HabitEntry) TableName() string {
	return "habit_entries"
}
