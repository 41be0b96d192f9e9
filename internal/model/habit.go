package model

import (
	"encoding/json"
	"time"
)

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

// Habit 用户跟踪的习惯
// swagger:model Habit
type Habit struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"size:500" json:"description"`
	Frequency   Frequency `gorm:"size:20;not null;default:'daily'" json:"frequency"`
	TargetDays  string    `gorm:"size:255" json:"-"` // JSON 编码的星期名称数组，仅 frequency=custom 时有意义
	Priority    int       `gorm:"not null;default:2" json:"priority"`
	Category    string    `gorm:"size:50" json:"category"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Habit) TableName() string {
	return "habits"
}

// SetTargetDays 将目标星期列表序列化为可存储的 JSON 字符串
func (h *Habit) SetTargetDays(days []string) error {
	if days == nil {
		days = []string{}
	}
	b, err := json.Marshal(days)
	if err != nil {
		return err
	}
	h.TargetDays = string(b)
	return nil
}

// TargetDayList 解析 target_days 字段，解析失败时返回空列表
func (h *Habit) TargetDayList() []string {
	if h.TargetDays == "" {
		return []string{}
	}
	var days []string
	if err := json.Unmarshal([]byte(h.TargetDays), &days); err != nil {
		return []string{}
	}
	return days
}
