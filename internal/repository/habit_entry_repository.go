package repository

import (
	"fmt"
	"time"

	"habit_tracker_backend/internal/model"

	"gorm.io/gorm"
)

// HabitEntryRepository 处理习惯完成记录的数据访问

type HabitEntryRepository struct {
	DB *gorm.DB
}

func NewHabitEntryRepository(db *gorm.DB) *HabitEntryRepository {
	return &HabitEntryRepository{DB: db}
}

// Create 追加一条完成记录，不校验习惯是否存在（由服务层先行检查）
func (r *HabitEntryRepository) Create(entry *model.HabitEntry) error {
	if err := r.DB.Create(entry).Error; err != nil {
		return fmt.Errorf("创建完成记录失败 (habit ID: %d): %w", entry.HabitID, err)
	}
	return nil
}

// FindRecentByHabit 获取习惯在最近 windowDays 天内的完成记录，按完成时间降序
func (r *HabitEntryRepository) FindRecentByHabit(habitID uint, windowDays int) ([]model.HabitEntry, error) {
	since := time.Now().AddDate(0, 0, -windowDays)
	// 无记录时返回空切片而不是 nil，保证 JSON 序列化为 []
	entries := make([]model.HabitEntry, 0)
	err := r.DB.Where("habit_id = ? AND completed_at >= ?", habitID, since).
		Order("completed_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("查询完成记录失败 (habit ID: %d): %w", habitID, err)
	}
	return entries, nil
}

// FindDatesByHabit 获取习惯全部完成时间，按降序排列，用于连续天数计算
func (r *HabitEntryRepository) FindDatesByHabit(habitID uint) ([]time.Time, error) {
	var dates []time.Time
	err := r.DB.Model(&model.HabitEntry{}).
		Where("habit_id = ?", habitID).
		Order("completed_at DESC").
		Pluck("completed_at", &dates).Error
	if err != nil {
		return nil, fmt.Errorf("查询完成时间失败 (habit ID: %d): %w", habitID, err)
	}
	return dates, nil
}

// CountByHabit 获取习惯的总完成次数
func (r *HabitEntryRepository) CountByHabit(habitID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.HabitEntry{}).Where("habit_id = ?", habitID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("统计完成次数失败 (habit ID: %d): %w", habitID, err)
	}
	return count, nil
}
