package repository

import (
	"errors"
	"fmt"

	"habit_tracker_backend/internal/model"
	"habit_tracker_backend/internal/util"

	"gorm.io/gorm"
)

// HabitRepository 处理习惯的数据访问

type HabitRepository struct {
	DB *gorm.DB
}

func NewHabitRepository(db *gorm.DB) *HabitRepository {
	return &HabitRepository{DB: db}
}

// FindAll 获取全部习惯，按优先级降序、创建时间降序排列
func (r *HabitRepository) FindAll() ([]model.Habit, error) {
	var habits []model.Habit
	err := r.DB.Order("priority DESC, created_at DESC").Find(&habits).Error
	if err != nil {
		return nil, fmt.Errorf("查询习惯列表失败: %w", err)
	}
	return habits, nil
}

// FindByID 根据ID查找习惯，不存在时返回 util.ErrHabitNotFound
func (r *HabitRepository) FindByID(id uint) (*model.Habit, error) {
	var habit model.Habit
	err := r.DB.First(&habit, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrHabitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查询习惯失败 (ID: %d): %w", id, err)
	}
	return &habit, nil
}

// Create 创建新习惯，生成的ID写回模型
func (r *HabitRepository) Create(habit *model.Habit) error {
	if err := r.DB.Create(habit).Error; err != nil {
		return fmt.Errorf("创建习惯失败: %w", err)
	}
	return nil
}

// Update 整行覆盖可变字段，不支持部分更新
func (r *HabitRepository) Update(habit *model.Habit) error {
	err := r.DB.Model(&model.Habit{}).
		Where("id = ?", habit.ID).
		Updates(map[string]interface{}{
			"name":        habit.Name,
			"description": habit.Description,
			"frequency":   habit.Frequency,
			"target_days": habit.TargetDays,
			"priority":    habit.Priority,
			"category":    habit.Category,
		}).Error
	if err != nil {
		return fmt.Errorf("更新习惯失败 (ID: %d): %w", habit.ID, err)
	}
	return nil
}

// Delete 删除习惯及其全部完成记录，两步在同一事务中执行
func (r *HabitRepository) Delete(id uint) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", id).Delete(&model.HabitEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Habit{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("删除习惯失败 (ID: %d): %w", id, err)
	}
	return nil
}
