package service

import (
	"context"
	"encoding/json"
	"time"

	"habit_tracker_backend/internal/config"
	"habit_tracker_backend/internal/model"
	"habit_tracker_backend/internal/repository"
	"habit_tracker_backend/internal/util"
	"habit_tracker_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const habitListCacheKey = "habit_tracker:habits:list"

// HabitService 处理习惯相关的业务逻辑
type HabitService struct {
	HabitRepo *repository.HabitRepository
	EntryRepo *repository.HabitEntryRepository
	Redis     *redis.Client
	Config    *config.Runtime
}

func NewHabitService(
	habitRepo *repository.HabitRepository,
	entryRepo *repository.HabitEntryRepository,
	rt *config.Runtime,
	rdb *redis.Client,
) *HabitService {
	return &HabitService{
		HabitRepo: habitRepo,
		EntryRepo: entryRepo,
		Redis:     rdb,
		Config:    rt,
	}
}

// HabitInput 创建/更新习惯时的全量字段
type HabitInput struct {
	Name        string
	Description string
	Frequency   model.Frequency
	TargetDays  []string
	Priority    int
	Category    string
}

// HabitWithStats 带最近完成记录与连续天数的习惯视图
// swagger:model HabitWithStats
type HabitWithStats struct {
	model.Habit
	TargetDays []string           `json:"target_days"`
	Entries    []model.HabitEntry `json:"entries"`
	Streak     int                `json:"streak"`
}

// ListHabits 获取全部习惯，每个习惯附带最近窗口内的完成记录和当前连续天数
func (s *HabitService) ListHabits() ([]HabitWithStats, error) {
	if cached, ok := s.cachedList(); ok {
		return cached, nil
	}

	habits, err := s.HabitRepo.FindAll()
	if err != nil {
		return nil, err
	}

	result := make([]HabitWithStats, 0, len(habits))
	for _, habit := range habits {
		view, err := s.enrich(habit)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}

	s.storeList(result)
	return result, nil
}

// GetHabit 获取单个习惯，不存在时返回 util.ErrHabitNotFound
func (s *HabitService) GetHabit(id uint) (*HabitWithStats, error) {
	habit, err := s.HabitRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	view, err := s.enrich(*habit)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// CreateHabit 创建习惯并返回生成的ID
func (s *HabitService) CreateHabit(input HabitInput) (uint, error) {
	habit := model.Habit{
		Name:        input.Name,
		Description: input.Description,
		Frequency:   input.Frequency,
		Priority:    input.Priority,
		Category:    input.Category,
	}
	if err := habit.SetTargetDays(input.TargetDays); err != nil {
		return 0, err
	}
	if err := s.HabitRepo.Create(&habit); err != nil {
		return 0, err
	}
	s.invalidateCache()
	return habit.ID, nil
}

// UpdateHabit 整行覆盖习惯的可变字段，调用方必须提供全部字段
func (s *HabitService) UpdateHabit(id uint, input HabitInput) error {
	habit, err := s.HabitRepo.FindByID(id)
	if err != nil {
		return err
	}

	habit.Name = input.Name
	habit.Description = input.Description
	habit.Frequency = input.Frequency
	habit.Priority = input.Priority
	habit.Category = input.Category
	if err := habit.SetTargetDays(input.TargetDays); err != nil {
		return err
	}
	if err := s.HabitRepo.Update(habit); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

// DeleteHabit 删除习惯并级联删除其完成记录
func (s *HabitService) DeleteHabit(id uint) error {
	if _, err := s.HabitRepo.FindByID(id); err != nil {
		return err
	}
	if err := s.HabitRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

// CompleteHabit 为习惯追加一条完成记录，completedAt 为空时取当前时间。
// 先检查习惯存在（缺失返回 util.ErrHabitNotFound）；检查与插入之间
// 与并发删除存在一个窄竞态窗口，属已知接受的行为
func (s *HabitService) CompleteHabit(id uint, completedAt *time.Time) error {
	if _, err := s.HabitRepo.FindByID(id); err != nil {
		return err
	}

	at := time.Now()
	if completedAt != nil {
		at = *completedAt
	}

	entry := model.HabitEntry{
		HabitID:     id,
		CompletedAt: at,
	}
	if err := s.EntryRepo.Create(&entry); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

// ListEntries 获取习惯在最近窗口内的完成记录，用于热力图渲染
func (s *HabitService) ListEntries(id uint, windowDays int) ([]model.HabitEntry, error) {
	if _, err := s.HabitRepo.FindByID(id); err != nil {
		return nil, err
	}
	if windowDays <= 0 {
		windowDays = util.DefaultEntryWindowDays
	}
	return s.EntryRepo.FindRecentByHabit(id, windowDays)
}

// enrich 为习惯附加最近完成记录和连续天数。
// 连续天数只是展示数据，计算失败时降级为 0 而不向上传播
func (s *HabitService) enrich(habit model.Habit) (HabitWithStats, error) {
	entries, err := s.EntryRepo.FindRecentByHabit(habit.ID, util.DefaultEntryWindowDays)
	if err != nil {
		return HabitWithStats{}, err
	}

	streak := 0
	dates, err := s.EntryRepo.FindDatesByHabit(habit.ID)
	if err != nil {
		logger.Log.Warn("streak computation degraded to zero", zap.Uint("habit_id", habit.ID), zap.Error(err))
	} else {
		streak = CurrentStreak(dates, time.Now())
	}

	return HabitWithStats{
		Habit:      habit,
		TargetDays: habit.TargetDayList(),
		Entries:    entries,
		Streak:     streak,
	}, nil
}

func (s *HabitService) cacheEnabled() bool {
	return s.Redis != nil && s.Config != nil && s.Config.Load().Cache.Enabled
}

// cachedList 读取列表缓存，未命中或反序列化失败时回源
func (s *HabitService) cachedList() ([]HabitWithStats, bool) {
	if !s.cacheEnabled() {
		return nil, false
	}
	val, err := s.Redis.Get(context.Background(), habitListCacheKey).Result()
	if err != nil {
		return nil, false
	}
	var cached []HabitWithStats
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		return nil, false
	}
	return cached, true
}

func (s *HabitService) storeList(list []HabitWithStats) {
	if !s.cacheEnabled() {
		return
	}
	b, err := json.Marshal(list)
	if err != nil {
		return
	}
	ttl := time.Duration(s.Config.Load().Cache.TTLMinutes) * time.Minute
	if err := s.Redis.Set(context.Background(), habitListCacheKey, b, ttl).Err(); err != nil {
		logger.Log.Warn("failed to store habit list cache", zap.Error(err))
	}
}

// invalidateCache 任何写操作后整体失效列表缓存，不做局部失效
func (s *HabitService) invalidateCache() {
	if !s.cacheEnabled() {
		return
	}
	if err := s.Redis.Del(context.Background(), habitListCacheKey).Err(); err != nil {
		logger.Log.Warn("failed to invalidate habit list cache", zap.Error(err))
	}
}
