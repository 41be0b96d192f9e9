package controller

import (
	"errors"
	"strconv"
	"time"

	"habit_tracker_backend/internal/model"
	"habit_tracker_backend/internal/service"
	"habit_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// HabitController 处理习惯相关的API请求
type HabitController struct {
	HabitService *service.HabitService
}

func NewHabitController(habitService *service.HabitService) *HabitController {
	return &HabitController{HabitService: habitService}
}

// HabitRequest 创建/更新习惯的请求体。更新为整行覆盖，必须提供全部字段，
// 即使只改了其中一个
// swagger:model HabitRequest
type HabitRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Description string   `json:"description" binding:"omitempty,max=500"`
	Frequency   string   `json:"frequency" binding:"required,oneof=daily weekly custom"`
	TargetDays  []string `json:"target_days" binding:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Priority    int      `json:"priority" binding:"required,min=1,max=3"`
	Category    string   `json:"category" binding:"omitempty,max=50"`
}

// CompleteHabitRequest 打卡请求体，completed_at 省略时取当前时间
// swagger:model CompleteHabitRequest
type CompleteHabitRequest struct {
	CompletedAt *time.Time `json:"completed_at"`
}

func (c *HabitController) toInput(req HabitRequest) service.HabitInput {
	return service.HabitInput{
		Name:        req.Name,
		Description: req.Description,
		Frequency:   model.Frequency(req.Frequency),
		TargetDays:  req.TargetDays,
		Priority:    req.Priority,
		Category:    req.Category,
	}
}

// GetHabits godoc
// @Summary 获取习惯列表
// @Description 获取全部习惯，按优先级降序、创建时间降序，附带最近30天完成记录和连续天数
// @Tags 习惯管理
// @Produce json
// @Success 200 {array} service.HabitWithStats "成功"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /habits [get]
func (c *HabitController) GetHabits(ctx *gin.Context) {
	habits, err := c.HabitService.ListHabits()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, habits)
}

// GetHabit godoc
// @Summary 获取单个习惯
// @Description 根据ID获取习惯详情
// @Tags 习惯管理
// @Produce json
// @Param id path int true "习惯ID"
// @Success 200 {object} service.HabitWithStats "成功"
// @Failure 400 {object} util.Response "习惯ID无效"
// @Failure 404 {object} util.Response "习惯不存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /habits/{id} [get]
func (c *HabitController) GetHabit(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "习惯ID无效")
		return
	}

	habit, err := c.HabitService.GetHabit(uint(id))
	if errors.Is(err, util.ErrHabitNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, habit)
}

// CreateHabit godoc
// @Summary 创建习惯
// @Description 校验通过后持久化新习惯，返回生成的ID
// @Tags 习惯管理
// @Accept json
// @Produce json
// @Param request body HabitRequest true "习惯字段"
// @Success 201 {object} map[string]interface{} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /habits [post]
func (c *HabitController) CreateHabit(ctx *gin.Context) {
	var request HabitRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		if fields := util.ValidationMessages(err); fields != nil {
			util.BadRequestFields(ctx, fields)
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	id, err := c.HabitService.CreateHabit(c.toInput(request))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"id": id})
}

// UpdateHabit godoc
// @Summary 更新习惯
// @Description 整行覆盖习惯的可变字段，必须提供全部字段
// @Tags 习惯管理
// @Accept json
// @Produce json
// @Param id path int true "习惯ID"
// @Param request body HabitRequest true "习惯字段（全量）"
// @Success 200 {object} map[string]interface{} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "习惯不存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /habits/{id} [put]
func (c *HabitController) UpdateHabit(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "习惯ID无效")
		return
	}

	var request HabitRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		if fields := util.ValidationMessages(err); fields != nil {
			util.BadRequestFields(ctx, fields)
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	err = c.HabitService.UpdateHabit(uint(id), c.toInput(request))
	if errors.Is(err, util.ErrHabitNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"success": true})
}

// DeleteHabit godoc
// @Summary 删除习惯
// @Description 删除习惯并级联删除其全部完成记录
// @Tags 习惯管理
// @Produce json
// @Param id path int true "习惯ID"
// @Success 200 {object} map[string]interface{} "成功"
// @Failure 400 {object} util.Response "习惯ID无效"
// @Failure 404 {object} util.Response "习惯不存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /habits/{id} [delete]
func (c *HabitController) DeleteHabit(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "习惯ID无效")
		return
	}

	err = c.HabitService.DeleteHabit(uint(id))
	if errors.Is(err, util.ErrHabitNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"success": true})
}

// CompleteHabit godoc
// @Summary 习惯打卡
// @Description 为习惯追加一条完成记录，completed_at 省略时取当前时间
// @Tags 习惯管理
// @Accept json
// @Produce json
// @Param id path int true "习惯ID"
// @Param request body CompleteHabitRequest false "打卡时间"
// @Success 200 {object} map[string]interface{} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "习惯不存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /habits/{id}/complete [post]
func (c *HabitController) CompleteHabit(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "习惯ID无效")
		return
	}

	var request CompleteHabitRequest
	// 请求体可以整体省略
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}

	err = c.HabitService.CompleteHabit(uint(id), request.CompletedAt)
	if errors.Is(err, util.ErrHabitNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"success": true})
}

// GetHabitEntries godoc
// @Summary 获取习惯完成记录
// @Description 获取习惯在最近窗口内的完成记录，默认回看30天，用于热力图渲染
// @Tags 习惯管理
// @Produce json
// @Param id path int true "习惯ID"
// @Param days query int false "回看窗口（天）"
// @Success 200 {array} model.HabitEntry "成功"
// @Failure 400 {object} util.Response "习惯ID无效"
// @Failure 404 {object} util.Response "习惯不存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /habits/{id}/entries [get]
func (c *HabitController) GetHabitEntries(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "习惯ID无效")
		return
	}

	days := int(util.MustParseUint(ctx.DefaultQuery("days", strconv.Itoa(util.DefaultEntryWindowDays))))

	entries, err := c.HabitService.ListEntries(uint(id), days)
	if errors.Is(err, util.ErrHabitNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}
