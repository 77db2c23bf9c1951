package api

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"expense-tracker/database"
	"expense-tracker/repository"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ExpenseHandler 支出记录处理器
// 负责入参校验和状态码映射，持久化语义全部委托给 repository
type ExpenseHandler struct{}

// NewExpenseHandler 创建支出记录处理器
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{}
}

// repo 基于当前数据库连接构造仓储
func (h *ExpenseHandler) repo() *repository.ExpenseRepository {
	return repository.NewExpenseRepository(database.DB)
}

// CreateExpenseRequest 创建支出记录请求
type CreateExpenseRequest struct {
	Category string  `json:"category" binding:"required,min=1,max=15" example:"餐饮"`
	Amount   float64 `json:"amount" binding:"required,gt=0,lte=100000" example:"12.5"`
	Comment  *string `json:"comment" binding:"omitempty,max=50" example:"午餐"`
}

// UpdateExpenseRequest 部分更新支出记录请求，仅更新请求中出现的字段
type UpdateExpenseRequest struct {
	Category *string  `json:"category" binding:"omitempty,min=1,max=15" example:"交通"`
	Amount   *float64 `json:"amount" binding:"omitempty,gt=0,lte=100000" example:"15.0"`
	Comment  *string  `json:"comment" binding:"omitempty,max=50" example:"地铁"`
}

// ExpenseListRequest 支出记录列表请求
type ExpenseListRequest struct {
	Category string `form:"category" binding:"omitempty,min=1,max=20" example:"餐饮"`
	Limit    *int   `form:"limit" binding:"omitempty,min=1,max=100" example:"50"`
	Skip     *int   `form:"skip" binding:"omitempty,min=0" example:"0"`
}

// Create 创建支出记录
// @Summary 创建支出记录
// @Description 创建一条新的支出记录，日期由服务端写入当前时间
// @Tags 支出记录
// @Accept json
// @Produce json
// @Param request body CreateExpenseRequest true "支出记录信息"
// @Success 201 {object} Response{data=models.Expense} "创建成功"
// @Failure 400 {object} Response "请求参数错误或类别被禁用"
// @Failure 500 {object} Response "服务器内部错误"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 业务规则：forbidden（不区分大小写）不允许作为类别
	if strings.EqualFold(req.Category, "forbidden") {
		BadRequest(c, "类别 forbidden 不允许使用")
		return
	}

	expense, err := h.repo().Create(req.Category, req.Amount, req.Comment)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "创建支出记录失败"))
		return
	}

	Created(c, "创建成功", expense)
}

// List 获取支出记录列表
// @Summary 获取支出记录列表
// @Description 按日期倒序返回支出记录，支持类别精确筛选和偏移分页
// @Tags 支出记录
// @Accept json
// @Produce json
// @Param category query string false "类别筛选（精确匹配）"
// @Param limit query int false "返回条数上限 [1,100]" default(50)
// @Param skip query int false "跳过条数" default(0)
// @Success 200 {object} Response{data=[]models.Expense} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "服务器内部错误"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	var req ExpenseListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 默认分页参数；显式传 0 会被 binding 的 omitempty 放过，这里补一道范围检查
	limit := 50
	if req.Limit != nil {
		if *req.Limit < 1 || *req.Limit > 100 {
			BadRequest(c, "limit 必须在 1 到 100 之间")
			return
		}
		limit = *req.Limit
	}
	skip := 0
	if req.Skip != nil {
		if *req.Skip < 0 {
			BadRequest(c, "skip 不能为负数")
			return
		}
		skip = *req.Skip
	}

	expenses, err := h.repo().List(req.Category, limit, skip)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, expenses)
}

// Summary 获取按类别汇总
// @Summary 获取按类别汇总
// @Description 按类别统计支出总额、笔数和平均单笔金额，按总额倒序返回
// @Tags 支出记录
// @Accept json
// @Produce json
// @Success 200 {object} Response{data=[]models.CategorySummary} "获取成功"
// @Failure 500 {object} Response "服务器内部错误"
// @Router /api/v1/expenses/summary [get]
func (h *ExpenseHandler) Summary(c *gin.Context) {
	summaries, err := h.repo().Summary()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "统计失败"))
		return
	}

	Success(c, summaries)
}

// Get 获取单条支出记录
// @Summary 获取单条支出记录
// @Description 根据ID获取支出记录详情
// @Tags 支出记录
// @Accept json
// @Produce json
// @Param id path int true "支出记录ID"
// @Success 200 {object} Response{data=models.Expense} "获取成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	expense, err := h.repo().GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "记录不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, expense)
}

// Update 部分更新支出记录
// @Summary 部分更新支出记录
// @Description 仅更新请求中出现的字段（category/amount/comment），id 和 date 不可修改，未知字段静默忽略
// @Tags 支出记录
// @Accept json
// @Produce json
// @Param id path int true "支出记录ID"
// @Param request body UpdateExpenseRequest true "要更新的字段"
// @Success 200 {object} Response{data=models.Expense} "更新成功"
// @Failure 400 {object} Response "请求参数错误或没有可更新的字段"
// @Failure 404 {object} Response "记录不存在"
// @Failure 500 {object} Response "服务器内部错误"
// @Router /api/v1/expenses/{id} [patch]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	// 原始键集合用于区分 "comment": null（清空备注）和字段缺失
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 零值会被 binding 的 omitempty 放过，提供了字段就逐个检查取值范围
	updates := make(map[string]interface{})
	if req.Category != nil {
		if length := utf8.RuneCountInString(*req.Category); length < 1 || length > 15 {
			BadRequest(c, "类别长度必须在 1 到 15 个字符之间")
			return
		}
		updates["category"] = *req.Category
	}
	if req.Amount != nil {
		if *req.Amount <= 0 || *req.Amount > 100000 {
			BadRequest(c, "金额必须大于 0 且不超过 100000")
			return
		}
		updates["amount"] = *req.Amount
	}
	if _, ok := raw["comment"]; ok {
		if req.Comment != nil && utf8.RuneCountInString(*req.Comment) > 50 {
			BadRequest(c, "备注不能超过 50 个字符")
			return
		}
		updates["comment"] = req.Comment
	}

	// 有效字段为空属于客户端错误，在进入仓储前拦截
	if len(updates) == 0 {
		BadRequest(c, "没有提供可更新的字段")
		return
	}

	expense, err := h.repo().Update(uint(id), updates)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			NotFound(c, "记录不存在")
		case errors.Is(err, repository.ErrNoFields):
			BadRequest(c, "没有提供可更新的字段")
		default:
			InternalError(c, SafeErrorMessage(err, "更新失败"))
		}
		return
	}

	SuccessWithMessage(c, "更新成功", expense)
}

// Delete 删除支出记录
// @Summary 删除支出记录
// @Description 物理删除指定的支出记录，删除后不可恢复
// @Tags 支出记录
// @Accept json
// @Produce json
// @Param id path int true "支出记录ID"
// @Success 204 "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "记录不存在"
// @Failure 500 {object} Response "服务器内部错误"
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	count, err := h.repo().Delete(uint(id))
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}
	if count == 0 {
		NotFound(c, "记录不存在")
		return
	}

	NoContent(c)
}
