package repository

import (
	"errors"
	"time"

	"expense-tracker/models"

	"gorm.io/gorm"
)

var (
	// ErrNotFound 指定 id 的记录不存在（正常分支，不是故障）
	ErrNotFound = errors.New("记录不存在")
	// ErrNoFields 过滤后没有可更新的字段，不会向数据库发送任何语句
	ErrNoFields = errors.New("没有可更新的字段")
)

// allowedUpdateFields 部分更新允许修改的列，id 和 date 不可变
var allowedUpdateFields = map[string]bool{
	"category": true,
	"amount":   true,
	"comment":  true,
}

// ExpenseRepository 支出记录仓储，负责全部查询构造和结果映射
// 入参校验由上层边界完成，这里假定输入已合法
type ExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository 创建支出记录仓储
func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Create 写入一条新的支出记录，date 取当前服务器时间，id 由数据库分配
func (r *ExpenseRepository) Create(category string, amount float64, comment *string) (*models.Expense, error) {
	expense := models.Expense{
		Date:     time.Now(),
		Category: category,
		Amount:   amount,
		Comment:  comment,
	}
	if err := r.db.Create(&expense).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

// List 按 date 倒序返回支出记录，支持类别精确筛选和偏移分页
// category 为空串表示不筛选；无匹配时返回空切片而不是错误
func (r *ExpenseRepository) List(category string, limit, skip int) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0, limit)
	query := r.db.Model(&models.Expense{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Order("date DESC").Offset(skip).Limit(limit).Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// Summary 按类别分组统计总额、笔数和平均单笔金额，按总额倒序返回全部类别
func (r *ExpenseRepository) Summary() ([]models.CategorySummary, error) {
	summaries := make([]models.CategorySummary, 0)
	err := r.db.Model(&models.Expense{}).
		Select("category, SUM(amount) AS amount, COUNT(*) AS count, AVG(amount) AS average_bill").
		Group("category").
		Order("amount DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// GetByID 按主键查询单条记录，不存在时返回 ErrNotFound
func (r *ExpenseRepository) GetByID(id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &expense, nil
}

// Update 部分更新指定记录并返回更新后的完整记录
// fields 会先按允许列表过滤，允许集之外的键静默忽略；过滤后为空则
// 直接返回 ErrNoFields，不触达数据库。写入和回读在同一事务中执行，
// 避免并发删除导致写入成功却回读不到的竞态
func (r *ExpenseRepository) Update(id uint, fields map[string]interface{}) (*models.Expense, error) {
	updates := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		if allowedUpdateFields[key] {
			updates[key] = value
		}
	}
	if len(updates) == 0 {
		return nil, ErrNoFields
	}

	var expense models.Expense
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&expense, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&expense).Updates(updates).Error; err != nil {
			return err
		}
		// 回读持久化后的记录
		return tx.First(&expense, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// Delete 物理删除指定记录，返回删除的行数（0 或 1），不存在不算错误
func (r *ExpenseRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Expense{}, id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
