package models

import (
	"time"
)

// Expense 支出记录模型
// date 在创建时由服务端写入，之后不可修改；删除为物理删除，不保留软删除标记
type Expense struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Date     time.Time `json:"date" gorm:"column:date;not null"`
	Category string    `json:"category" gorm:"size:15;not null"`
	Amount   float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	Comment  *string   `json:"comment" gorm:"size:50"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// CategorySummary 按类别汇总结果（实时计算，不落库）
type CategorySummary struct {
	Category    string  `json:"category" example:"餐饮"`
	Amount      float64 `json:"amount" example:"152.30"`      // 该类别金额总和
	Count       int64   `json:"count" example:"12"`           // 该类别记录数
	AverageBill float64 `json:"average_bill" example:"12.69"` // 平均单笔金额 = amount / count
}
