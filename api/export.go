package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"expense-tracker/database"
	"expense-tracker/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// queryExpenses 按可选类别筛选查询全部支出记录，日期倒序
func (h *ExportHandler) queryExpenses(c *gin.Context) ([]models.Expense, error) {
	query := database.DB.Model(&models.Expense{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	var expenses []models.Expense
	err := query.Order("date DESC").Find(&expenses).Error
	return expenses, err
}

// ExportCSV 导出支出记录为 CSV
// @Summary 导出支出记录为 CSV
// @Description 导出全部支出记录为 CSV 文件，支持类别筛选
// @Tags 导出
// @Accept json
// @Produce text/csv
// @Param category query string false "类别筛选"
// @Success 200 {file} file "CSV 文件"
// @Failure 500 {object} Response "服务器内部错误"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	expenses, err := h.queryExpenses(c)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	// 生成 CSV
	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	// 写入表头
	headers := []string{"ID", "日期", "类别", "金额", "备注"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	// 写入数据
	for _, expense := range expenses {
		comment := ""
		if expense.Comment != nil {
			comment = *expense.Comment
		}
		row := []string{
			fmt.Sprintf("%d", expense.ID),
			expense.Date.Format(time.RFC3339),
			expense.Category,
			fmt.Sprintf("%.2f", expense.Amount),
			comment,
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	// 设置响应头
	filename := fmt.Sprintf("expenses_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON 导出支出记录为 JSON
// @Summary 导出支出记录为 JSON
// @Description 导出全部支出记录为 JSON 文件，支持类别筛选
// @Tags 导出
// @Accept json
// @Produce json
// @Param category query string false "类别筛选"
// @Success 200 {file} file "JSON 文件"
// @Failure 500 {object} Response "服务器内部错误"
// @Router /api/v1/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	expenses, err := h.queryExpenses(c)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	filename := fmt.Sprintf("expenses_%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.JSON(http.StatusOK, gin.H{
		"exported_at": time.Now().Format(time.RFC3339),
		"total":       len(expenses),
		"expenses":    expenses,
	})
}

// ExportExcel 导出支出记录为 Excel
// @Summary 导出支出记录为 Excel
// @Description 导出全部支出记录为 xlsx 文件，含明细和分类汇总两个工作表，支持类别筛选
// @Tags 导出
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param category query string false "类别筛选"
// @Success 200 {file} file "Excel 文件"
// @Failure 500 {object} Response "服务器内部错误"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	expenses, err := h.queryExpenses(c)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	var summaries []models.CategorySummary
	if err := database.DB.Model(&models.Expense{}).
		Select("category, SUM(amount) AS amount, COUNT(*) AS count, AVG(amount) AS average_bill").
		Group("category").
		Order("amount DESC").
		Scan(&summaries).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "统计数据失败"))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "支出明细"
	f.SetSheetName("Sheet1", sheetName)

	// 设置表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 22)
	f.SetColWidth(sheetName, "C", "C", 15)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 30)

	// 写入表头
	headers := []string{"ID", "日期", "类别", "金额", "备注"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetCellStyle(sheetName, "A1", "E1", headerStyle)

	// 写入数据
	for i, expense := range expenses {
		row := i + 2
		comment := ""
		if expense.Comment != nil {
			comment = *expense.Comment
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), expense.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), expense.Date.Format("2006-01-02 15:04:05"))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), expense.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), expense.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), comment)
	}

	// 分类汇总工作表
	summarySheet := "分类汇总"
	f.NewSheet(summarySheet)
	f.SetColWidth(summarySheet, "A", "A", 15)
	f.SetColWidth(summarySheet, "B", "D", 12)

	summaryHeaders := []string{"类别", "总金额", "笔数", "平均单笔"}
	for i, header := range summaryHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(summarySheet, cell, header)
	}
	f.SetCellStyle(summarySheet, "A1", "D1", headerStyle)

	for i, summary := range summaries {
		row := i + 2
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), summary.Category)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), summary.Amount)
		f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), summary.Count)
		f.SetCellValue(summarySheet, fmt.Sprintf("D%d", row), summary.AverageBill)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}

	filename := fmt.Sprintf("expenses_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
