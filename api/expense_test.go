package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"expense-tracker/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		sqlDB.Close()
	}
}

func setupExpenseRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewExpenseHandler()
	router.POST("/expenses", handler.Create)
	router.GET("/expenses", handler.List)
	router.GET("/expenses/summary", handler.Summary)
	router.GET("/expenses/:id", handler.Get)
	router.PATCH("/expenses/:id", handler.Update)
	router.DELETE("/expenses/:id", handler.Delete)
	return router
}

func expenseRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "date", "category", "amount", "comment"})
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestExpenseHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := setupExpenseRouter()
	w := doJSON(router, "POST", "/expenses", `{"category":"餐饮","amount":12.5,"comment":"午餐"}`)

	assert.Equal(t, 201, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "创建成功", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "餐饮", data["category"])
	assert.Equal(t, 12.5, data["amount"])
	assert.Equal(t, "午餐", data["comment"])
	assert.NotEmpty(t, data["date"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_ForbiddenCategory(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := setupExpenseRouter()

	// 不区分大小写，在触达数据库之前拦截
	for _, category := range []string{"forbidden", "Forbidden", "FORBIDDEN"} {
		w := doJSON(router, "POST", "/expenses", `{"category":"`+category+`","amount":10}`)
		assert.Equal(t, 400, w.Code)
	}
}

func TestExpenseHandler_Create_Validation(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := setupExpenseRouter()

	cases := []string{
		`{"category":"","amount":10}`,                        // 类别为空
		`{"category":"一二三四五六七八九十一二三四五六","amount":10}`,        // 类别超过15字符
		`{"category":"餐饮","amount":0}`,                       // 金额必须大于0
		`{"category":"餐饮","amount":-5}`,                      // 金额为负
		`{"category":"餐饮","amount":100000.01}`,               // 金额超过上限
		`{"category":"餐饮"}`,                                  // 缺少金额
		`{"amount":10}`,                                      // 缺少类别
		`{"category":"餐饮","amount":10,"comment":"` + string(bytes.Repeat([]byte("长"), 51)) + `"}`, // 备注超长
	}
	for _, body := range cases {
		w := doJSON(router, "POST", "/expenses", body)
		assert.Equal(t, 400, w.Code, "body: %s", body)
	}
}

func TestExpenseHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `expenses` ORDER BY date DESC LIMIT").
		WillReturnRows(expenseRows().
			AddRow(2, now, "交通", 7.5, nil).
			AddRow(1, now.Add(-time.Hour), "餐饮", 12.5, "午餐"))

	router := setupExpenseRouter()
	w := doJSON(router, "GET", "/expenses", "")

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	list := resp["data"].([]interface{})
	require.Len(t, list, 2)
	first := list[0].(map[string]interface{})
	assert.Equal(t, float64(2), first["id"])
	// 未设置备注的记录 comment 为 null
	assert.Nil(t, first["comment"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_List_CategoryFilter(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expenses` WHERE category = .* ORDER BY date DESC LIMIT").
		WithArgs("餐饮").
		WillReturnRows(expenseRows().
			AddRow(1, time.Now(), "餐饮", 12.5, nil))

	router := setupExpenseRouter()
	w := doJSON(router, "GET", "/expenses?category=%E9%A4%90%E9%A5%AE&limit=10&skip=0", "")

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_List_Empty(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(expenseRows())

	router := setupExpenseRouter()
	w := doJSON(router, "GET", "/expenses", "")

	// 无记录时返回空数组而不是错误
	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	list, ok := resp["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, list, 0)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_List_Validation(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := setupExpenseRouter()

	// limit 超出 [1,100]、skip 为负都在边界拦截
	for _, path := range []string{
		"/expenses?limit=0",
		"/expenses?limit=101",
		"/expenses?skip=-1",
	} {
		w := doJSON(router, "GET", path, "")
		assert.Equal(t, 400, w.Code, "path: %s", path)
	}
}

func TestExpenseHandler_Summary(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT category, SUM.* FROM `expenses` GROUP BY `category` ORDER BY amount DESC").
		WillReturnRows(sqlmock.NewRows([]string{"category", "amount", "count", "average_bill"}).
			AddRow("餐饮", 20.0, 2, 10.0))

	router := setupExpenseRouter()
	w := doJSON(router, "GET", "/expenses/summary", "")

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	list := resp["data"].([]interface{})
	require.Len(t, list, 1)
	item := list[0].(map[string]interface{})
	assert.Equal(t, "餐饮", item["category"])
	assert.Equal(t, 20.0, item["amount"])
	assert.Equal(t, float64(2), item["count"])
	assert.Equal(t, 10.0, item["average_bill"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Get(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expenses` WHERE `expenses`.`id` = .* LIMIT").
		WithArgs(1).
		WillReturnRows(expenseRows().
			AddRow(1, time.Now(), "餐饮", 12.5, "午餐"))

	router := setupExpenseRouter()
	w := doJSON(router, "GET", "/expenses/1", "")

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Get_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WithArgs(99).
		WillReturnRows(expenseRows())

	router := setupExpenseRouter()
	w := doJSON(router, "GET", "/expenses/99", "")

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Get_InvalidID(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := setupExpenseRouter()
	w := doJSON(router, "GET", "/expenses/abc", "")

	assert.Equal(t, 400, w.Code)
}

func TestExpenseHandler_Update(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `expenses` WHERE `expenses`.`id` = .* LIMIT").
		WithArgs(1).
		WillReturnRows(expenseRows().
			AddRow(1, now, "餐饮", 12.5, nil))
	mock.ExpectExec("UPDATE `expenses` SET `amount`=.* WHERE `id` =").
		WithArgs(15.0, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT .* FROM `expenses` WHERE `expenses`.`id` = .* LIMIT").
		WithArgs(1).
		WillReturnRows(expenseRows().
			AddRow(1, now, "餐饮", 15.0, nil))
	mock.ExpectCommit()

	router := setupExpenseRouter()
	w := doJSON(router, "PATCH", "/expenses/1", `{"amount":15.0}`)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	// 未提供的字段保持不变
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, 15.0, data["amount"])
	assert.Equal(t, "餐饮", data["category"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Update_ClearComment(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `expenses` WHERE `expenses`.`id` = .* LIMIT").
		WithArgs(1).
		WillReturnRows(expenseRows().
			AddRow(1, now, "餐饮", 12.5, "午餐"))
	// 显式传 null 将备注清空为 NULL
	mock.ExpectExec("UPDATE `expenses` SET `comment`=.* WHERE `id` =").
		WithArgs(nil, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT .* FROM `expenses` WHERE `expenses`.`id` = .* LIMIT").
		WithArgs(1).
		WillReturnRows(expenseRows().
			AddRow(1, now, "餐饮", 12.5, nil))
	mock.ExpectCommit()

	router := setupExpenseRouter()
	w := doJSON(router, "PATCH", "/expenses/1", `{"comment":null}`)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Update_NoFields(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	router := setupExpenseRouter()

	// 空对象和只含未知键的对象都在进入仓储前被拦截，数据库零交互
	for _, body := range []string{`{}`, `{"foo":1,"date":"2024-01-01"}`} {
		w := doJSON(router, "PATCH", "/expenses/1", body)
		assert.Equal(t, 400, w.Code, "body: %s", body)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Update_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WithArgs(99).
		WillReturnRows(expenseRows())
	mock.ExpectRollback()

	router := setupExpenseRouter()
	w := doJSON(router, "PATCH", "/expenses/99", `{"amount":15.0}`)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Update_Validation(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := setupExpenseRouter()

	cases := []string{
		`{"amount":0}`,
		`{"amount":100001}`,
		`{"category":""}`,
		`{"category":"一二三四五六七八九十一二三四五六"}`,
		`{"comment":"` + string(bytes.Repeat([]byte("长"), 51)) + `"}`,
	}
	for _, body := range cases {
		w := doJSON(router, "PATCH", "/expenses/1", body)
		assert.Equal(t, 400, w.Code, "body: %s", body)
	}
}

func TestExpenseHandler_Delete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `expenses` WHERE `expenses`.`id` =").
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := setupExpenseRouter()
	w := doJSON(router, "DELETE", "/expenses/2", "")

	assert.Equal(t, 204, w.Code)
	assert.Empty(t, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Delete_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `expenses` WHERE `expenses`.`id` =").
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	router := setupExpenseRouter()
	w := doJSON(router, "DELETE", "/expenses/2", "")

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
