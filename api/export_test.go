package api

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportExpenseRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "amount", "description", "date", "category_id", "user_id",
		"created_at", "updated_at", "category_name", "category_color",
	}).
		AddRow("exp-1", 25.50, "Lunch", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			"food-category", "demo-user", time.Now(), time.Now(), "Food", "#EF4444").
		AddRow("exp-2", 8.00, "Bus ticket", time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
			"transport-category", "demo-user", time.Now(), time.Now(), "Transport", "#3B82F6")
}

func TestExportHandler_CSV(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WithArgs("demo-user").
		WillReturnRows(exportExpenseRows())

	router := gin.New()
	router.GET("/api/expenses/export", NewExportHandler(st).Export)

	req := httptest.NewRequest("GET", "/api/expenses/export?format=csv", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "expenses_demo-user.csv")

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF"), "CSV should start with a UTF-8 BOM")

	// the writer emits CRLF records for spreadsheet apps
	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(body, "\xEF\xBB\xBF")), "\r\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,Amount,Description,Category,Date,Created", lines[0])
	assert.Contains(t, lines[1], "exp-1,25.50,Lunch,Food,2024-01-15")
	assert.Contains(t, lines[2], "exp-2,8.00,Bus ticket,Transport,2024-01-14")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_JSON(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WithArgs("demo-user").
		WillReturnRows(exportExpenseRows())

	router := gin.New()
	router.GET("/api/expenses/export", NewExportHandler(st).Export)

	req := httptest.NewRequest("GET", "/api/expenses/export", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "demo-user", resp["userId"])
	assert.Equal(t, float64(2), resp["total_count"])
	assert.InDelta(t, 33.50, resp["total_amount"], 1e-9)
	assert.Len(t, resp["expenses"], 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_XLSX(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WithArgs("demo-user").
		WillReturnRows(exportExpenseRows())

	router := gin.New()
	router.GET("/api/expenses/export", NewExportHandler(st).Export)

	req := httptest.NewRequest("GET", "/api/expenses/export?format=xlsx", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "expenses_demo-user.xlsx")
	// xlsx files are zip archives
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_BadDate(t *testing.T) {
	st, _, cleanup := setupMockStore(t)
	defer cleanup()

	router := gin.New()
	router.GET("/api/expenses/export", NewExportHandler(st).Export)

	req := httptest.NewRequest("GET", "/api/expenses/export?start=15-01-2024", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid start date, expected YYYY-MM-DD", resp["error"])
}

func TestExportHandler_UnknownFormat(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WithArgs("demo-user").
		WillReturnRows(exportExpenseRows())

	router := gin.New()
	router.GET("/api/expenses/export", NewExportHandler(st).Export)

	req := httptest.NewRequest("GET", "/api/expenses/export?format=pdf", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Unknown format, expected csv, xlsx or json", resp["error"])
}
