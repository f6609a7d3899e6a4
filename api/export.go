package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/correia-jilson/pennywise-tracker/models"
	"github.com/correia-jilson/pennywise-tracker/store"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler serves expense exports.
type ExportHandler struct {
	store *store.Store
}

// NewExportHandler creates an export handler.
func NewExportHandler(s *store.Store) *ExportHandler {
	return &ExportHandler{store: s}
}

// Export writes the user's expenses as CSV, XLSX or JSON.
// @Summary Export expenses
// @Description Exports the user's expenses, optionally restricted to a date range, as csv, xlsx or json.
// @Tags export
// @Produce json
// @Param format query string false "Export format" Enums(csv,xlsx,json) default(json)
// @Param userId query string false "Owning user id" default(demo-user)
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} file "Exported data"
// @Failure 400 {object} ErrorResponse "Bad date or format"
// @Failure 500 {object} ErrorResponse "Store failure"
// @Router /api/expenses/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	userID := requestUserID(c)

	var start, end time.Time
	if v := c.Query("start"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			Fail(c, http.StatusBadRequest, "Invalid start date, expected YYYY-MM-DD")
			return
		}
		start = models.Day(t)
	}
	if v := c.Query("end"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			Fail(c, http.StatusBadRequest, "Invalid end date, expected YYYY-MM-DD")
			return
		}
		end = models.Day(t)
	}

	expenses, err := h.store.ListExpensesRange(userID, start, end)
	if err != nil {
		FailWithDetails(c, http.StatusInternalServerError, "Failed to fetch expenses", err)
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "csv":
		h.writeCSV(c, userID, expenses)
	case "xlsx":
		h.writeXLSX(c, userID, expenses)
	case "json":
		var total float64
		for _, e := range expenses {
			total += e.Amount
		}
		c.JSON(http.StatusOK, gin.H{
			"userId":       userID,
			"total_count":  len(expenses),
			"total_amount": total,
			"expenses":     expenses,
		})
	default:
		Fail(c, http.StatusBadRequest, "Unknown format, expected csv, xlsx or json")
	}
}

var exportHeader = []string{"ID", "Amount", "Description", "Category", "Date", "Created"}

func exportRow(e models.Expense) []string {
	return []string{
		e.ID,
		fmt.Sprintf("%.2f", e.Amount),
		e.Description,
		e.Category.Name,
		e.Date.Format("2006-01-02"),
		e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func (h *ExportHandler) writeCSV(c *gin.Context, userID string, expenses []models.Expense) {
	buf := new(bytes.Buffer)
	// BOM so spreadsheet apps pick up UTF-8
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	// CRLF records, matching the BOM's target audience of spreadsheet apps
	writer.UseCRLF = true
	if err := writer.Write(exportHeader); err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to generate CSV")
		return
	}
	for _, e := range expenses {
		if err := writer.Write(exportRow(e)); err != nil {
			Fail(c, http.StatusInternalServerError, "Failed to generate CSV")
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to generate CSV")
		return
	}

	filename := fmt.Sprintf("expenses_%s.csv", userID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *ExportHandler) writeXLSX(c *gin.Context, userID string, expenses []models.Expense) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Expenses"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	f.SetCellStyle(sheet, "A1", "F1", headerStyle)
	f.SetColWidth(sheet, "A", "A", 38)
	f.SetColWidth(sheet, "B", "F", 18)
	f.SetColWidth(sheet, "C", "C", 32)

	for row, e := range expenses {
		values := exportRow(e)
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if col == 1 {
				f.SetCellValue(sheet, cell, e.Amount)
				continue
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to generate XLSX")
		return
	}

	filename := fmt.Sprintf("expenses_%s.xlsx", userID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
