package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fintrack/internal/ledger"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler serves CSV and XLSX downloads of a user's ledger.
type ExportHandler struct {
	Ledger *ledger.Store
}

func NewExportHandler(store *ledger.Store) *ExportHandler {
	return &ExportHandler{Ledger: store}
}

// exportDate is the short localized date format used in exports.
func exportDate(t time.Time) string {
	return t.Format("02 Jan 2006")
}

func exportType(txType string) string {
	if txType == "" {
		return ""
	}
	return strings.ToUpper(txType[:1]) + txType[1:]
}

// exportRows returns the user's full ledger, newest first.
func (h *ExportHandler) exportRows(c *gin.Context) ([]models.Transaction, bool) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "User not logged in!")
		return nil, false
	}

	txs := ledger.Filter(h.Ledger.GetAll(user.ID), ledger.FilterOptions{})
	if len(txs) == 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "No transactions to export!")
		return nil, false
	}
	return txs, true
}

// ExportCSV streams the ledger as CSV with the header
// Date,Type,Amount,Description. encoding/csv applies standard quoting, so
// descriptions containing quotes or commas round-trip cleanly.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	txs, ok := h.exportRows(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"",
		time.Now().Format("2006-01-02")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"Date", "Type", "Amount", "Description"})
	for _, tx := range txs {
		writer.Write([]string{
			exportDate(tx.Date),
			exportType(tx.Type),
			ledger.AmountString(tx.AmountCent),
			tx.Description,
		})
	}
}

// ExportXLSX writes the same rows as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	txs, ok := h.exportRows(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	sheetName := "Transactions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to export transactions.")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Date", "Type", "Amount", "Description"}
	for i, name := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, name)
	}

	for idx, tx := range txs {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), exportDate(tx.Date))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), exportType(tx.Type))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), ledger.AmountString(tx.AmountCent))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), tx.Description)
	}

	f.SetColWidth(sheetName, "A", "A", 14)
	f.SetColWidth(sheetName, "B", "B", 10)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 30)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("2006-01-02")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to export transactions.")
	}
}
