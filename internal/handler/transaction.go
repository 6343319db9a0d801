package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fintrack/internal/ledger"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/util"

	"github.com/gin-gonic/gin"
)

// TransactionHandler serves the transaction CRUD and list endpoints. All
// ledger semantics live in ledger.Store / ledger.Filter; this layer only
// parses requests and shapes responses.
type TransactionHandler struct {
	Ledger   *ledger.Store
	PageSize int
}

func NewTransactionHandler(store *ledger.Store, pageSize int) *TransactionHandler {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &TransactionHandler{Ledger: store, PageSize: pageSize}
}

type transactionReq struct {
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

func (r transactionReq) input() ledger.Input {
	return ledger.Input{
		Type:        r.Type,
		Amount:      r.Amount,
		Description: r.Description,
		Date:        r.Date,
	}
}

type transactionResp struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	AmountCent  int64     `json:"amount_cent"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

func toTransactionResp(tx *models.Transaction) transactionResp {
	return transactionResp{
		ID:          tx.ID,
		Type:        tx.Type,
		AmountCent:  tx.AmountCent,
		Amount:      ledger.FormatCent(tx.AmountCent),
		Description: tx.Description,
		Date:        tx.Date.Format("2006-01-02"),
		CreatedAt:   tx.CreatedAt,
	}
}

func summaryResp(s ledger.Summary) gin.H {
	return gin.H{
		"credit_cent":  s.CreditCent,
		"credit":       ledger.FormatCent(s.CreditCent),
		"debit_cent":   s.DebitCent,
		"debit":        ledger.FormatCent(s.DebitCent),
		"balance_cent": s.BalanceCent,
		"balance":      ledger.FormatCent(s.BalanceCent),
	}
}

// writeLedgerError maps a ledger error onto the response envelope.
func writeLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotAuthenticated):
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "User not logged in!")
	case errors.Is(err, ledger.ErrMissingField):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Please fill in all fields!")
	case errors.Is(err, ledger.ErrInvalidType):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid transaction type!")
	case errors.Is(err, ledger.ErrInvalidAmount):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Amount must be a positive number!")
	case errors.Is(err, ledger.ErrInvalidDate):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid date!")
	case errors.Is(err, ledger.ErrNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "Transaction not found!")
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Something went wrong. Please try again.")
	}
}

func (h *TransactionHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "User not logged in!")
		return
	}

	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Please fill in all fields!")
		return
	}

	tx, err := h.Ledger.Add(user.ID, req.input())
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	util.Success(c, util.Response{
		"message":     "Transaction added successfully!",
		"transaction": toTransactionResp(tx),
	})
}

func (h *TransactionHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "User not logged in!")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid transaction id!")
		return
	}

	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Please fill in all fields!")
		return
	}

	tx, err := h.Ledger.Update(user.ID, uint(id), req.input())
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	util.Success(c, util.Response{
		"message":     "Transaction updated successfully!",
		"transaction": toTransactionResp(tx),
	})
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "User not logged in!")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid transaction id!")
		return
	}

	if err := h.Ledger.Delete(user.ID, uint(id)); err != nil {
		writeLedgerError(c, err)
		return
	}

	util.Success(c, util.Response{
		"message": "Transaction deleted successfully!",
	})
}

func (h *TransactionHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "User not logged in!")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid transaction id!")
		return
	}

	tx := h.Ledger.GetByID(user.ID, uint(id))
	if tx == nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "Transaction not found!")
		return
	}

	util.Success(c, util.Response{
		"transaction": toTransactionResp(tx),
	})
}

// List returns the filtered transaction list plus totals over the whole
// filtered set. Query params: type, start, end, q, page, page_size.
func (h *TransactionHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "User not logged in!")
		return
	}

	opts := ledger.FilterOptions{
		Type:   c.Query("type"),
		Search: c.Query("q"),
	}

	if startStr := c.Query("start"); startStr != "" {
		t, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Start date must be YYYY-MM-DD!")
			return
		}
		opts.Start = &t
	}
	if endStr := c.Query("end"); endStr != "" {
		t, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "End date must be YYYY-MM-DD!")
			return
		}
		opts.End = &t
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(h.PageSize)))
	if size <= 0 || size > 100 {
		size = h.PageSize
	}

	filtered := ledger.Filter(h.Ledger.GetAll(user.ID), opts)
	totals := ledger.Totals(filtered)

	start := (page - 1) * size
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + size
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]transactionResp, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, toTransactionResp(&filtered[i]))
	}

	util.Success(c, util.Response{
		"items":   items,
		"total":   len(filtered),
		"page":    page,
		"size":    size,
		"summary": summaryResp(totals),
	})
}
