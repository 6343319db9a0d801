package handler

import (
	"net/http"
	"sort"
	"time"

	"fintrack/internal/ledger"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/util"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves aggregated views for the dashboard charts.
type StatsHandler struct {
	Ledger *ledger.Store
}

func NewStatsHandler(store *ledger.Store) *StatsHandler {
	return &StatsHandler{Ledger: store}
}

type dailyStat struct {
	Date        string `json:"date"` // YYYY-MM-DD
	CreditCent  int64  `json:"credit_cent"`
	DebitCent   int64  `json:"debit_cent"`
	BalanceCent int64  `json:"balance_cent"`
	Credit      string `json:"credit"`
	Debit       string `json:"debit"`
	Balance     string `json:"balance"`
}

// Monthly returns per-day credit/debit/balance for one month plus the
// month totals. Month param: ?month=YYYY-MM, defaults to the current month.
func (h *StatsHandler) Monthly(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "User not logged in!")
		return
	}

	monthStr := c.Query("month")
	if monthStr == "" {
		monthStr = time.Now().Format("2006-01")
	}
	t, err := time.Parse("2006-01", monthStr)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Month must be YYYY-MM!")
		return
	}

	startOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	endOfMonth := startOfMonth.AddDate(0, 1, -1)

	txs := ledger.Filter(h.Ledger.GetAll(user.ID), ledger.FilterOptions{
		Start: &startOfMonth,
		End:   &endOfMonth,
	})
	totals := ledger.Totals(txs)

	dailyMap := make(map[string]*dailyStat)
	for i := range txs {
		tx := &txs[i]
		key := tx.Date.Format("2006-01-02")
		ds, ok := dailyMap[key]
		if !ok {
			ds = &dailyStat{Date: key}
			dailyMap[key] = ds
		}
		if tx.Type == models.TypeCredit {
			ds.CreditCent += tx.AmountCent
		} else {
			ds.DebitCent += tx.AmountCent
		}
	}

	daily := make([]dailyStat, 0, len(dailyMap))
	for _, ds := range dailyMap {
		ds.BalanceCent = ds.CreditCent - ds.DebitCent
		ds.Credit = ledger.FormatCent(ds.CreditCent)
		ds.Debit = ledger.FormatCent(ds.DebitCent)
		ds.Balance = ledger.FormatCent(ds.BalanceCent)
		daily = append(daily, *ds)
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date })

	util.Success(c, util.Response{
		"month":   monthStr,
		"daily":   daily,
		"summary": summaryResp(totals),
	})
}
