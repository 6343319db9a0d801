package ledger

import (
	"sort"
	"strings"
	"time"

	"fintrack/internal/models"
)

// TypeAll is the wildcard accepted by FilterOptions.Type.
const TypeAll = "all"

// FilterOptions are the query criteria. All supplied criteria are combined
// with AND; zero values disable the corresponding filter.
type FilterOptions struct {
	Type   string     // "credit" or "debit"; "" or "all" keeps both
	Start  *time.Time // inclusive lower bound on the calendar date
	End    *time.Time // inclusive upper bound on the calendar date
	Search string     // case-insensitive substring of description or amount
}

// Summary holds the aggregate totals for a set of transactions, in cents.
type Summary struct {
	CreditCent  int64
	DebitCent   int64
	BalanceCent int64
}

// Filter returns the transactions matching opts, sorted by date descending
// with id descending as the tiebreak (newest created first). The input
// slice is never modified.
func Filter(txs []models.Transaction, opts FilterOptions) []models.Transaction {
	byType := opts.Type != "" && opts.Type != TypeAll
	query := strings.ToLower(strings.TrimSpace(opts.Search))

	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if byType && tx.Type != opts.Type {
			continue
		}
		date := DateOnly(tx.Date)
		if opts.Start != nil && date.Before(DateOnly(*opts.Start)) {
			continue
		}
		if opts.End != nil && date.After(DateOnly(*opts.End)) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(tx.Description), query) &&
			!strings.Contains(AmountString(tx.AmountCent), query) {
			continue
		}
		out = append(out, tx)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// Totals sums credits and debits over the given snapshot. Amounts are
// integer cents, so accumulation is exact regardless of input size.
func Totals(txs []models.Transaction) Summary {
	var s Summary
	for _, tx := range txs {
		switch tx.Type {
		case models.TypeCredit:
			s.CreditCent += tx.AmountCent
		case models.TypeDebit:
			s.DebitCent += tx.AmountCent
		}
	}
	s.BalanceCent = s.CreditCent - s.DebitCent
	return s
}
