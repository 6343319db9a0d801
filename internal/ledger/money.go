package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// maxAmount is the upper bound for a single transaction amount.
var maxAmount = decimal.NewFromInt(10_000_000)

// ParseAmountCent converts a user-supplied amount string into cents.
// Returns ErrInvalidAmount for non-numeric input, values <= 0 and values
// at or above the cap. More than two decimal places round half away from
// zero, so "0.005" still counts as a valid one-cent amount.
func ParseAmountCent(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if d.Cmp(maxAmount) >= 0 {
		return 0, ErrInvalidAmount
	}
	cent := d.Shift(2).Round(0).IntPart()
	if cent <= 0 {
		return 0, ErrInvalidAmount
	}
	return cent, nil
}

// FormatCent renders cents as a fixed two-decimal string, e.g. 1234 -> "12.34".
func FormatCent(cent int64) string {
	return decimal.New(cent, -2).StringFixed(2)
}

// AmountString renders cents with trailing zeros trimmed, e.g. 500000 ->
// "5000". This is the form free-text search matches against, so searching
// "5000" finds a 5000.00 transaction.
func AmountString(cent int64) string {
	return decimal.New(cent, -2).String()
}
