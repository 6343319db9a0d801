package models

import "time"

// Transaction types. The set is closed: nothing else is ever persisted.
const (
	TypeCredit = "credit"
	TypeDebit  = "debit"
)

// Transaction is a single credit or debit record in a user's ledger.
// Amounts are stored in cents to avoid float drift; 12.34 = 1234 cents.
// ID, UserID and CreatedAt are immutable after creation; ID is assigned by
// the database in creation order and doubles as the stable tiebreak when
// two transactions share a date.
type Transaction struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null"`
	Type        string    `gorm:"size:16;index;not null"` // credit / debit
	AmountCent  int64     `gorm:"not null"`
	Description string    `gorm:"size:255;not null"`
	Date        time.Time `gorm:"index;not null"` // effective calendar date, midnight UTC
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
