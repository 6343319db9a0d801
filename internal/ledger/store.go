package ledger

import (
	"fmt"
	"strings"
	"time"

	"fintrack/internal/models"
)

// Store owns validation and CRUD over a user's transactions. Every
// operation takes the active user id explicitly; userID 0 means no active
// identity. Validation runs entirely in the write path, so everything the
// repository holds is already well-formed and queries never re-check it.
type Store struct {
	repo Repository
}

func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// Input carries the four user-editable transaction fields as submitted.
type Input struct {
	Type        string
	Amount      string
	Description string
	Date        string
}

// dateLayouts accepted for the effective date, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// validate checks an Input and returns the normalized fields.
func validate(in Input) (string, int64, string, time.Time, error) {
	typ := strings.TrimSpace(in.Type)
	desc := strings.TrimSpace(in.Description)
	dateStr := strings.TrimSpace(in.Date)

	if typ == "" || strings.TrimSpace(in.Amount) == "" || desc == "" || dateStr == "" {
		return "", 0, "", time.Time{}, ErrMissingField
	}
	if typ != models.TypeCredit && typ != models.TypeDebit {
		return "", 0, "", time.Time{}, ErrInvalidType
	}
	cent, err := ParseAmountCent(in.Amount)
	if err != nil {
		return "", 0, "", time.Time{}, err
	}
	var date time.Time
	parsed := false
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			date = DateOnly(t)
			parsed = true
			break
		}
	}
	if !parsed {
		return "", 0, "", time.Time{}, ErrInvalidDate
	}
	return typ, cent, desc, date, nil
}

// Add validates the input and persists a new transaction for userID.
func (s *Store) Add(userID uint, in Input) (*models.Transaction, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}
	typ, cent, desc, date, err := validate(in)
	if err != nil {
		return nil, err
	}
	tx := &models.Transaction{
		UserID:      userID,
		Type:        typ,
		AmountCent:  cent,
		Description: desc,
		Date:        date,
	}
	if err := s.repo.Create(tx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return tx, nil
}

// Update replaces the mutable fields of an existing transaction. ID, owner
// and creation time never change.
func (s *Store) Update(userID, id uint, in Input) (*models.Transaction, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}
	typ, cent, desc, date, err := validate(in)
	if err != nil {
		return nil, err
	}
	tx, err := s.repo.Get(userID, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if tx == nil {
		return nil, ErrNotFound
	}
	tx.Type = typ
	tx.AmountCent = cent
	tx.Description = desc
	tx.Date = date
	if err := s.repo.Update(tx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return tx, nil
}

// Delete removes a transaction owned by userID.
func (s *Store) Delete(userID, id uint) error {
	if userID == 0 {
		return ErrNotAuthenticated
	}
	found, err := s.repo.Delete(userID, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// GetByID returns the transaction or nil. Absence, a missing identity and
// a failed read all come back as nil: reads degrade silently.
func (s *Store) GetByID(userID, id uint) *models.Transaction {
	if userID == 0 {
		return nil
	}
	tx, err := s.repo.Get(userID, id)
	if err != nil {
		return nil
	}
	return tx
}

// GetAll returns the user's full unfiltered collection. A missing identity
// or a failed read yields an empty slice, never an error.
func (s *Store) GetAll(userID uint) []models.Transaction {
	if userID == 0 {
		return []models.Transaction{}
	}
	txs, err := s.repo.ListByUser(userID)
	if err != nil || txs == nil {
		return []models.Transaction{}
	}
	return txs
}

// DateOnly truncates t to its calendar date at midnight UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
