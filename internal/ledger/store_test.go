package ledger

import (
	"errors"
	"testing"
	"time"

	"fintrack/internal/models"
)

func validInput() Input {
	return Input{
		Type:        "credit",
		Amount:      "5000",
		Description: "Salary",
		Date:        "2024-01-01",
	}
}

func TestAdd_RoundTrip(t *testing.T) {
	store := NewStore(NewMemoryRepository())
	before := time.Now()

	tx, err := store.Add(1, validInput())
	if err != nil {
		t.Fatalf("Add() error = %v, want nil", err)
	}
	if tx.ID == 0 {
		t.Error("Add() returned zero id")
	}
	if tx.UserID != 1 {
		t.Errorf("Add() UserID = %d, want 1", tx.UserID)
	}
	if tx.Type != "credit" || tx.AmountCent != 500000 || tx.Description != "Salary" {
		t.Errorf("Add() stored %+v, want credit/500000/Salary", tx)
	}
	if got := tx.Date.Format("2006-01-02"); got != "2024-01-01" {
		t.Errorf("Add() Date = %s, want 2024-01-01", got)
	}
	if tx.CreatedAt.Before(before) {
		t.Errorf("Add() CreatedAt = %v, before call time %v", tx.CreatedAt, before)
	}

	got := store.GetByID(1, tx.ID)
	if got == nil {
		t.Fatal("GetByID() = nil after Add")
	}
	if got.ID != tx.ID || got.AmountCent != tx.AmountCent || got.Description != tx.Description {
		t.Errorf("GetByID() = %+v, want %+v", got, tx)
	}
}

func TestAdd_NotAuthenticated(t *testing.T) {
	store := NewStore(NewMemoryRepository())

	_, err := store.Add(0, validInput())
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("Add() with no user error = %v, want ErrNotAuthenticated", err)
	}
}

func TestAdd_MissingFields(t *testing.T) {
	store := NewStore(NewMemoryRepository())

	cases := []Input{
		{Type: "", Amount: "10", Description: "x", Date: "2024-01-01"},
		{Type: "credit", Amount: "", Description: "x", Date: "2024-01-01"},
		{Type: "credit", Amount: "10", Description: "", Date: "2024-01-01"},
		{Type: "credit", Amount: "10", Description: "   ", Date: "2024-01-01"},
		{Type: "credit", Amount: "10", Description: "x", Date: ""},
	}
	for i, in := range cases {
		if _, err := store.Add(1, in); !errors.Is(err, ErrMissingField) {
			t.Errorf("case %d: Add() error = %v, want ErrMissingField", i, err)
		}
	}
	if got := len(store.GetAll(1)); got != 0 {
		t.Errorf("collection size = %d after rejected adds, want 0", got)
	}
}

func TestAdd_InvalidType(t *testing.T) {
	store := NewStore(NewMemoryRepository())

	in := validInput()
	in.Type = "transfer"
	if _, err := store.Add(1, in); !errors.Is(err, ErrInvalidType) {
		t.Errorf("Add() error = %v, want ErrInvalidType", err)
	}
}

func TestAdd_InvalidAmount(t *testing.T) {
	store := NewStore(NewMemoryRepository())

	for _, amount := range []string{"0", "-5", "abc", "12.x", "99999999"} {
		in := validInput()
		in.Amount = amount
		if _, err := store.Add(1, in); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Add(amount=%q) error = %v, want ErrInvalidAmount", amount, err)
		}
	}
	if got := len(store.GetAll(1)); got != 0 {
		t.Errorf("collection size = %d after rejected adds, want 0", got)
	}
}

func TestAdd_InvalidDate(t *testing.T) {
	store := NewStore(NewMemoryRepository())

	in := validInput()
	in.Date = "01/02/2024"
	if _, err := store.Add(1, in); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Add() error = %v, want ErrInvalidDate", err)
	}
}

func TestUpdate_ReplacesMutableFieldsOnly(t *testing.T) {
	store := NewStore(NewMemoryRepository())

	created, err := store.Add(1, validInput())
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	updated, err := store.Update(1, created.ID, Input{
		Type:        "debit",
		Amount:      "1200",
		Description: "Groceries",
		Date:        "2024-01-05",
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Type != "debit" || updated.AmountCent != 120000 || updated.Description != "Groceries" {
		t.Errorf("Update() stored %+v, want debit/120000/Groceries", updated)
	}
	if updated.ID != created.ID {
		t.Errorf("Update() changed id: %d -> %d", created.ID, updated.ID)
	}
	if updated.UserID != created.UserID {
		t.Errorf("Update() changed owner: %d -> %d", created.UserID, updated.UserID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("Update() changed CreatedAt: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	store := NewStore(NewMemoryRepository())
	if _, err := store.Add(1, validInput()); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	_, err := store.Update(1, 999, validInput())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(unknown id) error = %v, want ErrNotFound", err)
	}
	if got := len(store.GetAll(1)); got != 1 {
		t.Errorf("collection size = %d after failed update, want 1", got)
	}
}

func TestDelete(t *testing.T) {
	store := NewStore(NewMemoryRepository())

	tx, err := store.Add(1, validInput())
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := store.Delete(1, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(unknown id) error = %v, want ErrNotFound", err)
	}
	if err := store.Delete(1, tx.ID); err != nil {
		t.Errorf("Delete() error = %v, want nil", err)
	}
	if got := len(store.GetAll(1)); got != 0 {
		t.Errorf("collection size = %d after delete, want 0", got)
	}
	if err := store.Delete(1, tx.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestCrossUserIsolation(t *testing.T) {
	store := NewStore(NewMemoryRepository())

	tx, err := store.Add(1, validInput())
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if got := len(store.GetAll(2)); got != 0 {
		t.Errorf("GetAll(other user) = %d transactions, want 0", got)
	}
	if got := store.GetByID(2, tx.ID); got != nil {
		t.Errorf("GetByID(other user) = %+v, want nil", got)
	}
	if err := store.Delete(2, tx.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(other user) error = %v, want ErrNotFound", err)
	}
	if _, err := store.Update(2, tx.ID, validInput()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(other user) error = %v, want ErrNotFound", err)
	}
	// the owner still sees it
	if got := store.GetByID(1, tx.ID); got == nil {
		t.Error("GetByID(owner) = nil, want transaction")
	}
}

// brokenRepo simulates a failing durable store.
type brokenRepo struct{}

var errBroken = errors.New("disk on fire")

func (brokenRepo) ListByUser(uint) ([]models.Transaction, error) { return nil, errBroken }
func (brokenRepo) Get(uint, uint) (*models.Transaction, error)   { return nil, errBroken }
func (brokenRepo) Create(*models.Transaction) error              { return errBroken }
func (brokenRepo) Update(*models.Transaction) error              { return errBroken }
func (brokenRepo) Delete(uint, uint) (bool, error)               { return false, errBroken }

func TestStorageFailure(t *testing.T) {
	store := NewStore(brokenRepo{})

	// writes surface ErrStorage
	if _, err := store.Add(1, validInput()); !errors.Is(err, ErrStorage) {
		t.Errorf("Add() error = %v, want ErrStorage", err)
	}
	if _, err := store.Update(1, 1, validInput()); !errors.Is(err, ErrStorage) {
		t.Errorf("Update() error = %v, want ErrStorage", err)
	}
	if err := store.Delete(1, 1); !errors.Is(err, ErrStorage) {
		t.Errorf("Delete() error = %v, want ErrStorage", err)
	}

	// reads degrade to empty results
	if got := store.GetAll(1); len(got) != 0 {
		t.Errorf("GetAll() on broken store = %d transactions, want 0", len(got))
	}
	if got := store.GetByID(1, 1); got != nil {
		t.Errorf("GetByID() on broken store = %+v, want nil", got)
	}
}
