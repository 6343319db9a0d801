package ledger

import (
	"errors"
	"testing"

	"fintrack/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Transaction{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// The Store must behave identically on the gorm repository and the memory
// repository; this runs the core flows against real SQLite.
func TestStoreOnGormRepository(t *testing.T) {
	store := NewStore(NewGormRepository(openTestDB(t)))

	credit, err := store.Add(1, Input{Type: "credit", Amount: "5000", Description: "Salary", Date: "2024-01-01"})
	if err != nil {
		t.Fatalf("Add(credit) error = %v", err)
	}
	debit, err := store.Add(1, Input{Type: "debit", Amount: "1200", Description: "Groceries", Date: "2024-01-05"})
	if err != nil {
		t.Fatalf("Add(debit) error = %v", err)
	}
	if credit.ID == debit.ID {
		t.Errorf("ids not unique: %d", credit.ID)
	}
	if debit.ID < credit.ID {
		t.Errorf("ids not in creation order: %d then %d", credit.ID, debit.ID)
	}

	totals := Totals(store.GetAll(1))
	if totals.CreditCent != 500000 || totals.DebitCent != 120000 || totals.BalanceCent != 380000 {
		t.Errorf("Totals = %+v, want 500000/120000/380000", totals)
	}

	if _, err := store.Update(1, debit.ID, Input{Type: "debit", Amount: "1300", Description: "Groceries", Date: "2024-01-05"}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	got := store.GetByID(1, debit.ID)
	if got == nil || got.AmountCent != 130000 {
		t.Errorf("GetByID() after update = %+v, want 130000 cents", got)
	}

	// other users never see these rows
	if n := len(store.GetAll(2)); n != 0 {
		t.Errorf("GetAll(other user) = %d rows, want 0", n)
	}

	if err := store.Delete(1, credit.ID); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
	if err := store.Delete(1, credit.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}
