package ledger

import (
	"sort"
	"sync"
	"time"

	"fintrack/internal/models"
)

// MemoryRepository is an in-memory implementation of Repository. It backs
// tests and proves the ledger does not depend on the SQL layer. IDs are
// assigned from a process-wide counter so they stay unique across users,
// and the mutex keeps read-modify-write sequences atomic per store.
type MemoryRepository struct {
	mu     sync.Mutex
	byID   map[uint]models.Transaction
	nextID uint
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[uint]models.Transaction)}
}

func (m *MemoryRepository) ListByUser(userID uint) ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var txs []models.Transaction
	for _, tx := range m.byID {
		if tx.UserID == userID {
			txs = append(txs, tx)
		}
	}
	// map iteration order is random; return in creation order
	sort.Slice(txs, func(i, j int) bool { return txs[i].ID < txs[j].ID })
	return txs, nil
}

func (m *MemoryRepository) Get(userID, id uint) (*models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx, ok := m.byID[id]
	if !ok || tx.UserID != userID {
		return nil, nil
	}
	return &tx, nil
}

func (m *MemoryRepository) Create(tx *models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	tx.ID = m.nextID
	now := time.Now()
	tx.CreatedAt = now
	tx.UpdatedAt = now
	m.byID[tx.ID] = *tx
	return nil
}

func (m *MemoryRepository) Update(tx *models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx.UpdatedAt = time.Now()
	m.byID[tx.ID] = *tx
	return nil
}

func (m *MemoryRepository) Delete(userID, id uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx, ok := m.byID[id]
	if !ok || tx.UserID != userID {
		return false, nil
	}
	delete(m.byID, id)
	return true, nil
}

var _ Repository = (*MemoryRepository)(nil)
