// Package leavebalancetest provides an in-memory balance store for tests
// that need ledger state across several operations.
package leavebalancetest

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"go-hris-leave/internal/leavebalance"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MemoryRepository applies the same guards as the SQL statements. Locks are
// not simulated: the guarded increment alone keeps used_days in range.
type MemoryRepository struct {
	mu   sync.Mutex
	rows map[uuid.UUID]leavebalance.LeaveBalance
}

var _ leavebalance.Repository = (*MemoryRepository)(nil)

func NewMemoryRepository(seed ...leavebalance.LeaveBalance) *MemoryRepository {
	m := &MemoryRepository{rows: make(map[uuid.UUID]leavebalance.LeaveBalance)}
	for _, b := range seed {
		if b.ID == uuid.Nil {
			b.ID = uuid.New()
		}
		m.rows[b.ID] = b
	}
	return m
}

func (m *MemoryRepository) WithTx(tx *sql.Tx) leavebalance.Repository {
	return m
}

// Get returns a copy of the row for the key.
func (m *MemoryRepository) Get(employeeID, leaveTypeID string, year int) (leavebalance.LeaveBalance, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.find(employeeID, leaveTypeID, year)
	return b, ok
}

func (m *MemoryRepository) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

func (m *MemoryRepository) find(employeeID, leaveTypeID string, year int) (leavebalance.LeaveBalance, bool) {
	for _, b := range m.rows {
		if b.EmployeeID.String() == employeeID && b.LeaveTypeID.String() == leaveTypeID && b.Year == year {
			return b, true
		}
	}
	return leavebalance.LeaveBalance{}, false
}

func (m *MemoryRepository) FindByID(ctx context.Context, companyID, id string) (*leavebalance.LeaveBalance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	b, ok := m.rows[key]
	if !ok || b.CompanyID.String() != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (m *MemoryRepository) FindByKey(ctx context.Context, companyID, employeeID, leaveTypeID string, year int) (*leavebalance.LeaveBalance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.find(employeeID, leaveTypeID, year)
	if !ok || b.CompanyID.String() != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (m *MemoryRepository) LockByKey(ctx context.Context, companyID, employeeID, leaveTypeID string, year int) (*leavebalance.LeaveBalance, error) {
	return m.FindByKey(ctx, companyID, employeeID, leaveTypeID, year)
}

func (m *MemoryRepository) LockByID(ctx context.Context, companyID, id string) (*leavebalance.LeaveBalance, error) {
	return m.FindByID(ctx, companyID, id)
}

func (m *MemoryRepository) FindByEmployee(ctx context.Context, companyID, employeeID string, year int) ([]leavebalance.LeaveBalance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []leavebalance.LeaveBalance
	for _, b := range m.rows {
		if b.CompanyID.String() == companyID && b.EmployeeID.String() == employeeID && b.Year == year {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LeaveTypeID.String() < out[j].LeaveTypeID.String() })
	return out, nil
}

func (m *MemoryRepository) FindExportRows(ctx context.Context, companyID string, year int) ([]leavebalance.ExportRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []leavebalance.ExportRow
	for _, b := range m.rows {
		if b.CompanyID.String() != companyID || b.Year != year {
			continue
		}
		out = append(out, leavebalance.ExportRow{
			EmployeeName:  b.EmployeeID.String(),
			LeaveTypeName: b.LeaveTypeID.String(),
			Year:          b.Year,
			AllocatedDays: b.AllocatedDays,
			UsedDays:      b.UsedDays,
			Source:        b.Source,
		})
	}
	return out, nil
}

func (m *MemoryRepository) InsertIfAbsent(ctx context.Context, b *leavebalance.LeaveBalance) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.find(b.EmployeeID.String(), b.LeaveTypeID.String(), b.Year); ok {
		return false, nil
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now()
	b.CreatedAt, b.UpdatedAt = now, now
	m.rows[b.ID] = *b
	return true, nil
}

func (m *MemoryRepository) IncrementUsed(ctx context.Context, id string, delta decimal.Decimal) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, err := uuid.Parse(id)
	if err != nil {
		return 0, nil
	}
	b, ok := m.rows[key]
	if !ok {
		return 0, nil
	}
	next := b.UsedDays.Add(delta)
	if next.IsNegative() || next.GreaterThan(b.AllocatedDays) {
		return 0, nil
	}
	b.UsedDays = next
	b.UpdatedAt = time.Now()
	m.rows[key] = b
	return 1, nil
}

func (m *MemoryRepository) UpdateAllocated(ctx context.Context, id string, allocated decimal.Decimal) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, err := uuid.Parse(id)
	if err != nil {
		return 0, nil
	}
	b, ok := m.rows[key]
	if !ok || b.UsedDays.GreaterThan(allocated) {
		return 0, nil
	}
	b.AllocatedDays = allocated
	b.UpdatedAt = time.Now()
	m.rows[key] = b
	return 1, nil
}
