package leavebalance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Allocation sources.
const (
	SourceGlobal    = "global"
	SourceScheme    = "scheme"
	SourceLeaveType = "leave_type"
)

type LeaveBalance struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID     uuid.UUID       `gorm:"type:uuid;index"`
	EmployeeID    uuid.UUID       `gorm:"type:uuid"`
	LeaveTypeID   uuid.UUID       `gorm:"type:uuid"`
	Year          int
	AllocatedDays decimal.Decimal `gorm:"type:numeric(5,1)"`
	UsedDays      decimal.Decimal `gorm:"type:numeric(5,1)"`
	Source        string
	SchemeID      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}

// RemainingDays is derived on every call and never persisted.
func (b LeaveBalance) RemainingDays() decimal.Decimal {
	return Remaining(b)
}

// ExportRow is a balance joined with the names shown in the xlsx export.
type ExportRow struct {
	EmployeeNumber string
	EmployeeName   string
	LeaveTypeName  string
	Year           int
	AllocatedDays  decimal.Decimal
	UsedDays       decimal.Decimal
	Source         string
}
