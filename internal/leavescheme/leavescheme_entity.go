package leavescheme

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LeaveScheme struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Description *string
	IsActive    bool
	CreatedBy   *uuid.UUID `gorm:"type:uuid"`
	UpdatedBy   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (LeaveScheme) TableName() string {
	return "leave_schemes"
}

// SchemeLeaveType is the allowance of one leave type inside a scheme.
type SchemeLeaveType struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SchemeID    uuid.UUID       `gorm:"type:uuid"`
	LeaveTypeID uuid.UUID       `gorm:"type:uuid"`
	DaysAllowed decimal.Decimal `gorm:"type:numeric(5,1)"`
	IsPaid      *bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SchemeLeaveType) TableName() string {
	return "scheme_leave_types"
}

type EmployeeLeaveScheme struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID  `gorm:"type:uuid"`
	EmployeeID    uuid.UUID  `gorm:"type:uuid"`
	SchemeID      uuid.UUID  `gorm:"type:uuid"`
	EffectiveFrom time.Time  `gorm:"type:date"`
	EffectiveTo   *time.Time `gorm:"type:date"`
	CreatedBy     *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (EmployeeLeaveScheme) TableName() string {
	return "employee_leave_schemes"
}

func (a EmployeeLeaveScheme) Window() Window {
	return Window{From: a.EffectiveFrom, To: a.EffectiveTo}
}

// ActiveScheme is the allowance table that applies to an employee on a date.
type ActiveScheme struct {
	SchemeID   uuid.UUID
	Name       string
	Allowances map[string]Allowance
}

type Allowance struct {
	Days   decimal.Decimal
	IsPaid *bool
}
