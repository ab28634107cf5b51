package leavetype

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LeaveType struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID       `gorm:"type:uuid;index"`
	Name        string
	Code        *string
	MaxDays     decimal.Decimal `gorm:"type:numeric(5,1)"`
	Description *string
	Color       *string
	IsPaid      bool
	IsActive    bool
	CreatedBy   *uuid.UUID `gorm:"type:uuid"`
	UpdatedBy   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (LeaveType) TableName() string {
	return "leave_types"
}
