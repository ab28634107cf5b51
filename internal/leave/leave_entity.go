package leave

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

const (
	DurationFullDay          = "full_day"
	DurationHalfDayMorning   = "half_day_morning"
	DurationHalfDayAfternoon = "half_day_afternoon"
)

// ReferencePrefix is the counter type and prefix of reference numbers.
const ReferencePrefix = "LV"

type LeaveApplication struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_applications_company_status"`
	ReferenceNo string    `gorm:"type:varchar(30);not null"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_applications_employee_dates"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null"`

	StartDate    time.Time       `gorm:"type:date;not null"`
	EndDate      time.Time       `gorm:"type:date;not null"`
	DurationType string          `gorm:"type:varchar(30);not null;default:'full_day'"`
	WorkingDays  decimal.Decimal `gorm:"type:numeric(5,1);not null"`

	Reason             *string `gorm:"type:text"`
	ContactDuringLeave *string `gorm:"type:varchar(150)"`
	AttachmentURL      *string `gorm:"type:text"`
	Comments           *string `gorm:"type:text"`

	Status             string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_leave_applications_company_status"`
	CreatedBy          uuid.UUID  `gorm:"type:uuid;not null"`
	ApprovedBy         *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt         *time.Time
	RejectedBy         *uuid.UUID `gorm:"type:uuid"`
	RejectedAt         *time.Time
	RejectionReason    *string    `gorm:"type:text"`
	CancelledBy        *uuid.UUID `gorm:"type:uuid"`
	CancelledAt        *time.Time
	CancellationReason *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveApplication) TableName() string {
	return "leave_applications"
}

// Year is the balance year the application is charged to.
func (l LeaveApplication) Year() int {
	return l.StartDate.Year()
}
