package leaveconfig

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const YearKeyPrefix = "leave_config_"

func YearKey(year int) string {
	return fmt.Sprintf("%s%d", YearKeyPrefix, year)
}

type GlobalLeaveConfig struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID       `gorm:"type:uuid;index"`
	Key       string
	Value     json.RawMessage `gorm:"type:jsonb"`
	CreatedBy *uuid.UUID      `gorm:"type:uuid"`
	UpdatedBy *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (GlobalLeaveConfig) TableName() string {
	return "global_leave_configs"
}

// YearConfig is the value stored under leave_config_{year}.
type YearConfig struct {
	Year        int          `json:"year"`
	Allocations []Allocation `json:"allocations"`
}

type Allocation struct {
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName string  `json:"leave_type_name"`
	MaxDays       float64 `json:"max_days"`
}
