package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const StatusActive = "active"

type Employee struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID        uuid.UUID  `gorm:"type:uuid;index"`
	EmployeeNumber   string     `gorm:"type:varchar(30)"`
	DepartmentID     *uuid.UUID `gorm:"type:uuid"`
	PositionID       *uuid.UUID `gorm:"type:uuid"`
	FullName         string
	Email            string `gorm:"uniqueIndex"`
	EmploymentStatus string `gorm:"type:varchar(20);default:'active'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
