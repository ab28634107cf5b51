package events

import "time"

const LeaveApplicationTopic = "hr.leave.application.v1"

const (
	LeaveApplicationApproved  = "leave_application_approved"
	LeaveApplicationCancelled = "leave_application_cancelled"
)

// LeaveApplicationEvent is published when approved leave starts or stops
// counting against a balance.
type LeaveApplicationEvent struct {
	EventType     string    `json:"event_type"`
	ApplicationID string    `json:"application_id"`
	ReferenceNo   string    `json:"reference_no"`
	CompanyID     string    `json:"company_id"`
	EmployeeID    string    `json:"employee_id"`
	LeaveTypeID   string    `json:"leave_type_id"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	WorkingDays   float64   `json:"working_days"`
	Status        string    `json:"status"`
	ActorID       string    `json:"actor_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}
