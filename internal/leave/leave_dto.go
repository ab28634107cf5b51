package leave

type SubmitLeaveRequest struct {
	LeaveTypeID        string `json:"leave_type_id" binding:"required,uuid"`
	EmployeeID         string `json:"employee_id" binding:"omitempty,uuid"`
	StartDate          string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate            string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Reason             string `json:"reason" binding:"max=1000"`
	ContactDuringLeave string `json:"contact_during_leave" binding:"max=150"`
	AttachmentURL      string `json:"attachment_url" binding:"omitempty,url"`
	LeaveDurationType  string `json:"leave_duration_type" binding:"omitempty,oneof=full_day half_day_morning half_day_afternoon"`
}

type ApproveLeaveRequest struct {
	Comments string `json:"comments" binding:"max=500"`
}

type RejectLeaveRequest struct {
	RejectionReason string `json:"rejection_reason" binding:"max=500"`
}

type CancelLeaveRequest struct {
	CancellationReason string `json:"cancellation_reason" binding:"max=500"`
}

// ListFilter narrows GetAll. Zero values are ignored.
type ListFilter struct {
	Status     string
	EmployeeID string
	Year       int
	Page       int
	PageSize   int
}

type LeaveResponse struct {
	ID                 string  `json:"id"`
	ReferenceNo        string  `json:"reference_no"`
	CompanyID          string  `json:"company_id"`
	EmployeeID         string  `json:"employee_id"`
	LeaveTypeID        string  `json:"leave_type_id"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	LeaveDurationType  string  `json:"leave_duration_type"`
	WorkingDays        float64 `json:"working_days"`
	Reason             *string `json:"reason,omitempty"`
	ContactDuringLeave *string `json:"contact_during_leave,omitempty"`
	AttachmentURL      *string `json:"attachment_url,omitempty"`
	Comments           *string `json:"comments,omitempty"`
	Status             string  `json:"status"`
	CreatedBy          string  `json:"created_by"`
	ApprovedBy         *string `json:"approved_by,omitempty"`
	ApprovedAt         *string `json:"approved_at,omitempty"`
	RejectedBy         *string `json:"rejected_by,omitempty"`
	RejectedAt         *string `json:"rejected_at,omitempty"`
	RejectionReason    *string `json:"rejection_reason,omitempty"`
	CancelledBy        *string `json:"cancelled_by,omitempty"`
	CancelledAt        *string `json:"cancelled_at,omitempty"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`
	CreatedAt          string  `json:"created_at"`
}
