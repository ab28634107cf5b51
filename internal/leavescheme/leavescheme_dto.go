package leavescheme

type CreateSchemeRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description"`
}

type UpdateSchemeRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type UpsertAllowanceRequest struct {
	DaysAllowed float64 `json:"days_allowed" binding:"gte=0,lte=365,halfday"`
	IsPaid      *bool   `json:"is_paid"`
}

type AssignSchemeRequest struct {
	EmployeeID    string  `json:"employee_id" binding:"required,uuid"`
	EffectiveFrom string  `json:"effective_from" binding:"required,datetime=2006-01-02"`
	EffectiveTo   *string `json:"effective_to" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateAssignmentRequest struct {
	EffectiveFrom string  `json:"effective_from" binding:"required,datetime=2006-01-02"`
	EffectiveTo   *string `json:"effective_to" binding:"omitempty,datetime=2006-01-02"`
}

type AllowanceResponse struct {
	LeaveTypeID string  `json:"leave_type_id"`
	DaysAllowed float64 `json:"days_allowed"`
	IsPaid      *bool   `json:"is_paid,omitempty"`
}

type SchemeResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description *string             `json:"description,omitempty"`
	IsActive    bool                `json:"is_active"`
	LeaveTypes  []AllowanceResponse `json:"leave_types,omitempty"`
	CreatedAt   string              `json:"created_at"`
}

type AssignmentResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	SchemeID      string  `json:"scheme_id"`
	EffectiveFrom string  `json:"effective_from"`
	EffectiveTo   *string `json:"effective_to"`
}
