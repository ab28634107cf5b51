package leavetype

type CreateLeaveTypeRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Code        *string `json:"code" binding:"omitempty,max=20"`
	MaxDays     float64 `json:"max_days" binding:"gte=0,lte=365,halfday"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty,hexcolor,len=7"`
	IsPaid      *bool   `json:"is_paid"`
}

type UpdateLeaveTypeRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Code        *string `json:"code" binding:"omitempty,max=20"`
	MaxDays     float64 `json:"max_days" binding:"gte=0,lte=365,halfday"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty,hexcolor,len=7"`
	IsPaid      *bool   `json:"is_paid"`
	IsActive    *bool   `json:"is_active"`
}

type LeaveTypeResponse struct {
	ID          string  `json:"id"`
	CompanyID   string  `json:"company_id"`
	Name        string  `json:"name"`
	Code        *string `json:"code,omitempty"`
	MaxDays     float64 `json:"max_days"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	IsPaid      bool    `json:"is_paid"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
