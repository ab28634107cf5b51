package leavebalance

type AdjustAllocationRequest struct {
	AllocatedDays *float64 `json:"allocated_days" binding:"required,gte=0,lte=365,halfday"`
}

type BalanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	LeaveTypeID   string  `json:"leave_type_id"`
	Year          int     `json:"year"`
	AllocatedDays float64 `json:"allocated_days"`
	UsedDays      float64 `json:"used_days"`
	RemainingDays float64 `json:"remaining_days"`
	Source        string  `json:"source"`
	SchemeID      string  `json:"scheme_id,omitempty"`
}

type PopulateResult struct {
	Year              int      `json:"year"`
	Employees         int      `json:"employees"`
	Created           int      `json:"created"`
	Skipped           int      `json:"skipped"`
	Failed            int      `json:"failed"`
	FailedEmployeeIDs []string `json:"failed_employee_ids,omitempty"`
}
