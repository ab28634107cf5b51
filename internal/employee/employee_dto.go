package employee

type EmployeeResponse struct {
	ID               string `json:"id"`
	EmployeeNumber   string `json:"employee_number"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	CompanyID        string `json:"company_id"`
	DepartmentID     string `json:"department_id,omitempty"`
	PositionID       string `json:"position_id,omitempty"`
	EmploymentStatus string `json:"employment_status"`
}
