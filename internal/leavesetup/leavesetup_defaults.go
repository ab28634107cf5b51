package leavesetup

// DefaultLeaveType is one entry of the catalog seeded for a new company.
type DefaultLeaveType struct {
	Name        string
	Code        string
	MaxDays     float64
	IsPaid      bool
	Color       string
	Description string
}

var DefaultLeaveTypes = []DefaultLeaveType{
	{Name: "Casual Leave", Code: "CL", MaxDays: 6, IsPaid: true, Color: "#4CAF50", Description: "Short personal leave"},
	{Name: "Sick Leave", Code: "SL", MaxDays: 10, IsPaid: true, Color: "#F44336", Description: "Leave on medical grounds"},
	{Name: "Annual Leave", Code: "AL", MaxDays: 14, IsPaid: true, Color: "#2196F3", Description: "Planned yearly vacation"},
	{Name: "Unpaid Leave", Code: "UL", MaxDays: 0, IsPaid: false, Color: "#9E9E9E", Description: "Leave without pay"},
}
