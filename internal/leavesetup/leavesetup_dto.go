package leavesetup

import "go-hris-leave/internal/leavebalance"

type SetupResult struct {
	Year               int                         `json:"year"`
	LeaveTypesCreated  []string                    `json:"leave_types_created"`
	LeaveTypesExisting []string                    `json:"leave_types_existing"`
	ConfigKey          string                      `json:"config_key"`
	Population         leavebalance.PopulateResult `json:"population"`
}
