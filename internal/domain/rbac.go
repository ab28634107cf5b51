package domain

import "sort"

// Capabilities is the pre-resolved permission set of one employee inside
// one company, keyed by "resource:action".
type Capabilities map[string]struct{}

func CapabilityKey(resource, action string) string {
	return resource + ":" + action
}

func NewCapabilities(keys ...string) Capabilities {
	c := make(Capabilities, len(keys))
	for _, k := range keys {
		c[k] = struct{}{}
	}
	return c
}

func (c Capabilities) Has(resource, action string) bool {
	if c == nil {
		return false
	}
	_, ok := c[CapabilityKey(resource, action)]
	return ok
}

func (c Capabilities) List() []string {
	out := make([]string, 0, len(c))
	for k := range c {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Resources and actions guarded by the leave API.
const (
	ResourceLeaveType        = "leave_type"
	ResourceLeaveConfig      = "leave_config"
	ResourceLeaveScheme      = "leave_scheme"
	ResourceLeaveBalance     = "leave_balance"
	ResourceLeaveApplication = "leave_application"
	ResourceLeaveSetup       = "leave_setup"
	ResourceEmployee         = "employee"

	ActionRead     = "read"
	ActionCreate   = "create"
	ActionManage   = "manage"
	ActionApprove  = "approve"
	ActionPopulate = "populate"
	ActionAdjust   = "adjust"
)
