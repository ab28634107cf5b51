package leavescheme

import "time"

// Window is an inclusive date range. A nil To never ends.
type Window struct {
	From time.Time
	To   *time.Time
}

func (w Window) Valid() bool {
	return w.To == nil || !w.To.Before(w.From)
}

func (w Window) Overlaps(o Window) bool {
	if w.To != nil && w.To.Before(o.From) {
		return false
	}
	if o.To != nil && o.To.Before(w.From) {
		return false
	}
	return true
}

func (w Window) Contains(day time.Time) bool {
	if day.Before(w.From) {
		return false
	}
	return w.To == nil || !day.After(*w.To)
}
