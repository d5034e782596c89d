package domain

import "time"

// Chair represents a physical service point (a station) that can host
// exactly one booking at a time.
type Chair struct {
	ID     int64
	Name   string
	Active bool

	// SupportedServiceIDs - набор услуг, которые можно выполнить на этом кресле
	SupportedServiceIDs []int64

	// StaffIDs - закреплённые мастера (информационное поле, на планирование не влияет)
	StaffIDs []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Supports reports whether the chair can perform every requested service:
// the requested set must be a subset of the chair's capability set.
// An empty request imposes no constraint and is always supported.
func (c *Chair) Supports(serviceIDs []int64) bool {
	if len(serviceIDs) == 0 {
		return true
	}

	supported := make(map[int64]struct{}, len(c.SupportedServiceIDs))
	for _, id := range c.SupportedServiceIDs {
		supported[id] = struct{}{}
	}

	for _, id := range serviceIDs {
		if _, ok := supported[id]; !ok {
			return false
		}
	}
	return true
}
