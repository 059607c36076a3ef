package model

import (
	"github.com/secmon-lab/embiscope/pkg/domain/types"
)

// DateCatalog is the ordered (ascending) list of dates for which map data exists.
// It is immutable once created.
type DateCatalog struct {
	dates []types.Date
}

// NewDateCatalog creates a catalog from dates in ascending order
func NewDateCatalog(dates []types.Date) (*DateCatalog, error) {
	if len(dates) == 0 {
		return nil, ErrEmptyCatalog
	}

	copied := make([]types.Date, len(dates))
	copy(copied, dates)
	return &DateCatalog{dates: copied}, nil
}

// Len returns the number of dates
func (c *DateCatalog) Len() int {
	return len(c.dates)
}

// At returns the date at index i. ok is false when i is out of range.
func (c *DateCatalog) At(i int) (types.Date, bool) {
	if i < 0 || i >= len(c.dates) {
		return "", false
	}
	return c.dates[i], true
}

// First returns the oldest date
func (c *DateCatalog) First() types.Date {
	return c.dates[0]
}

// Last returns the most recent date
func (c *DateCatalog) Last() types.Date {
	return c.dates[len(c.dates)-1]
}

// LastIndex returns the index of the most recent date
func (c *DateCatalog) LastIndex() int {
	return len(c.dates) - 1
}

// Clamp bounds i to [0, LastIndex()]
func (c *DateCatalog) Clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > c.LastIndex() {
		return c.LastIndex()
	}
	return i
}

// IndexOf returns the index of date, or -1
func (c *DateCatalog) IndexOf(date types.Date) int {
	for i, d := range c.dates {
		if d == date {
			return i
		}
	}
	return -1
}

// Dates returns a copy of all dates
func (c *DateCatalog) Dates() []types.Date {
	copied := make([]types.Date, len(c.dates))
	copy(copied, c.dates)
	return copied
}
