package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// DateLayout is the ISO layout used for dates on the wire and in URLs
const DateLayout = "2006-01-02"

// Date represents an ISO formatted calendar date (YYYY-MM-DD)
type Date string

// String returns the string representation
func (d Date) String() string {
	return string(d)
}

// Time parses the date into a time.Time in UTC
func (d Date) Time() (time.Time, error) {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "invalid date", goerr.V("date", string(d)))
	}
	return t, nil
}

// Validate validates the date format
func (d Date) Validate() error {
	if d == "" {
		return goerr.New("date is empty")
	}
	_, err := d.Time()
	return err
}

// NewDate creates a Date from time.Time
func NewDate(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// Country represents a country name as used by the EMBI dataset (e.g. "Perú")
type Country string

// String returns the string representation
func (c Country) String() string {
	return string(c)
}

// SessionID identifies a viewer session in logs
type SessionID string

// String returns the string representation
func (id SessionID) String() string {
	return string(id)
}

// NewSessionID creates a new SessionID using UUID v7
func NewSessionID() (SessionID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return SessionID(id.String()), nil
}
