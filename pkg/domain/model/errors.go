package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrNotFound        = goerr.New("data not found")
	ErrCountryNotFound = goerr.New("country not found")
	ErrEmptyCatalog    = goerr.New("date catalog is empty")
	ErrIncompleteRange = goerr.New("start and end dates are required")
	ErrInvalidMode     = goerr.New("invalid download mode")
	ErrInvalidDate     = goerr.New("invalid date")
)
