package specialpay

import "errors"

var (
	ErrEntryNotFound    = errors.New("special pay entry not found")
	ErrInvalidEntryType = errors.New("invalid special pay entry type")
	ErrInvalidDateRange = errors.New("entry end date is before start date")
)
