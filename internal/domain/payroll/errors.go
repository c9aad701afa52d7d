package payroll

import "errors"

var (
	ErrRunNotFound        = errors.New("payroll run not found")
	ErrItemNotFound       = errors.New("payroll item not found")
	ErrDuplicateRunPeriod = errors.New("a payroll run already exists for this period")
	ErrRunNotCompleted    = errors.New("payroll run is not in a completed state")
	ErrRunAlreadyFinal    = errors.New("payroll run is already finalized")
	ErrRunFinalized       = errors.New("payroll run is finalized and cannot be modified")
	ErrInvalidPeriod      = errors.New("pay period end date is before start date")
	ErrNegativeOverride   = errors.New("net pay override must not be negative")
)
