package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// HourEntry is a single day's recorded working time for an employee. For
// private duty nurses StartTime carries the shift start used to price the
// shift; for everyone else only Hours matters.
type HourEntry struct {
	ID            string
	EmployeeID    string
	WorkDate      time.Time
	Hours         decimal.Decimal
	StartTime     *time.Time
	LunchExcluded bool
	CreatedAt     time.Time
}
