package specialpay

import (
	"time"

	"github.com/shopspring/decimal"
)

type EntryType string

const (
	EntryTypeVacation EntryType = "vacation"
	EntryTypeLeave    EntryType = "leave"
	EntryTypeHoliday  EntryType = "holiday"
)

func (t EntryType) Valid() bool {
	switch t {
	case EntryTypeVacation, EntryTypeLeave, EntryTypeHoliday:
		return true
	}
	return false
}

type EntryStatus string

const (
	EntryStatusPending  EntryStatus = "pending"
	EntryStatusApproved EntryStatus = "approved"
	EntryStatusRejected EntryStatus = "rejected"
)

// Entry is an approved-or-pending block of vacation, paid leave, or public
// holiday time. Only approved entries contribute to pay.
type Entry struct {
	ID           string
	EmployeeID   string
	Type         EntryType
	StartDate    time.Time
	EndDate      time.Time
	TotalHours   decimal.Decimal
	RateOverride *decimal.Decimal
	Status       EntryStatus
	Note         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Overlaps reports whether the entry's date range intersects [start, end].
func (e Entry) Overlaps(start, end time.Time) bool {
	return !e.EndDate.Before(start) && !e.StartDate.After(end)
}
