package rates

import "errors"

var (
	ErrNoActiveRateTable = errors.New("no active statutory rate table")
)
