package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/caribhr/payroll-backend-go/internal/domain/payroll"
)

// ApplyOverride replaces the item's net pay, and optionally its gross, with
// administrator-supplied values. The computed originals stay on the item for
// audit. The first override captures the originals; later overrides keep them.
func ApplyOverride(item payroll.PayrollItem, net decimal.Decimal, gross *decimal.Decimal, reason, appliedBy string) payroll.PayrollItem {
	if !item.Overridden {
		item.OriginalNetPay = item.NetPay
		item.OriginalGrossPay = item.GrossPay
	}

	item.Overridden = true
	item.OverrideReason = reason
	item.OverrideBy = appliedBy
	item.NetPay = roundMoney(net)
	if gross != nil {
		item.GrossPay = roundMoney(*gross)
	}

	return item
}
