package payroll

import (
	"testing"

	"github.com/caribhr/payroll-backend-go/internal/domain/payroll"
)

func sampleItem(gross, net string) payroll.PayrollItem {
	return payroll.PayrollItem{
		GrossPay:       dec(gross),
		SSEmployee:     dec("210"),
		SSEmployer:     dec("270"),
		MBEmployee:     dec("105"),
		MBEmployer:     dec("105"),
		EduLevy:        dec("61.46"),
		LoanInternal:   dec("150"),
		LoanThirdParty: dec("75"),
		NetPay:         dec(net),
	}
}

func TestFoldYTD_AccumulatesAcrossRuns(t *testing.T) {
	t.Parallel()

	var summary payroll.YTDSummary
	summary = FoldYTD(summary, sampleItem("3000", "2398.54"))
	summary = FoldYTD(summary, sampleItem("3000", "2398.54"))

	eq(t, "6000", summary.Gross)
	eq(t, "420", summary.SSEmployee)
	eq(t, "540", summary.SSEmployer)
	eq(t, "210", summary.MBEmployee)
	eq(t, "122.92", summary.EduLevy)
	eq(t, "450", summary.LoanRepaid)
	eq(t, "4797.08", summary.Net)
}

func TestRetractYTD_RestoresPriorTotals(t *testing.T) {
	t.Parallel()

	item := sampleItem("3000", "2398.54")

	var before payroll.YTDSummary
	before = FoldYTD(before, sampleItem("2500", "2000"))

	after := RetractYTD(FoldYTD(before, item), item)

	eq(t, before.Gross.String(), after.Gross)
	eq(t, before.SSEmployee.String(), after.SSEmployee)
	eq(t, before.EduLevy.String(), after.EduLevy)
	eq(t, before.LoanRepaid.String(), after.LoanRepaid)
	eq(t, before.Net.String(), after.Net)
}

func TestFoldYTD_OverriddenItemContributesPaidAmounts(t *testing.T) {
	t.Parallel()

	item := sampleItem("3000", "2398.54")
	overridden := ApplyOverride(item, dec("2500"), nil, "retro adjustment", "admin")

	var summary payroll.YTDSummary
	summary = FoldYTD(summary, overridden)

	// YTD reflects what was actually paid, not the computed figure.
	eq(t, "2500", summary.Net)
	eq(t, "3000", summary.Gross)
}
