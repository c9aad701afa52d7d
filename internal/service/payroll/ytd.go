package payroll

import (
	"github.com/caribhr/payroll-backend-go/internal/domain/payroll"
)

// FoldYTD adds one payroll item's contribution to the employee's running
// year totals. Each item contributes exactly once per run.
func FoldYTD(prior payroll.YTDSummary, item payroll.PayrollItem) payroll.YTDSummary {
	prior.Gross = prior.Gross.Add(item.GrossPay)
	prior.SSEmployee = prior.SSEmployee.Add(item.SSEmployee)
	prior.SSEmployer = prior.SSEmployer.Add(item.SSEmployer)
	prior.MBEmployee = prior.MBEmployee.Add(item.MBEmployee)
	prior.MBEmployer = prior.MBEmployer.Add(item.MBEmployer)
	prior.EduLevy = prior.EduLevy.Add(item.EduLevy)
	prior.LoanRepaid = prior.LoanRepaid.Add(item.LoanInternal).Add(item.LoanThirdParty)
	prior.Net = prior.Net.Add(item.NetPay)
	return prior
}

// RetractYTD subtracts a previously folded item, restoring the totals that
// preceded it. Used when a run is deleted or an item is re-overridden.
func RetractYTD(current payroll.YTDSummary, item payroll.PayrollItem) payroll.YTDSummary {
	current.Gross = current.Gross.Sub(item.GrossPay)
	current.SSEmployee = current.SSEmployee.Sub(item.SSEmployee)
	current.SSEmployer = current.SSEmployer.Sub(item.SSEmployer)
	current.MBEmployee = current.MBEmployee.Sub(item.MBEmployee)
	current.MBEmployer = current.MBEmployer.Sub(item.MBEmployer)
	current.EduLevy = current.EduLevy.Sub(item.EduLevy)
	current.LoanRepaid = current.LoanRepaid.Sub(item.LoanInternal).Sub(item.LoanThirdParty)
	current.Net = current.Net.Sub(item.NetPay)
	return current
}
