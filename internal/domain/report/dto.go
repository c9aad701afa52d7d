package report

import "github.com/shopspring/decimal"

// ACHRow is one direct-deposit instruction in an export batch.
type ACHRow struct {
	EmployeeCode      string          `json:"employee_code"`
	FullName          string          `json:"full_name"`
	BankName          string          `json:"bank_name"`
	BankAccountNumber string          `json:"bank_account_number"`
	Amount            decimal.Decimal `json:"amount"`
}

// ACHFlag marks an item excluded from the batch and why.
type ACHFlag struct {
	EmployeeCode string `json:"employee_code"`
	Reason       string `json:"reason"`
}

// ACHExport is a direct-deposit batch for one payroll run. Total equals the
// sum of the included rows' amounts; flagged items are not summed.
type ACHExport struct {
	BatchID string          `json:"batch_id"`
	RunID   string          `json:"run_id"`
	PayDate string          `json:"pay_date"`
	Rows    []ACHRow        `json:"rows"`
	Flagged []ACHFlag       `json:"flagged,omitempty"`
	Total   decimal.Decimal `json:"total"`
}

// DeductionsReport totals the statutory remittance figures for one run.
type DeductionsReport struct {
	RunID      string          `json:"run_id"`
	SSEmployee decimal.Decimal `json:"ss_employee"`
	SSEmployer decimal.Decimal `json:"ss_employer"`
	MBEmployee decimal.Decimal `json:"mb_employee"`
	MBEmployer decimal.Decimal `json:"mb_employer"`
	EduLevy    decimal.Decimal `json:"edu_levy"`
	Total      decimal.Decimal `json:"total"`
}
