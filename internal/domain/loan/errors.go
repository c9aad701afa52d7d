package loan

import "errors"

var (
	ErrLoanNotFound       = errors.New("loan not found")
	ErrLoanNotActive      = errors.New("loan is not active")
	ErrInvalidLoanType    = errors.New("invalid loan type")
	ErrInvalidInstallment = errors.New("loan installment must be positive")
	ErrInvalidAmount      = errors.New("loan amount must be positive")
	ErrMissingPayee       = errors.New("third-party loans require a payee")
)
