package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrEmployeeCodeExists      = errors.New("employee code already exists")
	ErrInvalidClassification   = errors.New("unknown employee classification")
	ErrInvalidPayFrequency     = errors.New("unknown pay frequency")
	ErrMissingBaseCompensation = errors.New("employee has no base compensation for its classification")
)
