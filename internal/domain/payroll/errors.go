package payroll

import "errors"

var (
	ErrRunNotFound       = errors.New("payroll run not found")
	ErrInvalidPeriod     = errors.New("invalid payroll period")
	ErrRunInProgress     = errors.New("a computation for this period is already in progress")
	ErrAggregateMismatch = errors.New("payroll run aggregates do not reconcile with lines")
)
