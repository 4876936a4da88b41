package contribution

import "errors"

var (
	ErrUnknownParameterSet = errors.New("no social parameter set covers the requested period")
	ErrInvalidParameterSet = errors.New("social parameter set is invalid")
	ErrNegativeGross       = errors.New("gross salary must not be negative")
	ErrVersionExists       = errors.New("parameter set version already exists")
)
