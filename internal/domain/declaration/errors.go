package declaration

import "errors"

var (
	ErrDeclarationNotFound     = errors.New("declaration not found")
	ErrInvalidStatusTransition = errors.New("invalid declaration status transition")
	ErrStructuralValidation    = errors.New("declaration has structural validation errors")
	ErrMissingEmployerIdentity = errors.New("employer identification parameters not configured")
	ErrDeclarationNotValidated = errors.New("declaration must be validated before transmission")
)
