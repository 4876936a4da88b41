package response

import (
	"errors"
	"net/http"

	"github.com/issouftoure58-design/nexus-sub008/internal/domain/contribution"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/declaration"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/employee"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/ledger"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/payroll"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/worktime"
	"github.com/issouftoure58-design/nexus-sub008/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Worktime domain errors
	case errors.Is(err, worktime.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, worktime.ErrInvalidInterval):
		BadRequest(w, "Attendance interval is invalid", nil)
	case errors.Is(err, worktime.ErrMissingCalendarData):
		UnprocessableEntity(w, "MISSING_CALENDAR_DATA", "Holiday calendar data is missing for the requested period")

	// Contribution domain errors
	case errors.Is(err, contribution.ErrUnknownParameterSet):
		NotFound(w, "No social parameter set covers the requested date")
	case errors.Is(err, contribution.ErrInvalidParameterSet):
		UnprocessableEntity(w, "INVALID_PARAMETER_SET", "Social parameter set is invalid")
	case errors.Is(err, contribution.ErrNegativeGross):
		BadRequest(w, "Gross amount must be non-negative", nil)
	case errors.Is(err, contribution.ErrVersionExists):
		Conflict(w, "Parameter set version already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Payroll period is invalid", nil)
	case errors.Is(err, payroll.ErrRunInProgress):
		Conflict(w, "A payroll run for this period is already being computed")
	case errors.Is(err, payroll.ErrAggregateMismatch):
		UnprocessableEntity(w, "AGGREGATE_MISMATCH", "Payroll aggregates do not reconcile")

	// Ledger domain errors
	case errors.Is(err, ledger.ErrEntryNotFound):
		NotFound(w, "Ledger entries not found")
	case errors.Is(err, ledger.ErrUnmappedCategory):
		UnprocessableEntity(w, "UNMAPPED_CATEGORY", "Document category has no account mapping")
	case errors.Is(err, ledger.ErrIncompleteDocument):
		BadRequest(w, "Document is missing required fields", nil)
	case errors.Is(err, ledger.ErrUnbalancedEntries):
		UnprocessableEntity(w, "UNBALANCED_ENTRIES", "Entries violate the double-entry balance invariant")

	// Declaration domain errors
	case errors.Is(err, declaration.ErrDeclarationNotFound):
		NotFound(w, "Declaration not found")
	case errors.Is(err, declaration.ErrInvalidStatusTransition):
		Conflict(w, "Declaration status transition is not allowed")
	case errors.Is(err, declaration.ErrStructuralValidation):
		UnprocessableEntity(w, "STRUCTURAL_VALIDATION", "Declaration has unresolved error-severity issues")
	case errors.Is(err, declaration.ErrMissingEmployerIdentity):
		UnprocessableEntity(w, "MISSING_EMPLOYER_IDENTITY", "Employer identification is not configured")
	case errors.Is(err, declaration.ErrDeclarationNotValidated):
		Conflict(w, "Declaration must be validated before transmission")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
