package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/issouftoure58-design/nexus-sub008/internal/domain/contribution"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/declaration"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/ledger"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/payroll"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/worktime"
	"github.com/issouftoure58-design/nexus-sub008/internal/pkg/validator"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandleError_SentinelMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"run not found", payroll.ErrRunNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"run in progress", payroll.ErrRunInProgress, http.StatusConflict, "CONFLICT"},
		{"aggregate mismatch", payroll.ErrAggregateMismatch, http.StatusUnprocessableEntity, "AGGREGATE_MISMATCH"},
		{"missing calendar", worktime.ErrMissingCalendarData, http.StatusUnprocessableEntity, "MISSING_CALENDAR_DATA"},
		{"unknown parameter set", contribution.ErrUnknownParameterSet, http.StatusNotFound, "NOT_FOUND"},
		{"version exists", contribution.ErrVersionExists, http.StatusConflict, "CONFLICT"},
		{"unbalanced entries", ledger.ErrUnbalancedEntries, http.StatusUnprocessableEntity, "UNBALANCED_ENTRIES"},
		{"invalid transition", declaration.ErrInvalidStatusTransition, http.StatusConflict, "CONFLICT"},
		{"not validated", declaration.ErrDeclarationNotValidated, http.StatusConflict, "CONFLICT"},
		{"unknown error", fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			resp := decode(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.wantCode, resp.Error.Code)
		})
	}
}

// Repositories wrap sentinels with context; the mapping must still see them.
func TestHandleError_WrappedSentinel(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("failed to acquire period lock: %w", payroll.ErrRunInProgress))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleError_ValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "period_month", Message: "must be between 1 and 12"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "must be between 1 and 12", resp.Error.Details["period_month"])
}
