package declaration

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/issouftoure58-design/nexus-sub008/internal/domain/declaration"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/employee"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/payroll"
)

func authedContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"company_id": "c1"})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeDeclarationRepo struct {
	existing declaration.DeclarationDocument
	getErr   error
	upserts  int
}

func (f *fakeDeclarationRepo) Upsert(_ context.Context, doc declaration.DeclarationDocument) (declaration.DeclarationDocument, error) {
	f.upserts++
	doc.ID = "d1"
	return doc, nil
}

func (f *fakeDeclarationRepo) GetByID(_ context.Context, _ string, _ string) (declaration.DeclarationDocument, error) {
	return f.existing, f.getErr
}

func (f *fakeDeclarationRepo) GetByPeriod(_ context.Context, _ string, _ int, _ int) (declaration.DeclarationDocument, error) {
	return f.existing, f.getErr
}

func (f *fakeDeclarationRepo) UpdateStatusAndIssues(_ context.Context, _ string, _ string, _ declaration.Status, _ []declaration.ValidationIssue) error {
	return nil
}

type fakeEmployerRepo struct{}

func (fakeEmployerRepo) GetByCompanyID(_ context.Context, _ string) (declaration.EmployerIdentification, error) {
	return declaration.EmployerIdentification{
		LegalName:          "ACME SARL",
		RegistrationNumber: "12345678901234",
		SchemeCode:         "GEN",
		AddressLine:        "1 rue Haute",
		PostalCode:         "75011",
		City:               "Paris",
	}, nil
}

type fakeRunRepo struct {
	run payroll.PayrollRun
}

func (f *fakeRunRepo) Create(_ context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	return run, nil
}

func (f *fakeRunRepo) GetByID(_ context.Context, _ string, _ string) (payroll.PayrollRun, error) {
	return f.run, nil
}

func (f *fakeRunRepo) GetActiveByPeriod(_ context.Context, _ string, _ int, _ int) (payroll.PayrollRun, error) {
	return f.run, nil
}

func (f *fakeRunRepo) ListByCompany(_ context.Context, _ string, _ int, _ int) ([]payroll.PayrollRun, int64, error) {
	return nil, 0, nil
}

func (f *fakeRunRepo) Supersede(_ context.Context, _ string, _ int, _ int) error { return nil }

func (f *fakeRunRepo) UpdateStatus(_ context.Context, _ string, _ string, _ payroll.RunStatus, _ string) error {
	return nil
}

func (f *fakeRunRepo) AcquirePeriodLock(_ context.Context, _ string, _ int, _ int) error { return nil }

type fakeEmployeeRepo struct{}

func (fakeEmployeeRepo) GetByID(_ context.Context, _ string, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (fakeEmployeeRepo) GetActiveByCompanyID(_ context.Context, _ string) ([]employee.Employee, error) {
	return nil, nil
}

func newServiceUnderTest(declRepo *fakeDeclarationRepo) declaration.DeclarationService {
	runRepo := &fakeRunRepo{run: payroll.PayrollRun{
		ID:          "run-1",
		CompanyID:   "c1",
		PeriodYear:  2025,
		PeriodMonth: 5,
		Status:      payroll.RunStatusPosted,
	}}
	return NewDeclarationService(declRepo, fakeEmployerRepo{}, runRepo, fakeEmployeeRepo{})
}

func TestGenerate_FirstDeclarationOfPeriod(t *testing.T) {
	declRepo := &fakeDeclarationRepo{getErr: declaration.ErrDeclarationNotFound}
	svc := newServiceUnderTest(declRepo)

	resp, err := svc.Generate(authedContext(t), declaration.GenerateDeclarationRequest{
		PeriodYear:  2025,
		PeriodMonth: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "d1", resp.ID)
	assert.Equal(t, 1, declRepo.upserts)
}

func TestGenerate_TransmittedPeriodIsFinal(t *testing.T) {
	declRepo := &fakeDeclarationRepo{existing: declaration.DeclarationDocument{
		ID:     "d1",
		Status: declaration.StatusTransmitted,
	}}
	svc := newServiceUnderTest(declRepo)

	_, err := svc.Generate(authedContext(t), declaration.GenerateDeclarationRequest{
		PeriodYear:  2025,
		PeriodMonth: 5,
	})
	assert.ErrorIs(t, err, declaration.ErrInvalidStatusTransition)
	assert.Equal(t, 0, declRepo.upserts)
}

// A failed read of the existing declaration must stop the regeneration: the
// stored document could be transmitted, and overwriting it would break the
// terminal-state guarantee.
func TestGenerate_ReadFailureStopsRegeneration(t *testing.T) {
	readErr := fmt.Errorf("failed to get declaration by period: connection reset")
	declRepo := &fakeDeclarationRepo{getErr: readErr}
	svc := newServiceUnderTest(declRepo)

	_, err := svc.Generate(authedContext(t), declaration.GenerateDeclarationRequest{
		PeriodYear:  2025,
		PeriodMonth: 5,
	})
	assert.ErrorIs(t, err, readErr)
	assert.Equal(t, 0, declRepo.upserts)
}

func TestGenerate_RegenerationAllowedBeforeTransmission(t *testing.T) {
	declRepo := &fakeDeclarationRepo{existing: declaration.DeclarationDocument{
		ID:     "d1",
		Status: declaration.StatusValidated,
	}}
	svc := newServiceUnderTest(declRepo)

	_, err := svc.Generate(authedContext(t), declaration.GenerateDeclarationRequest{
		PeriodYear:  2025,
		PeriodMonth: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, declRepo.upserts)
}
