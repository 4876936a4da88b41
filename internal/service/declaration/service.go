package declaration

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/issouftoure58-design/nexus-sub008/internal/domain/declaration"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/employee"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/payroll"
)

type DeclarationServiceImpl struct {
	declarationRepo declaration.DeclarationRepository
	employerRepo    declaration.EmployerRepository
	runRepo         payroll.PayrollRunRepository
	employeeRepo    employee.EmployeeRepository
}

func NewDeclarationService(
	declarationRepo declaration.DeclarationRepository,
	employerRepo declaration.EmployerRepository,
	runRepo payroll.PayrollRunRepository,
	employeeRepo employee.EmployeeRepository,
) declaration.DeclarationService {
	return &DeclarationServiceImpl{
		declarationRepo: declarationRepo,
		employerRepo:    employerRepo,
		runRepo:         runRepo,
		employeeRepo:    employeeRepo,
	}
}

func getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// ========== GENERATION ==========

func (s *DeclarationServiceImpl) Generate(ctx context.Context, req declaration.GenerateDeclarationRequest) (declaration.DeclarationResponse, error) {
	if err := req.Validate(); err != nil {
		return declaration.DeclarationResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return declaration.DeclarationResponse{}, err
	}

	// A transmitted declaration is final for its period. Anything other than
	// "no declaration yet" must stop the regeneration: proceeding past a
	// transient read failure would overwrite a possibly terminal document.
	existing, err := s.declarationRepo.GetByPeriod(ctx, companyID, req.PeriodYear, req.PeriodMonth)
	switch {
	case err == nil:
		if !existing.CanTransition(declaration.StatusGenerated) {
			return declaration.DeclarationResponse{}, declaration.ErrInvalidStatusTransition
		}
	case errors.Is(err, declaration.ErrDeclarationNotFound):
	default:
		return declaration.DeclarationResponse{}, err
	}

	run, err := s.runRepo.GetActiveByPeriod(ctx, companyID, req.PeriodYear, req.PeriodMonth)
	if err != nil {
		return declaration.DeclarationResponse{}, err
	}

	employer, err := s.employerRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return declaration.DeclarationResponse{}, err
	}

	roster, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return declaration.DeclarationResponse{}, err
	}

	doc := declaration.Synthesize(run, employer, roster)
	doc.Issues = declaration.Validate(doc)

	stored, err := s.declarationRepo.Upsert(ctx, doc)
	if err != nil {
		return declaration.DeclarationResponse{}, err
	}

	return declaration.ToDeclarationResponse(stored), nil
}

// ========== QUERIES ==========

func (s *DeclarationServiceImpl) GetDeclaration(ctx context.Context, id string) (declaration.DeclarationResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return declaration.DeclarationResponse{}, err
	}

	doc, err := s.declarationRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return declaration.DeclarationResponse{}, err
	}

	return declaration.ToDeclarationResponse(doc), nil
}

func (s *DeclarationServiceImpl) GetByPeriod(ctx context.Context, year, month int) (declaration.DeclarationResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return declaration.DeclarationResponse{}, err
	}

	doc, err := s.declarationRepo.GetByPeriod(ctx, companyID, year, month)
	if err != nil {
		return declaration.DeclarationResponse{}, err
	}

	return declaration.ToDeclarationResponse(doc), nil
}

// ========== STATUS TRANSITIONS ==========

func (s *DeclarationServiceImpl) MarkValidated(ctx context.Context, id string) (declaration.DeclarationResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return declaration.DeclarationResponse{}, err
	}

	doc, err := s.declarationRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return declaration.DeclarationResponse{}, err
	}

	if !doc.CanTransition(declaration.StatusValidated) {
		return declaration.DeclarationResponse{}, declaration.ErrInvalidStatusTransition
	}

	// Revalidate against the stored blocks before promoting.
	doc.Issues = declaration.Validate(doc)
	if declaration.HasErrors(doc.Issues) {
		if err := s.declarationRepo.UpdateStatusAndIssues(ctx, id, companyID, doc.Status, doc.Issues); err != nil {
			return declaration.DeclarationResponse{}, err
		}
		return declaration.DeclarationResponse{}, declaration.ErrStructuralValidation
	}

	doc.Status = declaration.StatusValidated
	if err := s.declarationRepo.UpdateStatusAndIssues(ctx, id, companyID, doc.Status, doc.Issues); err != nil {
		return declaration.DeclarationResponse{}, err
	}

	return declaration.ToDeclarationResponse(doc), nil
}

func (s *DeclarationServiceImpl) MarkTransmitted(ctx context.Context, id string) (declaration.DeclarationResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return declaration.DeclarationResponse{}, err
	}

	doc, err := s.declarationRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return declaration.DeclarationResponse{}, err
	}

	if doc.Status != declaration.StatusValidated {
		return declaration.DeclarationResponse{}, declaration.ErrDeclarationNotValidated
	}
	if !doc.CanTransition(declaration.StatusTransmitted) {
		return declaration.DeclarationResponse{}, declaration.ErrInvalidStatusTransition
	}

	doc.Status = declaration.StatusTransmitted
	if err := s.declarationRepo.UpdateStatusAndIssues(ctx, id, companyID, doc.Status, doc.Issues); err != nil {
		return declaration.DeclarationResponse{}, err
	}

	return declaration.ToDeclarationResponse(doc), nil
}
