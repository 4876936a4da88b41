package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/declaration"
	"github.com/issouftoure58-design/nexus-sub008/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type declarationRepository struct {
	db *database.DB
}

func NewDeclarationRepository(db *database.DB) declaration.DeclarationRepository {
	return &declarationRepository{db: db}
}

// declarationBlocks is the JSONB payload: everything except the indexed
// columns lives here.
type declarationBlocks struct {
	Header        declaration.HeaderBlock         `json:"header"`
	Remunerations []declaration.RemunerationBlock `json:"remunerations"`
	Aggregate     declaration.ContributionBlock   `json:"aggregate"`
}

const declarationColumns = `
	id, company_id, period_year, period_month, payroll_run_id, status,
	blocks, issues, created_at, updated_at
`

func scanDeclaration(row pgx.Row) (declaration.DeclarationDocument, error) {
	var (
		doc        declaration.DeclarationDocument
		blocksJSON []byte
		issuesJSON []byte
	)
	err := row.Scan(
		&doc.ID, &doc.CompanyID, &doc.PeriodYear, &doc.PeriodMonth, &doc.PayrollRunID, &doc.Status,
		&blocksJSON, &issuesJSON, &doc.CreatedAt, &doc.UpdatedAt,
	)
	if err != nil {
		return declaration.DeclarationDocument{}, err
	}

	var blocks declarationBlocks
	if err := json.Unmarshal(blocksJSON, &blocks); err != nil {
		return declaration.DeclarationDocument{}, fmt.Errorf("failed to decode declaration blocks: %w", err)
	}
	doc.Header = blocks.Header
	doc.Remunerations = blocks.Remunerations
	doc.Aggregate = blocks.Aggregate

	if len(issuesJSON) > 0 {
		if err := json.Unmarshal(issuesJSON, &doc.Issues); err != nil {
			return declaration.DeclarationDocument{}, fmt.Errorf("failed to decode declaration issues: %w", err)
		}
	}

	return doc, nil
}

// Upsert implements declaration.DeclarationRepository. One document per
// (company, period); regeneration replaces the stored blocks and resets the
// status and issues. A transmitted declaration is terminal: the update arm
// refuses to touch it even if a caller slipped past the service guard.
func (r *declarationRepository) Upsert(ctx context.Context, doc declaration.DeclarationDocument) (declaration.DeclarationDocument, error) {
	q := GetQuerier(ctx, r.db)

	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}

	blocksJSON, err := json.Marshal(declarationBlocks{
		Header:        doc.Header,
		Remunerations: doc.Remunerations,
		Aggregate:     doc.Aggregate,
	})
	if err != nil {
		return declaration.DeclarationDocument{}, fmt.Errorf("failed to encode declaration blocks: %w", err)
	}
	issuesJSON, err := json.Marshal(doc.Issues)
	if err != nil {
		return declaration.DeclarationDocument{}, fmt.Errorf("failed to encode declaration issues: %w", err)
	}

	query := `
		INSERT INTO declarations (
			id, company_id, period_year, period_month, payroll_run_id, status, blocks, issues
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (company_id, period_year, period_month) DO UPDATE
		SET payroll_run_id = EXCLUDED.payroll_run_id,
			status = EXCLUDED.status,
			blocks = EXCLUDED.blocks,
			issues = EXCLUDED.issues,
			updated_at = NOW()
		WHERE declarations.status != 'transmitted'
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		doc.ID,
		doc.CompanyID,
		doc.PeriodYear,
		doc.PeriodMonth,
		doc.PayrollRunID,
		doc.Status,
		blocksJSON,
		issuesJSON,
	).Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return declaration.DeclarationDocument{}, declaration.ErrInvalidStatusTransition
		}
		return declaration.DeclarationDocument{}, fmt.Errorf("failed to upsert declaration: %w", err)
	}

	return doc, nil
}

// GetByID implements declaration.DeclarationRepository.
func (r *declarationRepository) GetByID(ctx context.Context, id string, companyID string) (declaration.DeclarationDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + declarationColumns + `
		FROM declarations
		WHERE id = $1 AND company_id = $2
	`

	doc, err := scanDeclaration(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return declaration.DeclarationDocument{}, declaration.ErrDeclarationNotFound
		}
		return declaration.DeclarationDocument{}, fmt.Errorf("failed to get declaration: %w", err)
	}

	return doc, nil
}

// GetByPeriod implements declaration.DeclarationRepository.
func (r *declarationRepository) GetByPeriod(ctx context.Context, companyID string, year, month int) (declaration.DeclarationDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + declarationColumns + `
		FROM declarations
		WHERE company_id = $1 AND period_year = $2 AND period_month = $3
	`

	doc, err := scanDeclaration(q.QueryRow(ctx, query, companyID, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return declaration.DeclarationDocument{}, declaration.ErrDeclarationNotFound
		}
		return declaration.DeclarationDocument{}, fmt.Errorf("failed to get declaration by period: %w", err)
	}

	return doc, nil
}

// UpdateStatusAndIssues implements declaration.DeclarationRepository.
func (r *declarationRepository) UpdateStatusAndIssues(ctx context.Context, id string, companyID string, status declaration.Status, issues []declaration.ValidationIssue) error {
	q := GetQuerier(ctx, r.db)

	issuesJSON, err := json.Marshal(issues)
	if err != nil {
		return fmt.Errorf("failed to encode declaration issues: %w", err)
	}

	query := `
		UPDATE declarations
		SET status = $3, issues = $4, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, id, companyID, status, issuesJSON)
	if err != nil {
		return fmt.Errorf("failed to update declaration status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return declaration.ErrDeclarationNotFound
	}
	return nil
}

type employerRepository struct {
	db *database.DB
}

func NewEmployerRepository(db *database.DB) declaration.EmployerRepository {
	return &employerRepository{db: db}
}

// GetByCompanyID implements declaration.EmployerRepository.
func (r *employerRepository) GetByCompanyID(ctx context.Context, companyID string) (declaration.EmployerIdentification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT legal_name, registration_number, scheme_code, address_line, postal_code, city
		FROM employer_identifications
		WHERE company_id = $1
	`

	var emp declaration.EmployerIdentification
	err := q.QueryRow(ctx, query, companyID).Scan(
		&emp.LegalName, &emp.RegistrationNumber, &emp.SchemeCode,
		&emp.AddressLine, &emp.PostalCode, &emp.City,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return declaration.EmployerIdentification{}, declaration.ErrMissingEmployerIdentity
		}
		return declaration.EmployerIdentification{}, fmt.Errorf("failed to get employer identification: %w", err)
	}

	return emp, nil
}
