package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/payroll"
	"github.com/issouftoure58-design/nexus-sub008/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRunRepository struct {
	db *database.DB
}

func NewPayrollRunRepository(db *database.DB) payroll.PayrollRunRepository {
	return &payrollRunRepository{db: db}
}

const payrollRunColumns = `
	id, company_id, period_year, period_month, parameter_set_id, status,
	total_gross, total_employer_contrib, total_employee_contrib,
	total_net, total_employer_cost, warnings, ledger_document_ref,
	created_at, updated_at
`

func scanPayrollRun(row pgx.Row) (payroll.PayrollRun, error) {
	var (
		run          payroll.PayrollRun
		warningsJSON []byte
	)
	err := row.Scan(
		&run.ID, &run.CompanyID, &run.PeriodYear, &run.PeriodMonth, &run.ParameterSetID, &run.Status,
		&run.TotalGross, &run.TotalEmployerContrib, &run.TotalEmployeeContrib,
		&run.TotalNet, &run.TotalEmployerCost, &warningsJSON, &run.LedgerDocumentRef,
		&run.CreatedAt, &run.UpdatedAt,
	)
	if err != nil {
		return payroll.PayrollRun{}, err
	}
	if len(warningsJSON) > 0 {
		if err := json.Unmarshal(warningsJSON, &run.Warnings); err != nil {
			return payroll.PayrollRun{}, fmt.Errorf("failed to decode run warnings: %w", err)
		}
	}
	return run, nil
}

// Create implements payroll.PayrollRunRepository.
func (r *payrollRunRepository) Create(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	warningsJSON, err := json.Marshal(run.Warnings)
	if err != nil {
		return payroll.PayrollRun{}, fmt.Errorf("failed to encode run warnings: %w", err)
	}

	query := `
		INSERT INTO payroll_runs (
			id, company_id, period_year, period_month, parameter_set_id, status,
			total_gross, total_employer_contrib, total_employee_contrib,
			total_net, total_employer_cost, warnings, ledger_document_ref
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		run.ID,
		run.CompanyID,
		run.PeriodYear,
		run.PeriodMonth,
		run.ParameterSetID,
		run.Status,
		run.TotalGross,
		run.TotalEmployerContrib,
		run.TotalEmployeeContrib,
		run.TotalNet,
		run.TotalEmployerCost,
		warningsJSON,
		run.LedgerDocumentRef,
	).Scan(&run.CreatedAt, &run.UpdatedAt)

	if err != nil {
		return payroll.PayrollRun{}, fmt.Errorf("failed to create payroll run: %w", err)
	}

	lineQuery := `
		INSERT INTO payroll_lines (
			id, run_id, employee_id, employee_name, base_salary,
			tier1_minutes, tier2_minutes, overtime_pay, gross, tranche1,
			employer_contrib, employee_contrib, net, worked_minutes, contribution_lines
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)
	`

	for _, line := range run.Lines {
		contribJSON, err := json.Marshal(line.ContributionLines)
		if err != nil {
			return payroll.PayrollRun{}, fmt.Errorf("failed to encode contribution lines: %w", err)
		}
		_, err = q.Exec(ctx, lineQuery,
			uuid.NewString(),
			run.ID,
			line.EmployeeID,
			line.EmployeeName,
			line.BaseSalary,
			line.Tier1Minutes,
			line.Tier2Minutes,
			line.OvertimePay,
			line.Gross,
			line.Tranche1,
			line.EmployerContrib,
			line.EmployeeContrib,
			line.Net,
			line.WorkedMinutes,
			contribJSON,
		)
		if err != nil {
			return payroll.PayrollRun{}, fmt.Errorf("failed to create payroll line: %w", err)
		}
	}

	return run, nil
}

// GetByID implements payroll.PayrollRunRepository.
func (r *payrollRunRepository) GetByID(ctx context.Context, id string, companyID string) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollRunColumns + `
		FROM payroll_runs
		WHERE id = $1 AND company_id = $2
	`

	run, err := scanPayrollRun(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRun{}, payroll.ErrRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to get payroll run: %w", err)
	}

	run.Lines, err = r.loadLines(ctx, run.ID)
	if err != nil {
		return payroll.PayrollRun{}, err
	}

	return run, nil
}

// GetActiveByPeriod implements payroll.PayrollRunRepository.
func (r *payrollRunRepository) GetActiveByPeriod(ctx context.Context, companyID string, year, month int) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollRunColumns + `
		FROM payroll_runs
		WHERE company_id = $1 AND period_year = $2 AND period_month = $3
		  AND status != 'superseded'
		ORDER BY created_at DESC
		LIMIT 1
	`

	run, err := scanPayrollRun(q.QueryRow(ctx, query, companyID, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRun{}, payroll.ErrRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to get active payroll run: %w", err)
	}

	run.Lines, err = r.loadLines(ctx, run.ID)
	if err != nil {
		return payroll.PayrollRun{}, err
	}

	return run, nil
}

// ListByCompany implements payroll.PayrollRunRepository. Lines are not loaded
// for list views.
func (r *payrollRunRepository) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]payroll.PayrollRun, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	countQuery := `SELECT COUNT(*) FROM payroll_runs WHERE company_id = $1`
	if err := q.QueryRow(ctx, countQuery, companyID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll runs: %w", err)
	}

	query := `
		SELECT ` + payrollRunColumns + `
		FROM payroll_runs
		WHERE company_id = $1
		ORDER BY period_year DESC, period_month DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payroll.PayrollRun
	for rows.Next() {
		run, err := scanPayrollRun(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, total, rows.Err()
}

// Supersede implements payroll.PayrollRunRepository.
func (r *payrollRunRepository) Supersede(ctx context.Context, companyID string, year, month int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_runs
		SET status = 'superseded', updated_at = NOW()
		WHERE company_id = $1 AND period_year = $2 AND period_month = $3
		  AND status != 'superseded'
	`

	if _, err := q.Exec(ctx, query, companyID, year, month); err != nil {
		return fmt.Errorf("failed to supersede payroll runs: %w", err)
	}
	return nil
}

// UpdateStatus implements payroll.PayrollRunRepository.
func (r *payrollRunRepository) UpdateStatus(ctx context.Context, id string, companyID string, status payroll.RunStatus, ledgerDocumentRef string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_runs
		SET status = $3, ledger_document_ref = $4, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, id, companyID, status, ledgerDocumentRef)
	if err != nil {
		return fmt.Errorf("failed to update payroll run status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRunNotFound
	}
	return nil
}

// AcquirePeriodLock implements payroll.PayrollRunRepository. The lock is
// transaction scoped and released automatically at commit or rollback. At
// most one computation per (company, period) may hold it; a concurrent
// attempt fails immediately instead of queueing behind the running one.
func (r *payrollRunRepository) AcquirePeriodLock(ctx context.Context, companyID string, year, month int) error {
	q := GetQuerier(ctx, r.db)

	key := fmt.Sprintf("payroll:%s:%04d-%02d", companyID, year, month)
	var locked bool
	if err := q.QueryRow(ctx, `SELECT pg_try_advisory_xact_lock(hashtext($1))`, key).Scan(&locked); err != nil {
		return fmt.Errorf("failed to acquire period lock: %w", err)
	}
	if !locked {
		return payroll.ErrRunInProgress
	}
	return nil
}

func (r *payrollRunRepository) loadLines(ctx context.Context, runID string) ([]payroll.PayrollLine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, employee_name, base_salary,
			   tier1_minutes, tier2_minutes, overtime_pay, gross, tranche1,
			   employer_contrib, employee_contrib, net, worked_minutes, contribution_lines
		FROM payroll_lines
		WHERE run_id = $1
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll lines: %w", err)
	}
	defer rows.Close()

	var lines []payroll.PayrollLine
	for rows.Next() {
		var (
			line        payroll.PayrollLine
			contribJSON []byte
		)
		err := rows.Scan(
			&line.EmployeeID, &line.EmployeeName, &line.BaseSalary,
			&line.Tier1Minutes, &line.Tier2Minutes, &line.OvertimePay, &line.Gross, &line.Tranche1,
			&line.EmployerContrib, &line.EmployeeContrib, &line.Net, &line.WorkedMinutes, &contribJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll line: %w", err)
		}
		if len(contribJSON) > 0 {
			if err := json.Unmarshal(contribJSON, &line.ContributionLines); err != nil {
				return nil, fmt.Errorf("failed to decode contribution lines: %w", err)
			}
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}
