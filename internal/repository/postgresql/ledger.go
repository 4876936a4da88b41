package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/ledger"
	"github.com/issouftoure58-design/nexus-sub008/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type ledgerRepository struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) ledger.LedgerRepository {
	return &ledgerRepository{db: db}
}

const ledgerColumns = `
	id, company_id, journal, entry_date, document_ref,
	account_number, account_label, debit, credit,
	period_year, period_month, fiscal_year, created_at
`

func scanLedgerEntry(row pgx.Row) (ledger.LedgerEntry, error) {
	var e ledger.LedgerEntry
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.Journal, &e.EntryDate, &e.DocumentRef,
		&e.AccountNumber, &e.AccountLabel, &e.Debit, &e.Credit,
		&e.PeriodYear, &e.PeriodMonth, &e.FiscalYear, &e.CreatedAt,
	)
	return e, err
}

// ReplaceForDocument implements ledger.LedgerRepository. Delete and insert run
// on the same querier, so inside a transaction the swap is atomic.
func (r *ledgerRepository) ReplaceForDocument(ctx context.Context, companyID, documentRef string, entries []ledger.LedgerEntry) error {
	q := GetQuerier(ctx, r.db)

	deleteQuery := `DELETE FROM ledger_entries WHERE company_id = $1 AND document_ref = $2`
	if _, err := q.Exec(ctx, deleteQuery, companyID, documentRef); err != nil {
		return fmt.Errorf("failed to retract ledger entries: %w", err)
	}

	insertQuery := `
		INSERT INTO ledger_entries (
			id, company_id, journal, entry_date, document_ref,
			account_number, account_label, debit, credit,
			period_year, period_month, fiscal_year
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
	`

	for _, e := range entries {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		_, err := q.Exec(ctx, insertQuery,
			e.ID,
			companyID,
			e.Journal,
			e.EntryDate,
			documentRef,
			e.AccountNumber,
			e.AccountLabel,
			e.Debit,
			e.Credit,
			e.PeriodYear,
			e.PeriodMonth,
			e.FiscalYear,
		)
		if err != nil {
			return fmt.Errorf("failed to insert ledger entry: %w", err)
		}
	}

	return nil
}

// DeleteForDocument implements ledger.LedgerRepository.
func (r *ledgerRepository) DeleteForDocument(ctx context.Context, companyID, documentRef string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM ledger_entries WHERE company_id = $1 AND document_ref = $2`
	if _, err := q.Exec(ctx, query, companyID, documentRef); err != nil {
		return fmt.Errorf("failed to delete ledger entries: %w", err)
	}
	return nil
}

// ListByDocument implements ledger.LedgerRepository.
func (r *ledgerRepository) ListByDocument(ctx context.Context, companyID, documentRef string) ([]ledger.LedgerEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE company_id = $1 AND document_ref = $2
		ORDER BY created_at, account_number
	`

	rows, err := q.Query(ctx, query, companyID, documentRef)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	return collectLedgerEntries(rows)
}

// ListByPeriod implements ledger.LedgerRepository.
func (r *ledgerRepository) ListByPeriod(ctx context.Context, companyID string, year, month int) ([]ledger.LedgerEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE company_id = $1 AND period_year = $2 AND period_month = $3
		ORDER BY entry_date, document_ref, account_number
	`

	rows, err := q.Query(ctx, query, companyID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	return collectLedgerEntries(rows)
}

// ListByJournal implements ledger.LedgerRepository.
func (r *ledgerRepository) ListByJournal(ctx context.Context, companyID string, journal ledger.JournalCode, year, month int) ([]ledger.LedgerEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE company_id = $1 AND journal = $2 AND period_year = $3 AND period_month = $4
		ORDER BY entry_date, document_ref, account_number
	`

	rows, err := q.Query(ctx, query, companyID, journal, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	return collectLedgerEntries(rows)
}

func collectLedgerEntries(rows pgx.Rows) ([]ledger.LedgerEntry, error) {
	var entries []ledger.LedgerEntry
	for rows.Next() {
		e, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
