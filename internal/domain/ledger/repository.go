package ledger

import "context"

// LedgerRepository defines data access for ledger entries. Entries are
// immutable rows; ReplaceForDocument is the only mutation and swaps the full
// entry set of one document reference inside a single transaction so a
// concurrent reader never observes a retracted-but-not-reposted document.
type LedgerRepository interface {
	ReplaceForDocument(ctx context.Context, companyID, documentRef string, entries []LedgerEntry) error
	DeleteForDocument(ctx context.Context, companyID, documentRef string) error
	ListByDocument(ctx context.Context, companyID, documentRef string) ([]LedgerEntry, error)
	ListByPeriod(ctx context.Context, companyID string, year, month int) ([]LedgerEntry, error)
	ListByJournal(ctx context.Context, companyID string, journal JournalCode, year, month int) ([]LedgerEntry, error)
}
