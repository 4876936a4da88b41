package ledger

import (
	"context"
)

// LedgerService defines business logic for posting commercial documents and
// reading the ledger
type LedgerService interface {
	// PostDocument converts an invoice or expense into balanced entry sets
	// and stores them, replacing any previous entries of the same reference
	PostDocument(ctx context.Context, req PostDocumentRequest) ([]LedgerEntryResponse, error)

	// RetractDocument removes all entries of a document reference, payment
	// set included
	RetractDocument(ctx context.Context, documentRef string) error

	// GetDocumentEntries retrieves the stored entries of one document
	GetDocumentEntries(ctx context.Context, documentRef string) ([]LedgerEntryResponse, error)

	// ListPeriodEntries retrieves all entries of a period
	ListPeriodEntries(ctx context.Context, year, month int) ([]LedgerEntryResponse, error)

	// ListJournalEntries retrieves a period's entries filtered by journal
	ListJournalEntries(ctx context.Context, journal string, year, month int) ([]LedgerEntryResponse, error)

	// CheckPeriodBalance reports the per-document debit/credit balance of a
	// period
	CheckPeriodBalance(ctx context.Context, year, month int) (BalanceReportResponse, error)
}
