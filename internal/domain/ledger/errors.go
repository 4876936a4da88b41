package ledger

import "errors"

var (
	ErrUnmappedCategory   = errors.New("document category has no account mapping")
	ErrIncompleteDocument = errors.New("document is missing required dating or identification fields")
	ErrUnbalancedEntries  = errors.New("debit total does not equal credit total for document")
	ErrEntryNotFound      = errors.New("ledger entry not found")
)
