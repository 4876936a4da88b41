package ledger

import "time"

// JournalCode enum - named grouping of entries by document class.
type JournalCode string

const (
	JournalSales     JournalCode = "sales"
	JournalPurchases JournalCode = "purchases"
	JournalBank      JournalCode = "bank"
	JournalPayroll   JournalCode = "payroll"
)

// LedgerEntry - one immutable double-entry line. Exactly one of Debit and
// Credit is non-zero; corrections replace the full entry set of a document
// reference, never edit single lines.
type LedgerEntry struct {
	ID            string
	CompanyID     string
	Journal       JournalCode
	EntryDate     time.Time
	DocumentRef   string
	AccountNumber string
	AccountLabel  string
	Debit         int64
	Credit        int64
	PeriodYear    int
	PeriodMonth   int
	FiscalYear    int
	CreatedAt     time.Time
}

// DocumentKind enum
type DocumentKind string

const (
	KindInvoice DocumentKind = "invoice"
	KindExpense DocumentKind = "expense"
)

// CommercialDocument - invoice or expense as consumed from the commercial
// collaborator. Amounts are integer minor units, TotalAmount includes tax.
type CommercialDocument struct {
	Ref         string
	CompanyID   string
	Kind        DocumentKind
	Category    Category
	TotalAmount int64
	TaxAmount   int64
	IssueDate   time.Time
	Paid        bool
	PaymentDate *time.Time
}

// PaymentRef derives the reference of a document's payment entry set.
// Accrual and payment are independent sets for balance purposes but share the
// same external reference; the suffix is defined here and nowhere else.
func PaymentRef(documentRef string) string {
	return documentRef + "/PAY"
}

// PaymentRef returns the document reference used for the payment entry set.
func (d CommercialDocument) PaymentRef() string {
	return PaymentRef(d.Ref)
}
