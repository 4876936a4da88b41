package ledger

import (
	"github.com/issouftoure58-design/nexus-sub008/internal/pkg/validator"
)

// ========== DOCUMENT DTOs ==========

type PostDocumentRequest struct {
	Ref         string  `json:"ref"`
	Kind        string  `json:"kind"` // "invoice" or "expense"
	Category    string  `json:"category"`
	TotalAmount int64   `json:"total_amount"`
	TaxAmount   int64   `json:"tax_amount"`
	IssueDate   string  `json:"issue_date"`
	Paid        bool    `json:"paid"`
	PaymentDate *string `json:"payment_date,omitempty"`
}

func (r *PostDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Ref) {
		errs = append(errs, validator.ValidationError{Field: "ref", Message: "is required"})
	}
	if r.Kind != string(KindInvoice) && r.Kind != string(KindExpense) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'invoice' or 'expense'"})
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "is required"})
	}
	if r.TotalAmount <= 0 {
		errs = append(errs, validator.ValidationError{Field: "total_amount", Message: "must be positive"})
	}
	if r.TaxAmount < 0 || r.TaxAmount > r.TotalAmount {
		errs = append(errs, validator.ValidationError{Field: "tax_amount", Message: "must be between 0 and total_amount"})
	}
	if _, ok := validator.IsValidDate(r.IssueDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "issue_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Paid {
		if r.PaymentDate == nil {
			errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "is required when paid"})
		} else if _, ok := validator.IsValidDate(*r.PaymentDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DocumentBalanceResponse struct {
	DocumentRef string `json:"document_ref"`
	Debit       int64  `json:"debit"`
	Credit      int64  `json:"credit"`
	Balanced    bool   `json:"balanced"`
}

type BalanceReportResponse struct {
	PeriodYear  int                       `json:"period_year"`
	PeriodMonth int                       `json:"period_month"`
	Balanced    bool                      `json:"balanced"`
	Documents   []DocumentBalanceResponse `json:"documents"`
}

type LedgerEntryResponse struct {
	ID            string `json:"id"`
	Journal       string `json:"journal"`
	EntryDate     string `json:"entry_date"`
	DocumentRef   string `json:"document_ref"`
	AccountNumber string `json:"account_number"`
	AccountLabel  string `json:"account_label"`
	Debit         int64  `json:"debit"`
	Credit        int64  `json:"credit"`
	PeriodYear    int    `json:"period_year"`
	PeriodMonth   int    `json:"period_month"`
	FiscalYear    int    `json:"fiscal_year"`
}

func ToEntryResponse(e LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:            e.ID,
		Journal:       string(e.Journal),
		EntryDate:     e.EntryDate.Format("2006-01-02"),
		DocumentRef:   e.DocumentRef,
		AccountNumber: e.AccountNumber,
		AccountLabel:  e.AccountLabel,
		Debit:         e.Debit,
		Credit:        e.Credit,
		PeriodYear:    e.PeriodYear,
		PeriodMonth:   e.PeriodMonth,
		FiscalYear:    e.FiscalYear,
	}
}

func ToEntryResponses(entries []LedgerEntry) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToEntryResponse(e))
	}
	return out
}
