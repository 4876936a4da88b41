package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/issouftoure58-design/nexus-sub008/internal/domain/ledger"
	"github.com/issouftoure58-design/nexus-sub008/internal/pkg/database"
	"github.com/issouftoure58-design/nexus-sub008/internal/repository/postgresql"
)

type LedgerServiceImpl struct {
	db         *database.DB
	ledgerRepo ledger.LedgerRepository
	accounts   ledger.AccountTable
}

func NewLedgerService(db *database.DB, ledgerRepo ledger.LedgerRepository, accounts ledger.AccountTable) ledger.LedgerService {
	return &LedgerServiceImpl{
		db:         db,
		ledgerRepo: ledgerRepo,
		accounts:   accounts,
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

// ========== DOCUMENT POSTING ==========

func (s *LedgerServiceImpl) PostDocument(ctx context.Context, req ledger.PostDocumentRequest) ([]ledger.LedgerEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	issueDate, _ := time.Parse("2006-01-02", req.IssueDate)
	doc := ledger.CommercialDocument{
		Ref:         req.Ref,
		CompanyID:   companyID,
		Kind:        ledger.DocumentKind(req.Kind),
		Category:    ledger.Category(req.Category),
		TotalAmount: req.TotalAmount,
		TaxAmount:   req.TaxAmount,
		IssueDate:   issueDate,
		Paid:        req.Paid,
	}
	if req.PaymentDate != nil {
		paymentDate, _ := time.Parse("2006-01-02", *req.PaymentDate)
		doc.PaymentDate = &paymentDate
	}

	entries, err := ledger.PostCommercial(doc, s.accounts)
	if err != nil {
		return nil, err
	}

	// Accrual and payment sets are replaced together: reposting an unpaid
	// version of a previously paid document must drop the stale payment set.
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var accrual, payment []ledger.LedgerEntry
		for _, e := range entries {
			if e.DocumentRef == doc.PaymentRef() {
				payment = append(payment, e)
			} else {
				accrual = append(accrual, e)
			}
		}

		if err := s.ledgerRepo.ReplaceForDocument(txCtx, companyID, doc.Ref, accrual); err != nil {
			return err
		}
		if len(payment) > 0 {
			return s.ledgerRepo.ReplaceForDocument(txCtx, companyID, doc.PaymentRef(), payment)
		}
		return s.ledgerRepo.DeleteForDocument(txCtx, companyID, doc.PaymentRef())
	})
	if err != nil {
		return nil, err
	}

	return ledger.ToEntryResponses(entries), nil
}

func (s *LedgerServiceImpl) RetractDocument(ctx context.Context, documentRef string) error {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.ledgerRepo.DeleteForDocument(txCtx, companyID, documentRef); err != nil {
			return err
		}
		return s.ledgerRepo.DeleteForDocument(txCtx, companyID, ledger.PaymentRef(documentRef))
	})
}

// ========== QUERIES ==========

func (s *LedgerServiceImpl) GetDocumentEntries(ctx context.Context, documentRef string) ([]ledger.LedgerEntryResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.ledgerRepo.ListByDocument(ctx, companyID, documentRef)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ledger.ErrEntryNotFound
	}

	return ledger.ToEntryResponses(entries), nil
}

func (s *LedgerServiceImpl) ListPeriodEntries(ctx context.Context, year, month int) ([]ledger.LedgerEntryResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.ledgerRepo.ListByPeriod(ctx, companyID, year, month)
	if err != nil {
		return nil, err
	}

	return ledger.ToEntryResponses(entries), nil
}

func (s *LedgerServiceImpl) ListJournalEntries(ctx context.Context, journal string, year, month int) ([]ledger.LedgerEntryResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.ledgerRepo.ListByJournal(ctx, companyID, ledger.JournalCode(journal), year, month)
	if err != nil {
		return nil, err
	}

	return ledger.ToEntryResponses(entries), nil
}

func (s *LedgerServiceImpl) CheckPeriodBalance(ctx context.Context, year, month int) (ledger.BalanceReportResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return ledger.BalanceReportResponse{}, err
	}

	entries, err := s.ledgerRepo.ListByPeriod(ctx, companyID, year, month)
	if err != nil {
		return ledger.BalanceReportResponse{}, err
	}

	type balance struct{ debit, credit int64 }
	perRef := make(map[string]*balance)
	var order []string
	for _, e := range entries {
		bal, ok := perRef[e.DocumentRef]
		if !ok {
			bal = &balance{}
			perRef[e.DocumentRef] = bal
			order = append(order, e.DocumentRef)
		}
		bal.debit += e.Debit
		bal.credit += e.Credit
	}

	report := ledger.BalanceReportResponse{
		PeriodYear:  year,
		PeriodMonth: month,
		Balanced:    true,
	}
	for _, ref := range order {
		bal := perRef[ref]
		docBalanced := bal.debit == bal.credit
		if !docBalanced {
			report.Balanced = false
		}
		report.Documents = append(report.Documents, ledger.DocumentBalanceResponse{
			DocumentRef: ref,
			Debit:       bal.debit,
			Credit:      bal.credit,
			Balanced:    docBalanced,
		})
	}

	return report, nil
}
