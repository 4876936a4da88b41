package ledger

import "time"

// entryBuilder accumulates lines for one document reference with shared tags.
type entryBuilder struct {
	companyID string
	journal   JournalCode
	date      time.Time
	ref       string
	entries   []LedgerEntry
}

func (b *entryBuilder) debit(acc Account, amount int64) {
	b.add(acc, amount, 0)
}

func (b *entryBuilder) credit(acc Account, amount int64) {
	b.add(acc, 0, amount)
}

func (b *entryBuilder) add(acc Account, debit, credit int64) {
	b.entries = append(b.entries, LedgerEntry{
		CompanyID:     b.companyID,
		Journal:       b.journal,
		EntryDate:     b.date,
		DocumentRef:   b.ref,
		AccountNumber: acc.Number,
		AccountLabel:  acc.Label,
		Debit:         debit,
		Credit:        credit,
		PeriodYear:    b.date.Year(),
		PeriodMonth:   int(b.date.Month()),
		FiscalYear:    b.date.Year(),
	})
}

// PostCommercial converts an invoice or expense into balanced entry sets: an
// accrual set at issue date, plus a separate bank set at payment date when
// the document is flagged paid. All-or-nothing: a document missing required
// dating is rejected before any entry is produced.
func PostCommercial(doc CommercialDocument, table AccountTable) ([]LedgerEntry, error) {
	if doc.Ref == "" || doc.IssueDate.IsZero() {
		return nil, ErrIncompleteDocument
	}
	if doc.TotalAmount <= 0 || doc.TaxAmount < 0 || doc.TaxAmount > doc.TotalAmount {
		return nil, ErrIncompleteDocument
	}
	if doc.Paid && doc.PaymentDate == nil {
		return nil, ErrIncompleteDocument
	}

	category, err := table.categoryAccount(doc.Category)
	if err != nil {
		return nil, err
	}

	net := doc.TotalAmount - doc.TaxAmount
	var entries []LedgerEntry

	switch doc.Kind {
	case KindInvoice:
		accrual := entryBuilder{companyID: doc.CompanyID, journal: JournalSales, date: doc.IssueDate, ref: doc.Ref}
		accrual.debit(table.Receivable, doc.TotalAmount)
		accrual.credit(category, net)
		if doc.TaxAmount > 0 {
			accrual.credit(table.TaxCollected, doc.TaxAmount)
		}
		entries = accrual.entries

		if doc.Paid {
			payment := entryBuilder{companyID: doc.CompanyID, journal: JournalBank, date: *doc.PaymentDate, ref: doc.PaymentRef()}
			payment.debit(table.Bank, doc.TotalAmount)
			payment.credit(table.Receivable, doc.TotalAmount)
			entries = append(entries, payment.entries...)
		}

	case KindExpense:
		accrual := entryBuilder{companyID: doc.CompanyID, journal: JournalPurchases, date: doc.IssueDate, ref: doc.Ref}
		accrual.debit(category, net)
		if doc.TaxAmount > 0 {
			accrual.debit(table.TaxDeductible, doc.TaxAmount)
		}
		accrual.credit(table.Payable, doc.TotalAmount)
		entries = accrual.entries

		if doc.Paid {
			payment := entryBuilder{companyID: doc.CompanyID, journal: JournalBank, date: *doc.PaymentDate, ref: doc.PaymentRef()}
			payment.debit(table.Payable, doc.TotalAmount)
			payment.credit(table.Bank, doc.TotalAmount)
			entries = append(entries, payment.entries...)
		}

	default:
		return nil, ErrIncompleteDocument
	}

	if err := CheckBalanced(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// PayrollTotals carries the run aggregates the payroll journal posts from.
type PayrollTotals struct {
	Gross           int64
	EmployerContrib int64
	EmployeeContrib int64
	Net             int64
}

// PostPayrollRun emits the four payroll journal lines for one period:
// gross expense and employer-contribution expense on the debit side, net
// payable and contributions payable on the credit side. Balanced by
// construction since net = gross - employeeContrib; a mismatch is a logic
// defect and aborts the post.
func PostPayrollRun(companyID, ref string, entryDate time.Time, totals PayrollTotals, table AccountTable) ([]LedgerEntry, error) {
	if ref == "" || entryDate.IsZero() {
		return nil, ErrIncompleteDocument
	}
	if totals.Net != totals.Gross-totals.EmployeeContrib {
		return nil, ErrUnbalancedEntries
	}

	b := entryBuilder{companyID: companyID, journal: JournalPayroll, date: entryDate, ref: ref}
	b.debit(table.PayrollGross, totals.Gross)
	b.debit(table.PayrollEmployerCost, totals.EmployerContrib)
	b.credit(table.PayrollNetPayable, totals.Net)
	b.credit(table.PayrollContribution, totals.EmployerContrib+totals.EmployeeContrib)

	if err := CheckBalanced(b.entries); err != nil {
		return nil, err
	}
	return b.entries, nil
}

// CheckBalanced enforces the double-entry invariant per document reference:
// sum(debit) == sum(credit) across all entries sharing a reference, and each
// entry carries exactly one non-zero side.
func CheckBalanced(entries []LedgerEntry) error {
	type balance struct{ debit, credit int64 }
	perRef := make(map[string]*balance)
	for _, e := range entries {
		if (e.Debit == 0) == (e.Credit == 0) {
			return ErrUnbalancedEntries
		}
		if e.Debit < 0 || e.Credit < 0 {
			return ErrUnbalancedEntries
		}
		bal, ok := perRef[e.DocumentRef]
		if !ok {
			bal = &balance{}
			perRef[e.DocumentRef] = bal
		}
		bal.debit += e.Debit
		bal.credit += e.Credit
	}
	for _, bal := range perRef {
		if bal.debit != bal.credit {
			return ErrUnbalancedEntries
		}
	}
	return nil
}
