package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDefaultAccountTable_Exhaustive(t *testing.T) {
	assert.NoError(t, DefaultAccountTable().Validate())
}

func TestAccountTable_ValidateFailsOnMissingCategory(t *testing.T) {
	table := DefaultAccountTable()
	delete(table.Categories, CategoryRent)
	assert.ErrorIs(t, table.Validate(), ErrUnmappedCategory)
}

func TestPostCommercial_UnpaidInvoice(t *testing.T) {
	// Invoice total 1200 of which tax 200: receivable 1200 debit = revenue
	// 1000 + tax 200 credit.
	doc := CommercialDocument{
		Ref:         "INV-2025-001",
		CompanyID:   "c1",
		Kind:        KindInvoice,
		Category:    CategoryServiceRevenue,
		TotalAmount: 1200,
		TaxAmount:   200,
		IssueDate:   day(2025, time.May, 12),
	}

	entries, err := PostCommercial(doc, DefaultAccountTable())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, JournalSales, entries[0].Journal)
	assert.Equal(t, "411", entries[0].AccountNumber)
	assert.Equal(t, int64(1200), entries[0].Debit)
	assert.Equal(t, "706", entries[1].AccountNumber)
	assert.Equal(t, int64(1000), entries[1].Credit)
	assert.Equal(t, "44571", entries[2].AccountNumber)
	assert.Equal(t, int64(200), entries[2].Credit)

	assert.NoError(t, CheckBalanced(entries))
	for _, e := range entries {
		assert.Equal(t, "INV-2025-001", e.DocumentRef)
		assert.Equal(t, 2025, e.PeriodYear)
		assert.Equal(t, 5, e.PeriodMonth)
		assert.Equal(t, 2025, e.FiscalYear)
	}
}

func TestPostCommercial_PaidInvoiceAddsBankSet(t *testing.T) {
	paid := day(2025, time.June, 2)
	doc := CommercialDocument{
		Ref:         "INV-2025-001",
		CompanyID:   "c1",
		Kind:        KindInvoice,
		Category:    CategoryServiceRevenue,
		TotalAmount: 1200,
		TaxAmount:   200,
		IssueDate:   day(2025, time.May, 12),
		Paid:        true,
		PaymentDate: &paid,
	}

	entries, err := PostCommercial(doc, DefaultAccountTable())
	require.NoError(t, err)
	require.Len(t, entries, 5)

	// Payment set is dated at payment date under its own reference.
	payment := entries[3:]
	assert.Equal(t, JournalBank, payment[0].Journal)
	assert.Equal(t, PaymentRef("INV-2025-001"), payment[0].DocumentRef)
	assert.Equal(t, doc.PaymentRef(), payment[0].DocumentRef)
	assert.Equal(t, "512", payment[0].AccountNumber)
	assert.Equal(t, int64(1200), payment[0].Debit)
	assert.Equal(t, "411", payment[1].AccountNumber)
	assert.Equal(t, int64(1200), payment[1].Credit)
	assert.Equal(t, paid, payment[0].EntryDate)

	assert.NoError(t, CheckBalanced(entries))
}

func TestPostCommercial_Expense(t *testing.T) {
	doc := CommercialDocument{
		Ref:         "EXP-77",
		CompanyID:   "c1",
		Kind:        KindExpense,
		Category:    CategoryRent,
		TotalAmount: 600,
		TaxAmount:   100,
		IssueDate:   day(2025, time.May, 1),
	}

	entries, err := PostCommercial(doc, DefaultAccountTable())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, JournalPurchases, entries[0].Journal)
	assert.Equal(t, "613", entries[0].AccountNumber)
	assert.Equal(t, int64(500), entries[0].Debit)
	assert.Equal(t, "44566", entries[1].AccountNumber)
	assert.Equal(t, int64(100), entries[1].Debit)
	assert.Equal(t, "401", entries[2].AccountNumber)
	assert.Equal(t, int64(600), entries[2].Credit)
	assert.NoError(t, CheckBalanced(entries))
}

func TestPostCommercial_NoTaxOmitsTaxLine(t *testing.T) {
	doc := CommercialDocument{
		Ref:         "INV-9",
		CompanyID:   "c1",
		Kind:        KindInvoice,
		Category:    CategoryGoodsRevenue,
		TotalAmount: 500,
		IssueDate:   day(2025, time.May, 1),
	}

	entries, err := PostCommercial(doc, DefaultAccountTable())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.NoError(t, CheckBalanced(entries))
}

func TestPostCommercial_FailsClosed(t *testing.T) {
	base := CommercialDocument{
		Ref:         "INV-1",
		Kind:        KindInvoice,
		Category:    CategoryServiceRevenue,
		TotalAmount: 100,
		IssueDate:   day(2025, time.May, 1),
	}

	unmapped := base
	unmapped.Category = Category("crypto_mining")
	_, err := PostCommercial(unmapped, DefaultAccountTable())
	assert.ErrorIs(t, err, ErrUnmappedCategory)

	noRef := base
	noRef.Ref = ""
	_, err = PostCommercial(noRef, DefaultAccountTable())
	assert.ErrorIs(t, err, ErrIncompleteDocument)

	noDate := base
	noDate.IssueDate = time.Time{}
	_, err = PostCommercial(noDate, DefaultAccountTable())
	assert.ErrorIs(t, err, ErrIncompleteDocument)

	paidNoDate := base
	paidNoDate.Paid = true
	_, err = PostCommercial(paidNoDate, DefaultAccountTable())
	assert.ErrorIs(t, err, ErrIncompleteDocument)

	taxOverTotal := base
	taxOverTotal.TaxAmount = 101
	_, err = PostCommercial(taxOverTotal, DefaultAccountTable())
	assert.ErrorIs(t, err, ErrIncompleteDocument)
}

func TestPostPayrollRun_FourBalancedLines(t *testing.T) {
	// Gross 10000, employer 4500, employee 2500 -> net 7500; debits
	// 10000+4500 = credits 7500+7000.
	totals := PayrollTotals{Gross: 10000, EmployerContrib: 4500, EmployeeContrib: 2500, Net: 7500}

	entries, err := PostPayrollRun("c1", "PAY-2025-05", day(2025, time.May, 31), totals, DefaultAccountTable())
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, int64(10000), entries[0].Debit)
	assert.Equal(t, "641", entries[0].AccountNumber)
	assert.Equal(t, int64(4500), entries[1].Debit)
	assert.Equal(t, "645", entries[1].AccountNumber)
	assert.Equal(t, int64(7500), entries[2].Credit)
	assert.Equal(t, "421", entries[2].AccountNumber)
	assert.Equal(t, int64(7000), entries[3].Credit)
	assert.Equal(t, "431", entries[3].AccountNumber)

	for _, e := range entries {
		assert.Equal(t, JournalPayroll, e.Journal)
		assert.Equal(t, "PAY-2025-05", e.DocumentRef)
	}
	assert.NoError(t, CheckBalanced(entries))
}

func TestPostPayrollRun_RejectsInconsistentTotals(t *testing.T) {
	totals := PayrollTotals{Gross: 10000, EmployerContrib: 4500, EmployeeContrib: 2500, Net: 7400}
	_, err := PostPayrollRun("c1", "PAY-2025-05", day(2025, time.May, 31), totals, DefaultAccountTable())
	assert.ErrorIs(t, err, ErrUnbalancedEntries)
}

func TestCheckBalanced(t *testing.T) {
	balanced := []LedgerEntry{
		{DocumentRef: "A", Debit: 100},
		{DocumentRef: "A", Credit: 100},
		{DocumentRef: "B", Debit: 50},
		{DocumentRef: "B", Credit: 50},
	}
	assert.NoError(t, CheckBalanced(balanced))

	unbalanced := []LedgerEntry{
		{DocumentRef: "A", Debit: 100},
		{DocumentRef: "A", Credit: 99},
	}
	assert.ErrorIs(t, CheckBalanced(unbalanced), ErrUnbalancedEntries)

	bothSides := []LedgerEntry{{DocumentRef: "A", Debit: 100, Credit: 100}}
	assert.ErrorIs(t, CheckBalanced(bothSides), ErrUnbalancedEntries)

	neitherSide := []LedgerEntry{{DocumentRef: "A"}}
	assert.ErrorIs(t, CheckBalanced(neitherSide), ErrUnbalancedEntries)
}
