package ledger

// Category enum - closed set of commercial document categories. New
// categories are additive: declare the constant, add it to AllCategories and
// map it in the account table; an unmapped category fails closed at startup.
type Category string

const (
	CategoryServiceRevenue Category = "service_revenue"
	CategoryGoodsRevenue   Category = "goods_revenue"
	CategorySupplies       Category = "supplies"
	CategoryRent           Category = "rent"
	CategoryTelecom        Category = "telecom"
	CategoryInsurance      Category = "insurance"
	CategorySubcontracting Category = "subcontracting"
)

// AllCategories lists every declared category for exhaustive validation.
var AllCategories = []Category{
	CategoryServiceRevenue,
	CategoryGoodsRevenue,
	CategorySupplies,
	CategoryRent,
	CategoryTelecom,
	CategoryInsurance,
	CategorySubcontracting,
}

// Account - chart-of-accounts entry.
type Account struct {
	Number string
	Label  string
}

// AccountTable - the static category and structural account lookup used by
// the poster. Versionable as one value; never consulted through globals.
type AccountTable struct {
	Categories map[Category]Account

	Receivable          Account
	Payable             Account
	Bank                Account
	TaxCollected        Account
	TaxDeductible       Account
	PayrollGross        Account
	PayrollEmployerCost Account
	PayrollNetPayable   Account
	PayrollContribution Account
}

// DefaultAccountTable returns the built-in chart mapping (French PCG-style
// numbering, as the source system uses).
func DefaultAccountTable() AccountTable {
	return AccountTable{
		Categories: map[Category]Account{
			CategoryServiceRevenue: {Number: "706", Label: "Prestations de services"},
			CategoryGoodsRevenue:   {Number: "707", Label: "Ventes de marchandises"},
			CategorySupplies:       {Number: "606", Label: "Achats non stockés"},
			CategoryRent:           {Number: "613", Label: "Locations"},
			CategoryTelecom:        {Number: "626", Label: "Frais postaux et télécommunications"},
			CategoryInsurance:      {Number: "616", Label: "Primes d'assurance"},
			CategorySubcontracting: {Number: "611", Label: "Sous-traitance générale"},
		},
		Receivable:          Account{Number: "411", Label: "Clients"},
		Payable:             Account{Number: "401", Label: "Fournisseurs"},
		Bank:                Account{Number: "512", Label: "Banque"},
		TaxCollected:        Account{Number: "44571", Label: "TVA collectée"},
		TaxDeductible:       Account{Number: "44566", Label: "TVA déductible"},
		PayrollGross:        Account{Number: "641", Label: "Rémunérations du personnel"},
		PayrollEmployerCost: Account{Number: "645", Label: "Charges de sécurité sociale"},
		PayrollNetPayable:   Account{Number: "421", Label: "Personnel - rémunérations dues"},
		PayrollContribution: Account{Number: "431", Label: "Sécurité sociale"},
	}
}

// Validate checks the table exhaustively: every declared category must be
// mapped and every structural account filled. Run at startup so an unmapped
// category fails fast instead of posting to a wrong account.
func (t AccountTable) Validate() error {
	for _, c := range AllCategories {
		acc, ok := t.Categories[c]
		if !ok || acc.Number == "" {
			return ErrUnmappedCategory
		}
	}
	structural := []Account{
		t.Receivable, t.Payable, t.Bank, t.TaxCollected, t.TaxDeductible,
		t.PayrollGross, t.PayrollEmployerCost, t.PayrollNetPayable, t.PayrollContribution,
	}
	for _, acc := range structural {
		if acc.Number == "" {
			return ErrUnmappedCategory
		}
	}
	return nil
}

// categoryAccount resolves a category, failing closed on unknown values.
func (t AccountTable) categoryAccount(c Category) (Account, error) {
	acc, ok := t.Categories[c]
	if !ok || acc.Number == "" {
		return Account{}, ErrUnmappedCategory
	}
	return acc, nil
}
