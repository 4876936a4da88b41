package contribution

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContributionLine - one contribution scheme line in a parameter set.
// Rates are fractions (6.9% is 0.069). When AppliesAboveCeiling is true the
// line is computed on the full gross, otherwise on the capped tranche-1 base.
type ContributionLine struct {
	Code                string
	Label               string
	EmployerRate        decimal.Decimal
	EmployeeRate        decimal.Decimal
	AppliesAboveCeiling bool
}

// SocialParameterSet - versioned, date-effective rate set. Immutable once a
// closed payroll run references it; runs snapshot the set ID, never re-read
// live rates for historical periods.
type SocialParameterSet struct {
	ID                      string
	CompanyID               string
	Version                 int
	EffectiveFrom           time.Time
	MonthlyCeiling          int64 // minor currency units
	Lines                   []ContributionLine
	OvertimeTier1Rate       decimal.Decimal // majoration on the first tier, e.g. 0.25
	OvertimeTier2Rate       decimal.Decimal // majoration beyond the tier-1 threshold, e.g. 0.50
	Tier1ThresholdMinutes   int
	AnnualContingentMinutes int
	CreatedAt               time.Time
}

// LineResult - audit detail for one computed contribution line. Amounts are
// rounded exactly once, at line level.
type LineResult struct {
	Code           string
	Label          string
	Base           int64
	EmployerAmount int64
	EmployeeAmount int64
}

// Result - contribution totals for one gross salary in one period.
type Result struct {
	Gross         int64
	Tranche1      int64
	EmployerTotal int64
	EmployeeTotal int64
	Net           int64
	Lines         []LineResult
}
