package contribution

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rate(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testParams() SocialParameterSet {
	return SocialParameterSet{
		MonthlyCeiling: 3500,
		Lines: []ContributionLine{
			{Code: "HEALTH", Label: "Health insurance", EmployerRate: rate("0.13"), EmployeeRate: rate("0.0075"), AppliesAboveCeiling: true},
			{Code: "PENSION_T1", Label: "Capped pension", EmployerRate: rate("0.0855"), EmployeeRate: rate("0.0690"), AppliesAboveCeiling: false},
		},
		OvertimeTier1Rate:     rate("0.25"),
		OvertimeTier2Rate:     rate("0.50"),
		Tier1ThresholdMinutes: 8 * 60,
	}
}

func TestCompute_CeilingTranche(t *testing.T) {
	// Gross 4000, ceiling 3500: uncapped lines on 4000, capped on 3500.
	result, err := Compute(4000, testParams())
	require.NoError(t, err)

	assert.Equal(t, int64(3500), result.Tranche1)
	require.Len(t, result.Lines, 2)

	health := result.Lines[0]
	assert.Equal(t, int64(4000), health.Base)
	assert.Equal(t, int64(520), health.EmployerAmount) // 4000 * 0.13
	assert.Equal(t, int64(30), health.EmployeeAmount)  // 4000 * 0.0075

	pension := result.Lines[1]
	assert.Equal(t, int64(3500), pension.Base)
	assert.Equal(t, int64(299), pension.EmployerAmount) // 3500 * 0.0855 = 299.25
	assert.Equal(t, int64(242), pension.EmployeeAmount) // 3500 * 0.0690 = 241.5 -> 242
}

func TestCompute_GrossBelowCeiling(t *testing.T) {
	result, err := Compute(3000, testParams())
	require.NoError(t, err)

	assert.Equal(t, int64(3000), result.Tranche1)
	for _, line := range result.Lines {
		assert.Equal(t, int64(3000), line.Base)
	}
}

func TestCompute_TotalsAreSumsOfRoundedLines(t *testing.T) {
	result, err := Compute(4000, testParams())
	require.NoError(t, err)

	var employer, employee int64
	for _, line := range result.Lines {
		employer += line.EmployerAmount
		employee += line.EmployeeAmount
	}
	assert.Equal(t, employer, result.EmployerTotal)
	assert.Equal(t, employee, result.EmployeeTotal)
	assert.Equal(t, result.Gross-result.EmployeeTotal, result.Net)
}

func TestCompute_RoundHalfAwayFromZero(t *testing.T) {
	params := SocialParameterSet{
		MonthlyCeiling: 10000,
		Lines: []ContributionLine{
			{Code: "X", EmployerRate: rate("0.005"), EmployeeRate: rate("0.005"), AppliesAboveCeiling: true},
		},
	}

	// 101 * 0.005 = 0.505 -> 1, never banker's-rounded to 0.
	result, err := Compute(101, params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Lines[0].EmployerAmount)
}

func TestCompute_Reproducible(t *testing.T) {
	a, err := Compute(4000, testParams())
	require.NoError(t, err)
	b, err := Compute(4000, testParams())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCompute_Errors(t *testing.T) {
	_, err := Compute(-1, testParams())
	assert.ErrorIs(t, err, ErrNegativeGross)

	_, err = Compute(1000, SocialParameterSet{})
	assert.ErrorIs(t, err, ErrInvalidParameterSet)
}

func TestOvertimePay_TwoTiers(t *testing.T) {
	params := testParams()
	// Base 3033 minor units/month at 35h/week: monthly minutes = 35*60*52/12
	// = 9100, minute rate = 0.3333... Tier1 8h=480min @ +25%, tier2 1h=60min
	// @ +50%.
	pay := OvertimePay(3033, 35*60, 8*60, 1*60, params)

	// tier1: 3033/9100*480*1.25 = 199.98... -> 200
	// tier2: 3033/9100*60*1.50 = 30.0 -> 30
	assert.Equal(t, int64(230), pay)
}

func TestOvertimePay_ZeroWithoutOvertime(t *testing.T) {
	assert.Zero(t, OvertimePay(3000, 35*60, 0, 0, testParams()))
	assert.Zero(t, OvertimePay(3000, 0, 60, 0, testParams()))
}
