package contribution

import "github.com/shopspring/decimal"

// Compute splits gross into the ceiling tranche and applies every line of the
// parameter set. Each line amount is rounded to the nearest minor unit (half
// away from zero) exactly once; totals are sums of already-rounded lines so
// the per-line audit always reconciles with the totals.
func Compute(gross int64, params SocialParameterSet) (Result, error) {
	if gross < 0 {
		return Result{}, ErrNegativeGross
	}
	if params.MonthlyCeiling <= 0 {
		return Result{}, ErrInvalidParameterSet
	}

	tranche1 := gross
	if tranche1 > params.MonthlyCeiling {
		tranche1 = params.MonthlyCeiling
	}

	result := Result{
		Gross:    gross,
		Tranche1: tranche1,
		Lines:    make([]LineResult, 0, len(params.Lines)),
	}

	for _, line := range params.Lines {
		base := tranche1
		if line.AppliesAboveCeiling {
			base = gross
		}
		employer := roundMinor(decimal.NewFromInt(base).Mul(line.EmployerRate))
		employee := roundMinor(decimal.NewFromInt(base).Mul(line.EmployeeRate))

		result.Lines = append(result.Lines, LineResult{
			Code:           line.Code,
			Label:          line.Label,
			Base:           base,
			EmployerAmount: employer,
			EmployeeAmount: employee,
		})
		result.EmployerTotal += employer
		result.EmployeeTotal += employee
	}

	result.Net = gross - result.EmployeeTotal
	return result, nil
}

// roundMinor rounds to a whole minor unit, half away from zero.
func roundMinor(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// OvertimePay prices the two overtime tiers off the hourly rate derived from
// the monthly base salary and contractual weekly hours, applying the
// majoration percentages. Each tier is rounded once.
func OvertimePay(baseSalary int64, contractualWeeklyMinutes, tier1Minutes, tier2Minutes int, params SocialParameterSet) int64 {
	if contractualWeeklyMinutes <= 0 || (tier1Minutes <= 0 && tier2Minutes <= 0) {
		return 0
	}

	// Monthly contractual minutes follow the usual 52/12 weekly-to-monthly
	// conversion used for hourly rate derivation.
	monthlyMinutes := decimal.NewFromInt(int64(contractualWeeklyMinutes)).
		Mul(decimal.NewFromInt(52)).
		Div(decimal.NewFromInt(12))
	minuteRate := decimal.NewFromInt(baseSalary).Div(monthlyMinutes)

	one := decimal.NewFromInt(1)
	tier1 := minuteRate.
		Mul(decimal.NewFromInt(int64(tier1Minutes))).
		Mul(one.Add(params.OvertimeTier1Rate))
	tier2 := minuteRate.
		Mul(decimal.NewFromInt(int64(tier2Minutes))).
		Mul(one.Add(params.OvertimeTier2Rate))

	return roundMinor(tier1) + roundMinor(tier2)
}
