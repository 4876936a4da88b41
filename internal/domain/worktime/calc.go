package worktime

import (
	"sort"
	"time"
)

// ComputeBreakdown derives the eight-bucket breakdown for one record.
// Overnight spans are split at midnight for date classification (Sunday,
// holiday) while the night window applies continuously across the split.
func ComputeBreakdown(rec AttendanceRecord, cal HolidayCalendar, window NightWindow) (Breakdown, error) {
	if !rec.ClockOut.After(rec.ClockIn) {
		return Breakdown{}, ErrInvalidInterval
	}
	spanMinutes := int(rec.ClockOut.Sub(rec.ClockIn) / time.Minute)
	if spanMinutes-rec.BreakMinutes <= 0 {
		return Breakdown{}, ErrInvalidInterval
	}

	var b Breakdown
	cur := rec.ClockIn
	for cur.Before(rec.ClockOut) {
		dayStart := time.Date(cur.Year(), cur.Month(), cur.Day(), 0, 0, 0, 0, cur.Location())
		dayEnd := dayStart.AddDate(0, 0, 1)
		segEnd := rec.ClockOut
		if dayEnd.Before(segEnd) {
			segEnd = dayEnd
		}

		startMin := int(cur.Sub(dayStart) / time.Minute)
		endMin := int(segEnd.Sub(dayStart) / time.Minute)
		total := endMin - startMin
		night := nightMinutes(startMin, endMin, window)
		day := total - night

		isHoliday, err := cal.IsHoliday(dayStart)
		if err != nil {
			return Breakdown{}, err
		}
		isSunday := dayStart.Weekday() == time.Sunday

		switch {
		case isSunday && isHoliday:
			b.DaySundayHoliday += day
			b.NightSundayHoliday += night
		case isSunday:
			b.DaySunday += day
			b.NightSunday += night
		case isHoliday:
			b.DayHoliday += day
			b.NightHoliday += night
		default:
			b.DayOrdinary += day
			b.NightOrdinary += night
		}

		cur = segEnd
	}

	deductBreak(&b, rec.BreakMinutes)
	return b, nil
}

// nightMinutes returns the overlap of [startMin,endMin) with the night
// window on a single calendar day. A wrapping window (End < Start) covers
// [0,End) and [Start,1440).
func nightMinutes(startMin, endMin int, w NightWindow) int {
	if w.EndMinute >= w.StartMinute {
		return overlap(startMin, endMin, w.StartMinute, w.EndMinute)
	}
	return overlap(startMin, endMin, 0, w.EndMinute) + overlap(startMin, endMin, w.StartMinute, 24*60)
}

func overlap(aStart, aEnd, bStart, bEnd int) int {
	start := aStart
	if bStart > start {
		start = bStart
	}
	end := aEnd
	if bEnd < end {
		end = bEnd
	}
	if end <= start {
		return 0
	}
	return end - start
}

// deductBreak removes break minutes from the buckets deterministically: day
// buckets before night buckets, ordinary before Sunday before holiday before
// Sunday+holiday. Keeps the sum-of-buckets invariant exact without rounding.
func deductBreak(b *Breakdown, breakMinutes int) {
	buckets := []*int{
		&b.DayOrdinary, &b.DaySunday, &b.DayHoliday, &b.DaySundayHoliday,
		&b.NightOrdinary, &b.NightSunday, &b.NightHoliday, &b.NightSundayHoliday,
	}
	remaining := breakMinutes
	for _, bucket := range buckets {
		if remaining == 0 {
			break
		}
		take := *bucket
		if take > remaining {
			take = remaining
		}
		*bucket -= take
		remaining -= take
	}
}

// ComputeRange derives breakdowns for a batch of records. Malformed records
// and records with missing calendar data are reported individually and
// excluded; one bad record never aborts the batch.
func ComputeRange(records []AttendanceRecord, cal HolidayCalendar, window NightWindow) ([]RecordBreakdown, []RecordError) {
	var out []RecordBreakdown
	var failed []RecordError
	for _, rec := range records {
		b, err := ComputeBreakdown(rec, cal, window)
		if err != nil {
			failed = append(failed, RecordError{RecordID: rec.ID, Err: err})
			continue
		}
		out = append(out, RecordBreakdown{
			RecordID:   rec.ID,
			EmployeeID: rec.EmployeeID,
			Date:       rec.Date,
			Breakdown:  b,
		})
	}
	return out, failed
}

type isoWeek struct {
	year int
	week int
}

// WeekStart returns the Monday of the given ISO week.
func WeekStart(isoYear, week int) time.Time {
	// January 4 is always inside ISO week 1.
	jan4 := time.Date(isoYear, time.January, 4, 0, 0, 0, 0, time.UTC)
	wd := int(jan4.Weekday())
	if wd == 0 {
		wd = 7
	}
	week1Monday := jan4.AddDate(0, 0, 1-wd)
	return week1Monday.AddDate(0, 0, (week-1)*7)
}

// FilterWeeksForPeriod keeps the weekly results settled in the given month.
// A week settles in the month containing its Sunday, so a week spanning a
// month boundary is paid in exactly one monthly run.
func FilterWeeksForPeriod(results []WeeklyOvertimeResult, year int, month time.Month) []WeeklyOvertimeResult {
	var out []WeeklyOvertimeResult
	for _, r := range results {
		sunday := WeekStart(r.ISOYear, r.ISOWeek).AddDate(0, 0, 6)
		if sunday.Year() == year && sunday.Month() == month {
			out = append(out, r)
		}
	}
	return out
}

// ComputeWeekly aggregates one employee's breakdowns per ISO week (Mon-Sun)
// and applies the two-tier overtime split. The annual overtime balance runs
// per ISO year and is compared against the annual contingent ceiling.
func ComputeWeekly(employeeID string, breakdowns []RecordBreakdown, contractualWeeklyMinutes, tier1ThresholdMinutes, annualContingentMinutes int) []WeeklyOvertimeResult {
	workedPerWeek := make(map[isoWeek]int)
	for _, rb := range breakdowns {
		if rb.EmployeeID != employeeID {
			continue
		}
		y, w := rb.Date.ISOWeek()
		workedPerWeek[isoWeek{year: y, week: w}] += rb.Breakdown.TotalMinutes()
	}

	weeks := make([]isoWeek, 0, len(workedPerWeek))
	for wk := range workedPerWeek {
		weeks = append(weeks, wk)
	}
	sort.Slice(weeks, func(i, j int) bool {
		if weeks[i].year != weeks[j].year {
			return weeks[i].year < weeks[j].year
		}
		return weeks[i].week < weeks[j].week
	})

	var results []WeeklyOvertimeResult
	annualBalance := 0
	currentYear := 0
	for _, wk := range weeks {
		if wk.year != currentYear {
			currentYear = wk.year
			annualBalance = 0
		}
		worked := workedPerWeek[wk]
		overtime := worked - contractualWeeklyMinutes
		if overtime < 0 {
			overtime = 0
		}
		tier1 := overtime
		if tier1 > tier1ThresholdMinutes {
			tier1 = tier1ThresholdMinutes
		}
		tier2 := overtime - tier1
		annualBalance += overtime

		results = append(results, WeeklyOvertimeResult{
			EmployeeID:           employeeID,
			ISOYear:              wk.year,
			ISOWeek:              wk.week,
			ContractualMinutes:   contractualWeeklyMinutes,
			WorkedMinutes:        worked,
			OvertimeMinutes:      overtime,
			Tier1Minutes:         tier1,
			Tier2Minutes:         tier2,
			AnnualBalanceMinutes: annualBalance,
			ContingentExceeded:   annualContingentMinutes > 0 && annualBalance > annualContingentMinutes,
		})
	}
	return results
}
