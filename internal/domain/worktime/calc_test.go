package worktime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func testCalendar() *Calendar {
	// 2025-05-01 is a Thursday holiday, 2025-05-04 is a Sunday that is also
	// a holiday, 2025-05-08 is a Thursday holiday.
	return NewCalendar([]int{2025}, []time.Time{
		date(2025, time.May, 1),
		date(2025, time.May, 4),
		date(2025, time.May, 8),
	})
}

func TestComputeBreakdown_OrdinaryDay(t *testing.T) {
	rec := AttendanceRecord{
		ID:         "r1",
		EmployeeID: "e1",
		Date:       date(2025, time.May, 5), // Monday
		ClockIn:    at(2025, time.May, 5, 9, 0),
		ClockOut:   at(2025, time.May, 5, 17, 30),
	}

	b, err := ComputeBreakdown(rec, testCalendar(), DefaultNightWindow())
	require.NoError(t, err)

	assert.Equal(t, 510, b.DayOrdinary)
	assert.Equal(t, 510, b.TotalMinutes())
}

func TestComputeBreakdown_BreakDeduction(t *testing.T) {
	rec := AttendanceRecord{
		ID:           "r1",
		EmployeeID:   "e1",
		Date:         date(2025, time.May, 5),
		ClockIn:      at(2025, time.May, 5, 9, 0),
		ClockOut:     at(2025, time.May, 5, 17, 30),
		BreakMinutes: 60,
	}

	b, err := ComputeBreakdown(rec, testCalendar(), DefaultNightWindow())
	require.NoError(t, err)

	assert.Equal(t, 450, b.DayOrdinary)
	assert.Equal(t, 450, b.TotalMinutes())
}

func TestComputeBreakdown_NightPortion(t *testing.T) {
	// 18:00-23:00 on a Monday: 3h day, 2h night (window starts 21:00).
	rec := AttendanceRecord{
		ID:         "r1",
		EmployeeID: "e1",
		Date:       date(2025, time.May, 5),
		ClockIn:    at(2025, time.May, 5, 18, 0),
		ClockOut:   at(2025, time.May, 5, 23, 0),
	}

	b, err := ComputeBreakdown(rec, testCalendar(), DefaultNightWindow())
	require.NoError(t, err)

	assert.Equal(t, 180, b.DayOrdinary)
	assert.Equal(t, 120, b.NightOrdinary)
	assert.Equal(t, 300, b.TotalMinutes())
}

func TestComputeBreakdown_OvernightSplitsDateClassification(t *testing.T) {
	// Saturday 22:00 -> Sunday 04:00. Night window covers the whole span.
	// Saturday portion: 2h night ordinary; Sunday portion: 4h night Sunday.
	rec := AttendanceRecord{
		ID:         "r1",
		EmployeeID: "e1",
		Date:       date(2025, time.May, 10), // Saturday
		ClockIn:    at(2025, time.May, 10, 22, 0),
		ClockOut:   at(2025, time.May, 11, 4, 0),
	}

	b, err := ComputeBreakdown(rec, testCalendar(), DefaultNightWindow())
	require.NoError(t, err)

	assert.Equal(t, 120, b.NightOrdinary)
	assert.Equal(t, 240, b.NightSunday)
	assert.Equal(t, 0, b.DayOrdinary)
	assert.Equal(t, 360, b.TotalMinutes())
}

func TestComputeBreakdown_SundayHolidayIsItsOwnBucket(t *testing.T) {
	// 2025-05-04 is both a Sunday and a holiday.
	rec := AttendanceRecord{
		ID:         "r1",
		EmployeeID: "e1",
		Date:       date(2025, time.May, 4),
		ClockIn:    at(2025, time.May, 4, 8, 0),
		ClockOut:   at(2025, time.May, 4, 12, 0),
	}

	b, err := ComputeBreakdown(rec, testCalendar(), DefaultNightWindow())
	require.NoError(t, err)

	assert.Equal(t, 240, b.DaySundayHoliday)
	assert.Zero(t, b.DaySunday)
	assert.Zero(t, b.DayHoliday)
	assert.Equal(t, 240, b.TotalMinutes())
}

func TestComputeBreakdown_HolidayDay(t *testing.T) {
	rec := AttendanceRecord{
		ID:         "r1",
		EmployeeID: "e1",
		Date:       date(2025, time.May, 1), // Thursday holiday
		ClockIn:    at(2025, time.May, 1, 9, 0),
		ClockOut:   at(2025, time.May, 1, 17, 0),
	}

	b, err := ComputeBreakdown(rec, testCalendar(), DefaultNightWindow())
	require.NoError(t, err)

	assert.Equal(t, 480, b.DayHoliday)
	assert.Equal(t, 480, b.TotalMinutes())
}

func TestComputeBreakdown_InvalidInterval(t *testing.T) {
	cases := []struct {
		name string
		rec  AttendanceRecord
	}{
		{
			name: "zero duration",
			rec: AttendanceRecord{
				ClockIn:  at(2025, time.May, 5, 9, 0),
				ClockOut: at(2025, time.May, 5, 9, 0),
			},
		},
		{
			name: "negative duration",
			rec: AttendanceRecord{
				ClockIn:  at(2025, time.May, 5, 17, 0),
				ClockOut: at(2025, time.May, 5, 9, 0),
			},
		},
		{
			name: "break swallows span",
			rec: AttendanceRecord{
				ClockIn:      at(2025, time.May, 5, 9, 0),
				ClockOut:     at(2025, time.May, 5, 10, 0),
				BreakMinutes: 60,
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ComputeBreakdown(c.rec, testCalendar(), DefaultNightWindow())
			assert.ErrorIs(t, err, ErrInvalidInterval)
		})
	}
}

func TestComputeBreakdown_MissingCalendarYear(t *testing.T) {
	rec := AttendanceRecord{
		ID:         "r1",
		EmployeeID: "e1",
		Date:       date(2024, time.December, 30),
		ClockIn:    at(2024, time.December, 30, 9, 0),
		ClockOut:   at(2024, time.December, 30, 17, 0),
	}

	_, err := ComputeBreakdown(rec, testCalendar(), DefaultNightWindow())
	assert.ErrorIs(t, err, ErrMissingCalendarData)
}

func TestComputeRange_PartialFailure(t *testing.T) {
	records := []AttendanceRecord{
		{
			ID:         "good",
			EmployeeID: "e1",
			Date:       date(2025, time.May, 5),
			ClockIn:    at(2025, time.May, 5, 9, 0),
			ClockOut:   at(2025, time.May, 5, 17, 0),
		},
		{
			ID:         "bad",
			EmployeeID: "e1",
			Date:       date(2025, time.May, 6),
			ClockIn:    at(2025, time.May, 6, 17, 0),
			ClockOut:   at(2025, time.May, 6, 9, 0),
		},
	}

	breakdowns, failed := ComputeRange(records, testCalendar(), DefaultNightWindow())

	require.Len(t, breakdowns, 1)
	assert.Equal(t, "good", breakdowns[0].RecordID)
	require.Len(t, failed, 1)
	assert.Equal(t, "bad", failed[0].RecordID)
	assert.ErrorIs(t, failed[0].Err, ErrInvalidInterval)
}

func TestComputeWeekly_TierSplit(t *testing.T) {
	// Contractual 35h, worked 44h in one ISO week, tier-1 threshold 8h:
	// overtime 9h -> tier1 8h, tier2 1h.
	var breakdowns []RecordBreakdown
	// Mon-Fri 2025-05-05..09, 8h48m per day = 44h.
	for d := 5; d <= 9; d++ {
		breakdowns = append(breakdowns, RecordBreakdown{
			RecordID:   "r",
			EmployeeID: "e1",
			Date:       date(2025, time.May, d),
			Breakdown:  Breakdown{DayOrdinary: 528},
		})
	}

	results := ComputeWeekly("e1", breakdowns, 35*60, 8*60, 220*60)

	require.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, 2025, r.ISOYear)
	assert.Equal(t, 44*60, r.WorkedMinutes)
	assert.Equal(t, 9*60, r.OvertimeMinutes)
	assert.Equal(t, 8*60, r.Tier1Minutes)
	assert.Equal(t, 1*60, r.Tier2Minutes)
	assert.Equal(t, r.OvertimeMinutes, r.Tier1Minutes+r.Tier2Minutes)
	assert.False(t, r.ContingentExceeded)
}

func TestComputeWeekly_NoOvertimeBelowContractual(t *testing.T) {
	breakdowns := []RecordBreakdown{
		{EmployeeID: "e1", Date: date(2025, time.May, 5), Breakdown: Breakdown{DayOrdinary: 30 * 60}},
	}

	results := ComputeWeekly("e1", breakdowns, 35*60, 8*60, 220*60)

	require.Len(t, results, 1)
	assert.Zero(t, results[0].OvertimeMinutes)
	assert.Zero(t, results[0].Tier1Minutes)
	assert.Zero(t, results[0].Tier2Minutes)
}

func TestComputeWeekly_AnnualBalanceAndContingent(t *testing.T) {
	// Two weeks of 45h against 35h contractual: 10h overtime each. With a
	// 15h contingent the second week exceeds it.
	breakdowns := []RecordBreakdown{
		{EmployeeID: "e1", Date: date(2025, time.May, 5), Breakdown: Breakdown{DayOrdinary: 45 * 60}},
		{EmployeeID: "e1", Date: date(2025, time.May, 12), Breakdown: Breakdown{DayOrdinary: 45 * 60}},
	}

	results := ComputeWeekly("e1", breakdowns, 35*60, 8*60, 15*60)

	require.Len(t, results, 2)
	assert.Equal(t, 10*60, results[0].AnnualBalanceMinutes)
	assert.False(t, results[0].ContingentExceeded)
	assert.Equal(t, 20*60, results[1].AnnualBalanceMinutes)
	assert.True(t, results[1].ContingentExceeded)
}

func TestWeekStart(t *testing.T) {
	// ISO week 1 of 2025 starts on Monday 2024-12-30; week 19 on 2025-05-05.
	assert.Equal(t, date(2024, time.December, 30), WeekStart(2025, 1))
	assert.Equal(t, date(2025, time.May, 5), WeekStart(2025, 19))
	assert.Equal(t, date(2025, time.December, 29), WeekStart(2026, 1))
}

func TestFilterWeeksForPeriod_BoundaryWeekSettlesOnce(t *testing.T) {
	// Weeks 1-9 of 2025. Week 5 runs Mon Jan 27 - Sun Feb 2 and must settle
	// in February, not January.
	var results []WeeklyOvertimeResult
	for w := 1; w <= 9; w++ {
		results = append(results, WeeklyOvertimeResult{EmployeeID: "e1", ISOYear: 2025, ISOWeek: w})
	}

	january := FilterWeeksForPeriod(results, 2025, time.January)
	february := FilterWeeksForPeriod(results, 2025, time.February)

	require.Len(t, january, 4)
	assert.Equal(t, 4, january[len(january)-1].ISOWeek)
	require.Len(t, february, 4)
	assert.Equal(t, 5, february[0].ISOWeek)
	assert.Equal(t, 8, february[len(february)-1].ISOWeek)
}

func TestFilterWeeksForPeriod_KeepsYearToDateBalance(t *testing.T) {
	// January overtime must count against the annual contingent when the
	// March run is computed, even though only March weeks are paid.
	breakdowns := []RecordBreakdown{
		{EmployeeID: "e1", Date: date(2025, time.January, 6), Breakdown: Breakdown{DayOrdinary: 45 * 60}},
		{EmployeeID: "e1", Date: date(2025, time.March, 3), Breakdown: Breakdown{DayOrdinary: 40 * 60}},
	}

	results := ComputeWeekly("e1", breakdowns, 35*60, 8*60, 12*60)
	march := FilterWeeksForPeriod(results, 2025, time.March)

	require.Len(t, march, 1)
	assert.Equal(t, 5*60, march[0].OvertimeMinutes)
	assert.Equal(t, 15*60, march[0].AnnualBalanceMinutes)
	assert.True(t, march[0].ContingentExceeded)

	// Alone, the March week stays within the contingent.
	soloResults := ComputeWeekly("e1", breakdowns[1:], 35*60, 8*60, 12*60)
	require.Len(t, soloResults, 1)
	assert.False(t, soloResults[0].ContingentExceeded)
}

func TestComputeWeekly_IgnoresOtherEmployees(t *testing.T) {
	breakdowns := []RecordBreakdown{
		{EmployeeID: "e1", Date: date(2025, time.May, 5), Breakdown: Breakdown{DayOrdinary: 40 * 60}},
		{EmployeeID: "e2", Date: date(2025, time.May, 5), Breakdown: Breakdown{DayOrdinary: 50 * 60}},
	}

	results := ComputeWeekly("e1", breakdowns, 35*60, 8*60, 0)

	require.Len(t, results, 1)
	assert.Equal(t, 40*60, results[0].WorkedMinutes)
}
