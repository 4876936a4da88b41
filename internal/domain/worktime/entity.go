package worktime

import (
	"time"
)

// AttendanceSource enum
type AttendanceSource string

const (
	SourceManual   AttendanceSource = "manual"
	SourceImported AttendanceSource = "imported"
	SourceSystem   AttendanceSource = "system"
)

// AttendanceRecord - one worked span for one employee on one work date.
// ClockOut may fall on the next calendar day for overnight shifts.
type AttendanceRecord struct {
	ID           string
	CompanyID    string
	EmployeeID   string
	Date         time.Time
	ClockIn      time.Time
	ClockOut     time.Time
	BreakMinutes int
	Source       AttendanceSource
	Validated    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Breakdown - the eight worked-minute buckets for one attendance record.
// The day/night axis and the ordinary/Sunday/holiday/Sunday+holiday axis are
// orthogonal; an interval on a Sunday that is also a public holiday lands in
// the SundayHoliday buckets, never in both the Sunday and Holiday ones.
type Breakdown struct {
	DayOrdinary        int
	NightOrdinary      int
	DaySunday          int
	NightSunday        int
	DayHoliday         int
	NightHoliday       int
	DaySundayHoliday   int
	NightSundayHoliday int
}

// TotalMinutes sums all eight buckets.
func (b Breakdown) TotalMinutes() int {
	return b.DayOrdinary + b.NightOrdinary +
		b.DaySunday + b.NightSunday +
		b.DayHoliday + b.NightHoliday +
		b.DaySundayHoliday + b.NightSundayHoliday
}

// Add returns the bucket-wise sum of two breakdowns.
func (b Breakdown) Add(o Breakdown) Breakdown {
	return Breakdown{
		DayOrdinary:        b.DayOrdinary + o.DayOrdinary,
		NightOrdinary:      b.NightOrdinary + o.NightOrdinary,
		DaySunday:          b.DaySunday + o.DaySunday,
		NightSunday:        b.NightSunday + o.NightSunday,
		DayHoliday:         b.DayHoliday + o.DayHoliday,
		NightHoliday:       b.NightHoliday + o.NightHoliday,
		DaySundayHoliday:   b.DaySundayHoliday + o.DaySundayHoliday,
		NightSundayHoliday: b.NightSundayHoliday + o.NightSundayHoliday,
	}
}

// RecordBreakdown pairs a derived breakdown with its source record.
type RecordBreakdown struct {
	RecordID   string
	EmployeeID string
	Date       time.Time
	Breakdown  Breakdown
}

// RecordError reports one malformed record without aborting the batch.
type RecordError struct {
	RecordID string
	Err      error
}

// WeeklyOvertimeResult - per employee per ISO week overtime split.
type WeeklyOvertimeResult struct {
	EmployeeID           string
	ISOYear              int
	ISOWeek              int
	ContractualMinutes   int
	WorkedMinutes        int
	OvertimeMinutes      int
	Tier1Minutes         int
	Tier2Minutes         int
	AnnualBalanceMinutes int
	ContingentExceeded   bool
}

// NightWindow - legal night hours, minutes from midnight. The window wraps
// midnight when End < Start (e.g. 21:00-06:00 is {1260, 360}).
type NightWindow struct {
	StartMinute int
	EndMinute   int
}

// DefaultNightWindow is 21:00-06:00.
func DefaultNightWindow() NightWindow {
	return NightWindow{StartMinute: 21 * 60, EndMinute: 6 * 60}
}

// HolidayCalendar resolves whether a calendar date is a public holiday.
// Implementations return ErrMissingCalendarData when the date's year is not
// covered by loaded data.
type HolidayCalendar interface {
	IsHoliday(date time.Time) (bool, error)
}

// Calendar is a preloaded in-memory HolidayCalendar keyed by date.
type Calendar struct {
	years    map[int]bool
	holidays map[string]bool
}

// NewCalendar builds a calendar covering the given years.
func NewCalendar(years []int, holidays []time.Time) *Calendar {
	c := &Calendar{
		years:    make(map[int]bool, len(years)),
		holidays: make(map[string]bool, len(holidays)),
	}
	for _, y := range years {
		c.years[y] = true
	}
	for _, d := range holidays {
		c.holidays[d.Format("2006-01-02")] = true
	}
	return c
}

func (c *Calendar) IsHoliday(date time.Time) (bool, error) {
	if !c.years[date.Year()] {
		return false, ErrMissingCalendarData
	}
	return c.holidays[date.Format("2006-01-02")], nil
}
