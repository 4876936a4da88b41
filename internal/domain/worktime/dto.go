package worktime

import (
	"time"

	"github.com/issouftoure58-design/nexus-sub008/internal/pkg/validator"
)

// ========== ATTENDANCE DTOs ==========

type CreateAttendanceRequest struct {
	EmployeeID   string `json:"employee_id"`
	Date         string `json:"date"`
	ClockIn      string `json:"clock_in"`
	ClockOut     string `json:"clock_out"`
	BreakMinutes int    `json:"break_minutes"`
	Source       string `json:"source"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	clockIn, inOK := parseClock(r.ClockIn)
	if !inOK {
		errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "must be an ISO8601 timestamp"})
	}
	clockOut, outOK := parseClock(r.ClockOut)
	if !outOK {
		errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "must be an ISO8601 timestamp"})
	}
	if inOK && outOK && !clockOut.After(clockIn) {
		errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "must be after clock_in"})
	}
	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "break_minutes", Message: "must be non-negative"})
	}
	if !validator.IsInSlice(r.Source, []string{string(SourceManual), string(SourceImported), string(SourceSystem)}) {
		errs = append(errs, validator.ValidationError{Field: "source", Message: "must be manual, imported or system"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func parseClock(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, s)
	return t, err == nil
}

type AttendanceResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	Date         string `json:"date"`
	ClockIn      string `json:"clock_in"`
	ClockOut     string `json:"clock_out"`
	BreakMinutes int    `json:"break_minutes"`
	Source       string `json:"source"`
	Validated    bool   `json:"validated"`
}

func ToAttendanceResponse(rec AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		Date:         rec.Date.Format("2006-01-02"),
		ClockIn:      rec.ClockIn.Format(time.RFC3339),
		ClockOut:     rec.ClockOut.Format(time.RFC3339),
		BreakMinutes: rec.BreakMinutes,
		Source:       string(rec.Source),
		Validated:    rec.Validated,
	}
}

// ========== BREAKDOWN DTOs ==========

type BreakdownFilter struct {
	EmployeeID string `json:"employee_id"`
	From       string `json:"from"`
	To         string `json:"to"`
}

func (f *BreakdownFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	from, fromOK := validator.IsValidDate(f.From)
	if !fromOK {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	to, toOK := validator.IsValidDate(f.To)
	if !toOK {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must not be before from"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BreakdownReportResponse struct {
	EmployeeID string                   `json:"employee_id"`
	From       string                   `json:"from"`
	To         string                   `json:"to"`
	Breakdowns []BreakdownResponse      `json:"breakdowns"`
	Failed     []RecordErrorResponse    `json:"failed_records,omitempty"`
	Weekly     []WeeklyOvertimeResponse `json:"weekly_overtime"`
}

type BreakdownResponse struct {
	RecordID           string `json:"record_id"`
	EmployeeID         string `json:"employee_id"`
	Date               string `json:"date"`
	DayOrdinary        int    `json:"day_ordinary_minutes"`
	NightOrdinary      int    `json:"night_ordinary_minutes"`
	DaySunday          int    `json:"day_sunday_minutes"`
	NightSunday        int    `json:"night_sunday_minutes"`
	DayHoliday         int    `json:"day_holiday_minutes"`
	NightHoliday       int    `json:"night_holiday_minutes"`
	DaySundayHoliday   int    `json:"day_sunday_holiday_minutes"`
	NightSundayHoliday int    `json:"night_sunday_holiday_minutes"`
	TotalMinutes       int    `json:"total_minutes"`
}

type RecordErrorResponse struct {
	RecordID string `json:"record_id"`
	Message  string `json:"message"`
}

type WeeklyOvertimeResponse struct {
	EmployeeID           string `json:"employee_id"`
	ISOYear              int    `json:"iso_year"`
	ISOWeek              int    `json:"iso_week"`
	ContractualMinutes   int    `json:"contractual_minutes"`
	WorkedMinutes        int    `json:"worked_minutes"`
	OvertimeMinutes      int    `json:"overtime_minutes"`
	Tier1Minutes         int    `json:"tier1_minutes"`
	Tier2Minutes         int    `json:"tier2_minutes"`
	AnnualBalanceMinutes int    `json:"annual_balance_minutes"`
	ContingentExceeded   bool   `json:"contingent_exceeded"`
}

func ToBreakdownResponse(rb RecordBreakdown) BreakdownResponse {
	return BreakdownResponse{
		RecordID:           rb.RecordID,
		EmployeeID:         rb.EmployeeID,
		Date:               rb.Date.Format("2006-01-02"),
		DayOrdinary:        rb.Breakdown.DayOrdinary,
		NightOrdinary:      rb.Breakdown.NightOrdinary,
		DaySunday:          rb.Breakdown.DaySunday,
		NightSunday:        rb.Breakdown.NightSunday,
		DayHoliday:         rb.Breakdown.DayHoliday,
		NightHoliday:       rb.Breakdown.NightHoliday,
		DaySundayHoliday:   rb.Breakdown.DaySundayHoliday,
		NightSundayHoliday: rb.Breakdown.NightSundayHoliday,
		TotalMinutes:       rb.Breakdown.TotalMinutes(),
	}
}

func ToWeeklyOvertimeResponse(r WeeklyOvertimeResult) WeeklyOvertimeResponse {
	return WeeklyOvertimeResponse{
		EmployeeID:           r.EmployeeID,
		ISOYear:              r.ISOYear,
		ISOWeek:              r.ISOWeek,
		ContractualMinutes:   r.ContractualMinutes,
		WorkedMinutes:        r.WorkedMinutes,
		OvertimeMinutes:      r.OvertimeMinutes,
		Tier1Minutes:         r.Tier1Minutes,
		Tier2Minutes:         r.Tier2Minutes,
		AnnualBalanceMinutes: r.AnnualBalanceMinutes,
		ContingentExceeded:   r.ContingentExceeded,
	}
}
