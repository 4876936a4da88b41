package worktime

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
// All methods include companyID to prevent cross-company data access.
type AttendanceRepository interface {
	Create(ctx context.Context, rec AttendanceRecord) (AttendanceRecord, error)
	GetByID(ctx context.Context, id string, companyID string) (AttendanceRecord, error)
	ListByEmployeeRange(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]AttendanceRecord, error)
	ListByCompanyRange(ctx context.Context, companyID string, from, to time.Time) ([]AttendanceRecord, error)
}

// HolidayRepository loads holiday calendar data for a jurisdiction year.
type HolidayRepository interface {
	// LoadCalendar returns a calendar covering the given years. Years with no
	// stored rows at all are reported as uncovered by the returned calendar.
	LoadCalendar(ctx context.Context, companyID string, years []int) (*Calendar, error)
}
