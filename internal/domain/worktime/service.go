package worktime

import (
	"context"
)

// WorktimeService defines business logic for attendance and worked-hours
// breakdown operations
type WorktimeService interface {
	// CreateAttendance records one worked span for an employee
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// GetAttendance retrieves a single attendance record by ID
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// GetBreakdownReport computes the eight-bucket breakdown and the weekly
	// overtime split for one employee over a date range
	GetBreakdownReport(ctx context.Context, filter BreakdownFilter) (BreakdownReportResponse, error)
}
