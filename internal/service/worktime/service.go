package worktime

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/issouftoure58-design/nexus-sub008/internal/domain/contribution"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/employee"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/worktime"
)

type WorktimeServiceImpl struct {
	attendanceRepo worktime.AttendanceRepository
	holidayRepo    worktime.HolidayRepository
	employeeRepo   employee.EmployeeRepository
	paramRepo      contribution.ParameterSetRepository
	nightWindow    worktime.NightWindow
}

func NewWorktimeService(
	attendanceRepo worktime.AttendanceRepository,
	holidayRepo worktime.HolidayRepository,
	employeeRepo employee.EmployeeRepository,
	paramRepo contribution.ParameterSetRepository,
	nightWindow worktime.NightWindow,
) worktime.WorktimeService {
	return &WorktimeServiceImpl{
		attendanceRepo: attendanceRepo,
		holidayRepo:    holidayRepo,
		employeeRepo:   employeeRepo,
		paramRepo:      paramRepo,
		nightWindow:    nightWindow,
	}
}

func getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// ========== ATTENDANCE ==========

func (s *WorktimeServiceImpl) CreateAttendance(ctx context.Context, req worktime.CreateAttendanceRequest) (worktime.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return worktime.AttendanceResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return worktime.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return worktime.AttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	clockIn, _ := time.Parse(time.RFC3339, req.ClockIn)
	clockOut, _ := time.Parse(time.RFC3339, req.ClockOut)

	rec, err := s.attendanceRepo.Create(ctx, worktime.AttendanceRecord{
		CompanyID:    companyID,
		EmployeeID:   req.EmployeeID,
		Date:         date,
		ClockIn:      clockIn,
		ClockOut:     clockOut,
		BreakMinutes: req.BreakMinutes,
		Source:       worktime.AttendanceSource(req.Source),
	})
	if err != nil {
		return worktime.AttendanceResponse{}, err
	}

	return worktime.ToAttendanceResponse(rec), nil
}

func (s *WorktimeServiceImpl) GetAttendance(ctx context.Context, id string) (worktime.AttendanceResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return worktime.AttendanceResponse{}, err
	}

	rec, err := s.attendanceRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return worktime.AttendanceResponse{}, err
	}

	return worktime.ToAttendanceResponse(rec), nil
}

// ========== BREAKDOWN REPORT ==========

func (s *WorktimeServiceImpl) GetBreakdownReport(ctx context.Context, filter worktime.BreakdownFilter) (worktime.BreakdownReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return worktime.BreakdownReportResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return worktime.BreakdownReportResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, filter.EmployeeID, companyID)
	if err != nil {
		return worktime.BreakdownReportResponse{}, err
	}

	from, _ := time.Parse("2006-01-02", filter.From)
	to, _ := time.Parse("2006-01-02", filter.To)

	// Overtime thresholds come from the parameter set effective at the end
	// of the range, same as a payroll run over that period would use.
	params, err := s.paramRepo.GetForDate(ctx, companyID, to)
	if err != nil {
		return worktime.BreakdownReportResponse{}, err
	}

	records, err := s.attendanceRepo.ListByEmployeeRange(ctx, companyID, filter.EmployeeID, from, to)
	if err != nil {
		return worktime.BreakdownReportResponse{}, err
	}

	years := []int{from.Year()}
	if to.Year() != from.Year() {
		years = append(years, to.Year())
	}
	// An overnight span on December 31 is classified in the next year.
	if to.Month() == time.December {
		years = append(years, to.Year()+1)
	}
	cal, err := s.holidayRepo.LoadCalendar(ctx, companyID, years)
	if err != nil {
		return worktime.BreakdownReportResponse{}, err
	}

	breakdowns, failed := worktime.ComputeRange(records, cal, s.nightWindow)
	weekly := worktime.ComputeWeekly(
		filter.EmployeeID, breakdowns,
		emp.ContractualWeeklyMinutes,
		params.Tier1ThresholdMinutes,
		params.AnnualContingentMinutes,
	)

	resp := worktime.BreakdownReportResponse{
		EmployeeID: filter.EmployeeID,
		From:       filter.From,
		To:         filter.To,
	}
	for _, rb := range breakdowns {
		resp.Breakdowns = append(resp.Breakdowns, worktime.ToBreakdownResponse(rb))
	}
	for _, f := range failed {
		resp.Failed = append(resp.Failed, worktime.RecordErrorResponse{
			RecordID: f.RecordID,
			Message:  f.Err.Error(),
		})
	}
	for _, wk := range weekly {
		resp.Weekly = append(resp.Weekly, worktime.ToWeeklyOvertimeResponse(wk))
	}

	return resp, nil
}
