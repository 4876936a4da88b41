package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/issouftoure58-design/nexus-sub008/internal/domain/contribution"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/employee"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/ledger"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/payroll"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/worktime"
	"github.com/issouftoure58-design/nexus-sub008/internal/pkg/database"
	"github.com/issouftoure58-design/nexus-sub008/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db             *database.DB
	runRepo        payroll.PayrollRunRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo worktime.AttendanceRepository
	holidayRepo    worktime.HolidayRepository
	paramRepo      contribution.ParameterSetRepository
	ledgerRepo     ledger.LedgerRepository
	accounts       ledger.AccountTable
	nightWindow    worktime.NightWindow
}

func NewPayrollService(
	db *database.DB,
	runRepo payroll.PayrollRunRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo worktime.AttendanceRepository,
	holidayRepo worktime.HolidayRepository,
	paramRepo contribution.ParameterSetRepository,
	ledgerRepo ledger.LedgerRepository,
	accounts ledger.AccountTable,
	nightWindow worktime.NightWindow,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		runRepo:        runRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		holidayRepo:    holidayRepo,
		paramRepo:      paramRepo,
		ledgerRepo:     ledgerRepo,
		accounts:       accounts,
		nightWindow:    nightWindow,
	}
}

// Helper to get company_id from JWT context
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

// ========== RUN COMPUTATION ==========

func (s *PayrollServiceImpl) ComputeRun(ctx context.Context, req payroll.ComputeRunRequest) (payroll.PayrollRunResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	periodStart := time.Date(req.PeriodYear, time.Month(req.PeriodMonth), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	params, err := s.paramRepo.GetForDate(ctx, companyID, periodStart)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	roster, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	// The annual overtime balance accumulates from January, and a week
	// settles in the month of its Sunday, so attendance is loaded from the
	// Monday of the ISO week containing January 1 through period end.
	isoYear, isoWeekNum := time.Date(req.PeriodYear, time.January, 1, 0, 0, 0, 0, time.UTC).ISOWeek()
	loadFrom := worktime.WeekStart(isoYear, isoWeekNum)

	records, err := s.attendanceRepo.ListByCompanyRange(ctx, companyID, loadFrom, periodEnd)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	// Overnight spans on the last day of the month reach into the next year
	// in December; the year's first week can start in the previous one.
	years := []int{req.PeriodYear}
	if loadFrom.Year() < req.PeriodYear {
		years = append([]int{loadFrom.Year()}, years...)
	}
	if req.PeriodMonth == 12 {
		years = append(years, req.PeriodYear+1)
	}
	cal, err := s.holidayRepo.LoadCalendar(ctx, companyID, years)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	breakdowns, _ := worktime.ComputeRange(records, cal, s.nightWindow)
	weekly := make(map[string][]worktime.WeeklyOvertimeResult, len(roster))
	for _, emp := range roster {
		results := worktime.ComputeWeekly(
			emp.ID, breakdowns,
			emp.ContractualWeeklyMinutes,
			params.Tier1ThresholdMinutes,
			params.AnnualContingentMinutes,
		)
		// Earlier weeks only feed the running annual balance; the run pays
		// the weeks settled in its own period.
		weekly[emp.ID] = worktime.FilterWeeksForPeriod(results, req.PeriodYear, time.Month(req.PeriodMonth))
	}

	run, err := payroll.BuildRun(payroll.BuildInput{
		CompanyID:   companyID,
		PeriodYear:  req.PeriodYear,
		PeriodMonth: req.PeriodMonth,
		Employees:   roster,
		Weekly:      weekly,
		Params:      params,
	})
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	documentRef := fmt.Sprintf("PAY-%04d-%02d", req.PeriodYear, req.PeriodMonth)
	entries, err := ledger.PostPayrollRun(companyID, documentRef, periodEnd, ledger.PayrollTotals{
		Gross:           run.TotalGross,
		EmployerContrib: run.TotalEmployerContrib,
		EmployeeContrib: run.TotalEmployeeContrib,
		Net:             run.TotalNet,
	}, s.accounts)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	// Supersede, retract and repost atomically so a concurrent reader never
	// sees the period half-posted.
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.runRepo.AcquirePeriodLock(txCtx, companyID, req.PeriodYear, req.PeriodMonth); err != nil {
			return err
		}
		if err := s.runRepo.Supersede(txCtx, companyID, req.PeriodYear, req.PeriodMonth); err != nil {
			return err
		}

		created, err := s.runRepo.Create(txCtx, run)
		if err != nil {
			return err
		}
		run = created

		if err := s.ledgerRepo.ReplaceForDocument(txCtx, companyID, documentRef, entries); err != nil {
			return err
		}

		if err := s.runRepo.UpdateStatus(txCtx, run.ID, companyID, payroll.RunStatusPosted, documentRef); err != nil {
			return err
		}
		run.Status = payroll.RunStatusPosted
		run.LedgerDocumentRef = documentRef
		return nil
	})
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	return payroll.ToRunResponse(run), nil
}

// ========== RUN QUERIES ==========

func (s *PayrollServiceImpl) GetRun(ctx context.Context, id string) (payroll.PayrollRunResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	run, err := s.runRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	return payroll.ToRunResponse(run), nil
}

func (s *PayrollServiceImpl) GetActiveRun(ctx context.Context, year, month int) (payroll.PayrollRunResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	run, err := s.runRepo.GetActiveByPeriod(ctx, companyID, year, month)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	return payroll.ToRunResponse(run), nil
}

func (s *PayrollServiceImpl) ListRuns(ctx context.Context, page, limit int) (payroll.ListPayrollRunResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.ListPayrollRunResponse{}, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	runs, total, err := s.runRepo.ListByCompany(ctx, companyID, limit, (page-1)*limit)
	if err != nil {
		return payroll.ListPayrollRunResponse{}, err
	}

	return payroll.ListPayrollRunResponse{
		Data:       payroll.ToRunResponses(runs),
		TotalCount: total,
		Page:       page,
		Limit:      limit,
	}, nil
}
