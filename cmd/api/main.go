package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/issouftoure58-design/nexus-sub008/internal/config"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/ledger"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/worktime"
	appHTTP "github.com/issouftoure58-design/nexus-sub008/internal/handler/http"
	"github.com/issouftoure58-design/nexus-sub008/internal/pkg/database"
	"github.com/issouftoure58-design/nexus-sub008/internal/pkg/jwt"
	"github.com/issouftoure58-design/nexus-sub008/internal/repository/postgresql"
	contributionService "github.com/issouftoure58-design/nexus-sub008/internal/service/contribution"
	declarationService "github.com/issouftoure58-design/nexus-sub008/internal/service/declaration"
	ledgerService "github.com/issouftoure58-design/nexus-sub008/internal/service/ledger"
	payrollService "github.com/issouftoure58-design/nexus-sub008/internal/service/payroll"
	worktimeService "github.com/issouftoure58-design/nexus-sub008/internal/service/worktime"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	// The account table is compiled in; an incomplete category mapping must
	// never reach a running poster.
	accounts := ledger.DefaultAccountTable()
	if err := accounts.Validate(); err != nil {
		log.Fatal("Invalid account table:", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	paramRepo := postgresql.NewParameterSetRepository(db)
	runRepo := postgresql.NewPayrollRunRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)
	declarationRepo := postgresql.NewDeclarationRepository(db)
	employerRepo := postgresql.NewEmployerRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	nightWindow := worktime.NightWindow{
		StartMinute: cfg.Payroll.NightWindowStartMinute,
		EndMinute:   cfg.Payroll.NightWindowEndMinute,
	}

	worktimeSvc := worktimeService.NewWorktimeService(attendanceRepo, holidayRepo, employeeRepo, paramRepo, nightWindow)
	contributionSvc := contributionService.NewContributionService(paramRepo)
	payrollSvc := payrollService.NewPayrollService(
		db,
		runRepo,
		employeeRepo,
		attendanceRepo,
		holidayRepo,
		paramRepo,
		ledgerRepo,
		accounts,
		nightWindow,
	)
	ledgerSvc := ledgerService.NewLedgerService(db, ledgerRepo, accounts)
	declarationSvc := declarationService.NewDeclarationService(declarationRepo, employerRepo, runRepo, employeeRepo)

	worktimeHandler := appHTTP.NewWorktimeHandler(worktimeSvc)
	contributionHandler := appHTTP.NewContributionHandler(contributionSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	ledgerHandler := appHTTP.NewLedgerHandler(ledgerSvc)
	declarationHandler := appHTTP.NewDeclarationHandler(declarationSvc)

	router := appHTTP.NewRouter(
		JWTService,
		worktimeHandler,
		contributionHandler,
		payrollHandler,
		ledgerHandler,
		declarationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
