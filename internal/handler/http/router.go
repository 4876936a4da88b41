package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/issouftoure58-design/nexus-sub008/internal/handler/http/middleware"
	"github.com/issouftoure58-design/nexus-sub008/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	worktimeHandler WorktimeHandler,
	contributionHandler ContributionHandler,
	payrollHandler PayrollHandler,
	ledgerHandler LedgerHandler,
	declarationHandler DeclarationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-engine"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", worktimeHandler.CreateAttendance)
				r.Get("/{id}", worktimeHandler.GetAttendance)
			})

			r.Get("/employees/{employeeID}/breakdown", worktimeHandler.GetBreakdownReport)

			r.Route("/parameter-sets", func(r chi.Router) {
				r.Get("/", contributionHandler.ListParameterSets)
				r.Post("/", contributionHandler.CreateParameterSet)
				r.Get("/{id}", contributionHandler.GetParameterSet)
			})
			r.Post("/contributions/simulate", contributionHandler.Simulate)

			r.Route("/payroll-runs", func(r chi.Router) {
				r.Get("/", payrollHandler.ListRuns)
				r.Post("/", payrollHandler.ComputeRun)
				r.Get("/{id}", payrollHandler.GetRun)
				r.Get("/period/{year}/{month}", payrollHandler.GetActiveRun)
			})

			r.Route("/ledger", func(r chi.Router) {
				r.Post("/documents", ledgerHandler.PostDocument)
				r.Delete("/documents/{ref}", ledgerHandler.RetractDocument)
				r.Get("/documents/{ref}", ledgerHandler.GetDocumentEntries)
				r.Get("/periods/{year}/{month}/entries", ledgerHandler.ListPeriodEntries)
				r.Get("/periods/{year}/{month}/balance", ledgerHandler.CheckPeriodBalance)
			})

			r.Route("/declarations", func(r chi.Router) {
				r.Post("/", declarationHandler.Generate)
				r.Get("/{id}", declarationHandler.GetDeclaration)
				r.Get("/period/{year}/{month}", declarationHandler.GetByPeriod)
				r.Post("/{id}/validate", declarationHandler.MarkValidated)
				r.Post("/{id}/transmit", declarationHandler.MarkTransmitted)
			})
		})
	})
	return r
}
