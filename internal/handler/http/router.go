package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	employeeHandler EmployeeHandler,
	rateTableHandler RateTableHandler,
	attendanceHandler AttendanceHandler,
	specialPayHandler SpecialPayHandler,
	loanHandler LoanHandler,
	payrollHandler PayrollHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
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

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
			r.Get("/{id}", employeeHandler.Get)
			r.Put("/{id}", employeeHandler.Update)
			r.Delete("/{id}", employeeHandler.Delete)
			r.Get("/{employeeID}/loans", loanHandler.ListByEmployee)
			r.Get("/{employeeID}/hours", attendanceHandler.List)
		})

		r.Route("/hours", func(r chi.Router) {
			r.Post("/", attendanceHandler.Record)
		})

		r.Route("/rates", func(r chi.Router) {
			r.Get("/", rateTableHandler.Get)
			r.Put("/", rateTableHandler.Update)
		})

		r.Route("/special-pay", func(r chi.Router) {
			r.Post("/", specialPayHandler.Create)
			r.Post("/{id}/approve", specialPayHandler.Approve)
			r.Post("/{id}/reject", specialPayHandler.Reject)
		})

		r.Route("/loans", func(r chi.Router) {
			r.Post("/", loanHandler.Create)
			r.Post("/{id}/cancel", loanHandler.Cancel)
			r.Get("/{id}/payments", loanHandler.GetPayments)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Route("/runs", func(r chi.Router) {
				r.Get("/", payrollHandler.ListRuns)
				r.Post("/", payrollHandler.Run)
				r.Get("/{id}", payrollHandler.GetRun)
				r.Post("/{id}/finalize", payrollHandler.Finalize)
				r.Delete("/{id}", payrollHandler.DeleteRun)
			})
			r.Route("/items", func(r chi.Router) {
				r.Get("/{id}", payrollHandler.GetItem)
				r.Post("/{id}/override", payrollHandler.OverrideItem)
			})
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/runs/{runID}/ach", reportHandler.ACHExport)
			r.Get("/runs/{runID}/deductions", reportHandler.DeductionsReport)
		})
	})

	return r
}
