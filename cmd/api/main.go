package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/caribhr/payroll-backend-go/internal/config"
	appHTTP "github.com/caribhr/payroll-backend-go/internal/handler/http"
	"github.com/caribhr/payroll-backend-go/internal/pkg/database"
	"github.com/caribhr/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/caribhr/payroll-backend-go/internal/service/attendance"
	employeeService "github.com/caribhr/payroll-backend-go/internal/service/employee"
	loanService "github.com/caribhr/payroll-backend-go/internal/service/loan"
	payrollService "github.com/caribhr/payroll-backend-go/internal/service/payroll"
	ratesService "github.com/caribhr/payroll-backend-go/internal/service/rates"
	reportService "github.com/caribhr/payroll-backend-go/internal/service/report"
	specialpayService "github.com/caribhr/payroll-backend-go/internal/service/specialpay"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "payroll-backend"),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	rateRepo := postgresql.NewRateTableRepository(db)
	hourRepo := postgresql.NewHourEntryRepository(db)
	specialRepo := postgresql.NewSpecialPayRepository(db)
	loanRepo := postgresql.NewLoanRepository(db)
	runRepo := postgresql.NewPayrollRunRepository(db)
	itemRepo := postgresql.NewPayrollItemRepository(db)
	ytdRepo := postgresql.NewYTDRepository(db)

	employeeSvc := employeeService.NewService(employeeRepo, logger)
	attendanceSvc := attendanceService.NewService(hourRepo, employeeRepo, logger)
	ratesSvc := ratesService.NewService(rateRepo, logger)
	specialpaySvc := specialpayService.NewService(specialRepo, employeeRepo, logger)
	loanSvc := loanService.NewService(loanRepo, employeeRepo, logger)
	payrollSvc := payrollService.NewService(
		db,
		employeeRepo,
		rateRepo,
		hourRepo,
		specialRepo,
		loanRepo,
		runRepo,
		itemRepo,
		ytdRepo,
		logger,
		cfg.Payroll.Workers,
	)
	reportSvc := reportService.NewService(runRepo, itemRepo, employeeRepo, logger)

	if err := ratesSvc.SeedDefaults(context.Background()); err != nil {
		log.Fatal("Failed to seed default rate table:", err)
	}

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	rateTableHandler := appHTTP.NewRateTableHandler(ratesSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	specialPayHandler := appHTTP.NewSpecialPayHandler(specialpaySvc)
	loanHandler := appHTTP.NewLoanHandler(loanSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		employeeHandler,
		rateTableHandler,
		attendanceHandler,
		specialPayHandler,
		loanHandler,
		payrollHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
