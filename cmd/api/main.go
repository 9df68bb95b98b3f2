package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/horizonte-hr/attendance-backend-go/internal/config"
	"github.com/horizonte-hr/attendance-backend-go/internal/domain/leave"
	appHTTP "github.com/horizonte-hr/attendance-backend-go/internal/handler/http"
	"github.com/horizonte-hr/attendance-backend-go/internal/pkg/database"
	"github.com/horizonte-hr/attendance-backend-go/internal/pkg/hrclient"
	"github.com/horizonte-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/horizonte-hr/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/horizonte-hr/attendance-backend-go/internal/service/attendance"
	"github.com/horizonte-hr/attendance-backend-go/internal/service/export"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	engineCfg, err := cfg.EngineConfig()
	if err != nil {
		fmt.Println("Error resolving engine config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)

	hrClient := hrclient.NewClient(cfg.HRAPI.BaseURL, cfg.HRAPI.APIKey, engineCfg.Location, slog.Default())
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	reportService := attendanceService.NewReportService(
		employeeRepo,
		scheduleRepo,
		hrClient,
		hrClient,
		engineCfg,
		leave.DefaultPolicyTable(),
	)
	exportService := export.NewExportService()

	reportHandler := appHTTP.NewReportHandler(reportService, exportService)

	router := appHTTP.NewRouter(JWTService, reportHandler, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
