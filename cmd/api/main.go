package main

import (
	"fmt"
	"net/http"

	"github.com/workline-hq/attendance-backend-go/internal/config"
	appHTTP "github.com/workline-hq/attendance-backend-go/internal/handler/http"
	"github.com/workline-hq/attendance-backend-go/internal/pkg/clock"
	"github.com/workline-hq/attendance-backend-go/internal/pkg/database"
	"github.com/workline-hq/attendance-backend-go/internal/pkg/jwt"
	"github.com/workline-hq/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workline-hq/attendance-backend-go/internal/service/attendance"
	authzService "github.com/workline-hq/attendance-backend-go/internal/service/authz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	resolver := authzService.NewResolver(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		resolver,
		clock.System(),
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.FrontendURL,
		attendanceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
