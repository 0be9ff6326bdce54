package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/baynunah-hr/hr-backend-go/internal/config"
	appHTTP "github.com/baynunah-hr/hr-backend-go/internal/handler/http"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/database"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/email"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/jwt"
	"github.com/baynunah-hr/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/baynunah-hr/hr-backend-go/internal/service/attendance"
	geofenceService "github.com/baynunah-hr/hr-backend-go/internal/service/geofence"
	holidayService "github.com/baynunah-hr/hr-backend-go/internal/service/holiday"
	leaveService "github.com/baynunah-hr/hr-backend-go/internal/service/leave"
	notificationService "github.com/baynunah-hr/hr-backend-go/internal/service/notification"
	timesheetService "github.com/baynunah-hr/hr-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	tx := postgresql.NewTxRunner(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	geofenceRepo := postgresql.NewGeofenceRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	emailService, err := email.NewService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	notifier := notificationService.NewService(notificationRepo, leaveRequestRepo, employeeRepo, emailService)
	requestSvc := leaveService.NewRequestService(tx, leaveRequestRepo, leaveBalanceRepo, employeeRepo, notifier)
	balanceSvc := leaveService.NewBalanceService(tx, leaveRequestRepo, leaveBalanceRepo, employeeRepo)
	holidaySvc := holidayService.NewService(holidayRepo)
	geofenceSvc := geofenceService.NewService(geofenceRepo)
	attendanceSvc := attendanceService.NewService(tx, attendanceRepo, holidayRepo, timesheetRepo)
	timesheetSvc := timesheetService.NewService(tx, timesheetRepo, attendanceRepo, leaveRequestRepo, employeeRepo, notifier)

	leaveHandler := appHTTP.NewLeaveHandler(requestSvc, balanceSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	geofenceHandler := appHTTP.NewGeofenceHandler(geofenceSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notifier)

	router := appHTTP.NewRouter(
		cfg.App,
		jwtService,
		leaveHandler,
		holidayHandler,
		geofenceHandler,
		timesheetHandler,
		attendanceHandler,
		notificationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
