package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/simpeg-app/simpeg-backend-go/internal/config"
	appHTTP "github.com/simpeg-app/simpeg-backend-go/internal/handler/http"
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/cron"
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/database"
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/jwt"
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/qrcode"
	"github.com/simpeg-app/simpeg-backend-go/internal/repository/postgresql"
	assessmentService "github.com/simpeg-app/simpeg-backend-go/internal/service/assessment"
	attendanceService "github.com/simpeg-app/simpeg-backend-go/internal/service/attendance"
	authService "github.com/simpeg-app/simpeg-backend-go/internal/service/auth"
	employeeService "github.com/simpeg-app/simpeg-backend-go/internal/service/employee"
	masterService "github.com/simpeg-app/simpeg-backend-go/internal/service/master"
	payloadService "github.com/simpeg-app/simpeg-backend-go/internal/service/payload"
	recruitmentService "github.com/simpeg-app/simpeg-backend-go/internal/service/recruitment"
	userService "github.com/simpeg-app/simpeg-backend-go/internal/service/user"
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
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	recruitmentRepo := postgresql.NewRecruitmentRepository(db)
	candidateRepo := postgresql.NewCandidateRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	payloadRepo := postgresql.NewPayloadRepository(db)
	assessmentRepo := postgresql.NewAssessmentRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	qrGenerator := qrcode.NewGenerator(cfg.QR.Secret, time.Duration(cfg.QR.WindowMS)*time.Millisecond)

	authSvc := authService.NewAuthService(userRepo, employeeRepo, jwtService)
	userSvc := userService.NewUserService(userRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, userRepo, positionRepo, departmentRepo, db)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, db, qrGenerator, cfg.Reconcile.LogPath)
	recruitmentSvc := recruitmentService.NewRecruitmentService(recruitmentRepo, candidateRepo, userRepo, db)
	masterSvc := masterService.NewMasterService(departmentRepo, positionRepo)
	payloadSvc := payloadService.NewPayloadService(payloadRepo, employeeRepo, positionRepo)
	assessmentSvc := assessmentService.NewAssessmentService(assessmentRepo, employeeRepo)

	scheduler := cron.NewScheduler(time.Hour)
	cron.NewAttendanceJobs(attendanceSvc, cfg.Reconcile.Hour).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(authSvc, jwtService),
		User:        appHTTP.NewUserHandler(userSvc),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Recruitment: appHTTP.NewRecruitmentHandler(recruitmentSvc),
		Master:      appHTTP.NewMasterHandler(masterSvc, masterSvc),
		Payload:     appHTTP.NewPayloadHandler(payloadSvc),
		Assessment:  appHTTP.NewAssessmentHandler(assessmentSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
