package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/simpeg-app/simpeg-backend-go/internal/config"
	"github.com/simpeg-app/simpeg-backend-go/internal/handler/http/middleware"
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	User        UserHandler
	Employee    EmployeeHandler
	Attendance  AttendanceHandler
	Recruitment RecruitmentHandler
	Master      MasterHandler
	Payload     PayloadHandler
	Assessment  AssessmentHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "simpeg-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.User.Create)
					r.Get("/", h.User.List)
					r.Patch("/{id}/role", h.User.ChangeRole)
					r.Patch("/{id}/deactivate", h.User.Deactivate)
					r.Delete("/{id}", h.User.Delete)
				})
				r.Get("/{id}", h.User.Get)
				r.Put("/{id}", h.User.Update)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", h.Employee.GetMe)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.Promote)
					r.Get("/", h.Employee.List)
					r.Get("/{id}", h.Employee.Get)
					r.Put("/{id}", h.Employee.Update)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.EmployeeOnly)
					r.Get("/me", h.Attendance.GetMyAttendance)
					r.Post("/me", h.Attendance.RecordMine)
					r.Post("/qrcode", h.Attendance.CheckInQRCode)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Attendance.Record)
					r.Get("/", h.Attendance.List)
					r.Get("/absence", h.Attendance.ForceAbsence)
					r.Get("/summary", h.Attendance.MonthlySummary)
					r.Get("/calendar/{employeeId}", h.Attendance.Calendar)
					r.Get("/qrcode", h.Attendance.GetQRCode)
				})
			})

			r.Route("/recruitments", func(r chi.Router) {
				r.Get("/", h.Recruitment.List)
				r.Get("/{id}", h.Recruitment.Get)
				r.Post("/{id}/candidates", h.Recruitment.Apply)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Recruitment.Create)
					r.Put("/{id}", h.Recruitment.Update)
					r.Delete("/{id}", h.Recruitment.Delete)
					r.Get("/{id}/candidates", h.Recruitment.ListCandidates)
					r.Patch("/{id}/candidates/{userId}", h.Recruitment.TransitionByUser)
				})
			})

			r.Route("/candidates", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Recruitment.ListAllCandidates)
				r.Get("/{candidateId}", h.Recruitment.GetCandidate)
				r.Patch("/{candidateId}", h.Recruitment.Transition)
				r.Delete("/{candidateId}", h.Recruitment.DeleteCandidate)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Master.ListDepartments)
				r.Get("/{id}", h.Master.GetDepartment)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Master.CreateDepartment)
					r.Delete("/{id}", h.Master.DeleteDepartment)
				})
			})

			r.Route("/positions", func(r chi.Router) {
				r.Get("/", h.Master.ListPositions)
				r.Get("/{id}", h.Master.GetPosition)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Master.CreatePosition)
					r.Delete("/{id}", h.Master.DeletePosition)
				})
			})

			r.Route("/assessments", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Assessment.Create)
				r.Get("/", h.Assessment.List)
				r.Get("/{id}", h.Assessment.Get)
				r.Patch("/{id}", h.Assessment.Update)
				r.Delete("/{id}", h.Assessment.Delete)
			})

			r.Route("/payloads", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Payload.Upsert)
				r.Get("/", h.Payload.ListByMonth)
				r.Get("/{employeeId}", h.Payload.GetByEmployee)
			})
		})
	})

	return r
}
