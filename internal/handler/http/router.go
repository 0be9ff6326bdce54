package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/baynunah-hr/hr-backend-go/internal/config"
	"github.com/baynunah-hr/hr-backend-go/internal/handler/http/middleware"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg config.AppConfig,
	jwtService jwt.Service,
	leaveHandler LeaveHandler,
	holidayHandler HolidayHandler,
	geofenceHandler GeofenceHandler,
	timesheetHandler TimesheetHandler,
	attendanceHandler AttendanceHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "baynunah-hr"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
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

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/leave", func(r chi.Router) {
				r.Route("/requests", func(r chi.Router) {
					r.Post("/", leaveHandler.CreateRequest)
					r.Get("/my", leaveHandler.GetMyRequests)
					r.Get("/{id}", leaveHandler.GetRequest)
					r.Post("/{id}/cancel", leaveHandler.CancelRequest)

					// Manager or HR
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Post("/{id}/approve", leaveHandler.ApproveRequest)
						r.Post("/{id}/reject", leaveHandler.RejectRequest)
					})
				})

				r.Route("/balances", func(r chi.Router) {
					r.Get("/my", leaveHandler.GetMyBalances)

					// HR only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireHR)
						r.Get("/{employeeID}", leaveHandler.GetEmployeeBalances)
						r.Post("/seed", leaveHandler.SeedBalance)
						r.Post("/adjust", leaveHandler.AdjustBalance)
						r.Post("/consume-elapsed", leaveHandler.ConsumeElapsed)
					})
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.ListByYear)
				r.Get("/working-days", holidayHandler.WorkingDays)
				r.Get("/{id}", holidayHandler.Get)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", holidayHandler.Create)
					r.Put("/{id}", holidayHandler.Update)
					r.Delete("/{id}", holidayHandler.Deactivate)
				})
			})

			r.Route("/geofences", func(r chi.Router) {
				r.Post("/validate", geofenceHandler.ValidateLocation)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/", geofenceHandler.List)
					r.Post("/", geofenceHandler.Create)
					r.Post("/init", geofenceHandler.SeedDefaults)
					r.Get("/{id}", geofenceHandler.Get)
					r.Put("/{id}", geofenceHandler.Update)
					r.Delete("/{id}", geofenceHandler.Deactivate)
				})
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Post("/generate", timesheetHandler.Generate)
				r.Get("/my", timesheetHandler.GetMyTimesheets)
				r.Get("/{id}", timesheetHandler.Get)
				r.Post("/{id}/submit", timesheetHandler.Submit)

				// Manager or HR
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/{id}/manager-approve", timesheetHandler.ManagerApprove)
					r.Post("/{id}/reject", timesheetHandler.Reject)
				})

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/{id}/hr-approve", timesheetHandler.HRApprove)
					r.Post("/{id}/export", timesheetHandler.Export)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/{employeeID}", attendanceHandler.ListForPeriod)
					r.Post("/classify", attendanceHandler.ClassifyPeriod)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/my", notificationHandler.ListMine)
				r.Post("/{id}/read", notificationHandler.MarkRead)
			})
		})
	})
	return r
}
