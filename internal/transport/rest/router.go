package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/naufalhakim/hr-management/internal/auth"
	"github.com/naufalhakim/hr-management/internal/dashboard"
	"github.com/naufalhakim/hr-management/internal/document"
	"github.com/naufalhakim/hr-management/internal/employee"
	"github.com/naufalhakim/hr-management/internal/leave"
	"github.com/naufalhakim/hr-management/internal/transport/middleware"
	"github.com/naufalhakim/hr-management/internal/transport/swagger"
)

// RegisterAllRoutes wires the route surface. Every route except login,
// health and the API docs sits behind the session guard; employee
// management and leave approval additionally require ADMIN.
func RegisterAllRoutes(
	router *chi.Mux,
	recordStore Checker,
	objectStore Checker,
	authHandler *auth.Handler,
	employeeHandler *employee.Handler,
	leaveHandler *leave.Handler,
	documentHandler *document.Handler,
	dashboardHandler *dashboard.Handler,
	allowedOrigins string,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(recordStore, objectStore)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Get("/logout", authHandler.Logout)
	})

	// Protected routes that require a valid session
	router.Group(func(pr chi.Router) {
		pr.Use(authHandler.SessionMiddleware)

		pr.Get("/dashboard", dashboardHandler.Overview)

		pr.Route("/employees", func(er chi.Router) {
			er.Get("/", employeeHandler.ListEmployees)

			// Admin routes
			er.Group(func(ar chi.Router) {
				ar.Use(authHandler.RequireAdmin)
				ar.Post("/create", employeeHandler.CreateEmployee)
				ar.Post("/delete/{id}", employeeHandler.DeleteEmployee)
			})
		})

		pr.Route("/leaves", func(lr chi.Router) {
			lr.Get("/", leaveHandler.ListLeaves)
			lr.Post("/create", leaveHandler.CreateLeave)

			lr.Group(func(ar chi.Router) {
				ar.Use(authHandler.RequireAdmin)
				ar.Post("/update-status/{id}", leaveHandler.UpdateStatus)
			})
		})

		pr.Route("/documents", func(dr chi.Router) {
			dr.Get("/", documentHandler.ListDocuments)
			dr.Post("/upload", documentHandler.UploadDocument)
			dr.Get("/download/{key}", documentHandler.DownloadDocument)
			dr.Post("/delete/{key}", documentHandler.DeleteDocument)
		})
	})
}
