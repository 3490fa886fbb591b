package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"

	"github.com/naufalhakim/hr-management/internal"
	"github.com/naufalhakim/hr-management/internal/auth"
	"github.com/naufalhakim/hr-management/internal/dashboard"
	"github.com/naufalhakim/hr-management/internal/document"
	documentStorage "github.com/naufalhakim/hr-management/internal/document/storage"
	"github.com/naufalhakim/hr-management/internal/employee"
	employeeMongo "github.com/naufalhakim/hr-management/internal/employee/mongodb"
	"github.com/naufalhakim/hr-management/internal/leave"
	leaveMongo "github.com/naufalhakim/hr-management/internal/leave/mongodb"
	"github.com/naufalhakim/hr-management/internal/store"
	"github.com/naufalhakim/hr-management/internal/transport/rest"
	userMongo "github.com/naufalhakim/hr-management/internal/user/mongodb"
	"github.com/naufalhakim/hr-management/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config      *internal.Config
	Mongo       *store.MongoDB
	ObjectStore *documentStorage.ObjectStore
	Router      *chi.Mux
	Logger      *slog.Logger

	AuthHandler      *auth.Handler
	EmployeeHandler  *employee.Handler
	LeaveHandler     *leave.Handler
	DocumentHandler  *document.Handler
	DashboardHandler *dashboard.Handler
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(
		deps.Router,
		deps.Mongo,
		deps.ObjectStore,
		deps.AuthHandler,
		deps.EmployeeHandler,
		deps.LeaveHandler,
		deps.DocumentHandler,
		deps.DashboardHandler,
		deps.Config.Server.AllowedOrigins,
		deps.Logger,
	)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.Mongo.Close(ctx); err != nil {
			slog.Error("Record store close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"), config.Observability.Logging.Level)
	lg := logger.LoggerWrapper()

	mongo, err := store.NewMongoDB(config.Mongo.URI, config.Mongo.Database, config.Mongo.ConnectTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to record store: %w", err)
	}

	// Repository construction provisions the secondary indexes on first run.
	ctx, cancel := internal.WithTimeout(context.Background(), config.Mongo.ConnectTimeout)
	defer cancel()

	userRepo, err := userMongo.NewUserRepository(ctx, mongo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize user repository: %w", err)
	}

	employeeRepo := employeeMongo.NewEmployeeRepository(mongo)

	leaveRepo, err := leaveMongo.NewLeaveRepository(ctx, mongo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize leave repository: %w", err)
	}

	objectStore, err := documentStorage.NewObjectStore(config.ObjectStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object store: %w", err)
	}
	if err := objectStore.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to provision bucket: %w", err)
	}

	tokenGen := auth.NewJWTTokenGenerator(config.Security.SessionSecret, config.Security.SessionTTL)
	authService := auth.NewService(userRepo, tokenGen, config.Security.BCryptCost, lg)
	employeeService := employee.NewService(employeeRepo, userRepo, authService, lg)
	leaveService := leave.NewService(leaveRepo, lg)
	documentService := document.NewService(objectStore, lg)
	dashboardService := dashboard.NewService(employeeRepo, leaveRepo, objectStore, lg)

	return &Dependencies{
		Config:      config,
		Mongo:       mongo,
		ObjectStore: objectStore,
		Router:      chi.NewRouter(),
		Logger:      lg,

		AuthHandler:      auth.NewHandler(authService),
		EmployeeHandler:  employee.NewHandler(employeeService),
		LeaveHandler:     leave.NewHandler(leaveService),
		DocumentHandler:  document.NewHandler(documentService),
		DashboardHandler: dashboard.NewHandler(dashboardService),
	}, nil
}
