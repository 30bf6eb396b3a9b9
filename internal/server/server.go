// Package server is the wiring layer: it assembles the repository, services,
// handlers, and middleware into a router, and owns the HTTP server lifecycle.
//
// The dependency chain is built in one place (New) and flows one way:
//
//	sqlite.DB → UserService / ExerciseService → handlers → routes
//
// The handlers never touch the database, the services never touch HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vxern/fcc-exercise-tracker-service/internal/config"
	"github.com/vxern/fcc-exercise-tracker-service/internal/handler"
	"github.com/vxern/fcc-exercise-tracker-service/internal/middleware"
	sqliteRepo "github.com/vxern/fcc-exercise-tracker-service/internal/repository/sqlite"
	"github.com/vxern/fcc-exercise-tracker-service/internal/service"
)

// Server holds the router and the resources it owns. The database connection
// belongs to the server and is closed during shutdown.
type Server struct {
	router *chi.Mux
	config config.Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New opens the database and wires the full dependency chain.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	s.setupRoutes()

	return s, nil
}

// setupRoutes configures middleware and the route table.
//
// GET  /                         → landing page
// GET  /static/*                 → static assets
// POST /api/users                → create user
// GET  /api/users                → list users
// POST /api/users/{id}/exercises → log an exercise
// GET  /api/users/{id}/logs      → query the exercise log
func (s *Server) setupRoutes() {
	// Middleware order matters: request id and IP first, panic recovery
	// before anything that could blow up, logging around the lot.
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	// The upstream service ran behind cors() with defaults; the freeCodeCamp
	// checker calls the API from another origin, so this stays permissive.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	fileServer := http.FileServer(http.Dir(s.config.StaticDir))
	s.router.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	homeHandler := handler.NewHomeHandler(s.config.StaticDir, s.logger)
	s.router.Get("/", homeHandler.HandleIndex)

	userService := service.NewUserService(s.db.Users(), s.logger)
	exerciseService := service.NewExerciseService(userService, s.db.Exercises(), s.logger)

	userHandler := handler.NewUserHandler(userService, s.logger)
	exerciseHandler := handler.NewExerciseHandler(exerciseService, s.logger)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/users", userHandler.HandleCreate)
		r.Get("/users", userHandler.HandleList)
		r.Post("/users/{id}/exercises", exerciseHandler.HandleLog)
		r.Get("/users/{id}/logs", exerciseHandler.HandleLogs)
	})
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down gracefully:
// stop accepting connections, drain in-flight requests (30s), close the
// database so the WAL is flushed and the file lock released.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
