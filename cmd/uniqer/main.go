package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bekmanvision/uniqer/internal/config"
	"github.com/bekmanvision/uniqer/internal/http-server/handlers/application/createApplication"
	"github.com/bekmanvision/uniqer/internal/http-server/handlers/application/deleteApplication"
	"github.com/bekmanvision/uniqer/internal/http-server/handlers/application/exportApplications"
	"github.com/bekmanvision/uniqer/internal/http-server/handlers/application/getAllApplications"
	"github.com/bekmanvision/uniqer/internal/http-server/handlers/application/updateApplication"
	"github.com/bekmanvision/uniqer/internal/http-server/handlers/auth/login"
	"github.com/bekmanvision/uniqer/internal/http-server/handlers/stats/getStats"
	"github.com/bekmanvision/uniqer/internal/http-server/handlers/student/createStudent"
	"github.com/bekmanvision/uniqer/internal/http-server/handlers/student/deleteStudent"
	"github.com/bekmanvision/uniqer/internal/http-server/handlers/student/getAllStudents"
	"github.com/bekmanvision/uniqer/internal/http-server/handlers/student/getStudent"
	"github.com/bekmanvision/uniqer/internal/http-server/handlers/student/getStudentBoard"
	"github.com/bekmanvision/uniqer/internal/http-server/handlers/student/updateStudent"
	"github.com/bekmanvision/uniqer/internal/http-server/handlers/tour/createTour"
	"github.com/bekmanvision/uniqer/internal/http-server/handlers/tour/deleteTour"
	"github.com/bekmanvision/uniqer/internal/http-server/handlers/tour/getAllTours"
	"github.com/bekmanvision/uniqer/internal/http-server/handlers/tour/getTour"
	"github.com/bekmanvision/uniqer/internal/http-server/handlers/tour/updateTour"
	"github.com/bekmanvision/uniqer/internal/http-server/handlers/university/getAllUniversities"
	"github.com/bekmanvision/uniqer/internal/http-server/handlers/university/getUniversity"
	authmw "github.com/bekmanvision/uniqer/internal/http-server/middleware/auth"
	"github.com/bekmanvision/uniqer/internal/http-server/middleware/mwlogger"
	"github.com/bekmanvision/uniqer/internal/lib/logger/sl"
	"github.com/bekmanvision/uniqer/internal/models"
	"github.com/bekmanvision/uniqer/internal/notify"
	"github.com/bekmanvision/uniqer/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/lmittmann/tint"
	"golang.org/x/crypto/bcrypt"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting uniqer", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	if err = bootstrapAdmin(log, storage, cfg.Auth); err != nil {
		log.Error("failed to bootstrap admin", sl.Err(err))
		os.Exit(1)
	}

	notifier := notify.NewSMTP(cfg.SMTP)
	whatsapp := notify.NewWhatsApp(cfg.WhatsApp)

	var staffPhone string
	if whatsapp.Configured() {
		staffPhone = cfg.WhatsApp.StaffPhone
		log.Info("whatsapp staff pings enabled")
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/api/applications", createApplication.New(log, storage, notifier, whatsapp, cfg.SMTP.AdminTo, staffPhone))
	router.Get("/api/tours", getAllTours.New(log, storage))
	router.Get("/api/tours/{id}", getTour.New(log, storage))
	router.Get("/api/universities", getAllUniversities.New(log, storage))
	router.Get("/api/universities/{id}", getUniversity.New(log, storage))
	router.Post("/api/auth/login", login.New(log, storage, cfg.Auth.Secret, cfg.Auth.TokenTTL))

	router.Group(func(r chi.Router) {
		r.Use(authmw.New(log, cfg.Auth.Secret))

		r.Get("/api/applications", getAllApplications.New(log, storage))
		r.Put("/api/applications/{id}", updateApplication.New(log, storage))
		r.Delete("/api/applications/{id}", deleteApplication.New(log, storage))
		r.Get("/api/export/applications", exportApplications.New(log, storage))

		r.Post("/api/tours", createTour.New(log, storage))
		r.Put("/api/tours/{id}", updateTour.New(log, storage))

		r.Post("/api/students", createStudent.New(log, storage))
		r.Get("/api/students", getAllStudents.New(log, storage))
		r.Get("/api/students/board", getStudentBoard.New(log, storage))
		r.Get("/api/students/{id}", getStudent.New(log, storage))
		r.Put("/api/students/{id}", updateStudent.New(log, storage))
		r.Delete("/api/students/{id}", deleteStudent.New(log, storage))

		r.Get("/api/stats", getStats.New(log, storage))

		r.Group(func(r chi.Router) {
			r.Use(authmw.RequireRole(models.RoleSuperAdmin))
			r.Delete("/api/tours/{id}", deleteTour.New(log, storage))
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

// bootstrapAdmin seeds the first super admin from config when the admins
// table is empty. Without bootstrap credentials the admin surface stays
// unreachable until one is created manually.
func bootstrapAdmin(log *slog.Logger, storage *postgres.Storage, cfg config.Auth) error {
	count, err := storage.CountAdmins()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if cfg.BootstrapEmail == "" || cfg.BootstrapPassword == "" {
		log.Warn("no admins exist and bootstrap credentials are not set")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.BootstrapPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	id, err := storage.CreateAdmin(cfg.BootstrapEmail, cfg.BootstrapName, string(hash), models.RoleSuperAdmin)
	if err != nil {
		return err
	}

	log.Info("bootstrap admin created", slog.String("id", id), slog.String("email", cfg.BootstrapEmail))

	return nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}))
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}
