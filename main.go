package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cafestaff/configs"
	"cafestaff/repository"
	"cafestaff/routes"
	"cafestaff/services"
	"cafestaff/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "cafestaff:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := configs.LoadConfig()
	if err != nil {
		return err
	}

	log, err := configs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.UsesDefaultSecret() {
		log.Warn("SESSION_SECRET is the built-in default; set it before exposing the panel")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// DB
	db, err := configs.ConnectionDB(cfg, log)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	// migrate + seed
	if err := configs.SetupDatabase(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	auth := services.NewAuthService(repository.NewStaffRepository(db), cfg.SessionSecret, cfg.SessionTTL, log)
	if err := configs.SeedStaff(ctx, auth, cfg.Seed, log); err != nil {
		return fmt.Errorf("seed staff: %w", err)
	}
	if cfg.Seed.Demo {
		if err := configs.SeedDemo(db, log); err != nil {
			return fmt.Errorf("seed demo: %w", err)
		}
	}

	// audit
	recorders := []services.AuditRecorder{repository.NewAuditRepository(db)}
	if cfg.MongoURI != "" {
		mongoAudit, err := repository.NewMongoAuditRepository(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return err
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mongoAudit.Close(closeCtx)
		}()
		recorders = append(recorders, mongoAudit)
		log.Info("audit mirrored to mongo", zap.String("database", cfg.MongoDatabase))
	}

	// websocket hub
	hub := ws.NewFulfillmentHub(log, originChecker(cfg.CORSOrigins))
	go hub.Run(ctx)

	// HTTP
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := routes.NewRouter(routes.Dependencies{
		DB:     db,
		Config: cfg,
		Log:    log,
		Hub:    hub,
		Audit:  services.NewAuditService(log, recorders...),
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// originChecker accepts websocket upgrades from the configured CORS origins.
// With "*" only same-host pages may connect, since the session is a cookie.
func originChecker(origins []string) func(*http.Request) bool {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o != "*" {
			allowed[o] = true
		}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if allowed[origin] {
			return true
		}
		u, err := url.Parse(origin)
		return err == nil && u.Host == r.Host
	}
}
