package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpapi "github.com/dormdesk/dormdesk/internal/http"
	"github.com/dormdesk/dormdesk/internal/service"
	"github.com/dormdesk/dormdesk/internal/store"
	"github.com/dormdesk/dormdesk/internal/store/drivers/sqlite"
	"github.com/dormdesk/dormdesk/pkg/cryptox"
	"github.com/dormdesk/dormdesk/pkg/jwtx"
	"github.com/dormdesk/dormdesk/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

// Application wires the DormDesk service together: store, token codec,
// business services and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db    store.Store
	codec *jwtx.Codec

	authService        *service.AuthService
	userService        *service.UserService
	dormService        *service.DormService
	roomService        *service.RoomService
	reservationService *service.ReservationService
	contractService    *service.ContractService
	billService        *service.BillService
	repairService      *service.RepairService
	uploadService      *service.UploadService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "dormdesk",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(cfg.PepperFile)

	codec, err := jwtx.NewCodec(
		[]byte(cfg.AccessSecret),
		[]byte(cfg.RefreshSecret),
		cfg.Issuer,
		jwtx.DefaultAccessTokenTTL,
		jwtx.DefaultRefreshTokenTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token codec: %w", err)
	}
	app.codec = codec

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("dormdesk starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully stops the HTTP server, then closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down dormdesk...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("dormdesk stopped")
	return nil
}

func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() {
	app.authService = &service.AuthService{Store: app.db, Codec: app.codec}
	app.userService = &service.UserService{
		Store:            app.db,
		AllowOwnerSignup: app.cfg.AllowOwnerSignup,
	}
	app.dormService = &service.DormService{Store: app.db}
	app.roomService = &service.RoomService{Store: app.db, Dorms: app.dormService}
	app.reservationService = &service.ReservationService{Store: app.db, Rooms: app.roomService}
	app.contractService = &service.ContractService{Store: app.db}
	app.billService = &service.BillService{Store: app.db}
	app.repairService = &service.RepairService{Store: app.db}
	app.uploadService = service.NewUploadService(service.S3Config{
		Region:    app.cfg.S3Region,
		Endpoint:  app.cfg.S3Endpoint,
		Bucket:    app.cfg.S3Bucket,
		AccessKey: app.cfg.S3AccessKey,
		SecretKey: app.cfg.S3SecretKey,
	})
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.codec, BuildVersion, app.db, app.logger)
	router.AuthService = app.authService
	router.UserService = app.userService
	router.DormService = app.dormService
	router.RoomService = app.roomService
	router.ReservationService = app.reservationService
	router.ContractService = app.contractService
	router.BillService = app.billService
	router.RepairService = app.repairService
	router.UploadService = app.uploadService
	router.ApplyRoutes()

	app.router = router
	app.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.cfg.Port),
		Handler: router,
	}
}
