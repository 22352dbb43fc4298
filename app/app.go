package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"mk-watch-mods/app/controller"
	"mk-watch-mods/app/router"
	"mk-watch-mods/db"
	"mk-watch-mods/models"
	"mk-watch-mods/repository"
	"mk-watch-mods/service"
	"mk-watch-mods/templates"
)

const (
	sessionSweepInterval = 10 * time.Minute
	sessionMaxIdle       = 2 * time.Hour
	unnotifiedLookback   = 50
)

// App is the wired storefront
type App struct {
	Handler  http.Handler
	Sessions *service.SessionStore

	conn *sql.DB
	log  *zap.SugaredLogger
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg Config, log *zap.SugaredLogger) (*App, error) {
	catalog, err := repository.NewCatalogRepository(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	collections := catalog.Collections()
	log.Infof("📚 Catalog loaded: %d collections", len(collections))

	a := &App{log: log}

	// Reservation persistence is optional
	var reservationRepo repository.ReservationRepositoryInterface
	if cfg.DatabaseURL != "" {
		a.conn, err = db.Open(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		reservationRepo = repository.NewReservationRepository(a.conn, log)
		reportUnnotified(ctx, reservationRepo, log)
	} else {
		log.Warnf("⚠️  DATABASE_URL is not set, reservation requests will not be stored")
	}

	images := service.NewImageService(cfg.AssetsDir, cfg.CacheDir, log)
	if err := images.EnsureCacheDir(); err != nil {
		log.Warnf("⚠️  Image cache disabled: %v", err)
	}

	transport := &service.SMTPTransport{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		Timeout:  cfg.SMTPTimeout,
	}
	notifier := service.NewNotifier(transport, cfg.SMTPFrom, cfg.ToEmail, log)
	reservations := service.NewReservationService(notifier, reservationRepo, cfg.SMTPTimeout, log)

	tmpl, err := templates.Storefront()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a.Sessions = service.NewSessionStore(collections[0])

	controllers := &router.Controllers{
		Storefront: controller.NewStorefrontController(controller.StorefrontOptions{
			Catalog:      catalog,
			Sessions:     a.Sessions,
			Renderer:     service.NewRenderer(catalog, service.NewNotesRenderer()),
			Reservations: reservations,
			Images:       images,
			Template:     tmpl,
			LogoPath:     cfg.LogoPath,
			SecureCookie: cfg.SecureCookie,
			Logger:       log,
		}),
	}
	a.Handler = router.SetupRoutes(controllers, log)

	return a, nil
}

// reportUnnotified warns about recent requests the shop never got an email for
func reportUnnotified(ctx context.Context, repo repository.ReservationRepositoryInterface, log *zap.SugaredLogger) {
	recent, err := repo.ListRecent(ctx, unnotifiedLookback)
	if err != nil {
		log.Warnf("⚠️  Could not check recent reservations: %v", err)
		return
	}
	for _, r := range recent {
		if r.Status == models.ReservationNotifyFailed {
			log.Warnw("reservation was stored but never notified",
				"id", r.ID,
				"model", r.ModelName,
				"created_at", r.CreatedAt,
				"notify_error", r.NotifyError,
			)
		}
	}
}

// SweepSessions drops idle sessions until ctx is done
func (a *App) SweepSessions(ctx context.Context) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := a.Sessions.Sweep(sessionMaxIdle); n > 0 {
				a.log.Infof("🧹 Dropped %d idle sessions", n)
			}
		}
	}
}

// Close releases the database connection, if any
func (a *App) Close() error {
	if a.conn != nil {
		return a.conn.Close()
	}
	return nil
}
