package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"eggslist_backend/internal/auth"
	"eggslist_backend/internal/config"
	"eggslist_backend/internal/database"
	"eggslist_backend/internal/email"
	"eggslist_backend/internal/handlers"
	"eggslist_backend/internal/imageprocessor"
	"eggslist_backend/internal/logger"
	"eggslist_backend/internal/middleware"
	"eggslist_backend/internal/repositories"
	"eggslist_backend/internal/routes"
	"eggslist_backend/internal/services"
	"eggslist_backend/internal/session"
	"eggslist_backend/internal/storage"
	appvalidator "eggslist_backend/internal/validator"
	"eggslist_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// App owns the wired application: database, collaborators, services
// and the HTTP engine.
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Engine *gin.Engine
	Outbox *workers.Outbox
}

// New wires everything together.
func New() (*App, error) {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	auth.InitJWT(cfg.JWT.Secret)

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	store, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	mailer := buildMailer(cfg)
	sessions := buildSessionStore(cfg)

	images := imageprocessor.NewProcessor(0)
	validator := appvalidator.New()
	outbox := workers.NewOutbox(0)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	locationRepo := repositories.NewLocationRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)
	productRepo := repositories.NewProductRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	siteConfigRepo := repositories.NewSiteConfigRepository(db)

	jwtTTL := time.Duration(cfg.JWT.TTL) * time.Hour

	container := &services.ServiceContainer{
		Users:      services.NewUserService(userRepo, locationRepo, mailer, store, images, outbox, validator, jwtTTL),
		Sellers:    services.NewSellerService(userRepo, applicationRepo, validator),
		Favorites:  services.NewFavoriteService(favoriteRepo, userRepo, store),
		Catalog:    services.NewCatalogService(productRepo, userRepo, favoriteRepo, store, images, validator, outbox),
		Locations:  services.NewLocationService(locationRepo, userRepo, sessions),
		Blog:       services.NewBlogService(blogRepo, store),
		SiteConfig: services.NewSiteConfigService(siteConfigRepo),
	}

	engine := buildEngine(cfg, db, container)

	return &App{
		Config: cfg,
		DB:     db,
		Engine: engine,
		Outbox: outbox,
	}, nil
}

// Run starts the outbox workers and serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.Outbox.Start(ctx, 4)

	addr := fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           a.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func buildEngine(cfg *config.Config, db *gorm.DB, container *services.ServiceContainer) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.CORS(),
		middleware.Database(db),
		middleware.AnonymousSession(cfg.Session.CookieName, time.Duration(cfg.Session.TTLHours)*time.Hour),
		middleware.Auth(),
	)

	routes.Setup(engine, handlers.New(container))

	// Local storage serves uploads straight from disk.
	if cfg.Storage.Type == "local" {
		engine.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)
	}

	return engine
}

func buildMailer(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("no smtp host configured, emails will only be logged")
		return email.NewNoopProvider()
	}

	mailer, err := email.NewSMTPProvider(email.Config{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
		SiteURL:   cfg.Email.SiteURL,
	})
	if err != nil {
		logger.Warn("smtp configuration invalid, falling back to log-only mailer", "error", err)
		return email.NewNoopProvider()
	}
	return mailer
}

// buildSessionStore prefers redis; without one the in-process store
// keeps anonymous locations working on a single instance.
func buildSessionStore(cfg *config.Config) session.LocationStore {
	if cfg.Redis.Addr == "" {
		return session.NewMemoryLocationStore(session.DefaultTTL)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unreachable, using in-memory session store", "error", err)
		return session.NewMemoryLocationStore(session.DefaultTTL)
	}

	return session.NewRedisLocationStore(client, session.DefaultTTL)
}
