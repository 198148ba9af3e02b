package apiapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minio/minio-go/v7"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/AdonesMapula/atay/internal/config"
	s3infra "github.com/AdonesMapula/atay/internal/infra/s3"
	"github.com/AdonesMapula/atay/internal/infra/telegram"
	pgrepo "github.com/AdonesMapula/atay/internal/repo/postgres"
	redrepo "github.com/AdonesMapula/atay/internal/repo/redis"
	authsvc "github.com/AdonesMapula/atay/internal/services/adminauth"
	catalogsvc "github.com/AdonesMapula/atay/internal/services/catalog"
	mediasvc "github.com/AdonesMapula/atay/internal/services/media"
	modsvc "github.com/AdonesMapula/atay/internal/services/moderation"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	postgres   *pgxpool.Pool
	redis      *goredis.Client
	s3         *minio.Client
	httpRouter http.Handler
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	r := chi.NewRouter()
	ApplyMiddlewares(r, log)

	var pool *pgxpool.Pool
	if p, err := pgrepo.NewPool(ctx, cfg.Postgres.DSN); err != nil {
		log.Warn("postgres init failed, continuing in degraded mode", zap.Error(err))
	} else {
		pool = p
	}

	redisClient := redrepo.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	sessionRepo := redrepo.NewSessionRepo(redisClient)
	adminUserRepo := pgrepo.NewAdminUserRepo(pool)
	purchaseRepo := pgrepo.NewPurchaseRepo(pool)
	eventRepo := pgrepo.NewEventRepo(pool)
	ticketRepo := pgrepo.NewTicketTypeRepo(pool)
	productRepo := pgrepo.NewProductRepo(pool)
	emceeRepo := pgrepo.NewEmceeRepo(pool)
	playlistRepo := pgrepo.NewPlaylistRepo(pool)

	var s3Client *minio.Client
	if c, err := s3infra.NewClient(s3infra.Config{
		Endpoint:  cfg.S3.Endpoint,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		UseSSL:    cfg.S3.UseSSL,
	}); err != nil {
		log.Warn("s3 init failed, continuing in degraded mode", zap.Error(err))
	} else {
		s3Client = c
	}

	// Decision notices always land in the log; the Telegram sink is layered
	// on top when a token is configured.
	notifier := noticeLogger{log: log}
	if n, err := telegram.NewNotifier(cfg.Notify.TelegramToken, cfg.Notify.TelegramChatID, log); err != nil {
		log.Warn("telegram notifier disabled", zap.Error(err))
	} else {
		notifier.next = n
	}

	tokens := authsvc.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTTL)
	authService := authsvc.NewService(adminUserRepo, sessionRepo, tokens, cfg.Auth.SessionTTL)
	moderationService := modsvc.NewService(purchaseRepo, notifier)
	catalogService := catalogsvc.NewService(eventRepo, ticketRepo, productRepo, emceeRepo, playlistRepo)
	mediaStorage := mediasvc.NewS3Storage(s3Client, cfg.S3.Bucket)
	mediaService := mediasvc.NewService(mediaStorage, cfg.Media.MaxUploadBytes, cfg.Media.PresignTTL)

	RegisterRoutes(r, Dependencies{
		AuthService:       authService,
		ModerationService: moderationService,
		CatalogService:    catalogService,
		MediaService:      mediaService,
		PurchaseRepo:      purchaseRepo,
		Logger:            log,
		Config:            cfg,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		postgres:   pool,
		redis:      redisClient,
		s3:         s3Client,
		httpRouter: r,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("api server started", zap.String("addr", a.cfg.HTTP.Addr))
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if err := a.server.Shutdown(ctx); err != nil {
		shutdownErr = err
	}
	if a.postgres != nil {
		a.postgres.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}

	return shutdownErr
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}

type noticeLogger struct {
	log  *zap.Logger
	next modsvc.Notifier
}

func (n noticeLogger) Notify(ctx context.Context, message string) {
	if n.log != nil {
		n.log.Info("moderation_notice", zap.String("message", message))
	}
	if n.next != nil {
		n.next.Notify(ctx, message)
	}
}
