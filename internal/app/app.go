package app

import (
	"context"
	"log/slog"

	httpapp "sundar_marbles/internal/app/http"
	"sundar_marbles/internal/config"
	"sundar_marbles/internal/lib/logger/sl"
	"sundar_marbles/internal/notifier"
	"sundar_marbles/internal/repository"
	catalogservice "sundar_marbles/internal/services/catalog_service"
	contactservice "sundar_marbles/internal/services/contact_service"
	galleryservice "sundar_marbles/internal/services/gallery_service"
	mediaservice "sundar_marbles/internal/services/media_service"
	newsletterservice "sundar_marbles/internal/services/newsletter_service"
	filestorage "sundar_marbles/internal/storage/filestorage"
	"sundar_marbles/internal/storage/postgresql"
	redisapp "sundar_marbles/internal/storage/redis"
	httprouters "sundar_marbles/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server

	log        *slog.Logger
	storage    *postgresql.Storage
	redis      *redisapp.Client
	dispatcher *notifier.Dispatcher
}

func New(log *slog.Logger, cfg *config.Config) *App {
	storage, err := postgresql.New(context.Background(), cfg.DSN)
	if err != nil {
		panic(err)
	}

	repo := repository.NewRepository(storage.DB)

	var (
		cache       repository.ListingCache
		redisClient *redisapp.Client
	)
	if cfg.Redis.Enabled {
		redisClient = redisapp.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisClient.HealthCheck(context.Background()); err != nil {
			panic(err)
		}
		cache = repository.NewRedisListingCache(redisClient)
	} else {
		cache = repository.NewMemoryListingCache()
	}

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.FileStorage.BaseDir, cfg.FileStorage.BaseURL, cfg.FileStorage.MaxSize)
	if err != nil {
		panic(err)
	}

	mailer := notifier.NewSMTPMailer(cfg.SMTP)
	dispatcher := notifier.NewDispatcher(log, mailer, cfg.SMTP.Workers, cfg.SMTP.Queue)

	contactService := contactservice.NewContactService(log, repo.Contact, dispatcher, cfg.WhatsApp.Number)
	newsletterService := newsletterservice.NewNewsletterService(log, repo.Newsletter)
	catalogService := catalogservice.NewCatalogService(log, repo.Product, cache)
	galleryService := galleryservice.NewGalleryService(log, repo.Gallery, cache)
	mediaService := mediaservice.NewMediaService(log, repo.Product, repo.Gallery, fileStorage)

	routers := httprouters.NewRouter(
		log,
		httprouters.AdminCredentials{
			Username: cfg.Admin.Username,
			Password: cfg.Admin.Password,
			Secret:   cfg.Admin.Token,
			TokenTTL: cfg.Admin.TokenTTL,
		},
		contactService,
		newsletterService,
		catalogService,
		galleryService,
		mediaService,
	)

	server := httpapp.New(
		log,
		cfg.Admin.Token,
		cfg.HTTP.Host,
		cfg.HTTP.Port,
		cfg.FileStorage.BaseDir,
		cfg.FileStorage.BaseURL,
		routers,
	)

	return &App{
		HTTPServer: server,
		log:        log,
		storage:    storage,
		redis:      redisClient,
		dispatcher: dispatcher,
	}
}

// Stop shuts the pieces down in request-flow order: server first, then
// the notification queue, then the stores.
func (a *App) Stop() {
	if err := a.HTTPServer.Stop(); err != nil {
		a.log.Error("http server shutdown failed", sl.Err(err))
	}

	a.dispatcher.Stop()

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Error("redis close failed", sl.Err(err))
		}
	}

	a.storage.Stop()
}
