package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"

	"github.com/dtroode/storefront-server/internal/api/http/handler"
	"github.com/dtroode/storefront-server/internal/api/http/middleware"
	"github.com/dtroode/storefront-server/internal/api/http/router"
	httpServer "github.com/dtroode/storefront-server/internal/api/http/server"
	"github.com/dtroode/storefront-server/internal/cache"
	"github.com/dtroode/storefront-server/internal/config"
	"github.com/dtroode/storefront-server/internal/credential"
	"github.com/dtroode/storefront-server/internal/logger"
	"github.com/dtroode/storefront-server/internal/model"
	"github.com/dtroode/storefront-server/internal/notify"
	"github.com/dtroode/storefront-server/internal/payment/stripe"
	"github.com/dtroode/storefront-server/internal/repository/postgres"
	"github.com/dtroode/storefront-server/internal/server"
	"github.com/dtroode/storefront-server/internal/service"
	storage "github.com/dtroode/storefront-server/internal/storage/minio"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithFormat(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(gin.ReleaseMode)

	if cfg.Admin.HashedPassword == "" {
		logger.Warn("ADMIN_HASHED_PASSWORD is empty, admin area will reject every request")
	}

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	sqlDB := db.SQLDB()
	defer sqlDB.Close()

	productRepo := postgres.NewProductRepository(db)
	userRepo := postgres.NewUserRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	verificationRepo := postgres.NewDownloadVerificationRepository(db)
	webhookEventRepo := postgres.NewWebhookEventRepository(db)
	dashboardRepo := postgres.NewDashboardRepository(sqlDB)

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	productFiles, err := storage.NewProductFiles(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, catalog will be served from the database", "error", err)
	}

	notifier, closeNotifier := newNotifier(ctx, cfg, logger)
	defer closeNotifier()

	links := service.NewLinks(cfg.HTTP.PublicURL)
	downloadService := service.NewDownload(verificationRepo, productRepo, productFiles, cfg.Download.TTL, logger)
	purchaseService := service.NewPurchase(db, webhookEventRepo, productRepo, userRepo, downloadService, notifier, links, logger)
	checkoutService := service.NewCheckout(productRepo, orderRepo, stripe.NewPaymentIntents(cfg.Stripe.SecretKey, cfg.Stripe.Currency), downloadService, links, logger)
	catalogService := service.NewCatalog(productRepo, cache.NewCatalog(redisClient), cfg.Redis.CatalogTTL, logger)
	dashboardService := service.NewDashboard(dashboardRepo, logger)

	r := router.New(router.Handlers{
		Storefront: handler.NewStorefront(catalogService, checkoutService, downloadService, logger),
		Webhook:    handler.NewWebhook(stripe.NewWebhookVerifier(cfg.Stripe.WebhookSecret), purchaseService, logger),
		Admin:      handler.NewAdmin(dashboardService),
		Health:     handler.NewHealth(db),
	}, middleware.NewAdminAuth(cfg.Admin.Username, cfg.Admin.HashedPassword, credential.NewVerifier(), logger), logger)

	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))
	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// newNotifier publishes to RabbitMQ when AMQP_URL is set and sends mail
// directly otherwise. The returned func releases the broker connection.
func newNotifier(ctx context.Context, cfg *config.Config, logger *logger.Logger) (model.Notifier, func()) {
	if cfg.AMQP.URL != "" {
		publisher, err := notify.NewQueuePublisher(ctx, cfg.AMQP.URL, cfg.AMQP.Queue, logger)
		if err != nil {
			logger.Fatal("failed to initialize notification queue", "error", err)
		}
		return publisher, func() { _ = publisher.Close() }
	}

	if cfg.Mail.ResendAPIKey == "" {
		logger.Warn("no AMQP_URL or MAIL_RESEND_API_KEY configured, purchase emails are disabled")
		return nil, func() {}
	}

	return notify.NewMailer(cfg.Mail.ResendAPIKey, cfg.Mail.SenderEmail), func() {}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
