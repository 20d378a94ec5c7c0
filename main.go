package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"shophub/awsx"
	"shophub/common/logger"
	"shophub/common/middleware"
	"shophub/config"
	"shophub/controllers"
	"shophub/database"
	"shophub/models"
	"shophub/repository"
	"shophub/routes"
	"shophub/sender"
	"shophub/services"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger.Initialize(cfg.Env)
	log := zap.L()
	defer log.Sync()

	db, err := database.ConnectPostgres(database.PostgresConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
		TimeZone: cfg.DBTimeZone,
	}, log,
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.TrackingEvent{},
		&models.NotificationLog{},
	)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	redisClient := database.NewRedisClient(cfg.RedisURL)
	defer redisClient.Close()

	// Repositories
	userRepo := repository.NewGormUserRepository(db)
	productRepo := repository.NewGormProductRepository(db)
	cartRepo := repository.NewGormCartRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)
	trackingRepo := repository.NewGormTrackingRepository(db)
	notificationRepo := repository.NewGormNotificationRepository(db)
	txManager := repository.NewGormTxManager(db)

	// Outbound notification channel. Email and SNS are both optional; the
	// notifier skips whichever is not configured.
	var emailSender sender.EmailSender
	if s, err := sender.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword); err != nil {
		log.Warn("email sending disabled", zap.Error(err))
	} else {
		emailSender = s
	}

	var snsPublisher awsx.SNSPublisher
	if cfg.SNSTopicArn != "" {
		awsCfg, err := awsx.LoadAWSConfig(context.Background())
		if err != nil {
			log.Warn("SNS mirroring disabled", zap.Error(err))
		} else {
			snsPublisher = awsx.NewSNSClient(awsCfg)
		}
	}

	notifier := services.NewNotifier(emailSender, notificationRepo, snsPublisher, cfg.SNSTopicArn, log)
	defer notifier.Close()

	// Services
	catalogCache := services.NewCatalogCache(redisClient)
	productService := services.NewProductService(productRepo, catalogCache, log)
	cartService := services.NewCartService(cartRepo, productRepo, log)
	checkoutService := services.NewCheckoutService(txManager, catalogCache, log)
	orderService := services.NewOrderService(orderRepo, log)
	trackingService := services.NewTrackingService(orderRepo, trackingRepo, userRepo, log)
	adminService := services.NewAdminService(orderRepo, productRepo, userRepo, notifier, log)
	stripeService := services.NewStripeService(cfg.StripeSecretKey)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(log), gin.Recovery())

	routes.RegisterRoutes(router, routes.Controllers{
		Products: controllers.NewProductController(productService),
		Cart:     controllers.NewCartController(cartService),
		Orders:   controllers.NewOrderController(orderService, checkoutService),
		Payments: controllers.NewPaymentController(stripeService, checkoutService, log),
		Tracking: controllers.NewTrackingController(trackingService),
		Admin:    controllers.NewAdminController(adminService, trackingService),
	}, userRepo)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("ShopHub is running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down gracefully")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("shutdown error", zap.Error(err))
	}
	log.Info("server shutdown complete")
}
