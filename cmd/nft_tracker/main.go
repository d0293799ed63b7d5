package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"nft_tracker/internal/app/service"
	"nft_tracker/internal/client"
	"nft_tracker/internal/config"
	"nft_tracker/internal/fetcher"
	"nft_tracker/internal/infrastructure/restapi"
	"nft_tracker/internal/pkg/metrics"
	"nft_tracker/internal/pkg/utils"
	"nft_tracker/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

func main() {
	// Optional .env for local runs; real deployments set the environment.
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	defer zapLogger.Sync()

	// zapslog bridge so slog consumers share the same sink.
	slogHandler := zapslog.NewHandler(zapLogger.Core())
	slog.SetDefault(slog.New(slogHandler))

	cfgPath := utils.GetEnv("CONFIG_PATH", "config/config.yml")
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		log.Warnf("Invalid log level in config: %s. Defaulting to Info.", cfg.Logging.Level)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	zapLogger.Info("Configuration loaded", zap.String("path", cfgPath))

	metrics.MustRegisterMetrics()

	// API keys come from the environment when not set in the config file.
	alchemyKey := utils.GetEnv("ALCHEMY_API_KEY", cfg.Alchemy.APIKey)
	heliusKey := utils.GetEnv("HELIUS_API_KEY", cfg.Helius.APIKey)

	alchemyTimeout := time.Duration(cfg.Alchemy.RequestTimeoutMillis) * time.Millisecond
	alchemyClient := client.NewAlchemyClient(cfg.Alchemy.BaseURL, alchemyKey, alchemyTimeout, zapLogger)
	zapLogger.Info("Alchemy client initialized")

	heliusTimeout := time.Duration(cfg.Helius.RequestTimeoutMillis) * time.Millisecond
	heliusClient := client.NewHeliusClient(cfg.Helius.RPCURL, heliusKey, heliusTimeout, zapLogger)
	zapLogger.Info("Helius client initialized")

	evmFetcher := fetcher.NewEVMFetcher(alchemyClient, cfg.Alchemy.PageSize, cfg.Alchemy.RateLimit, cfg.Alchemy.BurstLimit, zapLogger)
	solanaFetcher := fetcher.NewSolanaFetcher(heliusClient, cfg.Helius.PageSize, cfg.Helius.RateLimit, cfg.Helius.BurstLimit, zapLogger)
	fetchers := fetcher.NewFactory(evmFetcher, solanaFetcher)

	persister, err := store.NewSQLitePersister(cfg.Storage.DatabasePath)
	if err != nil {
		zapLogger.Fatal("Failed to open state database", zap.Error(err))
	}
	defer persister.Close()

	appStore := store.New(persister, zapLogger)
	if err := appStore.Load(context.Background()); err != nil {
		zapLogger.Fatal("Failed to restore persisted state", zap.Error(err))
	}

	gallerySvc := service.NewGalleryService(appStore, fetchers, cfg, zapLogger)
	zapLogger.Info("GalleryService initialized")

	router := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // Adjust for production
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.Use(utils.ZapLoggerMiddleware(zapLogger))
	router.Use(gin.Recovery())

	handler := restapi.NewGalleryHandler(gallerySvc, appStore, zapLogger)
	restapi.RegisterRoutes(router, handler)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	zapLogger.Info("Prometheus metrics endpoint enabled", zap.String("path", "/metrics"))

	pprofRouter := router.Group("/debug/pprof")
	{
		pprofRouter.GET("/", gin.WrapF(pprof.Index))
		pprofRouter.GET("/cmdline", gin.WrapF(pprof.Cmdline))
		pprofRouter.GET("/profile", gin.WrapF(pprof.Profile))
		pprofRouter.GET("/symbol", gin.WrapF(pprof.Symbol))
		pprofRouter.GET("/trace", gin.WrapF(pprof.Trace))
		pprofRouter.GET("/heap", gin.WrapH(pprof.Handler("heap")))
		pprofRouter.GET("/goroutine", gin.WrapH(pprof.Handler("goroutine")))
	}
	zapLogger.Info("Pprof endpoints enabled under /debug/pprof")

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		zapLogger.Info(fmt.Sprintf("Server starting on port %s", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting")
}
