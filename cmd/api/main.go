package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/bucket-manager/internal/adapter/handler"
	adapterstorage "github.com/marcos-nsantos/bucket-manager/internal/adapter/storage"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/auth"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/config"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/metrics"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/observability"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/server"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/storage"
	"github.com/marcos-nsantos/bucket-manager/internal/usecase/convert"
	"github.com/marcos-nsantos/bucket-manager/internal/usecase/object"
	"github.com/marcos-nsantos/bucket-manager/internal/usecase/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger("api", cfg.Log)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Session.SecretKey == "" {
		logger.Fatal("SESSION_SECRET_KEY is required")
	}

	if cfg.Metrics.Enabled {
		metrics.Init()
	}

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.Session.SecretKey, cfg.Session.TTL)
	imageProcessor := storage.NewImageProcessor()

	connector := session.ConnectorFunc(func(ctx context.Context, creds session.Credentials) (adapterstorage.ObjectGateway, error) {
		s3cfg := cfg.S3
		s3cfg.AccessKeyID = creds.AccessKeyID
		s3cfg.SecretAccessKey = creds.SecretAccessKey
		s3cfg.Region = creds.Region

		gw, err := storage.Connect(ctx, s3cfg, logger)
		if err != nil {
			logger.Warn("storage connection failed", zap.String("region", s3cfg.Region), zap.Error(err))
			return nil, err
		}
		return gw, nil
	})

	// Use cases
	sessionSvc := session.NewService(connector, jwtSvc, session.Credentials{
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
		Region:          cfg.S3.Region,
	})
	if cfg.Metrics.Enabled {
		metrics.RegisterSessionGauge(sessionSvc.Active)
	}
	objectSvc := object.NewService(imageProcessor, logger)
	convertSvc := convert.NewService(cfg.Convert.Devices, imageProcessor, convert.Options{
		DestinationBucket: cfg.Convert.DestinationBucket,
		DestinationPrefix: cfg.Convert.DestinationPrefix,
		LocalQuality:      cfg.Convert.LocalQuality,
		EventQuality:      cfg.Convert.EventQuality,
	}, logger)

	// Handlers
	sessionHandler := handler.NewSessionHandler(sessionSvc)
	objectHandler := handler.NewObjectHandler(objectSvc, convertSvc, cfg.Server.MaxUploadSize)

	// Router
	router := server.NewRouter(server.RouterConfig{
		SessionHandler:    sessionHandler,
		ObjectHandler:     objectHandler,
		SessionMiddleware: middleware.NewSessionMiddleware(sessionSvc),
		Logger:            logger,
		Environment:       cfg.Server.Environment,
		EnableMetrics:     cfg.Metrics.Enabled,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.Engine(),
		Logger:       logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
