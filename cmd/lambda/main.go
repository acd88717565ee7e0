package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/bucket-manager/internal/adapter/handler/event"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/config"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/observability"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/storage"
	"github.com/marcos-nsantos/bucket-manager/internal/usecase/convert"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger("lambda", cfg.Log)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// The function role supplies credentials through the default chain.
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		logger.Fatal("failed to load aws config", zap.Error(err))
	}

	gw := storage.NewS3GatewayFromConfig(awsCfg, cfg.S3.OperationTimeout, logger, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
			o.UsePathStyle = cfg.S3.UsePathStyle
		}
	})

	convertSvc := convert.NewService(cfg.Convert.Devices, storage.NewImageProcessor(), convert.Options{
		DestinationBucket: cfg.Convert.DestinationBucket,
		DestinationPrefix: cfg.Convert.DestinationPrefix,
		EventQuality:      cfg.Convert.EventQuality,
	}, logger)

	h := event.NewHandler(convertSvc, gw, logger)

	lambda.Start(func(ctx context.Context, e events.S3Event) (event.Response, error) {
		return h.Handle(ctx, e), nil
	})
}
