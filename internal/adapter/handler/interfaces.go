package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/bucket-manager/internal/adapter/storage"
	"github.com/marcos-nsantos/bucket-manager/internal/domain/entity"
	"github.com/marcos-nsantos/bucket-manager/internal/usecase/convert"
	"github.com/marcos-nsantos/bucket-manager/internal/usecase/object"
	"github.com/marcos-nsantos/bucket-manager/internal/usecase/session"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type SessionService interface {
	Connect(ctx context.Context, creds session.Credentials) (*session.ConnectResult, error)
	Close(id uuid.UUID) error
}

type ObjectService interface {
	List(ctx context.Context, gw storage.ObjectGateway, input object.ListInput) ([]entity.ObjectRecord, error)
	Upload(ctx context.Context, gw storage.ObjectGateway, input object.UploadInput) error
	Download(ctx context.Context, gw storage.ObjectGateway, bucket, key string) ([]byte, error)
	Info(ctx context.Context, gw storage.ObjectGateway, bucket, key string) (*entity.ObjectMetadata, error)
	Preview(ctx context.Context, gw storage.ObjectGateway, bucket, key string, size int) ([]byte, error)
	DeleteMany(ctx context.Context, gw storage.ObjectGateway, bucket string, keys []string) (*entity.DeleteReport, error)
}

type ConvertService interface {
	ConvertObject(ctx context.Context, gw storage.ObjectGateway, bucket, key string) ([]convert.Rendition, error)
}
