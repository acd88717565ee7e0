package storage

import (
	"context"
	"image"
	"io"

	"github.com/marcos-nsantos/bucket-manager/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

// ObjectGateway never retries. Failures are reported through the error kinds
// in package domain.
type ObjectGateway interface {
	ListBuckets(ctx context.Context) ([]string, error)
	ListObjects(ctx context.Context, bucket, prefix string) ([]entity.ObjectRecord, error)
	ListAllObjects(ctx context.Context, bucket, prefix string) ([]entity.ObjectRecord, error)
	UploadObject(ctx context.Context, bucket, key string, body io.Reader, contentType string) error
	DownloadObject(ctx context.Context, bucket, key string) ([]byte, error)
	DeleteObject(ctx context.Context, bucket, key string) error
	HeadObject(ctx context.Context, bucket, key string) (*entity.ObjectMetadata, error)
}

type ImageTransformer interface {
	Decode(r io.Reader) (image.Image, error)
	ResizeSmart(img image.Image, width, height int, maintainAspect bool) *image.NRGBA
	Thumbnail(img image.Image, maxSide int) *image.NRGBA
	EncodeJPEG(w io.Writer, img image.Image, quality int) error
}
