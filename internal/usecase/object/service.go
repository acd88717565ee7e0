package object

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/bucket-manager/internal/adapter/storage"
	"github.com/marcos-nsantos/bucket-manager/internal/domain"
	"github.com/marcos-nsantos/bucket-manager/internal/domain/entity"
)

const (
	DefaultPreviewSize = 200
	MaxPreviewSize     = 1024
	previewQuality     = 85
)

type Service struct {
	transformer storage.ImageTransformer
	logger      *zap.Logger
}

func NewService(transformer storage.ImageTransformer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{transformer: transformer, logger: logger}
}

type ListInput struct {
	Bucket string
	Prefix string
	All    bool
}

func (s *Service) List(ctx context.Context, gw storage.ObjectGateway, input ListInput) ([]entity.ObjectRecord, error) {
	if input.All {
		return gw.ListAllObjects(ctx, input.Bucket, input.Prefix)
	}
	return gw.ListObjects(ctx, input.Bucket, input.Prefix)
}

type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
}

func (s *Service) Upload(ctx context.Context, gw storage.ObjectGateway, input UploadInput) error {
	if input.Key == "" {
		return fmt.Errorf("%w: key is empty", domain.ErrInvalidKey)
	}
	return gw.UploadObject(ctx, input.Bucket, input.Key, input.Body, input.ContentType)
}

func (s *Service) Download(ctx context.Context, gw storage.ObjectGateway, bucket, key string) ([]byte, error) {
	return gw.DownloadObject(ctx, bucket, key)
}

func (s *Service) Info(ctx context.Context, gw storage.ObjectGateway, bucket, key string) (*entity.ObjectMetadata, error) {
	return gw.HeadObject(ctx, bucket, key)
}

// Preview downloads key and returns a JPEG no larger than size x size.
func (s *Service) Preview(ctx context.Context, gw storage.ObjectGateway, bucket, key string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultPreviewSize
	}
	size = min(size, MaxPreviewSize)

	data, err := gw.DownloadObject(ctx, bucket, key)
	if err != nil {
		return nil, err
	}

	img, err := s.transformer.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := s.transformer.EncodeJPEG(&buf, s.transformer.Thumbnail(img, size), previewQuality); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeleteMany deletes each key in order. Successful deletions are kept when
// others fail; the report lists both and the error is ErrDeletionPartial.
func (s *Service) DeleteMany(ctx context.Context, gw storage.ObjectGateway, bucket string, keys []string) (*entity.DeleteReport, error) {
	report := &entity.DeleteReport{
		Requested: len(keys),
		Deleted:   make([]string, 0, len(keys)),
	}

	for _, key := range keys {
		if err := gw.DeleteObject(ctx, bucket, key); err != nil {
			s.logger.Warn("delete failed", zap.String("bucket", bucket), zap.String("key", key), zap.Error(err))
			report.Failures = append(report.Failures, entity.DeleteFailure{
				Key:   key,
				Error: fmt.Sprintf("Error deleting %s: %v", key, err),
			})
			continue
		}
		report.Deleted = append(report.Deleted, key)
	}

	if !report.Complete() {
		return report, fmt.Errorf("%w: deleted %d out of %d", domain.ErrDeletionPartial, len(report.Deleted), report.Requested)
	}
	return report, nil
}
