package convert

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/bucket-manager/internal/adapter/storage"
	"github.com/marcos-nsantos/bucket-manager/internal/domain/entity"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/metrics"
)

const (
	ContentTypeJPEG = "image/jpeg"

	modeLocal    = "local"
	modeEvent    = "event"
	modeOnDemand = "on_demand"
)

type Options struct {
	DestinationBucket string
	DestinationPrefix string
	LocalQuality      int
	EventQuality      int
}

// Rendition describes one written derivative. Location is a file path in
// local mode and an s3:// URI otherwise.
type Rendition struct {
	Device   string
	Width    int
	Height   int
	Key      string
	Location string
	Size     int
}

type Service struct {
	profiles    []entity.DeviceProfile
	transformer storage.ImageTransformer
	opts        Options
	logger      *zap.Logger
}

func NewService(
	profiles []entity.DeviceProfile,
	transformer storage.ImageTransformer,
	opts Options,
	logger *zap.Logger,
) *Service {
	if len(profiles) == 0 {
		profiles = entity.DefaultDeviceProfiles()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		profiles:    profiles,
		transformer: transformer,
		opts:        opts,
		logger:      logger,
	}
}

// writeFunc stores one encoded rendition and returns where it went.
type writeFunc func(ctx context.Context, key string, data []byte) (string, error)

// ConvertFile decodes inputPath once and writes one JPEG per device profile
// into outputDir, creating it if needed. It stops at the first failure.
func (s *Service) ConvertFile(ctx context.Context, inputPath, outputDir string) ([]Rendition, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		metrics.ConversionFailures.WithLabelValues(modeLocal).Inc()
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Open(inputPath)
	if err != nil {
		metrics.ConversionFailures.WithLabelValues(modeLocal).Inc()
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	img, err := s.transformer.Decode(f)
	if err != nil {
		metrics.ConversionFailures.WithLabelValues(modeLocal).Inc()
		return nil, fmt.Errorf("processing %s: %w", inputPath, err)
	}

	s.logger.Info("processing image",
		zap.String("input", filepath.Base(inputPath)),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)

	write := func(_ context.Context, key string, data []byte) (string, error) {
		out := filepath.Join(outputDir, key)
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return "", fmt.Errorf("writing %s: %w", out, err)
		}
		return out, nil
	}

	renditions, err := s.render(ctx, img, "", filepath.Base(inputPath), s.opts.LocalQuality, write)
	if err != nil {
		metrics.ConversionFailures.WithLabelValues(modeLocal).Inc()
		return renditions, err
	}
	return renditions, nil
}

// HandleEvent converts the object named by event and uploads the renditions
// to the destination bucket. Any failure aborts the remaining renditions and
// is reported as a 500 result.
func (s *Service) HandleEvent(ctx context.Context, gw storage.ObjectGateway, event entity.ObjectEvent) entity.EventResult {
	renditions, err := s.convertObject(ctx, gw, event.Bucket, event.Key)
	if err != nil {
		metrics.ConversionFailures.WithLabelValues(modeEvent).Inc()
		s.logger.Error("conversion failed",
			zap.String("bucket", event.Bucket),
			zap.String("key", event.Key),
			zap.Error(err),
		)
		return entity.EventResult{
			StatusCode: http.StatusInternalServerError,
			Body:       fmt.Sprintf("Error processing %s: %v", event.Key, err),
		}
	}

	return entity.EventResult{
		StatusCode: http.StatusOK,
		Body:       fmt.Sprintf("Successfully processed %s into %d versions", event.Key, len(renditions)),
	}
}

// ConvertObject runs the event pipeline for an object chosen by a client.
func (s *Service) ConvertObject(ctx context.Context, gw storage.ObjectGateway, bucket, key string) ([]Rendition, error) {
	renditions, err := s.convertObject(ctx, gw, bucket, key)
	if err != nil {
		metrics.ConversionFailures.WithLabelValues(modeOnDemand).Inc()
		return renditions, err
	}
	return renditions, nil
}

func (s *Service) Profiles() []entity.DeviceProfile {
	return s.profiles
}

func (s *Service) convertObject(ctx context.Context, gw storage.ObjectGateway, bucket, key string) ([]Rendition, error) {
	data, err := gw.DownloadObject(ctx, bucket, key)
	if err != nil {
		return nil, err
	}

	img, err := s.transformer.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	dest := s.opts.DestinationBucket
	write := func(ctx context.Context, key string, data []byte) (string, error) {
		if err := gw.UploadObject(ctx, dest, key, bytes.NewReader(data), ContentTypeJPEG); err != nil {
			return "", err
		}
		return fmt.Sprintf("s3://%s/%s", dest, key), nil
	}

	return s.render(ctx, img, s.opts.DestinationPrefix, key, s.opts.EventQuality, write)
}

func (s *Service) render(
	ctx context.Context,
	img image.Image,
	prefix, sourceKey string,
	quality int,
	write writeFunc,
) ([]Rendition, error) {
	renditions := make([]Rendition, 0, len(s.profiles))

	for _, profile := range s.profiles {
		if err := ctx.Err(); err != nil {
			return renditions, err
		}

		s.logger.Debug("converting",
			zap.String("device", profile.Name),
			zap.Int("width", profile.Width),
			zap.Int("height", profile.Height),
		)

		resized := s.transformer.ResizeSmart(img, profile.Width, profile.Height, true)

		var buf bytes.Buffer
		if err := s.transformer.EncodeJPEG(&buf, resized, quality); err != nil {
			return renditions, fmt.Errorf("%s rendition: %w", profile.Name, err)
		}

		key := entity.RenditionKey(prefix, sourceKey, profile.Name)
		location, err := write(ctx, key, buf.Bytes())
		if err != nil {
			return renditions, fmt.Errorf("%s rendition: %w", profile.Name, err)
		}

		metrics.Renditions.WithLabelValues(profile.Name).Inc()
		s.logger.Info("saved rendition",
			zap.String("device", profile.Name),
			zap.String("location", location),
			zap.Int("bytes", buf.Len()),
		)

		renditions = append(renditions, Rendition{
			Device:   profile.Name,
			Width:    profile.Width,
			Height:   profile.Height,
			Key:      key,
			Location: location,
			Size:     buf.Len(),
		})
	}

	return renditions, nil
}
