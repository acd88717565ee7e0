// Package event adapts object-created notifications to the conversion job.
package event

import (
	"context"
	"net/http"
	"net/url"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/bucket-manager/internal/adapter/storage"
	"github.com/marcos-nsantos/bucket-manager/internal/domain/entity"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/event_mocks.go -package=mocks

type Response = entity.EventResult

type Converter interface {
	HandleEvent(ctx context.Context, gw storage.ObjectGateway, event entity.ObjectEvent) entity.EventResult
}

type Handler struct {
	converter Converter
	gateway   storage.ObjectGateway
	logger    *zap.Logger
}

func NewHandler(converter Converter, gateway storage.ObjectGateway, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{converter: converter, gateway: gateway, logger: logger}
}

// Handle converts the object named by the first record. Further records in
// the same notification are ignored.
func (h *Handler) Handle(ctx context.Context, e events.S3Event) Response {
	if len(e.Records) == 0 {
		return Response{StatusCode: http.StatusInternalServerError, Body: "Error processing event: no records"}
	}
	if len(e.Records) > 1 {
		h.logger.Warn("event carries more than one record, only the first is processed",
			zap.Int("records", len(e.Records)),
		)
	}

	obj := FromRecord(e.Records[0])
	h.logger.Info("received object event", zap.String("bucket", obj.Bucket), zap.String("key", obj.Key))

	return h.converter.HandleEvent(ctx, h.gateway, obj)
}

// FromRecord extracts bucket and key. Notification keys are URL-encoded, so
// the decoded form is preferred when available.
func FromRecord(r events.S3EventRecord) entity.ObjectEvent {
	key := r.S3.Object.URLDecodedKey
	if key == "" {
		key = r.S3.Object.Key
		if decoded, err := url.QueryUnescape(key); err == nil {
			key = decoded
		}
	}
	return entity.ObjectEvent{Bucket: r.S3.Bucket.Name, Key: key}
}
