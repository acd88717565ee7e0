package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	smithy "github.com/aws/smithy-go"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/bucket-manager/internal/domain"
	"github.com/marcos-nsantos/bucket-manager/internal/domain/entity"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/config"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/metrics"
)

type S3Gateway struct {
	client   *s3.Client
	uploader *manager.Uploader
	timeout  time.Duration
	logger   *zap.Logger
}

// Connect builds a client from static credentials and verifies them with a
// single ListBuckets call. The SDK retryer is disabled: every call is made
// once and its failure is reported as is.
func Connect(ctx context.Context, cfg config.S3Config, logger *zap.Logger) (*S3Gateway, error) {
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, fmt.Errorf("%w: access key and secret key are required", domain.ErrAuthentication)
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			)
			o.Retryer = aws.NopRetryer{}
		},
	}

	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.UsePathStyle
			// S3-compatible servers do not all accept the default flexible checksums.
			o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
			o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
		})
	}

	g := newGateway(s3.New(s3.Options{}, opts...), cfg.OperationTimeout, logger)

	if _, err := g.ListBuckets(ctx); err != nil {
		return nil, fmt.Errorf("%w: verifying credentials: %w", domain.ErrAuthentication, err)
	}

	return g, nil
}

// NewS3GatewayFromConfig wraps a client built from a shared AWS config, such
// as the default credential chain of a function runtime. No verification
// call is made.
func NewS3GatewayFromConfig(awsCfg aws.Config, timeout time.Duration, logger *zap.Logger, optFns ...func(*s3.Options)) *S3Gateway {
	optFns = append([]func(*s3.Options){func(o *s3.Options) {
		o.Retryer = aws.NopRetryer{}
	}}, optFns...)
	return newGateway(s3.NewFromConfig(awsCfg, optFns...), timeout, logger)
}

func newGateway(client *s3.Client, timeout time.Duration, logger *zap.Logger) *S3Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &S3Gateway{
		client: client,
		uploader: manager.NewUploader(client, func(u *manager.Uploader) {
			u.Concurrency = 1
		}),
		timeout: timeout,
		logger:  logger,
	}
}

func (g *S3Gateway) ListBuckets(ctx context.Context) ([]string, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	out, err := g.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	metrics.ObserveStorage("list_buckets", err)
	if err != nil {
		return nil, fmt.Errorf("%w: buckets: %w", domain.ErrList, err)
	}

	names := make([]string, 0, len(out.Buckets))
	for _, b := range out.Buckets {
		names = append(names, aws.ToString(b.Name))
	}
	return names, nil
}

// ListObjects returns a single page in backend order. Keys beyond the first
// page are not fetched; use ListAllObjects for that.
func (g *S3Gateway) ListObjects(ctx context.Context, bucket, prefix string) ([]entity.ObjectRecord, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	out, err := g.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	})
	metrics.ObserveStorage("list_objects", err)
	if err != nil {
		return nil, listError(bucket, err)
	}

	if aws.ToBool(out.IsTruncated) {
		g.logger.Warn("listing truncated to first page",
			zap.String("bucket", bucket),
			zap.String("prefix", prefix),
			zap.Int("returned", len(out.Contents)),
		)
	}

	return toRecords(make([]entity.ObjectRecord, 0, len(out.Contents)), out.Contents), nil
}

func (g *S3Gateway) ListAllObjects(ctx context.Context, bucket, prefix string) ([]entity.ObjectRecord, error) {
	paginator := s3.NewListObjectsV2Paginator(g.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	})

	records := make([]entity.ObjectRecord, 0)
	for paginator.HasMorePages() {
		page, err := g.nextPage(ctx, paginator)
		metrics.ObserveStorage("list_objects", err)
		if err != nil {
			return nil, listError(bucket, err)
		}
		records = toRecords(records, page.Contents)
	}
	return records, nil
}

func (g *S3Gateway) nextPage(ctx context.Context, p *s3.ListObjectsV2Paginator) (*s3.ListObjectsV2Output, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()
	return p.NextPage(ctx)
}

// UploadObject stores body under key, replacing any existing object. A body
// whose length can be found by seeking goes out as a single PutObject; other
// streams go through the multipart uploader. On failure the remote state is
// unknown and callers should re-list.
func (g *S3Gateway) UploadObject(ctx context.Context, bucket, key string, body io.Reader, contentType string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	var err error
	if size, ok := bodySize(body); ok {
		input.ContentLength = aws.Int64(size)
		_, err = g.client.PutObject(ctx, input)
	} else {
		_, err = g.uploader.Upload(ctx, input)
	}
	metrics.ObserveStorage("upload", err)
	if err != nil {
		return fmt.Errorf("%w: %s/%s: %w", domain.ErrUpload, bucket, key, err)
	}
	return nil
}

func (g *S3Gateway) DownloadObject(ctx context.Context, bucket, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	out, err := g.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		metrics.ObserveStorage("download", err)
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %w: %s/%s", domain.ErrDownload, domain.ErrNotFound, bucket, key)
		}
		return nil, fmt.Errorf("%w: %s/%s: %w", domain.ErrDownload, bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	metrics.ObserveStorage("download", err)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s/%s: %w", domain.ErrDownload, bucket, key, err)
	}
	return data, nil
}

// DeleteObject treats any non-error response as success, whether or not the
// key existed.
func (g *S3Gateway) DeleteObject(ctx context.Context, bucket, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	_, err := g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	metrics.ObserveStorage("delete", err)
	if err != nil {
		return fmt.Errorf("%w: %s/%s: %w", domain.ErrDelete, bucket, key, err)
	}
	return nil
}

func (g *S3Gateway) HeadObject(ctx context.Context, bucket, key string) (*entity.ObjectMetadata, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	out, err := g.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	metrics.ObserveStorage("head", err)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %w: %s/%s", domain.ErrMetadata, domain.ErrNotFound, bucket, key)
		}
		return nil, fmt.Errorf("%w: %s/%s: %w", domain.ErrMetadata, bucket, key, err)
	}

	meta := &entity.ObjectMetadata{
		ContentLength: aws.ToInt64(out.ContentLength),
		ContentType:   aws.ToString(out.ContentType),
		LastModified:  aws.ToTime(out.LastModified),
		ETag:          strings.Trim(aws.ToString(out.ETag), `"`),
		StorageClass:  string(out.StorageClass),
	}
	if meta.ContentType == "" {
		meta.ContentType = entity.ContentTypeUnknown
	}
	if meta.StorageClass == "" {
		meta.StorageClass = entity.StorageClassStandard
	}
	return meta, nil
}

func (g *S3Gateway) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

func toRecords(dst []entity.ObjectRecord, objects []types.Object) []entity.ObjectRecord {
	for _, obj := range objects {
		class := string(obj.StorageClass)
		if class == "" {
			class = entity.StorageClassStandard
		}
		dst = append(dst, entity.ObjectRecord{
			Key:          aws.ToString(obj.Key),
			Size:         aws.ToInt64(obj.Size),
			LastModified: aws.ToTime(obj.LastModified),
			StorageClass: class,
		})
	}
	return dst
}

func listError(bucket string, err error) error {
	if isNotFound(err) {
		return fmt.Errorf("%w: %w: bucket %s: %w", domain.ErrList, domain.ErrNotFound, bucket, err)
	}
	return fmt.Errorf("%w: bucket %s: %w", domain.ErrList, bucket, err)
}

// bodySize reports the bytes left in body without consuming them.
func bodySize(body io.Reader) (int64, bool) {
	seeker, ok := body.(io.Seeker)
	if !ok {
		return 0, false
	}
	cur, err := seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, false
	}
	end, err := seeker.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, false
	}
	if _, err := seeker.Seek(cur, io.SeekStart); err != nil {
		return 0, false
	}
	return end - cur, true
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: key is empty", domain.ErrInvalidKey)
	}
	return nil
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	var notFound *types.NotFound
	var noSuchBucket *types.NoSuchBucket
	if errors.As(err, &noSuchKey) || errors.As(err, &notFound) || errors.As(err, &noSuchBucket) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "NoSuchBucket":
			return true
		}
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		return respErr.HTTPStatusCode() == http.StatusNotFound
	}
	return false
}
