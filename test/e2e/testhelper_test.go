package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/color"
	"image/jpeg"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/minio"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/bucket-manager/internal/adapter/handler"
	adapterstorage "github.com/marcos-nsantos/bucket-manager/internal/adapter/storage"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/auth"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/config"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/server"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/storage"
	"github.com/marcos-nsantos/bucket-manager/internal/usecase/convert"
	"github.com/marcos-nsantos/bucket-manager/internal/usecase/object"
	"github.com/marcos-nsantos/bucket-manager/internal/usecase/session"
)

const (
	testMinioUser     = "minioadmin"
	testMinioPassword = "minioadmin"
	testRegion        = "us-east-1"
	testSessionSecret = "test-secret-key-for-e2e-tests"
	sourceBucket      = "my-photos-manager02"
	destBucket        = "converted-images02"
	apiBasePath       = "/api/v1"
)

type TestApp struct {
	Server     *httptest.Server
	Container  testcontainers.Container
	S3Config   config.S3Config
	Convert    *convert.Service
	BaseURL    string
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	minioContainer, err := minio.Run(ctx,
		"minio/minio:RELEASE.2024-01-16T16-07-38Z",
		minio.WithUsername(testMinioUser),
		minio.WithPassword(testMinioPassword),
	)
	require.NoError(t, err)

	endpoint, err := minioContainer.ConnectionString(ctx)
	require.NoError(t, err)

	s3cfg := config.S3Config{
		Endpoint:         "http://" + endpoint,
		Region:           testRegion,
		AccessKeyID:      testMinioUser,
		SecretAccessKey:  testMinioPassword,
		UsePathStyle:     true,
		OperationTimeout: 30 * time.Second,
	}

	createBuckets(t, s3cfg, sourceBucket, destBucket)

	logger, _ := zap.NewDevelopment()

	// Infrastructure services
	jwtSvc := auth.NewJWTService(testSessionSecret, time.Hour)
	imageProcessor := storage.NewImageProcessor()

	connector := session.ConnectorFunc(func(ctx context.Context, creds session.Credentials) (adapterstorage.ObjectGateway, error) {
		cfg := s3cfg
		cfg.AccessKeyID = creds.AccessKeyID
		cfg.SecretAccessKey = creds.SecretAccessKey
		cfg.Region = creds.Region
		return storage.Connect(ctx, cfg, logger)
	})

	// Use cases
	sessionSvc := session.NewService(connector, jwtSvc, session.Credentials{
		AccessKeyID:     testMinioUser,
		SecretAccessKey: testMinioPassword,
		Region:          testRegion,
	})
	objectSvc := object.NewService(imageProcessor, logger)
	convertSvc := convert.NewService(nil, imageProcessor, convert.Options{
		DestinationBucket: destBucket,
		DestinationPrefix: "converted/",
		LocalQuality:      100,
		EventQuality:      85,
	}, logger)

	router := server.NewRouter(server.RouterConfig{
		SessionHandler:    handler.NewSessionHandler(sessionSvc),
		ObjectHandler:     handler.NewObjectHandler(objectSvc, convertSvc, 10<<20),
		SessionMiddleware: middleware.NewSessionMiddleware(sessionSvc),
		Logger:            logger,
		Environment:       "test",
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:    ts,
		Container: minioContainer,
		S3Config:  s3cfg,
		Convert:   convertSvc,
		BaseURL:   ts.URL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()

	ctx := context.Background()
	if err := app.Container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

// gateway connects directly, bypassing the HTTP API.
func (app *TestApp) gateway(t *testing.T) *storage.S3Gateway {
	t.Helper()
	gw, err := storage.Connect(context.Background(), app.S3Config, nil)
	require.NoError(t, err)
	return gw
}

func createBuckets(t *testing.T, cfg config.S3Config, names ...string) {
	t.Helper()

	client := s3.New(s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		BaseEndpoint: aws.String(cfg.Endpoint),
		UsePathStyle: true,

		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
	})

	for _, name := range names {
		_, err := client.CreateBucket(context.Background(), &s3.CreateBucketInput{Bucket: aws.String(name)})
		require.NoError(t, err)
	}
}

func (app *TestApp) request(method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, app.BaseURL+apiBasePath+path, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil, headers)
}

func (app *TestApp) post(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPost, path, body, headers)
}

func (app *TestApp) delete(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodDelete, path, body, headers)
}

func (app *TestApp) upload(path, key, fileName string, content []byte, headers map[string]string) (*http.Response, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if key != "" {
		if err := writer.WriteField("key", key); err != nil {
			return nil, err
		}
	}
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(content); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, app.BaseURL+apiBasePath+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

// connect opens a session with the server defaults and returns its token.
func (app *TestApp) connect(t *testing.T) string {
	t.Helper()

	resp, err := app.post("/sessions", nil, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var sessResp map[string]any
	parseResponse(t, resp, &sessResp)
	return sessResp["token"].(string)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return body
}

func authHeader(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

func objectsPath(bucket string) string {
	return fmt.Sprintf("/buckets/%s/objects", bucket)
}

func testJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := imaging.New(w, h, color.NRGBA{R: 200, G: 80, B: 40, A: 255})
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}
