package e2e_test

import (
	"bytes"
	"context"
	"image"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/bucket-manager/internal/domain/entity"
)

func TestE2E_Objects_Lifecycle(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	token := app.connect(t)
	path := objectsPath(sourceBucket)

	t.Run("empty bucket lists nothing", func(t *testing.T) {
		resp, err := app.get(path, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var listResp map[string]any
		parseResponse(t, resp, &listResp)
		assert.Empty(t, listResp["objects"])
		summary := listResp["summary"].(map[string]any)
		assert.Equal(t, float64(0), summary["total"])
	})

	t.Run("upload image and text", func(t *testing.T) {
		resp, err := app.upload(path, "albums/photo.jpg", "photo.jpg", testJPEG(t, 640, 480), authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()

		resp, err = app.upload(path, "", "notes.txt", []byte("hello"), authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("list reports both objects", func(t *testing.T) {
		resp, err := app.get(path, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var listResp struct {
			Objects []struct {
				Key     string `json:"key"`
				Size    int64  `json:"size"`
				IsImage bool   `json:"is_image"`
			} `json:"objects"`
			Summary struct {
				Total  int `json:"total"`
				Images int `json:"images"`
				Other  int `json:"other"`
			} `json:"summary"`
		}
		parseResponse(t, resp, &listResp)
		assert.Equal(t, 2, listResp.Summary.Total)
		assert.Equal(t, 1, listResp.Summary.Images)
		assert.Equal(t, 1, listResp.Summary.Other)
	})

	t.Run("info", func(t *testing.T) {
		resp, err := app.get(path+"/info?key=notes.txt", authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var info map[string]any
		parseResponse(t, resp, &info)
		assert.Equal(t, float64(5), info["content_length"])
		assert.Equal(t, "STANDARD", info["storage_class"])
		assert.NotEmpty(t, info["etag"])
	})

	t.Run("download returns the uploaded bytes", func(t *testing.T) {
		resp, err := app.get(path+"/download?key=notes.txt", authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Disposition"), "notes.txt")
		assert.Equal(t, "hello", string(readBody(t, resp)))
	})

	t.Run("download of a missing key is not found", func(t *testing.T) {
		resp, err := app.get(path+"/download?key=missing.txt", authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("preview", func(t *testing.T) {
		resp, err := app.get(path+"/preview?key=albums/photo.jpg&size=100", authHeader(token))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		cfg, format, err := image.DecodeConfig(bytes.NewReader(readBody(t, resp)))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
		assert.Equal(t, 100, cfg.Width)
		assert.Equal(t, 75, cfg.Height)
	})

	t.Run("delete existing and missing keys", func(t *testing.T) {
		resp, err := app.delete(path, map[string]any{
			"keys": []string{"notes.txt", "never-existed.txt"},
		}, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var report map[string]any
		parseResponse(t, resp, &report)
		assert.Len(t, report["deleted"], 2)

		resp, err = app.get(path, authHeader(token))
		require.NoError(t, err)
		var listResp map[string]any
		parseResponse(t, resp, &listResp)
		assert.Len(t, listResp["objects"], 1)
	})

	t.Run("listing a missing bucket is not found", func(t *testing.T) {
		resp, err := app.get(objectsPath("no-such-bucket"), authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestE2E_Convert(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	token := app.connect(t)
	ctx := context.Background()
	gw := app.gateway(t)

	require.NoError(t, gw.UploadObject(ctx, sourceBucket, "photo.png", bytes.NewReader(testJPEG(t, 3000, 2000)), "image/jpeg"))

	t.Run("event produces one rendition per device", func(t *testing.T) {
		result := app.Convert.HandleEvent(ctx, gw, entity.ObjectEvent{Bucket: sourceBucket, Key: "photo.png"})

		require.Equal(t, http.StatusOK, result.StatusCode, result.Body)
		assert.Equal(t, "Successfully processed photo.png into 3 versions", result.Body)

		for _, profile := range entity.DefaultDeviceProfiles() {
			data, err := gw.DownloadObject(ctx, destBucket, "converted/photo_"+profile.Name+".jpg")
			require.NoError(t, err)

			cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, "jpeg", format)
			assert.Equal(t, profile.Width, cfg.Width)
			assert.Equal(t, profile.Height, cfg.Height)
		}
	})

	t.Run("corrupt object uploads nothing", func(t *testing.T) {
		require.NoError(t, gw.UploadObject(ctx, sourceBucket, "broken.jpg", bytes.NewReader([]byte("not an image")), "image/jpeg"))

		result := app.Convert.HandleEvent(ctx, gw, entity.ObjectEvent{Bucket: sourceBucket, Key: "broken.jpg"})

		assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
		assert.Contains(t, result.Body, "broken.jpg")

		records, err := gw.ListObjects(ctx, destBucket, "converted/broken")
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("on-demand conversion through the api", func(t *testing.T) {
		resp, err := app.post(objectsPath(sourceBucket)+"/convert", map[string]string{"key": "photo.png"}, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var convResp map[string]any
		parseResponse(t, resp, &convResp)
		assert.Len(t, convResp["renditions"], 3)
	})
}
