package handler

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/bucket-manager/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/bucket-manager/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/bucket-manager/internal/adapter/storage"
	"github.com/marcos-nsantos/bucket-manager/internal/domain"
	"github.com/marcos-nsantos/bucket-manager/internal/pkg/format"
	"github.com/marcos-nsantos/bucket-manager/internal/pkg/httputil"
	"github.com/marcos-nsantos/bucket-manager/internal/pkg/pagination"
	"github.com/marcos-nsantos/bucket-manager/internal/usecase/object"
)

const defaultMaxUploadSize = 50 << 20 // 50MB

type ObjectHandler struct {
	objectSvc     ObjectService
	convertSvc    ConvertService
	maxUploadSize int64
}

func NewObjectHandler(objectSvc ObjectService, convertSvc ConvertService, maxUploadSize int64) *ObjectHandler {
	if maxUploadSize <= 0 {
		maxUploadSize = defaultMaxUploadSize
	}
	return &ObjectHandler{
		objectSvc:     objectSvc,
		convertSvc:    convertSvc,
		maxUploadSize: maxUploadSize,
	}
}

func (h *ObjectHandler) List(c *gin.Context) {
	gw, ok := requireGateway(c)
	if !ok {
		return
	}

	var req request.ListObjectsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	bucket := c.Param("bucket")
	records, err := h.objectSvc.List(c.Request.Context(), gw, object.ListInput{
		Bucket: bucket,
		Prefix: req.Prefix,
		All:    req.All,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	page, info := pagination.Slice(records, pagination.NewParams(req.Page, req.PerPage))
	httputil.OK(c, response.ListObjectsFromEntities(bucket, records, page, info))
}

func (h *ObjectHandler) Upload(c *gin.Context) {
	gw, ok := requireGateway(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FILE", "file is required")
		return
	}
	defer file.Close()

	key := c.PostForm("key")
	if key == "" {
		key = header.Filename
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		if byExt := mime.TypeByExtension(path.Ext(key)); byExt != "" {
			contentType = byExt
		}
	}

	bucket := c.Param("bucket")
	err = h.objectSvc.Upload(c.Request.Context(), gw, object.UploadInput{
		Bucket:      bucket,
		Key:         key,
		Body:        file,
		ContentType: contentType,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.UploadResponse{Bucket: bucket, Key: key})
}

func (h *ObjectHandler) Download(c *gin.Context) {
	gw, ok := requireGateway(c)
	if !ok {
		return
	}

	var req request.ObjectKeyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	data, err := h.objectSvc.Download(c.Request.Context(), gw, c.Param("bucket"), req.Key)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	contentType := "application/octet-stream"
	if format.IsImageKey(req.Key) {
		if byExt := mime.TypeByExtension(strings.ToLower(path.Ext(req.Key))); byExt != "" {
			contentType = byExt
		}
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": path.Base(req.Key),
	}))
	c.Data(http.StatusOK, contentType, data)
}

func (h *ObjectHandler) Info(c *gin.Context) {
	gw, ok := requireGateway(c)
	if !ok {
		return
	}

	var req request.ObjectKeyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	meta, err := h.objectSvc.Info(c.Request.Context(), gw, c.Param("bucket"), req.Key)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.MetadataFromEntity(req.Key, meta))
}

func (h *ObjectHandler) Preview(c *gin.Context) {
	gw, ok := requireGateway(c)
	if !ok {
		return
	}

	var req request.PreviewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	if !format.IsImageKey(req.Key) {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "NOT_AN_IMAGE", fmt.Sprintf("%s is not an image", req.Key))
		return
	}

	data, err := h.objectSvc.Preview(c.Request.Context(), gw, c.Param("bucket"), req.Key, req.Size)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/jpeg", data)
}

// Delete removes every requested key. A partial failure answers 207 with
// the per-key report; deleted keys stay deleted.
func (h *ObjectHandler) Delete(c *gin.Context) {
	gw, ok := requireGateway(c)
	if !ok {
		return
	}

	var req request.DeleteObjectsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	report, err := h.objectSvc.DeleteMany(c.Request.Context(), gw, c.Param("bucket"), req.Keys)
	if err != nil && !errors.Is(err, domain.ErrDeletionPartial) {
		httputil.HandleError(c, err)
		return
	}

	status := http.StatusOK
	if err != nil {
		status = http.StatusMultiStatus
	}
	c.JSON(status, response.DeleteReportFromEntity(report))
}

func (h *ObjectHandler) Convert(c *gin.Context) {
	gw, ok := requireGateway(c)
	if !ok {
		return
	}

	var req request.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	renditions, err := h.convertSvc.ConvertObject(c.Request.Context(), gw, c.Param("bucket"), req.Key)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.ConvertFromRenditions(req.Key, renditions))
}

// requireGateway takes the session's gateway once, at the start of the
// request. A concurrent disconnect does not affect a request already past
// this point.
func requireGateway(c *gin.Context) (storage.ObjectGateway, bool) {
	sess := httputil.GetSession(c)
	if !sess.Connected() {
		httputil.ErrorWithCode(c, http.StatusUnauthorized, "NOT_CONNECTED", "session is not connected")
		return nil, false
	}
	return sess.Gateway, true
}
